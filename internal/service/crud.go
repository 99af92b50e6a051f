// Package service holds the pieces shared by the entity services: the
// policy-checked record operations and repository error translation.
package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/policy"
	"github.com/jwalitptl/hospital-api/internal/repository"
	"github.com/jwalitptl/hospital-api/pkg/errors"
)

// Store is the record-store surface every repository provides.
type Store[T any] interface {
	Create(ctx context.Context, v *T) error
	Get(ctx context.Context, id string) (*T, error)
	List(ctx context.Context, page model.Page) ([]*T, error)
	Update(ctx context.Context, id string, mutate func(*T)) (*T, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// CRUD runs the access policy before each record-store call and translates
// repository failures into AppErrors. label names the entity in messages,
// e.g. "Out-patient".
type CRUD[T any] struct {
	store    Store[T]
	resource policy.Resource
	label    string
}

func NewCRUD[T any](store Store[T], resource policy.Resource, label string) CRUD[T] {
	return CRUD[T]{store: store, resource: resource, label: label}
}

// Authorize checks the actor in ctx for op on this resource.
func (c CRUD[T]) Authorize(ctx context.Context, op policy.Operation, id string) (*model.User, error) {
	return policy.Check(ctx, c.resource, op, id)
}

func (c CRUD[T]) Insert(ctx context.Context, v *T) (*T, error) {
	if _, err := c.Authorize(ctx, policy.OpCreate, ""); err != nil {
		return nil, err
	}
	if err := c.store.Create(ctx, v); err != nil {
		return nil, c.Translate(err, "create")
	}
	return v, nil
}

func (c CRUD[T]) Get(ctx context.Context, id string) (*T, error) {
	if _, err := c.Authorize(ctx, policy.OpRead, id); err != nil {
		return nil, err
	}
	v, err := c.store.Get(ctx, id)
	if err != nil {
		return nil, c.Translate(err, "get")
	}
	return v, nil
}

func (c CRUD[T]) List(ctx context.Context, page model.Page) ([]*T, error) {
	if _, err := c.Authorize(ctx, policy.OpList, ""); err != nil {
		return nil, err
	}
	items, err := c.store.List(ctx, page)
	if err != nil {
		return nil, c.Translate(err, "list")
	}
	return items, nil
}

// Mutate applies mutate to the stored record under op, which is OpUpdate
// for generic updates and OpTransition for lifecycle changes.
func (c CRUD[T]) Mutate(ctx context.Context, op policy.Operation, id string, mutate func(*T)) (*T, error) {
	if _, err := c.Authorize(ctx, op, id); err != nil {
		return nil, err
	}
	v, err := c.store.Update(ctx, id, mutate)
	if err != nil {
		return nil, c.Translate(err, "update")
	}
	return v, nil
}

func (c CRUD[T]) Delete(ctx context.Context, id string) error {
	if _, err := c.Authorize(ctx, policy.OpDelete, id); err != nil {
		return err
	}
	deleted, err := c.store.Delete(ctx, id)
	if err != nil {
		return c.Translate(err, "delete")
	}
	if !deleted {
		return errors.NotFound(c.label, repository.ErrNotFound)
	}
	return nil
}

// Query authorizes a filtered list and runs it.
func (c CRUD[T]) Query(ctx context.Context, run func() ([]*T, error)) ([]*T, error) {
	if _, err := c.Authorize(ctx, policy.OpList, ""); err != nil {
		return nil, err
	}
	items, err := run()
	if err != nil {
		return nil, c.Translate(err, "list")
	}
	return items, nil
}

func (c CRUD[T]) Translate(err error, action string) error {
	return Translate(c.label, action, err)
}

// Translate maps repository sentinels to AppErrors; AppErrors pass through
// and anything else becomes an internal error.
func Translate(label, action string, err error) error {
	if _, ok := errors.As(err); ok {
		return err
	}
	switch {
	case stderrors.Is(err, repository.ErrNotFound):
		return errors.NotFound(label, err)
	case stderrors.Is(err, repository.ErrDuplicate):
		return errors.Conflict(label+" already exists", err)
	case stderrors.Is(err, repository.ErrInvalidReference):
		return errors.NotFound("Referenced record", err)
	}
	return errors.Internal(fmt.Errorf("failed to %s %s: %w", action, label, err))
}
