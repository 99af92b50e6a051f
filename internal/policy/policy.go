// Package policy decides whether an authenticated actor may perform an
// operation on a resource kind.
package policy

import (
	"context"
	"fmt"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/pkg/errors"
)

type Resource string

const (
	ResourceUser                 Resource = "user"
	ResourceOutPatient           Resource = "out_patient"
	ResourceInPatient            Resource = "in_patient"
	ResourceVisit                Resource = "visit"
	ResourceRound                Resource = "round"
	ResourceOutPatientMedication Resource = "out_patient_medication"
	ResourceInPatientMedication  Resource = "in_patient_medication"
	ResourceAppointment          Resource = "appointment"
	ResourceAdmission            Resource = "admission"
	ResourceFeedback             Resource = "feedback"
	ResourceReport               Resource = "report"
)

type Operation string

const (
	OpList       Operation = "list"
	OpCreate     Operation = "create"
	OpRead       Operation = "read"
	OpUpdate     Operation = "update"
	OpDelete     Operation = "delete"
	OpTransition Operation = "transition"
)

// Authorize returns nil when actor may perform op on resource. targetID is
// the id of the addressed record and only matters for user records.
func Authorize(actor *model.User, resource Resource, op Operation, targetID string) error {
	if actor == nil {
		return errors.Unauthorized(fmt.Errorf("no authenticated actor for %s %s", op, resource))
	}
	if resource != ResourceUser {
		return nil
	}

	switch op {
	case OpList, OpCreate, OpDelete:
		if actor.IsAdmin() {
			return nil
		}
	case OpRead, OpUpdate:
		if actor.IsAdmin() || actor.ID == targetID {
			return nil
		}
	}
	return errors.Forbidden(fmt.Errorf("%s may not %s user %q", actor.Role, op, targetID))
}

type actorKey struct{}

// WithActor returns a context carrying the authenticated actor.
func WithActor(ctx context.Context, actor *model.User) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func ActorFromContext(ctx context.Context) (*model.User, bool) {
	actor, ok := ctx.Value(actorKey{}).(*model.User)
	return actor, ok && actor != nil
}

// Check authorizes the actor carried by ctx.
func Check(ctx context.Context, resource Resource, op Operation, targetID string) (*model.User, error) {
	actor, _ := ActorFromContext(ctx)
	if err := Authorize(actor, resource, op, targetID); err != nil {
		return nil, err
	}
	return actor, nil
}

// SystemActor acts for command-line tasks that run outside any request.
var SystemActor = &model.User{ID: "system", Name: "system", Role: model.RoleAdmin}
