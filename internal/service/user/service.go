package user

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/policy"
	"github.com/jwalitptl/hospital-api/internal/repository"
	"github.com/jwalitptl/hospital-api/internal/service"
	"github.com/jwalitptl/hospital-api/pkg/errors"
	"github.com/jwalitptl/hospital-api/pkg/security"
)

const emailTaken = "Email already registered"

type Servicer interface {
	Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error)
	Get(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context, page model.Page) ([]*model.User, error)
	Update(ctx context.Context, id string, patch model.UserPatch) (*model.User, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	service.CRUD[model.User]
	repo   repository.UserRepository
	hasher security.PasswordHasher
	now    func() time.Time
}

func NewService(repo repository.UserRepository, hasher security.PasswordHasher) *Service {
	return &Service{
		CRUD:   service.NewCRUD[model.User](repo, policy.ResourceUser, "User"),
		repo:   repo,
		hasher: hasher,
		now:    time.Now,
	}
}

// Create is admin only. The email is checked up front so the caller gets a
// conflict rather than a constraint error.
func (s *Service) Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	if _, err := s.Authorize(ctx, policy.OpCreate, ""); err != nil {
		return nil, err
	}
	if err := s.ensureEmailFree(ctx, req.Email, ""); err != nil {
		return nil, err
	}
	user, err := NewAccount(s.hasher, req.Name, req.Email, req.Password, req.Role, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if stderrors.Is(err, repository.ErrDuplicate) {
			return nil, errors.Conflict(emailTaken, err)
		}
		return nil, s.Translate(err, "create")
	}
	return user, nil
}

// Update lets admins edit anyone and users edit themselves. Only admins may
// change a role.
func (s *Service) Update(ctx context.Context, id string, patch model.UserPatch) (*model.User, error) {
	actor, err := s.Authorize(ctx, policy.OpUpdate, id)
	if err != nil {
		return nil, err
	}
	if patch.Role != nil && !actor.IsAdmin() {
		return nil, errors.Forbidden(fmt.Errorf("%s may not change roles", actor.Role))
	}
	if patch.Email != nil {
		if err := s.ensureEmailFree(ctx, *patch.Email, id); err != nil {
			return nil, err
		}
	}

	var hash string
	if patch.Password != nil {
		if hash, err = hashPassword(s.hasher, *patch.Password); err != nil {
			return nil, err
		}
	}

	user, err := s.repo.Update(ctx, id, func(u *model.User) {
		patch.Apply(u)
		if hash != "" {
			u.PasswordHash = hash
		}
	})
	if err != nil {
		if stderrors.Is(err, repository.ErrDuplicate) {
			return nil, errors.Conflict(emailTaken, err)
		}
		return nil, s.Translate(err, "update")
	}
	return user, nil
}

// ensureEmailFree fails with conflict when email belongs to a user other
// than exceptID.
func (s *Service) ensureEmailFree(ctx context.Context, email, exceptID string) error {
	existing, err := s.repo.GetByEmail(ctx, email)
	switch {
	case stderrors.Is(err, repository.ErrNotFound):
		return nil
	case err != nil:
		return s.Translate(err, "look up")
	case existing.ID != exceptID:
		return errors.Conflict(emailTaken, nil)
	}
	return nil
}

// NewAccount builds a user with a hashed password and a fresh id.
func NewAccount(hasher security.PasswordHasher, name, email, password string, role model.Role, now time.Time) (*model.User, error) {
	hash, err := hashPassword(hasher, password)
	if err != nil {
		return nil, err
	}
	return &model.User{
		ID:           model.NewID(model.PrefixUser),
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: hash,
		CreatedAt:    now,
	}, nil
}

func hashPassword(hasher security.PasswordHasher, password string) (string, error) {
	hash, err := hasher.Hash(password)
	if stderrors.Is(err, security.ErrPasswordTooShort) {
		return "", errors.BadRequest(fmt.Sprintf("password must be at least %d characters", security.MinPasswordLen), err)
	}
	if err != nil {
		return "", errors.Internal(fmt.Errorf("failed to hash password: %w", err))
	}
	return hash, nil
}
