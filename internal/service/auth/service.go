package auth

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/policy"
	"github.com/jwalitptl/hospital-api/internal/repository"
	"github.com/jwalitptl/hospital-api/internal/service"
	"github.com/jwalitptl/hospital-api/internal/service/user"
	"github.com/jwalitptl/hospital-api/pkg/auth"
	"github.com/jwalitptl/hospital-api/pkg/errors"
	"github.com/jwalitptl/hospital-api/pkg/security"
)

const (
	msgBadCredentials  = "Incorrect email or password"
	msgInvalidToken    = "Could not validate credentials"
	msgEmailRegistered = "Email already registered"
	tokenTypeBearer    = "bearer"
)

type Servicer interface {
	Login(ctx context.Context, req model.LoginRequest) (*model.TokenResponse, error)
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, error)
	Authenticate(ctx context.Context, token string) (*model.User, *model.TokenClaims, error)
	Me(ctx context.Context) (*model.User, error)
	Logout(ctx context.Context, claims *model.TokenClaims) error
}

type Service struct {
	userRepo repository.UserRepository
	jwtSvc   auth.JWTService
	revoker  auth.Revoker
	hasher   security.PasswordHasher
	now      func() time.Time
}

func NewService(userRepo repository.UserRepository, jwtSvc auth.JWTService, revoker auth.Revoker, hasher security.PasswordHasher) *Service {
	return &Service{
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
		revoker:  revoker,
		hasher:   hasher,
		now:      time.Now,
	}
}

func (s *Service) Login(ctx context.Context, req model.LoginRequest) (*model.TokenResponse, error) {
	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if stderrors.Is(err, repository.ErrNotFound) {
		return nil, errors.NewUnauthorized(msgBadCredentials, err)
	}
	if err != nil {
		return nil, service.Translate("User", "look up", err)
	}

	if err := s.hasher.Compare(u.PasswordHash, req.Password); err != nil {
		return nil, errors.NewUnauthorized(msgBadCredentials, err)
	}

	token, _, err := s.jwtSvc.GenerateAccessToken(u)
	if err != nil {
		return nil, errors.Internal(err)
	}

	log.Ctx(ctx).Info().Str("user_id", u.ID).Msg("user logged in")

	return &model.TokenResponse{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int64(s.jwtSvc.Expiry().Seconds()),
	}, nil
}

// Register is the public sign-up path and only creates doctor accounts;
// admins are created by an existing admin or the create-admin command.
func (s *Service) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	if req.Role == model.RoleAdmin {
		return nil, errors.Forbidden(fmt.Errorf("self-registration as %s", req.Role))
	}

	_, err := s.userRepo.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return nil, errors.Conflict(msgEmailRegistered, nil)
	case !stderrors.Is(err, repository.ErrNotFound):
		return nil, service.Translate("User", "look up", err)
	}

	u, err := user.NewAccount(s.hasher, req.Name, req.Email, req.Password, model.RoleDoctor, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		if stderrors.Is(err, repository.ErrDuplicate) {
			return nil, errors.Conflict(msgEmailRegistered, err)
		}
		return nil, service.Translate("User", "create", err)
	}
	return u, nil
}

// Authenticate resolves a bearer token to the current user. Revoked tokens
// and tokens of deleted users are rejected.
func (s *Service) Authenticate(ctx context.Context, token string) (*model.User, *model.TokenClaims, error) {
	claims, err := s.jwtSvc.ValidateToken(token)
	if err != nil {
		return nil, nil, errors.NewUnauthorized(msgInvalidToken, err)
	}

	revoked, err := s.revoker.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return nil, nil, errors.Internal(err)
	}
	if revoked {
		return nil, nil, errors.NewUnauthorized(msgInvalidToken, fmt.Errorf("token %s revoked", claims.TokenID))
	}

	u, err := s.userRepo.Get(ctx, claims.UserID)
	if stderrors.Is(err, repository.ErrNotFound) {
		return nil, nil, errors.NewUnauthorized(msgInvalidToken, err)
	}
	if err != nil {
		return nil, nil, service.Translate("User", "get", err)
	}
	return u, claims, nil
}

func (s *Service) Me(ctx context.Context) (*model.User, error) {
	actor, ok := policy.ActorFromContext(ctx)
	if !ok {
		return nil, errors.NewUnauthorized(msgInvalidToken, nil)
	}
	return actor, nil
}

// Logout revokes the presented token until it would have expired.
func (s *Service) Logout(ctx context.Context, claims *model.TokenClaims) error {
	if claims == nil {
		return errors.NewUnauthorized(msgInvalidToken, nil)
	}
	if err := s.revoker.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		return errors.Internal(err)
	}
	return nil
}
