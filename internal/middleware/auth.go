package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/policy"
	"github.com/jwalitptl/hospital-api/pkg/errors"
	"github.com/jwalitptl/hospital-api/pkg/httputil"
)

const (
	ContextUserID = "user_id"
	ContextClaims = "token_claims"
)

// Authenticator resolves a bearer token to the acting user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.User, *model.TokenClaims, error)
}

type AuthMiddleware struct {
	auth Authenticator
}

func NewAuthMiddleware(auth Authenticator) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Authenticate verifies the bearer token and stores the actor on the request
// context for the services' access policy.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httputil.Fail(c, errors.NewUnauthorized("Not authenticated", nil))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			httputil.Fail(c, errors.NewUnauthorized("Invalid authorization header", nil))
			return
		}

		user, claims, err := m.auth.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			httputil.Fail(c, err)
			return
		}

		c.Request = c.Request.WithContext(policy.WithActor(c.Request.Context(), user))
		c.Set(ContextUserID, user.ID)
		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// ClaimsFromContext returns the claims of the token that authenticated the
// request.
func ClaimsFromContext(c *gin.Context) (*model.TokenClaims, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*model.TokenClaims)
	return claims, ok
}
