package middleware

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/policy"
	"github.com/jwalitptl/hospital-api/pkg/errors"
	"github.com/jwalitptl/hospital-api/pkg/httputil"
	"github.com/jwalitptl/hospital-api/pkg/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockAuthenticator struct {
	mock.Mock
}

func (m *mockAuthenticator) Authenticate(ctx context.Context, token string) (*model.User, *model.TokenClaims, error) {
	args := m.Called(ctx, token)
	user, _ := args.Get(0).(*model.User)
	claims, _ := args.Get(1).(*model.TokenClaims)
	return user, claims, args.Error(2)
}

func newRouter(middlewares ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), ErrorHandler(), Validation(DefaultValidationConfig()))
	r.Use(middlewares...)
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuthenticate(t *testing.T) {
	user := &model.User{ID: "usr-1", Role: model.RoleDoctor}
	claims := &model.TokenClaims{TokenID: "tok-1", UserID: "usr-1"}

	tests := []struct {
		name       string
		header     string
		setup      func(*mockAuthenticator)
		wantStatus int
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{
			name:   "rejected token",
			header: "Bearer bad",
			setup: func(m *mockAuthenticator) {
				m.On("Authenticate", mock.Anything, "bad").Return(nil, nil, errors.NewUnauthorized("Could not validate credentials", nil))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(m *mockAuthenticator) {
				m.On("Authenticate", mock.Anything, "good").Return(user, claims, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authn := new(mockAuthenticator)
			if tt.setup != nil {
				tt.setup(authn)
			}
			r := newRouter(NewAuthMiddleware(authn).Authenticate())
			r.GET("/me", func(c *gin.Context) {
				actor, ok := policy.ActorFromContext(c.Request.Context())
				require.True(t, ok)
				got, ok := ClaimsFromContext(c)
				require.True(t, ok)
				c.JSON(http.StatusOK, gin.H{"id": actor.ID, "jti": got.TokenID})
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decode(t, w)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "usr-1", body["id"])
				assert.Equal(t, "tok-1", body["jti"])
			} else {
				assert.Equal(t, "error", body["status"])
			}
		})
	}
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"not found", errors.NotFound("Out-patient", nil), http.StatusNotFound, "Out-patient not found"},
		{"forbidden", errors.Forbidden(nil), http.StatusForbidden, "Not enough permissions"},
		{"conflict", errors.Conflict("Email already registered", nil), http.StatusConflict, "Email already registered"},
		{"internal hides detail", errors.Internal(stderrors.New("pq: connection refused")), http.StatusInternalServerError, "Internal server error"},
		{"plain error", stderrors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter()
			r.GET("/x", func(c *gin.Context) { httputil.Fail(c, tt.err) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, map[string]interface{}{"status": "error", "message": tt.wantMessage}, decode(t, w))
		})
	}
}

type bloodRequest struct {
	Email      string  `json:"email" binding:"required,email"`
	BloodGroup *string `json:"blood_group" binding:"omitempty,bloodgroup"`
}

func TestValidationReportsJSONFieldNames(t *testing.T) {
	r := newRouter()
	r.POST("/x", func(c *gin.Context) {
		var req bloodRequest
		if !httputil.BindJSON(c, &req) {
			return
		}
		c.Status(http.StatusCreated)
	})

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantFields []string
	}{
		{"valid", `{"email":"a@example.com","blood_group":"AB-"}`, http.StatusCreated, nil},
		{"bad blood group", `{"email":"a@example.com","blood_group":"C+"}`, http.StatusBadRequest, []string{"blood_group"}},
		{"missing email", `{}`, http.StatusBadRequest, []string{"email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantFields == nil {
				return
			}
			var body struct {
				Status string            `json:"status"`
				Errors []ValidationError `json:"errors"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "error", body.Status)
			var fields []string
			for _, e := range body.Errors {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestMalformedBody(t *testing.T) {
	r := newRouter()
	r.POST("/x", func(c *gin.Context) {
		var req bloodRequest
		if !httputil.BindJSON(c, &req) {
			return
		}
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"email":`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", decode(t, w)["message"])
}

func TestRateLimitPerClient(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: 1, Burst: 2})
	r := newRouter(rl.RateLimit())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	call := func(ip string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.RemoteAddr = ip + ":1234"
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.2"))
}

func TestRateLimitDropsIdleClients(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: 1, Burst: 1, IdleTTL: time.Minute})
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.allow("10.0.0.1"))
	now = now.Add(2 * time.Minute)
	assert.True(t, rl.allow("10.0.0.2"))
	assert.Len(t, rl.clients, 1)
}

func TestRateLimitSweepsOncePerIdleTTL(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: 1, Burst: 1, IdleTTL: time.Minute})
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start
	rl.now = func() time.Time { return now }
	at := func(offset time.Duration, ip string) {
		now = start.Add(offset)
		rl.allow(ip)
	}

	at(0, "10.0.0.1")
	at(10*time.Second, "10.0.0.2")
	at(65*time.Second, "10.0.0.3")
	assert.NotContains(t, rl.clients, "10.0.0.1")
	assert.Contains(t, rl.clients, "10.0.0.2")

	// 10.0.0.2 is idle past the TTL but the last sweep was only 15s ago
	at(80*time.Second, "10.0.0.4")
	assert.Contains(t, rl.clients, "10.0.0.2")
	assert.Len(t, rl.clients, 3)

	at(125*time.Second, "10.0.0.5")
	assert.NotContains(t, rl.clients, "10.0.0.2")
	assert.Len(t, rl.clients, 3)
}

func TestRecovery(t *testing.T) {
	r := newRouter(Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Internal server error", body["message"])
	rid := w.Header().Get(HeaderXRequestID)
	require.NotEmpty(t, rid)
	assert.Equal(t, map[string]interface{}{"request_id": rid}, body["data"])
}

func TestRecoveryKeepsPartialResponse(t *testing.T) {
	r := newRouter(Recovery())
	r.GET("/panic", func(c *gin.Context) {
		c.String(http.StatusAccepted, "partial")
		panic("late")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "partial", w.Body.String())
}

func TestRecoveryReraisesAbortHandler(t *testing.T) {
	r := newRouter(Recovery())
	r.GET("/abort", func(c *gin.Context) { panic(http.ErrAbortHandler) })

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/abort", nil))
	})
}

func TestRequestIDEchoed(t *testing.T) {
	r := newRouter()
	r.GET("/x", func(c *gin.Context) {
		assert.Equal(t, c.GetString(ContextRequestID), RequestIDFromContext(c.Request.Context()))
		c.String(http.StatusOK, RequestIDFromContext(c.Request.Context()))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderXRequestID, "req-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get(HeaderXRequestID))
	assert.Equal(t, "req-123", w.Body.String())
}

func TestRequestIDReplacesUnsafeHeader(t *testing.T) {
	r := newRouter()
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for _, incoming := range []string{"", "bad id\twith tab", "a{b}", strings.Repeat("x", 129)} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(HeaderXRequestID, incoming)
		r.ServeHTTP(w, req)

		rid := w.Header().Get(HeaderXRequestID)
		assert.NotEqual(t, incoming, rid)
		_, err := uuid.Parse(rid)
		assert.NoError(t, err, "generated id %q", rid)
	}
}

func TestRequestIDFromContextWithoutMiddleware(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))
}

func TestTimeoutSetsDeadline(t *testing.T) {
	r := newRouter(Timeout(TimeoutConfig{Duration: time.Second}))
	r.GET("/x", func(c *gin.Context) {
		_, ok := c.Request.Context().Deadline()
		assert.True(t, ok)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	m := metrics.NewMetrics("hospital", prometheus.NewRegistry())
	r := newRouter(Metrics(m))
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/abc", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestTotal.WithLabelValues("GET", "/items/:id", "200")))
}

func TestSecurityHeaders(t *testing.T) {
	r := newRouter(SecurityHeaders(DefaultSecurityConfig()))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Contains(t, w.Header().Get("Strict-Transport-Security"), "max-age=31536000")
}

func TestSizeLimit(t *testing.T) {
	r := newRouter(SizeLimit(16))
	r.POST("/x", func(c *gin.Context) {
		var body map[string]string
		if !httputil.BindJSON(c, &body) {
			return
		}
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"a":"b"}`)))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"name":"far too long for the limit"}`)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, "error", decode(t, w)["status"])
}

func TestSizeLimitChunkedBody(t *testing.T) {
	r := newRouter(SizeLimit(16))
	r.POST("/x", func(c *gin.Context) {
		var body map[string]string
		if !httputil.BindJSON(c, &body) {
			return
		}
		c.Status(http.StatusNoContent)
	})

	// no declared length, so only the capped reader can catch it
	req := httptest.NewRequest(http.MethodPost, "/x",
		io.MultiReader(strings.NewReader(`{"name":`), strings.NewReader(`"far too long for the limit"}`)))
	req.ContentLength = -1
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	body := decode(t, w)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "request body exceeds 16 bytes", body["message"])
}
