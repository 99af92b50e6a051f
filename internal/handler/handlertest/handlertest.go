// Package handlertest wires handlers into a gin engine with the error and
// validation middleware for httptest-driven tests.
package handlertest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/hospital-api/internal/middleware"
	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/policy"
)

// Doctor is the actor placed on every request unless a test overrides it.
var Doctor = &model.User{ID: "usr-doc", Name: "Dr. Test", Role: model.RoleDoctor}

// NewRouter returns an engine whose /api group carries actor on the request
// context. register mounts the handler under test.
func NewRouter(actor *model.User, register func(api *gin.RouterGroup)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler(), middleware.Validation(middleware.DefaultValidationConfig()))
	api := r.Group("/api", func(c *gin.Context) {
		if actor != nil {
			c.Request = c.Request.WithContext(policy.WithActor(c.Request.Context(), actor))
		}
		c.Next()
	})
	register(api)
	return r
}

// Do sends a request; a non-nil body is encoded as JSON unless it is
// already a string.
func Do(t *testing.T, r http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Envelope is the decoded response body.
type Envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func Decode(t *testing.T, w *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

// DecodeData unmarshals the data field of the envelope into v.
func DecodeData(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(Decode(t, w).Data, v))
}
