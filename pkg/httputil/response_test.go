package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(target string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    model.Page
		wantErr bool
	}{
		{name: "defaults", query: "", want: model.Page{Offset: 0, Limit: 100}},
		{name: "explicit", query: "?skip=20&limit=10", want: model.Page{Offset: 20, Limit: 10}},
		{name: "max limit", query: "?limit=1000", want: model.Page{Offset: 0, Limit: 1000}},
		{name: "limit too large", query: "?limit=1001", wantErr: true},
		{name: "zero limit", query: "?limit=0", wantErr: true},
		{name: "negative skip", query: "?skip=-1", wantErr: true},
		{name: "not a number", query: "?skip=abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := ParsePage(testContext("/items" + tt.query))
			if tt.wantErr {
				assert.True(t, errors.HasCode(err, errors.ErrBadRequest))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, page)
		})
	}
}

func TestRespondDeleted(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondDeleted(c, "Out-patient")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","message":"Out-patient deleted successfully"}`, w.Body.String())
}
