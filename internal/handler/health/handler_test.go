package health

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/hospital-api/pkg/metrics"
)

func setupTest(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics("hospital", reg)
	m.ObserveDB("users.get", time.Now(), nil)

	r := gin.New()
	NewHandler(db, reg).RegisterRoutes(r, r.Group("/api"))
	return r, mock
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestProbes(t *testing.T) {
	r, _ := setupTest(t)

	w := get(r, "/health/live")
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(r, "/api/health")
	assert.JSONEq(t, `{"status":"success","data":{"status":"healthy"}}`, w.Body.String())
}

func TestReadiness(t *testing.T) {
	r, mock := setupTest(t)
	mock.ExpectPing()
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	assert.Equal(t, http.StatusOK, get(r, "/health/ready").Code)
	assert.Equal(t, http.StatusServiceUnavailable, get(r, "/health/ready").Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetricsEndpoint(t *testing.T) {
	r, _ := setupTest(t)

	w := get(r, "/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hospital_db_operations_total")
}
