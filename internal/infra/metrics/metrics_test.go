package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "vitae/internal/domain/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeSuccess, Outcome(nil))
	assert.Equal(t, "invalid_credentials", Outcome(errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")))
	assert.Equal(t, "invalid_token", Outcome(domainerrors.ErrInvalidToken.WithDetails("token expired")))
	assert.Equal(t, "error", Outcome(errors.New("db down")))
}

func TestMetrics_ObserveAuth(t *testing.T) {
	m := New()

	m.ObserveAuth(OperationLogin, nil)
	m.ObserveAuth(OperationLogin, domainerrors.ErrInvalidCredentials)
	m.ObserveAuth(OperationLogin, domainerrors.ErrInvalidCredentials)

	assert.InDelta(t, 1, testutil.ToFloat64(m.authOutcomesTotal.WithLabelValues(OperationLogin, OutcomeSuccess)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.authOutcomesTotal.WithLabelValues(OperationLogin, "invalid_credentials")), 0)
}

func TestMetrics_StartRequest(t *testing.T) {
	m := New()

	done := m.StartRequest()
	assert.InDelta(t, 1, testutil.ToFloat64(m.httpInFlight), 0)

	done(http.MethodGet, "/profiles/:username", http.StatusOK)
	assert.InDelta(t, 0, testutil.ToFloat64(m.httpInFlight), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues(http.MethodGet, "/profiles/:username", "200")), 0)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveAuth(OperationSignup, nil)
		m.StartRequest()(http.MethodGet, "/", http.StatusOK)
	})
}

func TestMetrics_ObserveDB(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	m := New()
	require.NoError(t, m.ObserveDB(sqlDB, "postgres"))
	assert.Error(t, m.ObserveDB(sqlDB, "postgres"), "a pool is exported once")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `go_sql_open_connections{db_name="postgres"}`)

	var nilMetrics *Metrics
	assert.NoError(t, nilMetrics.ObserveDB(sqlDB, "postgres"))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveAuth(OperationSignup, nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `vitae_auth_outcomes_total{operation="signup",outcome="success"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
