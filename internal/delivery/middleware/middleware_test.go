package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vitae/config"
	deliverycontext "vitae/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "reuses caller id", incoming: "req-123", keep: true},
		{name: "generates when missing"},
		{name: "replaces id with spaces", incoming: "bad id"},
		{name: "replaces oversized id", incoming: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			m := NewRequestIDMiddleware(slog.Default())

			var ctxID string
			e.GET("/", func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return c.NoContent(http.StatusNoContent)
			}, m.Process)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			header := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, header)
			assert.Equal(t, header, ctxID)
			if tt.keep {
				assert.Equal(t, tt.incoming, header)
			} else {
				assert.NotEqual(t, tt.incoming, header)
			}
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg := &config.Config{}
	m := NewLoggerMiddleware(logger, cfg)

	e := echo.New()
	e.Use(m.Handle)
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/fail", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "nope")
	})

	for _, target := range []string{"/health", "/ok", "/fail?password=hunter2"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "only the failed request is logged outside debug mode")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "/fail", entry["uri"])
	assert.EqualValues(t, http.StatusBadRequest, entry["status"])
	assert.NotContains(t, buf.String(), "hunter2")
}
