package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"vitae/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()
	assert.NotEmpty(t, GetRequestID(c), "a fresh id is generated when none is set")

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestLogger(t *testing.T) {
	fallback := slog.Default()
	scoped := slog.Default().With(slog.String("request_id", "req-1"))

	assert.Nil(t, GetLogger(context.Background()))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestUser(t *testing.T) {
	c := newEchoContext()

	_, ok := GetUser(c)
	assert.False(t, ok)

	SetUser(c, nil)
	_, ok = GetUser(c)
	assert.False(t, ok, "a nil user is not an authenticated one")

	alice := &entity.User{Username: "alice"}
	SetUser(c, alice)
	user, ok := GetUser(c)
	assert.True(t, ok)
	assert.Same(t, alice, user)
}
