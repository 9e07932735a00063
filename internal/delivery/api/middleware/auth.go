package middleware

import (
	"strings"

	deliverycontext "vitae/internal/delivery/context"
	"vitae/internal/domain/entity"
	domainerrors "vitae/internal/domain/errors"
	"vitae/internal/infra/metrics"
	"vitae/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerScheme = "Bearer"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	UserUC  usecase.UserUsecase
	Metrics *metrics.Metrics
}

// AuthMiddleware guards routes that need a session token.
type AuthMiddleware struct {
	userUC  usecase.UserUsecase
	metrics *metrics.Metrics
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{userUC: params.UserUC, metrics: params.Metrics}
}

// Authenticate validates the bearer token and stores the resolved user on the context.
// Every failure is answered with 401 through the centralized error handler.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := m.authenticate(c)
		m.metrics.ObserveAuth(metrics.OperationAuthenticate, err)
		if err != nil {
			return err
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}

func (m *AuthMiddleware) authenticate(c echo.Context) (*entity.User, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return nil, domainerrors.ErrMissingToken
	}

	scheme, token, ok := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, bearerScheme) || token == "" {
		return nil, domainerrors.ErrInvalidToken.WithDetails("authorization header must use the Bearer scheme")
	}

	return m.userUC.Authenticate(c.Request().Context(), token)
}
