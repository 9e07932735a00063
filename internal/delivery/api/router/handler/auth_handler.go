// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"vitae/internal/delivery/api/response"
	"vitae/internal/infra/metrics"
	"vitae/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	UserUC  usecase.UserUsecase
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// AuthHandler serves signup and login.
type AuthHandler struct {
	userUC  usecase.UserUsecase
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		userUC:  params.UserUC,
		metrics: params.Metrics,
		logger:  params.Logger,
	}
}

// Signup handles account registration.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.Signup(c.Request().Context(), &usecase.SignupInput{
		Username: req.Username,
		Password: req.Password,
	})
	h.metrics.ObserveAuth(metrics.OperationSignup, err)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, &UserResponse{
		ID:        output.User.ID,
		Username:  output.User.Username,
		CreatedAt: output.User.CreatedAt,
		UpdatedAt: output.User.UpdatedAt,
	}, "User registered successfully")
}

// Login handles the credential check and returns a bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req CredentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	h.metrics.ObserveAuth(metrics.OperationLogin, err)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &TokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		ExpiresAt:   output.ExpiresAt,
	}, "Login successful")
}

