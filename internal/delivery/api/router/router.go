// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"path"
	"path/filepath"

	"vitae/config"
	"vitae/internal/delivery/api/middleware"
	"vitae/internal/delivery/api/router/handler"
	"vitae/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// frontendPages maps page routes to the files served from http.frontendDir.
var frontendPages = map[string]string{
	"/signup":    "signup.html",
	"/login":     "login.html",
	"/dashboard": "dashboard.html",
}

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Metrics
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Metrics
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Prometheus scrape endpoint
	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.profileHandler.GetProfile)
		userGroup.PUT("/profile", r.profileHandler.UpdateProfile)
		userGroup.POST("/profile/photo", r.profileHandler.UploadPhoto)
		userGroup.POST("/profile/resume", r.profileHandler.UploadResume)
		userGroup.GET("/profile/qr", r.profileHandler.ShareQR)
	}

	// Public profile and stored uploads
	e.GET("/profiles/:username", r.profileHandler.GetPublicProfile)
	e.GET(path.Join(r.publicPath(), "*"), r.profileHandler.ServeFile)
}

// RegisterFrontendRoutes serves the static pages when a frontend directory is configured.
func (r *router) RegisterFrontendRoutes(e *echo.Echo) {
	dir := r.config.HTTP.FrontendDir
	if dir == "" {
		return
	}

	for route, file := range frontendPages {
		e.File(route, filepath.Join(dir, file))
	}
}

func (r *router) publicPath() string {
	if r.config.Upload == nil || r.config.Upload.PublicPath == "" {
		return "/uploads"
	}

	return path.Join("/", r.config.Upload.PublicPath)
}
