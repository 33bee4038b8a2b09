package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ksaito/giftapi/internal/auth"
	"github.com/ksaito/giftapi/internal/config"
	"github.com/ksaito/giftapi/internal/logger"
	"github.com/ksaito/giftapi/internal/metrics"
	"github.com/ksaito/giftapi/internal/user"
)

// Dependencies groups the services required by the HTTP router.
type Dependencies struct {
	Config      config.Config
	Logger      *zap.Logger
	AuthService *auth.Service
	UserService *user.Service
}

// NewRouter builds a Gin engine with foundational middleware and routes.
func NewRouter(deps Dependencies) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.Middleware())
	router.Use(logger.RequestLogger(deps.Logger))
	router.Use(metrics.Middleware())

	metrics.Register(router, deps.Config.Metrics.PrometheusPath)

	api := router.Group("/api")
	registerHealthRoutes(api)

	if deps.AuthService != nil {
		auth.RegisterRoutes(api, deps.AuthService)

		protected := api.Group("/")
		protected.Use(auth.Middleware(deps.AuthService))

		auth.RegisterProtectedRoutes(protected, deps.AuthService)
		if deps.UserService != nil {
			user.RegisterRoutes(protected, deps.UserService)
		}
	}

	return router
}
