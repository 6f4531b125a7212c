package http

import (
	"github.com/akarpov/go-web-skeleton/internal/auth"
	"github.com/akarpov/go-web-skeleton/internal/config"
	"github.com/akarpov/go-web-skeleton/internal/environment"
	"github.com/akarpov/go-web-skeleton/internal/logger"
)

// Handler owns the HTTP middleware stages and the route wiring built on
// top of them.
type Handler struct {
	cfg    *config.StructuredConfig
	env    environment.Descriptor
	tokens *auth.TokenManager

	metrics *httpMetrics

	logger *logger.Logger
}

func NewHandler(cfg *config.StructuredConfig, env environment.Descriptor, tokens *auth.TokenManager, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		cfg:    cfg,
		env:    env,
		tokens: tokens,
		logger: logger,
	}
}
