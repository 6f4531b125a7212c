package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/akarpov/go-web-skeleton/internal/pipeline"
)

// RouteRegistrar installs adopter routes on the terminal router.
type RouteRegistrar func(r chi.Router)

// RequireRole returns a route-level middleware that rejects requests
// whose principal lacks the given role. It is meant for chi route groups
// mounted behind the authentication stage.
func (h *Handler) RequireRole(role string) func(http.Handler) http.Handler {
	return h.withRequireRole(role)
}

// Init assembles the default request pipeline in front of a chi router
// carrying the given routes.
//
// Stage order, outermost first: panic recovery, health probe, security
// headers and HTTPS redirect, static assets, trace ID, access logging,
// metrics, authentication. The health probe is deliberately placed in
// front of the security stage so orchestrator probes are never redirected;
// the authentication stage is registered only when a signing key or API
// key hash is configured. Ordering violations surface as a build error.
func (h *Handler) Init(registrars ...RouteRegistrar) (*pipeline.Pipeline, error) {
	router := chi.NewRouter()
	for _, register := range registrars {
		register(router)
	}

	composer := pipeline.NewComposer().
		Register(pipeline.Stage{
			Name:       "recovery",
			Kind:       pipeline.KindRecovery,
			Hint:       pipeline.HintBeforeSecurity,
			Middleware: middleware.Recoverer,
		}).
		Register(pipeline.Stage{
			Name:       "health",
			Kind:       pipeline.KindHealth,
			Hint:       pipeline.HintBeforeSecurity,
			Middleware: h.withHealth,
		}).
		Register(pipeline.Stage{
			Name:       "security",
			Kind:       pipeline.KindSecurity,
			Middleware: h.withSecurity,
		}).
		Register(pipeline.Stage{
			Name:       "static",
			Kind:       pipeline.KindStatic,
			Hint:       pipeline.HintAfterSecurity,
			Middleware: h.withStatic,
		}).
		Register(pipeline.Stage{
			Name:       "trace-id",
			Kind:       pipeline.KindObservability,
			Middleware: h.withTraceID,
		})

	if h.cfg.Log.Requests {
		composer.Register(pipeline.Stage{
			Name:       "access-log",
			Kind:       pipeline.KindObservability,
			Middleware: h.withLogging,
		})
	}

	composer.Register(pipeline.Stage{
		Name:       "metrics",
		Kind:       pipeline.KindObservability,
		Middleware: h.withMetrics,
	})

	if h.tokens != nil && h.tokens.Enabled() {
		composer.Register(pipeline.Stage{
			Name:       "auth",
			Kind:       pipeline.KindAuthentication,
			Hint:       pipeline.HintAfterSecurity,
			Middleware: h.withAuth,
		})
	}

	return composer.Build(router)
}
