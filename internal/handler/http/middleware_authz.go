package http

import (
	"net/http"

	"github.com/akarpov/go-web-skeleton/internal/logger"
)

// withRequireRole is the authorization stage of the pipeline. It runs
// strictly after the authentication stage and rejects requests whose
// principal does not carry the given role with HTTP 403 Forbidden. A
// request with no principal at all is rejected with 401, which only
// happens when the stage is wired without the authentication stage in
// front of it.
func (h *Handler) withRequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				log.Error().Msg("authorization stage reached without a principal")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			if !principal.HasRole(role) {
				log.Warn().
					Str("subject", principal.Subject).
					Str("required_role", role).
					Msg("principal lacks required role")
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
