package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/akarpov/go-web-skeleton/internal/auth"
	"github.com/akarpov/go-web-skeleton/internal/logger"
)

// principalCtxKey is the context key under which the authentication stage
// stores the resolved [auth.Principal].
type principalCtxKey struct{}

// PrincipalFromContext returns the principal resolved by the
// authentication stage, if any.
func PrincipalFromContext(ctx context.Context) (auth.Principal, bool) {
	p, ok := ctx.Value(principalCtxKey{}).(auth.Principal)
	return p, ok
}

// withAuth is the authentication stage of the pipeline.
//
// It inspects the incoming "Authorization" header and resolves a principal
// from either a "Bearer <jwt>" credential (validated by the token manager)
// or an "ApiKey <key>" credential (compared against the configured hash).
// On success the principal is stored in the request context for the
// authorization stage and downstream handlers.
//
// The stage rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be split into scheme and credential
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The scheme is neither Bearer nor ApiKey ([ErrUnsupportedAuthScheme]).
//   - The token has expired ([auth.ErrTokenIsExpired]).
//   - The credential is otherwise invalid.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		scheme, credential, err := splitAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		var principal auth.Principal
		switch scheme {
		case "Bearer":
			principal, err = h.tokens.ParseToken(credential)
			if err != nil {
				switch {
				case errors.Is(err, auth.ErrTokenIsExpired):
					log.Err(err).Msg("token expired")
					http.Error(w, auth.ErrTokenIsExpired.Error(), http.StatusUnauthorized)
				default:
					log.Err(err).Msg("error occurred during parsing token")
					http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				}
				return
			}
		case "ApiKey":
			if err = h.tokens.VerifyAPIKey(credential); err != nil {
				log.Err(err).Msg("API key rejected")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			principal = auth.Principal{Subject: "api-key"}
		default:
			log.Err(ErrUnsupportedAuthScheme).Str("scheme", scheme).Send()
			http.Error(w, ErrUnsupportedAuthScheme.Error(), http.StatusUnauthorized)
			return
		}

		// Store the resolved principal in the context so that the
		// authorization stage and downstream handlers can retrieve it
		// without re-parsing the credential.
		ctx := context.WithValue(r.Context(), principalCtxKey{}, principal)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// splitAuthHeader splits a raw "Authorization" header value into its
// scheme and credential parts.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <credential>
//
// It returns [ErrInvalidAuthorizationHeader] when the header contains
// fewer than two space-separated parts and [ErrEmptyToken] when the
// credential part is an empty string.
func splitAuthHeader(authHeader string) (scheme string, credential string, err error) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) < 2 {
		return "", "", ErrInvalidAuthorizationHeader
	}

	if parts[1] == "" {
		return "", "", ErrEmptyToken
	}

	return parts[0], parts[1], nil
}
