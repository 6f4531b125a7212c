package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the per-request correlation identifier on both
// the request and the response.
const traceIDHeader = "X-Trace-ID"

// withTraceID gives every request a correlation identifier and a
// request-scoped logger stamped with it.
//
// An identifier supplied by the caller in X-Trace-ID is kept, so requests
// stay correlated across proxy hops; otherwise a fresh UUID is generated.
// The identifier is echoed back in the response header, and a child logger
// carrying it as the trace_id field is stored in the request context for
// the access-log stage and downstream handlers (see [logger.FromRequest]).
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		scoped := h.logger.GetChildLogger()
		scoped.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(scoped.WithContext(r.Context())))
	})
}
