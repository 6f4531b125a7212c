package http

import (
	"net/http"
	"strings"
)

// withStatic serves files from the configured static directory for GET
// and HEAD requests under the configured URL prefix. Requests outside the
// prefix, or when no static directory is configured, fall through to the
// next stage untouched. Directory listings are not exposed: a request for
// a directory path falls back to 404 via the file server's index lookup.
func (h *Handler) withStatic(next http.Handler) http.Handler {
	if h.cfg.Static.Dir == "" {
		return next
	}

	prefix := h.cfg.Static.Prefix
	fileServer := http.StripPrefix(prefix, http.FileServer(http.Dir(h.cfg.Static.Dir)))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if (r.Method == http.MethodGet || r.Method == http.MethodHead) && strings.HasPrefix(r.URL.Path, prefix) {
			fileServer.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}
