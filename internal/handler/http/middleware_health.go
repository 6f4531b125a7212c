package http

import "net/http"

// withHealth short-circuits liveness probe requests before any other
// processing. It answers GET requests on the configured health path with
// 200 OK and a plain-text body, so that orchestrator probes succeed even
// while the rest of the pipeline (auth, redirects) would reject them.
func (h *Handler) withHealth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == h.cfg.Server.HealthPath && (r.Method == http.MethodGet || r.Method == http.MethodHead) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			if r.Method == http.MethodGet {
				_, _ = w.Write([]byte("ok"))
			}
			return
		}

		next.ServeHTTP(w, r)
	})
}
