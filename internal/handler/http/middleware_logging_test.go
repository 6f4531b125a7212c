package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// injectLogger puts a zerolog.Logger into the request context the same
// way the trace-ID stage does.
func injectLogger(r *http.Request, l zerolog.Logger) *http.Request {
	return r.WithContext(l.WithContext(r.Context()))
}

// makeRequest creates a test request with a buffer-backed logger in context.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return injectLogger(req, l)
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/test",
			handlerStatus:   http.StatusOK,
			handlerResponse: "OK",
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/test"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
			},
		},
		{
			name:          "POST 404 empty body",
			method:        http.MethodPost,
			path:          "/missing",
			handlerStatus: http.StatusNotFound,
			checkLogContains: []string{
				`"method":"POST"`,
				`"uri":"/missing"`,
				`"status":404`,
				`"size":0`,
			},
		},
		{
			name:            "implicit 200 without WriteHeader",
			method:          http.MethodGet,
			path:            "/implicit",
			handlerStatus:   0, // handler writes body only
			handlerResponse: "hello",
			checkLogContains: []string{
				`"status":200`,
				`"size":5`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, nil)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.handlerStatus != 0 {
					w.WriteHeader(tt.handlerStatus)
				}
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			var buf bytes.Buffer
			req := makeRequest(tt.method, tt.path, &buf)
			rec := httptest.NewRecorder()

			h.withLogging(next).ServeHTTP(rec, req)

			logLine := buf.String()
			for _, fragment := range tt.checkLogContains {
				assert.Contains(t, logLine, fragment)
			}
		})
	}
}

// TestResponseWriter_SecondWriteHeaderIgnored checks the single-header
// guarantee of the decorator.
func TestResponseWriter_SecondWriteHeaderIgnored(t *testing.T) {
	rec := httptest.NewRecorder()
	lw := &responseWriter{ResponseWriter: rec}

	lw.WriteHeader(http.StatusCreated)
	lw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, lw.status)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

// TestResponseWriter_SizeAccumulates checks that size covers all writes.
func TestResponseWriter_SizeAccumulates(t *testing.T) {
	rec := httptest.NewRecorder()
	lw := &responseWriter{ResponseWriter: rec}

	_, err := lw.Write([]byte("hello "))
	assert.NoError(t, err)
	_, err = lw.Write([]byte("world"))
	assert.NoError(t, err)

	assert.Equal(t, len("hello world"), lw.size)
	assert.Equal(t, http.StatusOK, lw.status)
}

// TestWithLogging_DurationPositive is a smoke check that the recorded
// duration covers the handler's execution time.
func TestWithLogging_DurationPositive(t *testing.T) {
	h := newTestHandler(t, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Millisecond)
		w.WriteHeader(http.StatusOK)
	})

	var buf bytes.Buffer
	req := makeRequest(http.MethodGet, "/slow", &buf)
	rec := httptest.NewRecorder()

	h.withLogging(next).ServeHTTP(rec, req)

	assert.Contains(t, buf.String(), `"duration":`)
}
