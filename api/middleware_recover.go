package api

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/linesmerrill/dmv-records-api/config"
)

// RecoverMiddleware turns a panicking handler into a logged 500 with a JSON
// body instead of a dropped connection
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			zap.S().Errorw("recovered from panic",
				"path", r.URL.Path,
				"requestId", RequestIDFrom(r.Context()),
				"panic", rec,
				"stack", string(debug.Stack()),
			)
			config.ErrorStatus("internal server error", http.StatusInternalServerError, w, fmt.Errorf("panic: %v", rec))
		}()
		next.ServeHTTP(w, r)
	})
}

// NotFoundHandler answers unknown routes with a JSON error
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		config.ErrorStatus("API endpoint not found", http.StatusNotFound, w, fmt.Errorf("no route for %s %s", r.Method, r.URL.Path))
	})
}

// MethodNotAllowedHandler answers a known route called with the wrong verb
func MethodNotAllowedHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		config.ErrorStatus("method not allowed", http.StatusMethodNotAllowed, w, fmt.Errorf("%s not allowed on %s", r.Method, r.URL.Path))
	})
}
