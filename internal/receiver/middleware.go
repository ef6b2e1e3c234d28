package receiver

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

type authorizedKey struct{}

// Authorized reports whether the request carried the expected authorization header
func Authorized(ctx context.Context) bool {
	ok, _ := ctx.Value(authorizedKey{}).(bool)
	return ok
}

// WithAuthorized returns a copy of ctx marked as authorized or not
func WithAuthorized(ctx context.Context, authorized bool) context.Context {
	return context.WithValue(ctx, authorizedKey{}, authorized)
}

// requireAuthorization marks the request context with the outcome of the
// header check. An empty want accepts every request. Rejection is left to the
// resolvers so clients receive GraphQL errors instead of a bare status.
func requireAuthorization(want string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authorized := want == "" || r.Header.Get("Authorization") == want
			next.ServeHTTP(w, r.WithContext(WithAuthorized(r.Context(), authorized)))
		})
	}
}

// loggingMiddleware logs details about each request and response
func loggingMiddleware(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := logger.With().
				Str("request_id", r.Header.Get("X-Request-Id")).
				Logger().
				WithContext(r.Context())
			r = r.WithContext(ctx)

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			zerolog.Ctx(ctx).Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("remote_addr", r.RemoteAddr).
				Str("user_agent", r.UserAgent()).
				Msg("Incoming request")

			next.ServeHTTP(rw, r)

			zerolog.Ctx(ctx).Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status_code", rw.statusCode).
				Dur("duration", time.Since(start)).
				Msg("Request completed")
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
