package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

// CountryLookup resolves ISO country codes for an IP address. A nil lookup
// disables country tagging.
type CountryLookup func(ip string) (string, error)

// Logger emits one access log line per request, tagged with the request id,
// the resolved locale and, when a GeoIP database is configured, the caller's
// country. It must sit inside RequestID and Locale in the chain.
func Logger(l zerolog.Logger, lookup CountryLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rw, r)

			evt := l.Info().
				Str("request_id", RequestIDFromContext(r.Context())).
				Str("locale", LocaleFromContext(r.Context())).
				Dur("duration", time.Since(start))
			if lookup != nil {
				if country, err := lookup(clientIPForRateLimit(r)); err == nil && country != "" {
					evt = evt.Str("country", country)
				}
			}
			evt.Msgf("%s %s %d", r.Method, r.URL.Path, rw.status)
		})
	}
}
