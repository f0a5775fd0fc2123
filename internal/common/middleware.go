package common

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"viztube/internal/logging"
	"viztube/internal/metrics"
)

// statusRecorder captures the status code for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

// RequestID reuses an upstream X-Request-ID or mints one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = logging.NewRequestID()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(logging.ContextWithRequestID(r.Context(), id)))
	})
}

// AccessLog logs one line per request and records Prometheus metrics under
// the route template, so ids in paths do not explode label cardinality.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		elapsed := time.Since(start)

		route := r.URL.Path
		if cur := mux.CurrentRoute(r); cur != nil {
			if tpl, err := cur.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		metrics.RecordAPIRequest(r.Method, route, strconv.Itoa(rec.status), elapsed)

		logging.Ctx(r.Context()).Info().
			Str("method", r.Method).
			Str("route", route).
			Int("status", rec.status).
			Dur("elapsed", elapsed).
			Msg("request")
	})
}

// CORS allows the configured origin with credentials, as the web client
// sends its tokens as cookies.
func CORS(origin string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allow := origin
			if allow == "*" && r.Header.Get("Origin") != "" {
				allow = r.Header.Get("Origin")
			}
			w.Header().Set("Access-Control-Allow-Origin", allow)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Authenticator turns access tokens into a Viewer on the request context.
type Authenticator struct {
	tokens    *TokenManager
	responder *Responder
}

func NewAuthenticator(tokens *TokenManager, responder *Responder) *Authenticator {
	return &Authenticator{tokens: tokens, responder: responder}
}

// RequireAuth rejects requests without a valid access token.
func (a *Authenticator) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := accessToken(r)
		if raw == "" {
			a.responder.Error(w, r, Unauthorized("Unauthorized request"))
			return
		}
		claims, err := a.tokens.ValidateAccessToken(raw)
		if err != nil {
			a.responder.Error(w, r, Unauthorized("Invalid access token").WithCause(err))
			return
		}
		next.ServeHTTP(w, r.WithContext(WithViewer(r.Context(), viewerFromClaims(claims))))
	})
}

// OptionalAuth attaches a Viewer when a valid token is present and otherwise
// lets the request through anonymously.
func (a *Authenticator) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if raw := accessToken(r); raw != "" {
			if claims, err := a.tokens.ValidateAccessToken(raw); err == nil {
				r = r.WithContext(WithViewer(r.Context(), viewerFromClaims(claims)))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// Wrap applies RequireAuth to a single handler func.
func (a *Authenticator) Wrap(h http.HandlerFunc) http.Handler {
	return a.RequireAuth(h)
}

// Maybe applies OptionalAuth to a single handler func.
func (a *Authenticator) Maybe(h http.HandlerFunc) http.Handler {
	return a.OptionalAuth(h)
}

func viewerFromClaims(c *Claims) Viewer {
	return Viewer{ID: c.UserID, Username: c.Username, Email: c.Email}
}

// cookie first, then "Authorization: Bearer <token>"
func accessToken(r *http.Request) string {
	if c, err := r.Cookie("accessToken"); err == nil && c.Value != "" {
		return c.Value
	}
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
