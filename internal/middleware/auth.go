package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/djbookingcom/internal/auth"
	"github.com/2beens/djbookingcom/internal/telemetry/tracing"
	"github.com/2beens/djbookingcom/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=auth.go -destination=auth_mocks_test.go -package=middleware_test

type authenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.Admin, error)
}

type AuthMiddlewareHandler struct {
	authenticator  authenticator
	publicRoutes   map[string]bool
	publicPrefixes []string
}

func NewAuthMiddlewareHandler(authenticator authenticator) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		authenticator: authenticator,
		publicRoutes: map[string]bool{
			"GET /": true,

			// login-logout:
			"POST /admin-login":  true,
			"POST /admin-logout": true,

			// events are readable by anyone, mutations go through the gate
			"GET /events": true,

			// DJ create/delete ship without the gate in the current
			// site contract, unlike events
			"GET /dj":  true,
			"POST /dj": true,
		},
		publicPrefixes: []string{
			"DELETE /dj/",
		},
	}
}

func (h *AuthMiddlewareHandler) requestIsPublic(method, path string) bool {
	key := method + " " + path
	if h.publicRoutes[key] {
		return true
	}
	for _, prefix := range h.publicPrefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.requestIsPublic(r.Method, r.URL.Path) {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				pkg.WriteJSONResponse(w, `{"message":"Unauthorized, token required"}`, http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			admin, err := h.authenticator.Authenticate(ctx, token)
			if err != nil {
				// which check failed stays in the logs; the client
				// only learns that it is not getting in
				if errors.Is(err, auth.ErrNoToken) {
					log.Tracef("[empty token] [auth middleware] unauthorized => %s", r.URL.Path)
					pkg.WriteJSONResponse(w, `{"message":"Unauthorized, token required"}`, http.StatusUnauthorized)
					span.SetStatus(codes.Error, "missing-auth-token")
					return
				}
				log.Tracef("[invalid token] [auth middleware] unauthorized => %s: %s", r.URL.Path, err)
				pkg.WriteJSONResponse(w, `{"message":"Invalid or expired token"}`, http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-token")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.ContextWithAdmin(ctx, admin)))
		})
	}
}
