package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/2beens/djbookingcom/internal/telemetry/metrics"
	"github.com/2beens/djbookingcom/internal/telemetry/tracing"
	"github.com/2beens/djbookingcom/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

type Handler struct {
	service       *Service
	metrics       *metrics.Manager
	secureCookies bool
}

func NewHandler(
	service *Service,
	metrics *metrics.Manager,
	secureCookies bool,
) *Handler {
	return &Handler{
		service:       service,
		metrics:       metrics,
		secureCookies: secureCookies,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router, rateLimit mux.MiddlewareFunc) {
	router.Handle("/admin-login", rateLimit(http.HandlerFunc(handler.handleLogin))).
		Methods("POST", "OPTIONS").Name("admin-login")
	router.Handle("/admin-logout", rateLimit(http.HandlerFunc(handler.handleLogout))).
		Methods("POST", "OPTIONS").Name("admin-logout")
	router.HandleFunc("/admin", handler.handleGetAdmin).
		Methods("GET", "OPTIONS").Name("get-admin")
}

func (handler *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.login")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var credentials Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Errorf("login, unmarshal json params: %s", err)
		span.SetStatus(codes.Error, "bad-request")
		pkg.WriteJSONResponse(w, `{"error":"Invalid login request"}`, http.StatusBadRequest)
		return
	}

	token, err := handler.service.Login(ctx, credentials)
	switch {
	case err == nil:
		log.Tracef("new login success for %s", credentials.Email)
		span.SetStatus(codes.Ok, "ok")
		pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"token":"%s"}`, token))
	case errors.Is(err, ErrAdminNotFound):
		log.Tracef("[unknown user] failed login attempt for %s", credentials.Email)
		handler.metrics.CounterFailedLogins.Inc()
		span.SetStatus(codes.Error, "user-not-found")
		pkg.WriteJSONResponse(w, `{"error":"User not found"}`, http.StatusNotFound)
	case errors.Is(err, ErrWrongPassword):
		log.Tracef("[password] failed login attempt for %s", credentials.Email)
		handler.metrics.CounterFailedLogins.Inc()
		span.SetStatus(codes.Error, "wrong-password")
		pkg.WriteJSONResponse(w, `{"error":"Invalid credentials"}`, http.StatusUnauthorized)
	default:
		log.Errorf("login failed for %s: %s", credentials.Email, err)
		span.SetStatus(codes.Error, "internal")
		span.RecordError(err)
		pkg.WriteJSONResponse(w, `{"error":"Internal server error"}`, http.StatusInternalServerError)
	}
}

func (handler *Handler) handleGetAdmin(w http.ResponseWriter, r *http.Request) {
	admin, ok := AdminFromContext(r.Context())
	if !ok {
		// the auth gate attaches the admin; missing it means the
		// request never went through the gate
		pkg.WriteJSONResponse(w, `{"message":"Unauthorized, token required"}`, http.StatusUnauthorized)
		return
	}

	adminJson, err := json.Marshal(admin)
	if err != nil {
		log.Errorf("marshal admin error: %s", err)
		pkg.WriteJSONResponse(w, `{"error":"Internal server error"}`, http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"success":true,"admin":%s}`, adminJson))
}

// handleLogout only clears the client-side cookie. The token itself is
// stateless and stays valid until its expiry; there is no server-side
// revocation.
func (handler *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.logout")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   handler.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})

	log.Trace("admin logout, client cookie cleared")
	span.SetStatus(codes.Ok, "ok")
	pkg.WriteJSONResponseOK(w, `{"success":true,"message":"Logged out successfully"}`)
}
