package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/2beens/djbookingcom/internal/auth"
	"github.com/2beens/djbookingcom/internal/config"
	"github.com/2beens/djbookingcom/internal/telemetry/metrics"

	"github.com/go-redis/redismock/v8"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouterForTesting(t *testing.T) *mux.Router {
	t.Helper()

	rdb, _ := redismock.NewClientMock()
	t.Cleanup(func() {
		require.NoError(t, rdb.Close())
	})

	metricsManager := metrics.NewTestManager()
	authService := auth.NewService(
		auth.NewMockAdminsRepo(),
		[]byte("test-secret"),
		time.Hour,
	)

	s := &Server{
		config: &config.Config{
			LoginRateLimitAllowedPerMin: 5,
		},
		redisClient:    rdb,
		authService:    authService,
		authHandler:    auth.NewHandler(authService, metricsManager, false),
		metricsManager: metricsManager,
	}

	return s.routerSetup()
}

func TestRouterSetup_RouteTable(t *testing.T) {
	router := newRouterForTesting(t)

	testCases := []struct {
		method    string
		path      string
		routeName string
	}{
		{"POST", "/admin-login", "admin-login"},
		{"POST", "/admin-logout", "admin-logout"},
		{"GET", "/admin", "get-admin"},
		{"GET", "/events", "list-events"},
		{"POST", "/events", "add-event"},
		{"DELETE", "/events/event-id", "delete-event"},
		{"GET", "/dj", "list-djs"},
		{"POST", "/dj", "add-dj"},
		{"DELETE", "/dj/dj-id", "delete-dj"},
		{"GET", "/no-such-route", "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			var match mux.RouteMatch
			require.True(t, router.Match(req, &match), "no route matched")
			require.NoError(t, match.MatchErr)
			assert.Equal(t, tc.routeName, match.Route.GetName())
		})
	}
}

func TestRouterSetup_ProtectedRoutesRejectWithoutToken(t *testing.T) {
	router := newRouterForTesting(t)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{"GET", "/admin"},
		{"POST", "/events"},
		{"DELETE", "/events/event-id"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s", tc.method, tc.path)
		assert.Equal(t, `{"message":"Unauthorized, token required"}`, rr.Body.String())
	}
}
