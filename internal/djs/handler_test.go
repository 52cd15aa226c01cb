package djs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/2beens/djbookingcom/internal/telemetry/metrics"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type handlerTestSetup struct {
	router  *mux.Router
	repo    *repoMock
	metrics *metrics.Manager
}

func newHandlerTestSetup() handlerTestSetup {
	repo := NewMockDJsRepo()
	metricsManager := metrics.NewTestManager()
	handler := NewHandler(repo, metricsManager)
	router := mux.NewRouter()
	handler.SetupRoutes(router)
	return handlerTestSetup{
		router:  router,
		repo:    repo,
		metrics: metricsManager,
	}
}

func newTestDJ() *DJ {
	return &DJ{
		Name:     gofakeit.Name(),
		Genre:    gofakeit.RandomString([]string{"techno", "house", "drum and bass", "disco"}),
		Location: gofakeit.City(),
		Price:    gofakeit.Price(100, 2000),
		Rating:   gofakeit.Float64Range(1, 5),
	}
}

func TestHandler_Add(t *testing.T) {
	setup := newHandlerTestSetup()

	dj := newTestDJ()
	reqBody, err := json.Marshal(dj)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/dj", strings.NewReader(string(reqBody)))
	rr := httptest.NewRecorder()
	setup.router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var added DJ
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &added))
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, dj.Name, added.Name)
	assert.Equal(t, dj.Genre, added.Genre)
	assert.Equal(t, dj.Location, added.Location)
	assert.Equal(t, dj.Price, added.Price)
	assert.Equal(t, dj.Rating, added.Rating)
	assert.False(t, added.CreatedAt.IsZero())

	djsList, err := setup.repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, djsList, 1)
	assert.Equal(t, dj.Name, djsList[0].Name)

	assert.Equal(t, float64(1), testutil.ToFloat64(setup.metrics.CounterDJsAdded))
}

func TestHandler_Add_BrokenJson(t *testing.T) {
	setup := newHandlerTestSetup()

	req := httptest.NewRequest("POST", "/dj", strings.NewReader("{broken"))
	rr := httptest.NewRecorder()
	setup.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, `{"message":"Invalid DJ details"}`, rr.Body.String())
}

func TestHandler_Delete(t *testing.T) {
	setup := newHandlerTestSetup()

	dj := newTestDJ()
	dj.ID = "dj-id-1"
	_, err := setup.repo.Add(context.Background(), dj)
	require.NoError(t, err)

	req := httptest.NewRequest("DELETE", "/dj/"+dj.ID, nil)
	rr := httptest.NewRecorder()
	setup.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"message":"DJ deleted"}`, rr.Body.String())

	djsList, err := setup.repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, djsList)
}

func TestHandler_Delete_UnknownIdStillOK(t *testing.T) {
	setup := newHandlerTestSetup()

	req := httptest.NewRequest("DELETE", "/dj/no-such-dj", nil)
	rr := httptest.NewRecorder()
	setup.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"message":"DJ deleted"}`, rr.Body.String())
}

func TestHandler_List(t *testing.T) {
	setup := newHandlerTestSetup()

	dj1 := newTestDJ()
	dj1.ID = "dj-id-1"
	dj2 := newTestDJ()
	dj2.ID = "dj-id-2"
	for _, dj := range []*DJ{dj1, dj2} {
		_, err := setup.repo.Add(context.Background(), dj)
		require.NoError(t, err)
	}

	req := httptest.NewRequest("GET", "/dj", nil)
	rr := httptest.NewRecorder()
	setup.router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var djsList []DJ
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &djsList))
	assert.Len(t, djsList, 2)
}

func TestHandler_List_Empty(t *testing.T) {
	setup := newHandlerTestSetup()

	req := httptest.NewRequest("GET", "/dj", nil)
	rr := httptest.NewRecorder()
	setup.router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
}
