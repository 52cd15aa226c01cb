package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/djbookingcom/internal/middleware"

	"github.com/stretchr/testify/assert"
)

func TestCors(t *testing.T) {
	req := httptest.NewRequest("GET", "/events", nil)
	rr := httptest.NewRecorder()

	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	middleware.Cors()(handler).ServeHTTP(rr, req)

	assert.True(t, called)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}
