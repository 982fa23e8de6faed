package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safebite/backend/config"
	"github.com/safebite/backend/internal/testhelpers"
)

func TestNew(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)

	cfg := &config.Config{
		ServerHost:   "localhost",
		ServerPort:   "8080",
		JWTSecret:    "test-secret",
		AnalyzeDelay: 1500 * time.Millisecond,
	}

	server := New(cfg, db, nil, nil)
	require.NotNil(t, server)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	server.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestServer_RoutesRegistered(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	server := New(&config.Config{JWTSecret: "test-secret"}, db, nil, nil)

	// Protected routes answer 401 rather than 404 when unauthenticated.
	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/profile"},
		{http.MethodPost, "/api/v1/analysis/ingredients"},
		{http.MethodGet, "/api/v1/diet-plan"},
		{http.MethodGet, "/api/v1/chat/messages"},
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(route.method, route.path, nil)
		server.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, route.path)
	}
}
