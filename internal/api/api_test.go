package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/safebite/backend/internal/api"
	"github.com/safebite/backend/internal/service"
	"github.com/safebite/backend/internal/testhelpers"
)

// testAPI is one fully wired API surface over in-memory stores, with all
// processing delays set to zero.
type testAPI struct {
	router *gin.Engine
	token  string
	userID uuid.UUID
}

func setupTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	profiles := service.NewProfileService(testhelpers.NewMemoryStore())
	auth := service.NewAuthService(db, profiles, "test-secret")

	router := gin.New()
	api.SetupAPI(router, &api.Services{
		Auth:     auth,
		Profile:  profiles,
		Matcher:  service.NewMatcherServiceWithDelays(0, 0),
		DietPlan: service.NewDietPlanService(),
		History:  service.NewHistoryService(db),
		Chat:     service.NewChatService(service.NewIntentClassifier(), 0),
	})

	a := &testAPI{router: router}

	resp := a.do(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":      "Test Patient",
		"birthdate": "1990-04-12",
		"age":       36,
		"weight":    70,
		"email":     "patient@example.com",
		"password":  "password123",
		"allergies": "peanut, milk",
		"symptoms":  "hives",
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	a.token = body.Token

	claims, err := auth.ValidateToken(a.token)
	require.NoError(t, err)
	a.userID = claims.UserID

	return a
}

// do performs a JSON request against the test router. An empty token sends
// no Authorization header.
func (a *testAPI) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	a.router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), out), resp.Body.String())
}
