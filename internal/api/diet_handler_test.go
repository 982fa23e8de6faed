package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safebite/backend/internal/api"
)

func TestDietPlanEndpoint(t *testing.T) {
	a := setupTestAPI(t)

	t.Run("selects the bundle for the registered allergens", func(t *testing.T) {
		// Profile was registered with "peanut, milk"; peanut has priority.
		resp := a.do(t, http.MethodGet, "/api/v1/diet-plan", a.token, nil)

		require.Equal(t, http.StatusOK, resp.Code)
		var body api.DietPlanResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, []string{"peanut", "milk"}, body.FoodsToAvoid)
		require.NotNil(t, body.Plan)
		assert.Contains(t, body.Plan.Alternatives, "Sunflower seed butter")
	})

	t.Run("follows profile updates", func(t *testing.T) {
		resp := a.do(t, http.MethodPut, "/api/v1/profile", a.token, gin.H{
			"allergies": "shellfish",
		})
		require.Equal(t, http.StatusOK, resp.Code)

		planResp := a.do(t, http.MethodGet, "/api/v1/diet-plan", a.token, nil)
		require.Equal(t, http.StatusOK, planResp.Code)
		var body api.DietPlanResponse
		decodeBody(t, planResp, &body)
		assert.Equal(t, []string{"shellfish"}, body.FoodsToAvoid)
		require.NotNil(t, body.Plan)
		assert.Contains(t, body.Plan.Alternatives, "Read labels carefully")
	})
}
