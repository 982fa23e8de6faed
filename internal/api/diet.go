package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/safebite/backend/internal/service"
)

// DietHandler serves the personalized diet plan view.
type DietHandler struct {
	dietPlan *service.DietPlanService
	profile  *service.ProfileService
}

func NewDietHandler(dietPlan *service.DietPlanService, profile *service.ProfileService) *DietHandler {
	return &DietHandler{
		dietPlan: dietPlan,
		profile:  profile,
	}
}

func (h *DietHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/diet-plan", h.GetDietPlan)
}

func (h *DietHandler) GetDietPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profile, err := h.profile.LoadProfile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}

	plan := h.dietPlan.Select(profile)
	c.JSON(http.StatusOK, DietPlanResponse{
		FoodsToAvoid: profile.Allergens,
		Plan:         plan,
	})
}
