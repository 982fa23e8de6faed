package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/safebite/backend/internal/middleware"
	"github.com/safebite/backend/internal/service"
)

// Services bundles everything the API surface depends on.
type Services struct {
	Auth     *service.AuthService
	Profile  *service.ProfileService
	Matcher  *service.MatcherService
	DietPlan *service.DietPlanService
	History  *service.HistoryService
	Chat     *service.ChatService
	Images   *service.BarcodeImageService
}

// SetupAPI registers all routes under /api/v1.
func SetupAPI(router *gin.Engine, svcs *Services) {
	v1 := router.Group("/api/v1")
	v1.Use(middleware.ErrorHandler())

	authHandler := NewAuthHandler(svcs.Auth)
	profileHandler := NewProfileHandler(svcs.Profile)
	analysisHandler := NewAnalysisHandler(svcs.Matcher, svcs.Profile, svcs.History, svcs.Images)
	dietHandler := NewDietHandler(svcs.DietPlan, svcs.Profile)
	chatHandler := NewChatHandler(svcs.Chat, svcs.Profile)

	authHandler.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(svcs.Auth))
	{
		profileHandler.RegisterRoutes(protected)
		analysisHandler.RegisterRoutes(protected)
		dietHandler.RegisterRoutes(protected)
		chatHandler.RegisterRoutes(protected)
	}
}

// currentUserID pulls the authenticated user out of the request context.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}
