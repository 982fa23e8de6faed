package api

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/safebite/backend/internal/service"
	"github.com/safebite/backend/internal/types"
)

// AnalysisHandler exposes the ingredient and barcode screening paths plus
// the saved-analysis history log.
type AnalysisHandler struct {
	matcher *service.MatcherService
	profile *service.ProfileService
	history *service.HistoryService
	images  *service.BarcodeImageService
}

func NewAnalysisHandler(matcher *service.MatcherService, profile *service.ProfileService, history *service.HistoryService, images *service.BarcodeImageService) *AnalysisHandler {
	return &AnalysisHandler{
		matcher: matcher,
		profile: profile,
		history: history,
		images:  images,
	}
}

func (h *AnalysisHandler) RegisterRoutes(router *gin.RouterGroup) {
	analysis := router.Group("/analysis")
	{
		analysis.POST("/ingredients", h.AnalyzeIngredients)
		analysis.POST("/barcode/upload", h.UploadBarcode)
		analysis.POST("/barcode", h.AnalyzeBarcode)
		analysis.POST("/history", h.SaveAnalysis)
		analysis.GET("/history", h.ListHistory)
	}
}

func (h *AnalysisHandler) AnalyzeIngredients(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req types.AnalyzeIngredientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.FoodName) == "" || strings.TrimSpace(req.Ingredients) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please provide both food name and ingredients"})
		return
	}

	ctx := c.Request.Context()
	profile, err := h.profile.LoadProfile(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}

	result, err := h.matcher.Analyze(ctx, req.FoodName, req.Ingredients, profile)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, newAnalysisResponse(req.FoodName, result))
}

func (h *AnalysisHandler) UploadBarcode(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please upload a barcode image first"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read image"})
		return
	}

	uploadID, err := h.images.Store(c.Request.Context(), data, header.Header.Get("Content-Type"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"upload_id": uploadID})
}

func (h *AnalysisHandler) AnalyzeBarcode(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req types.AnalyzeBarcodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.matcher.AnalyzeBarcode(c.Request.Context(), req.UploadID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, newAnalysisResponse("", result))
}

func (h *AnalysisHandler) SaveAnalysis(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req types.SaveAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, err := h.history.Append(c.Request.Context(), userID, req.FoodName, req.Allergens, service.Severity(req.Severity))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":          record.ID,
		"food_name":   record.FoodName,
		"analyzed_at": record.AnalyzedAt,
	})
}

func (h *AnalysisHandler) ListHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	records, err := h.history.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"analyses": records})
}
