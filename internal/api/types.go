package api

import (
	"github.com/safebite/backend/internal/service"
	"github.com/safebite/backend/internal/types"
)

// ProfileResponse carries the raw stored strings and their parsed view.
type ProfileResponse struct {
	Allergies string               `json:"allergies"`
	Symptoms  string               `json:"symptoms"`
	Profile   types.AllergyProfile `json:"profile"`
}

// AnalysisResponse is the wire form of one analysis result.
type AnalysisResponse struct {
	FoodName       string           `json:"food_name,omitempty"`
	Allergens      []string         `json:"allergens"`
	Severity       service.Severity `json:"severity"`
	RiskLabel      string           `json:"risk_label"`
	Recommendation string           `json:"recommendation"`
}

func newAnalysisResponse(foodName string, result *service.AnalysisResult) AnalysisResponse {
	return AnalysisResponse{
		FoodName:       foodName,
		Allergens:      result.Allergens,
		Severity:       result.Severity,
		RiskLabel:      result.RiskLabel(),
		Recommendation: result.Recommendation(),
	}
}

// DietPlanResponse pairs the profile's foods-to-avoid with the selected
// bundle.
type DietPlanResponse struct {
	FoodsToAvoid []string          `json:"foods_to_avoid"`
	Plan         *service.DietPlan `json:"plan"`
}

// ChatResponse is the wire form of a chat interaction.
type ChatResponse struct {
	Messages      []service.ChatMessage     `json:"messages"`
	Composing     bool                      `json:"composing"`
	ShowProviders bool                      `json:"show_providers"`
	Providers     []service.ProviderListing `json:"providers,omitempty"`
}

func newChatResponse(messages []service.ChatMessage, session *service.ChatSession) ChatResponse {
	resp := ChatResponse{
		Messages:      messages,
		Composing:     session.IsComposing(),
		ShowProviders: session.ShowProviders(),
	}
	if resp.ShowProviders {
		resp.Providers = service.Providers()
	}
	return resp
}
