package service

import (
	"fmt"
	"strings"

	"github.com/safebite/backend/internal/types"
)

// Intent is the classified purpose of a chat utterance, drawn from a fixed
// closed set.
type Intent string

const (
	IntentFindSpecialist   Intent = "find_specialist"
	IntentExplainAllergies Intent = "explain_allergies"
	IntentGeneric          Intent = "generic"
)

// IntentResult is the outcome of classifying one utterance.
type IntentResult struct {
	Intent        Intent `json:"intent"`
	Response      string `json:"response"`
	ShowProviders bool   `json:"show_providers"`
}

// Assistant response texts.
const (
	specialistResponse = "I found some allergy specialists near you. Here are a few options:"

	allergyKnownResponse = "Based on your profile, you've indicated allergies to: %s. " +
		"It's important to avoid these allergens and consult with a specialist for proper management. " +
		"Would you like me to find doctors near you?"

	allergyUnknownResponse = "I don't have information about your specific allergies yet. " +
		"Please update your profile or tell me what you're allergic to so I can provide better assistance. " +
		"Would you like me to find allergy specialists near you?"

	genericResponse = "I'm here to help with your allergy concerns. " +
		"You can ask me about finding specialists near you, managing specific allergies, or understanding symptoms. " +
		"How can I assist you today?"
)

// intentRules is the ordered decision table. Rules are evaluated top to
// bottom and the first keyword hit wins; extending the assistant means
// adding rows here, not scoring.
var intentRules = []struct {
	keywords []string
	intent   Intent
}{
	{keywords: []string{"doctor", "specialist", "allergist"}, intent: IntentFindSpecialist},
	{keywords: []string{"allerg"}, intent: IntentExplainAllergies},
}

// IntentClassifier classifies chat utterances. Stateless.
type IntentClassifier struct{}

// NewIntentClassifier creates an IntentClassifier.
func NewIntentClassifier() *IntentClassifier {
	return &IntentClassifier{}
}

// Classify maps an utterance to an intent and composes the assistant
// response. The scan is case-insensitive substring containment.
func (c *IntentClassifier) Classify(utterance string, profile types.AllergyProfile) IntentResult {
	lowered := strings.ToLower(utterance)

	for _, rule := range intentRules {
		if !containsAny(lowered, rule.keywords) {
			continue
		}
		switch rule.intent {
		case IntentFindSpecialist:
			return IntentResult{
				Intent:        IntentFindSpecialist,
				Response:      specialistResponse,
				ShowProviders: true,
			}
		case IntentExplainAllergies:
			if profile.HasAllergens() {
				return IntentResult{
					Intent:   IntentExplainAllergies,
					Response: fmt.Sprintf(allergyKnownResponse, profile.JoinedAllergens()),
				}
			}
			return IntentResult{
				Intent:   IntentExplainAllergies,
				Response: allergyUnknownResponse,
			}
		}
	}

	return IntentResult{
		Intent:   IntentGeneric,
		Response: genericResponse,
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
