package service

import (
	"strings"

	"github.com/safebite/backend/internal/types"
)

// planPriority is the normative selection order. The match term is tested
// as a substring of the joined allergen text ("peanut" deliberately covers
// both "peanut" and "peanuts"); the key addresses the catalog bundle.
// First match wins even when several terms are present.
var planPriority = []struct {
	term string
	key  string
}{
	{term: "peanut", key: "peanuts"},
	{term: "milk", key: "milk"},
	{term: "soy", key: "soy"},
}

// DietPlanService selects a recommendation bundle for an allergy profile
// from the fixed catalog. Selection is deterministic and idempotent: the
// same profile always yields the same catalog entry.
type DietPlanService struct {
	catalog map[string]*DietPlan
}

// NewDietPlanService creates a DietPlanService over the built-in catalog.
func NewDietPlanService() *DietPlanService {
	return &DietPlanService{catalog: dietPlanCatalog}
}

// Select returns the bundle for the first priority keyword found in the
// profile's allergen text, or the default bundle when none match. Exactly
// one bundle is returned; plans are never blended.
func (s *DietPlanService) Select(profile types.AllergyProfile) *DietPlan {
	text := strings.ToLower(profile.JoinedAllergens())
	for _, p := range planPriority {
		if strings.Contains(text, p.term) {
			return s.catalog[p.key]
		}
	}
	return s.catalog["default"]
}
