package types

import "strings"

// AllergyProfile is the normalized view of a patient's declared allergies
// and symptoms. It is read-only to the engine; registration and profile
// edits are the only writers.
type AllergyProfile struct {
	Allergens []string `json:"allergens"`
	Symptoms  string   `json:"symptoms"`
}

// ParseAllergyProfile builds a profile from the two raw strings held in the
// profile store. Allergen terms are comma-separated free text; terms are
// trimmed, empty terms dropped, insertion order preserved, duplicates kept
// verbatim. An empty or blank allergies string yields an empty allergen
// list, never a single empty element.
func ParseAllergyProfile(allergies, symptoms string) AllergyProfile {
	profile := AllergyProfile{Symptoms: strings.TrimSpace(symptoms)}
	for _, term := range strings.Split(allergies, ",") {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		profile.Allergens = append(profile.Allergens, term)
	}
	return profile
}

// HasAllergens reports whether the patient declared at least one allergen.
func (p AllergyProfile) HasAllergens() bool {
	return len(p.Allergens) > 0
}

// JoinedAllergens returns the allergen list as a single display string.
func (p AllergyProfile) JoinedAllergens() string {
	return strings.Join(p.Allergens, ", ")
}
