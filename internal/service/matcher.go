package service

import (
	"context"
	"strings"
	"time"

	"github.com/safebite/backend/internal/types"
)

// Severity is the coarse risk classification attached to an analysis result
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// MatchKind tags how an analysis result was produced.
type MatchKind int

const (
	// MatchFound means one or more profile allergens appeared in the
	// ingredient text.
	MatchFound MatchKind = iota
	// MatchTrace means the profile is non-empty but nothing matched.
	MatchTrace
	// MatchNoProfile means the patient has no declared allergens to check.
	MatchNoProfile
)

// Display strings attached to the sentinel result kinds.
const (
	traceWarning   = "Trace amounts possible"
	genericWarning = "Generic allergen warning"
)

// AnalysisResult is the outcome of one ingredient or barcode analysis.
// Immutable once returned.
type AnalysisResult struct {
	Kind      MatchKind `json:"-"`
	Allergens []string  `json:"allergens"`
	Severity  Severity  `json:"severity"`
}

// RiskLabel projects the severity onto the banner text shown to the user.
func (r *AnalysisResult) RiskLabel() string {
	switch r.Severity {
	case SeverityHigh:
		return "High risk of allergic reaction"
	case SeverityMedium:
		return "Moderate risk of allergic reaction"
	default:
		return "Low risk of allergic reaction"
	}
}

// Recommendation projects the severity onto the advice text shown to the user.
func (r *AnalysisResult) Recommendation() string {
	switch r.Severity {
	case SeverityHigh:
		return "Avoid this food. It contains allergens that may cause severe reactions based on your profile."
	case SeverityMedium:
		return "Exercise caution with this food. It contains some allergens that may cause reactions."
	default:
		return "This food appears relatively safe, but always be cautious with new foods."
	}
}

// DefaultAnalyzeDelay and DefaultBarcodeDelay mirror the processing windows
// of the original screens.
const (
	DefaultAnalyzeDelay = 1500 * time.Millisecond
	DefaultBarcodeDelay = 2 * time.Second
)

// MatcherService screens ingredient text against a patient's allergy
// profile. Analyses are pure functions of their inputs plus a fixed
// processing delay; the service holds no per-call state and concurrent
// analyses are fully independent.
type MatcherService struct {
	analyzeDelay time.Duration
	barcodeDelay time.Duration
	wait         func(context.Context, time.Duration) error
}

// NewMatcherService creates a MatcherService with the production delays.
func NewMatcherService() *MatcherService {
	return NewMatcherServiceWithDelays(DefaultAnalyzeDelay, DefaultBarcodeDelay)
}

// NewMatcherServiceWithDelays creates a MatcherService with explicit
// processing delays. Tests pass zero to run synchronously.
func NewMatcherServiceWithDelays(analyze, barcode time.Duration) *MatcherService {
	return &MatcherService{
		analyzeDelay: analyze,
		barcodeDelay: barcode,
		wait:         sleepContext,
	}
}

// sleepContext blocks for d or until ctx is done, whichever comes first.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Analyze screens ingredientText against the profile. The food label is not
// part of matching; it only labels saved history records. The scan is a
// literal case-insensitive substring check per profile allergen, in profile
// order, with matched terms title-cased for display. No stemming or synonym
// handling is attempted.
func (s *MatcherService) Analyze(ctx context.Context, foodLabel, ingredientText string, profile types.AllergyProfile) (*AnalysisResult, error) {
	if strings.TrimSpace(ingredientText) == "" {
		return nil, &ValidationError{Reason: "ingredients are required"}
	}

	if err := s.wait(ctx, s.analyzeDelay); err != nil {
		return nil, err
	}

	lowered := strings.ToLower(ingredientText)
	var found []string
	for _, allergen := range profile.Allergens {
		term := strings.ToLower(allergen)
		if term != "" && strings.Contains(lowered, term) {
			found = append(found, titleCase(term))
		}
	}

	switch {
	case len(found) > 0:
		return &AnalysisResult{
			Kind:      MatchFound,
			Allergens: found,
			Severity:  severityForCount(len(found)),
		}, nil
	case len(profile.Allergens) > 0:
		// Nothing matched but the patient does have declared allergens:
		// conservative trace warning, always medium.
		return &AnalysisResult{
			Kind:      MatchTrace,
			Allergens: []string{traceWarning},
			Severity:  SeverityMedium,
		}, nil
	default:
		// No profile to check against at all.
		return &AnalysisResult{
			Kind:      MatchNoProfile,
			Allergens: []string{genericWarning},
			Severity:  SeverityMedium,
		}, nil
	}
}

// AnalyzeBarcode is the packaged-food path. Real barcode decoding is out of
// scope; the upload token is accepted and ignored, and a fixed result comes
// back after the processing delay. The output is byte-for-byte reproducible,
// only the timing varies.
func (s *MatcherService) AnalyzeBarcode(ctx context.Context, uploadID string) (*AnalysisResult, error) {
	if strings.TrimSpace(uploadID) == "" {
		return nil, &ValidationError{Reason: "please upload a barcode image first"}
	}

	if err := s.wait(ctx, s.barcodeDelay); err != nil {
		return nil, err
	}

	return &AnalysisResult{
		Kind:      MatchFound,
		Allergens: []string{"Peanuts", "Milk", "Soy"},
		Severity:  SeverityMedium,
	}, nil
}

// severityForCount maps a matched-allergen count to a severity. The low
// branch is kept even though the trace/no-profile sentinels shadow it;
// the conservative medium default for those cases is intentional.
func severityForCount(count int) Severity {
	switch {
	case count > 2:
		return SeverityHigh
	case count > 0:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// titleCase upper-cases the first letter of a matched term for display.
func titleCase(term string) string {
	if term == "" {
		return term
	}
	return strings.ToUpper(term[:1]) + term[1:]
}
