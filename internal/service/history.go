package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/safebite/backend/internal/models"
)

// Food label used when a saved analysis came from the barcode path with no
// name attached.
const defaultFoodLabel = "Scanned Product"

// HistoryService appends analysis records to the patient's history log and
// lists them for reports. The log is append-only; nothing here updates or
// deletes, and the engine never reads the log back to make decisions.
type HistoryService struct {
	db *gorm.DB
}

// NewHistoryService creates a HistoryService.
func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// Append saves one analysis record. An empty food name falls back to the
// placeholder label.
func (s *HistoryService) Append(ctx context.Context, userID uuid.UUID, foodName string, allergens []string, severity Severity) (*models.FoodAnalysis, error) {
	if len(allergens) == 0 {
		return nil, &ValidationError{Reason: "analysis allergens are required"}
	}
	if foodName == "" {
		foodName = defaultFoodLabel
	}

	encoded, err := json.Marshal(allergens)
	if err != nil {
		return nil, err
	}

	record := &models.FoodAnalysis{
		UserID:     userID,
		AnalyzedAt: time.Now().UTC(),
		FoodName:   foodName,
		Allergens:  string(encoded),
		Severity:   string(severity),
	}
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// AnalysisRecord is the decoded view of one saved analysis.
type AnalysisRecord struct {
	ID         uuid.UUID `json:"id"`
	AnalyzedAt time.Time `json:"analyzed_at"`
	FoodName   string    `json:"food_name"`
	Allergens  []string  `json:"allergens"`
	Severity   string    `json:"severity"`
}

// List returns the patient's saved analyses, oldest first.
func (s *HistoryService) List(ctx context.Context, userID uuid.UUID) ([]AnalysisRecord, error) {
	var rows []models.FoodAnalysis
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("analyzed_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]AnalysisRecord, 0, len(rows))
	for _, row := range rows {
		var allergens []string
		if err := json.Unmarshal([]byte(row.Allergens), &allergens); err != nil {
			return nil, err
		}
		records = append(records, AnalysisRecord{
			ID:         row.ID,
			AnalyzedAt: row.AnalyzedAt,
			FoodName:   row.FoodName,
			Allergens:  allergens,
			Severity:   row.Severity,
		})
	}
	return records, nil
}
