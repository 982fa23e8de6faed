package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodAnalysis is one saved allergen analysis. The table is append-only:
// records are created on an explicit save and listed for reports, never
// updated or deleted.
type FoodAnalysis struct {
	ID         uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID     uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	AnalyzedAt time.Time `gorm:"not null" json:"analyzed_at"`
	FoodName   string    `gorm:"size:255;not null" json:"food_name"`
	// Allergens holds the matched allergen display list as a JSON-encoded
	// array of strings.
	Allergens string    `gorm:"type:text;not null" json:"-"`
	Severity  string    `gorm:"size:10;not null" json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}

func (FoodAnalysis) TableName() string {
	return "food_analyses"
}

func (f *FoodAnalysis) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
