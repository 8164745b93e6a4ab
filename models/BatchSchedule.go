package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BatchSchedule is a saved batch plan for a single cook date. Writes are
// upsert-by-date: re-saving a date replaces the planned JSON wholesale.
type BatchSchedule struct {
	gorm.Model
	BatchDate          time.Time      `gorm:"uniqueIndex;not null" json:"batch_date"`
	Status             string         `gorm:"type:varchar(32);not null;default:upcoming" json:"status"`
	Notes              string         `gorm:"type:text" json:"notes"`
	RecipesPlanned     datatypes.JSON `json:"recipes_planned"`
	IngredientsPlanned datatypes.JSON `json:"ingredients_planned"`
	TotalPacks         int            `json:"total_packs"`
	TotalBatches       int            `json:"total_batches"`
}
