package models

import "gorm.io/gorm"

// PlanItem is one recipe-quantity line on a plan for a specific dog.
// SizeG is the biweekly gram amount computed upstream by the plan builder;
// it already reflects plan type and topper level, so downstream aggregation
// must sum it as-is rather than recompute calories.
type PlanItem struct {
	gorm.Model
	PlanID uint    `gorm:"not null;index" json:"plan_id"`
	Qty    int     `gorm:"not null;default:1" json:"qty"`
	SizeG  float64 `gorm:"not null" json:"size_g"`

	RecipeID *uint `json:"recipe_id,omitempty"`
	DogID    *uint `json:"dog_id,omitempty"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	Dog    *Dog    `gorm:"foreignKey:DogID" json:"dog,omitempty"`
	Plan   *Plan   `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
}
