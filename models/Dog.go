package models

import "gorm.io/gorm"

// Dog holds the profile a customer filled in during the plan builder wizard.
// WeightKg and ActivityLevel feed the advisory feeding calculation; the
// authoritative biweekly amount lives on each PlanItem.
type Dog struct {
	gorm.Model
	Name          string  `gorm:"not null" json:"name"`
	WeightKg      float64 `gorm:"not null" json:"weight_kg"`
	ActivityLevel string  `gorm:"type:varchar(16);default:moderate" json:"activity_level"`
}
