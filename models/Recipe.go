package models

import "gorm.io/gorm"

// Recipe is one of the fresh food recipes customers can put on a plan.
type Recipe struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`
	Slug string `gorm:"uniqueIndex;not null" json:"slug"`
}
