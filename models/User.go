package models

import "gorm.io/gorm"

// User represents an account that can authenticate with the platform.
// Customers own plans; administrators operate the fulfillment back office.
type User struct {
	gorm.Model
	Email                string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash         string `gorm:"not null" json:"-"`
	FullName             string `json:"full_name"`
	IsAdmin              bool   `gorm:"not null;default:false" json:"is_admin"`
	IsProductionCustomer bool   `gorm:"not null;default:false" json:"is_production_customer"`
}
