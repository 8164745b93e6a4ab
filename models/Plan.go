package models

import "gorm.io/gorm"

// Plan statuses that count as live demand for batch planning.
const (
	PlanStatusActive     = "active"
	PlanStatusPurchased  = "purchased"
	PlanStatusInProgress = "in_progress"
)

// Plan is a customer's subscription plan assembled by the wizard.
type Plan struct {
	gorm.Model
	UserID uint       `gorm:"not null;index" json:"user_id"`
	Status string     `gorm:"type:varchar(32);not null;default:active" json:"status"`
	User   *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items  []PlanItem `gorm:"foreignKey:PlanID" json:"items,omitempty"`
}
