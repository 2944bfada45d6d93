package models

import "time"

// Plan is an immutable catalog entry. Plans are owned by the catalog
// management concern; the billing engine only reads them.
type Plan struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"name"`
	DisplayName      string    `gorm:"type:varchar(100);not null" json:"display_name"`
	PriceCents       int64     `gorm:"not null;index" json:"price_cents"`
	LeadsIncluded    int64     `gorm:"not null" json:"leads_included"`
	ExternalPlanCode string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"external_plan_code"`
	IsActive         bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
