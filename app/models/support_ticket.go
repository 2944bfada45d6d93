package models

import "time"

const (
	TicketStatusOpen   = "open"
	TicketStatusClosed = "closed"

	TicketPriorityHigh   = "high"
	TicketPriorityNormal = "normal"
)

// SupportTicket records an escalation a human operator must complete
// off-system, e.g. a provider-side cancellation that cannot be performed
// programmatically. It carries enough external identifiers for the operator
// to act without consulting the database.
type SupportTicket struct {
	ID                     uint       `gorm:"primaryKey" json:"id"`
	Reference              string     `gorm:"type:varchar(64);not null;uniqueIndex" json:"reference"`
	SubscriptionID         uint       `gorm:"not null;index:idx_support_tickets_sub_status,priority:1" json:"subscription_id"`
	ExternalSubscriptionID string     `gorm:"type:varchar(191);not null;default:''" json:"external_subscription_id"`
	ExternalTransactionID  string     `gorm:"type:varchar(191);not null;default:''" json:"external_transaction_id"`
	AccessUntil            *time.Time `gorm:"type:timestamp;default:null" json:"access_until,omitempty"`
	Subject                string     `gorm:"type:varchar(255);not null" json:"subject"`
	Priority               string     `gorm:"type:varchar(16);not null;default:'normal'" json:"priority"`
	Status                 string     `gorm:"type:varchar(16);not null;default:'open';index:idx_support_tickets_sub_status,priority:2" json:"status"`
	CreatedAt              time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
