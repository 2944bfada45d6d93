package models

import "time"

const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusCancelled = "cancelled"
	SubscriptionStatusExpired   = "expired" // projection only, never written
	SubscriptionStatusPending   = "pending"
	SubscriptionStatusRejected  = "rejected"
)

// Subscription is one row per subscription attempt. At most one row per user
// carries status=active at any time; cancellation and expiry are status
// transitions, never row removal.
type Subscription struct {
	ID                     uint       `gorm:"primaryKey" json:"id"`
	UserID                 uint       `gorm:"not null;index:idx_subscriptions_user_status,priority:1" json:"user_id"`
	PlanID                 uint       `gorm:"not null;index" json:"plan_id"`
	Status                 string     `gorm:"type:varchar(32);not null;default:'pending';index:idx_subscriptions_user_status,priority:2" json:"status"`
	LeadsBalance           int64      `gorm:"not null;default:0" json:"leads_balance"`
	CurrentPeriodStart     *time.Time `gorm:"type:timestamp;default:null" json:"current_period_start,omitempty"`
	CurrentPeriodEnd       *time.Time `gorm:"type:timestamp;default:null" json:"current_period_end,omitempty"`
	FirstPaymentDate       *time.Time `gorm:"type:timestamp;default:null" json:"first_payment_date,omitempty"`
	RefundDeadline         *time.Time `gorm:"type:timestamp;default:null" json:"refund_deadline,omitempty"`
	ExternalTransactionID  string     `gorm:"type:varchar(191);not null;default:'';index" json:"external_transaction_id"`
	ExternalSubscriptionID string     `gorm:"type:varchar(191);not null;default:'';index" json:"external_subscription_id"`
	CancelledAt            *time.Time `gorm:"type:timestamp;default:null" json:"cancelled_at,omitempty"`
	CancellationReason     string     `gorm:"type:varchar(255);not null;default:''" json:"cancellation_reason"`
	CreatedAt              time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsExpired reports whether the billing period has lapsed. Expiry is a
// read-time projection; rows are never flipped back once their period ends.
func (s *Subscription) IsExpired(now time.Time) bool {
	return s.CurrentPeriodEnd != nil && now.After(*s.CurrentPeriodEnd)
}

// HasAccess reports whether the subscription still grants paid access.
// Cancelled subscriptions keep access until the period naturally ends.
func (s *Subscription) HasAccess(now time.Time) bool {
	switch s.Status {
	case SubscriptionStatusActive, SubscriptionStatusCancelled:
		return !s.IsExpired(now)
	default:
		return false
	}
}

// EffectiveLeadsBalance is the balance the rest of the product may consume:
// the stored balance while access lasts, zero once the period has lapsed.
func (s *Subscription) EffectiveLeadsBalance(now time.Time) int64 {
	if s == nil || !s.HasAccess(now) {
		return 0
	}
	return s.LeadsBalance
}
