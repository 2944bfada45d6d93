package entitlements

import (
	"time"

	"github.com/leadpulse/LeadPulse/app/models"
)

// Lead sources. The bonus pool is consumed only when no active, non-expired
// subscription exists; while paid access lasts, the subscription balance is
// the sole consumable quota.
const (
	SourceSubscription = "subscription"
	SourceBonus        = "bonus"
	SourceNone         = "none"
)

// LeadAvailability is the consumable quota projection for a user at a point
// in time.
type LeadAvailability struct {
	SubscriptionLeads int64  `json:"subscription_leads"`
	BonusLeads        int64  `json:"bonus_leads"`
	Total             int64  `json:"total"`
	Source            string `json:"source"`
}

// Availability computes the effective leads for a user. A subscription whose
// period has lapsed contributes nothing regardless of its stored balance and
// the bonus pool takes over. Cancelled subscriptions keep contributing until
// their period end.
func Availability(sub *models.Subscription, pool *models.UserLeads, now time.Time) LeadAvailability {
	av := LeadAvailability{
		SubscriptionLeads: sub.EffectiveLeadsBalance(now),
		BonusLeads:        pool.Available(),
		Source:            SourceNone,
	}

	hasAccess := sub != nil && sub.HasAccess(now)
	switch {
	case hasAccess:
		av.Total = av.SubscriptionLeads
		if av.SubscriptionLeads > 0 {
			av.Source = SourceSubscription
		}
	case av.BonusLeads > 0:
		av.Total = av.BonusLeads
		av.Source = SourceBonus
	}
	return av
}
