package billing

import "time"

// refundWindow is the legal refund period counted from the first payment.
// Renewals never reset it.
const refundWindow = 7 * 24 * time.Hour

// RefundEligibility is the outcome of a refund check.
type RefundEligibility struct {
	Eligible          bool `json:"eligible"`
	DaysSincePurchase int  `json:"days_since_purchase"`
}

// EvaluateRefundEligibility applies the inclusive 7-day window: a purchase
// made exactly 7 days ago is still eligible, one second past that is not.
func EvaluateRefundEligibility(firstPaymentDate, now time.Time) RefundEligibility {
	elapsed := now.Sub(firstPaymentDate)
	if elapsed < 0 {
		elapsed = 0
	}
	return RefundEligibility{
		Eligible:          elapsed <= refundWindow,
		DaysSincePurchase: int(elapsed / (24 * time.Hour)),
	}
}
