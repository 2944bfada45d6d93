package billing

import "github.com/leadpulse/LeadPulse/app/models"

// ClassifyOperation is the safety-net classification used when the provider
// dropped the correlation reference. It is a heuristic, not ground truth;
// callers must log that this path was taken and the result should be flagged
// for human review, since confusing upgrade with new has billing
// consequences.
//
// Rules: no subscription at all -> new; active on the same plan -> renewal;
// active on a cheaper plan -> upgrade; active on a pricier plan -> downgrade.
func ClassifyOperation(current *models.Subscription, currentPlan, incoming *models.Plan) OperationType {
	if current == nil || currentPlan == nil {
		return OperationNew
	}
	if currentPlan.ID == incoming.ID {
		return OperationRenewal
	}
	if incoming.PriceCents > currentPlan.PriceCents {
		return OperationUpgrade
	}
	if incoming.PriceCents < currentPlan.PriceCents {
		return OperationDowngrade
	}
	// Different plan at the same price point: treat as a renewal-grade plan
	// swap rather than guessing a direction.
	return OperationRenewal
}
