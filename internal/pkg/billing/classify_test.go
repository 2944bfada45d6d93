package billing

import (
	"testing"

	"github.com/leadpulse/LeadPulse/app/models"
)

func TestClassifyOperation(t *testing.T) {
	starter := &models.Plan{ID: 1, PriceCents: 4700}
	pro := &models.Plan{ID: 2, PriceCents: 9700}
	proAnnualTrial := &models.Plan{ID: 4, PriceCents: 9700}
	active := &models.Subscription{ID: 10, UserID: 1, PlanID: 1, Status: models.SubscriptionStatusActive}

	tests := []struct {
		name        string
		current     *models.Subscription
		currentPlan *models.Plan
		incoming    *models.Plan
		want        OperationType
	}{
		{name: "no subscription", current: nil, currentPlan: nil, incoming: starter, want: OperationNew},
		{name: "same plan", current: active, currentPlan: starter, incoming: starter, want: OperationRenewal},
		{name: "pricier plan", current: active, currentPlan: starter, incoming: pro, want: OperationUpgrade},
		{name: "cheaper plan", current: active, currentPlan: pro, incoming: starter, want: OperationDowngrade},
		{name: "same price different plan", current: active, currentPlan: pro, incoming: proAnnualTrial, want: OperationRenewal},
	}

	for _, tt := range tests {
		if got := ClassifyOperation(tt.current, tt.currentPlan, tt.incoming); got != tt.want {
			t.Fatalf("%s: got %s, want %s", tt.name, got, tt.want)
		}
	}
}
