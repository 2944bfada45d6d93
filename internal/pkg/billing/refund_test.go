package billing

import (
	"testing"
	"time"
)

func TestEvaluateRefundEligibilityBoundary(t *testing.T) {
	purchase := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		now      time.Time
		eligible bool
		days     int
	}{
		{name: "same day", now: purchase.Add(2 * time.Hour), eligible: true, days: 0},
		{name: "exactly 7 days", now: purchase.Add(7 * 24 * time.Hour), eligible: true, days: 7},
		{name: "7 days and one second", now: purchase.Add(7*24*time.Hour + time.Second), eligible: false, days: 7},
		{name: "8 days", now: purchase.Add(8 * 24 * time.Hour), eligible: false, days: 8},
		{name: "clock skew before purchase", now: purchase.Add(-time.Hour), eligible: true, days: 0},
	}

	for _, tt := range tests {
		got := EvaluateRefundEligibility(purchase, tt.now)
		if got.Eligible != tt.eligible || got.DaysSincePurchase != tt.days {
			t.Fatalf("%s: got %+v, want eligible=%t days=%d", tt.name, got, tt.eligible, tt.days)
		}
	}
}
