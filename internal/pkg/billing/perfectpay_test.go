package billing

import (
	"errors"
	"testing"
	"time"

	"github.com/leadpulse/LeadPulse/app/models"
)

func TestParsePerfectPayWebhookValidation(t *testing.T) {
	if _, err := ParsePerfectPayWebhook([]byte("{not json")); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for bad JSON, got %v", err)
	}
	if _, err := ParsePerfectPayWebhook([]byte(`{"customer":{"email":"a@b.com"}}`)); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for missing code, got %v", err)
	}
	if _, err := ParsePerfectPayWebhook([]byte(`{"code":"TX1"}`)); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for missing email, got %v", err)
	}

	raw, err := ParsePerfectPayWebhook([]byte(`{"code":"TX1","customer":{"email":"a@b.com"}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw.Code != "TX1" {
		t.Fatalf("unexpected parse result: %+v", raw)
	}
}

func TestPerfectPaySaleStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{PerfectPaySaleApproved, models.SubscriptionStatusActive},
		{PerfectPaySaleCompleted, models.SubscriptionStatusActive},
		{PerfectPaySalePending, models.SubscriptionStatusPending},
		{PerfectPaySaleInProcess, models.SubscriptionStatusPending},
		{PerfectPaySaleAuthorized, models.SubscriptionStatusPending},
		{PerfectPaySaleInMediation, models.SubscriptionStatusPending},
		{PerfectPaySaleRejected, models.SubscriptionStatusRejected},
		{PerfectPaySaleCheckoutError, models.SubscriptionStatusRejected},
		{PerfectPaySaleExpired, models.SubscriptionStatusRejected},
		{PerfectPaySaleCancelled, models.SubscriptionStatusCancelled},
		{PerfectPaySaleRefunded, models.SubscriptionStatusCancelled},
		{PerfectPaySaleChargedBack, models.SubscriptionStatusCancelled},
		{99, models.SubscriptionStatusPending}, // unknown status stays conservative
	}
	for _, tt := range tests {
		if got := PerfectPaySaleStatusToSubscriptionStatus(tt.status); got != tt.want {
			t.Fatalf("status %d: got %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	payload := []byte(`{
		"code": "TX42",
		"sale_amount": 97.01,
		"sale_status_enum": 2,
		"plan": {"code": "PPLQQ1S1"},
		"customer": {"email": "  Ana@Example.COM ", "full_name": " Ana Souza "},
		"subscription": {"code": "SUB9", "status_event": "subscription_renewed", "next_charge_date": "2025-07-01 03:00:00", "charges_made": 2}
	}`)
	raw, err := ParsePerfectPayWebhook(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ev := raw.Normalize(payload)

	if ev.Provider != models.PaymentProviderPerfectPay || ev.EventID != "TX42" {
		t.Fatalf("unexpected identity fields: %+v", ev)
	}
	if ev.Email != "ana@example.com" {
		t.Fatalf("email not normalized: %q", ev.Email)
	}
	if ev.FullName != "Ana Souza" {
		t.Fatalf("full name not trimmed: %q", ev.FullName)
	}
	// float amounts are converted with rounding, never truncation
	if ev.AmountCents != 9701 {
		t.Fatalf("amount cents = %d, want 9701", ev.AmountCents)
	}
	if ev.SaleStatus != models.SubscriptionStatusActive {
		t.Fatalf("sale status = %q", ev.SaleStatus)
	}
	if ev.ExternalSubscriptionID != "SUB9" || ev.ChargesMade != 2 {
		t.Fatalf("subscription fields not carried: %+v", ev)
	}
	if ev.NextChargeDate == nil || !ev.NextChargeDate.Equal(time.Date(2025, 7, 1, 3, 0, 0, 0, time.UTC)) {
		t.Fatalf("next charge date = %v", ev.NextChargeDate)
	}
}

func TestNormalizeFallsBackToSubscriptionAmount(t *testing.T) {
	payload := []byte(`{"code":"TX1","subscription_amount":47.0,"customer":{"email":"a@b.com"}}`)
	raw, err := ParsePerfectPayWebhook(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev := raw.Normalize(payload); ev.AmountCents != 4700 {
		t.Fatalf("amount cents = %d, want 4700", ev.AmountCents)
	}
}

func TestIsCancellationEvent(t *testing.T) {
	var w PerfectPayWebhook
	if w.IsCancellationEvent() {
		t.Fatal("empty payload must not classify as cancellation")
	}

	w.Subscription.StatusEvent = PerfectPayEventSubscriptionCanceled
	if !w.IsCancellationEvent() {
		t.Fatal("status_event subscription_canceled must classify as cancellation")
	}

	w = PerfectPayWebhook{SaleStatusEnum: PerfectPaySaleRefunded}
	if !w.IsCancellationEvent() {
		t.Fatal("refunded sale must classify as cancellation")
	}

	w = PerfectPayWebhook{SaleStatusEnum: PerfectPaySaleApproved}
	w.Subscription.StatusEvent = PerfectPayEventSubscriptionRenewed
	if w.IsCancellationEvent() {
		t.Fatal("renewal must not classify as cancellation")
	}
}

func TestCancellationConfirmed(t *testing.T) {
	var w PerfectPayWebhook
	for _, status := range []string{"canceled", "cancelled", " Canceled "} {
		w.Subscription.Status = status
		if !w.CancellationConfirmed() {
			t.Fatalf("status %q should confirm cancellation", status)
		}
	}
	for _, status := range []string{"", "active", "pending_cancellation"} {
		w.Subscription.Status = status
		if w.CancellationConfirmed() {
			t.Fatalf("status %q should not confirm cancellation", status)
		}
	}
}

func TestParsePerfectPayDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2025-07-01T03:00:00Z", time.Date(2025, 7, 1, 3, 0, 0, 0, time.UTC)},
		{"2025-07-01 03:00:00", time.Date(2025, 7, 1, 3, 0, 0, 0, time.UTC)},
		{"2025-07-01", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := parsePerfectPayDate(tt.in)
		if err != nil || !got.Equal(tt.want) {
			t.Fatalf("parsePerfectPayDate(%q) = %v, %v", tt.in, got, err)
		}
	}

	for _, bad := range []string{"", "July 1st", "01/07/2025"} {
		if _, err := parsePerfectPayDate(bad); err == nil {
			t.Fatalf("parsePerfectPayDate(%q) should fail", bad)
		}
	}
}
