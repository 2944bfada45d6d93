package billing

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/leadpulse/LeadPulse/app/models"
)

// Perfect Pay sale status enum, subset the engine interprets.
const (
	PerfectPaySalePending       = 1
	PerfectPaySaleApproved      = 2
	PerfectPaySaleInProcess     = 3
	PerfectPaySaleInMediation   = 4
	PerfectPaySaleRejected      = 5
	PerfectPaySaleCancelled     = 6
	PerfectPaySaleRefunded      = 7
	PerfectPaySaleAuthorized    = 8
	PerfectPaySaleChargedBack   = 9
	PerfectPaySaleCompleted     = 10
	PerfectPaySaleCheckoutError = 11
	PerfectPaySaleExpired       = 13
)

// Subscription status_event values Perfect Pay emits.
const (
	PerfectPayEventSubscriptionStarted  = "subscription_started"
	PerfectPayEventSubscriptionRenewed  = "subscription_renewed"
	PerfectPayEventSubscriptionCanceled = "subscription_canceled"
	PerfectPayEventSubscriptionDelayed  = "subscription_delayed"
)

// PerfectPayWebhook is the raw payload shape, restricted to the fields the
// engine consumes.
type PerfectPayWebhook struct {
	Token              string  `json:"token"`
	Code               string  `json:"code"`
	SaleAmount         float64 `json:"sale_amount"`
	SubscriptionAmount float64 `json:"subscription_amount"`
	SaleStatusEnum     int     `json:"sale_status_enum"`
	SaleStatusDetail   string  `json:"sale_status_detail"`

	Product struct {
		Code              string `json:"code"`
		Name              string `json:"name"`
		ExternalReference string `json:"external_reference"`
	} `json:"product"`

	Plan struct {
		Code string `json:"code"`
		Name string `json:"name"`
	} `json:"plan"`

	Customer struct {
		Email    string `json:"email"`
		FullName string `json:"full_name"`
	} `json:"customer"`

	Subscription struct {
		Code           string `json:"code"`
		Status         string `json:"status"`
		StatusEvent    string `json:"status_event"`
		NextChargeDate string `json:"next_charge_date"`
		ChargesMade    int    `json:"charges_made"`
	} `json:"subscription"`
}

// ParsePerfectPayWebhook unmarshals and validates the raw delivery. A payload
// without a transaction code or customer email cannot be reconciled at all
// and is rejected as malformed.
func ParsePerfectPayWebhook(payload []byte) (*PerfectPayWebhook, error) {
	var raw PerfectPayWebhook
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if strings.TrimSpace(raw.Code) == "" {
		return nil, fmt.Errorf("%w: missing transaction code", ErrValidation)
	}
	if strings.TrimSpace(raw.Customer.Email) == "" {
		return nil, fmt.Errorf("%w: missing customer email", ErrValidation)
	}
	return &raw, nil
}

// PerfectPaySaleStatusToSubscriptionStatus maps the provider sale status to
// the internal subscription status recorded at receipt time.
func PerfectPaySaleStatusToSubscriptionStatus(saleStatus int) string {
	switch saleStatus {
	case PerfectPaySaleApproved, PerfectPaySaleCompleted:
		return models.SubscriptionStatusActive
	case PerfectPaySalePending, PerfectPaySaleInProcess, PerfectPaySaleAuthorized, PerfectPaySaleInMediation:
		// Offline payment methods (boleto) stay pending until confirmation.
		return models.SubscriptionStatusPending
	case PerfectPaySaleRejected, PerfectPaySaleCheckoutError, PerfectPaySaleExpired:
		return models.SubscriptionStatusRejected
	case PerfectPaySaleCancelled, PerfectPaySaleRefunded, PerfectPaySaleChargedBack:
		return models.SubscriptionStatusCancelled
	default:
		return models.SubscriptionStatusPending
	}
}

// Normalize turns the raw payload into the provider-agnostic event consumed
// by the state machine. The operation is filled in later, from the
// correlation token or the classification fallback.
func (w *PerfectPayWebhook) Normalize(raw []byte) *Event {
	amount := w.SaleAmount
	if amount == 0 {
		amount = w.SubscriptionAmount
	}

	ev := &Event{
		Provider:               models.PaymentProviderPerfectPay,
		EventID:                strings.TrimSpace(w.Code),
		EventType:              strings.TrimSpace(w.Subscription.StatusEvent),
		Email:                  strings.ToLower(strings.TrimSpace(w.Customer.Email)),
		FullName:               strings.TrimSpace(w.Customer.FullName),
		ExternalPlanCode:       strings.TrimSpace(w.Plan.Code),
		AmountCents:            int64(math.Round(amount * 100)),
		SaleStatus:             PerfectPaySaleStatusToSubscriptionStatus(w.SaleStatusEnum),
		StatusEvent:            strings.TrimSpace(w.Subscription.StatusEvent),
		ExternalSubscriptionID: strings.TrimSpace(w.Subscription.Code),
		ChargesMade:            w.Subscription.ChargesMade,
		RawJSON:                string(raw),
	}

	if t, err := parsePerfectPayDate(w.Subscription.NextChargeDate); err == nil {
		ev.NextChargeDate = &t
	}

	return ev
}

// IsCancellationEvent reports whether the delivery describes a subscription
// cancellation regardless of what the correlation token claims.
func (w *PerfectPayWebhook) IsCancellationEvent() bool {
	if strings.EqualFold(strings.TrimSpace(w.Subscription.StatusEvent), PerfectPayEventSubscriptionCanceled) {
		return true
	}
	switch w.SaleStatusEnum {
	case PerfectPaySaleCancelled, PerfectPaySaleRefunded, PerfectPaySaleChargedBack:
		return true
	}
	return false
}

// CancellationConfirmed reports whether the provider states the subscription
// itself is already cancelled on their side. When false, no further charge
// can be ruled out and a manual escalation is required.
func (w *PerfectPayWebhook) CancellationConfirmed() bool {
	switch strings.ToLower(strings.TrimSpace(w.Subscription.Status)) {
	case "canceled", "cancelled":
		return true
	default:
		return false
	}
}

var perfectPayDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parsePerfectPayDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}
	for _, layout := range perfectPayDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
