package billing

import (
	"strings"
	"time"
)

// OperationType is the semantic intent of a billing event. It is a closed
// enum; anything else fails correlation decoding.
type OperationType string

const (
	OperationNew          OperationType = "new"
	OperationRenewal      OperationType = "renewal"
	OperationUpgrade      OperationType = "upgrade"
	OperationDowngrade    OperationType = "downgrade"
	OperationCancellation OperationType = "cancellation"
)

// ParseOperationType normalizes and validates an operation type string.
func ParseOperationType(s string) (OperationType, bool) {
	op := OperationType(strings.ToLower(strings.TrimSpace(s)))
	switch op {
	case OperationNew, OperationRenewal, OperationUpgrade, OperationDowngrade, OperationCancellation:
		return op, true
	default:
		return "", false
	}
}

// Event is the provider-agnostic shape of a classified webhook delivery, the
// input to the subscription state machine.
type Event struct {
	Provider               string
	EventID                string // external transaction id
	EventType              string
	Operation              OperationType
	OperationFromHeuristic bool
	UserID                 uint
	Email                  string
	FullName               string
	PlanID                 uint // 0 when the correlation token was absent
	ExternalPlanCode       string
	AmountCents            int64
	SaleStatus             string // normalized subscription status
	StatusEvent            string
	ExternalSubscriptionID string
	NextChargeDate         *time.Time
	ChargesMade            int
	RawJSON                string
}

// WebhookResult is the business outcome reported back to the provider. It is
// serialized inside the HTTP 200 envelope even for rejected events.
type WebhookResult struct {
	Processed   bool          `json:"processed"`
	Duplicate   bool          `json:"duplicate,omitempty"`
	Operation   OperationType `json:"operation,omitempty"`
	Status      string        `json:"status,omitempty"`
	LeadsTotal  int64         `json:"leads_total,omitempty"`
	AccessUntil *time.Time    `json:"access_until,omitempty"`
	Error       string        `json:"error,omitempty"`
}
