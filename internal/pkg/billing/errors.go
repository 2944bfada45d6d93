package billing

import "errors"

// Error taxonomy for webhook processing and subscription operations.
// Validation, duplicate, plan-not-found and user-not-found errors are terminal
// for a given webhook: they are recorded on the receipt and acknowledged at
// the transport level so the provider stops retrying. Persistence errors are
// the one class that must surface as a transport failure, because silently
// dropping a real payment is unacceptable.
var (
	ErrValidation            = errors.New("invalid webhook payload")
	ErrDuplicateWebhook      = errors.New("webhook already processed")
	ErrPlanNotFound          = errors.New("no plan matches the provider reference or charged amount")
	ErrUserNotFound          = errors.New("no account for the given user or email")
	ErrInvalidOperation      = errors.New("operation not valid for the current subscription")
	ErrDuplicateSubscription = errors.New("user already has an active subscription")
	ErrSubscriptionNotFound  = errors.New("subscription not found")
	ErrPersistence           = errors.New("persistent store failure")
	ErrManualActionRequired  = errors.New("provider-side cancellation requires manual action")
	ErrNoLeadsAvailable      = errors.New("no leads available")
)
