package billing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/leadpulse/LeadPulse/app/models"
	"github.com/leadpulse/LeadPulse/internal/pkg/entitlements"
	"github.com/leadpulse/LeadPulse/internal/pkg/env"
	"gorm.io/gorm"
)

// defaultBillingCycle is the period applied when the provider omits
// next_charge_date. Perfect Pay bills monthly; 30 days is the documented
// default cadence.
const defaultBillingCycle = 30 * 24 * time.Hour

// Service is the subscription state machine: it consumes classified,
// deduplicated webhook events and mutates subscription state, and backs the
// checkout/upgrade/downgrade API surface.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a billing service from an injected repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// NewServiceFromDB creates a billing service from a GORM DB handle.
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(NewRepository(db))
}

// ProcessWebhook runs one inbound provider delivery through the pipeline:
// parse -> idempotency guard -> correlation decode -> plan resolution ->
// state transition. Terminal business errors are recorded on the receipt and
// returned alongside the result; only persistence failures leave the receipt
// unprocessed so the provider retries.
func (s *Service) ProcessWebhook(ctx context.Context, payload []byte) (*WebhookResult, error) {
	_ = ctx

	raw, err := ParsePerfectPayWebhook(payload)
	if err != nil {
		return &WebhookResult{Error: sanitizeError(err)}, err
	}

	if secret := env.GetEnv("PERFECTPAY_WEBHOOK_TOKEN", ""); secret != "" {
		if !VerifyPerfectPayWebhookToken(raw.Token, secret) {
			return &WebhookResult{Error: "invalid webhook token"}, fmt.Errorf("%w: invalid webhook token", ErrValidation)
		}
	}

	ev := raw.Normalize(payload)

	created, receipt, err := s.repo.CreateWebhookEventIfNotExists(&models.WebhookEvent{
		Provider:        ev.Provider,
		ProviderEventID: ev.EventID,
		EventType:       eventTypeLabel(raw),
		PayloadJSON:     ev.RawJSON,
	})
	if err != nil {
		return &WebhookResult{Error: "webhook receipt write failed"}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !created && receipt.Processed() {
		// Acknowledge duplicates without mutation; providers must not be
		// encouraged to keep retrying.
		log.Printf("duplicate webhook %s/%s ignored", ev.Provider, ev.EventID)
		return &WebhookResult{Duplicate: true, Error: ErrDuplicateWebhook.Error()}, nil
	}

	result, procErr := s.applyEvent(raw, ev)
	if procErr != nil && errors.Is(procErr, ErrPersistence) {
		// Leave the receipt unprocessed so the delivery can be retried by
		// the provider or replayed manually.
		return result, procErr
	}
	if err := s.repo.MarkWebhookProcessed(receipt.ID, sanitizeError(procErr)); err != nil {
		log.Printf("failed to mark webhook %d processed: %v", receipt.ID, err)
	}
	return result, procErr
}

func (s *Service) applyEvent(raw *PerfectPayWebhook, ev *Event) (*WebhookResult, error) {
	corr, err := DecodeCorrelation(raw.Product.ExternalReference)
	if err != nil {
		log.Printf("correlation decode failed for tx %s: %v; falling back to email lookup", ev.EventID, err)
	}

	user, err := s.resolveUser(corr, ev)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return &WebhookResult{Operation: ev.Operation, Error: sanitizeError(err)}, err
		}
		return &WebhookResult{Error: sanitizeError(err)}, err
	}
	ev.UserID = user.ID

	latest, err := s.latestSubscription(user.ID)
	if err != nil {
		return &WebhookResult{Error: sanitizeError(err)}, err
	}
	active := activeOnly(latest)

	// Cancellation deliveries frequently carry neither a plan code nor a
	// charged amount, so they are routed before plan resolution.
	if raw.IsCancellationEvent() {
		ev.Operation = OperationCancellation
		return s.applyCancellation(raw, ev, latest, active)
	}

	plan, err := s.resolvePlan(corr, ev)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			return &WebhookResult{Operation: ev.Operation, Error: sanitizeError(err)}, err
		}
		return &WebhookResult{Error: sanitizeError(err)}, err
	}
	ev.PlanID = plan.ID

	switch {
	case corr.Known:
		ev.Operation = corr.Operation
	default:
		currentPlan, err := s.planOf(active)
		if err != nil {
			return &WebhookResult{Error: sanitizeError(err)}, err
		}
		ev.Operation = ClassifyOperation(active, currentPlan, plan)
		ev.OperationFromHeuristic = true
		log.Printf("WARNING: heuristic operation classification used for tx %s (user %d): %s; flag for human review",
			ev.EventID, user.ID, ev.Operation)
	}

	switch ev.Operation {
	case OperationNew:
		return s.applyNew(ev, plan, latest, active)
	case OperationRenewal, OperationUpgrade, OperationDowngrade:
		return s.applyPlanChange(ev, plan, active)
	case OperationCancellation:
		return s.applyCancellation(raw, ev, latest, active)
	default:
		return &WebhookResult{Error: "unsupported operation"}, fmt.Errorf("%w: unsupported operation %q", ErrValidation, ev.Operation)
	}
}

// applyNew creates a subscription row, or activates a pending one when the
// approval for an offline payment (boleto) arrives.
func (s *Service) applyNew(ev *Event, plan *models.Plan, latest, active *models.Subscription) (*WebhookResult, error) {
	now := s.now()

	if active != nil && !active.IsExpired(now) {
		// A second "new" while an active subscription exists indicates a
		// classification bug; it must surface, never silently overwrite.
		err := fmt.Errorf("%w: user %d", ErrDuplicateSubscription, ev.UserID)
		return &WebhookResult{Operation: ev.Operation, Error: sanitizeError(err)}, err
	}

	if latest != nil && latest.Status == models.SubscriptionStatusPending &&
		latest.PlanID == plan.ID && ev.SaleStatus == models.SubscriptionStatusActive {
		return s.activatePending(ev, latest)
	}

	sub := &models.Subscription{
		UserID:                 ev.UserID,
		PlanID:                 plan.ID,
		Status:                 ev.SaleStatus,
		ExternalTransactionID:  ev.EventID,
		ExternalSubscriptionID: ev.ExternalSubscriptionID,
	}

	switch ev.SaleStatus {
	case models.SubscriptionStatusActive:
		periodEnd := s.periodEnd(ev, now)
		refundDeadline := now.Add(refundWindow)
		sub.LeadsBalance = NextBalance(nil, OperationNew, plan.LeadsIncluded)
		sub.CurrentPeriodStart = &now
		sub.CurrentPeriodEnd = &periodEnd
		sub.FirstPaymentDate = &now
		sub.RefundDeadline = &refundDeadline
	case models.SubscriptionStatusPending:
		// Leads are granted up front but carry no access until activation;
		// payment dates are set when the approval arrives.
		sub.LeadsBalance = NextBalance(nil, OperationNew, plan.LeadsIncluded)
	case models.SubscriptionStatusRejected:
		// Keep the rejected attempt on record with no entitlements.
	default:
		sub.Status = models.SubscriptionStatusPending
		sub.LeadsBalance = NextBalance(nil, OperationNew, plan.LeadsIncluded)
	}

	if err := s.repo.SaveSubscription(sub); err != nil {
		return &WebhookResult{Operation: ev.Operation, Error: "subscription write failed"}, err
	}
	return s.successResult(ev, sub), nil
}

func (s *Service) activatePending(ev *Event, sub *models.Subscription) (*WebhookResult, error) {
	now := s.now()
	periodEnd := s.periodEnd(ev, now)
	refundDeadline := now.Add(refundWindow)

	sub.Status = models.SubscriptionStatusActive
	sub.CurrentPeriodStart = &now
	sub.CurrentPeriodEnd = &periodEnd
	sub.FirstPaymentDate = &now
	sub.RefundDeadline = &refundDeadline
	sub.ExternalTransactionID = ev.EventID
	if ev.ExternalSubscriptionID != "" {
		sub.ExternalSubscriptionID = ev.ExternalSubscriptionID
	}

	if err := s.repo.SaveSubscription(sub); err != nil {
		return &WebhookResult{Operation: ev.Operation, Error: "subscription write failed"}, err
	}
	return s.successResult(ev, sub), nil
}

// applyPlanChange handles renewal, upgrade and downgrade against the current
// active subscription. The refund deadline is never reset here.
func (s *Service) applyPlanChange(ev *Event, plan *models.Plan, active *models.Subscription) (*WebhookResult, error) {
	if active == nil {
		err := fmt.Errorf("%w: no active subscription for user %d", ErrSubscriptionNotFound, ev.UserID)
		return &WebhookResult{Operation: ev.Operation, Error: sanitizeError(err)}, err
	}

	currentPlan, err := s.planOf(active)
	if err != nil {
		return &WebhookResult{Operation: ev.Operation, Error: sanitizeError(err)}, err
	}

	switch ev.Operation {
	case OperationRenewal:
		if currentPlan.ID != plan.ID {
			err := fmt.Errorf("%w: renewal plan %d does not match current plan %d", ErrInvalidOperation, plan.ID, currentPlan.ID)
			return &WebhookResult{Operation: ev.Operation, Error: sanitizeError(err)}, err
		}
	case OperationUpgrade:
		if plan.PriceCents <= currentPlan.PriceCents {
			err := fmt.Errorf("%w: upgrade target is not more expensive than the current plan", ErrInvalidOperation)
			return &WebhookResult{Operation: ev.Operation, Error: sanitizeError(err)}, err
		}
	case OperationDowngrade:
		if plan.PriceCents >= currentPlan.PriceCents {
			err := fmt.Errorf("%w: downgrade target is not cheaper than the current plan", ErrInvalidOperation)
			return &WebhookResult{Operation: ev.Operation, Error: sanitizeError(err)}, err
		}
	}

	now := s.now()
	periodEnd := s.periodEnd(ev, now)

	active.PlanID = plan.ID
	active.LeadsBalance = NextBalance(&active.LeadsBalance, ev.Operation, plan.LeadsIncluded)
	active.CurrentPeriodEnd = &periodEnd
	active.ExternalTransactionID = ev.EventID
	if ev.ExternalSubscriptionID != "" {
		active.ExternalSubscriptionID = ev.ExternalSubscriptionID
	}

	if err := s.repo.SaveSubscription(active); err != nil {
		return &WebhookResult{Operation: ev.Operation, Error: "subscription write failed"}, err
	}
	return s.successResult(ev, active), nil
}

// applyCancellation flips the subscription to cancelled while leaving the
// leads balance and period end untouched: access survives until the period
// naturally ends. When the provider cannot confirm its own side of the
// cancellation, a manual escalation ticket is raised. That is a warning,
// never a failure.
func (s *Service) applyCancellation(raw *PerfectPayWebhook, ev *Event, latest, active *models.Subscription) (*WebhookResult, error) {
	target := active
	if target == nil {
		target = latest
	}
	if target == nil {
		err := fmt.Errorf("%w: nothing to cancel for user %d", ErrSubscriptionNotFound, ev.UserID)
		return &WebhookResult{Operation: ev.Operation, Error: sanitizeError(err)}, err
	}
	if target.Status == models.SubscriptionStatusCancelled {
		// Cancellation is idempotent; re-deliveries of a cancel event for an
		// already-cancelled row are acknowledged without mutation.
		return s.successResult(ev, target), nil
	}

	now := s.now()
	reason := ev.StatusEvent
	if reason == "" {
		reason = raw.SaleStatusDetail
	}

	target.Status = models.SubscriptionStatusCancelled
	target.CancelledAt = &now
	target.CancellationReason = reason
	if ev.ExternalSubscriptionID != "" {
		target.ExternalSubscriptionID = ev.ExternalSubscriptionID
	}

	if err := s.repo.SaveSubscription(target); err != nil {
		return &WebhookResult{Operation: ev.Operation, Error: "subscription write failed"}, err
	}

	result := s.successResult(ev, target)
	if !raw.CancellationConfirmed() {
		ticket, err := s.EscalateManualCancellation(target)
		if err != nil {
			log.Printf("manual cancellation escalation failed for subscription %d: %v", target.ID, err)
			result.Error = "manual action required; ticket creation failed"
		} else {
			log.Printf("manual cancellation escalated for subscription %d: ticket %s", target.ID, ticket.Reference)
			result.Error = fmt.Sprintf("manual action required: ticket %s", ticket.Reference)
		}
	}
	return result, nil
}

// --- API surface ---------------------------------------------------------

// SubscriptionView is the read model served to the rest of the product.
type SubscriptionView struct {
	Subscription  *models.Subscription          `json:"subscription,omitempty"`
	Plan          *models.Plan                  `json:"plan,omitempty"`
	Status        string                        `json:"status"`
	Leads         entitlements.LeadAvailability `json:"leads"`
	AccessUntil   *time.Time                    `json:"access_until,omitempty"`
	Refund        *RefundEligibility            `json:"refund,omitempty"`
	CancelledAt   *time.Time                    `json:"cancelled_at,omitempty"`
}

// GetSubscription returns the authoritative subscription projection for a
// user, with expiry applied at read time.
func (s *Service) GetSubscription(ctx context.Context, userID uint) (*SubscriptionView, error) {
	_ = ctx
	now := s.now()

	latest, err := s.latestSubscription(userID)
	if err != nil {
		return nil, err
	}
	pool, err := s.repo.GetOrCreateUserLeads(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	view := &SubscriptionView{
		Status: models.SubscriptionStatusExpired,
		Leads:  entitlements.Availability(latest, pool, now),
	}
	if latest == nil {
		view.Status = ""
		return view, nil
	}

	view.Subscription = latest
	view.CancelledAt = latest.CancelledAt
	view.Status = ProjectedStatus(latest, now)
	if latest.HasAccess(now) {
		view.AccessUntil = latest.CurrentPeriodEnd
	}
	if plan, err := s.planOf(latest); err == nil {
		view.Plan = plan
	}
	if latest.FirstPaymentDate != nil {
		r := EvaluateRefundEligibility(*latest.FirstPaymentDate, now)
		view.Refund = &r
	}
	return view, nil
}

// ProjectedStatus applies the read-time expiry projection: an active or
// cancelled row whose period has lapsed reports as expired. Rows are never
// re-activated once expired.
func ProjectedStatus(sub *models.Subscription, now time.Time) string {
	if sub == nil {
		return ""
	}
	if (sub.Status == models.SubscriptionStatusActive || sub.Status == models.SubscriptionStatusCancelled) && sub.IsExpired(now) {
		return models.SubscriptionStatusExpired
	}
	return sub.Status
}

// CreateCheckout builds a checkout link for a first purchase, or a renewal
// link when the user already sits on the same plan.
func (s *Service) CreateCheckout(ctx context.Context, userID, planID uint) (string, error) {
	_ = ctx
	plan, err := s.repo.GetPlan(planID)
	if err != nil {
		if IsNotFound(err) {
			return "", fmt.Errorf("%w: plan %d", ErrPlanNotFound, planID)
		}
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	latest, err := s.latestSubscription(userID)
	if err != nil {
		return "", err
	}
	active := activeOnly(latest)
	op := OperationNew
	if active != nil && !active.IsExpired(s.now()) {
		if active.PlanID != plan.ID {
			return "", fmt.Errorf("%w: user already subscribed; use upgrade or downgrade", ErrInvalidOperation)
		}
		op = OperationRenewal
	}
	return BuildCheckoutURL(plan, userID, op)
}

// Upgrade returns a checkout link moving the user to a strictly more
// expensive plan.
func (s *Service) Upgrade(ctx context.Context, userID, planID uint) (string, error) {
	return s.changePlanCheckout(ctx, userID, planID, OperationUpgrade)
}

// Downgrade returns a checkout link moving the user to a strictly cheaper
// plan.
func (s *Service) Downgrade(ctx context.Context, userID, planID uint) (string, error) {
	return s.changePlanCheckout(ctx, userID, planID, OperationDowngrade)
}

func (s *Service) changePlanCheckout(ctx context.Context, userID, planID uint, op OperationType) (string, error) {
	_ = ctx
	plan, err := s.repo.GetPlan(planID)
	if err != nil {
		if IsNotFound(err) {
			return "", fmt.Errorf("%w: plan %d", ErrPlanNotFound, planID)
		}
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	latest, err := s.latestSubscription(userID)
	if err != nil {
		return "", err
	}
	active := activeOnly(latest)
	if active == nil || active.IsExpired(s.now()) {
		return "", fmt.Errorf("%w: no active subscription for user %d", ErrSubscriptionNotFound, userID)
	}
	currentPlan, err := s.planOf(active)
	if err != nil {
		return "", err
	}

	if op == OperationUpgrade && plan.PriceCents <= currentPlan.PriceCents {
		return "", fmt.Errorf("%w: upgrade target must be more expensive than the current plan", ErrInvalidOperation)
	}
	if op == OperationDowngrade && plan.PriceCents >= currentPlan.PriceCents {
		return "", fmt.Errorf("%w: downgrade target must be cheaper than the current plan", ErrInvalidOperation)
	}
	return BuildCheckoutURL(plan, userID, op)
}

// Cancel performs the local side of a cancellation and always escalates for
// the provider-side action, since no outbound cancellation call against the
// provider is guaranteed to succeed.
func (s *Service) Cancel(ctx context.Context, userID uint, reason string) (*models.Subscription, *models.SupportTicket, error) {
	_ = ctx
	latest, err := s.latestSubscription(userID)
	if err != nil {
		return nil, nil, err
	}
	now := s.now()
	if latest == nil || !latest.HasAccess(now) {
		return nil, nil, fmt.Errorf("%w: nothing to cancel for user %d", ErrSubscriptionNotFound, userID)
	}

	if latest.Status != models.SubscriptionStatusCancelled {
		latest.Status = models.SubscriptionStatusCancelled
		latest.CancelledAt = &now
		latest.CancellationReason = reason
		if err := s.repo.SaveSubscription(latest); err != nil {
			return nil, nil, err
		}
	}

	ticket, err := s.EscalateManualCancellation(latest)
	if err != nil {
		return latest, nil, fmt.Errorf("%w: %v", ErrManualActionRequired, err)
	}
	return latest, ticket, nil
}

// RefundEligibilityFor evaluates the refund window for a user's current
// subscription.
func (s *Service) RefundEligibilityFor(ctx context.Context, userID uint) (*RefundEligibility, error) {
	_ = ctx
	latest, err := s.latestSubscription(userID)
	if err != nil {
		return nil, err
	}
	if latest == nil || latest.FirstPaymentDate == nil {
		return nil, fmt.Errorf("%w: no paid subscription for user %d", ErrSubscriptionNotFound, userID)
	}
	r := EvaluateRefundEligibility(*latest.FirstPaymentDate, s.now())
	return &r, nil
}

// LeadsStatus reports the consumable quota: subscription leads while access
// lasts, bonus pool otherwise.
func (s *Service) LeadsStatus(ctx context.Context, userID uint) (*entitlements.LeadAvailability, error) {
	_ = ctx
	latest, err := s.latestSubscription(userID)
	if err != nil {
		return nil, err
	}
	pool, err := s.repo.GetOrCreateUserLeads(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	av := entitlements.Availability(latest, pool, s.now())
	return &av, nil
}

// ConsumeLead spends one lead, preferring the subscription balance and
// falling back to the bonus pool once paid access is gone.
func (s *Service) ConsumeLead(ctx context.Context, userID uint) (*entitlements.LeadAvailability, error) {
	_ = ctx
	now := s.now()

	latest, err := s.latestSubscription(userID)
	if err != nil {
		return nil, err
	}
	pool, err := s.repo.GetOrCreateUserLeads(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	av := entitlements.Availability(latest, pool, now)
	switch av.Source {
	case entitlements.SourceSubscription:
		latest.LeadsBalance--
		if latest.LeadsBalance < 0 {
			latest.LeadsBalance = 0
		}
		if err := s.repo.SaveSubscription(latest); err != nil {
			return nil, err
		}
	case entitlements.SourceBonus:
		pool.Consume()
		if err := s.repo.SaveUserLeads(pool); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	default:
		return nil, ErrNoLeadsAvailable
	}

	next := entitlements.Availability(latest, pool, now)
	return &next, nil
}

// RecentWebhookEvents exposes the durable receipt log for diagnostics.
func (s *Service) RecentWebhookEvents(ctx context.Context, limit int) ([]models.WebhookEvent, error) {
	_ = ctx
	events, err := s.repo.ListRecentWebhookEvents(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return events, nil
}

// --- helpers -------------------------------------------------------------

func (s *Service) resolveUser(corr Correlation, ev *Event) (*models.User, error) {
	if corr.Known {
		user, err := s.repo.GetUser(corr.UserID)
		if err == nil {
			return user, nil
		}
		if !IsNotFound(err) {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		log.Printf("correlation user %d not found for tx %s; falling back to email lookup", corr.UserID, ev.EventID)
	}

	user, err := s.repo.GetUserByEmail(ev.Email)
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: email %s", ErrUserNotFound, ev.Email)
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return user, nil
}

func (s *Service) resolvePlan(corr Correlation, ev *Event) (*models.Plan, error) {
	if corr.Known && corr.PlanID != 0 {
		plan, err := s.repo.GetPlan(corr.PlanID)
		if err == nil {
			return plan, nil
		}
		if !IsNotFound(err) {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		log.Printf("correlation plan %d not found for tx %s; falling back to catalog resolution", corr.PlanID, ev.EventID)
	}

	plans, err := s.repo.ListActivePlans()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return ResolvePlan(plans, ev.ExternalPlanCode, ev.AmountCents)
}

func (s *Service) latestSubscription(userID uint) (*models.Subscription, error) {
	sub, err := s.repo.GetLatestSubscriptionByUser(userID)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return sub, nil
}

func (s *Service) planOf(sub *models.Subscription) (*models.Plan, error) {
	if sub == nil {
		return nil, nil
	}
	plan, err := s.repo.GetPlan(sub.PlanID)
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: plan %d", ErrPlanNotFound, sub.PlanID)
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return plan, nil
}

func (s *Service) periodEnd(ev *Event, now time.Time) time.Time {
	if ev.NextChargeDate != nil && ev.NextChargeDate.After(now) {
		return *ev.NextChargeDate
	}
	return now.Add(defaultBillingCycle)
}

func (s *Service) successResult(ev *Event, sub *models.Subscription) *WebhookResult {
	return &WebhookResult{
		Processed:   true,
		Operation:   ev.Operation,
		Status:      sub.Status,
		LeadsTotal:  sub.LeadsBalance,
		AccessUntil: sub.CurrentPeriodEnd,
	}
}

func activeOnly(sub *models.Subscription) *models.Subscription {
	if sub != nil && sub.Status == models.SubscriptionStatusActive {
		return sub
	}
	return nil
}

func eventTypeLabel(raw *PerfectPayWebhook) string {
	if label := raw.Subscription.StatusEvent; label != "" {
		return label
	}
	if raw.SaleStatusDetail != "" {
		return "sale_" + raw.SaleStatusDetail
	}
	return fmt.Sprintf("sale_status_%d", raw.SaleStatusEnum)
}
