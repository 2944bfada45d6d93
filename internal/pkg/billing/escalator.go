package billing

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/leadpulse/LeadPulse/app/models"
)

// EscalateManualCancellation opens a HIGH-priority support ticket so a human
// operator can complete a cancellation the provider could not confirm
// programmatically. Idempotent per subscription: an existing open ticket for
// the same subscription is returned instead of a duplicate.
func (s *Service) EscalateManualCancellation(sub *models.Subscription) (*models.SupportTicket, error) {
	if sub == nil || sub.ID == 0 {
		return nil, fmt.Errorf("%w: subscription is required", ErrValidation)
	}

	existing, err := s.repo.FindOpenTicketBySubscription(sub.ID)
	if err == nil {
		return existing, nil
	}
	if !IsNotFound(err) {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	ticket := &models.SupportTicket{
		Reference:              uuid.NewString(),
		SubscriptionID:         sub.ID,
		ExternalSubscriptionID: sub.ExternalSubscriptionID,
		ExternalTransactionID:  sub.ExternalTransactionID,
		AccessUntil:            sub.CurrentPeriodEnd,
		Subject:                fmt.Sprintf("Manual cancellation required for subscription #%d", sub.ID),
		Priority:               models.TicketPriorityHigh,
		Status:                 models.TicketStatusOpen,
	}
	if err := s.repo.CreateTicket(ticket); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return ticket, nil
}
