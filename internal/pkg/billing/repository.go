package billing

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/leadpulse/LeadPulse/app/models"
	"github.com/leadpulse/LeadPulse/internal/pkg/cache"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository provides the DB operations used by the billing service.
type Repository interface {
	ListActivePlans() ([]models.Plan, error)
	GetPlan(id uint) (*models.Plan, error)
	GetUser(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetActiveSubscriptionByUser(userID uint) (*models.Subscription, error)
	GetLatestSubscriptionByUser(userID uint) (*models.Subscription, error)
	SaveSubscription(sub *models.Subscription) error
	CreateWebhookEventIfNotExists(event *models.WebhookEvent) (bool, *models.WebhookEvent, error)
	MarkWebhookProcessed(id uint, processingError string) error
	ListRecentWebhookEvents(limit int) ([]models.WebhookEvent, error)
	GetOrCreateUserLeads(userID uint) (*models.UserLeads, error)
	SaveUserLeads(ul *models.UserLeads) error
	FindOpenTicketBySubscription(subscriptionID uint) (*models.SupportTicket, error)
	CreateTicket(t *models.SupportTicket) error
}

const (
	planCacheKey = "billing:plans:active"
	planCacheTTL = 5 * time.Minute

	// saveAttempts bounds the degraded-write ladder for subscription rows.
	saveAttempts = 3
)

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a billing repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) ListActivePlans() ([]models.Plan, error) {
	var plans []models.Plan
	if err := cache.GetJSON(planCacheKey, &plans); err == nil && len(plans) > 0 {
		return plans, nil
	}

	err := r.db.Where("is_active = ?", true).Order("price_cents ASC").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(planCacheKey, plans, planCacheTTL); err != nil {
		log.Printf("plan cache write failed: %v", err)
	}
	return plans, nil
}

func (r *gormRepository) GetPlan(id uint) (*models.Plan, error) {
	var p models.Plan
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *gormRepository) GetUser(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *gormRepository) GetUserByEmail(email string) (*models.User, error) {
	return models.FindUserByEmail(r.db, email)
}

func (r *gormRepository) GetActiveSubscriptionByUser(userID uint) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.
		Where("user_id = ? AND status = ?", userID, models.SubscriptionStatusActive).
		Order("id DESC").
		First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *gormRepository) GetLatestSubscriptionByUser(userID uint) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.
		Where("user_id = ?", userID).
		Order("id DESC").
		First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// SaveSubscription writes a subscription row with a bounded degraded-write
// ladder: full write, then a reduced write omitting the most recently added
// optional columns, then a minimal write of only the fields required for
// correctness. A minimal write is followed by a best-effort, non-blocking
// backfill of the omitted fields. The ladder exists for transient
// schema/cache errors only; the common path is the first attempt.
func (r *gormRepository) SaveSubscription(sub *models.Subscription) error {
	var lastErr error
	for attempt := 1; attempt <= saveAttempts; attempt++ {
		switch attempt {
		case 1:
			lastErr = r.db.Save(sub).Error
		case 2:
			lastErr = r.db.
				Omit("cancellation_reason", "external_subscription_id").
				Save(sub).Error
		case 3:
			lastErr = r.saveSubscriptionMinimal(sub)
		}
		if lastErr == nil {
			if attempt > 1 {
				log.Printf("subscription %d for user %d written in degraded mode (attempt %d)", sub.ID, sub.UserID, attempt)
			}
			if attempt == saveAttempts {
				go r.backfillSubscription(sub)
			}
			return nil
		}
		log.Printf("subscription write attempt %d/%d failed for user %d: %v", attempt, saveAttempts, sub.UserID, lastErr)
	}
	return fmt.Errorf("%w: %v", ErrPersistence, lastErr)
}

func (r *gormRepository) saveSubscriptionMinimal(sub *models.Subscription) error {
	if sub.ID == 0 {
		minimal := &models.Subscription{
			UserID:             sub.UserID,
			PlanID:             sub.PlanID,
			Status:             sub.Status,
			LeadsBalance:       sub.LeadsBalance,
			CurrentPeriodStart: sub.CurrentPeriodStart,
			CurrentPeriodEnd:   sub.CurrentPeriodEnd,
		}
		if err := r.db.Create(minimal).Error; err != nil {
			return err
		}
		sub.ID = minimal.ID
		return nil
	}
	return r.db.Model(&models.Subscription{}).
		Where("id = ?", sub.ID).
		Updates(map[string]interface{}{
			"user_id":              sub.UserID,
			"plan_id":              sub.PlanID,
			"status":               sub.Status,
			"leads_balance":        sub.LeadsBalance,
			"current_period_start": sub.CurrentPeriodStart,
			"current_period_end":   sub.CurrentPeriodEnd,
		}).Error
}

func (r *gormRepository) backfillSubscription(sub *models.Subscription) {
	if sub.ID == 0 {
		return
	}
	err := r.db.Model(&models.Subscription{}).
		Where("id = ?", sub.ID).
		Updates(map[string]interface{}{
			"first_payment_date":       sub.FirstPaymentDate,
			"refund_deadline":          sub.RefundDeadline,
			"external_transaction_id":  sub.ExternalTransactionID,
			"external_subscription_id": sub.ExternalSubscriptionID,
			"cancelled_at":             sub.CancelledAt,
			"cancellation_reason":      sub.CancellationReason,
		}).Error
	if err != nil {
		log.Printf("subscription %d backfill failed: %v", sub.ID, err)
	}
}

// CreateWebhookEventIfNotExists inserts a receipt unless one with the same
// (provider, provider_event_id) already exists. The unique constraint, not
// this read, is the real idempotency guarantee: two racing deliveries both
// reach the insert and exactly one row wins, the loser observing
// RowsAffected == 0.
func (r *gormRepository) CreateWebhookEventIfNotExists(event *models.WebhookEvent) (bool, *models.WebhookEvent, error) {
	tx := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "provider"},
			{Name: "provider_event_id"},
		},
		DoNothing: true,
	}).Create(event)
	if tx.Error != nil {
		return false, nil, tx.Error
	}

	created := tx.RowsAffected > 0
	var stored models.WebhookEvent
	if err := r.db.Where("provider = ? AND provider_event_id = ?", event.Provider, event.ProviderEventID).
		First(&stored).Error; err != nil {
		return false, nil, err
	}
	return created, &stored, nil
}

func (r *gormRepository) MarkWebhookProcessed(id uint, processingError string) error {
	now := time.Now()
	updates := map[string]interface{}{
		"processed_at":     &now,
		"processing_error": processingError,
	}
	return r.db.Model(&models.WebhookEvent{}).Where("id = ?", id).Updates(updates).Error
}

func (r *gormRepository) ListRecentWebhookEvents(limit int) ([]models.WebhookEvent, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var events []models.WebhookEvent
	err := r.db.Order("id DESC").Limit(limit).Find(&events).Error
	return events, err
}

func (r *gormRepository) GetOrCreateUserLeads(userID uint) (*models.UserLeads, error) {
	return models.GetOrCreateUserLeads(r.db, userID)
}

func (r *gormRepository) SaveUserLeads(ul *models.UserLeads) error {
	return r.db.Save(ul).Error
}

func (r *gormRepository) FindOpenTicketBySubscription(subscriptionID uint) (*models.SupportTicket, error) {
	var t models.SupportTicket
	err := r.db.
		Where("subscription_id = ? AND status = ?", subscriptionID, models.TicketStatusOpen).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *gormRepository) CreateTicket(t *models.SupportTicket) error {
	return r.db.Create(t).Error
}

// IsNotFound reports whether err is the store's record-not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return strings.TrimSpace(err.Error())
}
