package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/leadpulse/LeadPulse/internal/pkg/billing"
	"github.com/leadpulse/LeadPulse/internal/pkg/database"
)

const webhookTimeout = 15 * time.Second

// HandlePerfectPayWebhook receives Perfect Pay deliveries. Business-level
// rejections (duplicate, plan/user not found, invalid operation) are
// acknowledged with HTTP 200 so the provider does not build a retry storm;
// non-200 is reserved for malformed requests and exhausted persistence
// retries, the one case where dropping a payment silently is unacceptable.
func HandlePerfectPayWebhook(c *fiber.Ctx) error {
	payload := append([]byte(nil), c.BodyRaw()...)

	svc := billing.NewServiceFromDB(database.GetDB())
	ctx, cancel := context.WithTimeout(context.Background(), webhookTimeout)
	defer cancel()

	result, err := svc.ProcessWebhook(ctx, payload)
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "result": result})
		case errors.Is(err, billing.ErrPersistence):
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "result": result})
		default:
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": false, "result": result})
		}
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "result": result})
}

// HandleListWebhookEvents exposes the durable receipt log for diagnostics.
func HandleListWebhookEvents(c *fiber.Ctx) error {
	svc := billing.NewServiceFromDB(database.GetDB())
	events, err := svc.RecentWebhookEvents(c.Context(), c.QueryInt("limit", 50))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "webhook_events_unavailable"})
	}
	return c.JSON(fiber.Map{"success": true, "result": events})
}
