package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/leadpulse/LeadPulse/internal/pkg/billing"
	"github.com/leadpulse/LeadPulse/internal/pkg/database"
)

type checkoutRequest struct {
	UserID uint `json:"user_id"`
	PlanID uint `json:"plan_id"`
}

type cancelRequest struct {
	UserID uint   `json:"user_id"`
	Reason string `json:"reason"`
}

type consumeLeadRequest struct {
	UserID uint `json:"user_id"`
}

// HandleGetSubscription returns the authoritative subscription projection
// for a user, with expiry applied at read time.
func HandleGetSubscription(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil || userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid_user_id"})
	}

	svc := billing.NewServiceFromDB(database.GetDB())
	view, err := svc.GetSubscription(c.Context(), uint(userID))
	if err != nil {
		return businessError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "result": view})
}

// HandleCreateCheckout builds a provider checkout link for a new purchase
// (or a renewal of the current plan).
func HandleCreateCheckout(c *fiber.Ctx) error {
	var req checkoutRequest
	if err := c.BodyParser(&req); err != nil || req.UserID == 0 || req.PlanID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "user_id and plan_id are required"})
	}

	svc := billing.NewServiceFromDB(database.GetDB())
	url, err := svc.CreateCheckout(c.Context(), req.UserID, req.PlanID)
	if err != nil {
		return businessError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "result": fiber.Map{"checkout_url": url}})
}

// HandleUpgrade builds a checkout link to a strictly more expensive plan.
func HandleUpgrade(c *fiber.Ctx) error {
	return handlePlanChange(c, billing.OperationUpgrade)
}

// HandleDowngrade builds a checkout link to a strictly cheaper plan.
func HandleDowngrade(c *fiber.Ctx) error {
	return handlePlanChange(c, billing.OperationDowngrade)
}

func handlePlanChange(c *fiber.Ctx, op billing.OperationType) error {
	var req checkoutRequest
	if err := c.BodyParser(&req); err != nil || req.UserID == 0 || req.PlanID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "user_id and plan_id are required"})
	}

	svc := billing.NewServiceFromDB(database.GetDB())
	var (
		url string
		err error
	)
	if op == billing.OperationUpgrade {
		url, err = svc.Upgrade(c.Context(), req.UserID, req.PlanID)
	} else {
		url, err = svc.Downgrade(c.Context(), req.UserID, req.PlanID)
	}
	if err != nil {
		return businessError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "result": fiber.Map{"checkout_url": url, "operation": op}})
}

// HandleCancel cancels locally and always escalates the provider-side action
// to a support ticket.
func HandleCancel(c *fiber.Ctx) error {
	var req cancelRequest
	if err := c.BodyParser(&req); err != nil || req.UserID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "user_id is required"})
	}

	svc := billing.NewServiceFromDB(database.GetDB())
	sub, ticket, err := svc.Cancel(c.Context(), req.UserID, req.Reason)
	if err != nil && !errors.Is(err, billing.ErrManualActionRequired) {
		return businessError(c, err)
	}

	result := fiber.Map{"subscription": sub}
	if ticket != nil {
		result["ticket_reference"] = ticket.Reference
	}
	if err != nil {
		result["warning"] = "cancellation recorded locally; manual provider action still pending"
	}
	return c.JSON(fiber.Map{"success": true, "result": result})
}

// HandleRefundEligibility evaluates the 7-day refund window for a user.
func HandleRefundEligibility(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil || userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid_user_id"})
	}

	svc := billing.NewServiceFromDB(database.GetDB())
	eligibility, err := svc.RefundEligibilityFor(c.Context(), uint(userID))
	if err != nil {
		return businessError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "result": eligibility})
}

// HandleLeadsStatus reports the consumable quota for a user.
func HandleLeadsStatus(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil || userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid_user_id"})
	}

	svc := billing.NewServiceFromDB(database.GetDB())
	av, err := svc.LeadsStatus(c.Context(), uint(userID))
	if err != nil {
		return businessError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "result": av})
}

// HandleConsumeLead spends one lead from the subscription balance or, once
// paid access is gone, the bonus pool.
func HandleConsumeLead(c *fiber.Ctx) error {
	var req consumeLeadRequest
	if err := c.BodyParser(&req); err != nil || req.UserID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "user_id is required"})
	}

	svc := billing.NewServiceFromDB(database.GetDB())
	av, err := svc.ConsumeLead(c.Context(), req.UserID)
	if err != nil {
		return businessError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "result": av})
}

func businessError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, billing.ErrInvalidOperation), errors.Is(err, billing.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, billing.ErrPlanNotFound),
		errors.Is(err, billing.ErrUserNotFound),
		errors.Is(err, billing.ErrSubscriptionNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, billing.ErrNoLeadsAvailable):
		status = fiber.StatusConflict
	case errors.Is(err, billing.ErrDuplicateSubscription):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(fiber.Map{"success": false, "error": err.Error()})
}
