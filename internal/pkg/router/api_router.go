package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/leadpulse/LeadPulse/app/controllers"
	"github.com/leadpulse/LeadPulse/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	// Provider webhooks are authenticated by the shared token inside the
	// payload, not by the internal API key.
	app.Post("/webhook", controllers.HandlePerfectPayWebhook)

	api := app.Group("/api", middleware.APIKeyAuthMiddleware())
	v1 := api.Group("/v1")

	v1.Get("/subscription/:userId", controllers.HandleGetSubscription)
	v1.Post("/create-checkout", controllers.HandleCreateCheckout)
	v1.Post("/upgrade", controllers.HandleUpgrade)
	v1.Post("/downgrade", controllers.HandleDowngrade)
	v1.Post("/cancel", controllers.HandleCancel)
	v1.Get("/refund-eligibility/:userId", controllers.HandleRefundEligibility)
	v1.Get("/leads/:userId", controllers.HandleLeadsStatus)
	v1.Post("/leads/consume", controllers.HandleConsumeLead)
	v1.Get("/webhook-events", controllers.HandleListWebhookEvents)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
