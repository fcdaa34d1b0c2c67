package routes

import (
	"github.com/dkoval85/yacht_club/handlers"
	"github.com/dkoval85/yacht_club/middleware"
	"github.com/gofiber/fiber/v2"
)

func PaymentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	payments := api.Group("/payments", middleware.Protected(), middleware.StaffRequired())
	payments.Post("/:paymentId/mark-paid", handlers.MarkPaymentPaid)
	payments.Post("/:paymentId/refund", handlers.RefundPayment)
}
