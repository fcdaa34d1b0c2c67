package routes

import (
	"github.com/dkoval85/yacht_club/handlers"
	"github.com/dkoval85/yacht_club/middleware"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	booking := api.Group("/bookings", middleware.Protected())
	booking.Get("/me", handlers.GetMyBookings)
	booking.Post("", handlers.CreateBooking)
	booking.Get("/:bookingId", handlers.GetBooking)
	booking.Get("/:bookingId/schedule", handlers.GetBookingSchedule)
	booking.Get("/:bookingId/can-confirm", handlers.CanConfirmBooking)
	booking.Post("/:bookingId/cancel", handlers.CancelBooking)

	staffBooking := api.Group("/staff/bookings", middleware.Protected(), middleware.StaffRequired())
	staffBooking.Post("/:bookingId/confirm", handlers.ConfirmBooking)
}
