package handlers

import (
	"time"

	"github.com/dkoval85/yacht_club/database"
	"github.com/dkoval85/yacht_club/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func GetBookingSchedule(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	schedule, err := scheduleEngine.GetSchedule(database.DB, booking.ID, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load payment schedule"})
	}
	return c.JSON(schedule)
}

func CanConfirmBooking(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	ok, err := scheduleEngine.CanConfirm(database.DB, bookingID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check payments"})
	}
	return c.JSON(fiber.Map{"can_confirm": ok})
}

type MarkPaymentPaidRequest struct {
	Method *string `json:"method,omitempty" validate:"omitempty,oneof=bank_transfer cash card"`
}

// MarkPaymentPaid records a settled payment. Status transitions are the only
// mutation payments see after materialization.
func MarkPaymentPaid(c *fiber.Ctx) error {
	paymentID, err := uuid.Parse(c.Params("paymentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment id"})
	}

	var req MarkPaymentPaidRequest
	if err := c.BodyParser(&req); err == nil {
		if err := validate.Struct(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}

	var payment models.Payment
	if err := database.DB.First(&payment, "id = ?", paymentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}

	if payment.Status != models.PaymentStatusPending && payment.Status != models.PaymentStatusOverdue {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Payment is not awaiting settlement"})
	}

	now := time.Now()
	payment.Status = models.PaymentStatusPaid
	payment.PaidAt = &now
	if req.Method != nil {
		payment.Method = *req.Method
	}
	if err := database.DB.Save(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update payment"})
	}
	return c.JSON(payment)
}

func RefundPayment(c *fiber.Ctx) error {
	paymentID, err := uuid.Parse(c.Params("paymentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment id"})
	}

	var payment models.Payment
	if err := database.DB.First(&payment, "id = ?", paymentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}
	if payment.Status != models.PaymentStatusPaid {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Only paid payments can be refunded"})
	}

	payment.Status = models.PaymentStatusRefunded
	if err := database.DB.Save(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update payment"})
	}
	return c.JSON(payment)
}
