package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/dkoval85/yacht_club/database"
	"github.com/dkoval85/yacht_club/models"
	"github.com/dkoval85/yacht_club/notifications"
)

// SendPaymentReminders emails payers whose pending payments fall due within
// the next three days.
func SendPaymentReminders() {
	log.Println("Running job: SendPaymentReminders...")

	now := time.Now()
	upperBound := now.AddDate(0, 0, 3)

	var duePayments []models.Payment

	err := database.DB.
		Preload("Payer").
		Preload("Booking").
		Where("status = ? AND due_date BETWEEN ? AND ?", models.PaymentStatusPending, now, upperBound).
		Find(&duePayments).Error

	if err != nil {
		log.Printf("Error checking for upcoming payments: %v", err)
		return
	}

	if len(duePayments) == 0 {
		return
	}

	for _, payment := range duePayments {
		log.Printf("Sending payment reminder for payment ID: %s", payment.ID)

		emailSubject := "Reminder: Your Mooring Payment Is Due Soon"
		emailBody := fmt.Sprintf(
			"<h1>Payment Reminder</h1><p>Hi there,</p><p>A payment of %.2f %s for booking %s is due on %s.</p><p>Please settle it by bank transfer to keep your berth reserved.</p>",
			payment.Amount,
			payment.Currency,
			payment.Booking.Reference,
			payment.DueDate.Format("2 January 2006"),
		)

		go notifications.SendEmail(payment.Payer.FullName, payment.Payer.Email, emailSubject, emailBody)
	}

	log.Printf("Sent %d payment reminder(s).", len(duePayments))
}
