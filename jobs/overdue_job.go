package jobs

import (
	"log"
	"time"

	"github.com/dkoval85/yacht_club/database"
	"github.com/dkoval85/yacht_club/models"
)

// MarkOverduePayments flips pending payments whose due date has passed to
// overdue. Single-row status updates, safe to re-run.
func MarkOverduePayments() {
	log.Println("Running job: MarkOverduePayments...")

	result := database.DB.Model(&models.Payment{}).
		Where("status = ? AND due_date < ?", models.PaymentStatusPending, time.Now()).
		Update("status", models.PaymentStatusOverdue)

	if result.Error != nil {
		log.Printf("Error marking overdue payments: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Marked %d payment(s) as overdue.", result.RowsAffected)
	}
}
