package services

import (
	"sort"
	"time"

	"github.com/dkoval85/yacht_club/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type ScheduleSummary struct {
	Payments        []models.Payment `json:"payments"`
	TotalAmount     float64          `json:"total_amount"`
	PaidAmount      float64          `json:"paid_amount"`
	RemainingAmount float64          `json:"remaining_amount"`
	NextPaymentDue  *time.Time       `json:"next_payment_due"`
}

// GetSchedule aggregates a booking's payments for display.
func (e *ScheduleEngine) GetSchedule(db *gorm.DB, bookingID uuid.UUID, now time.Time) (*ScheduleSummary, error) {
	var payments []models.Payment
	if err := db.Where("booking_id = ?", bookingID).Find(&payments).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load payments")
	}
	summary := SummarizePayments(payments, now)
	return &summary, nil
}

// SummarizePayments computes totals and the next upcoming due date. A pending
// payment whose due date has already passed is overdue, not "next".
func SummarizePayments(payments []models.Payment, now time.Time) ScheduleSummary {
	sort.SliceStable(payments, func(i, j int) bool {
		if payments[i].PaymentOrder != payments[j].PaymentOrder {
			return payments[i].PaymentOrder < payments[j].PaymentOrder
		}
		return payments[i].DueDate.Before(payments[j].DueDate)
	})

	summary := ScheduleSummary{Payments: payments}
	for _, p := range payments {
		summary.TotalAmount += p.Amount
		if p.Status == models.PaymentStatusPaid {
			summary.PaidAmount += p.Amount
		}
		if p.Status == models.PaymentStatusPending && !p.DueDate.Before(now) {
			if summary.NextPaymentDue == nil || p.DueDate.Before(*summary.NextPaymentDue) {
				due := p.DueDate
				summary.NextPaymentDue = &due
			}
		}
	}
	summary.RemainingAmount = summary.TotalAmount - summary.PaidAmount
	return summary
}
