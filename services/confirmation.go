package services

import (
	"github.com/dkoval85/yacht_club/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CanConfirm reports whether a booking may move to confirmed, based on a
// consistent read of its payments.
func (e *ScheduleEngine) CanConfirm(db *gorm.DB, bookingID uuid.UUID) (bool, error) {
	var payments []models.Payment
	if err := db.Where("booking_id = ?", bookingID).Find(&payments).Error; err != nil {
		return false, errors.Wrap(err, "failed to load payments")
	}
	return CanConfirmPayments(payments), nil
}

// CanConfirmPayments is the confirmation rule: the deposit (order 0) and the
// first principal payment (order 1) must both be paid where they exist.
// Later installments never block confirmation. If a booking has neither slot,
// its schedule is anomalous and any single paid payment suffices.
func CanConfirmPayments(payments []models.Payment) bool {
	var deposit, firstPrincipal *models.Payment
	for i := range payments {
		switch payments[i].PaymentOrder {
		case 0:
			deposit = &payments[i]
		case 1:
			firstPrincipal = &payments[i]
		}
	}

	if deposit == nil && firstPrincipal == nil {
		for _, p := range payments {
			if p.Status == models.PaymentStatusPaid {
				return true
			}
		}
		return false
	}

	if deposit != nil && deposit.Status != models.PaymentStatusPaid {
		return false
	}
	if firstPrincipal != nil && firstPrincipal.Status != models.PaymentStatusPaid {
		return false
	}
	return true
}
