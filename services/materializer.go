package services

import (
	"github.com/dkoval85/yacht_club/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Materialize persists one pending payment per schedule item, in the club's
// operating currency, inside the caller's transaction. It is the only writer
// of new payments for a booking. A second invocation for the same booking
// returns ErrScheduleExists; the unique (booking_id, payment_order) index
// backs this guard at the storage level.
func (e *ScheduleEngine) Materialize(tx *gorm.DB, booking models.Booking, club models.Club, items []ScheduleItem) ([]models.Payment, error) {
	var count int64
	if err := tx.Model(&models.Payment{}).Where("booking_id = ?", booking.ID).Count(&count).Error; err != nil {
		return nil, errors.Wrap(err, "failed to check for existing payments")
	}
	if count > 0 {
		return nil, errors.Wrapf(ErrScheduleExists, "booking %s already has %d payments", booking.ID, count)
	}

	payments := make([]models.Payment, 0, len(items))
	for _, item := range items {
		payment := models.Payment{
			BookingID:    booking.ID,
			PayerID:      booking.CustomerID,
			Amount:       item.Amount,
			Currency:     club.Currency,
			Method:       models.PaymentMethodBankTransfer,
			Status:       models.PaymentStatusPending,
			DueDate:      item.DueDate,
			PaymentType:  item.Type,
			PaymentOrder: item.Order,
			PaymentMonth: item.Month,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return nil, errors.Wrapf(err, "failed to create payment %d for booking %s", item.Order, booking.ID)
		}
		payments = append(payments, payment)
	}

	e.log.Info().
		Str("booking_id", booking.ID.String()).
		Int("payments", len(payments)).
		Msg("payment schedule materialized")
	return payments, nil
}
