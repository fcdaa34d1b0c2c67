package services

import (
	"testing"

	"github.com/dkoval85/yacht_club/models"
	"github.com/stretchr/testify/assert"
)

func payment(order int, status string) models.Payment {
	return models.Payment{PaymentOrder: order, Status: status}
}

func TestCanConfirmDepositAndFirstPaid(t *testing.T) {
	payments := []models.Payment{
		payment(0, models.PaymentStatusPaid),
		payment(1, models.PaymentStatusPaid),
		payment(2, models.PaymentStatusPending),
		payment(3, models.PaymentStatusOverdue),
	}
	assert.True(t, CanConfirmPayments(payments))
}

func TestCanConfirmDepositUnpaid(t *testing.T) {
	payments := []models.Payment{
		payment(0, models.PaymentStatusPending),
		payment(1, models.PaymentStatusPaid),
	}
	assert.False(t, CanConfirmPayments(payments))
}

func TestCanConfirmFirstPrincipalUnpaid(t *testing.T) {
	payments := []models.Payment{
		payment(0, models.PaymentStatusPaid),
		payment(1, models.PaymentStatusPending),
	}
	assert.False(t, CanConfirmPayments(payments))
}

func TestCanConfirmNoDepositSlot(t *testing.T) {
	payments := []models.Payment{
		payment(1, models.PaymentStatusPaid),
		payment(2, models.PaymentStatusPending),
	}
	assert.True(t, CanConfirmPayments(payments))
}

func TestCanConfirmDepositOnlySchedule(t *testing.T) {
	assert.True(t, CanConfirmPayments([]models.Payment{payment(0, models.PaymentStatusPaid)}))
	assert.False(t, CanConfirmPayments([]models.Payment{payment(0, models.PaymentStatusPending)}))
}

func TestCanConfirmAnomalousSchedule(t *testing.T) {
	// Neither order 0 nor order 1 exists: any paid payment suffices.
	assert.True(t, CanConfirmPayments([]models.Payment{
		payment(2, models.PaymentStatusPaid),
		payment(3, models.PaymentStatusPending),
	}))
	assert.False(t, CanConfirmPayments([]models.Payment{
		payment(2, models.PaymentStatusPending),
	}))
}

func TestCanConfirmNoPayments(t *testing.T) {
	assert.False(t, CanConfirmPayments(nil))
}
