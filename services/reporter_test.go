package services

import (
	"testing"
	"time"

	"github.com/dkoval85/yacht_club/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizePayments(t *testing.T) {
	now := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	payments := []models.Payment{
		{PaymentOrder: 2, Amount: 3000, Status: models.PaymentStatusPending,
			DueDate: time.Date(2025, 5, 25, 0, 0, 0, 0, time.UTC)},
		{PaymentOrder: 0, Amount: 900, Status: models.PaymentStatusPaid,
			DueDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{PaymentOrder: 1, Amount: 3000, Status: models.PaymentStatusPaid,
			DueDate: time.Date(2025, 2, 22, 0, 0, 0, 0, time.UTC)},
		{PaymentOrder: 3, Amount: 3000, Status: models.PaymentStatusPending,
			DueDate: time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC)},
	}

	summary := SummarizePayments(payments, now)

	assert.Equal(t, 9900.0, summary.TotalAmount)
	assert.Equal(t, 3900.0, summary.PaidAmount)
	assert.Equal(t, 6000.0, summary.RemainingAmount)
	require.NotNil(t, summary.NextPaymentDue)
	assert.Equal(t, time.Date(2025, 5, 25, 0, 0, 0, 0, time.UTC), *summary.NextPaymentDue)

	for i, p := range summary.Payments {
		assert.Equal(t, i, p.PaymentOrder)
	}
}

func TestSummarizePaymentsSkipsOverdueForNextDue(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	payments := []models.Payment{
		// Pending but already past due: excluded from "next".
		{PaymentOrder: 1, Amount: 500, Status: models.PaymentStatusPending,
			DueDate: time.Date(2025, 5, 25, 0, 0, 0, 0, time.UTC)},
		{PaymentOrder: 2, Amount: 500, Status: models.PaymentStatusPending,
			DueDate: time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC)},
	}

	summary := SummarizePayments(payments, now)
	require.NotNil(t, summary.NextPaymentDue)
	assert.Equal(t, time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC), *summary.NextPaymentDue)
}

func TestSummarizePaymentsNoUpcoming(t *testing.T) {
	now := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	payments := []models.Payment{
		{PaymentOrder: 1, Amount: 500, Status: models.PaymentStatusPaid,
			DueDate: time.Date(2025, 5, 25, 0, 0, 0, 0, time.UTC)},
		{PaymentOrder: 2, Amount: 500, Status: models.PaymentStatusOverdue,
			DueDate: time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC)},
	}

	summary := SummarizePayments(payments, now)
	assert.Nil(t, summary.NextPaymentDue)
	assert.Equal(t, 1000.0, summary.TotalAmount)
	assert.Equal(t, 500.0, summary.PaidAmount)
	assert.Equal(t, 500.0, summary.RemainingAmount)
}

func TestSummarizePaymentsEmpty(t *testing.T) {
	summary := SummarizePayments(nil, time.Now())
	assert.Zero(t, summary.TotalAmount)
	assert.Zero(t, summary.PaidAmount)
	assert.Zero(t, summary.RemainingAmount)
	assert.Nil(t, summary.NextPaymentDue)
}
