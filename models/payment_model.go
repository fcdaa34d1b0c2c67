package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusPaid      = "paid"
	PaymentStatusOverdue   = "overdue"
	PaymentStatusCancelled = "cancelled"
	PaymentStatusRefunded  = "refunded"
)

const (
	PaymentTypeDeposit = "deposit"
	PaymentTypeFull    = "full"
	PaymentTypeMonthly = "monthly"
)

const PaymentMethodBankTransfer = "bank_transfer"

type Payment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingID uuid.UUID `gorm:"not null;uniqueIndex:idx_booking_payment_order" json:"booking_id"`
	PayerID   uuid.UUID `gorm:"not null;index" json:"payer_id"`

	Amount   float64 `gorm:"type:numeric(10,2);not null" json:"amount"`
	Currency string  `gorm:"size:3;not null" json:"currency"`
	Method   string  `gorm:"size:30;not null;default:'bank_transfer'" json:"method"`
	Status   string  `gorm:"size:20;not null;default:'pending'" json:"status"`

	DueDate     time.Time `gorm:"not null" json:"due_date"`
	PaymentType string    `gorm:"size:20;not null" json:"payment_type"`

	// PaymentOrder 0 is reserved for the deposit, 1+ for principal payments.
	// The composite unique index makes a second materialization for the same
	// booking fail instead of duplicating rows.
	PaymentOrder int  `gorm:"not null;uniqueIndex:idx_booking_payment_order" json:"payment_order"`
	PaymentMonth *int `json:"payment_month"`

	PaidAt *time.Time `json:"paid_at"`

	Booking Booking `gorm:"foreignkey:BookingID" json:"booking,omitempty"`
	Payer   User    `gorm:"foreignkey:PayerID" json:"payer,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
