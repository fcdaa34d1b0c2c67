package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	BookingStatusPendingPayment = "pending_payment"
	BookingStatusConfirmed      = "confirmed"
	BookingStatusCancelled      = "cancelled"
	BookingStatusCompleted      = "completed"
)

type Booking struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Reference  string     `gorm:"size:12;not null;unique" json:"reference"`
	CustomerID uuid.UUID  `gorm:"not null;index" json:"customer_id"`
	VesselID   uuid.UUID  `gorm:"not null" json:"vessel_id"`
	ClubID     uuid.UUID  `gorm:"not null;index" json:"club_id"`
	BerthID    uuid.UUID  `gorm:"not null;index" json:"berth_id"`
	TariffID   *uuid.UUID `json:"tariff_id"`

	StartDate time.Time `gorm:"not null" json:"start_date"`
	EndDate   time.Time `gorm:"not null" json:"end_date"`

	TotalPrice float64 `gorm:"type:numeric(10,2);not null" json:"total_price"`
	Currency   string  `gorm:"size:3;not null" json:"currency"`
	Status     string  `gorm:"size:20;not null;default:'pending_payment'" json:"status"`

	Customer User    `gorm:"foreignkey:CustomerID" json:"customer,omitempty"`
	Vessel   Vessel  `gorm:"foreignkey:VesselID" json:"vessel,omitempty"`
	Club     Club    `gorm:"foreignkey:ClubID" json:"club,omitempty"`
	Berth    Berth   `gorm:"foreignkey:BerthID" json:"berth,omitempty"`
	Tariff   *Tariff `gorm:"foreignkey:TariffID" json:"tariff,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
