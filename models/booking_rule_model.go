package models

import (
	"time"

	"github.com/google/uuid"
)

const RuleTypeRequireDeposit = "require_deposit"

type BookingRule struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ClubID uuid.UUID `gorm:"not null;index" json:"club_id"`

	// TariffID scopes the rule to one tariff. A nil TariffID applies only to
	// bookings made without a tariff, never as a catch-all.
	TariffID *uuid.UUID `gorm:"index" json:"tariff_id"`

	RuleType string `gorm:"size:30;not null" json:"rule_type"`

	DepositAmount     *float64 `gorm:"type:numeric(10,2)" json:"deposit_amount"`
	DepositPercentage *float64 `gorm:"type:numeric(5,2)" json:"deposit_percentage"`

	Club   Club    `gorm:"foreignkey:ClubID" json:"club,omitempty"`
	Tariff *Tariff `gorm:"foreignkey:TariffID" json:"tariff,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
