package models

import (
	"time"

	"github.com/google/uuid"
)

type TariffType string

const (
	TariffTypeSeason  TariffType = "season"
	TariffTypeMonthly TariffType = "monthly"
)

type Tariff struct {
	ID     uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ClubID uuid.UUID  `gorm:"not null;index" json:"club_id"`
	Name   string     `gorm:"size:255;not null" json:"name"`
	Type   TariffType `gorm:"size:20;not null" json:"type"`

	// Amount is the single season-long charge; unused for monthly tariffs.
	Amount float64 `gorm:"type:numeric(10,2);not null;default:0.00" json:"amount"`

	Months []TariffMonth `gorm:"foreignkey:TariffID" json:"months,omitempty"`

	Club Club `gorm:"foreignkey:ClubID" json:"club,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TariffMonth struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TariffID uuid.UUID `gorm:"not null;uniqueIndex:idx_tariff_month" json:"tariff_id"`
	Month    int       `gorm:"not null;uniqueIndex:idx_tariff_month" json:"month"`
	Amount   float64   `gorm:"type:numeric(10,2);not null" json:"amount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
