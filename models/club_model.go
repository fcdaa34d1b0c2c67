package models

import (
	"time"

	"github.com/google/uuid"
)

type Club struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	City     *string   `gorm:"size:100" json:"city"`
	Currency string    `gorm:"size:3;not null;default:'EUR'" json:"currency"`

	// Season is the calendar year anchoring monthly tariff due dates.
	Season *int `json:"season"`

	Berths  []Berth  `gorm:"foreignkey:ClubID" json:"berths,omitempty"`
	Tariffs []Tariff `gorm:"foreignkey:ClubID" json:"tariffs,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
