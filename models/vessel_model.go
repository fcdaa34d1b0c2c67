package models

import (
	"time"

	"github.com/google/uuid"
)

type Vessel struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OwnerID uuid.UUID `gorm:"not null;index" json:"owner_id"`
	Name    string    `gorm:"size:255;not null" json:"name"`

	RegistrationNumber string  `gorm:"size:50;not null;unique" json:"registration_number"`
	LengthM            float64 `gorm:"type:numeric(6,2);not null" json:"length_m"`
	WidthM             float64 `gorm:"type:numeric(6,2)" json:"width_m"`
	DraftM             float64 `gorm:"type:numeric(6,2)" json:"draft_m"`

	PhotoURL *string `gorm:"size:255" json:"photo_url"`

	Owner User `gorm:"foreignkey:OwnerID" json:"owner,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
