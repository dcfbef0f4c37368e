package identity

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStaff   Role = "staff"
	RolePatient Role = "patient"
)

// Identity is the authenticated user record. The full record is what gets
// serialized into the durable session store, so every field must round-trip
// through JSON unchanged.
type Identity struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	NationalID string    `json:"national_id,omitempty"`
	BirthDate  string    `json:"birth_date,omitempty"`
	Address    string    `json:"address,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ProfileUpdate carries the editable profile fields. Empty fields are left
// untouched on merge.
type ProfileUpdate struct {
	Name      string
	Email     string
	Phone     string
	BirthDate string
	Address   string
	AvatarURL string
}
