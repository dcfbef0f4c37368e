package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/santaluzia/hospital-booking/internal/booking"
	"github.com/santaluzia/hospital-booking/internal/identity"
	"github.com/santaluzia/hospital-booking/internal/schedule"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	NationalID string `json:"national_id"`
}

type ProfileUpdateRequest struct {
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	BirthDate string `json:"birth_date,omitempty"`
	Address   string `json:"address,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type IdentityResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	NationalID string    `json:"national_id,omitempty"`
	BirthDate  string    `json:"birth_date,omitempty"`
	Address    string    `json:"address,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func toIdentityResponse(ident *identity.Identity) IdentityResponse {
	return IdentityResponse{
		ID:         ident.ID,
		Name:       ident.Name,
		Email:      ident.Email,
		Role:       string(ident.Role),
		AvatarURL:  ident.AvatarURL,
		Phone:      ident.Phone,
		NationalID: ident.NationalID,
		BirthDate:  ident.BirthDate,
		Address:    ident.Address,
		CreatedAt:  ident.CreatedAt,
	}
}

type SessionResponse struct {
	Token    string           `json:"token"`
	Identity IdentityResponse `json:"identity"`
}

type DraftUpdateRequest struct {
	Specialty      *string `json:"specialty,omitempty"`
	PractitionerID *string `json:"practitioner_id,omitempty"`
	Date           *string `json:"date,omitempty"` // YYYY-MM-DD
	Time           *string `json:"time,omitempty"` // HH:MM
	Notes          *string `json:"notes,omitempty"`
}

type SpecialtyOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type PractitionerOption struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Specialties []string `json:"specialties"`
}

// DraftOptions carries the eligible choices for the draft's current step.
type DraftOptions struct {
	Specialties   []SpecialtyOption    `json:"specialties,omitempty"`
	Practitioners []PractitionerOption `json:"practitioners,omitempty"`
	Days          []string             `json:"days,omitempty"`
	Slots         []string             `json:"slots,omitempty"`
}

type DraftResponse struct {
	Step           string       `json:"step"`
	Reviewing      bool         `json:"reviewing"`
	Specialty      string       `json:"specialty,omitempty"`
	PractitionerID string       `json:"practitioner_id,omitempty"`
	Date           string       `json:"date,omitempty"`
	Time           string       `json:"time,omitempty"`
	Notes          string       `json:"notes,omitempty"`
	Options        DraftOptions `json:"options"`
}

type AppointmentResponse struct {
	ID               uuid.UUID `json:"id"`
	PractitionerID   string    `json:"practitioner_id"`
	PractitionerName string    `json:"practitioner_name"`
	Specialty        string    `json:"specialty"`
	SpecialtyLabel   string    `json:"specialty_label"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	Status           string    `json:"status"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func toAppointmentResponse(appt *booking.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:               appt.ID,
		PractitionerID:   appt.PractitionerID,
		PractitionerName: appt.PractitionerName,
		Specialty:        string(appt.Specialty),
		SpecialtyLabel:   appt.Specialty.Label(),
		Date:             appt.Date,
		Time:             appt.Time,
		Status:           string(appt.Status),
		Notes:            appt.Notes,
		CreatedAt:        appt.CreatedAt,
	}
}

type AgendaResponse struct {
	Upcoming []AppointmentResponse `json:"upcoming"`
	Past     []AppointmentResponse `json:"past"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Field   string `json:"field,omitempty"`
}

func toPractitionerOptions(practitioners []schedule.Practitioner) []PractitionerOption {
	out := make([]PractitionerOption, 0, len(practitioners))
	for _, p := range practitioners {
		specs := make([]string, 0, len(p.Specialties))
		for _, sp := range p.Specialties {
			specs = append(specs, string(sp))
		}
		out = append(out, PractitionerOption{ID: p.ID, Name: p.Name, Specialties: specs})
	}
	return out
}
