package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/santaluzia/hospital-booking/internal/schedule"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no-show"
)

// Appointment is a confirmed booking record. Confirmation is terminal for
// the wizard; whatever happens to the appointment afterwards (completion,
// cancellation) is seeded demo data in this build.
type Appointment struct {
	ID               uuid.UUID          `json:"id"`
	PatientID        uuid.UUID          `json:"patient_id"`
	PatientName      string             `json:"patient_name"`
	PractitionerID   string             `json:"practitioner_id"`
	PractitionerName string             `json:"practitioner_name"`
	Specialty        schedule.Specialty `json:"specialty"`
	Date             string             `json:"date"` // YYYY-MM-DD
	Time             string             `json:"time"` // HH:MM
	Status           Status             `json:"status"`
	Notes            string             `json:"notes,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
}

const dateLayout = "2006-01-02"

// day returns the appointment date at midnight in loc; zero time when the
// stored date is malformed.
func (a *Appointment) day(loc *time.Location) time.Time {
	t, err := time.ParseInLocation(dateLayout, a.Date, loc)
	if err != nil {
		return time.Time{}
	}
	return t
}
