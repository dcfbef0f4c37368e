package booking

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

// Repository stores confirmed appointment records. There is no real backend
// in this build; the interface exists so the in-memory implementation can be
// replaced by one later without touching the wizard or the handlers.
type Repository interface {
	Add(ctx context.Context, appt Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]Appointment, error)
}

// MemoryRepository holds appointments for the process lifetime. Records
// added with a nil patient ID are shared demo data, visible to every
// account like the rest of the mock content.
type MemoryRepository struct {
	mu    sync.RWMutex
	appts []Appointment
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Add(ctx context.Context, appt Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appts = append(r.appts, appt)
	return nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.appts {
		if r.appts[i].ID == id {
			appt := r.appts[i]
			return &appt, nil
		}
	}
	return nil, ErrAppointmentNotFound
}

func (r *MemoryRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Appointment
	for _, appt := range r.appts {
		if appt.PatientID == patientID || appt.PatientID == uuid.Nil {
			out = append(out, appt)
		}
	}
	return out, nil
}
