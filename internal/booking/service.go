package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/santaluzia/hospital-booking/internal/schedule"
)

var ErrDraftNotFound = errors.New("no booking draft in progress")

// Service ties the wizard, the draft store and the appointment records
// together for the HTTP layer.
type Service struct {
	repo     Repository
	roster   *schedule.Roster
	provider schedule.Provider
	drafts   *DraftStore
	now      func() time.Time
}

func NewService(repo Repository, roster *schedule.Roster, provider schedule.Provider, drafts *DraftStore) *Service {
	return &Service{
		repo:     repo,
		roster:   roster,
		provider: provider,
		drafts:   drafts,
		now:      time.Now,
	}
}

// WithClock overrides the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Roster() *schedule.Roster {
	return s.roster
}

func (s *Service) Provider() schedule.Provider {
	return s.provider
}

// StartDraft begins a fresh wizard flow for the session, replacing any
// previous draft.
func (s *Service) StartDraft(token string) *Draft {
	d := NewDraft(s.roster, s.provider)
	s.drafts.Put(token, d)
	return d
}

func (s *Service) Draft(token string) (*Draft, error) {
	d, ok := s.drafts.Get(token)
	if !ok {
		return nil, ErrDraftNotFound
	}
	return d, nil
}

func (s *Service) DiscardDraft(token string) {
	s.drafts.Delete(token)
}

// Confirm finalizes the session's draft into an appointment record and ends
// the wizard flow. It is only reachable from the review state.
func (s *Service) Confirm(ctx context.Context, token string, patientID uuid.UUID, patientName string) (*Appointment, error) {
	d, err := s.Draft(token)
	if err != nil {
		return nil, err
	}
	if !d.Reviewing {
		return nil, ErrNotReviewing
	}

	pr, err := s.roster.ByID(d.PractitionerID)
	if err != nil {
		return nil, fmt.Errorf("load practitioner: %w", err)
	}

	appt := Appointment{
		ID:               uuid.New(),
		PatientID:        patientID,
		PatientName:      patientName,
		PractitionerID:   pr.ID,
		PractitionerName: pr.Name,
		Specialty:        d.Specialty,
		Date:             d.Date.Format(dateLayout),
		Time:             d.Time,
		Status:           StatusScheduled,
		Notes:            d.Notes,
		CreatedAt:        s.now(),
	}

	if err := s.repo.Add(ctx, appt); err != nil {
		return nil, fmt.Errorf("store appointment: %w", err)
	}

	s.drafts.Delete(token)
	return &appt, nil
}

// Agenda is a patient's appointment list split into upcoming and past.
type Agenda struct {
	Upcoming []Appointment
	Past     []Appointment
}

// Agenda lists the patient's appointments, optionally filtered by a
// case-insensitive substring over practitioner name, specialty label and
// the dd/mm/yyyy rendering of the date.
func (s *Service) Agenda(ctx context.Context, patientID uuid.UUID, query string) (Agenda, error) {
	appts, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return Agenda{}, fmt.Errorf("list appointments: %w", err)
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	query = strings.ToLower(strings.TrimSpace(query))

	var agenda Agenda
	for _, appt := range appts {
		if query != "" && !matchesQuery(appt, query) {
			continue
		}
		day := appt.day(now.Location())
		if appt.Status == StatusScheduled && !day.Before(today) {
			agenda.Upcoming = append(agenda.Upcoming, appt)
		} else {
			agenda.Past = append(agenda.Past, appt)
		}
	}
	return agenda, nil
}

func matchesQuery(appt Appointment, query string) bool {
	if strings.Contains(strings.ToLower(appt.PractitionerName), query) {
		return true
	}
	if strings.Contains(strings.ToLower(appt.Specialty.Label()), query) {
		return true
	}
	if day := appt.day(time.UTC); !day.IsZero() {
		if strings.Contains(day.Format("02/01/2006"), query) {
			return true
		}
	}
	return false
}

// SeedDemo loads the shared sample records every account sees, with dates
// placed relative to now so the upcoming/past split stays meaningful.
func (s *Service) SeedDemo(ctx context.Context) error {
	now := s.now()
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format(dateLayout)
	}

	demo := []Appointment{
		{PractitionerID: "1", PractitionerName: "Dra. Ana Carvalho", Specialty: schedule.Gynecology, Date: day(10), Time: "14:30", Status: StatusScheduled},
		{PractitionerID: "2", PractitionerName: "Dr. Pedro Mendes", Specialty: schedule.Obstetrics, Date: day(15), Time: "10:00", Status: StatusScheduled},
		{PractitionerID: "1", PractitionerName: "Dra. Ana Carvalho", Specialty: schedule.Gynecology, Date: day(-20), Time: "11:15", Status: StatusCompleted},
		{PractitionerID: "3", PractitionerName: "Dra. Marta Ribeiro", Specialty: schedule.Gynecology, Date: day(-66), Time: "09:30", Status: StatusCompleted},
		{PractitionerID: "2", PractitionerName: "Dr. Pedro Mendes", Specialty: schedule.Obstetrics, Date: day(-104), Time: "16:00", Status: StatusCancelled},
	}

	for _, appt := range demo {
		appt.ID = uuid.New()
		appt.CreatedAt = now
		if err := s.repo.Add(ctx, appt); err != nil {
			return err
		}
	}
	return nil
}
