package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/santaluzia/hospital-booking/internal/schedule"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	roster := schedule.DefaultRoster()
	provider := schedule.NewDeterministicProvider(roster).WithClock(fixedNow)
	return NewService(NewMemoryRepository(), roster, provider, NewDraftStore(time.Hour)).WithClock(fixedNow)
}

func TestConfirmRequiresReview(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Confirm(ctx, "tok", uuid.New(), "Maria Silva"); !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound without a draft, got %v", err)
	}

	svc.StartDraft("tok")
	if _, err := svc.Confirm(ctx, "tok", uuid.New(), "Maria Silva"); !errors.Is(err, ErrNotReviewing) {
		t.Fatalf("expected ErrNotReviewing, got %v", err)
	}
}

func TestConfirmCreatesAppointmentAndEndsDraft(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	patientID := uuid.New()

	d := svc.StartDraft("tok")
	if err := d.SetSpecialty(schedule.Obstetrics); err != nil {
		t.Fatalf("SetSpecialty failed: %v", err)
	}
	if err := d.SetPractitioner("2"); err != nil {
		t.Fatalf("SetPractitioner failed: %v", err)
	}
	wednesday := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)
	if err := d.SetDate(wednesday); err != nil {
		t.Fatalf("SetDate failed: %v", err)
	}
	slots := svc.Provider().Slots(wednesday, "2")
	if len(slots) == 0 {
		t.Fatal("expected open slots")
	}
	if err := d.SetTime(slots[0]); err != nil {
		t.Fatalf("SetTime failed: %v", err)
	}
	d.SetNotes("primeira consulta")
	for i := 0; i < 3; i++ {
		if err := d.Next(); err != nil {
			t.Fatalf("Next failed: %v", err)
		}
	}

	appt, err := svc.Confirm(ctx, "tok", patientID, "Maria Silva")
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if appt.Status != StatusScheduled {
		t.Errorf("status = %q, want scheduled", appt.Status)
	}
	if appt.PractitionerName != "Dr. Pedro Mendes" {
		t.Errorf("practitioner name = %q", appt.PractitionerName)
	}
	if appt.Date != "2026-03-04" || appt.Time != slots[0] {
		t.Errorf("date/time = %q %q", appt.Date, appt.Time)
	}
	if appt.Notes != "primeira consulta" {
		t.Errorf("notes = %q", appt.Notes)
	}

	// The draft is gone once confirmed.
	if _, err := svc.Draft("tok"); !errors.Is(err, ErrDraftNotFound) {
		t.Errorf("expected draft to be discarded, got %v", err)
	}

	agenda, err := svc.Agenda(ctx, patientID, "")
	if err != nil {
		t.Fatalf("Agenda failed: %v", err)
	}
	if len(agenda.Upcoming) != 1 || agenda.Upcoming[0].ID != appt.ID {
		t.Errorf("confirmed appointment missing from agenda: %+v", agenda.Upcoming)
	}
}

func TestConfirmRejectedAfterReviewInvalidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	d := svc.StartDraft("tok")
	if err := d.SetSpecialty(schedule.Obstetrics); err != nil {
		t.Fatalf("SetSpecialty failed: %v", err)
	}
	if err := d.SetPractitioner("2"); err != nil {
		t.Fatalf("SetPractitioner failed: %v", err)
	}
	wednesday := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)
	if err := d.SetDate(wednesday); err != nil {
		t.Fatalf("SetDate failed: %v", err)
	}
	slots := svc.Provider().Slots(wednesday, "2")
	if len(slots) == 0 {
		t.Fatal("expected open slots")
	}
	if err := d.SetTime(slots[0]); err != nil {
		t.Fatalf("SetTime failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := d.Next(); err != nil {
			t.Fatalf("Next failed: %v", err)
		}
	}

	// Switching to a practitioner who is off that day clears the date and
	// ends the review, so the gutted draft cannot be confirmed.
	if err := d.SetPractitioner("4"); err != nil {
		t.Fatalf("SetPractitioner failed: %v", err)
	}
	if _, err := svc.Confirm(ctx, "tok", uuid.New(), "Maria Silva"); !errors.Is(err, ErrNotReviewing) {
		t.Fatalf("expected ErrNotReviewing, got %v", err)
	}
}

func TestAgendaSplitsUpcomingAndPast(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.SeedDemo(ctx); err != nil {
		t.Fatalf("SeedDemo failed: %v", err)
	}

	// Demo records have a nil patient ID and show up for any account.
	agenda, err := svc.Agenda(ctx, uuid.New(), "")
	if err != nil {
		t.Fatalf("Agenda failed: %v", err)
	}
	if len(agenda.Upcoming) != 2 {
		t.Errorf("upcoming = %d, want 2", len(agenda.Upcoming))
	}
	if len(agenda.Past) != 3 {
		t.Errorf("past = %d, want 3", len(agenda.Past))
	}
	for _, appt := range agenda.Upcoming {
		if appt.Status != StatusScheduled {
			t.Errorf("upcoming appointment with status %q", appt.Status)
		}
	}
}

func TestAgendaQueryFilter(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.SeedDemo(ctx); err != nil {
		t.Fatalf("SeedDemo failed: %v", err)
	}
	patientID := uuid.New()

	byName, err := svc.Agenda(ctx, patientID, "PEDRO")
	if err != nil {
		t.Fatalf("Agenda failed: %v", err)
	}
	if len(byName.Upcoming) != 1 || len(byName.Past) != 1 {
		t.Errorf("query pedro: upcoming=%d past=%d, want 1/1", len(byName.Upcoming), len(byName.Past))
	}

	bySpecialty, err := svc.Agenda(ctx, patientID, "ginecologia")
	if err != nil {
		t.Fatalf("Agenda failed: %v", err)
	}
	if len(bySpecialty.Upcoming)+len(bySpecialty.Past) != 3 {
		t.Errorf("query ginecologia matched %d records, want 3",
			len(bySpecialty.Upcoming)+len(bySpecialty.Past))
	}

	none, err := svc.Agenda(ctx, patientID, "neurologia")
	if err != nil {
		t.Fatalf("Agenda failed: %v", err)
	}
	if len(none.Upcoming)+len(none.Past) != 0 {
		t.Errorf("query neurologia matched %d records, want 0",
			len(none.Upcoming)+len(none.Past))
	}
}

func TestDraftStorePrunesStaleEntries(t *testing.T) {
	current := fixedNow()
	ds := NewDraftStore(30 * time.Minute)
	ds.now = func() time.Time { return current }

	ds.Put("stale", &Draft{})
	ds.Put("active", &Draft{})

	current = current.Add(20 * time.Minute)
	if _, ok := ds.Get("active"); !ok {
		t.Fatal("active draft missing")
	}

	// "stale" is now 35 minutes old; "active" was touched 15 minutes ago.
	current = current.Add(15 * time.Minute)
	if n := ds.Prune(); n != 1 {
		t.Errorf("pruned %d drafts, want 1", n)
	}
	if _, ok := ds.Get("stale"); ok {
		t.Error("stale draft survived the sweep")
	}
	if _, ok := ds.Get("active"); !ok {
		t.Error("recently touched draft must survive the sweep")
	}
}
