package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/santaluzia/hospital-booking/internal/schedule"
)

// Step is the wizard's linear step order: specialty, then practitioner,
// then date and time.
type Step int

const (
	StepSpecialty Step = iota + 1
	StepPractitioner
	StepDateTime
)

func (s Step) String() string {
	switch s {
	case StepSpecialty:
		return "select_specialty"
	case StepPractitioner:
		return "select_practitioner"
	case StepDateTime:
		return "select_datetime"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

var (
	ErrStepIncomplete       = errors.New("step is incomplete")
	ErrOutOfOrder           = errors.New("earlier selections are required first")
	ErrNotReviewing         = errors.New("draft is not under review")
	ErrDateUnavailable      = errors.New("date is not available")
	ErrTimeUnavailable      = errors.New("time slot is not available")
	ErrPractitionerMismatch = errors.New("practitioner does not cover the selected specialty")
)

// Draft is the wizard-scoped booking state. Fields are only selectable once
// everything to their left in the step order is set, and changing an earlier
// field clears any later field that is no longer valid for it.
//
// Review is a flag on top of the last step rather than a fourth step: going
// back from review returns to date/time selection with all fields intact.
// Any cascade that invalidates the date or time also leaves review, so a
// reviewed draft always has every field set.
type Draft struct {
	Specialty      schedule.Specialty
	PractitionerID string
	Date           time.Time // zero means not chosen
	Time           string
	Notes          string

	Step      Step
	Reviewing bool

	roster   *schedule.Roster
	provider schedule.Provider
}

func NewDraft(roster *schedule.Roster, provider schedule.Provider) *Draft {
	return &Draft{
		Step:     StepSpecialty,
		roster:   roster,
		provider: provider,
	}
}

func (d *Draft) SetSpecialty(s schedule.Specialty) error {
	if _, err := schedule.ParseSpecialty(string(s)); err != nil {
		return err
	}

	d.Specialty = s

	// A practitioner picked for the previous specialty may no longer apply.
	if d.PractitionerID != "" {
		pr, err := d.roster.ByID(d.PractitionerID)
		if err != nil || !pr.HasSpecialty(s) {
			d.clearPractitioner()
		}
	}
	return nil
}

func (d *Draft) SetPractitioner(id string) error {
	if d.Specialty == "" {
		return ErrOutOfOrder
	}

	pr, err := d.roster.ByID(id)
	if err != nil {
		return err
	}
	if !pr.HasSpecialty(d.Specialty) {
		return ErrPractitionerMismatch
	}

	d.PractitionerID = id

	// Re-validate downstream choices against the new practitioner.
	if !d.Date.IsZero() {
		if !d.provider.DayAvailable(d.Date, id) {
			d.clearDate()
		} else if d.Time != "" && !containsSlot(d.provider.Slots(d.Date, id), d.Time) {
			d.clearTime()
		}
	}
	return nil
}

func (d *Draft) SetDate(date time.Time) error {
	if d.PractitionerID == "" {
		return ErrOutOfOrder
	}
	if !d.provider.DayAvailable(date, d.PractitionerID) {
		return ErrDateUnavailable
	}

	d.Date = date

	if d.Time != "" && !containsSlot(d.provider.Slots(date, d.PractitionerID), d.Time) {
		d.clearTime()
	}
	return nil
}

func (d *Draft) SetTime(slot string) error {
	if d.Date.IsZero() {
		return ErrOutOfOrder
	}
	if !containsSlot(d.provider.Slots(d.Date, d.PractitionerID), slot) {
		return ErrTimeUnavailable
	}
	d.Time = slot
	return nil
}

func (d *Draft) SetNotes(notes string) {
	d.Notes = notes
}

// Next advances to the following step once the current step's required
// fields are set; otherwise the draft stays where it is. From the last step
// it enters review.
func (d *Draft) Next() error {
	if d.Reviewing {
		return nil
	}

	switch d.Step {
	case StepSpecialty:
		if d.Specialty == "" {
			return fmt.Errorf("%w: specialty is required", ErrStepIncomplete)
		}
		d.Step = StepPractitioner
	case StepPractitioner:
		if d.PractitionerID == "" {
			return fmt.Errorf("%w: practitioner is required", ErrStepIncomplete)
		}
		d.Step = StepDateTime
	case StepDateTime:
		if d.Date.IsZero() || d.Time == "" {
			return fmt.Errorf("%w: date and time are required", ErrStepIncomplete)
		}
		d.Reviewing = true
	}
	return nil
}

// Back steps backwards without discarding anything, so the flow can be
// resumed. From review it returns to date/time selection.
func (d *Draft) Back() {
	if d.Reviewing {
		d.Reviewing = false
		return
	}
	if d.Step > StepSpecialty {
		d.Step--
	}
}

func (d *Draft) clearPractitioner() {
	d.PractitionerID = ""
	d.clearDate()
}

func (d *Draft) clearDate() {
	d.Date = time.Time{}
	d.clearTime()
}

// clearTime drops the slot and, with it, the review state: a draft under
// review must have all fields set, so losing one reopens date/time selection.
func (d *Draft) clearTime() {
	d.Time = ""
	d.Reviewing = false
}

func containsSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
