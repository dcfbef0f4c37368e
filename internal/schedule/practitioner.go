package schedule

import (
	"errors"
	"fmt"
	"strings"
)

type Specialty string

const (
	Gynecology Specialty = "gynecology"
	Obstetrics Specialty = "obstetrics"
)

var (
	ErrUnknownSpecialty     = errors.New("unknown specialty")
	ErrPractitionerNotFound = errors.New("practitioner not found")
)

func ParseSpecialty(s string) (Specialty, error) {
	switch Specialty(strings.ToLower(strings.TrimSpace(s))) {
	case Gynecology:
		return Gynecology, nil
	case Obstetrics:
		return Obstetrics, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSpecialty, s)
	}
}

// Label is the display name shown to patients.
func (s Specialty) Label() string {
	switch s {
	case Gynecology:
		return "Ginecologia"
	case Obstetrics:
		return "Obstetrícia"
	default:
		return string(s)
	}
}

func Specialties() []Specialty {
	return []Specialty{Gynecology, Obstetrics}
}

// Practitioner is static reference data: it is never mutated at runtime.
// AvailableWeekdays uses Monday=1 through Sunday=7.
type Practitioner struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	CRM               string      `json:"crm"`
	Bio               string      `json:"bio,omitempty"`
	Specialties       []Specialty `json:"specialties"`
	AvailableWeekdays []int       `json:"available_weekdays"`
}

func (p *Practitioner) HasSpecialty(s Specialty) bool {
	for _, sp := range p.Specialties {
		if sp == s {
			return true
		}
	}
	return false
}

// AvailableOn reports whether the practitioner attends on the given weekday
// (Monday=1 .. Sunday=7).
func (p *Practitioner) AvailableOn(weekday int) bool {
	for _, d := range p.AvailableWeekdays {
		if d == weekday {
			return true
		}
	}
	return false
}
