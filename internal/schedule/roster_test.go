package schedule

import (
	"errors"
	"testing"
)

func TestBySpecialty(t *testing.T) {
	r := DefaultRoster()

	ids := func(ps []Practitioner) []string {
		out := make([]string, 0, len(ps))
		for _, p := range ps {
			out = append(out, p.ID)
		}
		return out
	}

	gyn := ids(r.BySpecialty(Gynecology))
	if len(gyn) != 3 || gyn[0] != "1" || gyn[1] != "3" || gyn[2] != "5" {
		t.Errorf("gynecology roster = %v, want [1 3 5]", gyn)
	}

	obst := ids(r.BySpecialty(Obstetrics))
	if len(obst) != 3 || obst[0] != "2" || obst[1] != "3" || obst[2] != "4" {
		t.Errorf("obstetrics roster = %v, want [2 3 4]", obst)
	}
}

func TestByID(t *testing.T) {
	r := DefaultRoster()

	p, err := r.ByID("4")
	if err != nil {
		t.Fatalf("ByID failed: %v", err)
	}
	if p.Name != "Dr. José Santos" {
		t.Errorf("unexpected practitioner: %q", p.Name)
	}

	if _, err := r.ByID("99"); !errors.Is(err, ErrPractitionerNotFound) {
		t.Errorf("expected ErrPractitionerNotFound, got %v", err)
	}
}

func TestSearch(t *testing.T) {
	r := DefaultRoster()

	if got := r.Search(""); len(got) != 5 {
		t.Errorf("empty query should return everyone, got %d", len(got))
	}

	byName := r.Search("pedro")
	if len(byName) != 1 || byName[0].ID != "2" {
		t.Errorf("Search(pedro) = %v", byName)
	}

	bySpecialty := r.Search("obstetrícia")
	if len(bySpecialty) != 3 {
		t.Errorf("Search(obstetrícia) returned %d practitioners, want 3", len(bySpecialty))
	}
}

func TestParseSpecialty(t *testing.T) {
	sp, err := ParseSpecialty("gynecology")
	if err != nil {
		t.Fatalf("ParseSpecialty failed: %v", err)
	}
	if sp != Gynecology {
		t.Errorf("got %q", sp)
	}
	if sp.Label() != "Ginecologia" {
		t.Errorf("label = %q", sp.Label())
	}

	if _, err := ParseSpecialty("cardiology"); !errors.Is(err, ErrUnknownSpecialty) {
		t.Errorf("expected ErrUnknownSpecialty, got %v", err)
	}
}
