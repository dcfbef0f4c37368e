package validation

import (
	"errors"
	"testing"
)

func TestEmail(t *testing.T) {
	if err := Email("email", "maria@example.com"); err != nil {
		t.Errorf("valid address rejected: %v", err)
	}

	for _, bad := range []string{"", "maria", "maria@", "@example.com", "maria example@com", "maria@example"} {
		err := Email("email", bad)
		if err == nil {
			t.Errorf("Email(%q) accepted", bad)
			continue
		}
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Field != "email" {
			t.Errorf("Email(%q) = %v, want ValidationError on email", bad, err)
		}
	}
}

func TestNationalID(t *testing.T) {
	if err := NationalID("national_id", "123.456.789-00"); err != nil {
		t.Errorf("valid document rejected: %v", err)
	}

	for _, bad := range []string{"", "12345678900", "123.456.789-0", "abc.def.ghi-jk"} {
		if err := NationalID("national_id", bad); err == nil {
			t.Errorf("NationalID(%q) accepted", bad)
		}
	}
}

func TestMinLength(t *testing.T) {
	if err := MinLength("name", "Ana", 3); err != nil {
		t.Errorf("exact length rejected: %v", err)
	}
	if err := MinLength("name", "Jô", 3); err == nil {
		t.Error("short value accepted")
	}
	// Length is counted in runes, not bytes.
	if err := MinLength("name", "Joã", 3); err != nil {
		t.Errorf("three runes rejected: %v", err)
	}
}

func TestRequired(t *testing.T) {
	if err := Required("subject", "Convênios"); err != nil {
		t.Errorf("non-empty value rejected: %v", err)
	}
	if err := Required("subject", ""); err == nil {
		t.Error("empty value accepted")
	}
}
