package schedule

import (
	"fmt"
	"strconv"
	"time"
)

// TimeGrid is the fixed half-hour appointment grid: a morning shift from
// 08:00 to 11:30 and an afternoon shift from 13:00 to 17:30.
var TimeGrid = []string{
	"08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
}

// defaultPractitionerID keys the booked-slot hash when no practitioner has
// been chosen yet.
const defaultPractitionerID = "1"

// Provider answers availability questions for the booking wizard. Behind
// this interface the deterministic mock can be swapped for a real
// availability source without touching wizard logic.
type Provider interface {
	// DayAvailable reports whether date is selectable. practitionerID may be
	// empty, in which case only the weekend and past-date rules apply.
	DayAvailable(date time.Time, practitionerID string) bool
	// Slots returns the eligible times for date, in grid order.
	Slots(date time.Time, practitionerID string) []string
}

// DeterministicProvider simulates pre-existing bookings without a backing
// store: a stable hash of (day, month, slot, practitioner) marks roughly a
// third of the grid as taken, so the same inputs always yield the same
// availability within a session.
type DeterministicProvider struct {
	roster *Roster
	now    func() time.Time
}

func NewDeterministicProvider(roster *Roster) *DeterministicProvider {
	return &DeterministicProvider{roster: roster, now: time.Now}
}

// WithClock overrides the time source.
func (p *DeterministicProvider) WithClock(now func() time.Time) *DeterministicProvider {
	p.now = now
	return p
}

func (p *DeterministicProvider) DayAvailable(date time.Time, practitionerID string) bool {
	wd := date.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return false
	}
	if midnight(date).Before(midnight(p.now())) {
		return false
	}

	if practitionerID == "" {
		return true
	}
	pr, err := p.roster.ByID(practitionerID)
	if err != nil {
		return false
	}

	// Monday=1 .. Sunday=7; time.Weekday has Sunday=0.
	adjusted := int(wd)
	if adjusted == 0 {
		adjusted = 7
	}
	return pr.AvailableOn(adjusted)
}

func (p *DeterministicProvider) Slots(date time.Time, practitionerID string) []string {
	now := p.now()
	isToday := sameDay(date, now)

	var out []string
	for _, slot := range TimeGrid {
		hour, minute := parseSlot(slot)
		if isToday && (hour < now.Hour() || (hour == now.Hour() && minute <= now.Minute())) {
			continue
		}
		if slotTaken(date, slot, practitionerID) {
			continue
		}
		out = append(out, slot)
	}
	return out
}

// slotTaken marks a slot as already booked when the hash of its identifying
// tuple is divisible by 3. The month is zero-based in the hash key.
func slotTaken(date time.Time, slot, practitionerID string) bool {
	if practitionerID == "" {
		practitionerID = defaultPractitionerID
	}
	key := fmt.Sprintf("%d-%d-%s-%s", date.Day(), int(date.Month())-1, slot, practitionerID)

	h := int64(stringHash(key))
	if h < 0 {
		h = -h
	}
	return h%3 == 0
}

// stringHash is a 32-bit accumulator hash (h = h*31 + c with wraparound).
// It is a pure function of its input, which keeps the simulated bookings
// stable across calls.
func stringHash(s string) int32 {
	var h int32
	for _, c := range s {
		h = h<<5 - h + int32(c)
	}
	return h
}

func parseSlot(slot string) (hour, minute int) {
	hour, _ = strconv.Atoi(slot[:2])
	minute, _ = strconv.Atoi(slot[3:])
	return hour, minute
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
