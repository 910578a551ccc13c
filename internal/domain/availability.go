package domain

import (
	"time"

	"github.com/m04kA/SMC-ConfiguratorService/pkg/types"
)

// TimeSlot is one bookable time of day on a given date.
type TimeSlot struct {
	Time   types.TimeString
	IsOpen bool
}

// AvailabilitySet is the ordered slot list for one (date, required duration) pair.
// It is replaced wholesale whenever date or duration changes, never merged.
type AvailabilitySet struct {
	Date            time.Time
	DurationMinutes int
	Slots           []TimeSlot
}

// SlotOpen reports whether the given time is present in the set and open.
func (a *AvailabilitySet) SlotOpen(t string) bool {
	if a == nil {
		return false
	}
	for _, slot := range a.Slots {
		if slot.Time.String() == t {
			return slot.IsOpen
		}
	}
	return false
}

// OpenCount returns the number of open slots.
func (a *AvailabilitySet) OpenCount() int {
	if a == nil {
		return 0
	}
	count := 0
	for _, slot := range a.Slots {
		if slot.IsOpen {
			count++
		}
	}
	return count
}

// Matches reports whether the set was fetched for the given parameters.
// Used to discard stale responses: a set for superseded parameters must not
// replace the live one.
func (a *AvailabilitySet) Matches(date time.Time, durationMinutes int) bool {
	if a == nil {
		return false
	}
	return SameDay(a.Date, date) && a.DurationMinutes == durationMinutes
}

// SameDay reports whether two timestamps fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Clone returns a copy of the set for snapshots.
func (a *AvailabilitySet) Clone() *AvailabilitySet {
	if a == nil {
		return nil
	}
	cp := *a
	cp.Slots = make([]TimeSlot, len(a.Slots))
	copy(cp.Slots, a.Slots)
	return &cp
}
