package domain

import (
	"time"

	"github.com/avekla/NSK-BookingFlow/pkg/types"
)

// TimeSlot represents a bookable start/end time pair
type TimeSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// IsZero returns true if no slot has been selected
func (t TimeSlot) IsZero() bool {
	return t.StartTime.IsZero() && t.EndTime.IsZero()
}

// Equal returns true if both slots have the same start and end time
func (t TimeSlot) Equal(other TimeSlot) bool {
	return t.StartTime == other.StartTime && t.EndTime == other.EndTime
}

// SlotOption one bookable slot offered by the availability service,
// paired with the instructor assigned to it
type SlotOption struct {
	Slot           TimeSlot
	InstructorID   string
	InstructorName string
}

// AvailabilityKey identifies the draft parameters a probe was issued for.
// Results are applied only when the key still matches the draft.
type AvailabilityKey struct {
	CourseID  string
	Date      time.Time
	Location  string
	PartySize int
}

// Equal returns true if both keys describe the same probe parameters
func (k AvailabilityKey) Equal(other AvailabilityKey) bool {
	return k.CourseID == other.CourseID &&
		k.Date.Equal(other.Date) &&
		k.Location == other.Location &&
		k.PartySize == other.PartySize
}

// AvailabilityResult outcome of one availability probe.
// Transient: superseded wholesale by the next probe.
type AvailabilityResult struct {
	Available bool
	Options   []SlotOption
}

// FindOption returns the option matching the given slot, or nil
func (r *AvailabilityResult) FindOption(slot TimeSlot) *SlotOption {
	if r == nil || !r.Available {
		return nil
	}
	for i := range r.Options {
		if r.Options[i].Slot.Equal(slot) {
			return &r.Options[i]
		}
	}
	return nil
}
