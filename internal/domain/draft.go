package domain

import (
	"strings"
	"time"
)

// ReservationDraft is the single mutable aggregate of one booking flow.
// Mutated only through the flow's operations; invariants:
//   - len(StudentNames) == PartySize after every mutation
//   - Slot is non-zero only after an explicit selection from a probed
//     result matching the current (date, location, party size)
type ReservationDraft struct {
	CourseID     string
	BookingDate  time.Time // zero until set; date only, time part is ignored
	Location     string
	PartySize    int
	Slot         TimeSlot
	Instructor   *SlotOption // the selected option, kept alongside the slot
	StudentNames []string
	Notes        string
}

// NewReservationDraft creates a draft seeded with the course defaults
func NewReservationDraft(course *CourseDescriptor) *ReservationDraft {
	return &ReservationDraft{
		CourseID:     course.ID,
		Location:     course.DefaultLocation(),
		PartySize:    MinPartySize,
		StudentNames: make([]string, MinPartySize),
	}
}

// HasSchedule returns true if both date and location are set
func (d *ReservationDraft) HasSchedule() bool {
	return !d.BookingDate.IsZero() && d.Location != ""
}

// HasSlot returns true if a time slot has been selected
func (d *ReservationDraft) HasSlot() bool {
	return !d.Slot.IsZero()
}

// ClearSlot drops the selected slot and its instructor
func (d *ReservationDraft) ClearSlot() {
	d.Slot = TimeSlot{}
	d.Instructor = nil
}

// ResizeStudentNames brings StudentNames to the given length,
// preserving existing entries by position: pads with empty strings,
// trims discards from the tail
func (d *ReservationDraft) ResizeStudentNames(n int) {
	names := make([]string, n)
	copy(names, d.StudentNames)
	d.StudentNames = names
}

// StudentNamesComplete returns true if every student name is non-blank
// after trimming whitespace
func (d *ReservationDraft) StudentNamesComplete() bool {
	for _, name := range d.StudentNames {
		if strings.TrimSpace(name) == "" {
			return false
		}
	}
	return true
}

// Key returns the availability key for the draft's current parameters
func (d *ReservationDraft) Key() AvailabilityKey {
	return AvailabilityKey{
		CourseID:  d.CourseID,
		Date:      d.BookingDate,
		Location:  d.Location,
		PartySize: d.PartySize,
	}
}
