package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func beginnerCourse() *CourseDescriptor {
	return &CourseDescriptor{
		ID:           "c1",
		Name:         "Beginner Kitesurfing",
		MaxPartySize: 4,
		BasePrice:    80,
		Locations:    []string{"sylt", "romo"},
	}
}

func TestNewReservationDraft_Defaults(t *testing.T) {
	d := NewReservationDraft(beginnerCourse())

	assert.Equal(t, "c1", d.CourseID)
	assert.Equal(t, "sylt", d.Location)
	assert.Equal(t, 1, d.PartySize)
	assert.Equal(t, []string{""}, d.StudentNames)
	assert.False(t, d.HasSchedule())
	assert.False(t, d.HasSlot())
}

func TestResizeStudentNames(t *testing.T) {
	d := NewReservationDraft(beginnerCourse())
	d.StudentNames = []string{"Mads", "Lena", "Ole"}

	d.ResizeStudentNames(2)
	assert.Equal(t, []string{"Mads", "Lena"}, d.StudentNames)

	d.ResizeStudentNames(4)
	assert.Equal(t, []string{"Mads", "Lena", "", ""}, d.StudentNames)
}

func TestStudentNamesComplete(t *testing.T) {
	d := NewReservationDraft(beginnerCourse())

	d.StudentNames = []string{"Mads", "Lena"}
	assert.True(t, d.StudentNamesComplete())

	d.StudentNames = []string{"Mads", "   "}
	assert.False(t, d.StudentNamesComplete())

	d.StudentNames = []string{"Mads", ""}
	assert.False(t, d.StudentNamesComplete())
}

func TestClearSlot(t *testing.T) {
	d := NewReservationDraft(beginnerCourse())
	d.Slot = TimeSlot{StartTime: "09:00", EndTime: "11:00"}
	d.Instructor = &SlotOption{InstructorID: "i1", InstructorName: "Anna"}

	d.ClearSlot()
	assert.True(t, d.Slot.IsZero())
	assert.Nil(t, d.Instructor)
}

func TestDraftKey(t *testing.T) {
	d := NewReservationDraft(beginnerCourse())
	d.BookingDate = time.Date(2026, time.May, 11, 0, 0, 0, 0, time.UTC)
	d.PartySize = 2

	key := d.Key()
	assert.Equal(t, "c1", key.CourseID)
	assert.Equal(t, "sylt", key.Location)
	assert.Equal(t, 2, key.PartySize)
	assert.True(t, key.Equal(d.Key()))

	d.Location = "romo"
	assert.False(t, key.Equal(d.Key()))
}
