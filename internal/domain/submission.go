package domain

import "time"

// BookingSubmission is the frozen payload sent to the booking service.
// Built exactly once per confirm action from a draft that passed every
// step predicate; never mutated after creation.
type BookingSubmission struct {
	CourseID      string
	BookingDate   time.Time
	Location      string
	Slot          TimeSlot
	InstructorID  string
	PartySize     int
	StudentNames  []string
	Notes         string
	TotalPrice    float64
	DepositAmount float64
}

// NewBookingSubmission freezes the draft into an immutable submission.
// Student names are copied so later draft edits cannot leak in.
func NewBookingSubmission(course *CourseDescriptor, draft *ReservationDraft) *BookingSubmission {
	names := make([]string, len(draft.StudentNames))
	copy(names, draft.StudentNames)

	quote := CalculateQuote(course.BasePrice, draft.PartySize)

	sub := &BookingSubmission{
		CourseID:      draft.CourseID,
		BookingDate:   draft.BookingDate,
		Location:      draft.Location,
		Slot:          draft.Slot,
		PartySize:     draft.PartySize,
		StudentNames:  names,
		Notes:         draft.Notes,
		TotalPrice:    quote.Total,
		DepositAmount: quote.Deposit,
	}
	if draft.Instructor != nil {
		sub.InstructorID = draft.Instructor.InstructorID
	}
	return sub
}
