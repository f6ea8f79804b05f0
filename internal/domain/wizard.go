package domain

// Step is one state of the linear booking wizard
type Step int

const (
	StepDateLocation Step = iota + 1
	StepTimeSlot
	StepStudentDetails
	StepReview
)

// String returns the step name used in API responses and logs
func (s Step) String() string {
	switch s {
	case StepDateLocation:
		return "date_location"
	case StepTimeSlot:
		return "time_slot"
	case StepStudentDetails:
		return "student_details"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

// WizardState current step of the flow plus the last surfaced error.
// Backward navigation is always allowed and never discards data.
type WizardState struct {
	Step      Step
	LastError string
}

// ClearError drops the last surfaced error message
func (w *WizardState) ClearError() {
	w.LastError = ""
}
