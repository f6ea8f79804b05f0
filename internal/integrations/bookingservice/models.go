package bookingservice

// TimeSlot временной слот бронирования
type TimeSlot struct {
	StartTime string `json:"start_time"` // HH:MM
	EndTime   string `json:"end_time"`   // HH:MM
}

// CreateRequest запрос на создание бронирования
type CreateRequest struct {
	CourseID         string   `json:"course_id"`
	BookingDate      string   `json:"booking_date"` // YYYY-MM-DD
	TimeSlot         TimeSlot `json:"time_slot"`
	Spot             string   `json:"spot"`
	InstructorID     string   `json:"instructor_id,omitempty"`
	NumberOfStudents int      `json:"number_of_students"`
	StudentNames     []string `json:"student_names"`
	Notes            string   `json:"notes,omitempty"`
	TotalPrice       float64  `json:"total_price"`
	DepositAmount    float64  `json:"deposit_amount"`
}

// Booking созданное бронирование
type Booking struct {
	ID            string   `json:"id"`
	CourseID      string   `json:"course_id"`
	BookingDate   string   `json:"booking_date"`
	TimeSlot      TimeSlot `json:"time_slot"`
	Spot          string   `json:"spot"`
	Status        string   `json:"status"`
	TotalPrice    float64  `json:"total_price"`
	DepositAmount float64  `json:"deposit_amount"`
}

// ErrorResponse модель ошибки от BookingService
type ErrorResponse struct {
	Detail string `json:"detail"`
}
