package availabilityservice

// CheckRequest запрос проверки доступности слотов
type CheckRequest struct {
	CourseID         string `json:"course_id"`
	BookingDate      string `json:"booking_date"` // YYYY-MM-DD
	Spot             string `json:"spot"`
	NumberOfStudents int    `json:"number_of_students"`
}

// TimeSlot временной слот в ответе сервиса
type TimeSlot struct {
	StartTime string `json:"start_time"` // HH:MM
	EndTime   string `json:"end_time"`   // HH:MM
}

// SlotOption один доступный слот с назначенным инструктором
type SlotOption struct {
	InstructorID   string   `json:"instructor_id"`
	InstructorName string   `json:"instructor_name"`
	TimeSlot       TimeSlot `json:"time_slot"`
	Available      bool     `json:"available"`
}

// CheckResponse ответ сервиса доступности
type CheckResponse struct {
	Available      bool         `json:"available"`
	AvailableSlots []SlotOption `json:"available_slots"`
}
