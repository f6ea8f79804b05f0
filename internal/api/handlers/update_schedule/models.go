package update_schedule

// UpdateScheduleRequest HTTP request model
// Каждое поле опционально; указанные применяются по отдельности
// в порядке: дата, локация, размер группы
type UpdateScheduleRequest struct {
	BookingDate *string `json:"bookingDate,omitempty"` // YYYY-MM-DD
	Location    *string `json:"location,omitempty"`
	PartySize   *int    `json:"partySize,omitempty"`
}

// IsEmpty возвращает true, если не указано ни одно поле
func (r *UpdateScheduleRequest) IsEmpty() bool {
	return r.BookingDate == nil && r.Location == nil && r.PartySize == nil
}
