package flowview

import (
	"github.com/avekla/NSK-BookingFlow/internal/domain"
	"github.com/avekla/NSK-BookingFlow/internal/flow"
)

// CourseView HTTP-представление курса
type CourseView struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	DurationHours      float64  `json:"durationHours"`
	MaxPartySize       int      `json:"maxPartySize"`
	BasePrice          float64  `json:"basePrice"`
	SkillLevelRequired string   `json:"skillLevelRequired"`
	Locations          []string `json:"locations"`
	EquipmentIncluded  []string `json:"equipmentIncluded"`
}

// SlotView HTTP-представление временного слота
type SlotView struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// OptionView HTTP-представление доступного слота с инструктором
type OptionView struct {
	TimeSlot       SlotView `json:"timeSlot"`
	InstructorName string   `json:"instructorName"`
}

// AvailabilityView HTTP-представление результата проверки доступности
type AvailabilityView struct {
	Available bool         `json:"available"`
	Slots     []OptionView `json:"availableSlots"`
}

// QuoteView HTTP-представление расчета стоимости
type QuoteView struct {
	BasePrice float64 `json:"basePrice"`
	PartySize int     `json:"partySize"`
	Total     float64 `json:"total"`
	Deposit   float64 `json:"deposit"`
}

// FlowResponse HTTP-представление снапшота флоу
// Возвращается каждой операцией флоу
type FlowResponse struct {
	FlowID    string `json:"flowId"`
	Step      string `json:"step"`
	Completed bool   `json:"completed"`
	BookingID string `json:"bookingId,omitempty"`

	Course CourseView `json:"course"`

	BookingDate    string    `json:"bookingDate,omitempty"` // YYYY-MM-DD
	Location       string    `json:"location"`
	PartySize      int       `json:"partySize"`
	TimeSlot       *SlotView `json:"timeSlot,omitempty"`
	InstructorName string    `json:"instructorName,omitempty"`
	StudentNames   []string  `json:"studentNames"`
	Notes          string    `json:"notes,omitempty"`

	Availability *AvailabilityView `json:"availability,omitempty"`
	Probing      bool              `json:"probing"`
	ProbeFailed  bool              `json:"probeFailed"`

	Submitting bool `json:"submitting"`

	Quote QuoteView `json:"quote"`

	LastError string `json:"lastError,omitempty"`
}

// FromSnapshot конвертирует снапшот флоу в HTTP-ответ
func FromSnapshot(s flow.Snapshot) *FlowResponse {
	resp := &FlowResponse{
		FlowID:    s.FlowID,
		Step:      s.Step.String(),
		Completed: s.Completed,
		BookingID: s.BookingID,
		Course: CourseView{
			ID:                 s.Course.ID,
			Name:               s.Course.Name,
			Description:        s.Course.Description,
			DurationHours:      s.Course.DurationHours,
			MaxPartySize:       s.Course.MaxPartySize,
			BasePrice:          s.Course.BasePrice,
			SkillLevelRequired: s.Course.SkillLevelRequired,
			Locations:          s.Course.Locations,
			EquipmentIncluded:  s.Course.EquipmentIncluded,
		},
		Location:     s.Location,
		PartySize:    s.PartySize,
		StudentNames: s.StudentNames,
		Notes:        s.Notes,
		Probing:      s.Probing,
		ProbeFailed:  s.ProbeFailed,
		Submitting:   s.Submitting,
		Quote: QuoteView{
			BasePrice: s.Quote.BasePrice,
			PartySize: s.Quote.PartySize,
			Total:     s.Quote.Total,
			Deposit:   s.Quote.Deposit,
		},
		LastError: s.LastError,
	}

	if !s.BookingDate.IsZero() {
		resp.BookingDate = s.BookingDate.Format(domain.DateFormat)
	}

	if !s.Slot.IsZero() {
		resp.TimeSlot = &SlotView{
			StartTime: s.Slot.StartTime.String(),
			EndTime:   s.Slot.EndTime.String(),
		}
	}

	if s.Instructor != nil {
		resp.InstructorName = s.Instructor.InstructorName
	}

	if s.Availability != nil {
		avail := &AvailabilityView{
			Available: s.Availability.Available,
			Slots:     make([]OptionView, 0, len(s.Availability.Options)),
		}
		for _, opt := range s.Availability.Options {
			avail.Slots = append(avail.Slots, OptionView{
				TimeSlot: SlotView{
					StartTime: opt.Slot.StartTime.String(),
					EndTime:   opt.Slot.EndTime.String(),
				},
				InstructorName: opt.InstructorName,
			})
		}
		resp.Availability = avail
	}

	return resp
}
