package select_slot

import (
	"github.com/avekla/NSK-BookingFlow/internal/domain"
	"github.com/avekla/NSK-BookingFlow/pkg/types"
)

// SelectSlotRequest HTTP request model
type SelectSlotRequest struct {
	StartTime string `json:"startTime"` // HH:MM
	EndTime   string `json:"endTime"`   // HH:MM
}

// ToTimeSlot конвертирует запрос в доменный слот (с валидацией формата)
func (r *SelectSlotRequest) ToTimeSlot() (domain.TimeSlot, error) {
	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return domain.TimeSlot{}, err
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return domain.TimeSlot{}, err
	}
	return domain.TimeSlot{StartTime: start, EndTime: end}, nil
}
