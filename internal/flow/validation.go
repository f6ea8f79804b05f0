package flow

import (
	"fmt"
	"time"

	"github.com/avekla/NSK-BookingFlow/internal/domain"
)

// validateBookingDate проверяет, что дата строго после сегодняшнего дня
// и не дальше горизонта бронирования (включительно)
func validateBookingDate(date time.Time, now time.Time) error {
	today := dateOnly(now)

	if !date.After(today) {
		return fmt.Errorf("%w: must be after %s", ErrInvalidDate, today.Format(domain.DateFormat))
	}

	horizon := today.AddDate(0, 0, domain.BookingHorizonDays)
	if date.After(horizon) {
		return fmt.Errorf("%w: must be on or before %s", ErrInvalidDate, horizon.Format(domain.DateFormat))
	}

	return nil
}

// reviewPreconditionsLocked защитная проверка инвариантов перед отправкой
// UI не пускает на шаг подтверждения без выполненных предикатов, поэтому
// нарушение здесь — дефект вызывающей стороны, а не пользовательская ошибка
func (f *Flow) reviewPreconditionsLocked() error {
	now := f.deps.timeProvider.Now()

	if err := validateBookingDate(f.draft.BookingDate, now); err != nil {
		return fmt.Errorf("%w: %v", ErrDraftInvalid, err)
	}
	if !f.course.HasLocation(f.draft.Location) {
		return fmt.Errorf("%w: location %q", ErrDraftInvalid, f.draft.Location)
	}
	if !f.course.IsValidPartySize(f.draft.PartySize) {
		return fmt.Errorf("%w: party size %d", ErrDraftInvalid, f.draft.PartySize)
	}
	if !f.draft.HasSlot() {
		return fmt.Errorf("%w: no time slot selected", ErrDraftInvalid)
	}
	if len(f.draft.StudentNames) != f.draft.PartySize {
		return fmt.Errorf("%w: %d student names for party of %d",
			ErrDraftInvalid, len(f.draft.StudentNames), f.draft.PartySize)
	}
	if !f.draft.StudentNamesComplete() {
		return fmt.Errorf("%w: blank student name", ErrDraftInvalid)
	}

	return nil
}
