package flow

import (
	"fmt"
	"sync"
	"time"

	"github.com/avekla/NSK-BookingFlow/internal/domain"
)

// deps зависимости одного флоу-инстанса
type deps struct {
	availability AvailabilityServiceClient
	booking      BookingServiceClient
	timeProvider TimeProvider
	logger       Logger
	recorder     Recorder
	probeTimeout time.Duration
}

// Flow один проход клиента через мастер бронирования: от загрузки курса
// до отправки бронирования или отказа от него.
//
// Все состояние (драфт + состояние мастера + кэш доступности) живет за
// одним мьютексом; читатели получают только снапшоты, поэтому частично
// обновленный драфт снаружи не наблюдаем. Флоу-инстансы друг с другом
// ничего не разделяют.
type Flow struct {
	mu sync.Mutex

	id     string
	course *domain.CourseDescriptor
	draft  *domain.ReservationDraft
	wizard domain.WizardState

	// Кэш последней проверки доступности и ключ, для которого она выполнялась
	availability *domain.AvailabilityResult
	availKey     domain.AvailabilityKey
	hasAvail     bool

	// Активные пробы: считаются для флага "идет проверка" в снапшоте
	activeProbes int
	probeSeq     uint64
	probeFailed  bool

	submitting bool
	completed  bool
	bookingID  string

	deps deps
}

// newFlow создает флоу с драфтом, заполненным дефолтами курса
func newFlow(id string, course *domain.CourseDescriptor, d deps) *Flow {
	return &Flow{
		id:     id,
		course: course,
		draft:  domain.NewReservationDraft(course),
		wizard: domain.WizardState{Step: domain.StepDateLocation},
		deps:   d,
	}
}

// ID возвращает идентификатор флоу
func (f *Flow) ID() string {
	return f.id
}

// SetDate устанавливает дату бронирования
// Дата должна быть строго после сегодняшнего дня и не дальше горизонта
// бронирования (включительно). Успех сбрасывает выбранный слот и
// планирует новую пробу доступности.
func (f *Flow) SetDate(date time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.completed {
		return ErrFlowCompleted
	}

	date = dateOnly(date)
	if err := validateBookingDate(date, f.deps.timeProvider.Now()); err != nil {
		f.wizard.LastError = msgInvalidDate
		return err
	}

	f.draft.BookingDate = date
	f.invalidateSlotLocked()
	f.wizard.ClearError()
	f.deps.logger.Info("Flow %s: date set to %s", f.id, date.Format(domain.DateFormat))

	f.scheduleProbeLocked()
	return nil
}

// SetLocation устанавливает локацию бронирования
// Локация должна входить в список локаций курса. Успех сбрасывает
// выбранный слот и планирует новую пробу доступности.
func (f *Flow) SetLocation(location string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.completed {
		return ErrFlowCompleted
	}

	if !f.course.HasLocation(location) {
		f.wizard.LastError = msgInvalidLocation
		return fmt.Errorf("%w: %q", ErrInvalidLocation, location)
	}

	f.draft.Location = location
	f.invalidateSlotLocked()
	f.wizard.ClearError()
	f.deps.logger.Info("Flow %s: location set to %s", f.id, location)

	f.scheduleProbeLocked()
	return nil
}

// SetPartySize устанавливает размер группы
// Успех приводит список имен к новому размеру (существующие имена
// сохраняются по позициям, недостающие дополняются пустыми, лишние
// отбрасываются с конца) и сбрасывает выбранный слот: предложения слотов
// зависят от вместимости.
func (f *Flow) SetPartySize(n int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.completed {
		return ErrFlowCompleted
	}

	if !f.course.IsValidPartySize(n) {
		f.wizard.LastError = msgInvalidPartySize
		return fmt.Errorf("%w: %d (max %d)", ErrInvalidPartySize, n, f.course.MaxPartySize)
	}

	f.draft.PartySize = n
	f.draft.ResizeStudentNames(n)
	f.invalidateSlotLocked()
	f.wizard.ClearError()
	f.deps.logger.Info("Flow %s: party size set to %d", f.id, n)

	f.scheduleProbeLocked()
	return nil
}

// SelectSlot выбирает временной слот
// Принимается только слот из актуального результата проверки доступности
// для текущих (дата, локация, размер группы); иначе выбор отклоняется как
// устаревший. Успешный выбор сам является переходом к шагу данных учеников.
func (f *Flow) SelectSlot(slot domain.TimeSlot) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.completed {
		return ErrFlowCompleted
	}

	if f.wizard.Step != domain.StepTimeSlot {
		f.wizard.LastError = msgSlotRequired
		return fmt.Errorf("%w: slot selection is only available on the time slot step", ErrStepNotReady)
	}

	if !f.hasAvail || !f.availKey.Equal(f.draft.Key()) {
		f.wizard.LastError = msgStaleSlot
		return ErrStaleSlot
	}

	opt := f.availability.FindOption(slot)
	if opt == nil {
		f.wizard.LastError = msgStaleSlot
		return ErrStaleSlot
	}

	selected := *opt
	f.draft.Slot = slot
	f.draft.Instructor = &selected
	f.wizard.Step = domain.StepStudentDetails
	f.wizard.ClearError()
	f.deps.logger.Info("Flow %s: slot %s-%s selected (instructor %s)",
		f.id, slot.StartTime, slot.EndTime, selected.InstructorName)
	return nil
}

// SetStudentName записывает имя ученика по индексу
func (f *Flow) SetStudentName(index int, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.completed {
		return ErrFlowCompleted
	}

	if index < 0 || index >= len(f.draft.StudentNames) {
		return fmt.Errorf("%w: %d", ErrInvalidStudentIndex, index)
	}

	f.draft.StudentNames[index] = name
	f.wizard.ClearError()
	return nil
}

// SetNotes записывает заметки для инструктора
func (f *Flow) SetNotes(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.completed {
		return ErrFlowCompleted
	}

	if len(text) > domain.MaxNotesLength {
		f.wizard.LastError = msgNotesTooLong
		return fmt.Errorf("%w: %d characters (max %d)", ErrNotesTooLong, len(text), domain.MaxNotesLength)
	}

	f.draft.Notes = text
	f.wizard.ClearError()
	return nil
}

// Advance переходит к следующему шагу, если предикат текущего выполнен
// Переход со шага выбора слота возможен, только если слот уже выбран
// (обычный путь вперед — через SelectSlot)
func (f *Flow) Advance() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.completed {
		return ErrFlowCompleted
	}

	switch f.wizard.Step {
	case domain.StepDateLocation:
		if !f.draft.HasSchedule() {
			f.wizard.LastError = msgScheduleIncomplete
			return fmt.Errorf("%w: date and location are required", ErrStepNotReady)
		}
		f.wizard.Step = domain.StepTimeSlot

	case domain.StepTimeSlot:
		if !f.draft.HasSlot() {
			f.wizard.LastError = msgSlotRequired
			return fmt.Errorf("%w: a time slot must be selected", ErrStepNotReady)
		}
		f.wizard.Step = domain.StepStudentDetails

	case domain.StepStudentDetails:
		if !f.draft.StudentNamesComplete() {
			f.wizard.LastError = msgNamesIncomplete
			return fmt.Errorf("%w: every student name must be non-blank", ErrStepNotReady)
		}
		f.wizard.Step = domain.StepReview

	case domain.StepReview:
		return ErrNoNextStep
	}

	f.wizard.ClearError()
	f.deps.logger.Info("Flow %s: advanced to step %s", f.id, f.wizard.Step)
	return nil
}

// Back возвращается на предыдущий шаг
// Всегда разрешен выше первого шага и не сбрасывает собранные данные;
// кэш доступности сохраняется и показывается снова, если все еще
// соответствует текущим параметрам драфта
func (f *Flow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.completed {
		return ErrFlowCompleted
	}

	if f.wizard.Step <= domain.StepDateLocation {
		return ErrAtFirstStep
	}

	f.wizard.Step--
	f.wizard.ClearError()
	f.deps.logger.Info("Flow %s: moved back to step %s", f.id, f.wizard.Step)
	return nil
}

// invalidateSlotLocked сбрасывает выбранный слот после изменения даты,
// локации или размера группы. Если мастер ушел дальше шага выбора слота,
// возвращает его на этот шаг: оставаться на позднем шаге с
// инвалидированным слотом нельзя.
func (f *Flow) invalidateSlotLocked() {
	f.draft.ClearSlot()
	if f.wizard.Step > domain.StepTimeSlot {
		f.wizard.Step = domain.StepTimeSlot
	}
}

// dateOnly обнуляет время, оставляя только дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
