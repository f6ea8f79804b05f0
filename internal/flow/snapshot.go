package flow

import (
	"time"

	"github.com/avekla/NSK-BookingFlow/internal/domain"
)

// Snapshot неизменяемый срез состояния флоу для отдачи наружу
// Все срезы скопированы: дальнейшие мутации драфта снапшот не затрагивают
type Snapshot struct {
	FlowID    string
	Step      domain.Step
	Completed bool
	BookingID string

	Course domain.CourseDescriptor

	BookingDate  time.Time // нулевое значение, пока дата не выбрана
	Location     string
	PartySize    int
	Slot         domain.TimeSlot
	Instructor   *domain.SlotOption
	StudentNames []string
	Notes        string

	// Availability присутствует, только если кэшированный результат
	// соответствует текущему ключу драфта: устаревшие результаты
	// наружу не отдаются
	Availability *domain.AvailabilityResult
	Probing      bool
	ProbeFailed  bool

	Submitting bool

	// Quote пересчитывается на каждый снапшот: размер группы может
	// измениться через навигацию назад
	Quote domain.Quote

	LastError string
}

// Snapshot возвращает согласованный срез состояния флоу
func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	snap := Snapshot{
		FlowID:      f.id,
		Step:        f.wizard.Step,
		Completed:   f.completed,
		BookingID:   f.bookingID,
		Course:      *f.course,
		BookingDate: f.draft.BookingDate,
		Location:    f.draft.Location,
		PartySize:   f.draft.PartySize,
		Slot:        f.draft.Slot,
		Notes:       f.draft.Notes,
		Probing:     f.activeProbes > 0,
		ProbeFailed: f.probeFailed,
		Submitting:  f.submitting,
		Quote:       domain.CalculateQuote(f.course.BasePrice, f.draft.PartySize),
		LastError:   f.wizard.LastError,
	}

	snap.StudentNames = make([]string, len(f.draft.StudentNames))
	copy(snap.StudentNames, f.draft.StudentNames)

	if f.draft.Instructor != nil {
		instructor := *f.draft.Instructor
		snap.Instructor = &instructor
	}

	if f.hasAvail && f.availKey.Equal(f.draft.Key()) {
		avail := &domain.AvailabilityResult{
			Available: f.availability.Available,
			Options:   make([]domain.SlotOption, len(f.availability.Options)),
		}
		copy(avail.Options, f.availability.Options)
		snap.Availability = avail
	}

	return snap
}
