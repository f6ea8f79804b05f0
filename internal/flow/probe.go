package flow

import (
	"context"

	"github.com/avekla/NSK-BookingFlow/internal/domain"
	"github.com/avekla/NSK-BookingFlow/internal/integrations/availabilityservice"
	"github.com/avekla/NSK-BookingFlow/pkg/types"
)

// scheduleProbeLocked планирует пробу доступности для текущего ключа драфта
// Вызывается из мутаторов после успешного изменения даты, локации или
// размера группы; проба запускается, только когда дата и локация заданы.
//
// Пробы не сериализуются между собой: подавление устаревших ответов
// выполняется по ключу (дата, локация, размер группы), зафиксированному в
// момент запуска, — применяется только результат, чей ключ совпадает с
// ключом драфта в момент прихода ответа. Явной отмены запросов нет.
func (f *Flow) scheduleProbeLocked() {
	if !f.draft.HasSchedule() {
		return
	}

	key := f.draft.Key()
	f.probeSeq++
	f.activeProbes++
	f.deps.recorder.RecordProbeIssued()
	f.deps.logger.Info("Flow %s: probe #%d issued for date=%s, location=%s, party=%d",
		f.id, f.probeSeq, key.Date.Format(domain.DateFormat), key.Location, key.PartySize)

	go f.runProbe(key, f.probeSeq)
}

// runProbe выполняет одну пробу доступности и применяет результат,
// если ключ пробы все еще совпадает с текущим ключом драфта
func (f *Flow) runProbe(key domain.AvailabilityKey, seq uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), f.deps.probeTimeout)
	defer cancel()

	req := &availabilityservice.CheckRequest{
		CourseID:         key.CourseID,
		BookingDate:      key.Date.Format(domain.DateFormat),
		Spot:             key.Location,
		NumberOfStudents: key.PartySize,
	}

	resp, err := f.deps.availability.CheckAvailability(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.activeProbes--

	// Подавление устаревших ответов: драфт уже изменился, результат
	// (и в том числе ошибка) относится к неактуальному ключу
	if !key.Equal(f.draft.Key()) {
		f.deps.recorder.RecordProbeDiscarded()
		f.deps.logger.Info("Flow %s: probe #%d result discarded as stale", f.id, seq)
		return
	}

	if err != nil {
		f.probeFailed = true
		f.wizard.LastError = msgAvailabilityFailed
		f.deps.recorder.RecordProbeFailed()
		f.deps.logger.Error("Flow %s: probe #%d failed: %v", f.id, seq, err)
		return
	}

	f.availability = toDomainAvailability(resp)
	f.availKey = key
	f.hasAvail = true
	f.probeFailed = false
	if f.wizard.LastError == msgAvailabilityFailed {
		f.wizard.ClearError()
	}

	f.deps.logger.Info("Flow %s: probe #%d applied, available=%v, options=%d",
		f.id, seq, f.availability.Available, len(f.availability.Options))
}

// toDomainAvailability конвертирует ответ AvailabilityService в домен
// Слоты с available=false сервис не присылает, но на всякий случай фильтруем
func toDomainAvailability(resp *availabilityservice.CheckResponse) *domain.AvailabilityResult {
	result := &domain.AvailabilityResult{
		Available: resp.Available,
		Options:   make([]domain.SlotOption, 0, len(resp.AvailableSlots)),
	}

	for _, s := range resp.AvailableSlots {
		if !s.Available {
			continue
		}
		result.Options = append(result.Options, domain.SlotOption{
			Slot: domain.TimeSlot{
				StartTime: types.TimeString(s.TimeSlot.StartTime),
				EndTime:   types.TimeString(s.TimeSlot.EndTime),
			},
			InstructorID:   s.InstructorID,
			InstructorName: s.InstructorName,
		})
	}

	if len(result.Options) == 0 {
		result.Available = false
	}
	return result
}
