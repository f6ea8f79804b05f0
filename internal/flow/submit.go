package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avekla/NSK-BookingFlow/internal/domain"
	"github.com/avekla/NSK-BookingFlow/internal/integrations/bookingservice"
)

// Submit замораживает драфт в BookingSubmission и выполняет ровно один
// вызов создания бронирования.
//
// Флаг submitting — единственный примитив взаимного исключения: ставится
// до сетевого вызова и снимается на каждом пути выхода, поэтому второй
// конкурентный Submit того же флоу отклоняется. При отказе сервиса драфт
// остается нетронутым, текст detail показывается на шаге подтверждения
// как есть, и отправку можно повторить.
func (f *Flow) Submit(ctx context.Context) (string, error) {
	f.mu.Lock()

	if f.completed {
		f.mu.Unlock()
		return "", ErrFlowCompleted
	}
	if f.submitting {
		f.mu.Unlock()
		return "", ErrSubmissionInFlight
	}
	if f.wizard.Step != domain.StepReview {
		f.mu.Unlock()
		return "", fmt.Errorf("%w: submission is only available on the review step", ErrStepNotReady)
	}
	if err := f.reviewPreconditionsLocked(); err != nil {
		f.mu.Unlock()
		return "", err
	}

	submission := domain.NewBookingSubmission(f.course, f.draft)
	f.submitting = true
	f.mu.Unlock()

	f.deps.logger.Info("Flow %s: submitting booking: course=%s, date=%s, slot=%s-%s, party=%d",
		f.id, submission.CourseID, submission.BookingDate.Format(domain.DateFormat),
		submission.Slot.StartTime, submission.Slot.EndTime, submission.PartySize)

	booking, err := f.deps.booking.CreateBooking(ctx, toCreateRequest(submission))

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	if err != nil {
		if errors.Is(err, bookingservice.ErrBookingRejected) {
			detail := rejectionDetail(err)
			f.wizard.LastError = detail
			f.deps.recorder.RecordSubmission("rejected")
			f.deps.logger.Warn("Flow %s: booking rejected: %s", f.id, detail)
			return "", fmt.Errorf("%w: %s", ErrSubmissionRejected, detail)
		}

		f.wizard.LastError = msgSubmissionFallback
		f.deps.recorder.RecordSubmission("failed")
		f.deps.logger.Error("Flow %s: booking submission failed: %v", f.id, err)
		return "", fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	f.completed = true
	f.bookingID = booking.ID
	f.wizard.ClearError()
	f.deps.recorder.RecordSubmission("created")
	f.deps.logger.Info("Flow %s: booking created, id=%s", f.id, booking.ID)

	// Дальше — внешний шаг оплаты по идентификатору бронирования
	return booking.ID, nil
}

// toCreateRequest конвертирует замороженный драфт в запрос BookingService
func toCreateRequest(s *domain.BookingSubmission) *bookingservice.CreateRequest {
	return &bookingservice.CreateRequest{
		CourseID:    s.CourseID,
		BookingDate: s.BookingDate.Format(domain.DateFormat),
		TimeSlot: bookingservice.TimeSlot{
			StartTime: s.Slot.StartTime.String(),
			EndTime:   s.Slot.EndTime.String(),
		},
		Spot:             s.Location,
		InstructorID:     s.InstructorID,
		NumberOfStudents: s.PartySize,
		StudentNames:     s.StudentNames,
		Notes:            s.Notes,
		TotalPrice:       s.TotalPrice,
		DepositAmount:    s.DepositAmount,
	}
}

// rejectionDetail извлекает человекочитаемый detail из обернутой ошибки клиента
func rejectionDetail(err error) string {
	msg := err.Error()
	prefix := bookingservice.ErrBookingRejected.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 && len(msg) > i+len(prefix) {
		return msg[i+len(prefix):]
	}
	return msgSubmissionFallback
}
