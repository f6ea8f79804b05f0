package flow

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avekla/NSK-BookingFlow/internal/domain"
	"github.com/avekla/NSK-BookingFlow/internal/integrations/bookingservice"
)

// flowAtReviewWith проводит флоу до шага подтверждения с заданным
// клиентом BookingService
func flowAtReviewWith(t *testing.T, booking BookingServiceClient, rec Recorder) *Flow {
	t.Helper()

	f := newTestFlow(nil, booking, rec)
	require.NoError(t, f.SetDate(testNow.AddDate(0, 0, 1)))
	require.NoError(t, f.SetPartySize(2))
	waitForAvailability(t, f)
	require.NoError(t, f.Advance())
	require.NoError(t, f.SelectSlot(domain.TimeSlot{StartTime: "09:00", EndTime: "11:00"}))
	require.NoError(t, f.SetStudentName(0, "Mads"))
	require.NoError(t, f.SetStudentName(1, "Lena"))
	require.NoError(t, f.Advance())
	return f
}

func TestSubmit_Success(t *testing.T) {
	var captured *bookingservice.CreateRequest
	booking := &fakeBookingClient{
		fn: func(ctx context.Context, req *bookingservice.CreateRequest) (*bookingservice.Booking, error) {
			captured = req
			return &bookingservice.Booking{ID: "b-42", Status: "pending"}, nil
		},
	}
	rec := newCountRecorder()
	f := flowAtReviewWith(t, booking, rec)

	bookingID, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "b-42", bookingID)

	// Замороженный драфт ушел в запрос целиком, с пересчитанной ценой
	require.NotNil(t, captured)
	assert.Equal(t, "c1", captured.CourseID)
	assert.Equal(t, "2026-05-11", captured.BookingDate)
	assert.Equal(t, "09:00", captured.TimeSlot.StartTime)
	assert.Equal(t, "11:00", captured.TimeSlot.EndTime)
	assert.Equal(t, "sylt", captured.Spot)
	assert.Equal(t, "i1", captured.InstructorID)
	assert.Equal(t, []string{"Mads", "Lena"}, captured.StudentNames)
	assert.Equal(t, 160.0, captured.TotalPrice)
	assert.Equal(t, 48.0, captured.DepositAmount)

	snap := f.Snapshot()
	assert.True(t, snap.Completed)
	assert.Equal(t, "b-42", snap.BookingID)
	assert.Equal(t, 1, rec.submissionCount("created"))

	// Завершенный флоу больше не изменяется и не отправляется повторно
	require.ErrorIs(t, f.SetDate(testNow.AddDate(0, 0, 2)), ErrFlowCompleted)
	_, err = f.Submit(context.Background())
	require.ErrorIs(t, err, ErrFlowCompleted)
}

func TestSubmit_RejectionKeepsDraft(t *testing.T) {
	attempts := 0
	booking := &fakeBookingClient{
		fn: func(ctx context.Context, req *bookingservice.CreateRequest) (*bookingservice.Booking, error) {
			attempts++
			if attempts == 1 {
				return nil, fmt.Errorf("%w: %s", bookingservice.ErrBookingRejected, "Instructor is no longer available for this slot")
			}
			return &bookingservice.Booking{ID: "b-43", Status: "pending"}, nil
		},
	}
	rec := newCountRecorder()
	f := flowAtReviewWith(t, booking, rec)

	_, err := f.Submit(context.Background())
	require.ErrorIs(t, err, ErrSubmissionRejected)

	// Драфт не тронут, detail показывается как есть, повторная отправка возможна
	snap := f.Snapshot()
	assert.False(t, snap.Completed)
	assert.Equal(t, domain.StepReview, snap.Step)
	assert.False(t, snap.Slot.IsZero())
	assert.Equal(t, "Instructor is no longer available for this slot", snap.LastError)
	assert.Equal(t, 1, rec.submissionCount("rejected"))

	bookingID, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "b-43", bookingID)
}

func TestSubmit_TransportFailure(t *testing.T) {
	booking := &fakeBookingClient{
		fn: func(ctx context.Context, req *bookingservice.CreateRequest) (*bookingservice.Booking, error) {
			return nil, fmt.Errorf("%w: connection reset", bookingservice.ErrInternal)
		},
	}
	rec := newCountRecorder()
	f := flowAtReviewWith(t, booking, rec)

	_, err := f.Submit(context.Background())
	require.ErrorIs(t, err, ErrSubmissionFailed)

	snap := f.Snapshot()
	assert.False(t, snap.Completed)
	assert.Equal(t, msgSubmissionFallback, snap.LastError)
	assert.Equal(t, 1, rec.submissionCount("failed"))
}

func TestSubmit_SecondConcurrentCallRejected(t *testing.T) {
	release := make(chan struct{})
	booking := &fakeBookingClient{
		fn: func(ctx context.Context, req *bookingservice.CreateRequest) (*bookingservice.Booking, error) {
			<-release
			return &bookingservice.Booking{ID: "b-44", Status: "pending"}, nil
		},
	}
	f := flowAtReviewWith(t, booking, nil)

	firstDone := make(chan error, 1)
	go func() {
		_, err := f.Submit(context.Background())
		firstDone <- err
	}()

	// Ждем, пока первая отправка возьмет флаг и уйдет в сетевой вызов
	require.Eventually(t, func() bool {
		return f.Snapshot().Submitting
	}, time.Second, 5*time.Millisecond)

	_, err := f.Submit(context.Background())
	require.ErrorIs(t, err, ErrSubmissionInFlight)

	close(release)
	require.NoError(t, <-firstDone)
	assert.True(t, f.Snapshot().Completed)
}

func TestSubmit_RequiresReviewStep(t *testing.T) {
	f := newTestFlow(nil, nil, nil)
	_, err := f.Submit(context.Background())
	require.ErrorIs(t, err, ErrStepNotReady)
}
