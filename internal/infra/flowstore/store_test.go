package flowstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avekla/NSK-BookingFlow/internal/flow"
	"github.com/avekla/NSK-BookingFlow/internal/integrations/availabilityservice"
	"github.com/avekla/NSK-BookingFlow/internal/integrations/bookingservice"
	"github.com/avekla/NSK-BookingFlow/internal/integrations/courseservice"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type nopRecorder struct{}

func (nopRecorder) RecordFlowCreated()              {}
func (nopRecorder) RecordProbeIssued()              {}
func (nopRecorder) RecordProbeDiscarded()           {}
func (nopRecorder) RecordProbeFailed()              {}
func (nopRecorder) RecordSubmission(outcome string) {}

type stubCourseClient struct{}

func (stubCourseClient) GetCourse(ctx context.Context, courseID string) (*courseservice.Course, error) {
	return &courseservice.Course{
		ID:          courseID,
		Name:        "Beginner Kitesurfing",
		MaxStudents: 4,
		BasePrice:   80,
		Spots:       []string{"sylt"},
		IsActive:    true,
	}, nil
}

type stubAvailabilityClient struct{}

func (stubAvailabilityClient) CheckAvailability(ctx context.Context, req *availabilityservice.CheckRequest) (*availabilityservice.CheckResponse, error) {
	return &availabilityservice.CheckResponse{}, nil
}

type stubBookingClient struct{}

func (stubBookingClient) CreateBooking(ctx context.Context, req *bookingservice.CreateRequest) (*bookingservice.Booking, error) {
	return &bookingservice.Booking{ID: "b-1"}, nil
}

// newStoredFlow создает флоу через менеджер, который кладет его в store
func newStoredFlow(t *testing.T, store *Store) *flow.Flow {
	t.Helper()

	m := flow.NewManager(store, stubCourseClient{}, stubAvailabilityClient{}, stubBookingClient{},
		time.Second, nopLogger{}, nopRecorder{})
	f, err := m.Create(context.Background(), "c1")
	require.NoError(t, err)
	return f
}

func TestStore_PutGetDelete(t *testing.T) {
	store := NewStore(30 * time.Minute)
	f := newStoredFlow(t, store)

	got, err := store.Get(f.ID())
	require.NoError(t, err)
	assert.Same(t, f, got)
	assert.Equal(t, 1, store.Len())

	store.Delete(f.ID())
	_, err = store.Get(f.ID())
	require.ErrorIs(t, err, ErrFlowNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestStore_GetUnknown(t *testing.T) {
	store := NewStore(30 * time.Minute)
	_, err := store.Get("missing")
	require.ErrorIs(t, err, ErrFlowNotFound)
}

func TestStore_EvictExpired(t *testing.T) {
	now := time.Date(2026, time.May, 10, 9, 0, 0, 0, time.UTC)
	store := NewStore(30 * time.Minute)
	store.nowFunc = func() time.Time { return now }

	stale := newStoredFlow(t, store)
	fresh := newStoredFlow(t, store)

	// Свежий флоу трогаем позже, брошенный — нет
	now = now.Add(25 * time.Minute)
	_, err := store.Get(fresh.ID())
	require.NoError(t, err)

	now = now.Add(10 * time.Minute)
	evicted := store.EvictExpired()

	assert.Equal(t, 1, evicted)
	assert.Equal(t, 1, store.Len())

	_, err = store.Get(stale.ID())
	require.ErrorIs(t, err, ErrFlowNotFound)
	_, err = store.Get(fresh.ID())
	require.NoError(t, err)
}

func TestStore_EvictExpired_NothingToEvict(t *testing.T) {
	store := NewStore(30 * time.Minute)
	newStoredFlow(t, store)

	assert.Equal(t, 0, store.EvictExpired())
	assert.Equal(t, 1, store.Len())
}
