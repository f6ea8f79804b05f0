package flow

import (
	"context"
	"sync"
	"time"

	"github.com/avekla/NSK-BookingFlow/internal/domain"
	"github.com/avekla/NSK-BookingFlow/internal/integrations/availabilityservice"
	"github.com/avekla/NSK-BookingFlow/internal/integrations/bookingservice"
	"github.com/avekla/NSK-BookingFlow/internal/integrations/courseservice"
)

// nopLogger логгер-заглушка для тестов
type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// countRecorder считает вызовы записи метрик
type countRecorder struct {
	mu          sync.Mutex
	created     int
	issued      int
	discarded   int
	failed      int
	submissions map[string]int
}

func newCountRecorder() *countRecorder {
	return &countRecorder{submissions: make(map[string]int)}
}

func (r *countRecorder) RecordFlowCreated() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created++
}

func (r *countRecorder) RecordProbeIssued() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.issued++
}

func (r *countRecorder) RecordProbeDiscarded() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.discarded++
}

func (r *countRecorder) RecordProbeFailed() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed++
}

func (r *countRecorder) RecordSubmission(outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submissions[outcome]++
}

func (r *countRecorder) probesDiscarded() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.discarded
}

func (r *countRecorder) probesFailed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failed
}

func (r *countRecorder) submissionCount(outcome string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.submissions[outcome]
}

// stubClock фиксированное время для тестов
type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time {
	return c.now
}

// fakeCourseClient настраиваемый клиент CourseService
type fakeCourseClient struct {
	course *courseservice.Course
	err    error
}

func (c *fakeCourseClient) GetCourse(ctx context.Context, courseID string) (*courseservice.Course, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.course, nil
}

// fakeAvailabilityClient настраиваемый клиент AvailabilityService
type fakeAvailabilityClient struct {
	fn func(ctx context.Context, req *availabilityservice.CheckRequest) (*availabilityservice.CheckResponse, error)
}

func (c *fakeAvailabilityClient) CheckAvailability(ctx context.Context, req *availabilityservice.CheckRequest) (*availabilityservice.CheckResponse, error) {
	return c.fn(ctx, req)
}

// fakeBookingClient настраиваемый клиент BookingService
type fakeBookingClient struct {
	fn func(ctx context.Context, req *bookingservice.CreateRequest) (*bookingservice.Booking, error)
}

func (c *fakeBookingClient) CreateBooking(ctx context.Context, req *bookingservice.CreateRequest) (*bookingservice.Booking, error) {
	return c.fn(ctx, req)
}

// testNow фиксированное "сейчас" для всех тестов флоу
var testNow = time.Date(2026, time.May, 10, 9, 0, 0, 0, time.UTC)

// testCourse курс-фикстура: кайтсерфинг для начинающих на двух локациях
func testCourse() *domain.CourseDescriptor {
	return &domain.CourseDescriptor{
		ID:                 "c1",
		Name:               "Beginner Kitesurfing",
		Description:        "Three day beginner course",
		DurationHours:      4,
		MaxPartySize:       4,
		BasePrice:          80,
		SkillLevelRequired: "none",
		Locations:          []string{"sylt", "romo"},
		EquipmentIncluded:  []string{"kite", "board", "wetsuit"},
	}
}

// defaultSlots стандартный ответ сервиса доступности
func defaultSlots() *availabilityservice.CheckResponse {
	return &availabilityservice.CheckResponse{
		Available: true,
		AvailableSlots: []availabilityservice.SlotOption{
			{
				InstructorID:   "i1",
				InstructorName: "Anna",
				TimeSlot:       availabilityservice.TimeSlot{StartTime: "09:00", EndTime: "11:00"},
				Available:      true,
			},
			{
				InstructorID:   "i2",
				InstructorName: "Jonas",
				TimeSlot:       availabilityservice.TimeSlot{StartTime: "13:00", EndTime: "15:00"},
				Available:      true,
			},
		},
	}
}

// newTestFlow собирает флоу с фейковыми зависимостями
func newTestFlow(avail AvailabilityServiceClient, booking BookingServiceClient, rec Recorder) *Flow {
	if avail == nil {
		avail = &fakeAvailabilityClient{
			fn: func(ctx context.Context, req *availabilityservice.CheckRequest) (*availabilityservice.CheckResponse, error) {
				return defaultSlots(), nil
			},
		}
	}
	if booking == nil {
		booking = &fakeBookingClient{
			fn: func(ctx context.Context, req *bookingservice.CreateRequest) (*bookingservice.Booking, error) {
				return &bookingservice.Booking{ID: "b-42", Status: "pending"}, nil
			},
		}
	}
	if rec == nil {
		rec = newCountRecorder()
	}

	return newFlow("flow-1", testCourse(), deps{
		availability: avail,
		booking:      booking,
		timeProvider: &stubClock{now: testNow},
		logger:       nopLogger{},
		recorder:     rec,
		probeTimeout: time.Second,
	})
}
