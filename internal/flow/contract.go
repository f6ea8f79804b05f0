package flow

import (
	"context"
	"time"

	"github.com/avekla/NSK-BookingFlow/internal/integrations/availabilityservice"
	"github.com/avekla/NSK-BookingFlow/internal/integrations/bookingservice"
	"github.com/avekla/NSK-BookingFlow/internal/integrations/courseservice"
)

// CourseServiceClient интерфейс клиента для CourseService
type CourseServiceClient interface {
	GetCourse(ctx context.Context, courseID string) (*courseservice.Course, error)
}

// AvailabilityServiceClient интерфейс клиента для AvailabilityService
type AvailabilityServiceClient interface {
	CheckAvailability(ctx context.Context, req *availabilityservice.CheckRequest) (*availabilityservice.CheckResponse, error)
}

// BookingServiceClient интерфейс клиента для BookingService
type BookingServiceClient interface {
	CreateBooking(ctx context.Context, req *bookingservice.CreateRequest) (*bookingservice.Booking, error)
}

// FlowStore интерфейс хранилища активных флоу
type FlowStore interface {
	Put(f *Flow)
	Get(id string) (*Flow, error)
	Delete(id string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Recorder интерфейс для записи метрик флоу
// Реализуется pkg/metrics; все методы безопасны при nil-получателе
type Recorder interface {
	RecordFlowCreated()
	RecordProbeIssued()
	RecordProbeDiscarded()
	RecordProbeFailed()
	RecordSubmission(outcome string)
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
