package flow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avekla/NSK-BookingFlow/internal/domain"
	"github.com/avekla/NSK-BookingFlow/internal/integrations/courseservice"
)

// Manager создает флоу-инстансы и выдает их по идентификатору
type Manager struct {
	store        FlowStore
	courseClient CourseServiceClient
	availability AvailabilityServiceClient
	booking      BookingServiceClient
	probeTimeout time.Duration
	timeProvider TimeProvider
	logger       Logger
	recorder     Recorder
}

// NewManager создает новый экземпляр менеджера флоу
func NewManager(
	store FlowStore,
	courseClient CourseServiceClient,
	availability AvailabilityServiceClient,
	booking BookingServiceClient,
	probeTimeout time.Duration,
	logger Logger,
	recorder Recorder,
) *Manager {
	return &Manager{
		store:        store,
		courseClient: courseClient,
		availability: availability,
		booking:      booking,
		probeTimeout: probeTimeout,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		recorder:     recorder,
	}
}

// Create загружает курс и создает новый флоу-инстанс
// Драфт заполняется дефолтами: первая локация курса, группа из одного
// ученика с одним пустым именем. Если курс не найден, флоу не создается —
// UI показывает терминальное состояние с возвратом в каталог.
func (m *Manager) Create(ctx context.Context, courseID string) (*Flow, error) {
	m.logger.Info("Create: loading course id=%s", courseID)

	course, err := m.courseClient.GetCourse(ctx, courseID)
	if err != nil {
		if errors.Is(err, courseservice.ErrCourseNotFound) {
			m.logger.Warn("Create: course id=%s not found", courseID)
			return nil, ErrCourseNotFound
		}
		m.logger.Error("Create: failed to load course id=%s: %v", courseID, err)
		return nil, fmt.Errorf("%w: failed to load course: %v", ErrInternal, err)
	}

	if !course.IsActive {
		m.logger.Warn("Create: course id=%s is inactive", courseID)
		return nil, ErrCourseNotFound
	}

	descriptor := toDomainCourse(course)
	if len(descriptor.Locations) == 0 || descriptor.MaxPartySize < domain.MinPartySize {
		m.logger.Error("Create: course id=%s has no bookable locations or party sizes", courseID)
		return nil, ErrCourseNotBookable
	}

	f := newFlow(uuid.NewString(), descriptor, deps{
		availability: m.availability,
		booking:      m.booking,
		timeProvider: m.timeProvider,
		logger:       m.logger,
		recorder:     m.recorder,
		probeTimeout: m.probeTimeout,
	})

	m.store.Put(f)
	m.recorder.RecordFlowCreated()
	m.logger.Info("Create: flow %s created for course id=%s (%s)", f.ID(), courseID, descriptor.Name)
	return f, nil
}

// Get возвращает флоу по идентификатору
func (m *Manager) Get(id string) (*Flow, error) {
	f, err := m.store.Get(id)
	if err != nil {
		m.logger.Warn("Get: flow %s not found", id)
		return nil, ErrFlowNotFound
	}
	return f, nil
}

// toDomainCourse конвертирует модель CourseService в домен
func toDomainCourse(c *courseservice.Course) *domain.CourseDescriptor {
	return &domain.CourseDescriptor{
		ID:                 c.ID,
		Name:               c.Name,
		Description:        c.Description,
		DurationHours:      c.DurationHours,
		MaxPartySize:       c.MaxStudents,
		BasePrice:          c.BasePrice,
		SkillLevelRequired: c.SkillLevelRequired,
		Locations:          c.Spots,
		EquipmentIncluded:  c.EquipmentIncluded,
	}
}
