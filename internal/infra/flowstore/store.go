package flowstore

import (
	"sync"
	"time"

	"github.com/avekla/NSK-BookingFlow/internal/flow"
)

// Store in-memory хранилище активных флоу-инстансов
// Состояние флоу по спецификации не персистентно: живет только в памяти
// процесса и умирает вместе с сессией. Брошенные флоу вытесняются по TTL.
type Store struct {
	mu      sync.RWMutex
	flows   map[string]*entry
	ttl     time.Duration
	nowFunc func() time.Time
}

type entry struct {
	flow       *flow.Flow
	lastAccess time.Time
}

// NewStore создает хранилище с указанным TTL для брошенных флоу
func NewStore(ttl time.Duration) *Store {
	return &Store{
		flows:   make(map[string]*entry),
		ttl:     ttl,
		nowFunc: time.Now,
	}
}

// Put сохраняет флоу под его идентификатором
func (s *Store) Put(f *flow.Flow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flows[f.ID()] = &entry{flow: f, lastAccess: s.nowFunc()}
}

// Get возвращает флоу по идентификатору и обновляет время последнего доступа
func (s *Store) Get(id string) (*flow.Flow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.flows[id]
	if !ok {
		return nil, ErrFlowNotFound
	}
	e.lastAccess = s.nowFunc()
	return e.flow, nil
}

// Delete удаляет флоу из хранилища
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.flows, id)
}

// Len возвращает количество активных флоу
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.flows)
}

// EvictExpired удаляет флоу, к которым не обращались дольше TTL
// Возвращает число вытесненных флоу
func (s *Store) EvictExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	deadline := s.nowFunc().Add(-s.ttl)
	evicted := 0
	for id, e := range s.flows {
		if e.lastAccess.Before(deadline) {
			delete(s.flows, id)
			evicted++
		}
	}
	return evicted
}

// StartEviction запускает периодическое вытеснение брошенных флоу
// Останавливается закрытием stopCh; onEvict вызывается для каждого цикла
// с числом вытесненных флоу (может быть nil)
func (s *Store) StartEviction(interval time.Duration, stopCh <-chan struct{}, onEvict func(int)) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				n := s.EvictExpired()
				if n > 0 && onEvict != nil {
					onEvict(n)
				}
			case <-stopCh:
				return
			}
		}
	}()
}
