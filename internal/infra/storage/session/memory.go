package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-HospitalBookingService/internal/domain"
)

// MemoryRepository хранилище сессий в памяти процесса с TTL
type MemoryRepository struct {
	mu       sync.Mutex
	sessions map[string]entry
	ttl      time.Duration
	now      func() time.Time
}

type entry struct {
	rec     record
	savedAt time.Time
}

// NewMemoryRepository создает хранилище; ttl <= 0 означает 30 минут
func NewMemoryRepository(ttl time.Duration) *MemoryRepository {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &MemoryRepository{
		sessions: make(map[string]entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Save сохраняет (перезаписывает) сессию
func (r *MemoryRepository) Save(_ context.Context, s *domain.CalendarSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[s.ID] = entry{rec: toRecord(s), savedAt: r.now()}
	r.evictExpiredLocked()
	return nil
}

// Get возвращает сессию по ID и продлевает ее TTL
func (r *MemoryRepository) Get(_ context.Context, id string) (*domain.CalendarSession, error) {
	r.mu.Lock()
	e, ok := r.sessions[id]
	if !ok || r.expired(e) {
		r.mu.Unlock()
		return nil, fmt.Errorf("%w: id=%s", ErrSessionNotFound, id)
	}
	e.savedAt = r.now()
	r.sessions[id] = e
	r.mu.Unlock()

	return e.rec.toDomain()
}

func (r *MemoryRepository) expired(e entry) bool {
	return r.now().Sub(e.savedAt) > r.ttl
}

func (r *MemoryRepository) evictExpiredLocked() {
	for id, e := range r.sessions {
		if r.expired(e) {
			delete(r.sessions, id)
		}
	}
}
