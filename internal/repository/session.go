package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kahvecikaan/zebra-store/internal/domain"
)

// SessionRepository stores browsing sessions. Sessions idle for longer than
// the repository's TTL are treated as missing.
type SessionRepository interface {
	Create(ctx context.Context) (*domain.Session, error)
	Get(ctx context.Context, id string) (*domain.Session, error)
	// Update runs fn against the stored session while holding the write
	// lock. The session is left unchanged when fn returns an error.
	Update(ctx context.Context, id string, fn func(*domain.Session) error) (*domain.Session, error)
	// Sweep drops expired sessions and returns how many were removed
	Sweep(ctx context.Context) int
}

type memorySessionRepository struct {
	sessions map[string]*domain.Session
	ttl      time.Duration
	mutex    sync.Mutex
	now      func() time.Time
}

// NewMemorySessionRepository creates an in-memory session store. A ttl of
// zero keeps sessions forever.
func NewMemorySessionRepository(ttl time.Duration) SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[string]*domain.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (r *memorySessionRepository) Create(ctx context.Context) (*domain.Session, error) {
	now := r.now()
	s := &domain.Session{
		ID:         uuid.New().String(),
		Query:      domain.DefaultQueryState(),
		Cart:       domain.NewCart(),
		CreatedAt:  now,
		LastActive: now,
	}

	r.mutex.Lock()
	r.sessions[s.ID] = s
	r.mutex.Unlock()

	return s.Clone(), nil
}

func (r *memorySessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	s, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	s.LastActive = r.now()
	return s.Clone(), nil
}

func (r *memorySessionRepository) Update(ctx context.Context, id string, fn func(*domain.Session) error) (*domain.Session, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	s, err := r.lookup(id)
	if err != nil {
		return nil, err
	}

	working := s.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	working.LastActive = r.now()
	r.sessions[id] = working
	return working.Clone(), nil
}

func (r *memorySessionRepository) Sweep(ctx context.Context) int {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	now := r.now()
	removed := 0
	for id, s := range r.sessions {
		if r.expired(s, now) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// lookup finds a live session, dropping it when it has expired. The caller
// holds the lock.
func (r *memorySessionRepository) lookup(id string) (*domain.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if r.expired(s, r.now()) {
		delete(r.sessions, id)
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

func (r *memorySessionRepository) expired(s *domain.Session, now time.Time) bool {
	return r.ttl > 0 && now.Sub(s.LastActive) > r.ttl
}
