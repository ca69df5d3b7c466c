package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/itchan-dev/threadboard/shared/domain"
	"github.com/itchan-dev/threadboard/shared/logger"
)

type session struct {
	store    *ThreadStore
	lastSeen time.Time
}

// Sessions maps a browser session id to its own ThreadStore.
// Stores are never shared between sessions.
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]*session
	seed     []domain.Thread
	ttl      time.Duration
	limit    int // 0 means unbounded
	now      func() time.Time
}

// NewSessions creates a registry whose stores start with a copy of seed.
// Sessions idle for longer than ttl are dropped by Sweep. When limit is
// positive, Create evicts the least recently seen session to stay within it.
func NewSessions(seed []domain.Thread, ttl time.Duration, limit int, now func() time.Time) *Sessions {
	if now == nil {
		now = time.Now
	}
	return &Sessions{
		sessions: make(map[string]*session),
		seed:     append([]domain.Thread(nil), seed...),
		ttl:      ttl,
		limit:    limit,
		now:      now,
	}
}

// Create starts a new session with a freshly seeded store.
func (s *Sessions) Create() (string, *ThreadStore) {
	id := uuid.NewString()
	store := NewThreadStore(s.now, s.seed...)

	s.mu.Lock()
	if s.limit > 0 && len(s.sessions) >= s.limit {
		s.evictOldestLocked()
	}
	s.sessions[id] = &session{store: store, lastSeen: s.now()}
	n := len(s.sessions)
	s.mu.Unlock()

	activeSessions.Set(float64(n))
	return id, store
}

// Preview returns a seeded store that belongs to no session.
// Writes to it are lost; it serves reads from clients without a session.
func (s *Sessions) Preview() *ThreadStore {
	return NewThreadStore(s.now, s.seed...)
}

func (s *Sessions) evictOldestLocked() {
	var (
		oldestId string
		oldest   time.Time
	)
	for id, sess := range s.sessions {
		if oldestId == "" || sess.lastSeen.Before(oldest) {
			oldestId, oldest = id, sess.lastSeen
		}
	}
	if oldestId != "" {
		delete(s.sessions, oldestId)
		evictedSessions.Inc()
		logger.Log.Debug("evicted session at capacity", "limit", s.limit)
	}
}

// Get returns the store of a live session and marks it as seen.
func (s *Sessions) Get(id string) (*ThreadStore, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	sess.lastSeen = s.now()
	return sess.store, true
}

// Sweep drops sessions idle for longer than the ttl and returns how many were removed.
func (s *Sessions) Sweep() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	removed := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	n := len(s.sessions)
	s.mu.Unlock()

	activeSessions.Set(float64(n))
	return removed
}

// Len reports the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// StartBackgroundSweep runs Sweep every interval until ctx is cancelled.
func (s *Sessions) StartBackgroundSweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	logger.Log.Info("started session sweeper", "interval", interval, "ttl", s.ttl)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if removed := s.Sweep(); removed > 0 {
					logger.Log.Debug("swept idle sessions", "removed", removed, "active", s.Len())
				}
			case <-ctx.Done():
				logger.Log.Info("stopping session sweeper")
				return
			}
		}
	}()
}
