package memory

import (
	"sync"
	"time"

	"github.com/itchan-dev/threadboard/shared/domain"
)

// ThreadStore holds one session's threads in insertion order.
// It trusts its input: callers validate before Append.
type ThreadStore struct {
	mu      sync.RWMutex
	threads []domain.Thread
	lastId  domain.ThreadId
	now     func() time.Time
}

// NewThreadStore returns a store holding seed in the given order.
// Seeds get ids 1..n; their counters and timestamps are kept as is.
func NewThreadStore(now func() time.Time, seed ...domain.Thread) *ThreadStore {
	if now == nil {
		now = time.Now
	}
	s := &ThreadStore{
		threads: make([]domain.Thread, 0, len(seed)),
		now:     now,
	}
	for _, t := range seed {
		s.lastId++
		t.Id = s.lastId
		if t.CreatedAt.IsZero() {
			t.CreatedAt = now()
		}
		s.threads = append(s.threads, t)
	}
	return s
}

// List returns a copy of the current threads, oldest first.
func (s *ThreadStore) List() []domain.Thread {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Thread, len(s.threads))
	copy(out, s.threads)
	return out
}

// Append assigns the next id, stamps the creation time and stores the thread.
func (s *ThreadStore) Append(data domain.ThreadCreationData) domain.Thread {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastId++
	thread := domain.Thread{
		Id:        s.lastId,
		Title:     data.Title,
		Content:   data.Content,
		Author:    data.Author,
		CreatedAt: s.now(),
	}
	s.threads = append(s.threads, thread)
	return thread
}

// Get looks a thread up by id.
func (s *ThreadStore) Get(id domain.ThreadId) (domain.Thread, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.threads {
		if t.Id == id {
			return t, true
		}
	}
	return domain.Thread{}, false
}

// Len reports how many threads the store holds.
func (s *ThreadStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.threads)
}
