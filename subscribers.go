package location

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

type subscription struct {
	id     string
	fn     Listener
	active atomic.Bool
}

// subscribers is a copy-on-write listener set. notify iterates over a
// snapshot, so listeners may subscribe or unsubscribe (themselves or
// others) while being notified. A listener removed mid-notification is
// skipped, never invoked twice.
type subscribers struct {
	mu   sync.RWMutex
	subs []*subscription
}

func (s *subscribers) subscribe(fn Listener) (string, func()) {
	sub := &subscription{id: uuid.NewString(), fn: fn}
	sub.active.Store(true)

	s.mu.Lock()
	next := make([]*subscription, len(s.subs), len(s.subs)+1)
	copy(next, s.subs)
	s.subs = append(next, sub)
	s.mu.Unlock()

	return sub.id, func() {
		if !sub.active.CompareAndSwap(true, false) {
			return
		}
		s.remove(sub)
	}
}

func (s *subscribers) remove(sub *subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]*subscription, 0, len(s.subs))
	for _, cur := range s.subs {
		if cur != sub {
			next = append(next, cur)
		}
	}
	s.subs = next
}

func (s *subscribers) notify() {
	s.mu.RLock()
	snapshot := s.subs
	s.mu.RUnlock()

	for _, sub := range snapshot {
		if sub.active.Load() {
			sub.fn()
		}
	}
}

func (s *subscribers) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}
