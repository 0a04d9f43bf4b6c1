package location

import "sync"

// HookState is the subscription state of a mounted consumer.
type HookState int

const (
	HookUnsubscribed HookState = iota
	HookSubscribed
)

func (s HookState) String() string {
	switch s {
	case HookSubscribed:
		return "subscribed"
	default:
		return "unsubscribed"
	}
}

// Hook adapts source notifications to a host's invalidation mechanism,
// e.g. scheduling a re-render. Each mounted consumer owns one Hook.
type Hook struct {
	mu          sync.Mutex
	idle        *sync.Cond
	router      *Router
	invalidate  func()
	unsubscribe func()
	state       HookState
	inflight    int
	location    string
	search      string
}

// NewHook creates an unsubscribed hook. invalidate is called whenever
// the relative location or search changes while mounted.
func NewHook(r *Router, invalidate func()) *Hook {
	if r == nil {
		r = Default()
	}
	if invalidate == nil {
		invalidate = func() {}
	}
	h := &Hook{router: r, invalidate: invalidate}
	h.idle = sync.NewCond(&h.mu)
	return h
}

// Hook creates a consumer hook bound to r.
func (r *Router) Hook(invalidate func()) *Hook {
	return NewHook(r, invalidate)
}

func (h *Hook) Router() *Router {
	return h.router
}

func (h *Hook) State() HookState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Use evaluates the hook: the relative location and the navigator,
// which is the same value on every call for a given router setup.
func (h *Hook) Use() (string, *Navigator) {
	location, search := h.router.Location(), h.router.Search()

	h.mu.Lock()
	h.location, h.search = location, search
	h.mu.Unlock()

	return location, h.router.Navigator()
}

// Mount subscribes to the router's source. Calling it while subscribed
// does nothing.
func (h *Hook) Mount() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state == HookSubscribed {
		return
	}

	h.location, h.search = h.router.Location(), h.router.Search()
	h.unsubscribe = h.router.Source().Subscribe(h.onChange)
	h.state = HookSubscribed
	h.router.Logger().Debug("hook mounted at %q", h.location)
}

// Unmount unsubscribes. Once it returns the hook never invalidates
// again: an invalidate already running on another goroutine is waited
// for. Unmount must not be called from the hook's own invalidate.
func (h *Hook) Unmount() {
	h.mu.Lock()
	if h.state != HookSubscribed {
		h.mu.Unlock()
		return
	}
	unsubscribe := h.unsubscribe
	h.unsubscribe = nil
	h.state = HookUnsubscribed
	h.mu.Unlock()

	unsubscribe()

	h.mu.Lock()
	for h.inflight > 0 {
		h.idle.Wait()
	}
	h.mu.Unlock()

	h.router.Logger().Debug("hook unmounted")
}

func (h *Hook) onChange() {
	location, search := h.router.Location(), h.router.Search()

	h.mu.Lock()
	if h.state != HookSubscribed {
		h.mu.Unlock()
		return
	}
	if location == h.location && search == h.search {
		h.mu.Unlock()
		return
	}
	h.location, h.search = location, search
	h.inflight++
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		h.inflight--
		if h.inflight == 0 {
			h.idle.Broadcast()
		}
		h.mu.Unlock()
	}()

	h.invalidate()
}
