package location

import (
	"context"
	"net/url"
	"path"
	"strings"
	"sync"
)

const defaultOrigin = "http://localhost"

// WindowConfig configures a SimulatedWindow.
type WindowConfig struct {
	Logger Logger
}

type historyEntry struct {
	path   string
	search string
	hash   string
	state  any
}

// SimulatedWindow is an in-process Window for non-browser hosts and
// tests. It keeps a session history with a cursor, encodes paths and
// fragments the way browsers do, and delivers platform events
// (hashchange, popstate) from its own event loop goroutine so they
// arrive after the call that caused them, as in a browser.
type SimulatedWindow struct {
	mu      sync.RWMutex
	origin  string
	entries []historyEntry
	index   int

	listenersMu sync.Mutex
	listeners   map[Event]*subscribers

	queueMu sync.Mutex
	queue   []func()
	wake    chan struct{}

	ctx    context.Context
	cancel context.CancelFunc

	logger Logger
}

// NewSimulatedWindow creates a window showing rawURL, which may be an
// absolute URL or a path such as "/app?q=1#top". Call Close to stop
// its event loop.
func NewSimulatedWindow(rawURL string, opts ...func(*WindowConfig)) *SimulatedWindow {
	config := WindowConfig{}
	for _, opt := range opts {
		opt(&config)
	}
	if config.Logger == nil {
		config.Logger = &defaultLogger{}
	}

	origin, ref := splitOrigin(rawURL)
	ctx, cancel := context.WithCancel(context.Background())

	w := &SimulatedWindow{
		origin:    origin,
		listeners: make(map[Event]*subscribers),
		wake:      make(chan struct{}, 1),
		ctx:       ctx,
		cancel:    cancel,
		logger:    config.Logger,
	}
	w.entries = []historyEntry{resolveReference(historyEntry{path: "/"}, ref)}

	go w.run()

	return w
}

func splitOrigin(rawURL string) (string, string) {
	if !strings.Contains(rawURL, "://") {
		return defaultOrigin, rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return defaultOrigin, "/"
	}

	origin := u.Scheme + "://" + u.Host
	return origin, strings.TrimPrefix(rawURL, origin)
}

// resolveReference resolves ref against cur the way a browser resolves
// the url argument of pushState.
func resolveReference(cur historyEntry, ref string) historyEntry {
	next := historyEntry{path: cur.path, search: cur.search}

	rest, fragment, hasFragment := strings.Cut(ref, "#")
	if hasFragment {
		next.hash = Encode(fragment)
	}

	if rest == "" {
		if !hasFragment {
			next.hash = cur.hash
		}
		return next
	}

	p, query, hasQuery := strings.Cut(rest, "?")
	if p != "" {
		if !strings.HasPrefix(p, "/") {
			p = cur.path[:strings.LastIndex(cur.path, "/")+1] + p
		}
		next.path = Encode(removeDotSegments(p))
		next.search = ""
	}
	if hasQuery {
		next.search = Encode(query)
	}
	return next
}

func removeDotSegments(p string) string {
	if !strings.Contains(p, "/.") {
		return p
	}
	clean := path.Clean(p)
	if strings.HasSuffix(p, "/") && clean != "/" {
		clean += "/"
	}
	return clean
}

func (w *SimulatedWindow) current() historyEntry {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.entries[w.index]
}

func (w *SimulatedWindow) Pathname() string {
	return w.current().path
}

func (w *SimulatedWindow) Search() string {
	return w.current().search
}

func (w *SimulatedWindow) Hash() string {
	if h := w.current().hash; h != "" {
		return "#" + h
	}
	return ""
}

func (w *SimulatedWindow) State() any {
	return w.current().state
}

// Href returns the full URL of the current entry.
func (w *SimulatedWindow) Href() string {
	cur := w.current()
	href := w.origin + cur.path
	if cur.search != "" {
		href += "?" + cur.search
	}
	if cur.hash != "" {
		href += "#" + cur.hash
	}
	return href
}

// Length returns the number of session history entries.
func (w *SimulatedWindow) Length() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.entries)
}

func (w *SimulatedWindow) PushState(state any, url string) {
	w.mu.Lock()
	next := resolveReference(w.entries[w.index], url)
	next.state = state
	w.push(next)
	w.mu.Unlock()
}

func (w *SimulatedWindow) ReplaceState(state any, url string) {
	w.mu.Lock()
	next := resolveReference(w.entries[w.index], url)
	next.state = state
	w.entries[w.index] = next
	w.mu.Unlock()
}

// push must be called with mu held.
func (w *SimulatedWindow) push(entry historyEntry) {
	w.entries = append(w.entries[:w.index+1], entry)
	w.index = len(w.entries) - 1
}

func (w *SimulatedWindow) SetHash(hash string) {
	fragment := Encode(strings.TrimPrefix(hash, "#"))

	w.mu.Lock()
	cur := w.entries[w.index]
	if cur.hash == fragment {
		w.mu.Unlock()
		return
	}
	w.push(historyEntry{path: cur.path, search: cur.search, hash: fragment})
	w.mu.Unlock()

	w.enqueue(func() {
		w.DispatchEvent(EventHashChange)
	})
}

// Go moves delta entries through session history and reports whether
// the move happened. Events are delivered asynchronously.
func (w *SimulatedWindow) Go(delta int) bool {
	w.mu.Lock()
	target := w.index + delta
	if delta == 0 || target < 0 || target >= len(w.entries) {
		w.mu.Unlock()
		return false
	}
	prev := w.entries[w.index]
	w.index = target
	cur := w.entries[w.index]
	w.mu.Unlock()

	w.enqueue(func() {
		w.DispatchEvent(EventPopState)
		if prev.hash != cur.hash {
			w.DispatchEvent(EventHashChange)
		}
	})
	return true
}

func (w *SimulatedWindow) Back() bool {
	return w.Go(-1)
}

func (w *SimulatedWindow) Forward() bool {
	return w.Go(1)
}

func (w *SimulatedWindow) AddEventListener(event Event, fn Listener) func() {
	w.listenersMu.Lock()
	subs, ok := w.listeners[event]
	if !ok {
		subs = &subscribers{}
		w.listeners[event] = subs
	}
	w.listenersMu.Unlock()

	id, unsubscribe := subs.subscribe(fn)
	w.logger.Debug("window listener %s added for %s", id, event)

	return func() {
		unsubscribe()
		w.logger.Debug("window listener %s removed for %s", id, event)
	}
}

// DispatchEvent synchronously invokes the listeners of event.
func (w *SimulatedWindow) DispatchEvent(event Event) {
	w.listenersMu.Lock()
	subs := w.listeners[event]
	w.listenersMu.Unlock()

	if subs == nil {
		return
	}

	w.logger.Debug("window dispatch %s to %d listener(s): %s", event, subs.len(), w.Href())
	subs.notify()
}

// Settle blocks until every event queued before the call has been
// delivered.
func (w *SimulatedWindow) Settle(ctx context.Context) error {
	done := make(chan struct{})
	if !w.enqueue(func() { close(done) }) {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-w.ctx.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the event loop. Queued events are dropped.
func (w *SimulatedWindow) Close() {
	w.cancel()
}

func (w *SimulatedWindow) enqueue(task func()) bool {
	if w.ctx.Err() != nil {
		return false
	}

	w.queueMu.Lock()
	w.queue = append(w.queue, task)
	w.queueMu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
	return true
}

func (w *SimulatedWindow) dequeue() func() {
	w.queueMu.Lock()
	defer w.queueMu.Unlock()

	if len(w.queue) == 0 {
		return nil
	}
	task := w.queue[0]
	w.queue[0] = nil
	w.queue = w.queue[1:]
	return task
}

// run processes queued events
func (w *SimulatedWindow) run() {
	for {
		select {
		case <-w.ctx.Done():
			return
		case <-w.wake:
		}

		for task := w.dequeue(); task != nil; task = w.dequeue() {
			if w.ctx.Err() != nil {
				return
			}
			task()
		}
	}
}
