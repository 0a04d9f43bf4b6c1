package location

import (
	"sync"
)

// MemoryConfig configures a Memory source.
type MemoryConfig struct {
	// Path is the initial entry, "path[?search]". Defaults to "/".
	Path string `yaml:"path" json:"path"`
	// Record keeps every entry for History instead of only the current one.
	Record bool `yaml:"record" json:"record"`
	// Static ignores navigation, e.g. while rendering on a server.
	Static bool `yaml:"static" json:"static"`
}

type MemoryOption func(*MemoryConfig)

func WithPath(path string) MemoryOption {
	return func(c *MemoryConfig) {
		c.Path = path
	}
}

func WithRecord() MemoryOption {
	return func(c *MemoryConfig) {
		c.Record = true
	}
}

func WithStatic() MemoryOption {
	return func(c *MemoryConfig) {
		c.Static = true
	}
}

// Memory is a Source backed by an owned list of entries. The last
// entry is the current location.
type Memory struct {
	mu      sync.RWMutex
	initial string
	entries []string
	record  bool
	static  bool

	subs subscribers
}

func NewMemory(opts ...MemoryOption) *Memory {
	config := MemoryConfig{}
	for _, opt := range opts {
		opt(&config)
	}
	return newMemory(config)
}

func newMemory(config MemoryConfig) *Memory {
	initial := rooted(config.Path)
	return &Memory{
		initial: initial,
		entries: []string{initial},
		record:  config.Record,
		static:  config.Static,
	}
}

func (m *Memory) entry() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries[len(m.entries)-1]
}

func (m *Memory) Current() string {
	path, _ := splitSearch(m.entry())
	return path
}

func (m *Memory) Search() string {
	_, search := splitSearch(m.entry())
	return search
}

func (m *Memory) Subscribe(fn Listener) func() {
	_, unsubscribe := m.subs.subscribe(fn)
	return unsubscribe
}

// Navigate appends to, or overwrites the last entry with Replace, and
// notifies subscribers before returning. Static sources ignore it.
func (m *Memory) Navigate(to string, opts ...NavigateOption) {
	if m.static {
		return
	}

	o := navigateOptions(opts...)
	to = rooted(to)

	m.mu.Lock()
	switch {
	case !m.record:
		m.entries = []string{to}
	case o.Replace:
		m.entries[len(m.entries)-1] = to
	default:
		m.entries = append(m.entries, to)
	}
	m.mu.Unlock()

	m.subs.notify()
}

// History returns a copy of the recorded entries. It is nil unless the
// source records.
func (m *Memory) History() []string {
	if !m.record {
		return nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, len(m.entries))
	copy(out, m.entries)
	return out
}

// Back drops the last recorded entry. It reports false when nothing
// could be dropped.
func (m *Memory) Back() bool {
	m.mu.Lock()
	if !m.record || len(m.entries) < 2 {
		m.mu.Unlock()
		return false
	}
	m.entries = m.entries[:len(m.entries)-1]
	m.mu.Unlock()

	m.subs.notify()
	return true
}

// Reset restores the initial entry and notifies subscribers.
func (m *Memory) Reset() {
	m.mu.Lock()
	m.entries = []string{m.initial}
	m.mu.Unlock()

	m.subs.notify()
}
