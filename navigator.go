package location

import (
	"reflect"
	"sync"
)

// Navigator writes relative locations through a Source. Routers hand
// out one Navigator per (source, base) pair, so hosts that compare
// references across evaluations see the same value.
type Navigator struct {
	source Source
	base   Base
	logger Logger
}

// Navigate prefixes to with the base and hands it to the source.
func (n *Navigator) Navigate(to string, opts ...NavigateOption) {
	raw := n.base.Join(to)
	n.logger.Debug("navigate %q -> %q", to, raw)
	n.source.Navigate(raw, opts...)
}

// Href returns the link for a relative location, formatted by the
// source when it implements HrefFormatter.
func (n *Navigator) Href(to string) string {
	raw := n.base.Join(to)
	if f, ok := n.source.(HrefFormatter); ok {
		return f.Href(raw)
	}
	return raw
}

func (n *Navigator) Base() Base {
	return n.base
}

func (n *Navigator) Source() Source {
	return n.source
}

type navigatorKey struct {
	source  Source
	base    string
	folding CaseFolding
}

// navigatorCache memoizes navigators. Routers created through Nest
// share their parent's cache.
type navigatorCache struct {
	mu    sync.RWMutex
	store map[navigatorKey]*Navigator
}

func newNavigatorCache() *navigatorCache {
	return &navigatorCache{
		store: make(map[navigatorKey]*Navigator),
	}
}

func (c *navigatorCache) get(source Source, base Base, logger Logger) *Navigator {
	// non comparable sources cannot be map keys
	if !reflect.TypeOf(source).Comparable() {
		return &Navigator{source: source, base: base, logger: logger}
	}

	key := navigatorKey{source: source, base: base.String(), folding: base.CaseFolding()}

	c.mu.RLock()
	n, ok := c.store[key]
	c.mu.RUnlock()
	if ok {
		return n
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		c.store = make(map[navigatorKey]*Navigator)
	}
	if n, ok := c.store[key]; ok {
		return n
	}
	n = &Navigator{source: source, base: base, logger: logger}
	c.store[key] = n
	return n
}
