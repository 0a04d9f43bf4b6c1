package ssr

import (
	"sync"

	"github.com/goliatone/go-location"
)

// Source is a static location source for a single server request. It
// never changes location: Navigate records the target as a redirect.
type Source struct {
	path   string
	search string

	mu       sync.RWMutex
	redirect string
	ok       bool
}

var (
	_ location.Source        = (*Source)(nil)
	_ location.SearchSource  = (*Source)(nil)
	_ location.HrefFormatter = (*Source)(nil)
)

// NewSource creates a source for the request path and query string.
// path is kept as received, percent-encoding included.
func NewSource(path, search string) *Source {
	if path == "" {
		path = "/"
	}
	return &Source{path: path, search: search}
}

func (s *Source) Current() string {
	return s.path
}

func (s *Source) Search() string {
	return s.search
}

func (s *Source) Href(to string) string {
	return to
}

// Subscribe never fires; a request has no location changes.
func (s *Source) Subscribe(fn location.Listener) func() {
	return func() {}
}

// Navigate records to as the redirect target. The last call wins.
func (s *Source) Navigate(to string, opts ...location.NavigateOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.redirect = to
	s.ok = true
}

// Redirect returns the recorded redirect target, if any.
func (s *Source) Redirect() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.redirect, s.ok
}
