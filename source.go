package location

import "strings"

// Listener is notified when a location store changes.
type Listener func()

// Source is a location store: the browser path, the URL fragment or an
// in-memory stack. Every implementation must notify its subscribers
// once per Navigate call, whether the change originated here or from
// an external actor.
type Source interface {
	// Current returns the raw location, an absolute path that may
	// contain percent-encoded octets.
	Current() string
	// Subscribe registers fn and returns a function that removes it.
	// Calling the returned function more than once is a no-op.
	Subscribe(fn Listener) (unsubscribe func())
	// Navigate writes a new raw location. By default a history entry
	// is appended; Replace overwrites the current one.
	Navigate(to string, opts ...NavigateOption)
}

// SourceFactory builds a Source. Routers call it once.
type SourceFactory func() Source

// SearchSource is implemented by sources that track a query string.
type SearchSource interface {
	// Search returns the query string without the leading "?".
	Search() string
}

// StateSource is implemented by sources that keep history state.
type StateSource interface {
	State() any
}

// HrefFormatter is implemented by sources whose links need a different
// form than the raw location, e.g. "#/path" for fragments.
type HrefFormatter interface {
	Href(to string) string
}

// NavigateOptions holds per-navigation settings.
type NavigateOptions struct {
	Replace bool
	State   any
}

type NavigateOption func(*NavigateOptions)

// Replace overwrites the current history entry instead of appending.
func Replace() NavigateOption {
	return func(o *NavigateOptions) {
		o.Replace = true
	}
}

// WithState attaches history state to the new entry.
func WithState(state any) NavigateOption {
	return func(o *NavigateOptions) {
		o.State = state
	}
}

func navigateOptions(opts ...NavigateOption) NavigateOptions {
	var o NavigateOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// splitSearch splits "path?search" and drops any "#fragment".
func splitSearch(to string) (path, search string) {
	path = to
	for i := 0; i < len(path); i++ {
		switch path[i] {
		case '?':
			search = path[i+1:]
			path = path[:i]
			if j := strings.IndexByte(search, '#'); j >= 0 {
				search = search[:j]
			}
			return path, search
		case '#':
			return path[:i], ""
		}
	}
	return path, ""
}
