package location

import "strings"

// Hash tracks the URL fragment, read as a path: "#/users/1" and
// "#users/1" both map to "/users/1".
//
// Fragment changes are announced by the platform on a later turn, so
// subscribers observe a push some time after Navigate returns.
type Hash struct {
	window Window
}

// NewHash creates a Source over the window's fragment.
func NewHash(w Window) *Hash {
	return &Hash{window: w}
}

func (h *Hash) Window() Window {
	return h.window
}

// Close releases the window when it owns resources.
func (h *Hash) Close() {
	closeWindow(h.window)
}

func (h *Hash) Current() string {
	return "/" + trimFragment(h.window.Hash())
}

func (h *Hash) Search() string {
	return h.window.Search()
}

func (h *Hash) State() any {
	return h.window.State()
}

func (h *Hash) Href(to string) string {
	return "#" + to
}

func (h *Hash) Subscribe(fn Listener) func() {
	return h.window.AddEventListener(EventHashChange, fn)
}

// Navigate writes the decoded fragment. A query string in to is moved
// to the real search part of the URL. History state is kept in the
// window entry.
func (h *Hash) Navigate(to string, opts ...NavigateOption) {
	o := navigateOptions(opts...)

	to = trimFragment(to)
	p, search := splitSearch(to)
	fragment := "/" + Decode(p)

	// SetHash keeps no state
	if o.Replace || o.State != nil || strings.Contains(to, "?") {
		url := "#" + fragment
		if strings.Contains(to, "?") {
			url = "?" + search + url
		}
		if o.Replace {
			h.window.ReplaceState(o.State, url)
		} else {
			h.window.PushState(o.State, url)
		}
		h.window.DispatchEvent(EventHashChange)
		return
	}

	// assigning the current value fires nothing
	if Decode(strings.TrimPrefix(h.window.Hash(), "#")) == fragment {
		h.window.DispatchEvent(EventHashChange)
		return
	}
	h.window.SetHash(fragment)
}

func trimFragment(s string) string {
	return strings.TrimLeft(strings.TrimPrefix(s, "#"), "/")
}
