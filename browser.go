package location

import "sync"

var browserEvents = []Event{EventPopState, EventPushState, EventReplaceState, EventHashChange}

// Browser tracks the path portion of the address bar.
type Browser struct {
	window Window
}

// NewBrowser creates a Source over the window's pathname.
func NewBrowser(w Window) *Browser {
	return &Browser{window: w}
}

func (b *Browser) Window() Window {
	return b.window
}

// Close releases the window when it owns resources.
func (b *Browser) Close() {
	closeWindow(b.window)
}

func (b *Browser) Current() string {
	return b.window.Pathname()
}

func (b *Browser) Search() string {
	return b.window.Search()
}

func (b *Browser) State() any {
	return b.window.State()
}

func (b *Browser) Href(to string) string {
	return to
}

// Subscribe listens for traversal, history API writes and fragment
// changes.
func (b *Browser) Subscribe(fn Listener) func() {
	removers := make([]func(), 0, len(browserEvents))
	for _, event := range browserEvents {
		removers = append(removers, b.window.AddEventListener(event, fn))
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			for _, remove := range removers {
				remove()
			}
		})
	}
}

// Navigate writes through the history API, which fires no event of
// its own, and then dispatches pushState or replaceState.
func (b *Browser) Navigate(to string, opts ...NavigateOption) {
	o := navigateOptions(opts...)
	if o.Replace {
		b.window.ReplaceState(o.State, to)
		b.window.DispatchEvent(EventReplaceState)
		return
	}
	b.window.PushState(o.State, to)
	b.window.DispatchEvent(EventPushState)
}
