package location

// Event names a window notification.
type Event string

const (
	// EventPopState fires on back/forward traversal.
	EventPopState Event = "popstate"
	// EventHashChange fires when the fragment changes. Platforms deliver
	// it on a later turn than the write that caused it.
	EventHashChange Event = "hashchange"
	// EventPushState and EventReplaceState are never fired by the
	// platform; sources dispatch them after using the history API.
	EventPushState    Event = "pushState"
	EventReplaceState Event = "replaceState"
)

// Window is the slice of a browser window the Browser and Hash sources
// need: the address bar, the history API and event dispatch.
type Window interface {
	// Pathname returns the percent-encoded path of the current URL.
	Pathname() string
	// Search returns the query string without "?".
	Search() string
	// Hash returns the fragment including "#", or "" when empty.
	Hash() string
	// State returns the state of the current history entry.
	State() any

	PushState(state any, url string)
	ReplaceState(state any, url string)
	// SetHash assigns the fragment. A changed value appends a history
	// entry and fires EventHashChange asynchronously.
	SetHash(hash string)

	AddEventListener(event Event, fn Listener) (remove func())
	DispatchEvent(event Event)
}

// closeWindow stops windows that own resources, such as the event
// loop of a SimulatedWindow.
func closeWindow(w Window) {
	if c, ok := w.(interface{ Close() }); ok {
		c.Close()
	}
}
