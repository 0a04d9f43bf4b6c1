//go:build js && wasm

package location

import (
	"strings"
	"sync"
	"syscall/js"
)

type browserWindow struct {
	window js.Value
}

// BrowserWindow binds the global window of the hosting page.
func BrowserWindow() Window {
	return &browserWindow{window: js.Global()}
}

// DefaultWindow returns the page window; rawURL is ignored.
func DefaultWindow(rawURL string) Window {
	return BrowserWindow()
}

// DefaultSource tracks the address bar path of the page.
func DefaultSource() Source {
	return NewBrowser(BrowserWindow())
}

func (w *browserWindow) location() js.Value {
	return w.window.Get("location")
}

func (w *browserWindow) history() js.Value {
	return w.window.Get("history")
}

func (w *browserWindow) Pathname() string {
	return w.location().Get("pathname").String()
}

func (w *browserWindow) Search() string {
	return strings.TrimPrefix(w.location().Get("search").String(), "?")
}

func (w *browserWindow) Hash() string {
	return w.location().Get("hash").String()
}

func (w *browserWindow) State() any {
	state := w.history().Get("state")
	if state.IsNull() || state.IsUndefined() {
		return nil
	}
	return state
}

func (w *browserWindow) PushState(state any, url string) {
	w.history().Call("pushState", toJS(state), "", url)
}

func (w *browserWindow) ReplaceState(state any, url string) {
	w.history().Call("replaceState", toJS(state), "", url)
}

func (w *browserWindow) SetHash(hash string) {
	w.location().Set("hash", hash)
}

func (w *browserWindow) AddEventListener(event Event, fn Listener) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	})
	w.window.Call("addEventListener", string(event), cb)

	var once sync.Once
	return func() {
		once.Do(func() {
			w.window.Call("removeEventListener", string(event), cb)
			cb.Release()
		})
	}
}

func (w *browserWindow) DispatchEvent(event Event) {
	w.window.Call("dispatchEvent", js.Global().Get("Event").New(string(event)))
}

// toJS converts history state, falling back to null for values
// syscall/js cannot represent.
func toJS(v any) (out js.Value) {
	if v == nil {
		return js.Null()
	}
	defer func() {
		if recover() != nil {
			out = js.Null()
		}
	}()
	return js.ValueOf(v)
}
