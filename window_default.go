//go:build !(js && wasm)

package location

// DefaultWindow returns a SimulatedWindow showing rawURL. Outside a
// browser there is no address bar to bind to.
func DefaultWindow(rawURL string) Window {
	return NewSimulatedWindow(rawURL)
}

// DefaultSource returns an empty Memory source.
func DefaultSource() Source {
	return NewMemory()
}
