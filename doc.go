// Package location provides the location primitive client-side routers
// are built on: reading the current location and navigating, whatever
// the source of truth is.
//
// A Source stores raw locations. Three are provided:
//
//	location.NewBrowser(w)  // the address bar path, through the history API
//	location.NewHash(w)     // the URL fragment, "#/users/1"
//	location.NewMemory()    // an owned list of entries, for tests and servers
//
// Browser and Hash sources read a Window. In a wasm build BrowserWindow
// binds the page; everywhere else SimulatedWindow emulates one.
//
// A Router mounts a Source at a base path. Locations exposed to
// consumers are decoded and relative to that base:
//
//	r := location.New(location.WithBase("/app"), location.WithSource(mem))
//	r.Navigate("/dashboard") // mem.Current() == "/app/dashboard"
//	r.Location()             // "/dashboard"
//
// Base matching ignores case and percent-encoding and only succeeds at
// a segment boundary. Raw locations outside the base are reported with
// the "~" marker ("~/other/app") instead of failing, and navigating to
// a "~" path writes it without the base.
//
// Hooks connect a Router to a UI host. A Hook subscribes while mounted,
// calls its invalidate function when the relative location changes and
// returns the same Navigator on every evaluation:
//
//	h := r.Hook(scheduleRender)
//	h.Mount()
//	defer h.Unmount()
//	path, nav := h.Use()
package location
