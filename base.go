package location

import (
	"strings"
)

// OutsideBaseMarker prefixes a relative location whose raw path is not
// governed by the configured base. Navigating to a marked path writes
// the remainder as-is, bypassing the base.
const OutsideBaseMarker = "~"

// Base is an application mount point. The zero value is the root base.
type Base struct {
	raw      string
	decoded  string
	segments []string
	folding  CaseFolding
}

type BaseOption func(*Base)

// WithBaseCaseFolding sets how segments are compared when stripping.
func WithBaseCaseFolding(mode CaseFolding) BaseOption {
	return func(b *Base) {
		b.folding = mode.normalize()
	}
}

// NewBase normalizes base once. It may be given percent-encoded or
// decoded; both forms strip identically, while Join writes back the
// form it was configured with.
func NewBase(base string, opts ...BaseOption) Base {
	b := Base{folding: CaseFoldingSimple}
	for _, opt := range opts {
		opt(&b)
	}

	base = strings.TrimRight(base, "/")
	if base == "" {
		return b
	}

	b.raw = rooted(base)
	b.decoded = Decode(b.raw)
	for _, seg := range strings.Split(b.decoded[1:], "/") {
		b.segments = append(b.segments, b.folding.Fold(seg))
	}
	return b
}

// IsRoot reports whether the base strips nothing.
func (b Base) IsRoot() bool {
	return b.raw == ""
}

// String returns the base as configured, without trailing slashes.
func (b Base) String() string {
	return b.raw
}

// Decoded returns the decoded base used for comparisons.
func (b Base) Decoded() string {
	return b.decoded
}

// CaseFolding returns the comparison mode.
func (b Base) CaseFolding() CaseFolding {
	return b.folding.normalize()
}

// Strip maps a raw location to a location relative to the base.
//
// The raw path is decoded first. When it does not start with the base
// at a segment boundary the decoded path is returned prefixed with
// OutsideBaseMarker.
func (b Base) Strip(raw string) string {
	path := Decode(raw)
	if b.IsRoot() {
		return path
	}

	rest, ok := b.match(path)
	if !ok {
		return OutsideBaseMarker + path
	}
	return "/" + strings.TrimLeft(rest, "/")
}

// match compares base segments with the leading segments of path and
// returns whatever follows them.
func (b Base) match(path string) (string, bool) {
	if !strings.HasPrefix(path, "/") {
		return "", false
	}

	rest := path[1:]
	for i, want := range b.segments {
		seg := rest
		if idx := strings.IndexByte(rest, '/'); idx >= 0 {
			seg = rest[:idx]
			rest = rest[idx:]
		} else {
			rest = ""
		}

		if b.folding.Fold(seg) != want {
			return "", false
		}

		if i < len(b.segments)-1 {
			if rest == "" {
				return "", false
			}
			rest = rest[1:]
		}
	}
	return rest, true
}

// Join maps a relative location back to the raw location to write.
//
// Targets are rooted with "/" when needed. A target starting with
// OutsideBaseMarker skips the base entirely.
// Joining "/" yields the base itself, without a trailing slash.
func (b Base) Join(to string) string {
	if strings.HasPrefix(to, OutsideBaseMarker) {
		return rooted(to[len(OutsideBaseMarker):])
	}

	to = rooted(to)
	if b.IsRoot() {
		return to
	}
	if to == "/" {
		return b.raw
	}
	return b.raw + to
}

// Nest returns the base of a router mounted at child inside b.
func (b Base) Nest(child string) Base {
	child = strings.TrimRight(child, "/")
	if child == "" {
		return b
	}
	return NewBase(b.raw+rooted(child), WithBaseCaseFolding(b.folding))
}

// Resolve strips base from raw using simple case folding.
func Resolve(base, raw string) string {
	return NewBase(base).Strip(raw)
}

// Unresolve prepends base to a relative location.
func Unresolve(base, rel string) string {
	return NewBase(base).Join(rel)
}

func rooted(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}
