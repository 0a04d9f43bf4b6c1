package location

import (
	"strings"

	"golang.org/x/text/cases"
)

// CaseFolding controls how base path segments are compared.
type CaseFolding string

const (
	// CaseFoldingSimple maps every rune to lower case on its own. It
	// covers ASCII and most scripts but not multi-rune foldings such
	// as "ß" vs "SS".
	CaseFoldingSimple CaseFolding = "simple"
	// CaseFoldingFull applies Unicode full case folding.
	CaseFoldingFull CaseFolding = "full"
)

func (m CaseFolding) normalize() CaseFolding {
	switch m {
	case CaseFoldingFull:
		return CaseFoldingFull
	default:
		return CaseFoldingSimple
	}
}

func (m CaseFolding) String() string {
	return string(m.normalize())
}

// Fold returns s folded according to the mode.
func (m CaseFolding) Fold(s string) string {
	switch m.normalize() {
	case CaseFoldingFull:
		// a Caser keeps state, never share it
		return cases.Fold().String(s)
	default:
		return strings.ToLower(s)
	}
}
