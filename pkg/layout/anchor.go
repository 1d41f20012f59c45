package layout

import (
	"fmt"
	"strings"
)

// Anchor selects the edge or corner a board is pinned to.
type Anchor uint8

const (
	AnchorNone Anchor = iota
	AnchorTL
	AnchorTC
	AnchorTR
	AnchorCL
	AnchorCC
	AnchorCR
	AnchorBL
	AnchorBC
	AnchorBR
)

var anchorCodes = [...]string{
	AnchorNone: "",
	AnchorTL:   "tl",
	AnchorTC:   "tc",
	AnchorTR:   "tr",
	AnchorCL:   "cl",
	AnchorCC:   "cc",
	AnchorCR:   "cr",
	AnchorBL:   "bl",
	AnchorBC:   "bc",
	AnchorBR:   "br",
}

// ParseAnchor converts a two-character alignment code such as "tl" or "cr".
// The empty string maps to AnchorNone.
func ParseAnchor(s string) (Anchor, error) {
	for a, code := range anchorCodes {
		if code == s {
			return Anchor(a), nil
		}
	}
	return AnchorNone, fmt.Errorf("invalid anchor %q: expected one of %s", s, strings.Join(anchorCodes[1:], ", "))
}

// String returns the alignment code, or "none".
func (a Anchor) String() string {
	if a == AnchorNone || int(a) >= len(anchorCodes) {
		return "none"
	}
	return anchorCodes[a]
}

// Set implements flag.Value.
func (a *Anchor) Set(s string) error {
	parsed, err := ParseAnchor(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a Anchor) vertical() byte {
	if a == AnchorNone || int(a) >= len(anchorCodes) {
		return 'c'
	}
	return anchorCodes[a][0]
}

func (a Anchor) horizontal() byte {
	if a == AnchorNone || int(a) >= len(anchorCodes) {
		return 'c'
	}
	return anchorCodes[a][1]
}
