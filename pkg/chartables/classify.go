// Package chartables supplies the Unicode character-property lookups the
// bidi algorithm needs but does not itself maintain: bidirectional type
// classification and mirrored-glyph pairing.
package chartables

import (
	"golang.org/x/text/unicode/bidi"

	gobidi "gobidi/pkg/bidi"
)

// Classify returns the bidi.Type of r using golang.org/x/text/unicode/bidi's
// generated Unicode tables, translated into this module's own Type enum.
func Classify(r rune) gobidi.Type {
	p, _ := bidi.LookupRune(r)
	switch p.Class() {
	case bidi.L:
		return gobidi.L
	case bidi.R:
		return gobidi.R
	case bidi.AL:
		return gobidi.AL
	case bidi.EN:
		return gobidi.EN
	case bidi.ES:
		return gobidi.ES
	case bidi.ET:
		return gobidi.ET
	case bidi.AN:
		return gobidi.AN
	case bidi.CS:
		return gobidi.CS
	case bidi.NSM:
		return gobidi.NSM
	case bidi.BN:
		return gobidi.BN
	case bidi.B:
		return gobidi.B
	case bidi.S:
		return gobidi.S
	case bidi.WS:
		return gobidi.WS
	case bidi.ON:
		return gobidi.ON
	case bidi.LRO:
		return gobidi.LRO
	case bidi.RLO:
		return gobidi.RLO
	case bidi.LRE:
		return gobidi.LRE
	case bidi.RLE:
		return gobidi.RLE
	case bidi.PDF:
		return gobidi.PDF
	default:
		// LRI/RLI/FSI/PDI and any future class: this module does not model
		// isolates, so fold them to ON rather than fail classification.
		return gobidi.ON
	}
}

// ClassifyString classifies every rune of s in order.
func ClassifyString(s string) []gobidi.Type {
	runes := []rune(s)
	out := make([]gobidi.Type, len(runes))
	for i, r := range runes {
		out[i] = Classify(r)
	}
	return out
}
