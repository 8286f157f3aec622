package chartables

import gobidi "gobidi/pkg/bidi"

// Mirror re-exports bidi.Mirror for callers outside pkg/bidi, such as
// cmd/bidiview, that want a mirrored glyph lookup without importing the
// resolver package's other internals.
func Mirror(r rune) (rune, bool) {
	return gobidi.Mirror(r)
}
