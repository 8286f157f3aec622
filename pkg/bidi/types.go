// Package bidi implements the Unicode Bidirectional Algorithm (UAX #9) for
// a single paragraph: resolving the embedding level of every code point and
// reordering the code points into visual order.
package bidi

// Type is the bidirectional character type of a code point, per UAX #9.
type Type int

const (
	// Strong types.
	L  Type = iota // Left-to-Right
	R              // Right-to-Left
	AL             // Right-to-Left Arabic

	// Weak types.
	EN  // European Number
	ES  // European Number Separator
	ET  // European Number Terminator
	AN  // Arabic Number
	CS  // Common Number Separator
	NSM // Non-Spacing Mark
	BN  // Boundary Neutral

	// Neutral types.
	B  // Paragraph Separator
	S  // Segment Separator
	WS // Whitespace
	ON // Other Neutral

	// Explicit formatting codes.
	LRE // Left-to-Right Embedding
	RLE // Right-to-Left Embedding
	LRO // Left-to-Right Override
	RLO // Right-to-Left Override
	PDF // Pop Directional Format

	// Sentinels, only ever held by the SOT/EOT bracketing runs.
	SOT
	EOT
)

// String names a type by its UAX #9 abbreviation ("L", "AL", "NSM", ...),
// for trace output and test failure messages.
func (t Type) String() string {
	switch t {
	case L:
		return "L"
	case R:
		return "R"
	case AL:
		return "AL"
	case EN:
		return "EN"
	case ES:
		return "ES"
	case ET:
		return "ET"
	case AN:
		return "AN"
	case CS:
		return "CS"
	case NSM:
		return "NSM"
	case BN:
		return "BN"
	case B:
		return "B"
	case S:
		return "S"
	case WS:
		return "WS"
	case ON:
		return "ON"
	case LRE:
		return "LRE"
	case RLE:
		return "RLE"
	case LRO:
		return "LRO"
	case RLO:
		return "RLO"
	case PDF:
		return "PDF"
	case SOT:
		return "SOT"
	case EOT:
		return "EOT"
	default:
		return "?"
	}
}

// IsStrong reports whether t is one of L, R, AL.
func (t Type) IsStrong() bool {
	return t == L || t == R || t == AL
}

// IsLetter is an alias for IsStrong used where the rule text (P2/P3) says
// "letter" rather than "strong type" — both phrasings mean the same set.
func (t Type) IsLetter() bool { return t.IsStrong() }

// IsNeutral reports whether t is one of B, S, WS, ON.
func (t Type) IsNeutral() bool {
	return t == B || t == S || t == WS || t == ON
}

// IsNumber reports whether t is EN or AN.
func (t Type) IsNumber() bool {
	return t == EN || t == AN
}

// IsExplicit reports whether t is one of LRE, RLE, LRO, RLO, PDF.
func (t Type) IsExplicit() bool {
	switch t {
	case LRE, RLE, LRO, RLO, PDF:
		return true
	default:
		return false
	}
}

// IsExplicitOrBN reports whether t is an explicit formatting code or BN —
// the set X9 removes from the run list.
func (t Type) IsExplicitOrBN() bool {
	return t.IsExplicit() || t == BN
}

// IsExplicitOrSeparatorOrBNOrWS reports whether t is one of the types L1
// treats as "trailing whitespace" material: explicit codes, BN, S, WS.
func (t Type) IsExplicitOrSeparatorOrBNOrWS() bool {
	return t.IsExplicitOrBN() || t == S || t == WS
}

// IsSeparator reports whether t is a paragraph or segment separator.
func (t Type) IsSeparator() bool {
	return t == B || t == S
}

// IsESOrCS reports whether t is ES or CS, the two separator types W4 may
// fold into a neighboring number type.
func (t Type) IsESOrCS() bool {
	return t == ES || t == CS
}

// IsNumberSeparatorOrTerminator reports whether t is ES, ET, or CS — the
// set W6 falls back to ON.
func (t Type) IsNumberSeparatorOrTerminator() bool {
	return t == ES || t == ET || t == CS
}

// explicitOverrideDirection returns the override direction a LRO/RLO
// introduces: L, R, or ON (neutral) for anything else.
func explicitOverrideDirection(t Type) Type {
	switch t {
	case LRO:
		return L
	case RLO:
		return R
	default:
		return ON
	}
}

// explicitEmbeddingDirection returns the push direction (L-family or
// R-family) of an explicit code, used to compute the least-greater-level of
// matching parity in X2–X5.
func explicitEmbeddingDirection(t Type) Type {
	switch t {
	case LRE, LRO:
		return L
	case RLE, RLO:
		return R
	default:
		return ON
	}
}
