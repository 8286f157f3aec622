package bidi

import "errors"

// ErrStringTooLong is returned when the input exceeds MaxStringLength.
var ErrStringTooLong = errors.New("bidi: input string exceeds maximum length")

// ErrInvalidType names the error for a Type outside the range this package
// recognizes. No function in this package returns it: input types are not
// range-checked.
var ErrInvalidType = errors.New("bidi: invalid bidi type")

// MaxStringLength bounds how many code points GetEmbeddingLevels will
// process in one call; spec.md's resource model caps the working set this
// way rather than leaving it unbounded.
const MaxStringLength = 1 << 20
