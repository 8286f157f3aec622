package bidi

import (
	"fmt"
	"sync"
)

// Direction is the caller's requested paragraph base direction: Auto asks
// for P2/P3 detection, LTR/RTL force a level-0 or level-1 base regardless
// of the text's content.
type Direction int

const (
	DirectionAuto Direction = iota
	DirectionLTR
	DirectionRTL
)

// Tracer receives one Event call per pipeline pass when an analysis runs
// with tracing enabled. pkg/trace.Tracer satisfies this structurally; bidi
// does not import that package, keeping the core dependency-free.
type Tracer interface {
	Event(pass, detail string)
}

// Options configures a single LogToVisual/GetEmbeddingLevels call, letting
// a caller opt out of the process-wide Mirroring/Debug globals in §6 when
// it wants call-scoped behavior instead (e.g. concurrent batch processing
// with per-goroutine tracers).
type Options struct {
	Mirroring bool
	Tracer    Tracer
}

var (
	globalMu        sync.RWMutex
	globalMirroring = true
	globalDebug     = false
)

// SetMirroring sets the process-wide default for L4 glyph mirroring, used
// by any call that passes a nil *Options.
func SetMirroring(enabled bool) {
	globalMu.Lock()
	globalMirroring = enabled
	globalMu.Unlock()
}

// MirroringStatus returns the current process-wide mirroring default.
func MirroringStatus() bool {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalMirroring
}

// SetDebug toggles the process-wide debug default reported by DebugStatus.
// DefaultOptions does not read it; tracing happens only when a caller sets
// Options.Tracer itself.
func SetDebug(enabled bool) {
	globalMu.Lock()
	globalDebug = enabled
	globalMu.Unlock()
}

// DebugStatus returns the current process-wide debug default.
func DebugStatus() bool {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalDebug
}

// DefaultOptions builds an Options from the current process-wide globals,
// with no tracer: a caller that wants tracing still attaches its own
// Tracer after checking DebugStatus, since pkg/bidi has no notion of what
// a tracer writes to.
func DefaultOptions() Options {
	return Options{Mirroring: MirroringStatus()}
}

// ParagraphDirection implements P2/P3: an explicit Direction wins outright;
// DirectionAuto scans for the first strong character (L, R, or AL) and
// bases the paragraph on it, falling back to LTR (level 0) if none exists.
// This module does not implement isolates, so — unlike full UAX #9 P2 —
// there is no initiator/PDI span to skip over while scanning.
func ParagraphDirection(types []Type, dir Direction) Level {
	switch dir {
	case DirectionLTR:
		return 0
	case DirectionRTL:
		return 1
	}
	for _, t := range types {
		switch t {
		case L:
			return 0
		case R, AL:
			return 1
		}
	}
	return 0
}

// Result is the full output of one LogToVisual call.
type Result struct {
	BaseLevel   Level
	Levels      []Level // one resolved embedding level per input code point, logical order
	VisualOrder []int   // VisualOrder[visualPos] = logicalIndex
	VisualText  []rune  // text reordered to visual order, with L4 mirroring applied if enabled
}

// analysePasses runs X1–X9 (with removal), W1–W7, N1–N2, and I1–I2 in
// order, emitting a trace event after each when tr is non-nil. Ports
// fribidi_analyse_string's main pipeline.
func analysePasses(types []Type, baseLevel Level, tr Tracer) (resolved, removed *runList) {
	resolved, removed = resolveExplicit(types, baseLevel)
	if tr != nil {
		tr.Event("explicit", resolved.String())
	}
	resolveWeak(resolved)
	if tr != nil {
		tr.Event("weak", resolved.String())
	}
	resolveNeutral(resolved)
	if tr != nil {
		tr.Event("neutral", resolved.String())
	}
	resolveImplicit(resolved)
	if tr != nil {
		tr.Event("implicit", resolved.String())
	}
	return resolved, removed
}

// GetEmbeddingLevels resolves the embedding level of every code point in
// types under the requested paragraph direction, running the complete
// pipeline through L1. Ports fribidi_get_par_embedding_levels.
func GetEmbeddingLevels(types []Type, dir Direction, opts *Options) ([]Level, error) {
	if len(types) > MaxStringLength {
		return nil, ErrStringTooLong
	}
	if len(types) == 0 {
		return []Level{}, nil
	}

	var tr Tracer
	if opts != nil {
		tr = opts.Tracer
	}

	baseLevel := ParagraphDirection(types, dir)
	resolved, removed := analysePasses(types, baseLevel, tr)
	levels := finalizeLevels(len(types), types, baseLevel, resolved, removed)
	if tr != nil {
		tr.Event("L1", "trailing whitespace/separators reset to base level")
	}
	return levels, nil
}

// LogToVisual runs the full pipeline and additionally performs L2 reorder
// and (when enabled) L4 mirroring, returning everything a renderer needs to
// draw the paragraph in visual order. Ports fribidi_log2vis.
func LogToVisual(text []rune, types []Type, dir Direction, opts *Options) (*Result, error) {
	if len(text) != len(types) {
		return nil, fmt.Errorf("bidi: text and types length mismatch (%d != %d)", len(text), len(types))
	}

	levels, err := GetEmbeddingLevels(types, dir, opts)
	if err != nil {
		return nil, err
	}

	mirror := MirroringStatus()
	var tr Tracer
	if opts != nil {
		mirror = opts.Mirroring
		tr = opts.Tracer
	}

	visualSource := text
	if mirror {
		visualSource = ApplyMirroring(text, levels)
	}
	order := VisualOrder(levels)
	visualText := make([]rune, len(text))
	for visual, logical := range order {
		visualText[visual] = visualSource[logical]
	}
	if tr != nil {
		tr.Event("reorder", fmt.Sprintf("visual order computed, mirroring=%v", mirror))
	}

	return &Result{
		BaseLevel:   ParagraphDirection(types, dir),
		Levels:      levels,
		VisualOrder: order,
		VisualText:  visualText,
	}, nil
}

// lrm and rlm are the Left-to-Right Mark and Right-to-Left Mark: they
// classify as ordinary strong L/R code points (not IsExplicit), but exist
// purely as directional formatting hints, so RemoveExplicits drops them
// alongside the true explicit codes.
const (
	lrm = '‎'
	rlm = '‏'
)

// RemoveExplicits strips explicit embedding/override/pop codes and LRM/RLM
// marks from text, returning the remaining code points and their types in
// logical order. Ports fribidi_remove_explicits.
func RemoveExplicits(text []rune, types []Type) ([]rune, []Type) {
	outText := make([]rune, 0, len(text))
	outTypes := make([]Type, 0, len(types))
	for i, t := range types {
		if t.IsExplicit() || text[i] == lrm || text[i] == rlm {
			continue
		}
		outText = append(outText, text[i])
		outTypes = append(outTypes, t)
	}
	return outText, outTypes
}
