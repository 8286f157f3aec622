package bidi

// isTrailingResettable reports whether t is one of the types L1 treats as
// part of a resettable trailing sequence: whitespace, boundary neutral, or
// an explicit embedding/override/pop code. L1 reads the *original*
// classification here, from before W1–W7/N1–N2/I1–I2 touched anything.
func isTrailingResettable(t Type) bool {
	return t == WS || t == BN || t.IsExplicit()
}

// inheritRemovedLevels resolves the LevelRemoved placeholder mergeInto just
// spliced back in: a reinjected explicit/BN run takes the level of the run
// immediately preceding it, or baseLevel if it precedes everything else.
// Ports fribidi.c's "if (p->level<0) p->level = (first ? base_level :
// p->prev->level)" pass, which runs right after the override_list splice
// and before any level is read out to the per-code-point array.
func inheritRemovedLevels(list *runList, baseLevel Level) {
	first := list.first()
	for idx := first; !list.isBoundary(idx); idx = list.nodes[idx].next {
		if list.nodes[idx].level != LevelRemoved {
			continue
		}
		if idx == first {
			list.nodes[idx].level = baseLevel
		} else {
			list.nodes[idx].level = list.nodes[list.nodes[idx].prev].level
		}
	}
}

// finalizeLevels reinjects the explicit/BN runs X9 pulled out of resolved
// (ports fribidi.c's second override_list call), resolves their inherited
// levels, then applies L1: segment and paragraph separators reset to the
// paragraph level, and so does any run of whitespace/BN/explicit-format
// characters immediately preceding one of those separators or trailing at
// the end of the text. origTypes must be the untouched per-code-point
// classification produced before any pass ran.
func finalizeLevels(n int, origTypes []Type, baseLevel Level, resolved, removed *runList) []Level {
	mergeInto(resolved, removed)
	inheritRemovedLevels(resolved, baseLevel)
	levels := resolved.levels(n)

	resetting := true // the tail of the string counts as "end of line"
	for i := n - 1; i >= 0; i-- {
		switch {
		case origTypes[i] == S || origTypes[i] == B:
			levels[i] = baseLevel
			resetting = true
		case resetting && isTrailingResettable(origTypes[i]):
			levels[i] = baseLevel
		default:
			resetting = false
		}
	}
	return levels
}
