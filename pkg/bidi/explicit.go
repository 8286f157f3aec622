package bidi

// statusFrame is one (level, override) pair saved across a PUSH, restored
// on the matching POP. Ports fribidi's LevelInfo.
type statusFrame struct {
	level    Level
	override Type // ON (neutral), L, or R
}

// explicitState carries X1–X9's mutable state across the whole run list: the
// current level and override, the status stack, and the two-interval
// overflow counters spec.md §9 calls out as "essential, not incidental."
type explicitState struct {
	level    Level
	override Type
	stack    []statusFrame

	// overPushed counts embedding codes rejected because their level
	// would exceed MaxLevel. firstInterval records where overPushed stood
	// when a push from level == MaxLevel-1 was accepted, marking the
	// boundary between the rejections before it and any later ones: at
	// level 60 an RLE/RLO reaches 61 (accepted) while an LRE/LRO reaches
	// 62 (rejected), so the rejected codes can form two disjoint
	// intervals separated by one accepted push.
	overPushed    int
	firstInterval int
}

// push implements the PUSH_STATUS macro: if the new level is still valid,
// remember the current (level, override) and adopt new_level/new_override;
// otherwise count the rejection.
func (s *explicitState) push(newLevel Level, newOverride Type) {
	if newLevel <= MaxLevel {
		if s.level == MaxLevel-1 {
			s.firstInterval = s.overPushed
		}
		s.stack = append(s.stack, statusFrame{level: s.level, override: s.override})
		s.level = newLevel
		s.override = newOverride
		return
	}
	s.overPushed++
}

// pop implements the POP_STATUS macro: unwind one rejection from whichever
// interval is currently open, else restore the top genuinely pushed frame.
func (s *explicitState) pop() {
	if s.overPushed == 0 && len(s.stack) == 0 {
		return
	}
	if s.overPushed > s.firstInterval {
		s.overPushed--
		return
	}
	if s.overPushed == s.firstInterval {
		s.firstInterval = 0
	}
	if len(s.stack) == 0 {
		return
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.level = top.level
	s.override = top.override
}

// validIsolatingRunLevel reports whether newLevel would still fit under
// MaxLevel — the guard X2–X5 apply before actually pushing.
func validIsolatingRunLevel(newLevel Level) bool {
	return newLevel <= MaxLevel
}

// leastGreaterLevel returns the smallest level of the given direction
// (L-family -> even, R-family -> odd) strictly greater than level, per
// X2–X5's "least greater even/odd level".
func leastGreaterLevel(level Level, dir Type) Level {
	add := directionToLevel(dir)
	if (level+1)%2 == add {
		return level + 1
	}
	return level + 2
}

// splitRunPositions breaks the run at idx into length-1 runs covering the
// same positions, in order, returning every resulting index (just idx
// itself if the run was already length 1). fromTypes merges consecutive
// identical explicit codes into one run, but X2–X5 process each code point
// as its own independent push or pop, so a length-N explicit run must be
// un-merged before the explicit-level loop touches it.
func splitRunPositions(list *runList, idx int) []int {
	r := list.nodes[idx]
	if r.length <= 1 {
		return []int{idx}
	}

	indices := make([]int, r.length)
	indices[0] = idx
	list.nodes[idx].length = 1
	prev := idx
	for i := 1; i < r.length; i++ {
		newIdx := list.alloc(run{pos: r.pos + i, length: 1, typ: r.typ, level: r.level})
		list.insertBefore(list.nodes[prev].next, newIdx)
		indices[i] = newIdx
		prev = newIdx
	}
	return indices
}

// resolveExplicit runs X1–X9 over the run list built from raw types,
// returning the run list with explicit-format runs and BN runs already
// removed (X9) and saved aside in removed for later reinjection by L1/the
// level-assignment pass. Ports fribidi.c's explicit-level loop.
func resolveExplicit(types []Type, baseLevel Level) (resolved *runList, removed *runList) {
	list := fromTypes(types)
	removed = newRunList()

	st := &explicitState{level: baseLevel, override: ON}

	for idx := list.first(); !list.isBoundary(idx); {
		next := list.nodes[idx].next
		typ := list.nodes[idx].typ

		switch typ {
		case RLE, LRE, RLO, LRO:
			// A run of N identical embedding/override codes is N
			// independent pushes, each computing its least-greater-level
			// from whatever st.level the previous push left behind.
			for _, cidx := range splitRunPositions(list, idx) {
				newLevel := leastGreaterLevel(st.level, explicitEmbeddingDirection(typ))
				newOverride := explicitOverrideDirection(typ)

				cr := &list.nodes[cidx]
				cr.level = st.level
				if st.override != ON {
					cr.typ = st.override
				}
				st.push(newLevel, newOverride)
				removeAndAppend(list, cidx, removed)
			}

		case PDF:
			for _, cidx := range splitRunPositions(list, idx) {
				cr := &list.nodes[cidx]
				cr.level = st.level
				if st.override != ON {
					cr.typ = st.override
				}
				st.pop()
				removeAndAppend(list, cidx, removed)
			}

		case B:
			// A paragraph separator resets the stack outright; single
			// paragraph input should never contain one mid-string, but
			// X8 still specifies the reset for safety.
			st.level = baseLevel
			st.override = ON
			st.stack = st.stack[:0]
			st.overPushed = 0
			st.firstInterval = 0
			list.nodes[idx].level = baseLevel

		case BN:
			r := &list.nodes[idx]
			r.level = st.level
			if st.override != ON {
				r.typ = st.override
			}
			removeAndAppend(list, idx, removed)

		default:
			r := &list.nodes[idx]
			r.level = st.level
			if st.override != ON {
				r.typ = st.override
			}
		}

		idx = next
	}

	list.compactEqual()
	return list, removed
}
