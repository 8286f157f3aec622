package bidi

// neutralStrongEquivalent maps a resolved weak/number type to the strong
// direction N1 treats it as for "is this neutral surrounded by the same
// direction on both sides": EN and AN both count as R, matching UAX #9's
// N1 wording ("European and Arabic numbers are treated as though they were
// R").
func neutralStrongEquivalent(t Type) Type {
	switch t {
	case EN, AN, R:
		return R
	case L:
		return L
	default:
		return ON // not a strong-equivalent type; caller never uses this value
	}
}

// resolveNeutral applies N1–N2 across list, one level run at a time: N1
// resolves a maximal neutral run to L or R when both its neighbors (sor/eor
// standing in at the run's own edges) agree; N2 resolves whatever N1 left
// alone to the run's own embedding direction. Ports fribidi.c's neutral
// resolution loop.
func resolveNeutral(list *runList) {
	list.forEachLevelRun(func(first, last int, sor, eor Type) {
		resolveNeutralRun(list, first, last, sor, eor)
	})
	list.compactEqual()
}

func resolveNeutralRun(list *runList, first, last int, sor, eor Type) {
	for idx := first; ; {
		r := &list.nodes[idx]
		if !r.typ.IsNeutral() {
			if idx == last {
				break
			}
			idx = list.nodes[idx].next
			continue
		}

		// Find the end of this maximal neutral stretch within the run.
		end := idx
		for end != last && list.nodes[list.nodes[end].next].typ.IsNeutral() {
			end = list.nodes[end].next
		}

		var before Type
		if idx == first {
			before = sor
		} else {
			before = neutralStrongEquivalent(list.nodes[list.nodes[idx].prev].typ)
		}
		var after Type
		if end == last {
			after = eor
		} else {
			after = neutralStrongEquivalent(list.nodes[list.nodes[end].next].typ)
		}

		resolved := direction(r.level) // N2 fallback: embedding direction
		if before == after && (before == L || before == R) {
			resolved = before // N1
		}

		for n := idx; ; n = list.nodes[n].next {
			list.nodes[n].typ = resolved
			if n == end {
				break
			}
		}

		if end == last {
			break
		}
		idx = list.nodes[end].next
	}
}
