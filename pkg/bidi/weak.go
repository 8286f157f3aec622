package bidi

// levelRunBoundary computes X10's sor/eor: the implicit direction a level
// run is adjacent to at its start or end, which is the direction of
// whichever is higher between the run's own level and the level of its
// neighbor (or the base level, past SOT/EOT). Ports fribidi.c's
// calc_level_run macro-equivalent.
func levelRunBoundary(runLevel, neighborLevel Level) Type {
	if neighborLevel > runLevel {
		return direction(neighborLevel)
	}
	return direction(runLevel)
}

// resolveWeak applies W1–W7 across list, one maximal level run at a time.
// Each level run gets its own sor/eor (X10) and its own lastStrong state,
// matching fribidi.c's reset of that state at every level-run boundary —
// including the Open Question decision recorded in DESIGN.md that
// lastStrong is refreshed from sor even when sor did not come from a
// genuine strong character. Each rule is a separate pass over the level
// run, in rule order; there is no fused W1/W2 pass, no W4-after-W5 latch
// and no W7 shadow-EN state. Afterwards compactNeutral merges adjacent
// neutral runs so the neutral resolver sees maximal neutral groups.
func resolveWeak(list *runList) {
	list.forEachLevelRun(func(first, last int, sor, _ Type) {
		resolveWeakRun(list, first, last, sor)
	})
	list.compactNeutral()
}

// resolveWeakRun runs W1–W7 over the single level run [first, last] (both
// inclusive, list-node indices), with sor standing in for the virtual
// character immediately before the run (W1–W7 never consult eor).
func resolveWeakRun(list *runList, first, last int, sor Type) {
	// W1: NSM takes the previous run's type, or sor if it is the first
	// run. A NSM following an explicit/BN run cannot occur here since X9
	// already removed those; a NSM following LRE/RLE/LRO/RLO/PDF that
	// survived as ON via an enclosing override is handled the same as any
	// other previous type.
	prevType := sor
	for idx := first; ; idx = list.nodes[idx].next {
		r := &list.nodes[idx]
		if r.typ == NSM {
			r.typ = prevType
		}
		prevType = r.typ
		if idx == last {
			break
		}
	}

	// W2: EN takes type AN if the nearest preceding strong type (or sor)
	// is AL.
	lastStrong := sor
	for idx := first; ; idx = list.nodes[idx].next {
		r := &list.nodes[idx]
		switch r.typ {
		case L, R, AL:
			lastStrong = r.typ
		case EN:
			if lastStrong == AL {
				r.typ = AN
			}
		}
		if idx == last {
			break
		}
	}

	// W3: AL becomes R.
	for idx := first; ; idx = list.nodes[idx].next {
		if list.nodes[idx].typ == AL {
			list.nodes[idx].typ = R
		}
		if idx == last {
			break
		}
	}

	// W4: a single ES between two ENs becomes EN; a single CS between two
	// numbers of the same type becomes that type. "Single" means a run of
	// length exactly 1 bracketed by EN/AN runs, since runs are already
	// maximal same-type stretches.
	for idx := first; ; idx = list.nodes[idx].next {
		r := &list.nodes[idx]
		if r.typ.IsESOrCS() && r.length == 1 && idx != first && idx != last {
			prev := list.nodes[idx].prev
			next := list.nodes[idx].next
			pt, nt := list.nodes[prev].typ, list.nodes[next].typ
			if r.typ == ES && pt == EN && nt == EN {
				r.typ = EN
			} else if r.typ == CS && pt == nt && (pt == EN || pt == AN) {
				r.typ = pt
			}
		}
		if idx == last {
			break
		}
	}

	// W5: a run of ET adjacent to EN (on either side) becomes EN.
	for idx := first; !list.isBoundary(idx); idx = list.nodes[idx].next {
		r := &list.nodes[idx]
		if r.typ != ET {
			if idx == last {
				break
			}
			continue
		}
		prevIsEN := !list.isBoundary(list.nodes[idx].prev) && list.nodes[list.nodes[idx].prev].typ == EN
		nextIsEN := !list.isBoundary(list.nodes[idx].next) && list.nodes[list.nodes[idx].next].typ == EN
		if prevIsEN || nextIsEN {
			r.typ = EN
		}
		if idx == last {
			break
		}
	}

	// W6: remaining ES, ET, CS fall back to ON.
	for idx := first; ; idx = list.nodes[idx].next {
		if list.nodes[idx].typ.IsNumberSeparatorOrTerminator() {
			list.nodes[idx].typ = ON
		}
		if idx == last {
			break
		}
	}

	// W7: EN becomes L if the nearest preceding strong type (or sor) is L.
	lastStrong = sor
	for idx := first; ; idx = list.nodes[idx].next {
		r := &list.nodes[idx]
		switch r.typ {
		case L, R:
			lastStrong = r.typ
		case EN:
			if lastStrong == L {
				r.typ = L
			}
		}
		if idx == last {
			break
		}
	}
}
