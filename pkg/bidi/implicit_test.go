package bidi

import "testing"

func TestResolveImplicitI1EvenLevel(t *testing.T) {
	list := newRunList()
	r := list.alloc(run{pos: 0, length: 1, typ: R, level: 0})
	list.insertBefore(list.tail, r)
	en := list.alloc(run{pos: 1, length: 1, typ: EN, level: 0})
	list.insertBefore(list.tail, en)

	resolveImplicit(list)

	if got := list.nodes[r].level; got != 1 {
		t.Errorf("R at even level: level = %d; want 1", got)
	}
	if got := list.nodes[en].level; got != 2 {
		t.Errorf("EN at even level: level = %d; want 2", got)
	}
}

func TestResolveImplicitI2OddLevel(t *testing.T) {
	list := newRunList()
	l := list.alloc(run{pos: 0, length: 1, typ: L, level: 1})
	list.insertBefore(list.tail, l)
	an := list.alloc(run{pos: 1, length: 1, typ: AN, level: 1})
	list.insertBefore(list.tail, an)

	resolveImplicit(list)

	if got := list.nodes[l].level; got != 2 {
		t.Errorf("L at odd level: level = %d; want 2", got)
	}
	if got := list.nodes[an].level; got != 2 {
		t.Errorf("AN at odd level: level = %d; want 2", got)
	}
}

func TestMaxLevelFound(t *testing.T) {
	list := newRunList()
	a := list.alloc(run{pos: 0, length: 1, typ: L, level: 3})
	list.insertBefore(list.tail, a)
	b := list.alloc(run{pos: 1, length: 1, typ: R, level: 7})
	list.insertBefore(list.tail, b)

	if got := list.maxLevelFound(); got != 7 {
		t.Errorf("maxLevelFound() = %d; want 7", got)
	}
}
