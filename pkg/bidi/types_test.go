package bidi

import "testing"

func TestTypePredicates(t *testing.T) {
	tests := []struct {
		typ     Type
		strong  bool
		neutral bool
		number  bool
	}{
		{L, true, false, false},
		{R, true, false, false},
		{AL, true, false, false},
		{EN, false, false, true},
		{AN, false, false, true},
		{WS, false, true, false},
		{ON, false, true, false},
		{B, false, true, false},
		{S, false, true, false},
		{ES, false, false, false},
	}
	for _, tc := range tests {
		if got := tc.typ.IsStrong(); got != tc.strong {
			t.Errorf("%s.IsStrong() = %v; want %v", tc.typ, got, tc.strong)
		}
		if got := tc.typ.IsNeutral(); got != tc.neutral {
			t.Errorf("%s.IsNeutral() = %v; want %v", tc.typ, got, tc.neutral)
		}
		if got := tc.typ.IsNumber(); got != tc.number {
			t.Errorf("%s.IsNumber() = %v; want %v", tc.typ, got, tc.number)
		}
	}
}

func TestExplicitOverrideDirection(t *testing.T) {
	tests := []struct {
		typ  Type
		want Type
	}{
		{LRO, L},
		{RLO, R},
		{LRE, ON},
		{RLE, ON},
		{PDF, ON},
		{L, ON},
	}
	for _, tc := range tests {
		if got := explicitOverrideDirection(tc.typ); got != tc.want {
			t.Errorf("explicitOverrideDirection(%s) = %s; want %s", tc.typ, got, tc.want)
		}
	}
}

func TestExplicitEmbeddingDirection(t *testing.T) {
	tests := []struct {
		typ  Type
		want Type
	}{
		{LRE, L},
		{LRO, L},
		{RLE, R},
		{RLO, R},
		{PDF, ON},
	}
	for _, tc := range tests {
		if got := explicitEmbeddingDirection(tc.typ); got != tc.want {
			t.Errorf("explicitEmbeddingDirection(%s) = %s; want %s", tc.typ, got, tc.want)
		}
	}
}
