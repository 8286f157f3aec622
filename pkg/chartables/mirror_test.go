package chartables

import "testing"

func TestMirror(t *testing.T) {
	tests := []struct {
		r     rune
		want  rune
		found bool
	}{
		{r: '(', want: ')', found: true},
		{r: ')', want: '(', found: true},
		{r: '«', want: '»', found: true},
		{r: 'a', want: 0, found: false},
	}

	for _, tt := range tests {
		got, ok := Mirror(tt.r)
		if ok != tt.found {
			t.Errorf("Mirror(%q) found = %v, want %v", tt.r, ok, tt.found)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("Mirror(%q) = %q, want %q", tt.r, got, tt.want)
		}
	}
}
