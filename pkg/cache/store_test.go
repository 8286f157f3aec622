package cache

import (
	"testing"

	"gobidi/pkg/bidi"
)

func TestStore_PutGet(t *testing.T) {
	tests := []struct {
		name        string
		key         string
		expectError bool
	}{
		{name: "valid auto key", key: "auto|hello", expectError: false},
		{name: "valid rtl key", key: "rtl|שלום", expectError: false},
		{name: "missing direction prefix", key: "hello", expectError: true},
		{name: "empty text", key: "ltr|", expectError: true},
		{name: "unknown direction", key: "sideways|hello", expectError: true},
	}

	result := bidi.Result{Levels: []bidi.Level{0, 0}, VisualOrder: []int{0, 1}, VisualText: []rune("hi")}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(1 << 20)
			err := s.Put(tt.key, result)
			if (err != nil) != tt.expectError {
				t.Errorf("Put() error = %v, expectError %v", err, tt.expectError)
			}
			if !tt.expectError {
				got, err := s.Get(tt.key)
				if err != nil {
					t.Fatalf("Get() error = %v", err)
				}
				if string(got.VisualText) != string(result.VisualText) {
					t.Errorf("Get() VisualText = %q, want %q", string(got.VisualText), string(result.VisualText))
				}
			}
		})
	}
}

func TestStore_GetMissing(t *testing.T) {
	s := New(1 << 20)
	_, err := s.Get("auto|nothing stored")
	if err != ErrNotFound {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestStore_QuotaExceeded(t *testing.T) {
	s := New(300) // entrySize(big) = 10*8 + 10*8 + 10*4 = 200: one fits, two do not
	big := bidi.Result{
		Levels:      make([]bidi.Level, 10),
		VisualOrder: make([]int, 10),
		VisualText:  make([]rune, 10),
	}
	if err := s.Put("auto|first", big); err != nil {
		t.Fatalf("first Put failed: %v", err)
	}
	if err := s.Put("auto|second", big); err != ErrQuotaExceeded {
		t.Errorf("second Put() error = %v, want ErrQuotaExceeded", err)
	}
}

func TestStore_PutOverwritesSizeAccounting(t *testing.T) {
	s := New(1 << 20)
	small := bidi.Result{Levels: []bidi.Level{0}, VisualOrder: []int{0}, VisualText: []rune("a")}
	big := bidi.Result{Levels: make([]bidi.Level, 100), VisualOrder: make([]int, 100), VisualText: make([]rune, 100)}

	if err := s.Put("auto|key", small); err != nil {
		t.Fatalf("Put small failed: %v", err)
	}
	if err := s.Put("auto|key", big); err != nil {
		t.Fatalf("Put big (overwrite) failed: %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (overwrite, not a new entry)", s.Len())
	}
	if s.usedBytes != entrySize(big) {
		t.Errorf("usedBytes = %d, want %d (old entry's size should be subtracted)", s.usedBytes, entrySize(big))
	}
}

func TestStore_Len(t *testing.T) {
	s := New(1 << 20)
	result := bidi.Result{Levels: []bidi.Level{0}, VisualOrder: []int{0}, VisualText: []rune("a")}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	s.Put("auto|one", result)
	s.Put("ltr|two", result)
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}
