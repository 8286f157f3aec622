package charset

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name        string
		csName      string
		expectError bool
	}{
		{name: "utf8", csName: "utf8", expectError: false},
		{name: "iso-8859-6", csName: "iso-8859-6", expectError: false},
		{name: "iso-8859-8", csName: "iso-8859-8", expectError: false},
		{name: "cp1255", csName: "cp1255", expectError: false},
		{name: "cp1256", csName: "cp1256", expectError: false},
		{name: "caprtl", csName: "caprtl", expectError: false},
		{name: "unknown", csName: "ebcdic", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs, err := Lookup(tt.csName)
			if (err != nil) != tt.expectError {
				t.Fatalf("Lookup() error = %v, expectError %v", err, tt.expectError)
			}
			if !tt.expectError && cs.Name() != tt.csName {
				t.Errorf("Name() = %q, want %q", cs.Name(), tt.csName)
			}
		})
	}
}

func TestUTF8RoundTrip(t *testing.T) {
	cs, _ := Lookup("utf8")
	text, err := cs.Decode("héllo")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	out, err := cs.Encode(text)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if out != "héllo" {
		t.Errorf("round trip = %q, want %q", out, "héllo")
	}
}

func TestISO8859_6RoundTrip(t *testing.T) {
	cs, _ := Lookup("iso-8859-6")
	text, err := cs.Decode("\xc7\xc8")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if string(text) != "اب" {
		t.Errorf("Decode() = %q", string(text))
	}
	out, err := cs.Encode(text)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if out != "\xc7\xc8" {
		t.Errorf("Encode() = %x, want %x", out, "\xc7\xc8")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	want := map[string]bool{"utf8": true, "iso-8859-6": true, "iso-8859-8": true, "cp1255": true, "cp1256": true, "caprtl": true}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %d entries", names, len(want))
	}
	for _, n := range names {
		if !want[n] {
			t.Errorf("Names() contains unexpected %q", n)
		}
	}
}
