package trace

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestTracerEventWritesOneLinePerCall(t *testing.T) {
	var buf bytes.Buffer
	tr := New(&buf)

	tr.Event("explicit", "L@0[0:3]")
	tr.Event("weak", "L@0[0:3]")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2", len(lines))
	}

	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("line 0 is not valid JSON: %v", err)
	}
	if first["pass"] != "explicit" {
		t.Errorf("pass = %v, want %q", first["pass"], "explicit")
	}
	if first["runs"] != "L@0[0:3]" {
		t.Errorf("runs = %v, want %q", first["runs"], "L@0[0:3]")
	}
	if _, ok := first["trace_id"]; !ok {
		t.Error("missing trace_id field")
	}
}

func TestTracerEventsShareTraceID(t *testing.T) {
	var buf bytes.Buffer
	tr := New(&buf)
	tr.Event("explicit", "a")
	tr.Event("weak", "b")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	var ids []string
	for _, line := range lines {
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON line: %v", err)
		}
		ids = append(ids, m["trace_id"].(string))
	}
	if ids[0] != ids[1] {
		t.Errorf("trace_id differs across events from the same Tracer: %v", ids)
	}
}

func TestNewTracersGetDistinctIDs(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	tr1 := New(&buf1)
	tr2 := New(&buf2)
	tr1.Event("explicit", "a")
	tr2.Event("explicit", "a")

	var m1, m2 map[string]any
	json.Unmarshal(buf1.Bytes(), &m1)
	json.Unmarshal(buf2.Bytes(), &m2)
	if m1["trace_id"] == m2["trace_id"] {
		t.Error("two distinct Tracers produced the same trace_id")
	}
}
