// Package trace provides pass-by-pass tracing of a bidi analysis run, on
// top of zerolog, gated by the debug toggle spec.md's external interface
// calls for.
package trace

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Tracer emits one structured log event per analyser pass. It satisfies
// pkg/bidi.Tracer structurally; this package never imports pkg/bidi.
type Tracer struct {
	logger zerolog.Logger
	id     uuid.UUID
}

// New returns a Tracer writing to w, tagging every event with a fresh trace
// ID so concurrent analyses sharing one log sink (see pkg/bidi's §5
// batch-mode note) can be told apart.
func New(w io.Writer) *Tracer {
	return &Tracer{
		logger: zerolog.New(w).With().Timestamp().Logger(),
		id:     uuid.New(),
	}
}

// NewStderr is the common case: a Tracer writing to os.Stderr.
func NewStderr() *Tracer {
	return New(os.Stderr)
}

// Event records one pipeline pass's result.
func (t *Tracer) Event(pass, detail string) {
	t.logger.Debug().
		Str("trace_id", t.id.String()).
		Str("pass", pass).
		Str("runs", detail).
		Msg("bidi pass complete")
}
