package translate

import (
	"context"
	"fmt"
)

// Translator converts English text to Japanese. Implementations receive no
// cross-chunk context: every call is independent and the pipeline invokes
// them strictly in chunk index order. Substituting a different backend must
// not require changes to chunking, sanitization, or assembly.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Result pairs a chunk index with its sanitized translation. Each result is
// produced once and consumed exactly once by the assembler.
type Result struct {
	Index int
	Text  string
}

// Reason classifies a failed model call.
type Reason string

const (
	ReasonTimeout     Reason = "timeout"
	ReasonUnavailable Reason = "model-unavailable"
	ReasonModelError  Reason = "model-error"
)

// Error reports a failed model call. The failure is fatal for the run; no
// automatic retry happens because resubmitting a long chunk to a local model
// is expensive, so retry policy stays with the user (rerun, use
// --no-translate, or shrink the chunk size).
type Error struct {
	Reason Reason
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model call failed (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("model call failed (%s)", e.Reason)
}

func (e *Error) Unwrap() error { return e.Err }
