// Package scoring provides the bowling scoring engine: a pure function that
// partitions a flat roll log into frames and resolves their cumulative scores.
package scoring

import (
	"errors"
	"fmt"
	"strings"
)

// MaxPins is the number of pins standing at the start of a frame.
const MaxPins = 10

// DefaultTotalFrames is the number of frames in a standard game.
const DefaultTotalFrames = 10

var (
	// ErrOutOfRange indicates a roll outside [0, MaxPins].
	ErrOutOfRange = errors.New("pins out of range")
	// ErrImpossibleThrow indicates a roll exceeding the pins currently standing.
	ErrImpossibleThrow = errors.New("impossible throw")
	// ErrOverrun indicates rolls supplied after the final frame was complete.
	ErrOverrun = errors.New("game overrun")
)

// Kind distinguishes the frame variants.
type Kind int

const (
	// KindNormal frames allow two tries and score strike/spare bonuses from later rolls.
	KindNormal Kind = iota + 1
	// KindFinal is the last frame: pins reset when cleared and the score is a flat sum.
	KindFinal
)

// String returns the display name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "Normal"
	case KindFinal:
		return "Final"
	default:
		return "Unknown"
	}
}

// Frame is the scoring record for one frame.
//
// Invariant: CumulativeScore is nil when Err is non-nil.
type Frame struct {
	// Number is the 1-based frame position.
	Number int
	// Kind is the frame variant.
	Kind Kind
	// Rolls are the rolls consumed by this frame, in order.
	Rolls []int
	// CumulativeScore is the running total through this frame; nil while pending.
	CumulativeScore *int
	// Err is set when this frame is a terminal validation failure.
	Err error
}

// Score returns the cumulative score and whether it has been resolved.
func (f Frame) Score() (int, bool) {
	if f.CumulativeScore == nil {
		return 0, false
	}
	return *f.CumulativeScore, true
}

// Pending reports whether the frame is valid but not yet scored.
func (f Frame) Pending() bool {
	return f.Err == nil && f.CumulativeScore == nil
}

// Failed reports whether the frame carries a validation error.
func (f Frame) Failed() bool {
	return f.Err != nil
}

// String returns a compact debugging form, e.g. "F01 [Normal] Rolls:[10] Score:- (ok)".
func (f Frame) String() string {
	rolls := make([]string, len(f.Rolls))
	for i, r := range f.Rolls {
		rolls[i] = fmt.Sprintf("%d", r)
	}
	score := "-"
	if s, ok := f.Score(); ok {
		score = fmt.Sprintf("%d", s)
	}
	status := "ok"
	if f.Err != nil {
		status = "error: " + f.Err.Error()
	}
	return fmt.Sprintf("F%02d [%s] Rolls:[%s] Score:%s (%s)",
		f.Number, f.Kind, strings.Join(rolls, ","), score, status)
}

// FirstError returns the first frame carrying an error.
//
// Postcondition: ok is false when no frame failed.
func FirstError(frames []Frame) (Frame, bool) {
	for _, f := range frames {
		if f.Err != nil {
			return f, true
		}
	}
	return Frame{}, false
}

// LastScore returns the cumulative score of the last resolved frame.
//
// Postcondition: ok is false when no frame has been scored.
func LastScore(frames []Frame) (int, bool) {
	for i := len(frames) - 1; i >= 0; i-- {
		if s, ok := frames[i].Score(); ok {
			return s, true
		}
	}
	return 0, false
}
