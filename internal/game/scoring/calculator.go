package scoring

import "fmt"

// Calculator turns a roll log into frame records.
//
// Implementations MUST NOT mutate rolls and MUST be safe for concurrent use
// on independent logs.
type Calculator interface {
	// Calculate returns the frames described by rolls.
	//
	// Postcondition: at most one frame carries Err and, if present, it is last.
	Calculate(rolls []int) []Frame
}

// StandardCalculator scores a game of ten-pin bowling with a configurable
// number of frames.
type StandardCalculator struct {
	totalFrames int
}

// NewStandardCalculator creates a calculator for games of totalFrames frames.
//
// Precondition: totalFrames >= 1.
func NewStandardCalculator(totalFrames int) *StandardCalculator {
	if totalFrames < 1 {
		panic(fmt.Sprintf("scoring: NewStandardCalculator precondition violated: totalFrames must be >= 1, got %d", totalFrames))
	}
	return &StandardCalculator{totalFrames: totalFrames}
}

// TotalFrames returns the number of frames in a game, including the final frame.
func (c *StandardCalculator) TotalFrames() int {
	return c.totalFrames
}

// Calculate scores rolls frame by frame, stopping at the first frame that
// needs more input or fails validation.
//
// Postcondition: never panics; every failure is reported through Frame.Err.
func (c *StandardCalculator) Calculate(rolls []int) []Frame {
	if f, bad := checkRange(rolls); bad {
		return []Frame{f}
	}

	s := &scan{rolls: rolls}
	frames := make([]Frame, 0, c.totalFrames+1)

	for n := 1; n < c.totalFrames; n++ {
		f, more := s.normalFrame(n)
		frames = append(frames, f)
		if !more {
			return frames
		}
	}

	f, more := s.finalFrame(c.totalFrames)
	frames = append(frames, f)
	if !more {
		return frames
	}

	if extra := len(rolls) - s.pos; extra > 0 {
		frames = append(frames, Frame{
			Number: c.totalFrames + 1,
			Kind:   KindNormal,
			Err:    fmt.Errorf("%w: extra rolls detected beyond the final frame (%d extra)", ErrOverrun, extra),
		})
	}
	return frames
}

// checkRange rejects the whole log when any roll lies outside [0, MaxPins].
func checkRange(rolls []int) (Frame, bool) {
	for i, r := range rolls {
		if r < 0 || r > MaxPins {
			return Frame{
				Number: 1,
				Kind:   KindNormal,
				Err:    fmt.Errorf("%w: invalid input detected at index %d: %d (pins must be 0-%d)", ErrOutOfRange, i, r, MaxPins),
			}, true
		}
	}
	return Frame{}, false
}

// scan is the cursor state of a single Calculate call.
type scan struct {
	rolls []int
	pos   int
	total int
}

func (s *scan) exhausted() bool {
	return s.pos >= len(s.rolls)
}

func (s *scan) next() int {
	r := s.rolls[s.pos]
	s.pos++
	return r
}

// bonus returns the sum of the next n unconsumed rolls.
//
// Postcondition: ok is false when fewer than n rolls remain.
func (s *scan) bonus(n int) (int, bool) {
	if s.pos+n > len(s.rolls) {
		return 0, false
	}
	sum := 0
	for _, r := range s.rolls[s.pos : s.pos+n] {
		sum += r
	}
	return sum, true
}

func (s *scan) resolve(f *Frame, value int) {
	s.total += value
	score := s.total
	f.CumulativeScore = &score
}

// normalFrame consumes up to two rolls for frame n.
//
// Postcondition: more is false when scoring must stop after this frame,
// either because the log ran out mid-frame or the frame failed.
func (s *scan) normalFrame(n int) (f Frame, more bool) {
	f = Frame{Number: n, Kind: KindNormal}
	standing := MaxPins

	for try := 0; try < 2; try++ {
		if s.exhausted() {
			return f, false
		}
		roll := s.next()
		f.Rolls = append(f.Rolls, roll)
		if roll > standing {
			f.Err = fmt.Errorf("%w: frame %d roll is %d, remain %d", ErrImpossibleThrow, n, roll, standing)
			return f, false
		}
		standing -= roll
		if standing == 0 {
			break
		}
	}

	switch {
	case len(f.Rolls) == 1:
		if b, ok := s.bonus(2); ok {
			s.resolve(&f, MaxPins+b)
		}
	case standing == 0:
		if b, ok := s.bonus(1); ok {
			s.resolve(&f, MaxPins+b)
		}
	default:
		s.resolve(&f, MaxPins-standing)
	}
	return f, true
}

// finalFrame consumes up to three rolls for the last frame. Pins are reset
// whenever they are cleared, which is the only way to earn a third throw.
func (s *scan) finalFrame(n int) (f Frame, more bool) {
	f = Frame{Number: n, Kind: KindFinal}
	standing := MaxPins

	for try := 0; try < 3 && !s.exhausted(); try++ {
		roll := s.next()
		f.Rolls = append(f.Rolls, roll)
		if roll > standing {
			f.Err = fmt.Errorf("%w: frame %d roll %d is %d, remain %d", ErrImpossibleThrow, n, try+1, roll, standing)
			return f, false
		}
		standing -= roll
		if standing == 0 {
			standing = MaxPins
			continue
		}
		if try == 1 && f.Rolls[0] != MaxPins {
			break
		}
	}

	if finalFinished(f.Rolls) {
		sum := 0
		for _, r := range f.Rolls {
			sum += r
		}
		s.resolve(&f, sum)
	}
	return f, true
}

func finalFinished(rolls []int) bool {
	switch len(rolls) {
	case 3:
		return true
	case 2:
		return rolls[0]+rolls[1] < MaxPins
	default:
		return false
	}
}
