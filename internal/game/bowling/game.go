// Package bowling provides the game controller: it owns the committed roll log
// and admits a roll only after the scoring engine accepts the resulting log.
package bowling

import (
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/bowling/internal/game/scoring"
)

// Renderer receives the frame list after every committed roll.
type Renderer interface {
	Render(frames []scoring.Frame)
}

// Reporter receives one human-readable message per rejected roll.
type Reporter interface {
	ReportError(message string)
}

// Game is a single player's game.
//
// A Game is not safe for concurrent use; it assumes one input stream.
type Game struct {
	id       uuid.UUID
	calc     scoring.Calculator
	renderer Renderer
	reporter Reporter
	logger   *zap.Logger

	rolls  []int
	frames []scoring.Frame
}

// New creates a Game with an empty roll log.
//
// Precondition: calc, renderer, reporter, and logger must be non-nil.
func New(calc scoring.Calculator, renderer Renderer, reporter Reporter, logger *zap.Logger) *Game {
	id := uuid.New()
	return &Game{
		id:       id,
		calc:     calc,
		renderer: renderer,
		reporter: reporter,
		logger:   logger.With(zap.String("game_id", id.String())),
	}
}

// ID returns the unique identifier of this game.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// KnockDownPins records a throw. The roll is scored against a copy of the log
// first; it is committed and rendered only if no frame fails.
//
// Postcondition: on rejection the committed log and cached frames are unchanged
// and exactly one message has been reported.
func (g *Game) KnockDownPins(pins int) {
	candidate := append(slices.Clone(g.rolls), pins)
	frames := g.calc.Calculate(candidate)

	if bad, failed := scoring.FirstError(frames); failed {
		g.logger.Warn("roll rejected",
			zap.Int("pins", pins),
			zap.Int("frame", bad.Number),
			zap.Int("committed_rolls", len(g.rolls)),
			zap.Error(bad.Err),
		)
		g.reporter.ReportError(bad.Err.Error())
		return
	}

	g.rolls = candidate
	g.frames = frames

	fields := []zap.Field{
		zap.Int("pins", pins),
		zap.Int("rolls", len(g.rolls)),
	}
	if score, ok := scoring.LastScore(frames); ok {
		fields = append(fields, zap.Int("score", score))
	}
	g.logger.Debug("roll committed", fields...)

	g.renderer.Render(frames)
}

// Repaint renders the last committed frames again without recalculating.
func (g *Game) Repaint() {
	g.renderer.Render(g.frames)
}

// Rolls returns a copy of the committed roll log.
func (g *Game) Rolls() []int {
	return slices.Clone(g.rolls)
}

// Frames returns a copy of the frames computed for the committed log.
func (g *Game) Frames() []scoring.Frame {
	return slices.Clone(g.frames)
}

// Score returns the cumulative score of the last resolved frame.
func (g *Game) Score() (int, bool) {
	return scoring.LastScore(g.frames)
}

// Over reports whether the final frame has been scored, after which every
// further roll is rejected as an overrun.
func (g *Game) Over() bool {
	if len(g.frames) == 0 {
		return false
	}
	last := g.frames[len(g.frames)-1]
	switch last.Kind {
	case scoring.KindFinal:
		_, ok := last.Score()
		return ok
	case scoring.KindNormal:
		return false
	default:
		return false
	}
}
