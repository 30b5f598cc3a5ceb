package bowling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/bowling/internal/game/scoring"
)

type recordingRenderer struct {
	renders [][]scoring.Frame
}

func (r *recordingRenderer) Render(frames []scoring.Frame) {
	r.renders = append(r.renders, frames)
}

type recordingReporter struct {
	messages []string
}

func (r *recordingReporter) ReportError(message string) {
	r.messages = append(r.messages, message)
}

type countingCalculator struct {
	inner scoring.Calculator
	calls int
}

func (c *countingCalculator) Calculate(rolls []int) []scoring.Frame {
	c.calls++
	return c.inner.Calculate(rolls)
}

func newTestGame() (*Game, *recordingRenderer, *recordingReporter) {
	renderer := &recordingRenderer{}
	reporter := &recordingReporter{}
	calc := scoring.NewStandardCalculator(scoring.DefaultTotalFrames)
	return New(calc, renderer, reporter, zap.NewNop()), renderer, reporter
}

func TestGame_CommitsValidRolls(t *testing.T) {
	g, renderer, reporter := newTestGame()

	for _, pins := range []int{4, 6, 5, 5, 10, 6} {
		g.KnockDownPins(pins)
	}

	assert.Equal(t, []int{4, 6, 5, 5, 10, 6}, g.Rolls())
	assert.Empty(t, reporter.messages)
	require.Len(t, renderer.renders, 6)
	assert.Equal(t, g.Frames(), renderer.renders[5])

	score, ok := g.Score()
	require.True(t, ok)
	assert.Equal(t, 35, score)
	assert.False(t, g.Over())
}

func TestGame_RejectsImpossibleThrow(t *testing.T) {
	g, renderer, reporter := newTestGame()
	g.KnockDownPins(3)
	g.KnockDownPins(4)
	g.KnockDownPins(5)
	before := g.Frames()

	g.KnockDownPins(6)

	assert.Equal(t, []int{3, 4, 5}, g.Rolls())
	assert.Equal(t, before, g.Frames())
	require.Len(t, reporter.messages, 1)
	assert.Contains(t, reporter.messages[0], "frame 2 roll is 6, remain 5")
	assert.Len(t, renderer.renders, 3, "rejected roll must not be rendered")

	g.KnockDownPins(5)
	assert.Equal(t, []int{3, 4, 5, 5}, g.Rolls())
}

func TestGame_RejectsOutOfRange(t *testing.T) {
	g, _, reporter := newTestGame()
	g.KnockDownPins(11)
	g.KnockDownPins(-5)

	assert.Empty(t, g.Rolls())
	assert.Empty(t, g.Frames())
	require.Len(t, reporter.messages, 2)
	assert.Contains(t, reporter.messages[0], "index 0: 11")
	assert.Contains(t, reporter.messages[1], "index 0: -5")
}

func TestGame_RejectsRollsAfterGameOver(t *testing.T) {
	g, _, reporter := newTestGame()
	for i := 0; i < 12; i++ {
		g.KnockDownPins(10)
	}
	require.True(t, g.Over())
	score, _ := g.Score()
	assert.Equal(t, 300, score)

	g.KnockDownPins(0)
	assert.Len(t, g.Rolls(), 12)
	require.Len(t, reporter.messages, 1)
	assert.Contains(t, reporter.messages[0], "extra rolls")
}

func TestGame_LogsRejection(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	g := New(scoring.NewStandardCalculator(10), &recordingRenderer{}, &recordingReporter{}, zap.New(core))

	g.KnockDownPins(7)
	g.KnockDownPins(7)

	committed := logs.FilterMessage("roll committed").All()
	require.Len(t, committed, 1)
	assert.Equal(t, g.ID().String(), committed[0].ContextMap()["game_id"])

	rejected := logs.FilterMessage("roll rejected").All()
	require.Len(t, rejected, 1)
	assert.Equal(t, zap.WarnLevel, rejected[0].Level)
	fields := rejected[0].ContextMap()
	assert.EqualValues(t, 7, fields["pins"])
	assert.EqualValues(t, 1, fields["frame"])
}

func TestGame_RepaintUsesCachedFrames(t *testing.T) {
	renderer := &recordingRenderer{}
	calc := &countingCalculator{inner: scoring.NewStandardCalculator(10)}
	g := New(calc, renderer, &recordingReporter{}, zap.NewNop())

	g.KnockDownPins(10)
	g.KnockDownPins(12)
	require.Equal(t, 2, calc.calls)

	g.Repaint()
	assert.Equal(t, 2, calc.calls, "repaint must not recalculate")
	require.Len(t, renderer.renders, 2)
	assert.Equal(t, renderer.renders[0], renderer.renders[1])
}

func TestGame_AccessorsReturnCopies(t *testing.T) {
	g, _, _ := newTestGame()
	g.KnockDownPins(3)

	rolls := g.Rolls()
	rolls[0] = 9
	assert.Equal(t, []int{3}, g.Rolls())

	frames := g.Frames()
	frames[0].Number = 42
	assert.Equal(t, 1, g.Frames()[0].Number)
}

// Property: repeated invalid input never changes the committed log.
func TestPropertyRejectionIsIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		renderer := &recordingRenderer{}
		reporter := &recordingReporter{}
		g := New(scoring.NewStandardCalculator(10), renderer, reporter, zap.NewNop())

		valid := rapid.SliceOfN(rapid.IntRange(0, 4), 0, 18).Draw(rt, "valid")
		for _, p := range valid {
			g.KnockDownPins(p)
		}
		committed := g.Rolls()
		frames := g.Frames()

		bad := rapid.OneOf(rapid.IntRange(-50, -1), rapid.IntRange(11, 50)).Draw(rt, "bad")
		times := rapid.IntRange(1, 5).Draw(rt, "times")
		for i := 0; i < times; i++ {
			g.KnockDownPins(bad)
		}

		assert.Equal(rt, committed, g.Rolls())
		assert.Equal(rt, frames, g.Frames())
		assert.Len(rt, reporter.messages, times)
		assert.Len(rt, renderer.renders, len(valid))
	})
}

// Property: the committed log never produces a failing frame.
func TestPropertyCommittedLogAlwaysScoresCleanly(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g, _, reporter := newTestGame()
		inputs := rapid.SliceOfN(rapid.IntRange(-1, 11), 0, 40).Draw(rt, "inputs")
		for _, p := range inputs {
			g.KnockDownPins(p)
		}

		frames := scoring.NewStandardCalculator(10).Calculate(g.Rolls())
		_, failed := scoring.FirstError(frames)
		assert.False(rt, failed)
		assert.Equal(rt, len(inputs), len(g.Rolls())+len(reporter.messages),
			"every input is either committed or reported")
	})
}
