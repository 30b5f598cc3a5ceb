package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/bowling/internal/game/scoring"
)

func TestLoggedCalculator_DelegatesAndLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	calc := scoring.NewLoggedCalculator(newCalc(), zap.New(core))

	rolls := []int{3, 4, 10}
	frames := calc.Calculate(rolls)
	assert.Equal(t, newCalc().Calculate(rolls), frames)

	entries := logs.FilterMessage("score calculated").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 3, fields["rolls"])
	assert.EqualValues(t, 3, fields["frames"])
	assert.EqualValues(t, 7, fields["score"])
	assert.NotContains(t, fields, "error")
}

func TestLoggedCalculator_LogsError(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	calc := scoring.NewLoggedCalculator(newCalc(), zap.New(core))

	frames := calc.Calculate([]int{5, 6})
	require.Len(t, frames, 1)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 1, fields["frame"])
	assert.Contains(t, fields["error"], "impossible throw")
	assert.NotContains(t, fields, "score")
}
