package bowling

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/bowling/internal/game/scoring"
)

func newTestManager(t *testing.T) *Manager {
	return NewManager(scoring.NewStandardCalculator(10), zaptest.NewLogger(t))
}

func TestManager_StartAndGet(t *testing.T) {
	m := newTestManager(t)
	g := m.Start(&recordingRenderer{}, &recordingReporter{})

	got, ok := m.Get(g.ID())
	require.True(t, ok)
	assert.Same(t, g, got)
	assert.Equal(t, 1, m.Count())
}

func TestManager_GamesOwnIndependentLogs(t *testing.T) {
	m := newTestManager(t)
	a := m.Start(&recordingRenderer{}, &recordingReporter{})
	b := m.Start(&recordingRenderer{}, &recordingReporter{})
	require.NotEqual(t, a.ID(), b.ID())

	a.KnockDownPins(10)
	b.KnockDownPins(3)
	b.KnockDownPins(4)

	assert.Equal(t, []int{10}, a.Rolls())
	assert.Equal(t, []int{3, 4}, b.Rolls())
}

func TestManager_End(t *testing.T) {
	m := newTestManager(t)
	g := m.Start(&recordingRenderer{}, &recordingReporter{})

	require.NoError(t, m.End(g.ID()))
	assert.Equal(t, 0, m.Count())
	_, ok := m.Get(g.ID())
	assert.False(t, ok)

	err := m.End(g.ID())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestManager_GetUnknown(t *testing.T) {
	m := newTestManager(t)
	_, ok := m.Get(uuid.New())
	assert.False(t, ok)
}

func TestManager_ConcurrentGames(t *testing.T) {
	m := NewManager(scoring.NewStandardCalculator(10), zap.NewNop())

	const n = 16
	var wg sync.WaitGroup
	ids := make([]uuid.UUID, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			g := m.Start(&recordingRenderer{}, &recordingReporter{})
			for j := 0; j < 12; j++ {
				g.KnockDownPins(10)
			}
			ids[i] = g.ID()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, n, m.Count())
	for _, id := range ids {
		g, ok := m.Get(id)
		require.True(t, ok)
		score, _ := g.Score()
		assert.Equal(t, 300, score)
	}
}
