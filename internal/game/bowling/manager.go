package bowling

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/bowling/internal/game/scoring"
)

// Manager tracks independent games, each owning its own roll log.
// All methods are safe for concurrent use; the games themselves are not.
type Manager struct {
	mu     sync.RWMutex
	calc   scoring.Calculator
	logger *zap.Logger
	games  map[uuid.UUID]*Game
}

// NewManager creates an empty Manager whose games score with calc.
//
// Precondition: calc and logger must be non-nil.
func NewManager(calc scoring.Calculator, logger *zap.Logger) *Manager {
	return &Manager{
		calc:   calc,
		logger: logger,
		games:  make(map[uuid.UUID]*Game),
	}
}

// Start creates and registers a new game.
//
// Precondition: renderer and reporter must be non-nil.
// Postcondition: the returned game is retrievable by its ID until End is called.
func (m *Manager) Start(renderer Renderer, reporter Reporter) *Game {
	g := New(m.calc, renderer, reporter, m.logger)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID()] = g

	m.logger.Info("game started",
		zap.String("game_id", g.ID().String()),
		zap.Int("active", len(m.games)),
	)
	return g
}

// Get returns the game with the given ID.
func (m *Manager) Get(id uuid.UUID) (*Game, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	return g, ok
}

// End removes a game from the registry.
//
// Postcondition: Returns an error if the game is not registered.
func (m *Manager) End(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.games[id]
	if !ok {
		return fmt.Errorf("game %s not found", id)
	}
	delete(m.games, id)

	fields := []zap.Field{
		zap.String("game_id", id.String()),
		zap.Int("rolls", len(g.rolls)),
		zap.Bool("over", g.Over()),
	}
	if score, ok := g.Score(); ok {
		fields = append(fields, zap.Int("score", score))
	}
	m.logger.Info("game ended", fields...)
	return nil
}

// Count returns the number of registered games.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
