package memory

import (
	"sync"

	"wellness-quiz-service/internal/app"
)

// GameStore is an in-memory implementation of app.GameStore.
type GameStore struct {
	mu    sync.RWMutex
	games map[string]*app.Game
}

func NewGameStore() *GameStore {
	return &GameStore{
		games: make(map[string]*app.Game),
	}
}

func (s *GameStore) Put(g *app.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[g.ID()] = g
}

func (s *GameStore) Get(id string) (*app.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.games[id]
	return g, ok
}

func (s *GameStore) DeleteIfOver(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[id]
	if !ok {
		return
	}
	if g.IsOver() {
		delete(s.games, id)
	}
}

func (s *GameStore) Sweep(stale func(*app.Game) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, g := range s.games {
		if stale(g) {
			delete(s.games, id)
			removed++
		}
	}
	return removed
}
