package memory

import (
	"context"
	"sort"
	"sync"

	"wellness-quiz-service/internal/domain"
)

// Leaderboard keeps total scores in a map and sorts on read.
type Leaderboard struct {
	mu     sync.RWMutex
	scores map[string]int64
}

func NewLeaderboard() *Leaderboard {
	return &Leaderboard{scores: make(map[string]int64)}
}

func (l *Leaderboard) AddScore(_ context.Context, username string, points int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.scores[username] += int64(points)
	return nil
}

func (l *Leaderboard) SetScore(_ context.Context, username string, score int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.scores[username] = int64(score)
	return nil
}

// Top orders by score desc, then username.
func (l *Leaderboard) Top(_ context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	l.mu.RLock()
	entries := make([]domain.LeaderboardEntry, 0, len(l.scores))
	for name, score := range l.scores {
		entries = append(entries, domain.LeaderboardEntry{Username: name, Score: score})
	}
	l.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Username < entries[j].Username
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = int64(i + 1)
	}
	return entries, nil
}
