package postgres

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"wellness-quiz-service/internal/domain"
)

// Leaderboard ranks users straight from users.stats. Scores are already
// persisted with each answer, so writes are no-ops and the ranking survives
// restarts without a separate store.
type Leaderboard struct {
	db *bun.DB
}

func NewLeaderboard(db *bun.DB) *Leaderboard {
	return &Leaderboard{db: db}
}

func (l *Leaderboard) AddScore(context.Context, string, int) error { return nil }

func (l *Leaderboard) SetScore(context.Context, string, int) error { return nil }

// Top orders by total score desc, then username.
func (l *Leaderboard) Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	var rows []struct {
		Username string `bun:"username"`
		Score    int64  `bun:"score"`
	}
	err := l.db.NewSelect().
		Model((*userRow)(nil)).
		ColumnExpr("u.username").
		ColumnExpr("COALESCE((u.stats->>'totalScore')::bigint, 0) AS score").
		Where("COALESCE((u.stats->>'totalScore')::bigint, 0) > 0").
		OrderExpr("score DESC").
		OrderExpr("u.username ASC").
		Limit(limit).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}
	entries := make([]domain.LeaderboardEntry, 0, len(rows))
	for i, r := range rows {
		entries = append(entries, domain.LeaderboardEntry{
			Rank:     int64(i + 1),
			Username: r.Username,
			Score:    r.Score,
		})
	}
	return entries, nil
}
