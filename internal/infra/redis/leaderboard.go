package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"wellness-quiz-service/internal/domain"
)

const leaderboardKey = "quiz:leaderboard"

// Leaderboard ranks users in a sorted set keyed by username.
type Leaderboard struct {
	client *redis.Client
}

func NewLeaderboard(client *redis.Client) *Leaderboard {
	return &Leaderboard{client: client}
}

func (l *Leaderboard) AddScore(ctx context.Context, username string, points int) error {
	return l.client.ZIncrBy(ctx, leaderboardKey, float64(points), username).Err()
}

// SetScore overwrites a user's total. Used when seeding.
func (l *Leaderboard) SetScore(ctx context.Context, username string, score int) error {
	return l.client.ZAdd(ctx, leaderboardKey, redis.Z{Score: float64(score), Member: username}).Err()
}

func (l *Leaderboard) Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	results, err := l.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]domain.LeaderboardEntry, 0, len(results))
	for i, z := range results {
		name, _ := z.Member.(string)
		entries = append(entries, domain.LeaderboardEntry{
			Rank:     int64(i + 1),
			Username: name,
			Score:    int64(z.Score),
		})
	}
	return entries, nil
}
