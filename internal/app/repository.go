package app

import (
	"context"
	"time"

	"wellness-quiz-service/internal/domain"
)

// Storage persists users and the per-user rows hanging off them (lifelines,
// answer history, achievements, owned avatars).
type Storage interface {
	// CreateUser inserts u together with its lifelines and owned avatars.
	// It returns domain.ErrUserExists when the username is taken.
	CreateUser(ctx context.Context, u domain.User, lifelines domain.Lifelines, avatars []string) (domain.User, error)
	GetUser(ctx context.Context, id int64) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
	// UpdateUser applies fn to the stored user atomically and persists the result.
	UpdateUser(ctx context.Context, id int64, fn func(*domain.User) error) (domain.User, error)

	GetLifelines(ctx context.Context, userID int64) (domain.Lifelines, error)
	// ConsumeLifeline decrements one counter, failing with domain.ErrNoLifelines at zero.
	ConsumeLifeline(ctx context.Context, userID int64, kind domain.LifelineKind) (domain.Lifelines, error)
	// RefreshLifelines resets both counters to count and stamps at, but only
	// when they were last refreshed at or before due. Otherwise the stored
	// counters come back unchanged.
	RefreshLifelines(ctx context.Context, userID int64, count int, due, at time.Time) (domain.Lifelines, error)

	// RecordAnswer applies fn to the user and appends p to the answer history
	// as one unit. Either both are stored or neither is.
	RecordAnswer(ctx context.Context, p domain.GameProgress, fn func(*domain.User) error) (domain.User, error)
	ListProgress(ctx context.Context, userID int64) ([]domain.GameProgress, error)

	ListAchievements(ctx context.Context, userID int64) ([]domain.UserAchievement, error)
	// UnlockAchievement reports false when the achievement was already unlocked.
	UnlockAchievement(ctx context.Context, userID int64, achievementID string, at time.Time) (bool, error)

	ListAvatars(ctx context.Context, userID int64) ([]string, error)
	// PurchaseAvatar deducts cost and records ownership in one step. Owning the
	// avatar already is a no-op.
	PurchaseAvatar(ctx context.Context, userID int64, avatarID string, cost int, at time.Time) (domain.User, error)
}

// SessionStore keeps login sessions keyed by an opaque token.
type SessionStore interface {
	Create(ctx context.Context, userID int64) (string, error)
	// Get returns domain.ErrUnauthenticated for unknown or expired tokens.
	Get(ctx context.Context, token string) (int64, error)
	Delete(ctx context.Context, token string) error
}

// QuestionLoader fetches the question bank from a backing store.
type QuestionLoader interface {
	LoadQuestions(ctx context.Context) ([]domain.Question, error)
}

// QuestionRepository serves the question bank, usually from a cache.
type QuestionRepository interface {
	Questions(ctx context.Context) ([]domain.Question, error)
}

// Leaderboard ranks users by total score.
type Leaderboard interface {
	AddScore(ctx context.Context, username string, points int) error
	Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

// GameStore abstracts where live game sessions are kept.
type GameStore interface {
	Put(g *Game)
	Get(id string) (*Game, bool)
	DeleteIfOver(id string)
	// Sweep deletes every game for which stale returns true and reports how many went.
	Sweep(stale func(*Game) bool) int
}
