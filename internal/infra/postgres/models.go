package postgres

import (
	"time"

	"github.com/uptrace/bun"

	"wellness-quiz-service/internal/domain"
)

type userRow struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           int64            `bun:"id,pk,autoincrement"`
	Username     string           `bun:"username,notnull,unique"`
	PasswordHash []byte           `bun:"password_hash,notnull"`
	Level        int              `bun:"level,notnull,default:1"`
	Experience   int              `bun:"experience,notnull,default:0"`
	Coins        int              `bun:"coins,notnull,default:0"`
	AvatarID     string           `bun:"avatar_id,notnull,default:'default'"`
	Stats        domain.UserStats `bun:"stats,type:jsonb,notnull"`
	CreatedAt    time.Time        `bun:"created_at,notnull,default:current_timestamp"`
	LastLoginAt  time.Time        `bun:"last_login_at,notnull,default:current_timestamp"`
}

func (r userRow) toDomain() domain.User {
	stats := r.Stats
	if stats.TopicsExpertise == nil {
		stats.TopicsExpertise = make(map[string]int)
	}
	return domain.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		Level:        r.Level,
		Experience:   r.Experience,
		Coins:        r.Coins,
		AvatarID:     r.AvatarID,
		CreatedAt:    r.CreatedAt,
		LastLoginAt:  r.LastLoginAt,
		Stats:        stats,
	}
}

func userRowFrom(u domain.User) userRow {
	return userRow{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Level:        u.Level,
		Experience:   u.Experience,
		Coins:        u.Coins,
		AvatarID:     u.AvatarID,
		Stats:        u.Stats,
		CreatedAt:    u.CreatedAt,
		LastLoginAt:  u.LastLoginAt,
	}
}

type lifelinesRow struct {
	bun.BaseModel `bun:"table:user_lifelines,alias:ul"`

	UserID          int64     `bun:"user_id,pk"`
	FiftyFifty      int       `bun:"fifty_fifty,notnull"`
	AskExpert       int       `bun:"ask_expert,notnull"`
	LastRefreshedAt time.Time `bun:"last_refreshed_at,notnull"`
}

func (r lifelinesRow) toDomain() domain.Lifelines {
	return domain.Lifelines{FiftyFifty: r.FiftyFifty, AskExpert: r.AskExpert, LastRefreshedAt: r.LastRefreshedAt}
}

type progressRow struct {
	bun.BaseModel `bun:"table:game_progress,alias:gp"`

	ID                int64             `bun:"id,pk,autoincrement"`
	UserID            int64             `bun:"user_id,notnull"`
	QuestionID        string            `bun:"question_id,notnull"`
	AnsweredCorrectly bool              `bun:"answered_correctly,notnull"`
	Difficulty        domain.Difficulty `bun:"difficulty,notnull"`
	Topic             string            `bun:"topic,notnull"`
	AnsweredAt        time.Time         `bun:"answered_at,notnull"`
}

type achievementRow struct {
	bun.BaseModel `bun:"table:user_achievements,alias:ua"`

	ID            int64     `bun:"id,pk,autoincrement"`
	UserID        int64     `bun:"user_id,notnull,unique:user_achievement"`
	AchievementID string    `bun:"achievement_id,notnull,unique:user_achievement"`
	UnlockedAt    time.Time `bun:"unlocked_at,notnull"`
}

type avatarRow struct {
	bun.BaseModel `bun:"table:user_avatars,alias:uav"`

	ID         int64     `bun:"id,pk,autoincrement"`
	UserID     int64     `bun:"user_id,notnull,unique:user_avatar"`
	AvatarID   string    `bun:"avatar_id,notnull,unique:user_avatar"`
	UnlockedAt time.Time `bun:"unlocked_at,notnull"`
}

// questionRow stores one bank question as JSONB; position keeps bank order.
type questionRow struct {
	bun.BaseModel `bun:"table:questions,alias:q"`

	ID       string          `bun:"id,pk"`
	Position int             `bun:"position,notnull"`
	Data     domain.Question `bun:"data,type:jsonb,notnull"`
}

// Model describes one table for migrations.
type Model struct {
	Table     string
	Model     interface{}
	UserOwned bool
}

// Models lists every table in creation order.
func Models() []Model {
	return []Model{
		{Table: "users", Model: (*userRow)(nil)},
		{Table: "user_lifelines", Model: (*lifelinesRow)(nil), UserOwned: true},
		{Table: "game_progress", Model: (*progressRow)(nil), UserOwned: true},
		{Table: "user_achievements", Model: (*achievementRow)(nil), UserOwned: true},
		{Table: "user_avatars", Model: (*avatarRow)(nil), UserOwned: true},
		{Table: "questions", Model: (*questionRow)(nil)},
	}
}
