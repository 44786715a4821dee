package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"wellness-quiz-service/internal/domain"
)

// Storage implements app.Storage on Postgres through bun.
type Storage struct {
	db *bun.DB
}

// Open connects bun to dsn.
func Open(dsn string) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return bun.NewDB(sqldb, pgdialect.New())
}

func NewStorage(db *bun.DB) *Storage {
	return &Storage{db: db}
}

func (s *Storage) CreateUser(ctx context.Context, u domain.User, lifelines domain.Lifelines, avatars []string) (domain.User, error) {
	row := userRowFrom(u)
	row.ID = 0
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(&row).Exec(ctx); err != nil {
			if isUniqueViolation(err) {
				return domain.ErrUserExists
			}
			return fmt.Errorf("insert user: %w", err)
		}
		l := lifelinesRow{
			UserID:          row.ID,
			FiftyFifty:      lifelines.FiftyFifty,
			AskExpert:       lifelines.AskExpert,
			LastRefreshedAt: lifelines.LastRefreshedAt,
		}
		if _, err := tx.NewInsert().Model(&l).Exec(ctx); err != nil {
			return fmt.Errorf("insert lifelines: %w", err)
		}
		if len(avatars) == 0 {
			return nil
		}
		rows := make([]avatarRow, 0, len(avatars))
		for _, id := range avatars {
			rows = append(rows, avatarRow{UserID: row.ID, AvatarID: id, UnlockedAt: row.CreatedAt})
		}
		if _, err := tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
			return fmt.Errorf("insert avatars: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}
	return row.toDomain(), nil
}

func (s *Storage) GetUser(ctx context.Context, id int64) (domain.User, error) {
	var row userRow
	err := s.db.NewSelect().Model(&row).Where("u.id = ?", id).Scan(ctx)
	if err != nil {
		return domain.User{}, notFound(err, domain.ErrUserNotFound)
	}
	return row.toDomain(), nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	var row userRow
	err := s.db.NewSelect().Model(&row).Where("u.username = ?", username).Scan(ctx)
	if err != nil {
		return domain.User{}, notFound(err, domain.ErrUserNotFound)
	}
	return row.toDomain(), nil
}

// UpdateUser locks the row with SELECT ... FOR UPDATE for the duration of fn.
func (s *Storage) UpdateUser(ctx context.Context, id int64, fn func(*domain.User) error) (domain.User, error) {
	var out domain.User
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var err error
		out, err = updateUserTx(ctx, tx, id, fn)
		return err
	})
	return out, err
}

func updateUserTx(ctx context.Context, tx bun.Tx, id int64, fn func(*domain.User) error) (domain.User, error) {
	var row userRow
	if err := tx.NewSelect().Model(&row).Where("u.id = ?", id).For("UPDATE").Scan(ctx); err != nil {
		return domain.User{}, notFound(err, domain.ErrUserNotFound)
	}
	u := row.toDomain()
	if err := fn(&u); err != nil {
		return domain.User{}, err
	}
	u.ID = id
	next := userRowFrom(u)
	if _, err := tx.NewUpdate().Model(&next).WherePK().Exec(ctx); err != nil {
		return domain.User{}, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

func (s *Storage) GetLifelines(ctx context.Context, userID int64) (domain.Lifelines, error) {
	var row lifelinesRow
	if err := s.db.NewSelect().Model(&row).Where("ul.user_id = ?", userID).Scan(ctx); err != nil {
		return domain.Lifelines{}, notFound(err, domain.ErrUserNotFound)
	}
	return row.toDomain(), nil
}

// ConsumeLifeline decrements in a single guarded UPDATE so counters never go negative.
func (s *Storage) ConsumeLifeline(ctx context.Context, userID int64, kind domain.LifelineKind) (domain.Lifelines, error) {
	var col string
	switch kind {
	case domain.FiftyFifty:
		col = "fifty_fifty"
	case domain.AskExpert:
		col = "ask_expert"
	default:
		return domain.Lifelines{}, domain.ErrInvalidInput
	}

	var row lifelinesRow
	res, err := s.db.NewUpdate().
		Model(&row).
		Set("? = ? - 1", bun.Ident(col), bun.Ident(col)).
		Where("user_id = ?", userID).
		Where("? > 0", bun.Ident(col)).
		Returning("*").
		Exec(ctx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return domain.Lifelines{}, fmt.Errorf("consume lifeline: %w", err)
	}
	if err == nil {
		if n, _ := res.RowsAffected(); n > 0 {
			return row.toDomain(), nil
		}
	}

	current, err := s.GetLifelines(ctx, userID)
	if err != nil {
		return domain.Lifelines{}, err
	}
	return current, domain.ErrNoLifelines
}

// RefreshLifelines guards the top-up with last_refreshed_at <= due, so two
// requests racing past the refresh boundary reset the counters only once.
func (s *Storage) RefreshLifelines(ctx context.Context, userID int64, count int, due, at time.Time) (domain.Lifelines, error) {
	var row lifelinesRow
	res, err := s.db.NewUpdate().
		Model(&row).
		Set("fifty_fifty = ?", count).
		Set("ask_expert = ?", count).
		Set("last_refreshed_at = ?", at).
		Where("user_id = ?", userID).
		Where("last_refreshed_at <= ?", due).
		Returning("*").
		Exec(ctx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return domain.Lifelines{}, fmt.Errorf("refresh lifelines: %w", err)
	}
	if err == nil {
		if n, _ := res.RowsAffected(); n > 0 {
			return row.toDomain(), nil
		}
	}
	return s.GetLifelines(ctx, userID)
}

// RecordAnswer updates the user and inserts the progress row in one transaction.
func (s *Storage) RecordAnswer(ctx context.Context, p domain.GameProgress, fn func(*domain.User) error) (domain.User, error) {
	var out domain.User
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		u, err := updateUserTx(ctx, tx, p.UserID, fn)
		if err != nil {
			return err
		}
		row := progressRow{
			UserID:            p.UserID,
			QuestionID:        p.QuestionID,
			AnsweredCorrectly: p.AnsweredCorrectly,
			Difficulty:        p.Difficulty,
			Topic:             p.Topic,
			AnsweredAt:        p.AnsweredAt,
		}
		if _, err := tx.NewInsert().Model(&row).Exec(ctx); err != nil {
			return fmt.Errorf("save progress: %w", err)
		}
		out = u
		return nil
	})
	return out, err
}

func (s *Storage) ListProgress(ctx context.Context, userID int64) ([]domain.GameProgress, error) {
	var rows []progressRow
	if err := s.db.NewSelect().Model(&rows).Where("gp.user_id = ?", userID).Order("gp.id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	out := make([]domain.GameProgress, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.GameProgress{
			UserID:            r.UserID,
			QuestionID:        r.QuestionID,
			AnsweredCorrectly: r.AnsweredCorrectly,
			Difficulty:        r.Difficulty,
			Topic:             r.Topic,
			AnsweredAt:        r.AnsweredAt,
		})
	}
	return out, nil
}

func (s *Storage) ListAchievements(ctx context.Context, userID int64) ([]domain.UserAchievement, error) {
	var rows []achievementRow
	if err := s.db.NewSelect().Model(&rows).Where("ua.user_id = ?", userID).Order("ua.id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	out := make([]domain.UserAchievement, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.UserAchievement{UserID: r.UserID, AchievementID: r.AchievementID, UnlockedAt: r.UnlockedAt})
	}
	return out, nil
}

// UnlockAchievement relies on the (user_id, achievement_id) unique constraint.
func (s *Storage) UnlockAchievement(ctx context.Context, userID int64, achievementID string, at time.Time) (bool, error) {
	row := achievementRow{UserID: userID, AchievementID: achievementID, UnlockedAt: at}
	res, err := s.db.NewInsert().
		Model(&row).
		On("CONFLICT (user_id, achievement_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("unlock achievement: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Storage) ListAvatars(ctx context.Context, userID int64) ([]string, error) {
	var ids []string
	err := s.db.NewSelect().
		Model((*avatarRow)(nil)).
		Column("avatar_id").
		Where("user_id = ?", userID).
		Order("id ASC").
		Scan(ctx, &ids)
	if err != nil {
		return nil, fmt.Errorf("list avatars: %w", err)
	}
	return ids, nil
}

func (s *Storage) PurchaseAvatar(ctx context.Context, userID int64, avatarID string, cost int, at time.Time) (domain.User, error) {
	var out domain.User
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var row userRow
		if err := tx.NewSelect().Model(&row).Where("u.id = ?", userID).For("UPDATE").Scan(ctx); err != nil {
			return notFound(err, domain.ErrUserNotFound)
		}
		owned, err := tx.NewSelect().
			Model((*avatarRow)(nil)).
			Where("user_id = ?", userID).
			Where("avatar_id = ?", avatarID).
			Exists(ctx)
		if err != nil {
			return err
		}
		if owned {
			out = row.toDomain()
			return nil
		}
		if row.Coins < cost {
			return domain.ErrInsufficientCoins
		}

		row.Coins -= cost
		if _, err := tx.NewUpdate().Model(&row).Column("coins").WherePK().Exec(ctx); err != nil {
			return fmt.Errorf("deduct coins: %w", err)
		}
		av := avatarRow{UserID: userID, AvatarID: avatarID, UnlockedAt: at}
		if _, err := tx.NewInsert().Model(&av).Exec(ctx); err != nil {
			return fmt.Errorf("grant avatar: %w", err)
		}
		out = row.toDomain()
		return nil
	})
	return out, err
}

// SaveQuestions upserts the bank, keeping slice order in position.
func (s *Storage) SaveQuestions(ctx context.Context, questions []domain.Question) error {
	if len(questions) == 0 {
		return nil
	}
	rows := make([]questionRow, 0, len(questions))
	for i, q := range questions {
		rows = append(rows, questionRow{ID: q.ID, Position: i, Data: q})
	}
	_, err := s.db.NewInsert().
		Model(&rows).
		On("CONFLICT (id) DO UPDATE").
		Set("position = EXCLUDED.position").
		Set("data = EXCLUDED.data").
		Exec(ctx)
	return err
}

func notFound(err, sentinel error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return sentinel
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	return errors.As(err, &pgErr) && pgErr.Field('C') == "23505"
}
