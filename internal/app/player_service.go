package app

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"wellness-quiz-service/internal/content"
	"wellness-quiz-service/internal/domain"
	"wellness-quiz-service/internal/game"
	"wellness-quiz-service/internal/logger"
	"wellness-quiz-service/internal/metrics"
)

const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

// PlayerService contains the per-user quiz use cases: profile, answering,
// lifelines, achievements, avatars and the leaderboard.
type PlayerService struct {
	store     Storage
	questions QuestionRepository
	board     Leaderboard
	log       *logger.Logger
	now       func() time.Time
	rnd       *rand.Rand
}

func NewPlayerService(store Storage, questions QuestionRepository, board Leaderboard, log *logger.Logger, opts ...Option) *PlayerService {
	o := buildOptions(opts)
	return &PlayerService{
		store:     store,
		questions: questions,
		board:     board,
		log:       log.With(zap.String("component", "player")),
		now:       o.now,
		rnd:       o.rnd,
	}
}

// Profile assembles the user, unlocked achievements and lifelines concurrently.
func (s *PlayerService) Profile(ctx context.Context, userID int64) (domain.UserProfile, error) {
	var (
		user         domain.User
		achievements []domain.AchievementStatus
		lifelines    domain.Lifelines
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.store.GetUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		achievements, err = s.Achievements(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		lifelines, err = s.Lifelines(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.UserProfile{}, err
	}
	return buildProfile(user, achievements, lifelines), nil
}

func buildProfile(u domain.User, achievements []domain.AchievementStatus, lifelines domain.Lifelines) domain.UserProfile {
	return domain.UserProfile{
		ID:                    u.ID,
		Username:              u.Username,
		Level:                 u.Level,
		Experience:            u.Experience,
		ExperienceToNextLevel: game.ExperienceForNextLevel(u.Level),
		Coins:                 u.Coins,
		AvatarID:              u.AvatarID,
		Stats:                 u.Stats,
		Achievements:          achievements,
		Lifelines:             lifelines,
	}
}

// Questions returns the public view of the bank filtered by difficulty and topic.
func (s *PlayerService) Questions(ctx context.Context, difficulty domain.Difficulty, topic string) ([]domain.QuestionView, error) {
	if difficulty != "" && !difficulty.Valid() {
		return nil, domain.ErrInvalidInput
	}
	bank, err := s.questions.Questions(ctx)
	if err != nil {
		return nil, err
	}
	filtered := game.Filter(bank, difficulty, topic)
	views := make([]domain.QuestionView, 0, len(filtered))
	for _, q := range filtered {
		views = append(views, q.View())
	}
	return views, nil
}

// Topics lists the topics of the bank in first-seen order.
func (s *PlayerService) Topics(ctx context.Context) ([]string, error) {
	bank, err := s.questions.Questions(ctx)
	if err != nil {
		return nil, err
	}
	return game.Topics(bank), nil
}

func (s *PlayerService) question(ctx context.Context, id string) (domain.Question, error) {
	bank, err := s.questions.Questions(ctx)
	if err != nil {
		return domain.Question{}, err
	}
	for _, q := range bank {
		if q.ID == id {
			return q, nil
		}
	}
	return domain.Question{}, domain.ErrQuestionNotFound
}

// SubmitAnswer scores one answer against the server-held streak, records it,
// grants rewards and unlocks any achievements it completes.
func (s *PlayerService) SubmitAnswer(ctx context.Context, userID int64, sub domain.AnswerSubmission) (domain.AnswerResult, error) {
	q, err := s.question(ctx, sub.QuestionID)
	if err != nil {
		return domain.AnswerResult{}, err
	}
	if sub.SelectedOptionIndex < -1 || sub.SelectedOptionIndex >= len(q.Options) {
		return domain.AnswerResult{}, domain.ErrInvalidOption
	}
	correct := sub.SelectedOptionIndex == q.CorrectOptionIndex

	var (
		points     int
		multiplier = 1.0
		rewards    *domain.Reward
	)
	entry := domain.GameProgress{
		UserID:            userID,
		QuestionID:        q.ID,
		AnsweredCorrectly: correct,
		Difficulty:        q.Difficulty,
		Topic:             q.Topic,
		AnsweredAt:        s.now(),
	}
	user, err := s.store.RecordAnswer(ctx, entry, func(u *domain.User) error {
		stats := &u.Stats
		if stats.TopicsExpertise == nil {
			stats.TopicsExpertise = make(map[string]int)
		}
		points = game.CalculateScore(correct, q.Points, sub.TimeRemaining, stats.CurrentStreak, sub.UsedLifelines)

		stats.QuestionsAnswered++
		stats.TotalScore += points
		if !correct {
			stats.CurrentStreak = 0
			return nil
		}
		multiplier = game.StreakMultiplier(stats.CurrentStreak)
		stats.CorrectAnswers++
		stats.TopicsExpertise[q.Topic]++
		stats.CurrentStreak++
		if stats.CurrentStreak > stats.HighestStreak {
			stats.HighestStreak = stats.CurrentStreak
		}
		r := game.AnswerRewards(q.Difficulty)
		game.ApplyRewards(u, r.XP, r.Coins)
		rewards = &r
		return nil
	})
	if err != nil {
		return domain.AnswerResult{}, fmt.Errorf("record answer: %w", err)
	}
	metrics.AnswersTotal.WithLabelValues(strconv.FormatBool(correct), string(q.Difficulty)).Inc()

	if points > 0 {
		if err := s.board.AddScore(ctx, user.Username, points); err != nil {
			s.log.Warn("leaderboard update failed", zap.Int64("user_id", userID), zap.Error(err))
		}
	}

	unlocked, user, err := s.CheckAchievements(ctx, user)
	if err != nil {
		return domain.AnswerResult{}, err
	}

	return domain.AnswerResult{
		QuestionID:           q.ID,
		Correct:              correct,
		CorrectOptionIndex:   q.CorrectOptionIndex,
		Explanation:          q.Explanation,
		SecurityTip:          q.SecurityTip,
		PointsEarned:         points,
		Streak:               user.Stats.CurrentStreak,
		StreakMultiplier:     multiplier,
		Rewards:              rewards,
		UnlockedAchievements: unlocked,
		Level:                user.Level,
		Experience:           user.Experience,
		Coins:                user.Coins,
	}, nil
}

// CheckAchievements unlocks every achievement u now satisfies and grants its
// reward once. It returns the newly unlocked achievements and the updated user.
func (s *PlayerService) CheckAchievements(ctx context.Context, u domain.User) ([]domain.Achievement, domain.User, error) {
	progress, err := s.store.ListProgress(ctx, u.ID)
	if err != nil {
		return nil, u, fmt.Errorf("list progress: %w", err)
	}
	rows, err := s.store.ListAchievements(ctx, u.ID)
	if err != nil {
		return nil, u, fmt.Errorf("list achievements: %w", err)
	}
	bank, err := s.questions.Questions(ctx)
	if err != nil {
		return nil, u, err
	}
	have := make(map[string]bool, len(rows))
	for _, r := range rows {
		have[r.AchievementID] = true
	}

	candidates := game.EvaluateAchievements(u.Stats, progress, have, bank, content.Achievements)
	unlocked := make([]domain.Achievement, 0, len(candidates))
	for _, a := range candidates {
		ok, err := s.store.UnlockAchievement(ctx, u.ID, a.ID, s.now())
		if err != nil {
			return nil, u, fmt.Errorf("unlock %s: %w", a.ID, err)
		}
		if !ok {
			// a concurrent request got there first
			continue
		}
		u, err = s.store.UpdateUser(ctx, u.ID, func(user *domain.User) error {
			game.ApplyRewards(user, a.Reward.XP, a.Reward.Coins)
			return nil
		})
		if err != nil {
			return nil, u, fmt.Errorf("grant reward %s: %w", a.ID, err)
		}
		unlocked = append(unlocked, a)
		metrics.AchievementsUnlockedTotal.WithLabelValues(a.ID).Inc()
		s.log.Info("achievement unlocked", zap.Int64("user_id", u.ID), zap.String("achievement", a.ID))
	}
	return unlocked, u, nil
}

// Lifelines returns the user's counters, topping them up once a day.
func (s *PlayerService) Lifelines(ctx context.Context, userID int64) (domain.Lifelines, error) {
	l, err := s.store.GetLifelines(ctx, userID)
	if err != nil {
		return domain.Lifelines{}, err
	}
	now := s.now()
	if !game.NeedsRefresh(l.LastRefreshedAt, now) {
		return l, nil
	}
	return s.store.RefreshLifelines(ctx, userID, content.DefaultLifelines, now.Add(-game.LifelineRefreshInterval), now)
}

func (s *PlayerService) consume(ctx context.Context, userID int64, questionID string, kind domain.LifelineKind) (domain.Question, domain.Lifelines, error) {
	q, err := s.question(ctx, questionID)
	if err != nil {
		return domain.Question{}, domain.Lifelines{}, err
	}
	if _, err := s.Lifelines(ctx, userID); err != nil {
		return domain.Question{}, domain.Lifelines{}, err
	}
	remaining, err := s.store.ConsumeLifeline(ctx, userID, kind)
	if err != nil {
		return domain.Question{}, domain.Lifelines{}, err
	}
	metrics.LifelinesUsedTotal.WithLabelValues(string(kind)).Inc()
	return q, remaining, nil
}

// UseFiftyFifty spends a 50/50 lifeline and returns the two eliminated option indices.
func (s *PlayerService) UseFiftyFifty(ctx context.Context, userID int64, questionID string) ([]int, domain.Lifelines, error) {
	q, remaining, err := s.consume(ctx, userID, questionID, domain.FiftyFifty)
	if err != nil {
		return nil, domain.Lifelines{}, err
	}
	return game.FiftyFifty(q, s.rnd), remaining, nil
}

// UseAskExpert spends an Ask Expert lifeline and returns the hint.
func (s *PlayerService) UseAskExpert(ctx context.Context, userID int64, questionID string) (string, domain.Lifelines, error) {
	q, remaining, err := s.consume(ctx, userID, questionID, domain.AskExpert)
	if err != nil {
		return "", domain.Lifelines{}, err
	}
	return game.ExpertTip(q, s.rnd), remaining, nil
}

// Achievements lists the full catalog with the user's unlock state.
func (s *PlayerService) Achievements(ctx context.Context, userID int64) ([]domain.AchievementStatus, error) {
	rows, err := s.store.ListAchievements(ctx, userID)
	if err != nil {
		return nil, err
	}
	at := make(map[string]time.Time, len(rows))
	for _, r := range rows {
		at[r.AchievementID] = r.UnlockedAt
	}
	out := make([]domain.AchievementStatus, 0, len(content.Achievements))
	for _, a := range content.Achievements {
		st := domain.AchievementStatus{Achievement: a}
		if t, ok := at[a.ID]; ok {
			t := t
			st.Unlocked = true
			st.UnlockedAt = &t
		}
		out = append(out, st)
	}
	return out, nil
}

// Avatars lists the catalog with the user's ownership flags.
func (s *PlayerService) Avatars(ctx context.Context, userID int64) ([]domain.Avatar, error) {
	owned, err := s.store.ListAvatars(ctx, userID)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(owned))
	for _, id := range owned {
		set[id] = true
	}
	out := make([]domain.Avatar, 0, len(content.Avatars))
	for _, a := range content.Avatars {
		a.Owned = set[a.ID]
		out = append(out, a)
	}
	return out, nil
}

func (s *PlayerService) PurchaseAvatar(ctx context.Context, userID int64, avatarID string) (domain.User, error) {
	avatar, ok := content.FindAvatar(avatarID)
	if !ok {
		return domain.User{}, domain.ErrAvatarNotFound
	}
	u, err := s.store.PurchaseAvatar(ctx, userID, avatar.ID, avatar.Cost, s.now())
	if err != nil {
		return domain.User{}, err
	}
	s.log.Info("avatar purchased", zap.Int64("user_id", userID), zap.String("avatar", avatar.ID))
	return u, nil
}

func (s *PlayerService) SelectAvatar(ctx context.Context, userID int64, avatarID string) (domain.User, error) {
	if _, ok := content.FindAvatar(avatarID); !ok {
		return domain.User{}, domain.ErrAvatarNotFound
	}
	owned, err := s.store.ListAvatars(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	found := false
	for _, id := range owned {
		if id == avatarID {
			found = true
			break
		}
	}
	if !found {
		return domain.User{}, domain.ErrAvatarNotOwned
	}
	return s.store.UpdateUser(ctx, userID, func(u *domain.User) error {
		u.AvatarID = avatarID
		return nil
	})
}

// Leaderboard returns the top players. limit is clamped to [1, MaxLeaderboardLimit].
func (s *PlayerService) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}
	return s.board.Top(ctx, limit)
}
