package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"wellness-quiz-service/internal/content"
	"wellness-quiz-service/internal/domain"
	"wellness-quiz-service/internal/logger"
	"wellness-quiz-service/internal/metrics"
)

const (
	MinUsernameLength = 3
	MinPasswordLength = 6
)

// AuthService registers users and manages their login sessions.
type AuthService struct {
	store      Storage
	sessions   SessionStore
	players    *PlayerService
	log        *logger.Logger
	now        func() time.Time
	bcryptCost int
}

func NewAuthService(store Storage, sessions SessionStore, players *PlayerService, log *logger.Logger, opts ...Option) *AuthService {
	o := buildOptions(opts)
	return &AuthService{
		store:      store,
		sessions:   sessions,
		players:    players,
		log:        log.With(zap.String("component", "auth")),
		now:        o.now,
		bcryptCost: o.bcryptCost,
	}
}

// NewAccount builds a fresh user row with the defaults every player starts with.
func NewAccount(username string, hash []byte, now time.Time) (domain.User, domain.Lifelines) {
	u := domain.User{
		Username:     username,
		PasswordHash: hash,
		Level:        1,
		AvatarID:     content.DefaultAvatarID,
		CreatedAt:    now,
		LastLoginAt:  now,
		Stats:        domain.NewUserStats(),
	}
	l := domain.Lifelines{
		FiftyFifty:      content.DefaultLifelines,
		AskExpert:       content.DefaultLifelines,
		LastRefreshedAt: now,
	}
	return u, l
}

// Register creates a new user with default lifelines and the starter avatars.
func (s *AuthService) Register(ctx context.Context, username, password string) (domain.User, error) {
	const op = "app.AuthService.Register"

	username = strings.TrimSpace(username)
	if len(username) < MinUsernameLength || len(password) < MinPasswordLength {
		return domain.User{}, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	u, lifelines := NewAccount(username, hash, s.now())
	u, err = s.store.CreateUser(ctx, u, lifelines, content.StarterAvatars)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return domain.User{}, err
		}
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	metrics.RegistrationsTotal.Inc()
	s.log.Info("user registered", zap.Int64("user_id", u.ID), zap.String("username", u.Username))
	return u, nil
}

// Login checks credentials, advances the daily login streak and opens a session.
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.UserProfile, string, error) {
	const op = "app.AuthService.Login"

	u, err := s.store.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("unknown_user").Inc()
			return domain.UserProfile{}, "", domain.ErrInvalidCredentials
		}
		return domain.UserProfile{}, "", fmt.Errorf("%s: %w", op, err)
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
		return domain.UserProfile{}, "", domain.ErrInvalidCredentials
	}

	now := s.now()
	u, err = s.store.UpdateUser(ctx, u.ID, func(user *domain.User) error {
		user.LastLoginAt = now
		advanceLoginStreak(&user.Stats, now)
		return nil
	})
	if err != nil {
		return domain.UserProfile{}, "", fmt.Errorf("%s: %w", op, err)
	}
	if _, _, err := s.players.CheckAchievements(ctx, u); err != nil {
		return domain.UserProfile{}, "", fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.sessions.Create(ctx, u.ID)
	if err != nil {
		return domain.UserProfile{}, "", fmt.Errorf("%s: %w", op, err)
	}
	profile, err := s.players.Profile(ctx, u.ID)
	if err != nil {
		return domain.UserProfile{}, "", fmt.Errorf("%s: %w", op, err)
	}
	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	s.log.Info("user logged in", zap.Int64("user_id", u.ID), zap.Int("login_streak", u.Stats.LoginStreak))
	return profile, token, nil
}

// advanceLoginStreak counts consecutive UTC days with at least one login.
func advanceLoginStreak(stats *domain.UserStats, now time.Time) {
	today := now.UTC().Format(time.DateOnly)
	switch stats.LastLoginDay {
	case today:
		return
	case now.UTC().AddDate(0, 0, -1).Format(time.DateOnly):
		stats.LoginStreak++
	default:
		stats.LoginStreak = 1
	}
	stats.LastLoginDay = today
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// Authenticate resolves a session token to a user ID.
func (s *AuthService) Authenticate(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, domain.ErrUnauthenticated
	}
	return s.sessions.Get(ctx, token)
}
