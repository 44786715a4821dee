package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"wellness-quiz-service/internal/app"
	"wellness-quiz-service/internal/config"
	"wellness-quiz-service/internal/content"
	"wellness-quiz-service/internal/domain"
	"wellness-quiz-service/internal/infra/postgres"
	"wellness-quiz-service/internal/logger"
)

// NewSeedCmd loads the question bank and the demo accounts into Postgres.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed questions and demo users",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer log.Sync()
			return runSeed(cmd.Context(), cfg, log)
		},
	}
}

func runSeed(ctx context.Context, cfg config.Config, log *logger.Logger) error {
	if err := runMigrationsWithConfig(ctx, cfg, log); err != nil {
		return err
	}
	b, err := openBackends(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer b.Close()

	if err := postgres.NewStorage(b.db).SaveQuestions(ctx, content.Questions); err != nil {
		return fmt.Errorf("save questions: %w", err)
	}
	log.Info("questions seeded", zap.Int("count", len(content.Questions)))
	return seedDemoUsers(ctx, b.store, b.board, bcrypt.DefaultCost, log)
}

// seedDemoUsers creates the demo accounts that do not exist yet. Running it
// twice leaves existing accounts untouched.
func seedDemoUsers(ctx context.Context, store app.Storage, board scoreBoard, cost int, log *logger.Logger) error {
	for _, demo := range content.DemoUsers {
		_, err := store.GetUserByUsername(ctx, demo.Username)
		if err == nil {
			log.Debug("demo user exists", zap.String("username", demo.Username))
			continue
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(demo.Password), cost)
		if err != nil {
			return fmt.Errorf("hash %s: %w", demo.Username, err)
		}
		u, lifelines := app.NewAccount(demo.Username, hash, time.Now())
		u.Level = demo.Level
		u.Experience = demo.Experience
		u.Coins = demo.Coins
		u.Stats = demo.Stats
		u.Stats.TopicsExpertise = make(map[string]int, len(demo.Stats.TopicsExpertise))
		for topic, n := range demo.Stats.TopicsExpertise {
			u.Stats.TopicsExpertise[topic] = n
		}

		u, err = store.CreateUser(ctx, u, lifelines, content.StarterAvatars)
		if err != nil {
			return fmt.Errorf("create %s: %w", demo.Username, err)
		}
		for _, id := range demo.Unlocked {
			if _, err := store.UnlockAchievement(ctx, u.ID, id, u.CreatedAt); err != nil {
				return fmt.Errorf("unlock %s for %s: %w", id, demo.Username, err)
			}
		}
		if err := board.SetScore(ctx, u.Username, u.Stats.TotalScore); err != nil {
			return fmt.Errorf("leaderboard %s: %w", demo.Username, err)
		}
		log.Info("demo user seeded", zap.String("username", u.Username), zap.Int("level", u.Level))
	}
	return nil
}
