package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"wellness-quiz-service/internal/app"
	"wellness-quiz-service/internal/config"
	"wellness-quiz-service/internal/content"
	"wellness-quiz-service/internal/infra/memory"
	"wellness-quiz-service/internal/infra/postgres"
	infraredis "wellness-quiz-service/internal/infra/redis"
	"wellness-quiz-service/internal/logger"
)

const serviceName = "wellness-quiz-service"

// scoreBoard is a leaderboard that can also be reset to a known total.
type scoreBoard interface {
	app.Leaderboard
	SetScore(ctx context.Context, username string, score int) error
}

// backends holds the storage chosen by configuration. Postgres and Redis are
// optional; without them everything lives in process memory.
type backends struct {
	db        *bun.DB
	pool      *pgxpool.Pool
	redis     *redis.Client
	store     app.Storage
	sessions  app.SessionStore
	questions app.QuestionRepository
	board     scoreBoard
}

func newLogger(cfg config.Config) (*logger.Logger, error) {
	return logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Environment: cfg.Environment,
		ServiceName: serviceName,
	})
}

func openBackends(ctx context.Context, cfg config.Config, log *logger.Logger) (*backends, error) {
	b := &backends{}
	var loader app.QuestionLoader = memory.NewStaticQuestionLoader(content.Questions)

	if cfg.Postgres.URL != "" {
		b.db = postgres.Open(cfg.Postgres.URL)
		if err := b.db.PingContext(ctx); err != nil {
			b.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("connect pgxpool: %w", err)
		}
		b.pool = pool
		b.store = postgres.NewStorage(b.db)
		loader = postgres.NewQuestionLoader(pool)
		log.Info("using postgres storage")
	} else {
		b.store = memory.NewStorage()
		log.Warn("DATABASE_URL not set, using in-memory storage")
	}

	sessionTTL := config.TTLDuration(cfg.Session.TTL, 24*time.Hour)
	cacheTTL := config.TTLDuration(cfg.Questions.CacheTTL, 10*time.Minute)

	if cfg.Redis.Addr != "" {
		b.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := b.redis.Ping(ctx).Err(); err != nil {
			b.Close()
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		b.sessions = infraredis.NewSessionStore(b.redis, sessionTTL)
		b.questions = infraredis.NewQuestionRepository(b.redis, loader, cacheTTL)
		log.Info("using redis for sessions, question cache and leaderboard", zap.String("addr", cfg.Redis.Addr))
	} else {
		b.sessions = memory.NewSessionStore(sessionTTL)
		b.questions = memory.NewQuestionRepository(loader, cacheTTL)
	}
	b.board = pickLeaderboard(b.db, b.redis)
	return b, nil
}

// pickLeaderboard prefers the redis sorted set, then the persisted user
// totals, and only keeps scores in process memory when neither is configured.
func pickLeaderboard(db *bun.DB, client *redis.Client) scoreBoard {
	switch {
	case client != nil:
		return infraredis.NewLeaderboard(client)
	case db != nil:
		return postgres.NewLeaderboard(db)
	default:
		return memory.NewLeaderboard()
	}
}

func (b *backends) Close() {
	if b.redis != nil {
		_ = b.redis.Close()
	}
	if b.pool != nil {
		b.pool.Close()
	}
	if b.db != nil {
		_ = b.db.Close()
	}
}
