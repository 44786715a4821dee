package redis

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"wellness-quiz-service/internal/app"
	"wellness-quiz-service/internal/domain"
	"wellness-quiz-service/internal/infra/memory"
)

func TestQuestionRepositoryCachesInRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := newClient(mr)
	loader := &countingLoader{
		QuestionLoader: memory.NewStaticQuestionLoader(sampleQuestions()),
	}
	repo := NewQuestionRepository(client, loader, time.Minute)

	bank, err := repo.Questions(context.Background())
	if err != nil {
		t.Fatalf("get questions: %v", err)
	}
	if loader.calls.Load() != 1 {
		t.Fatalf("expected loader called once, got %d", loader.calls.Load())
	}
	if !mr.Exists(bankKey) {
		t.Fatalf("expected bank cached in redis")
	}

	// Second call should hit cache, loader not incremented.
	cached, _ := repo.Questions(context.Background())
	if loader.calls.Load() != 1 {
		t.Fatalf("expected cache hit, loader calls=%d", loader.calls.Load())
	}
	if len(cached) != len(bank) || cached[0].CorrectOptionIndex != 2 || cached[0].Explanation == "" {
		t.Fatalf("cached bank lost fields: %+v", cached)
	}

	mr.FastForward(2 * time.Minute)
	_, _ = repo.Questions(context.Background())
	if loader.calls.Load() != 2 {
		t.Fatalf("expected reload after expiry, calls=%d", loader.calls.Load())
	}
}

func TestSessionStoreSetsAndClearsKeys(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	ctx := context.Background()
	store := NewSessionStore(newClient(mr), time.Minute)

	token, err := store.Create(ctx, 42)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !mr.Exists("quiz:session:" + token) {
		t.Fatalf("expected redis key to be set")
	}
	if id, err := store.Get(ctx, token); err != nil || id != 42 {
		t.Fatalf("get: %d %v", id, err)
	}

	if err := store.Delete(ctx, token); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if mr.Exists("quiz:session:" + token) {
		t.Fatalf("expected redis key to be removed")
	}
	if _, err := store.Get(ctx, token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestSessionStoreExpires(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	ctx := context.Background()
	store := NewSessionStore(newClient(mr), time.Minute)
	token, _ := store.Create(ctx, 1)

	mr.FastForward(2 * time.Minute)
	if _, err := store.Get(ctx, token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected expired session, got %v", err)
	}
}

func TestLeaderboardRanksByScore(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	ctx := context.Background()
	lb := NewLeaderboard(newClient(mr))
	_ = lb.SetScore(ctx, "demo", 500)
	_ = lb.AddScore(ctx, "alice", 300)
	_ = lb.AddScore(ctx, "alice", 300)
	_ = lb.AddScore(ctx, "bob", 50)

	top, err := lb.Top(ctx, 2)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(top))
	}
	if top[0].Username != "alice" || top[0].Score != 600 || top[0].Rank != 1 {
		t.Fatalf("unexpected leader %+v", top[0])
	}
	if top[1].Username != "demo" || top[1].Rank != 2 {
		t.Fatalf("unexpected runner-up %+v", top[1])
	}
}

type countingLoader struct {
	app.QuestionLoader
	calls atomic.Int32
}

func (l *countingLoader) LoadQuestions(ctx context.Context) ([]domain.Question, error) {
	l.calls.Add(1)
	return l.QuestionLoader.LoadQuestions(ctx)
}

func sampleQuestions() []domain.Question {
	return []domain.Question{
		{
			ID:                 "q1",
			Text:               "Which password is strongest?",
			Options:            []string{"password", "123456", "Tr0ub4dor&3!x", "qwerty"},
			CorrectOptionIndex: 2,
			Explanation:        "Length and mixed characters win.",
			SecurityTip:        "Use a password manager.",
			Difficulty:         domain.Beginner,
			Topic:              "Internet Safety",
			Points:             100,
		},
	}
}

func newClient(mr *miniredis.Miniredis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}
