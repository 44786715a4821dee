package memory

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"wellness-quiz-service/internal/app"
	"wellness-quiz-service/internal/domain"
)

func TestQuestionRepositoryCaches(t *testing.T) {
	loader := &countingLoader{
		QuestionLoader: NewStaticQuestionLoader(sampleQuestions()),
	}
	repo := NewQuestionRepository(loader, time.Minute)

	if _, err := repo.Questions(context.Background()); err != nil {
		t.Fatalf("get questions: %v", err)
	}
	if loader.calls.Load() != 1 {
		t.Fatalf("expected loader once, got %d", loader.calls.Load())
	}

	if _, err := repo.Questions(context.Background()); err != nil {
		t.Fatalf("get questions 2: %v", err)
	}
	if loader.calls.Load() != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.calls.Load())
	}
}

func TestQuestionRepositoryExpires(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	loader := &countingLoader{QuestionLoader: NewStaticQuestionLoader(sampleQuestions())}
	repo := NewQuestionRepository(loader, time.Minute)
	repo.clock = func() time.Time { return now }

	_, _ = repo.Questions(context.Background())
	now = now.Add(2 * time.Minute)
	_, _ = repo.Questions(context.Background())
	if loader.calls.Load() != 2 {
		t.Fatalf("expected reload after ttl, calls %d", loader.calls.Load())
	}
}

func TestStaticLoaderEmpty(t *testing.T) {
	_, err := NewStaticQuestionLoader(nil).LoadQuestions(context.Background())
	if !errors.Is(err, domain.ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
}

func TestLeaderboardOrdersByScore(t *testing.T) {
	ctx := context.Background()
	lb := NewLeaderboard()
	_ = lb.AddScore(ctx, "bob", 100)
	_ = lb.AddScore(ctx, "alice", 150)
	_ = lb.AddScore(ctx, "carol", 100)
	_ = lb.AddScore(ctx, "bob", 10)

	top, err := lb.Top(ctx, 2)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(top))
	}
	if top[0].Username != "alice" || top[0].Rank != 1 || top[1].Username != "bob" || top[1].Score != 110 {
		t.Fatalf("unexpected order %+v", top)
	}
}

func TestSessionStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	store := NewSessionStore(time.Hour)
	store.clock = func() time.Time { return now }

	token, err := store.Create(ctx, 7)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id, err := store.Get(ctx, token); err != nil || id != 7 {
		t.Fatalf("get: %d %v", id, err)
	}

	now = now.Add(2 * time.Hour)
	if _, err := store.Get(ctx, token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected expired session, got %v", err)
	}

	token, _ = store.Create(ctx, 7)
	_ = store.Delete(ctx, token)
	if _, err := store.Get(ctx, token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected deleted session, got %v", err)
	}
}

func TestGameStoreKeepsLiveGames(t *testing.T) {
	store := NewGameStore()
	g := app.NewGame("g1", 1, domain.SoloQuest, 30*time.Second, sampleQuestions(), time.Now)
	store.Put(g)

	store.DeleteIfOver("g1")
	if _, ok := store.Get("g1"); !ok {
		t.Fatalf("live game must not be dropped")
	}
}

func TestGameStoreSweep(t *testing.T) {
	store := NewGameStore()
	for _, id := range []string{"g1", "g2", "g3"} {
		store.Put(app.NewGame(id, 1, domain.SoloQuest, 30*time.Second, sampleQuestions(), time.Now))
	}

	removed := store.Sweep(func(g *app.Game) bool { return g.ID() != "g2" })
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	if _, ok := store.Get("g2"); !ok {
		t.Fatalf("kept game missing")
	}
	for _, id := range []string{"g1", "g3"} {
		if _, ok := store.Get(id); ok {
			t.Fatalf("game %s should have been swept", id)
		}
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
			Difficulty:         domain.Beginner,
			Topic:              "Internet Safety",
			Points:             100,
		},
	}
}
