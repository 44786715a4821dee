package app_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"wellness-quiz-service/internal/app"
	"wellness-quiz-service/internal/domain"
	"wellness-quiz-service/internal/infra/memory"
	"wellness-quiz-service/internal/logger"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type env struct {
	clock     *fakeClock
	store     *memory.Storage
	questions app.QuestionRepository
	auth      *app.AuthService
	players   *app.PlayerService
	games     *app.GameService
}

func newEnv(t *testing.T, bank []domain.Question) *env {
	t.Helper()
	clock := newFakeClock()
	log := logger.Nop()
	opts := []app.Option{app.WithClock(clock.Now), app.WithSeed(7), app.WithBcryptCost(bcrypt.MinCost)}

	store := memory.NewStorage()
	questions := memory.NewQuestionRepository(memory.NewStaticQuestionLoader(bank), time.Hour)
	players := app.NewPlayerService(store, questions, memory.NewLeaderboard(), log, opts...)
	return &env{
		clock:     clock,
		store:     store,
		questions: questions,
		auth:      app.NewAuthService(store, memory.NewSessionStore(time.Hour), players, log, opts...),
		players:   players,
		games:     app.NewGameService(memory.NewGameStore(), players, questions, log, opts...),
	}
}

// signUp registers and logs in a random user and returns its ID.
func (e *env) signUp(t *testing.T) int64 {
	t.Helper()
	ctx := context.Background()
	username := fmt.Sprintf("%s_%d", gofakeit.Username(), gofakeit.Number(100, 999))
	_, err := e.auth.Register(ctx, username, "secret1")
	require.NoError(t, err)
	profile, _, err := e.auth.Login(ctx, username, "secret1")
	require.NoError(t, err)
	return profile.ID
}

func question(id, topic string, d domain.Difficulty) domain.Question {
	return domain.Question{
		ID:                 id,
		Text:               "Question " + id,
		Options:            []string{"a", "b", "c", "d"},
		CorrectOptionIndex: 2,
		Explanation:        "Because c.",
		SecurityTip:        "Stay safe.",
		Difficulty:         d,
		Topic:              topic,
		Points:             100,
	}
}

func sampleBank() []domain.Question {
	return []domain.Question{
		question("b1", "Internet Safety", domain.Beginner),
		question("b2", "Internet Safety", domain.Beginner),
		question("b3", "Internet Safety", domain.Beginner),
	}
}

func correctAnswer(id string) domain.AnswerSubmission {
	return domain.AnswerSubmission{QuestionID: id, SelectedOptionIndex: 2, TimeRemaining: 30}
}
