package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"wellness-quiz-service/internal/domain"
)

func newUser(t *testing.T, s *Storage) domain.User {
	t.Helper()
	u, err := s.CreateUser(context.Background(),
		domain.User{Username: gofakeit.Username(), Level: 1, Stats: domain.NewUserStats()},
		domain.Lifelines{FiftyFifty: 3, AskExpert: 3, LastRefreshedAt: time.Now()},
		[]string{"default", "robot", "hacker"},
	)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	u := newUser(t, s)
	if u.ID == 0 {
		t.Fatalf("expected id assigned")
	}

	_, err := s.CreateUser(ctx, domain.User{Username: u.Username}, domain.Lifelines{}, nil)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	got, err := s.GetUserByUsername(ctx, u.Username)
	if err != nil || got.ID != u.ID {
		t.Fatalf("lookup by username: %+v %v", got, err)
	}
	if _, err := s.GetUser(ctx, 999); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateUserIsolatesCopies(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	u := newUser(t, s)

	u.Stats.TopicsExpertise["Leaked"] = 1
	updated, err := s.UpdateUser(ctx, u.ID, func(user *domain.User) error {
		user.Coins = 42
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Coins != 42 {
		t.Fatalf("expected coins 42, got %d", updated.Coins)
	}
	if _, ok := updated.Stats.TopicsExpertise["Leaked"]; ok {
		t.Fatalf("caller mutation leaked into storage")
	}

	boom := errors.New("boom")
	if _, err := s.UpdateUser(ctx, u.ID, func(user *domain.User) error {
		user.Coins = 0
		return boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected callback error, got %v", err)
	}
	got, _ := s.GetUser(ctx, u.ID)
	if got.Coins != 42 {
		t.Fatalf("failed update must not persist, coins=%d", got.Coins)
	}
}

func TestConsumeLifelineNeverNegative(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	u := newUser(t, s)

	var wg sync.WaitGroup
	var mu sync.Mutex
	failures := 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.ConsumeLifeline(ctx, u.ID, domain.FiftyFifty); errors.Is(err, domain.ErrNoLifelines) {
				mu.Lock()
				failures++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	l, _ := s.GetLifelines(ctx, u.ID)
	if l.FiftyFifty != 0 || l.AskExpert != 3 {
		t.Fatalf("unexpected counters %+v", l)
	}
	if failures != 7 {
		t.Fatalf("expected 7 exhausted attempts, got %d", failures)
	}

	now := time.Now()
	refreshed, err := s.RefreshLifelines(ctx, u.ID, 3, now, now)
	if err != nil || refreshed.FiftyFifty != 3 {
		t.Fatalf("refresh: %+v %v", refreshed, err)
	}
}

func TestRefreshLifelinesOnlyWhenDue(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	u := newUser(t, s)
	created, _ := s.GetLifelines(ctx, u.ID)
	day := created.LastRefreshedAt.Add(24 * time.Hour)

	refreshed, err := s.RefreshLifelines(ctx, u.ID, 3, created.LastRefreshedAt, day)
	if err != nil || !refreshed.LastRefreshedAt.Equal(day) {
		t.Fatalf("refresh: %+v %v", refreshed, err)
	}
	if _, err := s.ConsumeLifeline(ctx, u.ID, domain.AskExpert); err != nil {
		t.Fatalf("consume: %v", err)
	}

	// a second caller that saw the old timestamp must not restore the spent lifeline
	again, err := s.RefreshLifelines(ctx, u.ID, 3, created.LastRefreshedAt, day)
	if err != nil {
		t.Fatalf("stale refresh: %v", err)
	}
	if again.AskExpert != 2 || !again.LastRefreshedAt.Equal(day) {
		t.Fatalf("stale refresh changed counters: %+v", again)
	}

	if _, err := s.RefreshLifelines(ctx, 999, 3, day, day); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUnlockAchievementOnce(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	u := newUser(t, s)

	ok, err := s.UnlockAchievement(ctx, u.ID, "streak-5", time.Now())
	if err != nil || !ok {
		t.Fatalf("first unlock: %v %v", ok, err)
	}
	ok, err = s.UnlockAchievement(ctx, u.ID, "streak-5", time.Now())
	if err != nil || ok {
		t.Fatalf("second unlock should be a no-op: %v %v", ok, err)
	}
	rows, _ := s.ListAchievements(ctx, u.ID)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
}

func TestPurchaseAvatar(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	u := newUser(t, s)

	if _, err := s.PurchaseAvatar(ctx, u.ID, "cyber-ninja", 500, time.Now()); !errors.Is(err, domain.ErrInsufficientCoins) {
		t.Fatalf("expected ErrInsufficientCoins, got %v", err)
	}

	_, _ = s.UpdateUser(ctx, u.ID, func(user *domain.User) error {
		user.Coins = 600
		return nil
	})
	got, err := s.PurchaseAvatar(ctx, u.ID, "cyber-ninja", 500, time.Now())
	if err != nil || got.Coins != 100 {
		t.Fatalf("purchase: %+v %v", got, err)
	}

	// owning it already costs nothing
	got, err = s.PurchaseAvatar(ctx, u.ID, "cyber-ninja", 500, time.Now())
	if err != nil || got.Coins != 100 {
		t.Fatalf("repeat purchase: %+v %v", got, err)
	}
	owned, _ := s.ListAvatars(ctx, u.ID)
	if len(owned) != 4 {
		t.Fatalf("expected 4 owned avatars, got %v", owned)
	}
}

func TestRecordAnswerIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	bump := func(user *domain.User) error {
		user.Stats.QuestionsAnswered++
		return nil
	}
	if _, err := s.RecordAnswer(ctx, domain.GameProgress{UserID: 5}, bump); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	u := newUser(t, s)
	got, err := s.RecordAnswer(ctx, domain.GameProgress{UserID: u.ID, QuestionID: "q1"}, bump)
	if err != nil || got.Stats.QuestionsAnswered != 1 {
		t.Fatalf("record: %+v %v", got, err)
	}

	boom := errors.New("boom")
	_, err = s.RecordAnswer(ctx, domain.GameProgress{UserID: u.ID, QuestionID: "q2"}, func(user *domain.User) error {
		user.Stats.QuestionsAnswered++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected callback error, got %v", err)
	}

	rows, _ := s.ListProgress(ctx, u.ID)
	if len(rows) != 1 || rows[0].QuestionID != "q1" {
		t.Fatalf("unexpected progress %+v", rows)
	}
	stored, _ := s.GetUser(ctx, u.ID)
	if stored.Stats.QuestionsAnswered != 1 {
		t.Fatalf("failed record must not touch stats, answered=%d", stored.Stats.QuestionsAnswered)
	}
}
