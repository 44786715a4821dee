package memory

import (
	"context"
	"sync"
	"time"

	"wellness-quiz-service/internal/domain"
)

// Storage is an in-memory implementation of app.Storage. Data is lost on restart.
type Storage struct {
	mu           sync.RWMutex
	nextID       int64
	users        map[int64]*domain.User
	byName       map[string]int64
	lifelines    map[int64]domain.Lifelines
	progress     map[int64][]domain.GameProgress
	achievements map[int64][]domain.UserAchievement
	avatars      map[int64][]string
}

func NewStorage() *Storage {
	return &Storage{
		users:        make(map[int64]*domain.User),
		byName:       make(map[string]int64),
		lifelines:    make(map[int64]domain.Lifelines),
		progress:     make(map[int64][]domain.GameProgress),
		achievements: make(map[int64][]domain.UserAchievement),
		avatars:      make(map[int64][]string),
	}
}

func (s *Storage) CreateUser(_ context.Context, u domain.User, lifelines domain.Lifelines, avatars []string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byName[u.Username]; ok {
		return domain.User{}, domain.ErrUserExists
	}
	s.nextID++
	u.ID = s.nextID
	stored := cloneUser(u)
	s.users[u.ID] = &stored
	s.byName[u.Username] = u.ID
	s.lifelines[u.ID] = lifelines
	s.avatars[u.ID] = append([]string(nil), avatars...)
	return cloneUser(stored), nil
}

func (s *Storage) GetUser(_ context.Context, id int64) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return cloneUser(*u), nil
}

func (s *Storage) GetUserByUsername(_ context.Context, username string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byName[username]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return cloneUser(*s.users[id]), nil
}

func (s *Storage) UpdateUser(_ context.Context, id int64, fn func(*domain.User) error) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	next := cloneUser(*u)
	if err := fn(&next); err != nil {
		return domain.User{}, err
	}
	next.ID = id
	s.users[id] = &next
	return cloneUser(next), nil
}

func (s *Storage) GetLifelines(_ context.Context, userID int64) (domain.Lifelines, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.lifelines[userID]
	if !ok {
		return domain.Lifelines{}, domain.ErrUserNotFound
	}
	return l, nil
}

func (s *Storage) ConsumeLifeline(_ context.Context, userID int64, kind domain.LifelineKind) (domain.Lifelines, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lifelines[userID]
	if !ok {
		return domain.Lifelines{}, domain.ErrUserNotFound
	}
	var counter *int
	switch kind {
	case domain.FiftyFifty:
		counter = &l.FiftyFifty
	case domain.AskExpert:
		counter = &l.AskExpert
	default:
		return domain.Lifelines{}, domain.ErrInvalidInput
	}
	if *counter <= 0 {
		return l, domain.ErrNoLifelines
	}
	*counter--
	s.lifelines[userID] = l
	return l, nil
}

func (s *Storage) RefreshLifelines(_ context.Context, userID int64, count int, due, at time.Time) (domain.Lifelines, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.lifelines[userID]
	if !ok {
		return domain.Lifelines{}, domain.ErrUserNotFound
	}
	if current.LastRefreshedAt.After(due) {
		return current, nil
	}
	l := domain.Lifelines{FiftyFifty: count, AskExpert: count, LastRefreshedAt: at}
	s.lifelines[userID] = l
	return l, nil
}

func (s *Storage) RecordAnswer(_ context.Context, p domain.GameProgress, fn func(*domain.User) error) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[p.UserID]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	next := cloneUser(*u)
	if err := fn(&next); err != nil {
		return domain.User{}, err
	}
	next.ID = p.UserID
	s.users[p.UserID] = &next
	s.progress[p.UserID] = append(s.progress[p.UserID], p)
	return cloneUser(next), nil
}

func (s *Storage) ListProgress(_ context.Context, userID int64) ([]domain.GameProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.GameProgress(nil), s.progress[userID]...), nil
}

func (s *Storage) ListAchievements(_ context.Context, userID int64) ([]domain.UserAchievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.UserAchievement(nil), s.achievements[userID]...), nil
}

func (s *Storage) UnlockAchievement(_ context.Context, userID int64, achievementID string, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.achievements[userID] {
		if a.AchievementID == achievementID {
			return false, nil
		}
	}
	s.achievements[userID] = append(s.achievements[userID], domain.UserAchievement{
		UserID:        userID,
		AchievementID: achievementID,
		UnlockedAt:    at,
	})
	return true, nil
}

func (s *Storage) ListAvatars(_ context.Context, userID int64) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.avatars[userID]...), nil
}

func (s *Storage) PurchaseAvatar(_ context.Context, userID int64, avatarID string, cost int, _ time.Time) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	for _, id := range s.avatars[userID] {
		if id == avatarID {
			return cloneUser(*u), nil
		}
	}
	if u.Coins < cost {
		return domain.User{}, domain.ErrInsufficientCoins
	}
	u.Coins -= cost
	s.avatars[userID] = append(s.avatars[userID], avatarID)
	return cloneUser(*u), nil
}

func cloneUser(u domain.User) domain.User {
	u.PasswordHash = append([]byte(nil), u.PasswordHash...)
	expertise := make(map[string]int, len(u.Stats.TopicsExpertise))
	for k, v := range u.Stats.TopicsExpertise {
		expertise[k] = v
	}
	u.Stats.TopicsExpertise = expertise
	return u
}
