package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"wellness-quiz-service/internal/app"
	"wellness-quiz-service/internal/domain"
	"wellness-quiz-service/internal/metrics"
)

const bankKey = "bank"

// QuestionRepository caches the question bank with TTL to avoid repeated DB hits.
type QuestionRepository struct {
	loader app.QuestionLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu        sync.RWMutex
	bank      []domain.Question
	expiresAt time.Time
}

func NewQuestionRepository(loader app.QuestionLoader, ttl time.Duration) *QuestionRepository {
	return &QuestionRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *QuestionRepository) Questions(ctx context.Context) ([]domain.Question, error) {
	if bank, ok := r.cached(r.clock()); ok {
		return bank, nil
	}

	result, err, _ := r.sf.Do(bankKey, func() (interface{}, error) {
		now := r.clock()
		if bank, ok := r.cached(now); ok {
			return bank, nil
		}

		bank, err := r.loader.LoadQuestions(ctx)
		if err != nil {
			return nil, err
		}
		metrics.QuestionCacheMissesTotal.Inc()

		r.mu.Lock()
		r.bank = bank
		r.expiresAt = now.Add(r.ttlWithJitter())
		r.mu.Unlock()
		return bank, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Question), nil
}

func (r *QuestionRepository) cached(now time.Time) ([]domain.Question, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.bank != nil && r.expiresAt.After(now) {
		return r.bank, true
	}
	return nil, false
}

// ttlWithJitter runs under sf.Do, so rnd is never used concurrently.
func (r *QuestionRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

// StaticQuestionLoader serves a fixed bank (the built-in content, or test fixtures).
type StaticQuestionLoader struct {
	questions []domain.Question
}

func NewStaticQuestionLoader(questions []domain.Question) *StaticQuestionLoader {
	return &StaticQuestionLoader{questions: questions}
}

func (l *StaticQuestionLoader) LoadQuestions(_ context.Context) ([]domain.Question, error) {
	if len(l.questions) == 0 {
		return nil, domain.ErrNoQuestions
	}
	return l.questions, nil
}
