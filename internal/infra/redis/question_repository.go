package redis

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"wellness-quiz-service/internal/app"
	"wellness-quiz-service/internal/domain"
	"wellness-quiz-service/internal/metrics"
)

const bankKey = "quiz:questions:bank"

// QuestionRepository caches the question bank in Redis as one JSON value and
// falls back to a loader on cache miss.
type QuestionRepository struct {
	client *redis.Client
	loader app.QuestionLoader
	ttl    time.Duration
	sf     singleflight.Group

	rndMu sync.Mutex
	rnd   *rand.Rand
}

func NewQuestionRepository(client *redis.Client, loader app.QuestionLoader, ttl time.Duration) *QuestionRepository {
	return &QuestionRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *QuestionRepository) Questions(ctx context.Context) ([]domain.Question, error) {
	if bank, err := r.fromCache(ctx); err == nil {
		return bank, nil
	}

	result, err, _ := r.sf.Do(bankKey, func() (interface{}, error) {
		// Re-check cache in case another instance filled it.
		if bank, err := r.fromCache(ctx); err == nil {
			return bank, nil
		}

		bank, err := r.loader.LoadQuestions(ctx)
		if err != nil {
			return nil, err
		}
		metrics.QuestionCacheMissesTotal.Inc()

		if raw, err := json.Marshal(bank); err == nil {
			// best-effort; a failed write only costs another load
			_ = r.client.Set(ctx, bankKey, raw, r.ttlWithJitter()).Err()
		}
		return bank, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Question), nil
}

func (r *QuestionRepository) fromCache(ctx context.Context) ([]domain.Question, error) {
	raw, err := r.client.Get(ctx, bankKey).Bytes()
	if err != nil {
		return nil, err
	}
	var bank []domain.Question
	if err := json.Unmarshal(raw, &bank); err != nil {
		return nil, err
	}
	if len(bank) == 0 {
		return nil, errors.New("empty cached bank")
	}
	return bank, nil
}

func (r *QuestionRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	r.rndMu.Lock()
	defer r.rndMu.Unlock()
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
