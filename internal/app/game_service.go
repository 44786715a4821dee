package app

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wellness-quiz-service/internal/domain"
	"wellness-quiz-service/internal/game"
	"wellness-quiz-service/internal/logger"
	"wellness-quiz-service/internal/metrics"
)

var errNotExpired = errors.New("question still open")

const (
	// FinishedGameTTL keeps a finished game readable for a short while.
	FinishedGameTTL = 2 * time.Minute
	// IdleGameTTL drops games nobody has touched or watched for this long.
	IdleGameTTL = 30 * time.Minute
)

// GameService runs server-side games on top of PlayerService, so timing and
// streaks come from the server rather than the client.
type GameService struct {
	games     GameStore
	players   *PlayerService
	questions QuestionRepository
	log       *logger.Logger
	now       func() time.Time
	rnd       *rand.Rand
}

func NewGameService(games GameStore, players *PlayerService, questions QuestionRepository, log *logger.Logger, opts ...Option) *GameService {
	o := buildOptions(opts)
	return &GameService{
		games:     games,
		players:   players,
		questions: questions,
		log:       log.With(zap.String("component", "game")),
		now:       o.now,
		rnd:       o.rnd,
	}
}

// Start draws a set of questions and opens the first one.
func (s *GameService) Start(ctx context.Context, userID int64, mode domain.GameMode, difficulty domain.Difficulty, topic string) (domain.GameState, error) {
	if mode == "" {
		mode = domain.SoloQuest
	}
	limit, err := game.TimeLimit(mode)
	if err != nil {
		return domain.GameState{}, err
	}
	if difficulty != "" && !difficulty.Valid() {
		return domain.GameState{}, domain.ErrInvalidInput
	}
	bank, err := s.questions.Questions(ctx)
	if err != nil {
		return domain.GameState{}, err
	}
	selected := game.SelectQuestions(bank, difficulty, topic, game.QuestionsPerGame, s.rnd)
	if len(selected) == 0 {
		return domain.GameState{}, domain.ErrNoQuestions
	}

	g := NewGame(uuid.NewString(), userID, mode, limit, selected, s.now)
	s.games.Put(g)
	metrics.GamesStartedTotal.WithLabelValues(string(mode)).Inc()
	s.log.Debug("game started", zap.String("game_id", g.ID()), zap.Int64("user_id", userID), zap.Int("questions", len(selected)))
	return g.State(), nil
}

func (s *GameService) game(userID int64, id string) (*Game, error) {
	g, ok := s.games.Get(id)
	if !ok || g.userID != userID {
		return nil, domain.ErrGameNotFound
	}
	return g, nil
}

func (s *GameService) State(_ context.Context, userID int64, id string) (domain.GameState, error) {
	g, err := s.game(userID, id)
	if err != nil {
		return domain.GameState{}, err
	}
	return g.State(), nil
}

// Answer submits option for the open question. -1 gives up the question.
func (s *GameService) Answer(ctx context.Context, userID int64, id string, option int) (domain.GameState, error) {
	g, err := s.game(userID, id)
	if err != nil {
		return domain.GameState{}, err
	}
	return s.answer(ctx, g, option, false)
}

// Expire auto-submits a timeout once the open question's deadline has passed.
// Before the deadline it only returns the current state.
func (s *GameService) Expire(ctx context.Context, userID int64, id string) (domain.GameState, error) {
	g, err := s.game(userID, id)
	if err != nil {
		return domain.GameState{}, err
	}
	st, err := s.answer(ctx, g, -1, true)
	if errors.Is(err, errNotExpired) || errors.Is(err, domain.ErrAlreadyAnswered) || errors.Is(err, domain.ErrGameOver) {
		return g.State(), nil
	}
	return st, err
}

func (s *GameService) answer(ctx context.Context, g *Game, option int, onlyIfExpired bool) (domain.GameState, error) {
	p, err := g.beginAnswer(option, onlyIfExpired)
	if err != nil {
		return domain.GameState{}, err
	}
	result, err := s.players.SubmitAnswer(ctx, g.userID, domain.AnswerSubmission{
		QuestionID:          p.question.ID,
		SelectedOptionIndex: p.option,
		TimeRemaining:       p.timeRemaining,
		UsedLifelines:       p.used,
	})
	if err != nil {
		g.abortAnswer()
		return domain.GameState{}, err
	}
	return g.finishAnswer(result), nil
}

// UseLifeline spends one of the user's lifelines on the open question.
func (s *GameService) UseLifeline(ctx context.Context, userID int64, id string, kind domain.LifelineKind) (domain.GameState, error) {
	g, err := s.game(userID, id)
	if err != nil {
		return domain.GameState{}, err
	}
	q, err := g.beginLifeline(kind)
	if err != nil {
		return domain.GameState{}, err
	}

	switch kind {
	case domain.FiftyFifty:
		eliminated, _, err := s.players.UseFiftyFifty(ctx, userID, q.ID)
		if err != nil {
			g.abortLifeline(kind)
			return domain.GameState{}, err
		}
		return g.applyFiftyFifty(eliminated), nil
	default:
		tip, _, err := s.players.UseAskExpert(ctx, userID, q.ID)
		if err != nil {
			g.abortLifeline(kind)
			return domain.GameState{}, err
		}
		return g.applyExpertTip(tip), nil
	}
}

// Next moves past an answered question; after the last one the game is over.
func (s *GameService) Next(_ context.Context, userID int64, id string) (domain.GameState, error) {
	g, err := s.game(userID, id)
	if err != nil {
		return domain.GameState{}, err
	}
	return g.next()
}

// End stops a game early and drops it.
func (s *GameService) End(_ context.Context, userID int64, id string) (domain.GameState, error) {
	g, err := s.game(userID, id)
	if err != nil {
		return domain.GameState{}, err
	}
	st := g.end()
	s.games.DeleteIfOver(id)
	return st, nil
}

// Subscribe returns a channel of state snapshots for a game.
// The caller must invoke the returned cancel function to avoid leaks.
func (s *GameService) Subscribe(_ context.Context, userID int64, id string) (<-chan domain.GameState, func(), error) {
	g, err := s.game(userID, id)
	if err != nil {
		return nil, nil, err
	}
	ch, cancel := g.Subscribe()
	return ch, cancel, nil
}

// Release drops a finished game from the store.
func (s *GameService) Release(id string) {
	s.games.DeleteIfOver(id)
}

// Sweep evicts finished games after FinishedGameTTL and abandoned ones after
// IdleGameTTL. A game with a live subscriber is never idle.
func (s *GameService) Sweep() int {
	now := s.now()
	removed := s.games.Sweep(func(g *Game) bool {
		touched, over, watched := g.activity()
		if over {
			return now.Sub(touched) >= FinishedGameTTL
		}
		return !watched && now.Sub(touched) >= IdleGameTTL
	})
	if removed > 0 {
		metrics.GamesEvictedTotal.Add(float64(removed))
		s.log.Debug("games evicted", zap.Int("count", removed))
	}
	return removed
}

// RunJanitor calls Sweep every interval until ctx is cancelled.
func (s *GameService) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
