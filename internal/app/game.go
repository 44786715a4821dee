package app

import (
	"math"
	"sync"
	"time"

	"wellness-quiz-service/internal/domain"
	"wellness-quiz-service/internal/game"
)

// Game is one player's server-side run through a set of questions. It owns
// the question timer and fans state snapshots out to subscribers.
type Game struct {
	id        string
	userID    int64
	mode      domain.GameMode
	limit     time.Duration
	questions []domain.Question
	now       func() time.Time

	mu          sync.RWMutex
	index       int
	deadline    time.Time
	answered    bool
	score       int
	streak      int
	used        domain.UsedLifelines
	eliminated  []int
	tip         string
	last        *domain.AnswerResult
	over        bool
	touched     time.Time
	subscribers map[chan domain.GameState]struct{}
}

// NewGame opens the first question immediately.
func NewGame(id string, userID int64, mode domain.GameMode, limit time.Duration, questions []domain.Question, now func() time.Time) *Game {
	start := now()
	return &Game{
		id:          id,
		userID:      userID,
		mode:        mode,
		limit:       limit,
		questions:   questions,
		now:         now,
		deadline:    start.Add(limit),
		touched:     start,
		subscribers: make(map[chan domain.GameState]struct{}),
	}
}

func (g *Game) ID() string { return g.id }

// IsOver reports whether every question has been played or the game was ended.
func (g *Game) IsOver() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.over
}

// activity reports when the game last changed, whether it is over and
// whether a subscriber is attached.
func (g *Game) activity() (time.Time, bool, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.touched, g.over, len(g.subscribers) > 0
}

// State returns a snapshot of the game.
func (g *Game) State() domain.GameState {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.snapshotLocked()
}

// Expired reports whether the open question ran out of time without an answer.
func (g *Game) Expired() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return !g.over && !g.answered && !g.now().Before(g.deadline)
}

type pendingAnswer struct {
	question      domain.Question
	option        int
	timeRemaining int
	used          domain.UsedLifelines
}

// beginAnswer locks the current question for scoring. Late answers count as a timeout.
func (g *Game) beginAnswer(option int, onlyIfExpired bool) (pendingAnswer, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.over {
		return pendingAnswer{}, domain.ErrGameOver
	}
	if g.answered {
		return pendingAnswer{}, domain.ErrAlreadyAnswered
	}
	q := g.questions[g.index]
	if option < -1 || option >= len(q.Options) {
		return pendingAnswer{}, domain.ErrInvalidOption
	}
	remaining := g.deadline.Sub(g.now())
	if onlyIfExpired && remaining > 0 {
		return pendingAnswer{}, errNotExpired
	}
	if remaining <= 0 {
		option = -1
		remaining = 0
	}
	g.answered = true
	g.touched = g.now()
	return pendingAnswer{
		question:      q,
		option:        option,
		timeRemaining: scaleRemaining(remaining, g.limit),
		used:          g.used,
	}, nil
}

// scaleRemaining maps the remaining time onto the 30 second scoring scale.
func scaleRemaining(remaining, limit time.Duration) int {
	if limit <= 0 || remaining <= 0 {
		return 0
	}
	return int(math.Floor(remaining.Seconds() * game.QuestionTimeLimit / limit.Seconds()))
}

func (g *Game) abortAnswer() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.answered = false
}

func (g *Game) finishAnswer(result domain.AnswerResult) domain.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.score += result.PointsEarned
	g.streak = result.Streak
	g.last = &result
	g.touched = g.now()
	return g.broadcastLocked()
}

// beginLifeline marks kind as used on the current question and returns it.
func (g *Game) beginLifeline(kind domain.LifelineKind) (domain.Question, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.over {
		return domain.Question{}, domain.ErrGameOver
	}
	if g.answered {
		return domain.Question{}, domain.ErrAlreadyAnswered
	}
	switch kind {
	case domain.FiftyFifty:
		if g.used.FiftyFifty {
			return domain.Question{}, domain.ErrLifelineUsed
		}
		g.used.FiftyFifty = true
	case domain.AskExpert:
		if g.used.AskExpert {
			return domain.Question{}, domain.ErrLifelineUsed
		}
		g.used.AskExpert = true
	default:
		return domain.Question{}, domain.ErrInvalidInput
	}
	g.touched = g.now()
	return g.questions[g.index], nil
}

func (g *Game) abortLifeline(kind domain.LifelineKind) {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch kind {
	case domain.FiftyFifty:
		g.used.FiftyFifty = false
	case domain.AskExpert:
		g.used.AskExpert = false
	}
}

func (g *Game) applyFiftyFifty(eliminated []int) domain.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.eliminated = eliminated
	return g.broadcastLocked()
}

func (g *Game) applyExpertTip(tip string) domain.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tip = tip
	return g.broadcastLocked()
}

// next opens the following question or ends the game after the last one.
func (g *Game) next() (domain.GameState, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.over {
		return domain.GameState{}, domain.ErrGameOver
	}
	if !g.answered {
		return domain.GameState{}, domain.ErrNotAnswered
	}
	g.touched = g.now()
	if g.index+1 >= len(g.questions) {
		g.over = true
		return g.broadcastLocked(), nil
	}
	g.index++
	g.answered = false
	g.used = domain.UsedLifelines{}
	g.eliminated = nil
	g.tip = ""
	g.last = nil
	g.deadline = g.now().Add(g.limit)
	return g.broadcastLocked(), nil
}

func (g *Game) end() domain.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.over = true
	g.touched = g.now()
	return g.broadcastLocked()
}

// Subscribe returns a channel that receives state snapshots, starting with
// the current one. The caller must invoke cancel to avoid leaks.
func (g *Game) Subscribe() (<-chan domain.GameState, func()) {
	ch := make(chan domain.GameState, 8)

	g.mu.Lock()
	g.subscribers[ch] = struct{}{}
	initial := g.snapshotLocked()
	g.mu.Unlock()

	ch <- initial

	cancel := func() {
		g.mu.Lock()
		if _, ok := g.subscribers[ch]; ok {
			delete(g.subscribers, ch)
			close(ch)
		}
		g.mu.Unlock()
	}
	return ch, cancel
}

func (g *Game) broadcastLocked() domain.GameState {
	st := g.snapshotLocked()
	for ch := range g.subscribers {
		select {
		case ch <- st:
		default:
			// slow reader: replace its oldest snapshot
			select {
			case <-ch:
			default:
			}
			ch <- st
		}
	}
	return st
}

func (g *Game) snapshotLocked() domain.GameState {
	st := domain.GameState{
		ID:             g.id,
		Mode:           g.mode,
		QuestionNumber: g.index + 1,
		TotalQuestions: len(g.questions),
		Score:          g.score,
		Streak:         g.streak,
		Answered:       g.answered,
		ExpertTip:      g.tip,
		UsedLifelines:  g.used,
		LastResult:     g.last,
		GameOver:       g.over,
	}
	if len(g.eliminated) > 0 {
		st.EliminatedOptions = append([]int(nil), g.eliminated...)
	}
	if !g.over {
		view := g.questions[g.index].View()
		st.Question = &view
	}
	if !g.over && !g.answered {
		if remaining := g.deadline.Sub(g.now()); remaining > 0 {
			st.TimeRemaining = int(math.Ceil(remaining.Seconds()))
		}
	}
	return st
}
