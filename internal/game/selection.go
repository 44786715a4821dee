package game

import (
	"math/rand"
	"time"

	"wellness-quiz-service/internal/domain"
)

// QuestionsPerGame is the length of a game.
const QuestionsPerGame = 10

// mixed game composition when neither topic nor difficulty is chosen
var mixedSplit = []struct {
	difficulty domain.Difficulty
	count      int
}{
	{domain.Beginner, 5},
	{domain.Intermediate, 3},
	{domain.Advanced, 2},
}

// Filter returns the questions matching difficulty and topic. Empty values match everything.
func Filter(bank []domain.Question, difficulty domain.Difficulty, topic string) []domain.Question {
	out := make([]domain.Question, 0, len(bank))
	for _, q := range bank {
		if difficulty != "" && q.Difficulty != difficulty {
			continue
		}
		if topic != "" && q.Topic != topic {
			continue
		}
		out = append(out, q)
	}
	return out
}

// SelectQuestions builds a shuffled game of at most n questions. A topic takes
// precedence over a difficulty; with neither a mixed set is drawn.
func SelectQuestions(bank []domain.Question, difficulty domain.Difficulty, topic string, n int, rnd *rand.Rand) []domain.Question {
	var pool []domain.Question
	switch {
	case topic != "":
		pool = Filter(bank, "", topic)
	case difficulty != "":
		pool = Filter(bank, difficulty, "")
	default:
		for _, part := range mixedSplit {
			pool = append(pool, pick(Filter(bank, part.difficulty, ""), part.count, rnd)...)
		}
	}
	return pick(pool, n, rnd)
}

func pick(questions []domain.Question, n int, rnd *rand.Rand) []domain.Question {
	shuffled := make([]domain.Question, len(questions))
	copy(shuffled, questions)
	rnd.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	if n >= 0 && len(shuffled) > n {
		shuffled = shuffled[:n]
	}
	return shuffled
}

// TimeLimit is how long a question stays open in mode.
func TimeLimit(mode domain.GameMode) (time.Duration, error) {
	switch mode {
	case domain.SoloQuest, "":
		return QuestionTimeLimit * time.Second, nil
	case domain.TimeAttack:
		return QuestionTimeLimit / 2 * time.Second, nil
	}
	return 0, domain.ErrUnsupportedMode
}
