package game

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"wellness-quiz-service/internal/domain"
)

func TestCalculateScore(t *testing.T) {
	tests := []struct {
		name      string
		correct   bool
		base      int
		remaining int
		streak    int
		used      domain.UsedLifelines
		want      int
	}{
		{name: "incorrect", correct: false, base: 100, remaining: 30, want: 0},
		{name: "full time bonus", correct: true, base: 100, remaining: 30, want: 150},
		{name: "half time bonus", correct: true, base: 100, remaining: 15, want: 125},
		{name: "no time left", correct: true, base: 100, remaining: 0, want: 100},
		{name: "streak of three", correct: true, base: 100, remaining: 30, streak: 3, want: 195},
		{name: "streak capped", correct: true, base: 100, remaining: 30, streak: 25, want: 300},
		{name: "fifty fifty penalty", correct: true, base: 100, remaining: 30, used: domain.UsedLifelines{FiftyFifty: true}, want: 120},
		{name: "both lifelines", correct: true, base: 100, remaining: 30, used: domain.UsedLifelines{FiftyFifty: true, AskExpert: true}, want: 96},
		{name: "remaining clamped", correct: true, base: 100, remaining: 90, want: 150},
		{name: "negative remaining", correct: true, base: 100, remaining: -5, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateScore(tt.correct, tt.base, tt.remaining, tt.streak, tt.used)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScoreProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("score is never negative", prop.ForAll(
		func(base, remaining, streak int, fifty, expert bool) bool {
			used := domain.UsedLifelines{FiftyFifty: fifty, AskExpert: expert}
			return CalculateScore(true, base, remaining, streak, used) >= 0
		},
		gen.IntRange(-100, 1000),
		gen.IntRange(-60, 60),
		gen.IntRange(-10, 100),
		gen.Bool(),
		gen.Bool(),
	))

	properties.Property("streak multiplier is capped at 2x", prop.ForAll(
		func(streak int) bool {
			m := StreakMultiplier(streak)
			return m >= 1 && m <= MaxStreakMultiplier
		},
		gen.IntRange(-50, 1000),
	))

	properties.Property("score never exceeds three times the base", prop.ForAll(
		func(base, remaining, streak int) bool {
			return CalculateScore(true, base, remaining, streak, domain.UsedLifelines{}) <= 3*base
		},
		gen.IntRange(1, 1000),
		gen.IntRange(0, 30),
		gen.IntRange(0, 100),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestApplyRewardsLevelsUp(t *testing.T) {
	u := &domain.User{Level: 1, Experience: 950}

	gained := ApplyRewards(u, 100, 5)
	assert.Equal(t, 1, gained)
	assert.Equal(t, 2, u.Level)
	assert.Equal(t, 50, u.Experience)
	assert.Equal(t, 5, u.Coins)

	// 50 + 5000 rolls over level 2 (2000) and level 3 (3000)
	gained = ApplyRewards(u, 5000, 0)
	assert.Equal(t, 2, gained)
	assert.Equal(t, 4, u.Level)
	assert.Equal(t, 50, u.Experience)
}

func TestAnswerRewards(t *testing.T) {
	assert.Equal(t, domain.Reward{XP: 10, Coins: 5}, AnswerRewards(domain.Beginner))
	assert.Equal(t, domain.Reward{XP: 20, Coins: 10}, AnswerRewards(domain.Intermediate))
	assert.Equal(t, domain.Reward{XP: 30, Coins: 15}, AnswerRewards(domain.Advanced))
}

func TestTopicLevel(t *testing.T) {
	name, pct := TopicLevel(42)
	assert.Equal(t, "Expert", name)
	assert.Equal(t, 100, pct)

	name, pct = TopicLevel(3)
	assert.Equal(t, "Novice", name)
	assert.Equal(t, 20, pct)
}
