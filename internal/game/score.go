// Package game holds the quiz rules: scoring, rewards, levels, lifelines,
// question selection and achievement evaluation. Everything here is pure and
// safe for concurrent use; randomness is injected by the caller.
package game

import (
	"math"

	"wellness-quiz-service/internal/domain"
)

const (
	// QuestionTimeLimit is the number of seconds a solo-quest question stays open.
	QuestionTimeLimit = 30
	// MaxStreakMultiplier caps the streak bonus.
	MaxStreakMultiplier = 2.0
	// LifelinePenalty is applied once per lifeline used on a question.
	LifelinePenalty = 0.8
)

// StreakMultiplier adds 10% per consecutive correct answer, capped at 2x.
func StreakMultiplier(streak int) float64 {
	if streak < 0 {
		streak = 0
	}
	return math.Min(1+float64(streak)*0.1, MaxStreakMultiplier)
}

// CalculateScore returns the points for one answer. streak is the streak held
// before this answer. The result is never negative.
func CalculateScore(correct bool, basePoints, timeRemaining, streak int, used domain.UsedLifelines) int {
	if !correct || basePoints <= 0 {
		return 0
	}
	if timeRemaining < 0 {
		timeRemaining = 0
	}
	if timeRemaining > QuestionTimeLimit {
		timeRemaining = QuestionTimeLimit
	}

	points := float64(basePoints)
	// time bonus is worth up to 50% of the base
	points += math.Floor(float64(timeRemaining) / QuestionTimeLimit * (float64(basePoints) * 0.5))
	points = math.Floor(points * StreakMultiplier(streak))

	if used.FiftyFifty {
		points = math.Floor(points * LifelinePenalty)
	}
	if used.AskExpert {
		points = math.Floor(points * LifelinePenalty)
	}
	return int(points)
}

// AnswerRewards returns the experience and coins granted for a correct answer.
func AnswerRewards(d domain.Difficulty) domain.Reward {
	multiplier := 1
	switch d {
	case domain.Intermediate:
		multiplier = 2
	case domain.Advanced:
		multiplier = 3
	}
	return domain.Reward{XP: 10 * multiplier, Coins: 5 * multiplier}
}

// ExperienceForNextLevel is the experience needed to leave level.
func ExperienceForNextLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return level * 1000
}

// ApplyRewards adds xp and coins to u and rolls experience over into levels.
// It returns the number of levels gained.
func ApplyRewards(u *domain.User, xp, coins int) int {
	if u.Level < 1 {
		u.Level = 1
	}
	u.Experience += xp
	u.Coins += coins

	gained := 0
	for u.Experience >= ExperienceForNextLevel(u.Level) {
		u.Experience -= ExperienceForNextLevel(u.Level)
		u.Level++
		gained++
	}
	return gained
}

// LevelProgress is the percentage of the way to the next level.
func LevelProgress(experience, level int) float64 {
	return float64(experience) / float64(ExperienceForNextLevel(level)) * 100
}

// TopicLevel buckets a topic expertise count into a named tier and a display percentage.
func TopicLevel(expertise int) (string, int) {
	switch {
	case expertise >= 40:
		return "Expert", 100
	case expertise >= 30:
		return "Advanced", 80
	case expertise >= 20:
		return "Intermediate", 60
	case expertise >= 10:
		return "Beginner", 40
	default:
		return "Novice", 20
	}
}
