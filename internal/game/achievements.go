package game

import "wellness-quiz-service/internal/domain"

// EvaluateAchievements returns the rules in catalog order that are satisfied by
// the user's stats and answer history and are not in unlocked yet.
func EvaluateAchievements(
	stats domain.UserStats,
	progress []domain.GameProgress,
	unlocked map[string]bool,
	bank []domain.Question,
	rules []domain.Achievement,
) []domain.Achievement {
	h := summarize(progress)

	var out []domain.Achievement
	for _, a := range rules {
		if unlocked[a.ID] {
			continue
		}
		if satisfied(a.Requirement, stats, h, bank) {
			out = append(out, a)
		}
	}
	return out
}

type history struct {
	correctByDifficulty map[domain.Difficulty]int
	correctByTopic      map[string]int
	correctQuestions    map[string]bool
}

func summarize(progress []domain.GameProgress) history {
	h := history{
		correctByDifficulty: make(map[domain.Difficulty]int),
		correctByTopic:      make(map[string]int),
		correctQuestions:    make(map[string]bool),
	}
	for _, p := range progress {
		if !p.AnsweredCorrectly {
			continue
		}
		h.correctByDifficulty[p.Difficulty]++
		h.correctByTopic[p.Topic]++
		h.correctQuestions[p.QuestionID] = true
	}
	return h
}

func satisfied(r domain.Requirement, stats domain.UserStats, h history, bank []domain.Question) bool {
	switch r.Type {
	case domain.QuestionsByDifficulty, domain.CorrectByDifficulty:
		return h.correctByDifficulty[r.Difficulty] >= r.Count
	case domain.CorrectByTopic:
		return h.correctByTopic[r.Topic] >= r.Count
	case domain.AllInTopic:
		found := false
		for _, q := range bank {
			if q.Topic != r.Topic {
				continue
			}
			found = true
			if !h.correctQuestions[q.ID] {
				return false
			}
		}
		return found
	case domain.StreakRequirement:
		return stats.HighestStreak >= r.Count
	case domain.AllTopics:
		topics := Topics(bank)
		if len(topics) == 0 {
			return false
		}
		for _, t := range topics {
			if h.correctByTopic[t] == 0 {
				return false
			}
		}
		return true
	case domain.LoginStreak:
		return stats.LoginStreak >= r.Count
	}
	return false
}

// Topics returns the distinct topics of bank in first-seen order.
func Topics(bank []domain.Question) []string {
	seen := make(map[string]bool)
	var topics []string
	for _, q := range bank {
		if !seen[q.Topic] {
			seen[q.Topic] = true
			topics = append(topics, q.Topic)
		}
	}
	return topics
}
