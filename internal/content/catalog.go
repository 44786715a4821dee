package content

import (
	"wellness-quiz-service/internal/domain"
)

const (
	// DefaultLifelines is the per-counter allowance granted at registration and on refresh.
	DefaultLifelines = 3
	// DefaultAvatarID is selected for every new user.
	DefaultAvatarID = "default"
)

// StarterAvatars are owned by every user from registration.
var StarterAvatars = []string{"default", "robot", "hacker"}

// Achievements is the static achievement catalog, evaluated in this order.
var Achievements = []domain.Achievement{
	{
		ID:          "beginner-complete",
		Name:        "Digital Wellness Novice",
		Description: "Complete 10 beginner-level questions",
		Icon:        "shield-alt",
		Requirement: domain.Requirement{Type: domain.QuestionsByDifficulty, Difficulty: domain.Beginner, Count: 10},
		Reward:      domain.Reward{XP: 100, Coins: 50},
	},
	{
		ID:          "safety-expert",
		Name:        "Internet Safety Expert",
		Description: "Correctly answer 10 internet safety questions",
		Icon:        "shield-check",
		Requirement: domain.Requirement{Type: domain.CorrectByTopic, Topic: "Internet Safety", Count: 10},
		Reward:      domain.Reward{XP: 200, Coins: 100},
	},
	{
		ID:          "footprint-master",
		Name:        "Digital Footprint Master",
		Description: "Complete all digital footprint challenges",
		Icon:        "fingerprint",
		Requirement: domain.Requirement{Type: domain.AllInTopic, Topic: "Digital Footprint"},
		Reward:      domain.Reward{XP: 300, Coins: 150},
	},
	{
		ID:          "screen-balance",
		Name:        "Screen Time Guru",
		Description: "Answer all screen time management questions correctly",
		Icon:        "clock",
		Requirement: domain.Requirement{Type: domain.AllInTopic, Topic: "Screen Time Management"},
		Reward:      domain.Reward{XP: 250, Coins: 125},
	},
	{
		ID:          "cyberbullying-awareness",
		Name:        "Kindness Advocate",
		Description: "Master all cyberbullying prevention questions",
		Icon:        "heart",
		Requirement: domain.Requirement{Type: domain.AllInTopic, Topic: "Cyberbullying"},
		Reward:      domain.Reward{XP: 275, Coins: 140},
	},
	{
		ID:          "digital-detox",
		Name:        "Digital Detox Master",
		Description: "Complete 15 Digital Wellness questions",
		Icon:        "leaf",
		Requirement: domain.Requirement{Type: domain.CorrectByTopic, Topic: "Digital Wellness", Count: 15},
		Reward:      domain.Reward{XP: 325, Coins: 175},
	},
	{
		ID:          "streak-5",
		Name:        "On Fire!",
		Description: "Answer 5 questions correctly in a row",
		Icon:        "fire",
		Requirement: domain.Requirement{Type: domain.StreakRequirement, Count: 5},
		Reward:      domain.Reward{XP: 100, Coins: 50},
	},
	{
		ID:          "streak-10",
		Name:        "Perfect Streak",
		Description: "Answer 10 questions correctly in a row",
		Icon:        "medal",
		Requirement: domain.Requirement{Type: domain.StreakRequirement, Count: 10},
		Reward:      domain.Reward{XP: 300, Coins: 150},
	},
	{
		ID:          "daily-login-7",
		Name:        "Wellness Warrior",
		Description: "Log in for 7 consecutive days",
		Icon:        "calendar-check",
		Requirement: domain.Requirement{Type: domain.LoginStreak, Count: 7},
		Reward:      domain.Reward{XP: 150, Coins: 100},
	},
	{
		ID:          "all-topics",
		Name:        "Balanced Digital Citizen",
		Description: "Answer at least one question from each topic",
		Icon:        "star",
		Requirement: domain.Requirement{Type: domain.AllTopics},
		Reward:      domain.Reward{XP: 250, Coins: 125},
	},
	{
		ID:          "advanced-5",
		Name:        "Digital Wellness Expert",
		Description: "Correctly answer 5 advanced questions",
		Icon:        "user-graduate",
		Requirement: domain.Requirement{Type: domain.CorrectByDifficulty, Difficulty: domain.Advanced, Count: 5},
		Reward:      domain.Reward{XP: 400, Coins: 200},
	},
}

// Avatars is the avatar catalog; starter avatars cost nothing.
var Avatars = []domain.Avatar{
	{ID: "default", Name: "Digital Wellness Advocate", ImageURL: "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?auto=format&fit=crop&w=200&q=80", Cost: 0},
	{ID: "robot", Name: "DigitalBot", ImageURL: "https://images.unsplash.com/photo-1566492031773-4f4e44671857?auto=format&fit=crop&w=100&q=80", Cost: 0},
	{ID: "hacker", Name: "Tech Whiz", ImageURL: "https://images.unsplash.com/photo-1548407260-da850faa41e3?auto=format&fit=crop&w=100&q=80", Cost: 0},
	{ID: "cyber-ninja", Name: "Digital Ninja", ImageURL: "https://images.unsplash.com/photo-1580927752452-89d86da3fa0a?auto=format&fit=crop&w=100&q=80", Cost: 500},
	{ID: "security-guru", Name: "Wellness Guru", ImageURL: "https://images.unsplash.com/photo-1607746882042-944635dfe10e?auto=format&fit=crop&w=100&q=80", Cost: 750},
	{ID: "cyber-detective", Name: "Digital Detective", ImageURL: "https://images.unsplash.com/photo-1543610892-0b1f7e6d8ac1?auto=format&fit=crop&w=100&q=80", Cost: 1000},
}

// FindAvatar looks up a catalog avatar by ID.
func FindAvatar(id string) (domain.Avatar, bool) {
	for _, a := range Avatars {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Avatar{}, false
}

// FindAchievement looks up a catalog achievement by ID.
func FindAchievement(id string) (domain.Achievement, bool) {
	for _, a := range Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Achievement{}, false
}

// DemoUser describes an account created by the `seed` command.
type DemoUser struct {
	Username   string
	Password   string
	Level      int
	Experience int
	Coins      int
	Stats      domain.UserStats
	Unlocked   []string
}

// DemoUsers are the ready-made accounts, with some play history, that seeding creates.
var DemoUsers = []DemoUser{
	{
		Username: "demo", Password: "password", Level: 5, Experience: 650, Coins: 180,
		Stats: domain.UserStats{
			QuestionsAnswered: 45, CorrectAnswers: 36, HighestStreak: 8, TotalScore: 4620,
			TopicsExpertise: map[string]int{
				"Internet Safety": 8, "Digital Footprint": 7, "Screen Time Management": 6,
				"Cyberbullying": 5, "Digital Wellness": 6, "Online Identity": 4,
			},
		},
		Unlocked: []string{"streak-5"},
	},
	{
		Username: "beginner", Password: "password", Level: 2, Experience: 150, Coins: 80,
		Stats: domain.UserStats{
			QuestionsAnswered: 10, CorrectAnswers: 7, HighestStreak: 3, TotalScore: 805,
			TopicsExpertise: map[string]int{
				"Internet Safety": 3, "Digital Footprint": 2, "Screen Time Management": 1, "Digital Wellness": 1,
			},
		},
	},
	{
		Username: "expert", Password: "password", Level: 10, Experience: 2500, Coins: 450,
		Stats: domain.UserStats{
			QuestionsAnswered: 95, CorrectAnswers: 87, HighestStreak: 20, TotalScore: 13950,
			TopicsExpertise: map[string]int{
				"Internet Safety": 18, "Digital Footprint": 22, "Screen Time Management": 15,
				"Cyberbullying": 19, "Digital Wellness": 8, "Digital Literacy": 5,
			},
		},
		Unlocked: []string{"streak-5", "streak-10"},
	},
}
