package domain

import "time"

// Difficulty grades a question and drives answer rewards.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Valid reports whether d is one of the known difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

// GameMode selects how a game session is timed.
type GameMode string

const (
	SoloQuest     GameMode = "solo-quest"
	TimeAttack    GameMode = "time-attack"
	TeamChallenge GameMode = "team-challenge"
)

// LifelineKind names a limited-use in-game aid.
type LifelineKind string

const (
	FiftyFifty LifelineKind = "fifty-fifty"
	AskExpert  LifelineKind = "ask-expert"
)

// UserStats is the per-user answer history summary.
type UserStats struct {
	QuestionsAnswered int            `json:"questionsAnswered"`
	CorrectAnswers    int            `json:"correctAnswers"`
	CurrentStreak     int            `json:"currentStreak"`
	HighestStreak     int            `json:"highestStreak"`
	LoginStreak       int            `json:"loginStreak"`
	LastLoginDay      string         `json:"lastLoginDay,omitempty"`
	TotalScore        int            `json:"totalScore"`
	TopicsExpertise   map[string]int `json:"topicsExpertise"`
}

// NewUserStats returns zeroed stats with an initialized expertise map.
func NewUserStats() UserStats {
	return UserStats{TopicsExpertise: make(map[string]int)}
}

// User is a registered player. PasswordHash is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash []byte    `json:"-"`
	Level        int       `json:"level"`
	Experience   int       `json:"experience"`
	Coins        int       `json:"coins"`
	AvatarID     string    `json:"avatarId"`
	CreatedAt    time.Time `json:"createdAt"`
	LastLoginAt  time.Time `json:"lastLoginAt"`
	Stats        UserStats `json:"stats"`
}

// Question models a four-option multiple choice question with exactly one correct option.
type Question struct {
	ID                 string     `json:"id"`
	Text               string     `json:"text"`
	Options            []string   `json:"options"`
	CorrectOptionIndex int        `json:"correctOptionIndex"`
	Explanation        string     `json:"explanation"`
	SecurityTip        string     `json:"securityTip"`
	Difficulty         Difficulty `json:"difficulty"`
	Topic              string     `json:"topic"`
	Points             int        `json:"points"`
}

// QuestionView is the client-facing question without the answer key.
type QuestionView struct {
	ID         string     `json:"id"`
	Text       string     `json:"text"`
	Options    []string   `json:"options"`
	Difficulty Difficulty `json:"difficulty"`
	Topic      string     `json:"topic"`
	Points     int        `json:"points"`
}

// View strips the answer key from q.
func (q Question) View() QuestionView {
	return QuestionView{
		ID:         q.ID,
		Text:       q.Text,
		Options:    q.Options,
		Difficulty: q.Difficulty,
		Topic:      q.Topic,
		Points:     q.Points,
	}
}

// RequirementType is the kind of rule an achievement is unlocked by.
type RequirementType string

const (
	QuestionsByDifficulty RequirementType = "questions_by_difficulty"
	CorrectByDifficulty   RequirementType = "correct_by_difficulty"
	CorrectByTopic        RequirementType = "correct_by_topic"
	AllInTopic            RequirementType = "all_in_topic"
	StreakRequirement     RequirementType = "streak"
	AllTopics             RequirementType = "all_topics"
	LoginStreak           RequirementType = "login_streak"
)

// Requirement is the static unlock rule of an achievement.
type Requirement struct {
	Type       RequirementType `json:"type"`
	Difficulty Difficulty      `json:"difficulty,omitempty"`
	Topic      string          `json:"topic,omitempty"`
	Count      int             `json:"count,omitempty"`
}

// Reward is granted once when an achievement unlocks.
type Reward struct {
	XP    int `json:"xp"`
	Coins int `json:"coins"`
}

// Achievement is a static catalog entry.
type Achievement struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Requirement Requirement `json:"-"`
	Reward      Reward      `json:"reward"`
}

// AchievementStatus is an achievement as seen by a specific user.
type AchievementStatus struct {
	Achievement
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlockedAt,omitempty"`
}

// UserAchievement records a single unlock.
type UserAchievement struct {
	UserID        int64     `json:"userId"`
	AchievementID string    `json:"achievementId"`
	UnlockedAt    time.Time `json:"unlockedAt"`
}

// Lifelines holds the remaining lifeline counters of a user. Counters never go below zero.
type Lifelines struct {
	FiftyFifty      int       `json:"fiftyFifty"`
	AskExpert       int       `json:"askExpert"`
	LastRefreshedAt time.Time `json:"-"`
}

// UsedLifelines flags which lifelines were used on a single question.
type UsedLifelines struct {
	FiftyFifty bool `json:"fiftyFifty"`
	AskExpert  bool `json:"askExpert"`
}

// GameProgress is a single answer log entry.
type GameProgress struct {
	UserID            int64      `json:"userId"`
	QuestionID        string     `json:"questionId"`
	AnsweredCorrectly bool       `json:"answeredCorrectly"`
	Difficulty        Difficulty `json:"difficulty"`
	Topic             string     `json:"topic"`
	AnsweredAt        time.Time  `json:"answeredAt"`
}

// Avatar is a static catalog entry; Owned is filled per user.
type Avatar struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Cost     int    `json:"cost"`
	Owned    bool   `json:"unlocked"`
}

// UserProfile is the aggregate returned to a logged in user.
type UserProfile struct {
	ID                    int64               `json:"id"`
	Username              string              `json:"username"`
	Level                 int                 `json:"level"`
	Experience            int                 `json:"experience"`
	ExperienceToNextLevel int                 `json:"experienceToNextLevel"`
	Coins                 int                 `json:"coins"`
	AvatarID              string              `json:"avatarId"`
	Stats                 UserStats           `json:"stats"`
	Achievements          []AchievementStatus `json:"achievements"`
	Lifelines             Lifelines           `json:"lifelines"`
}

// AnswerSubmission is a single answer from a client.
type AnswerSubmission struct {
	QuestionID          string
	SelectedOptionIndex int // -1 when the timer ran out
	TimeRemaining       int
	UsedLifelines       UsedLifelines
}

// AnswerResult summarizes the outcome of a submission.
type AnswerResult struct {
	QuestionID           string        `json:"questionId"`
	Correct              bool          `json:"correct"`
	CorrectOptionIndex   int           `json:"correctOptionIndex"`
	Explanation          string        `json:"explanation"`
	SecurityTip          string        `json:"securityTip"`
	PointsEarned         int           `json:"pointsEarned"`
	Streak               int           `json:"streak"`
	StreakMultiplier     float64       `json:"streakMultiplier"`
	Rewards              *Reward       `json:"rewards"`
	UnlockedAchievements []Achievement `json:"unlockedAchievements"`
	Level                int           `json:"level"`
	Experience           int           `json:"experience"`
	Coins                int           `json:"coins"`
}

// LeaderboardEntry is one ranked row.
type LeaderboardEntry struct {
	Rank     int64  `json:"rank"`
	Username string `json:"username"`
	Score    int64  `json:"score"`
}

// GameState is a snapshot of a server-side game, pushed to websocket subscribers.
type GameState struct {
	ID                string        `json:"id"`
	Mode              GameMode      `json:"mode"`
	QuestionNumber    int           `json:"questionNumber"`
	TotalQuestions    int           `json:"totalQuestions"`
	Question          *QuestionView `json:"question,omitempty"`
	TimeRemaining     int           `json:"timeRemaining"`
	Score             int           `json:"score"`
	Streak            int           `json:"streak"`
	Answered          bool          `json:"answered"`
	EliminatedOptions []int         `json:"eliminatedOptions,omitempty"`
	ExpertTip         string        `json:"expertTip,omitempty"`
	UsedLifelines     UsedLifelines `json:"usedLifelines"`
	LastResult        *AnswerResult `json:"lastResult,omitempty"`
	GameOver          bool          `json:"gameOver"`
}
