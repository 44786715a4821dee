package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"wellness-quiz-service/internal/app"
	"wellness-quiz-service/internal/domain"
	"wellness-quiz-service/internal/infra/memory"
	"wellness-quiz-service/internal/logger"
)

const testOrigin = "http://localhost:5173"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logger.Nop()
	store := memory.NewStorage()
	questions := memory.NewQuestionRepository(memory.NewStaticQuestionLoader(sampleQuestions()), time.Minute)
	players := app.NewPlayerService(store, questions, memory.NewLeaderboard(), log, app.WithSeed(1))
	auth := app.NewAuthService(store, memory.NewSessionStore(time.Hour), players, log, app.WithBcryptCost(bcrypt.MinCost))
	games := app.NewGameService(memory.NewGameStore(), players, questions, log, app.WithSeed(1))

	handler := NewHandler(auth, players, games, log, false)
	ws := NewWSHandler(games, log)
	server := httptest.NewServer(NewRouter(handler, ws, []string{testOrigin}))
	t.Cleanup(server.Close)
	return server
}

func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &http.Client{Jar: jar}
}

func do(t *testing.T, c *http.Client, method, url string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s %s: %v", method, url, err)
		}
	}
	return resp.StatusCode
}

func registerAndLogin(t *testing.T, server *httptest.Server, c *http.Client, username string) {
	t.Helper()
	creds := map[string]string{"username": username, "password": "secret1"}
	if code := do(t, c, http.MethodPost, server.URL+"/api/register", creds, nil); code != http.StatusCreated {
		t.Fatalf("register: status %d", code)
	}
	if code := do(t, c, http.MethodPost, server.URL+"/api/login", creds, nil); code != http.StatusOK {
		t.Fatalf("login: status %d", code)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	server := newTestServer(t)
	c := newClient(t)

	var msg errorPayload
	if code := do(t, c, http.MethodPost, server.URL+"/api/register", map[string]string{"username": "al", "password": "secret1"}, &msg); code != http.StatusBadRequest {
		t.Fatalf("expected 400 for short username, got %d", code)
	}
	if !strings.Contains(msg.Message, "username") {
		t.Fatalf("expected field name in message, got %q", msg.Message)
	}

	creds := map[string]string{"username": "alice", "password": "secret1"}
	if code := do(t, c, http.MethodPost, server.URL+"/api/auth/register", creds, nil); code != http.StatusCreated {
		t.Fatalf("register: %d", code)
	}
	if code := do(t, c, http.MethodPost, server.URL+"/api/register", creds, nil); code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate, got %d", code)
	}

	if code := do(t, c, http.MethodGet, server.URL+"/api/user/profile", nil, nil); code != http.StatusUnauthorized {
		t.Fatalf("expected 401 before login, got %d", code)
	}
	if code := do(t, c, http.MethodPost, server.URL+"/api/login", map[string]string{"username": "alice", "password": "wrong!!"}, nil); code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", code)
	}

	var login struct {
		User domain.UserProfile `json:"user"`
	}
	if code := do(t, c, http.MethodPost, server.URL+"/api/login", creds, &login); code != http.StatusOK {
		t.Fatalf("login: %d", code)
	}
	if login.User.Username != "alice" || login.User.Level != 1 || login.User.ExperienceToNextLevel != 1000 {
		t.Fatalf("unexpected profile %+v", login.User)
	}
	if login.User.Lifelines.FiftyFifty != 3 || login.User.Lifelines.AskExpert != 3 {
		t.Fatalf("expected 3/3 lifelines, got %+v", login.User.Lifelines)
	}

	var profile domain.UserProfile
	if code := do(t, c, http.MethodGet, server.URL+"/api/user/profile", nil, &profile); code != http.StatusOK {
		t.Fatalf("profile: %d", code)
	}
	if profile.Stats.LoginStreak != 1 {
		t.Fatalf("expected login streak 1, got %d", profile.Stats.LoginStreak)
	}

	if code := do(t, c, http.MethodPost, server.URL+"/api/logout", nil, nil); code != http.StatusOK {
		t.Fatalf("logout: %d", code)
	}
	if code := do(t, c, http.MethodGet, server.URL+"/api/user/profile", nil, nil); code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", code)
	}
}

func TestQuestionsHideAnswerKey(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/game/questions?difficulty=beginner")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	var raw []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("expected 1 beginner question, got %d", len(raw))
	}
	if _, ok := raw[0]["correctOptionIndex"]; ok {
		t.Fatalf("answer key leaked: %v", raw[0])
	}

	if code := do(t, http.DefaultClient, http.MethodGet, server.URL+"/api/game/questions?difficulty=expert", nil, nil); code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown difficulty, got %d", code)
	}
}

func TestAnswerFlow(t *testing.T) {
	server := newTestServer(t)
	c := newClient(t)
	registerAndLogin(t, server, c, "bob")

	var result domain.AnswerResult
	code := do(t, c, http.MethodPost, server.URL+"/api/game/answer", map[string]any{
		"questionId": "q1", "answer": 2, "timeRemaining": 30,
	}, &result)
	if code != http.StatusOK {
		t.Fatalf("answer: %d", code)
	}
	if !result.Correct || result.PointsEarned != 150 || result.Streak != 1 {
		t.Fatalf("unexpected result %+v", result)
	}
	if result.Rewards == nil || result.Rewards.XP != 10 || result.Rewards.Coins != 5 {
		t.Fatalf("unexpected rewards %+v", result.Rewards)
	}
	// every topic in the bank now has a correct answer
	if len(result.UnlockedAchievements) != 1 || result.UnlockedAchievements[0].ID != "all-topics" {
		t.Fatalf("unexpected unlocks %+v", result.UnlockedAchievements)
	}
	if result.Coins != 130 || result.Experience != 260 {
		t.Fatalf("expected answer and achievement rewards, got coins=%d xp=%d", result.Coins, result.Experience)
	}

	if code := do(t, c, http.MethodPost, server.URL+"/api/game/answer", map[string]any{"questionId": "nope", "answer": 0}, nil); code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown question, got %d", code)
	}
	if code := do(t, c, http.MethodPost, server.URL+"/api/game/answer", map[string]any{"questionId": "q1"}, nil); code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing answer, got %d", code)
	}

	var board []domain.LeaderboardEntry
	if code := do(t, c, http.MethodGet, server.URL+"/api/leaderboard?limit=5", nil, &board); code != http.StatusOK {
		t.Fatalf("leaderboard: %d", code)
	}
	if len(board) != 1 || board[0].Username != "bob" || board[0].Score != 150 {
		t.Fatalf("unexpected leaderboard %+v", board)
	}
	if code := do(t, c, http.MethodGet, server.URL+"/api/leaderboard?limit=zero", nil, nil); code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad limit, got %d", code)
	}
}

func TestLifelinesRunOut(t *testing.T) {
	server := newTestServer(t)
	c := newClient(t)
	registerAndLogin(t, server, c, "carol")

	for i := 0; i < 3; i++ {
		var out struct {
			Eliminated []int            `json:"eliminatedOptions"`
			Lifelines  domain.Lifelines `json:"lifelines"`
		}
		if code := do(t, c, http.MethodPost, server.URL+"/api/game/lifelines/fifty-fifty", map[string]string{"questionId": "q1"}, &out); code != http.StatusOK {
			t.Fatalf("fifty-fifty %d: %d", i, code)
		}
		if len(out.Eliminated) != 2 || out.Lifelines.FiftyFifty != 2-i {
			t.Fatalf("unexpected response %+v", out)
		}
	}
	if code := do(t, c, http.MethodPost, server.URL+"/api/game/lifelines/fifty-fifty", map[string]string{"questionId": "q1"}, nil); code != http.StatusConflict {
		t.Fatalf("expected 409 once exhausted, got %d", code)
	}

	var tip struct {
		ExpertTip string `json:"expertTip"`
	}
	if code := do(t, c, http.MethodPost, server.URL+"/api/game/lifelines/ask-expert", map[string]string{"questionId": "q1"}, &tip); code != http.StatusOK {
		t.Fatalf("ask-expert: %d", code)
	}
	if !strings.Contains(tip.ExpertTip, "Tr0ub4dor&3!x") {
		t.Fatalf("tip does not name the answer: %q", tip.ExpertTip)
	}
}

func TestAvatars(t *testing.T) {
	server := newTestServer(t)
	c := newClient(t)
	registerAndLogin(t, server, c, "dave")

	var avatars []domain.Avatar
	if code := do(t, c, http.MethodGet, server.URL+"/api/avatars", nil, &avatars); code != http.StatusOK {
		t.Fatalf("avatars: %d", code)
	}
	owned := 0
	for _, a := range avatars {
		if a.Owned {
			owned++
		}
	}
	if owned != 3 {
		t.Fatalf("expected 3 starter avatars, got %d", owned)
	}

	if code := do(t, c, http.MethodPost, server.URL+"/api/avatars/purchase", map[string]string{"avatarId": "cyber-ninja"}, nil); code != http.StatusBadRequest {
		t.Fatalf("expected 400 for insufficient coins, got %d", code)
	}
	if code := do(t, c, http.MethodPost, server.URL+"/api/avatars/select", map[string]string{"avatarId": "cyber-ninja"}, nil); code != http.StatusForbidden {
		t.Fatalf("expected 403 for unowned avatar, got %d", code)
	}
	if code := do(t, c, http.MethodPost, server.URL+"/api/avatars/select", map[string]string{"avatarId": "ghost"}, nil); code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown avatar, got %d", code)
	}

	var selected struct {
		AvatarID string `json:"avatarId"`
	}
	if code := do(t, c, http.MethodPost, server.URL+"/api/avatars/select", map[string]string{"avatarId": "robot"}, &selected); code != http.StatusOK {
		t.Fatalf("select: %d", code)
	}
	if selected.AvatarID != "robot" {
		t.Fatalf("unexpected avatar %q", selected.AvatarID)
	}
}

func TestAchievementsList(t *testing.T) {
	server := newTestServer(t)
	c := newClient(t)
	registerAndLogin(t, server, c, "erin")

	var list []domain.AchievementStatus
	if code := do(t, c, http.MethodGet, server.URL+"/api/achievements", nil, &list); code != http.StatusOK {
		t.Fatalf("achievements: %d", code)
	}
	if len(list) == 0 {
		t.Fatalf("expected catalog entries")
	}
	for _, a := range list {
		if a.Unlocked {
			t.Fatalf("fresh user has unlocked %s", a.ID)
		}
	}
}

func TestHealthAndMetrics(t *testing.T) {
	server := newTestServer(t)
	for _, path := range []string{"/healthz", "/metrics"} {
		resp, err := http.Get(server.URL + path)
		if err != nil {
			t.Fatalf("get %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s: status %d", path, resp.StatusCode)
		}
	}
}

func sampleQuestions() []domain.Question {
	return []domain.Question{
		{
			ID:                 "q1",
			Text:               "Which password is strongest?",
			Options:            []string{"password", "123456", "Tr0ub4dor&3!x", "qwerty"},
			CorrectOptionIndex: 2,
			Explanation:        "Length and mixed characters win.",
			SecurityTip:        "Use a password manager.",
			Difficulty:         domain.Beginner,
			Topic:              "Internet Safety",
			Points:             100,
		},
		{
			ID:                 "q2",
			Text:               "What should you do with a suspicious link?",
			Options:            []string{"Click it", "Forward it", "Report it", "Reply"},
			CorrectOptionIndex: 2,
			Explanation:        "Reporting helps protect others.",
			SecurityTip:        "Hover to preview links.",
			Difficulty:         domain.Intermediate,
			Topic:              "Internet Safety",
			Points:             150,
		},
	}
}

func TestCORSOnlyTrustsConfiguredOrigins(t *testing.T) {
	server := newTestServer(t)

	preflight := func(origin string) *http.Response {
		req, err := http.NewRequest(http.MethodOptions, server.URL+"/api/user/profile", nil)
		if err != nil {
			t.Fatalf("new request: %v", err)
		}
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("preflight: %v", err)
		}
		resp.Body.Close()
		return resp
	}

	resp := preflight(testOrigin)
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != testOrigin {
		t.Fatalf("expected %s to be allowed, got %q", testOrigin, got)
	}
	if resp.Header.Get("Access-Control-Allow-Credentials") != "true" {
		t.Fatal("expected credentials to be allowed for the configured origin")
	}

	resp = preflight("https://attacker.example")
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unexpected allow-origin %q for foreign origin", got)
	}
}
