package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"

	"wellness-quiz-service/internal/app"
	"wellness-quiz-service/internal/domain"
	"wellness-quiz-service/internal/logger"
)

// SessionCookie carries the login session token.
const SessionCookie = "sid"

var (
	errBadRequest         = errors.New("malformed request body")
	errUnsupportedMessage = errors.New("unsupported message type")
)

// Handler serves the JSON API.
type Handler struct {
	auth         *app.AuthService
	players      *app.PlayerService
	games        *app.GameService
	log          *logger.Logger
	validate     *validator.Validate
	secureCookie bool
}

func NewHandler(auth *app.AuthService, players *app.PlayerService, games *app.GameService, log *logger.Logger, secureCookie bool) *Handler {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return &Handler{
		auth:         auth,
		players:      players,
		games:        games,
		log:          log,
		validate:     v,
		secureCookie: secureCookie,
	}
}

// decode reads a JSON body into dst and validates it. An empty body decodes as {}.
func (h *Handler) decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return errBadRequest
	}
	return h.validate.Struct(dst)
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	u, err := h.auth.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User registered successfully",
		"user":    u,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	profile, token, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]any{"user": profile})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(SessionCookie); err == nil {
		if err := h.auth.Logout(r.Context(), c.Value); err != nil {
			h.writeError(w, r, err)
			return
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
	})
	writeMessage(w, http.StatusOK, "Logged out successfully")
}

type ctxKey struct{}

// RequireUser resolves the session cookie and rejects anonymous requests.
func (h *Handler) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(SessionCookie)
		if err != nil {
			h.writeError(w, r, domain.ErrUnauthenticated)
			return
		}
		userID, err := h.auth.Authenticate(r.Context(), c.Value)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, userID)))
	})
}

func userID(r *http.Request) int64 {
	id, _ := r.Context().Value(ctxKey{}).(int64)
	return id
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.players.Profile(r.Context(), userID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) Lifelines(w http.ResponseWriter, r *http.Request) {
	l, err := h.players.Lifelines(r.Context(), userID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

type questionsQuery struct {
	Difficulty domain.Difficulty `validate:"omitempty,oneof=beginner intermediate advanced"`
	Topic      string            `validate:"max=100"`
}

func (h *Handler) Questions(w http.ResponseWriter, r *http.Request) {
	q := questionsQuery{
		Difficulty: domain.Difficulty(r.URL.Query().Get("difficulty")),
		Topic:      r.URL.Query().Get("topic"),
	}
	if err := h.validate.Struct(q); err != nil {
		h.writeError(w, r, err)
		return
	}
	views, err := h.players.Questions(r.Context(), q.Difficulty, q.Topic)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) Topics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.players.Topics(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, topics)
}

type answerRequest struct {
	QuestionID    string               `json:"questionId" validate:"required"`
	Answer        *int                 `json:"answer" validate:"required,min=-1"`
	TimeRemaining int                  `json:"timeRemaining" validate:"min=0"`
	UsedLifelines domain.UsedLifelines `json:"usedLifelines"`
}

func (h *Handler) Answer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	result, err := h.players.SubmitAnswer(r.Context(), userID(r), domain.AnswerSubmission{
		QuestionID:          req.QuestionID,
		SelectedOptionIndex: *req.Answer,
		TimeRemaining:       req.TimeRemaining,
		UsedLifelines:       req.UsedLifelines,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type lifelineRequest struct {
	QuestionID string `json:"questionId" validate:"required"`
}

func (h *Handler) FiftyFifty(w http.ResponseWriter, r *http.Request) {
	var req lifelineRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	eliminated, remaining, err := h.players.UseFiftyFifty(r.Context(), userID(r), req.QuestionID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"eliminatedOptions": eliminated,
		"lifelines":         remaining,
	})
}

func (h *Handler) AskExpert(w http.ResponseWriter, r *http.Request) {
	var req lifelineRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	tip, remaining, err := h.players.UseAskExpert(r.Context(), userID(r), req.QuestionID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"expertTip": tip,
		"lifelines": remaining,
	})
}

func (h *Handler) Achievements(w http.ResponseWriter, r *http.Request) {
	list, err := h.players.Achievements(r.Context(), userID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) Avatars(w http.ResponseWriter, r *http.Request) {
	list, err := h.players.Avatars(r.Context(), userID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

type avatarRequest struct {
	AvatarID string `json:"avatarId" validate:"required"`
}

func (h *Handler) PurchaseAvatar(w http.ResponseWriter, r *http.Request) {
	var req avatarRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	u, err := h.players.PurchaseAvatar(r.Context(), userID(r), req.AvatarID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"avatarId": req.AvatarID, "coins": u.Coins})
}

func (h *Handler) SelectAvatar(w http.ResponseWriter, r *http.Request) {
	var req avatarRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	u, err := h.players.SelectAvatar(r.Context(), userID(r), req.AvatarID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"avatarId": u.AvatarID})
}

func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeMessage(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	entries, err := h.players.Leaderboard(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

type startGameRequest struct {
	Mode       domain.GameMode   `json:"mode" validate:"omitempty,oneof=solo-quest time-attack team-challenge"`
	Difficulty domain.Difficulty `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Topic      string            `json:"topic" validate:"max=100"`
}

func (h *Handler) StartGame(w http.ResponseWriter, r *http.Request) {
	var req startGameRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	st, err := h.games.Start(r.Context(), userID(r), req.Mode, req.Difficulty, req.Topic)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, st)
}

func (h *Handler) GameState(w http.ResponseWriter, r *http.Request) {
	h.gameAction(w, r, h.games.State)
}

func (h *Handler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	h.gameAction(w, r, h.games.Next)
}

func (h *Handler) EndGame(w http.ResponseWriter, r *http.Request) {
	h.gameAction(w, r, h.games.End)
}

func (h *Handler) gameAction(w http.ResponseWriter, r *http.Request, fn func(context.Context, int64, string) (domain.GameState, error)) {
	st, err := fn(r.Context(), userID(r), chi.URLParam(r, "gameID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

type gameAnswerRequest struct {
	Answer *int `json:"answer" validate:"required,min=-1"`
}

func (h *Handler) GameAnswer(w http.ResponseWriter, r *http.Request) {
	var req gameAnswerRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	st, err := h.games.Answer(r.Context(), userID(r), chi.URLParam(r, "gameID"), *req.Answer)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *Handler) GameLifeline(w http.ResponseWriter, r *http.Request) {
	kind := domain.LifelineKind(chi.URLParam(r, "kind"))
	if kind != domain.FiftyFifty && kind != domain.AskExpert {
		writeMessage(w, http.StatusNotFound, "unknown lifeline")
		return
	}
	st, err := h.games.UseLifeline(r.Context(), userID(r), chi.URLParam(r, "gameID"), kind)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}
