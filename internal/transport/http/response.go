package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"wellness-quiz-service/internal/domain"
)

type errorPayload struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorPayload{Message: msg})
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	var verr validator.ValidationErrors
	switch {
	case errors.As(err, &verr),
		errors.Is(err, errBadRequest),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidOption),
		errors.Is(err, domain.ErrInsufficientCoins),
		errors.Is(err, domain.ErrUnsupportedMode):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrAvatarNotOwned):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrQuestionNotFound),
		errors.Is(err, domain.ErrAvatarNotFound),
		errors.Is(err, domain.ErrGameNotFound),
		errors.Is(err, domain.ErrNoQuestions):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUserExists),
		errors.Is(err, domain.ErrNoLifelines),
		errors.Is(err, domain.ErrLifelineUsed),
		errors.Is(err, domain.ErrAlreadyAnswered),
		errors.Is(err, domain.ErrNotAnswered),
		errors.Is(err, domain.ErrGameOver):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// writeError hides internal error text behind a generic message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.log.Error("request failed", err, zap.String("method", r.Method), zap.String("path", r.URL.Path))
		msg = "internal server error"
	}
	var verr validator.ValidationErrors
	if errors.As(err, &verr) && len(verr) > 0 {
		msg = validationMessage(verr[0])
	}
	writeMessage(w, status, msg)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min", "max":
		return fe.Field() + " is out of range"
	case "oneof":
		return fe.Field() + " must be one of " + fe.Param()
	}
	return fe.Field() + " is invalid"
}
