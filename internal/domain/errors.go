package domain

import "errors"

var (
	// ErrUserNotFound is returned when a user id or username is unknown.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when registering a taken username.
	ErrUserExists = errors.New("username already exists")
	// ErrInvalidCredentials covers both unknown usernames and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated is returned when a session token is missing or expired.
	ErrUnauthenticated = errors.New("unauthorized")
	// ErrQuestionNotFound indicates a submitted question ID is invalid.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrInvalidOption indicates a selected option index is out of range.
	ErrInvalidOption = errors.New("invalid option index")
	// ErrNoLifelines is returned when a lifeline counter is already zero.
	ErrNoLifelines = errors.New("no lifelines remaining")
	// ErrLifelineUsed is returned when a lifeline is used twice on one question.
	ErrLifelineUsed = errors.New("lifeline already used on this question")
	// ErrAvatarNotFound indicates an unknown avatar ID.
	ErrAvatarNotFound = errors.New("avatar not found")
	// ErrAvatarNotOwned is returned when selecting an avatar that was never purchased.
	ErrAvatarNotOwned = errors.New("avatar not owned")
	// ErrInsufficientCoins is returned when a purchase costs more than the balance.
	ErrInsufficientCoins = errors.New("insufficient coins")
	// ErrGameNotFound is returned for unknown game session IDs.
	ErrGameNotFound = errors.New("game session not found")
	// ErrGameOver is returned when acting on a finished game.
	ErrGameOver = errors.New("game is over")
	// ErrAlreadyAnswered is returned when the current question already has an answer.
	ErrAlreadyAnswered = errors.New("question already answered")
	// ErrNotAnswered is returned when advancing before answering.
	ErrNotAnswered = errors.New("current question not answered yet")
	// ErrUnsupportedMode is returned for game modes that are not playable.
	ErrUnsupportedMode = errors.New("unsupported game mode")
	// ErrInvalidInput is returned for malformed usernames, passwords or filters.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoQuestions is returned when a filter matches no questions.
	ErrNoQuestions = errors.New("no questions match the selection")
)
