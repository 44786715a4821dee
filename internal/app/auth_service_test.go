package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness-quiz-service/internal/domain"
)

func TestRegisterValidatesAndRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, sampleBank())

	u, err := e.auth.Register(ctx, "  carol ", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "carol", u.Username)
	assert.Equal(t, 1, u.Level)
	assert.Equal(t, "default", u.AvatarID)
	assert.NotEqual(t, []byte("secret1"), u.PasswordHash)

	_, err = e.auth.Register(ctx, "carol", "another1")
	assert.ErrorIs(t, err, domain.ErrUserExists)

	_, err = e.auth.Register(ctx, "cj", "secret1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = e.auth.Register(ctx, "carl", "12345")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoginAndSessions(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, sampleBank())

	_, err := e.auth.Register(ctx, "dave", "secret1")
	require.NoError(t, err)

	_, _, err = e.auth.Login(ctx, "dave", "wrong-password")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, _, err = e.auth.Login(ctx, "nobody", "secret1")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	profile, token, err := e.auth.Login(ctx, "dave", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 1000, profile.ExperienceToNextLevel)
	assert.Equal(t, 3, profile.Lifelines.FiftyFifty)
	assert.Equal(t, 3, profile.Lifelines.AskExpert)
	assert.Equal(t, 1, profile.Stats.LoginStreak)

	id, err := e.auth.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, id)

	require.NoError(t, e.auth.Logout(ctx, token))
	_, err = e.auth.Authenticate(ctx, token)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	_, err = e.auth.Authenticate(ctx, "")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestLoginStreakUnlocksAchievement(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, sampleBank())

	_, err := e.auth.Register(ctx, "erin", "secret1")
	require.NoError(t, err)

	var profile domain.UserProfile
	for day := 0; day < 7; day++ {
		// a second login on the same day does not count
		for i := 0; i < 2; i++ {
			profile, _, err = e.auth.Login(ctx, "erin", "secret1")
			require.NoError(t, err)
		}
		assert.Equal(t, day+1, profile.Stats.LoginStreak)
		e.clock.Advance(24 * time.Hour)
	}
	assert.Equal(t, 100, profile.Coins)
	assert.Equal(t, 150, profile.Experience)
	assert.True(t, unlocked(profile.Achievements, "daily-login-7"))

	// a missed day starts over
	e.clock.Advance(24 * time.Hour)
	profile, _, err = e.auth.Login(ctx, "erin", "secret1")
	require.NoError(t, err)
	assert.Equal(t, 1, profile.Stats.LoginStreak)
	assert.Equal(t, 100, profile.Coins, "reward is granted once")
}

func unlocked(list []domain.AchievementStatus, id string) bool {
	for _, a := range list {
		if a.ID == id {
			return a.Unlocked
		}
	}
	return false
}
