package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gsonntag/bruinbite/repository"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestSignupValidation(t *testing.T) {
	svc := newAuthService(t)

	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{"username too short", "ab", "ab@example.edu", "password1", ErrInvalidUsername},
		{"username too long", "abcdefghijklmnopq", "a@example.edu", "password1", ErrInvalidUsername},
		{"username with symbols", "al_ice", "a@example.edu", "password1", ErrInvalidUsername},
		{"bad email", "alice", "not-an-email", "password1", ErrInvalidEmail},
		{"short password", "alice", "alice@example.edu", "seven77", ErrInvalidPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Signup(tt.username, tt.email, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSignupAndLogin(t *testing.T) {
	svc := newAuthService(t)

	user, token, err := svc.Signup("alice", "alice@example.edu", "password1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Empty(t, user.HashedPassword, "hash never leaves the service")

	// duplicate username
	_, _, err = svc.Signup("alice", "other@example.edu", "password1")
	assert.ErrorIs(t, err, ErrUserExists)

	// login by username and by email
	_, _, err = svc.Login("alice", "password1")
	assert.NoError(t, err)
	_, _, err = svc.Login("alice@example.edu", "password1")
	assert.NoError(t, err)

	_, _, err = svc.Login("alice", "wrongpass1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login("nobody", "password1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
