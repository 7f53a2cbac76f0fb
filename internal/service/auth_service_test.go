package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	repo := newMockStudentRepo()
	regSvc := newRegistrationService(repo)
	authSvc := NewAuthService(repo, zerolog.Nop())
	ctx := context.Background()

	registered, err := regSvc.Register(ctx, registerRequest("ada@example.com"))
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		student, err := authSvc.Login(ctx, "ada@example.com", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, student.ID)
	})

	t.Run("student number as login name", func(t *testing.T) {
		student, err := authSvc.Login(ctx, registered.StudentID, "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, student.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := authSvc.Login(ctx, "ada@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := authSvc.Login(ctx, "nobody@example.com", "correct-horse")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("disabled account", func(t *testing.T) {
		student, err := repo.GetByID(ctx, registered.ID)
		require.NoError(t, err)
		student.IsActive = false
		require.NoError(t, repo.Update(ctx, student))

		_, err = authSvc.Login(ctx, "ada@example.com", "correct-horse")
		assert.ErrorIs(t, err, ErrAccountDisabled)
	})
}
