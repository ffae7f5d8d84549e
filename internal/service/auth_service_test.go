package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/dto"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/model"
)

func seedAuthUser(t *testing.T, repo *stubUserRepo, username, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.User{
		Username:     username,
		Name:         "Test User",
		PasswordHash: string(hash),
		Role:         "user",
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo)
	seedAuthUser(t, repo, "admin", "admin123")

	user, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	_, err = svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo)
	u := seedAuthUser(t, repo, "admin", "admin123")

	err := svc.ChangePassword(context.Background(), u.ID, dto.ChangePasswordForm{
		CurrentPassword: "wrong",
		NewPassword:     "newpassword",
		ConfirmPassword: "newpassword",
	})
	assert.ErrorIs(t, err, ErrWrongPassword)

	err = svc.ChangePassword(context.Background(), u.ID, dto.ChangePasswordForm{
		CurrentPassword: "admin123",
		NewPassword:     "newpassword",
		ConfirmPassword: "different",
	})
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	err = svc.ChangePassword(context.Background(), u.ID, dto.ChangePasswordForm{
		CurrentPassword: "admin123",
		NewPassword:     "abc",
		ConfirmPassword: "abc",
	})
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	err = svc.ChangePassword(context.Background(), u.ID, dto.ChangePasswordForm{
		CurrentPassword: "admin123",
		NewPassword:     "newpassword",
		ConfirmPassword: "newpassword",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "admin", "newpassword")
	assert.NoError(t, err)
}

func TestUpdateProfileRefreshesFields(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo)
	u := seedAuthUser(t, repo, "admin", "admin123")

	updated, err := svc.UpdateProfile(context.Background(), u.ID, dto.UpdateProfileForm{
		Name:  "Administrator",
		Email: "admin@ims.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Administrator", updated.Name)
	require.NotNil(t, updated.Email)
	assert.Equal(t, "admin@ims.com", *updated.Email)

	cleared, err := svc.UpdateProfile(context.Background(), u.ID, dto.UpdateProfileForm{Name: "Administrator"})
	require.NoError(t, err)
	assert.Nil(t, cleared.Email)
}
