package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/dto"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/model"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/repository"
)

// ErrInvalidCredentials is returned for both unknown usernames and wrong
// passwords so the login page never reveals which one failed.
var ErrInvalidCredentials = errors.New("Invalid username or password")

// Password-change failures surface verbatim as page notices.
var (
	ErrWrongPassword    = errors.New("Current password is incorrect!")
	ErrPasswordMismatch = errors.New("New passwords do not match!")
	ErrPasswordTooShort = errors.New("Password must be at least 6 characters long!")
)

// AuthService checks credentials and manages the caller's own profile.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	UpdateProfile(ctx context.Context, id uint, req dto.UpdateProfileForm) (*model.User, error)
	ChangePassword(ctx context.Context, id uint, req dto.ChangePasswordForm) error
}

type authService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) AuthService {
	return &authService{users: users}
}

func (s *authService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *authService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *authService) UpdateProfile(ctx context.Context, id uint, req dto.UpdateProfileForm) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Name = req.Name
	if req.Email != "" {
		email := req.Email
		user.Email = &email
	} else {
		user.Email = nil
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) ChangePassword(ctx context.Context, id uint, req dto.ChangePasswordForm) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return ErrWrongPassword
	}
	if req.NewPassword != req.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if len(req.NewPassword) < 6 {
		return ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), 12)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	return s.users.Update(ctx, user)
}
