package service

import (
	"context"
	"errors"
	"fmt"

	"microblogging/internal/models"
	"microblogging/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AccountService handles registration, listing and credential checks.
type AccountService struct {
	users repository.Users
}

func NewAccountService(users repository.Users) *AccountService {
	return &AccountService{users: users}
}

var _ Accounts = (*AccountService)(nil)

// Register creates a new account after checking the username is free.
// The password is stored only as a bcrypt hash.
func (s *AccountService) Register(ctx context.Context, username, password, email string) error {
	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUserExists
	}

	hash, err := hashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password for %q: %w", username, err)
	}

	return s.users.Create(ctx, models.User{
		Username: username,
		Email:    email,
		Password: hash,
	})
}

// List returns every registered user row.
func (s *AccountService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// Authenticate verifies the supplied password against the stored hash.
// A wrong password is a false result, not an error; an unknown
// username is ErrUserNotFound.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if u == nil {
		return false, ErrUserNotFound
	}

	if err := verifyPassword(u.Password, password); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, fmt.Errorf("verify password for %q: %w", username, err)
	}
	return true, nil
}

// helper: hash password with a salted, slow one-way function
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
