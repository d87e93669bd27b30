package service

import (
	"context"
	"errors"
	"strings"
	"time"

	dom "github.com/vijaynvb/TodoMinimalAPI/internal/domain"
	"github.com/vijaynvb/TodoMinimalAPI/internal/repo"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong
	// password so login failures never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when signup hits an existing account.
	ErrEmailTaken = errors.New("email already registered")
)

// UserService handles account creation and credential checks.
type UserService struct {
	repo repo.UserRepo
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Register creates a new account with a bcrypt password hash. The
// plaintext password is never stored.
func (s *UserService) Register(ctx context.Context, firstName, lastName, email, password string, dateOfBirth *time.Time) (dom.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return dom.User{}, err
	}
	u, err := s.repo.Create(ctx, dom.User{
		ID:           uuid.NewString(),
		Email:        email,
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
		DateOfBirth:  dateOfBirth,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return dom.User{}, ErrEmailTaken
		}
		return dom.User{}, err
	}
	return u, nil
}

// ValidateCredentials checks email and password; returns the user if valid.
func (s *UserService) ValidateCredentials(ctx context.Context, email, password string) (dom.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNoRows) {
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return dom.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// FindByEmail returns the account registered under email.
func (s *UserService) FindByEmail(ctx context.Context, email string) (dom.User, error) {
	u, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repo.ErrNoRows) {
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	return u, nil
}
