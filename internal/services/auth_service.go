package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/auth"
	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/constants"
	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/models"
	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/repository"
)

var (
	ErrEmailTaken           = errors.New("email already registered")
	ErrWeakPassword         = errors.New("password must be at least 8 characters")
	ErrNoSuchAccount        = errors.New("no account found with this email")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToIssueToken   = errors.New("failed to issue token")
)

// AuthService handles registration and sign-in business logic.
type AuthService struct {
	userRepo repository.UserRepository
	codec    *auth.TokenCodec
	tokenTTL time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, codec *auth.TokenCodec, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		codec:    codec,
		tokenTTL: tokenTTL,
	}
}

// SignupInput represents the required information to create a new account.
type SignupInput struct {
	Email    string
	Password string
	Name     string
}

// Signup registers a new account and issues a bearer token for it. The
// account is not created if any check fails. A concurrent signup with the
// same email is caught by the store's unique constraint and reported as
// ErrEmailTaken.
func (s *AuthService) Signup(input SignupInput) (string, *models.User, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return "", nil, fmt.Errorf("email is required")
	}

	// Email availability is checked before the password policy, so a taken
	// email is reported even when the password is also bad.
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return "", nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, fmt.Errorf("failed to check email: %w", err)
	}

	if len(input.Password) < constants.MinPasswordLength {
		return "", nil, ErrWeakPassword
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return "", nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Email:        email,
		Name:         input.Name,
		PasswordHash: hash,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", nil, ErrEmailTaken
		}
		return "", nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.codec.Issue(user, s.tokenTTL)
	if err != nil {
		return "", nil, ErrFailedToIssueToken
	}

	return token, user, nil
}

// SigninInput holds the credentials for authentication.
type SigninInput struct {
	Email    string
	Password string
}

// Signin verifies credentials and issues a bearer token. An unknown email is
// reported as ErrNoSuchAccount, a wrong password as ErrInvalidCredentials;
// both surface as 401 externally with different messages.
func (s *AuthService) Signin(input SigninInput) (string, *models.User, error) {
	// Emails are stored trimmed on signup, so lookups trim too.
	user, err := s.userRepo.FindByEmail(strings.TrimSpace(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrNoSuchAccount
		}
		return "", nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !auth.CheckPassword(input.Password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user, s.tokenTTL)
	if err != nil {
		return "", nil, ErrFailedToIssueToken
	}

	return token, user, nil
}
