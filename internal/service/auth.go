package service

import (
	"context"
	"errors"

	"github.com/productapi/productapi-go/internal/crypto"
	"github.com/productapi/productapi-go/internal/model"
	"github.com/productapi/productapi-go/internal/repository"
	"github.com/productapi/productapi-go/internal/validation"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrEmailNotRegistered = errors.New("email not registered")
	ErrWrongPassword      = errors.New("wrong password")
)

// UserStore is the credential store used by AuthService.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(email string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	users  UserStore
	tokens TokenIssuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, tokens TokenIssuer) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

// Register validates req and stores a new user with a hashed password.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}

	// Shortcut only; the unique email index rejects duplicates that race past it.
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if exists {
		return ErrEmailTaken
	}

	digest, err := crypto.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Name:           req.Name,
		Email:          req.Email,
		PasswordDigest: digest,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrEmailTaken
		}
		return err
	}

	return nil
}

// Login checks the credentials in req and returns a signed access token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	if err := validation.Struct(req); err != nil {
		return "", err
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrEmailNotRegistered
		}
		return "", err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordDigest)
	if err != nil {
		return "", err
	}
	if !match {
		return "", ErrWrongPassword
	}

	return s.tokens.Issue(user.Email)
}
