package service

import (
	"context"
	"errors"
	"time"

	"github.com/tinyrecords/tinyrecords-go/internal/crypto"
	"github.com/tinyrecords/tinyrecords-go/internal/model"
	"github.com/tinyrecords/tinyrecords-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionNotFound    = errors.New("session not found")
)

// AuthService handles credential verification and session issuance.
type AuthService struct {
	users    *repository.UserRepository
	sessions *repository.SessionRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(users *repository.UserRepository, sessions *repository.SessionRepository) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
	}
}

// Login verifies the presented credentials and, on success, registers and
// returns a new session token. On failure no session is created and the
// error never reveals which field was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if !crypto.SecureCompare(password, user.Password) {
		return "", ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken()
	if err != nil {
		return "", err
	}

	session := model.Session{
		Token:     token,
		Email:     user.Email,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", err
	}

	return token, nil
}

// ResolveToken looks up the session for a bearer token.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (model.Session, error) {
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return model.Session{}, ErrSessionNotFound
	}
	return session, nil
}
