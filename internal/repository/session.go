package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/tinyrecords/tinyrecords-go/internal/model"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository is the in-memory registry of active sessions, keyed by
// token. A token is never resolvable before Create has committed its entry.
type SessionRepository struct {
	mu       sync.Mutex
	sessions map[string]model.Session
}

// NewSessionRepository creates an empty session registry.
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]model.Session),
	}
}

// Create registers a session under its token.
func (r *SessionRepository) Create(ctx context.Context, session model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.Token] = session
	return nil
}

// GetByToken retrieves a session by token. The lookup does not refresh or
// extend anything.
func (r *SessionRepository) GetByToken(ctx context.Context, token string) (model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[token]
	if !ok {
		return model.Session{}, ErrSessionNotFound
	}
	return s, nil
}

// Delete removes a session. No HTTP endpoint exposes this yet; it exists so
// logout or expiry can be added without changing the registry contract.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
	return nil
}

// Count returns the number of active sessions.
func (r *SessionRepository) Count(ctx context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
