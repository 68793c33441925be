// Package auth issues and verifies admin session tokens. A login is gated on
// the configured panel password; against the hosted backend the identity must
// additionally hold the admin role in user_roles, re-checked on every
// privileged request rather than trusted from the client.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"aadhrita/internal/model"
	"aadhrita/internal/store"
)

var (
	// ErrLoginRejected deliberately does not say which of identity or
	// password failed.
	ErrLoginRejected = errors.New("login rejected")

	// ErrAccessDenied means the session is valid but the identity does not
	// hold the admin role. Handlers must render an explicit denial, not a
	// silent redirect.
	ErrAccessDenied = errors.New("access denied")

	ErrNotAuthenticated = errors.New("not authenticated")
)

// SessionStore persists token→identity mappings. The local content store
// backs this with its kv table; the hosted setup uses the in-memory store.
type SessionStore interface {
	PutSession(ctx context.Context, token, userID string) error
	SessionUser(ctx context.Context, token string) (string, bool, error)
	DropSession(ctx context.Context, token string) error
}

// MemorySessions is a process-local SessionStore.
type MemorySessions struct {
	mu     sync.Mutex
	tokens map[string]string
}

func NewMemorySessions() *MemorySessions {
	return &MemorySessions{tokens: make(map[string]string)}
}

func (m *MemorySessions) PutSession(_ context.Context, token, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[token] = userID
	return nil
}

func (m *MemorySessions) SessionUser(_ context.Context, token string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	userID, ok := m.tokens[token]
	return userID, ok, nil
}

func (m *MemorySessions) DropSession(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, token)
	return nil
}

type Manager struct {
	password string
	sessions SessionStore
	roles    store.RoleReader // nil when the backend has no role table
}

func NewManager(password string, sessions SessionStore, roles store.RoleReader) *Manager {
	return &Manager{password: password, sessions: sessions, roles: roles}
}

// Login checks the panel password (and, when a role table exists, that the
// identity holds admin) and returns an opaque session token.
func (m *Manager) Login(ctx context.Context, userID, password string) (string, error) {
	if m.password == "" || subtle.ConstantTimeCompare([]byte(password), []byte(m.password)) != 1 {
		return "", ErrLoginRejected
	}
	if m.roles != nil {
		role, err := m.roles.RoleFor(ctx, userID)
		if err != nil {
			return "", err
		}
		if role != model.RoleAdmin {
			return "", ErrLoginRejected
		}
	}
	token := uuid.NewString()
	if err := m.sessions.PutSession(ctx, token, userID); err != nil {
		return "", err
	}
	return token, nil
}

// Verify resolves the token to its identity and re-checks the role. It
// distinguishes a missing/unknown session (ErrNotAuthenticated) from a valid
// session without the admin role (ErrAccessDenied).
func (m *Manager) Verify(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrNotAuthenticated
	}
	userID, ok, err := m.sessions.SessionUser(ctx, token)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNotAuthenticated
	}
	if m.roles != nil {
		role, err := m.roles.RoleFor(ctx, userID)
		if err != nil {
			return "", err
		}
		if role != model.RoleAdmin {
			return "", ErrAccessDenied
		}
	}
	return userID, nil
}

func (m *Manager) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.sessions.DropSession(ctx, token)
}

// TokenFromHeader extracts the bearer token from an Authorization header
// value, returning "" when the header is absent or not a bearer scheme.
func TokenFromHeader(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}
