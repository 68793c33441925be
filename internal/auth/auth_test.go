package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeRoles struct {
	roles map[string]string
}

func (f *fakeRoles) RoleFor(_ context.Context, userID string) (string, error) {
	if r, ok := f.roles[userID]; ok {
		return r, nil
	}
	return "user", nil
}

func TestLoginWrongPassword(t *testing.T) {
	m := NewManager("secret", NewMemorySessions(), nil)
	_, err := m.Login(context.Background(), "anyone", "wrong")
	require.ErrorIs(t, err, ErrLoginRejected)
}

func TestLoginEmptyConfiguredPassword(t *testing.T) {
	// An unset password must not make the panel open.
	m := NewManager("", NewMemorySessions(), nil)
	_, err := m.Login(context.Background(), "anyone", "")
	require.ErrorIs(t, err, ErrLoginRejected)
}

func TestLoginLogoutRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewManager("secret", NewMemorySessions(), nil)

	token, err := m.Login(ctx, "ops", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := m.Verify(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "ops", userID)

	require.NoError(t, m.Logout(ctx, token))
	_, err = m.Verify(ctx, token)
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestLoginRequiresAdminRole(t *testing.T) {
	ctx := context.Background()
	roles := &fakeRoles{roles: map[string]string{"boss": "admin", "viewer": "user"}}
	m := NewManager("secret", NewMemorySessions(), roles)

	_, err := m.Login(ctx, "viewer", "secret")
	require.ErrorIs(t, err, ErrLoginRejected)

	token, err := m.Login(ctx, "boss", "secret")
	require.NoError(t, err)

	// Role is re-checked per request: demoting the identity kills access
	// even while the session token is still stored.
	roles.roles["boss"] = "user"
	_, err = m.Verify(ctx, token)
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestVerifyUnknownToken(t *testing.T) {
	m := NewManager("secret", NewMemorySessions(), nil)
	_, err := m.Verify(context.Background(), "nope")
	require.True(t, errors.Is(err, ErrNotAuthenticated))
}
