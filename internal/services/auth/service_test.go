package auth

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/api"
	"marketplace/internal/domain"
	"marketplace/internal/store"
	"marketplace/internal/storeapi"
)

func newService(t *testing.T) (*Service, domain.SessionStore) {
	t.Helper()
	log, _ := test.NewNullLogger()
	srv := httptest.NewServer(storeapi.New(storeapi.Options{Logger: log}).Handler())
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	sessions := store.NewSessionFileStore(dir, store.NewKeyring(dir, "test-passphrase"))
	return New(api.New(srv.URL, api.WithLogger(log)), sessions, log), sessions
}

type memSessions struct{ tok domain.Token }

func (m *memSessions) SaveToken(t domain.Token) error { m.tok = t; return nil }
func (m *memSessions) LoadToken() (domain.Token, bool, error) {
	return m.tok, m.tok != "", nil
}
func (m *memSessions) ClearToken() error { m.tok = ""; return nil }

func TestLoginStoresToken(t *testing.T) {
	ctx := context.Background()
	svc, sessions := newService(t)

	tok, err := svc.Login(ctx, "kevinryan", "kev02937@")
	require.NoError(t, err)

	stored, ok, err := sessions.LoadToken()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, tok, stored)

	id, err := svc.UserID()
	require.NoError(t, err)
	assert.Equal(t, domain.UserID(3), id)

	st, err := svc.Status()
	require.NoError(t, err)
	assert.True(t, st.LoggedIn)
	assert.Equal(t, "kevinryan", st.Username)
	assert.Len(t, st.Fingerprint, 20)
}

func TestLoginFailureKeepsLoggedOut(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Login(context.Background(), "kevinryan", "wrong")
	var se *api.StatusError
	require.ErrorAs(t, err, &se)

	_, err = svc.Token()
	assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
}

func TestLogoutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	_, err := svc.Login(ctx, "johnd", "m38rmF$")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))
	require.NoError(t, svc.Logout(ctx))

	st, err := svc.Status()
	require.NoError(t, err)
	assert.False(t, st.LoggedIn)
	_, err = svc.UserID()
	assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
}

func TestRegister(t *testing.T) {
	svc, _ := newService(t)
	id, err := svc.Register(context.Background(), "newbie", "newbie@example.com", "password1", "password1")
	require.NoError(t, err)
	assert.Equal(t, domain.UserID(11), id)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name                               string
		username, email, password, confirm string
		field                              string
	}{
		{"blank username", "  ", "a@example.com", "password1", "password1", "username"},
		{"bad email", "bob", "not-an-email", "password1", "password1", "email"},
		{"display name email", "bob", "Bob <bob@example.com>", "password1", "password1", "email"},
		{"short password", "bob", "bob@example.com", "short", "short", "password"},
		{"mismatch", "bob", "bob@example.com", "password1", "password2", "confirmation"},
	}
	svc, _ := newService(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.username, tt.email, tt.password, tt.confirm)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestLoginValidation(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Login(context.Background(), "", "x")
	assert.True(t, IsValidation(err))
	_, err = svc.Login(context.Background(), "x", " ")
	assert.True(t, IsValidation(err))
}

func TestUserIDFromStringSubject(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "7"}).SignedString([]byte("k"))
	require.NoError(t, err)

	log, _ := test.NewNullLogger()
	svc := New(nil, &memSessions{tok: domain.Token(signed)}, log)
	id, err := svc.UserID()
	require.NoError(t, err)
	assert.Equal(t, domain.UserID(7), id)
}

func TestUserIDRejectsOpaqueToken(t *testing.T) {
	log, _ := test.NewNullLogger()
	svc := New(nil, &memSessions{tok: "opaque"}, log)
	_, err := svc.UserID()
	assert.Error(t, err)

	st, err := svc.Status()
	require.NoError(t, err)
	assert.True(t, st.LoggedIn)
	assert.Zero(t, st.UserID)
}

func TestDemoCredentials(t *testing.T) {
	c := DemoCredentials()
	assert.Contains(t, DemoAccounts, c)
}
