package storeapi

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, opts Options) *httptest.Server {
	t.Helper()
	if opts.Logger == nil {
		log, _ := test.NewNullLogger()
		opts.Logger = log
	}
	srv := httptest.NewServer(New(opts).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func TestLoginIssuesTokenWithSubject(t *testing.T) {
	secret := []byte("s3cret")
	srv := newTestServer(t, Options{Secret: secret})

	resp, err := http.Post(srv.URL+"/auth/login", "application/json",
		strings.NewReader(`{"username":"johnd","password":"m38rmF$"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct{ Token string }
	require.NoError(t, decode(resp, &body))

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(body.Token, claims, func(*jwt.Token) (any, error) { return secret, nil })
	require.NoError(t, err)
	assert.Equal(t, float64(1), claims["sub"])
	assert.Equal(t, "johnd", claims["user"])
}

func TestLoginRejectsBadPassword(t *testing.T) {
	srv := newTestServer(t, Options{})
	resp, err := http.Post(srv.URL+"/auth/login", "application/json",
		strings.NewReader(`{"username":"johnd","password":"nope"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUnknownProductIsEmptyOK(t *testing.T) {
	srv := newTestServer(t, Options{})
	resp, err := http.Get(srv.URL + "/products/4040")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestRateLimit(t *testing.T) {
	log, hook := test.NewNullLogger()
	srv := newTestServer(t, Options{RatePerSecond: 0.001, Burst: 2, Logger: log})

	codes := make([]int, 0, 3)
	for range 3 {
		resp, err := http.Get(srv.URL + "/products")
		require.NoError(t, err)
		resp.Body.Close()
		codes = append(codes, resp.StatusCode)
	}
	assert.Equal(t, []int{200, 200, 429}, codes)

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Message == "rate limit exceeded" {
			warned = true
		}
	}
	assert.True(t, warned)
}

func TestRegisterThenLogin(t *testing.T) {
	srv := newTestServer(t, Options{})
	resp, err := http.Post(srv.URL+"/users", "application/json",
		strings.NewReader(`{"id":0,"username":"newbie","email":"n@example.com","password":"password1"}`))
	require.NoError(t, err)
	var reg struct{ ID int }
	require.NoError(t, decode(resp, &reg))
	resp.Body.Close()
	assert.Equal(t, 11, reg.ID)

	resp, err = http.Post(srv.URL+"/users", "application/json",
		strings.NewReader(`{"username":"newbie","email":"n@example.com","password":"password1"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/auth/login", "application/json",
		strings.NewReader(`{"username":"newbie","password":"password1"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}
