package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/domain"
	"marketplace/internal/storeapi"
)

func newStoreServer(t *testing.T) *httptest.Server {
	t.Helper()
	log, _ := test.NewNullLogger()
	srv := httptest.NewServer(storeapi.New(storeapi.Options{Logger: log}).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func TestClientAgainstStoreAPI(t *testing.T) {
	ctx := context.Background()
	srv := newStoreServer(t)
	c := New(srv.URL + "/")

	tok, err := c.Login(ctx, "johnd", "m38rmF$")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	products, err := c.FetchProducts(ctx, tok)
	require.NoError(t, err)
	require.NotEmpty(t, products)

	p, err := c.FetchProduct(ctx, tok, products[0].ID)
	require.NoError(t, err)
	assert.Equal(t, products[0], p)

	_, err = c.FetchProduct(ctx, tok, 4040)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	profile, err := c.FetchUser(ctx, tok, 1)
	require.NoError(t, err)
	assert.Equal(t, "johnd", profile.Username)
	assert.Equal(t, "john", profile.Name.First)

	id, err := c.Register(ctx, domain.RegisterRequest{Username: "fresh", Email: "f@example.com", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, domain.UserID(11), id)
}

func TestClientStatusErrors(t *testing.T) {
	ctx := context.Background()
	srv := newStoreServer(t)
	c := New(srv.URL)

	_, err := c.Login(ctx, "johnd", "wrong")
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.Code)
	assert.Equal(t, "username or password is incorrect", se.Message)

	_, err = c.FetchUser(ctx, "", 999)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "user not found", se.Message)
	assert.True(t, IsStatus(err, http.StatusNotFound))
}

func TestClientSendsHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).FetchProducts(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Len(t, got.Get("X-Request-ID"), 36)

	_, err = New(srv.URL).FetchProducts(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, got.Get("Authorization"))
}

func TestBreakerOpensOnServerErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, `{"error":"boom"}`, http.StatusBadGateway)
	}))
	defer srv.Close()

	log, _ := test.NewNullLogger()
	c := New(srv.URL, WithLogger(log), WithBreaker(BreakerSettings{Failures: 2, OpenFor: time.Minute}))

	for range 2 {
		_, err := c.FetchProducts(context.Background(), "")
		var se *StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "boom", se.Message)
	}
	_, err := c.FetchProducts(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, int32(2), hits.Load())
}

func TestBreakerIgnoresClientErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, WithBreaker(BreakerSettings{Failures: 1, OpenFor: time.Minute}))
	for range 3 {
		_, err := c.FetchUser(context.Background(), "", 1)
		assert.True(t, IsStatus(err, http.StatusNotFound))
		assert.NotErrorIs(t, err, ErrUnavailable)
	}
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "bad", errorMessage(400, []byte(`{"message":"bad"}`)))
	assert.Equal(t, "plain text", errorMessage(400, []byte("  plain text\n")))
	assert.Equal(t, "Not Found", errorMessage(404, nil))
}
