package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/api"
	"marketplace/internal/domain"
	"marketplace/internal/store/sqlite"
)

type fakeClient struct {
	domain.StoreClient

	calls    atomic.Int32
	release  chan struct{}
	products []domain.Product
	err      error
	gotToken domain.Token
}

func (f *fakeClient) FetchProducts(_ context.Context, tok domain.Token) ([]domain.Product, error) {
	f.calls.Add(1)
	f.gotToken = tok
	if f.release != nil {
		<-f.release
	}
	return f.products, f.err
}

func (f *fakeClient) FetchProduct(_ context.Context, _ domain.Token, id domain.ProductID) (domain.Product, error) {
	if f.err != nil {
		return domain.Product{}, f.err
	}
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrNotFound
}

type fakeTokens struct {
	tok domain.Token
	err error
}

func (f fakeTokens) Token() (domain.Token, error)   { return f.tok, f.err }
func (f fakeTokens) UserID() (domain.UserID, error) { return 0, f.err }

func newService(t *testing.T, client *fakeClient, tokens fakeTokens) (*Service, *sqlite.DB, *test.Hook) {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "marketplace.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	return New(client, db, tokens, log), db, hook
}

var catalog = []domain.Product{
	{ID: 1, Title: "Backpack", Price: 109.95, Category: "men's clothing"},
	{ID: 5, Title: "Bracelet", Price: 695, Category: "jewelery"},
}

func TestFetchProductsCaches(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{products: catalog}
	svc, _, _ := newService(t, client, fakeTokens{tok: "tok"})

	got, err := svc.FetchProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, domain.Token("tok"), client.gotToken)

	cached, err := svc.Products(ctx, domain.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, cached, 2)

	cats, err := svc.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"jewelery", "men's clothing"}, cats)
}

func TestFetchProductsFailureLeavesCache(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{products: catalog}
	svc, _, _ := newService(t, client, fakeTokens{err: domain.ErrNotLoggedIn})
	_, err := svc.FetchProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, client.gotToken)

	client.err = api.ErrUnavailable
	_, err = svc.FetchProducts(ctx)
	assert.ErrorIs(t, err, api.ErrUnavailable)

	cached, err := svc.ProductsByIDs(ctx, []domain.ProductID{1, 5})
	require.NoError(t, err)
	assert.Len(t, cached, 2)
}

func TestFetchProductsCollapsesConcurrentCalls(t *testing.T) {
	client := &fakeClient{products: catalog, release: make(chan struct{})}
	svc, _, _ := newService(t, client, fakeTokens{})

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.FetchProducts(context.Background())
			assert.NoError(t, err)
		}()
	}
	require.Eventually(t, func() bool { return client.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	close(client.release)
	wg.Wait()
	assert.LessOrEqual(t, client.calls.Load(), int32(4))
}

func TestFetchProductsCancelledCallerLeavesRefreshRunning(t *testing.T) {
	client := &fakeClient{products: catalog, release: make(chan struct{})}
	svc, _, _ := newService(t, client, fakeTokens{})

	first, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := svc.FetchProducts(first)
		firstErr <- err
	}()
	require.Eventually(t, func() bool { return client.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	second := make(chan []domain.Product, 1)
	go func() {
		got, err := svc.FetchProducts(context.Background())
		assert.NoError(t, err)
		second <- got
	}()

	cancel()
	select {
	case err := <-firstErr:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("cancelled caller kept waiting")
	}

	close(client.release)
	select {
	case got := <-second:
		assert.Len(t, got, 2)
	case <-time.After(2 * time.Second):
		t.Fatal("joined caller never returned")
	}

	require.Eventually(t, func() bool {
		cached, err := svc.Products(context.Background(), domain.ProductFilter{})
		return err == nil && len(cached) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestFetchProductFallsBackToCache(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{products: catalog}
	svc, db, hook := newService(t, client, fakeTokens{})
	require.NoError(t, db.UpsertProducts(ctx, catalog[:1]))

	client.err = errors.New("connection refused")
	p, err := svc.FetchProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Backpack", p.Title)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)

	_, err = svc.FetchProduct(ctx, 5)
	assert.ErrorContains(t, err, "connection refused")
}

func TestFetchProductUpserts(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{products: catalog}
	svc, db, _ := newService(t, client, fakeTokens{})

	_, err := svc.FetchProduct(ctx, 5)
	require.NoError(t, err)
	_, ok, err := db.Product(ctx, 5)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = svc.FetchProduct(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
