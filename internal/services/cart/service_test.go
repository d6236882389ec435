package cart

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/domain"
	"marketplace/internal/store/sqlite"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newService(t *testing.T) (*Service, *sqlite.DB) {
	t.Helper()
	return openService(t, filepath.Join(t.TempDir(), "marketplace.db"))
}

func openService(t *testing.T, path string) (*Service, *sqlite.DB) {
	t.Helper()
	db, err := sqlite.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.UpsertProducts(context.Background(), []domain.Product{
		{ID: 1, Title: "Backpack", Price: 100},
		{ID: 2, Title: "T-Shirt", Price: 20},
	}))
	log, _ := test.NewNullLogger()
	c := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	return New(db, db, log, WithClock(c.now)), db
}

func TestAddAccumulatesIntoOneLine(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	require.NoError(t, svc.Add(ctx, 1, 1))
	first, err := svc.Items(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Add(ctx, 1, 2))
	items, err := svc.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.True(t, first[0].AddedAt.Equal(items[0].AddedAt))

	assert.ErrorIs(t, svc.Add(ctx, 1, 0), domain.ErrInvalidQuantity)
}

func TestAddRejectsUnknownProduct(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	assert.ErrorIs(t, svc.Add(ctx, 999, 1), domain.ErrNotFound)
	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestIncrementDecrement(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	require.NoError(t, svc.Add(ctx, 2, 1))

	require.NoError(t, svc.Increment(ctx, 2))
	items, err := svc.Items(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, items[0].Quantity)

	require.NoError(t, svc.Decrement(ctx, 2))
	require.NoError(t, svc.Decrement(ctx, 2))
	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.ErrorIs(t, svc.Decrement(ctx, 2), domain.ErrNotInCart)
	assert.ErrorIs(t, svc.Increment(ctx, 2), domain.ErrNotInCart)
}

func TestSetQuantityZeroRemoves(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	require.NoError(t, svc.Add(ctx, 1, 4))
	require.NoError(t, svc.SetQuantity(ctx, 1, 0))
	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	svc, db := newService(t)
	require.NoError(t, svc.Add(ctx, 1, 2))
	require.NoError(t, svc.Add(ctx, 2, 3))
	// A line whose product has since left the cache is skipped.
	require.NoError(t, db.AddItem(ctx, domain.CartItem{ProductID: 77, Quantity: 1, AddedAt: time.Now()}))

	sum, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Len(t, sum.Lines, 2)
	assert.Equal(t, "T-Shirt", sum.Lines[0].Product.Title)
	assert.Equal(t, 5, sum.TotalQuantity)
	assert.InDelta(t, 260.0, sum.TotalPrice, 1e-9)

	require.NoError(t, svc.Clear(ctx))
	sum, err = svc.Summary(ctx)
	require.NoError(t, err)
	assert.Empty(t, sum.Lines)
}

func TestWatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	svc, _ := newService(t)
	updates := svc.Watch(ctx)

	next := func() domain.CartSummary {
		t.Helper()
		select {
		case s, ok := <-updates:
			require.True(t, ok)
			return s
		case <-time.After(2 * time.Second):
			t.Fatal("no cart update")
			return domain.CartSummary{}
		}
	}

	assert.Zero(t, next().TotalQuantity)
	require.NoError(t, svc.Add(context.Background(), 1, 2))
	assert.Equal(t, 2, next().TotalQuantity)
	require.NoError(t, svc.Remove(context.Background(), 1))
	assert.Zero(t, next().TotalQuantity)

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-updates:
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}

func TestWatchSeesWritesFromAnotherProcess(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	path := filepath.Join(t.TempDir(), "marketplace.db")
	watcher, _ := openService(t, path)
	writer, _ := openService(t, path)

	updates := watcher.Watch(ctx)
	require.Zero(t, (<-updates).TotalQuantity)

	require.NoError(t, writer.Add(context.Background(), 1, 3))
	deadline := time.After(3 * time.Second)
	for {
		select {
		case sum := <-updates:
			if sum.TotalQuantity == 3 {
				return
			}
		case <-deadline:
			t.Fatal("watcher never saw the other handle's write")
		}
	}
}
