package sqlite

import (
	"context"
	"sync"
	"time"
)

// notifier fans a "table changed" signal out to subscribers. Signals are
// coalesced: a slow subscriber sees at most one pending signal.
type notifier struct {
	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

func (n *notifier) subscribe(ctx context.Context) <-chan struct{} {
	ch := make(chan struct{}, 1)

	n.mu.Lock()
	if n.subs == nil {
		n.subs = make(map[chan struct{}]struct{})
	}
	n.subs[ch] = struct{}{}
	n.mu.Unlock()

	go func() {
		<-ctx.Done()
		n.mu.Lock()
		delete(n.subs, ch)
		close(ch)
		n.mu.Unlock()
	}()
	return ch
}

func (n *notifier) publish() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// externalPollInterval is how often Changes checks for commits made through
// other connections, such as a second marketplace process.
const externalPollInterval = 250 * time.Millisecond

// watchExternal publishes on n whenever PRAGMA data_version moves away from
// last. The value only changes for commits from other connections; this
// handle's own writes publish directly. A negative last means no baseline
// has been read yet. It runs until ctx is done.
func (db *DB) watchExternal(ctx context.Context, n *notifier, last int64) {
	t := time.NewTicker(externalPollInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
		v, err := db.dataVersion(ctx)
		if err != nil {
			continue
		}
		if last >= 0 && v != last {
			n.publish()
		}
		last = v
	}
}

func (db *DB) dataVersion(ctx context.Context) (int64, error) {
	var v int64
	err := db.sql.QueryRowContext(ctx, `PRAGMA data_version`).Scan(&v)
	return v, err
}
