package booking

import (
	"context"
	"log"
	"sync"
	"time"
)

type draftEntry struct {
	draft   *Draft
	touched time.Time
}

// DraftStore keeps the in-progress drafts, one per session token. Drafts
// are transient: abandoning the wizard leaves an entry behind, so stale ones
// are swept after a TTL.
type DraftStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*draftEntry
	now     func() time.Time
}

func NewDraftStore(ttl time.Duration) *DraftStore {
	return &DraftStore{
		ttl:     ttl,
		entries: make(map[string]*draftEntry),
		now:     time.Now,
	}
}

func (ds *DraftStore) Put(token string, draft *Draft) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.entries[token] = &draftEntry{draft: draft, touched: ds.now()}
}

// Get returns the live draft for the token. The draft itself carries no
// lock: a token belongs to one signed-in caller, and overlapping requests
// for the same token are last-writer-wins, like the session they hang off.
func (ds *DraftStore) Get(token string) (*Draft, bool) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	e, ok := ds.entries[token]
	if !ok {
		return nil, false
	}
	e.touched = ds.now()
	return e.draft, true
}

func (ds *DraftStore) Delete(token string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.entries, token)
}

// Prune removes drafts untouched for longer than the TTL and returns how
// many were removed.
func (ds *DraftStore) Prune() int {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	cutoff := ds.now().Add(-ds.ttl)
	removed := 0
	for token, e := range ds.entries {
		if e.touched.Before(cutoff) {
			delete(ds.entries, token)
			removed++
		}
	}
	return removed
}

// PruneLoop sweeps periodically until ctx is cancelled.
func (ds *DraftStore) PruneLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := ds.Prune(); n > 0 {
				log.Printf("pruned %d stale booking drafts", n)
			}
		}
	}
}
