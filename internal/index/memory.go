package index

import (
	"sync"
	"time"

	"github.com/hblboard/hblboard/internal/domain"
)

// Snapshot is the output of one completed fetch cycle: an immutable item
// collection plus the metadata the presentation layer needs. Snapshots are
// replaced wholesale; there is no in-place merge.
type Snapshot struct {
	Seq         uint64           // cycle sequence number
	Items       []*domain.Item   // already keyword/range filtered
	Live        bool             // false when serving the fallback dataset
	Window      domain.TimeRange // the window the cycle was filtered with
	RefreshedAt time.Time
}

// FeedIndex holds the currently visible snapshot behind a read-write lock.
// Cycle sequencing is enforced here: a snapshot with a stale sequence
// number is dropped, so a slow superseded cycle can never overwrite the
// result of a newer one.
type FeedIndex struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewFeedIndex creates an empty index. Until the first cycle publishes,
// Current() returns a zero snapshot with no items.
func NewFeedIndex() *FeedIndex {
	return &FeedIndex{}
}

// Update publishes a snapshot. Returns false when snap.Seq is not newer
// than the current snapshot's, in which case the index is left untouched.
func (idx *FeedIndex) Update(snap Snapshot) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if snap.Seq <= idx.snap.Seq {
		return false
	}
	if snap.RefreshedAt.IsZero() {
		snap.RefreshedAt = time.Now()
	}
	idx.snap = snap
	return true
}

// Current returns the visible snapshot. The items slice is shared and never
// mutated; callers filter into fresh slices.
func (idx *FeedIndex) Current() Snapshot {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.snap
}

// Count returns the number of visible items.
func (idx *FeedIndex) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.snap.Items)
}

// LastRefresh returns when the visible snapshot was published, zero before
// the first cycle completes.
func (idx *FeedIndex) LastRefresh() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.snap.RefreshedAt
}
