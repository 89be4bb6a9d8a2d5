package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hblboard/hblboard/internal/domain"
	"github.com/hblboard/hblboard/internal/index"
	"github.com/hblboard/hblboard/internal/logger"
)

// Fetcher runs one aggregation pass. Implemented by the classroom
// aggregator; it never errors, it degrades to the fallback dataset.
type Fetcher interface {
	FetchItems(ctx context.Context, credential string) ([]*domain.Item, bool)
}

// CredentialSource resolves the bearer credential at the top of a cycle.
type CredentialSource interface {
	Current() string
}

// FeedRefresher drives fetch cycles: one on start, then periodically, plus
// manual triggers from the refresh endpoint and credential changes. Each
// cycle gets a monotonically increasing sequence number; the index drops
// anything stale, so a superseded cycle can never clobber a newer result.
type FeedRefresher struct {
	fetcher       Fetcher
	creds         CredentialSource
	index         *index.FeedIndex
	logger        logger.Logger
	interval      time.Duration
	lookback      time.Duration
	manualTrigger chan struct{}
	stopCh        chan struct{}

	seq atomic.Uint64

	mu    sync.Mutex
	fixed *domain.TimeRange // explicit window; nil means rolling lookback
}

// NewFeedRefresher creates a refresher. lookback defines the rolling
// default window [now-lookback, now] used until an explicit window is set.
func NewFeedRefresher(
	fetcher Fetcher,
	creds CredentialSource,
	idx *index.FeedIndex,
	log logger.Logger,
	interval time.Duration,
	lookback time.Duration,
	manualTrigger chan struct{},
) *FeedRefresher {
	return &FeedRefresher{
		fetcher:       fetcher,
		creds:         creds,
		index:         idx,
		logger:        log,
		interval:      interval,
		lookback:      lookback,
		manualTrigger: manualTrigger,
		stopCh:        make(chan struct{}),
	}
}

// Start runs the first cycle synchronously so the board is renderable the
// moment the server starts answering, then begins the periodic loop.
func (fr *FeedRefresher) Start(ctx context.Context) error {
	fr.Refresh(ctx)

	ticker := time.NewTicker(fr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fr.Refresh(ctx)
			case <-fr.manualTrigger:
				fr.logger.Info("manual refresh triggered")
				fr.Refresh(ctx)
			case <-fr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the refresher loop.
func (fr *FeedRefresher) Stop() {
	close(fr.stopCh)
}

// SetWindow pins the fetch window to an explicit range. The next cycle
// filters with it; it stays pinned until ResetWindow.
func (fr *FeedRefresher) SetWindow(r domain.TimeRange) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	fr.fixed = &r
}

// ResetWindow returns to the rolling lookback window.
func (fr *FeedRefresher) ResetWindow() {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	fr.fixed = nil
}

// Window resolves the window the next cycle will filter with.
func (fr *FeedRefresher) Window() domain.TimeRange {
	fr.mu.Lock()
	defer fr.mu.Unlock()

	if fr.fixed != nil {
		return *fr.fixed
	}
	now := time.Now()
	return domain.TimeRange{From: now.Add(-fr.lookback), To: now}
}

// Refresh runs one complete fetch-and-filter cycle and publishes the
// result. The fallback path goes through the exact same filter as live
// data, so degraded mode obeys the same keyword and range rules.
func (fr *FeedRefresher) Refresh(ctx context.Context) {
	seq := fr.seq.Add(1)
	window := fr.Window()
	credential := fr.creds.Current()

	items, live := fr.fetcher.FetchItems(ctx, credential)
	visible := domain.SelectRelevant(items, window)

	ok := fr.index.Update(index.Snapshot{
		Seq:    seq,
		Items:  visible,
		Live:   live,
		Window: window,
	})
	if !ok {
		fr.logger.Warn("dropping superseded cycle result",
			logger.Int("seq", int(seq)))
		return
	}

	fr.logger.Info("feed refreshed",
		logger.Int("seq", int(seq)),
		logger.Int("visible", len(visible)),
		logger.Int("fetched", len(items)),
		logger.String("source", sourceName(live)))
}

func sourceName(live bool) string {
	if live {
		return "live"
	}
	return "fallback"
}
