package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/hblboard/hblboard/internal/domain"
	"github.com/hblboard/hblboard/internal/index"
	"github.com/hblboard/hblboard/internal/logger"
)

type stubFetcher struct {
	items []*domain.Item
	live  bool
	creds []string
}

func (s *stubFetcher) FetchItems(_ context.Context, credential string) ([]*domain.Item, bool) {
	s.creds = append(s.creds, credential)
	return s.items, s.live
}

type stubCreds struct{ token string }

func (s *stubCreds) Current() string { return s.token }

func testItems() []*domain.Item {
	created := time.Date(2025, time.April, 11, 10, 0, 0, 0, time.UTC)
	return []*domain.Item{
		{ID: "hit", Title: "Math HBL Quiz", CreatedAt: created, Kind: domain.KindWork},
		{ID: "miss", Title: "Field trip", Description: "bring lunch", CreatedAt: created, Kind: domain.KindNotice},
		{ID: "old", Title: "HBL archive", CreatedAt: created.AddDate(0, -6, 0), Kind: domain.KindWork},
	}
}

func TestRefreshPublishesFilteredSnapshot(t *testing.T) {
	fetcher := &stubFetcher{items: testItems(), live: true}
	idx := index.NewFeedIndex()
	fr := NewFeedRefresher(fetcher, &stubCreds{token: "tok"}, idx,
		logger.New("error", false), time.Hour, time.Hour, make(chan struct{}, 1))

	fr.SetWindow(domain.TimeRange{
		From: time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, time.April, 12, 0, 0, 0, 0, time.UTC),
	})
	fr.Refresh(context.Background())

	snap := idx.Current()
	if !snap.Live {
		t.Error("snapshot Live = false, want live")
	}
	if len(snap.Items) != 1 || snap.Items[0].ID != "hit" {
		t.Errorf("snapshot items = %v, want only the in-window keyword match", snap.Items)
	}
	if len(fetcher.creds) != 1 || fetcher.creds[0] != "tok" {
		t.Errorf("fetcher saw credentials %v, want the provider's token once", fetcher.creds)
	}
}

func TestRefreshFallbackGoesThroughSameFilter(t *testing.T) {
	fetcher := &stubFetcher{items: testItems(), live: false}
	idx := index.NewFeedIndex()
	fr := NewFeedRefresher(fetcher, &stubCreds{}, idx,
		logger.New("error", false), time.Hour, time.Hour, make(chan struct{}, 1))

	fr.SetWindow(domain.TimeRange{
		From: time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, time.April, 12, 0, 0, 0, 0, time.UTC),
	})
	fr.Refresh(context.Background())

	snap := idx.Current()
	if snap.Live {
		t.Error("snapshot Live = true, want fallback")
	}
	if len(snap.Items) != 1 || snap.Items[0].ID != "hit" {
		t.Errorf("fallback snapshot = %v, want the same filter rules as live data", snap.Items)
	}
}

func TestRefreshSequencesAreMonotonic(t *testing.T) {
	fetcher := &stubFetcher{items: nil, live: true}
	idx := index.NewFeedIndex()
	fr := NewFeedRefresher(fetcher, &stubCreds{}, idx,
		logger.New("error", false), time.Hour, time.Hour, make(chan struct{}, 1))

	fr.Refresh(context.Background())
	first := idx.Current().Seq
	fr.Refresh(context.Background())
	second := idx.Current().Seq

	if second <= first {
		t.Errorf("cycle seq did not increase: %d then %d", first, second)
	}
}

func TestRollingWindowTracksNow(t *testing.T) {
	fr := NewFeedRefresher(&stubFetcher{}, &stubCreds{}, index.NewFeedIndex(),
		logger.New("error", false), time.Hour, 48*time.Hour, make(chan struct{}, 1))

	w := fr.Window()
	if !w.Bounded() {
		t.Fatal("rolling window is unbounded")
	}
	span := w.To.Sub(w.From)
	if span != 48*time.Hour {
		t.Errorf("rolling window span = %v, want 48h", span)
	}
	if time.Since(w.To) > time.Minute {
		t.Errorf("rolling window To = %v, want close to now", w.To)
	}
}

func TestSetAndResetWindow(t *testing.T) {
	fr := NewFeedRefresher(&stubFetcher{}, &stubCreds{}, index.NewFeedIndex(),
		logger.New("error", false), time.Hour, 48*time.Hour, make(chan struct{}, 1))

	fixed := domain.TimeRange{
		From: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC),
	}
	fr.SetWindow(fixed)
	if got := fr.Window(); !got.From.Equal(fixed.From) || !got.To.Equal(fixed.To) {
		t.Errorf("Window() = %v, want the pinned range", got)
	}

	fr.ResetWindow()
	if got := fr.Window(); got.To.Sub(got.From) != 48*time.Hour {
		t.Errorf("Window() after reset = %v, want rolling lookback", got)
	}
}

func TestStartRunsInitialCycleAndManualTrigger(t *testing.T) {
	fetcher := &stubFetcher{items: testItems(), live: true}
	idx := index.NewFeedIndex()
	trigger := make(chan struct{}, 1)
	fr := NewFeedRefresher(fetcher, &stubCreds{token: "tok"}, idx,
		logger.New("error", false), time.Hour, time.Hour, trigger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := fr.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer fr.Stop()

	if idx.Current().Seq == 0 {
		t.Fatal("no snapshot published by the initial cycle")
	}

	before := idx.Current().Seq
	trigger <- struct{}{}

	deadline := time.After(2 * time.Second)
	for idx.Current().Seq == before {
		select {
		case <-deadline:
			t.Fatal("manual trigger did not produce a new cycle")
		case <-time.After(10 * time.Millisecond):
		}
	}
}
