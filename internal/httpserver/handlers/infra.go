package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/hblboard/hblboard/internal/httpserver/deps"
)

type componentStatus struct {
	OK          bool   `json:"ok"`
	ItemsLoaded *int   `json:"items_loaded,omitempty"`
	LastRefresh string `json:"last_refresh,omitempty"`
	Source      string `json:"source,omitempty"`
	Impact      string `json:"impact,omitempty"`
	Error       string `json:"error,omitempty"`
}

type infraResponse struct {
	FeedMode   string                     `json:"feed_mode"`
	Components map[string]componentStatus `json:"components"`
}

// Infra exposes the moving parts: the feed snapshot, redis (credential
// persistence) and whether the board currently authenticates against the
// classroom API.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		snap := d.FeedIndex.Current()
		itemCount := len(snap.Items)

		lastRefresh := "never"
		if !snap.RefreshedAt.IsZero() {
			lastRefresh = snap.RefreshedAt.Format("2006-01-02 15:04:05")
		}

		components := map[string]componentStatus{
			"feed": {
				OK:          !snap.RefreshedAt.IsZero(),
				ItemsLoaded: &itemCount,
				LastRefresh: lastRefresh,
				Source:      snapshotSource(snap.Live),
			},
			"redis":     checkRedis(d),
			"classroom": checkClassroom(d),
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(infraResponse{
			FeedMode:   determineFeedMode(snap.Live, !snap.RefreshedAt.IsZero()),
			Components: components,
		})
	}
}

func determineFeedMode(live, refreshed bool) string {
	switch {
	case !refreshed:
		return "starting"
	case live:
		return "live"
	default:
		return "fallback"
	}
}

func checkRedis(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{
			OK:     false,
			Impact: "credential-persistence-disabled",
			Error:  "client not initialized",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{
			OK:     false,
			Impact: "credential-persistence-disabled",
			Error:  "timeout",
		}
	}

	return componentStatus{
		OK:     true,
		Impact: "credential-persistence-enabled",
	}
}

func checkClassroom(d deps.Deps) componentStatus {
	if d.Credentials.Current() == "" {
		return componentStatus{
			OK:     false,
			Impact: "unauthenticated, serving fallback dataset",
		}
	}
	return componentStatus{
		OK:     true,
		Impact: "authenticated",
	}
}
