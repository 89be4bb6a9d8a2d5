package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/hblboard/hblboard/internal/domain"
	"github.com/hblboard/hblboard/internal/httpserver/deps"
	"github.com/hblboard/hblboard/internal/logger"
)

type windowResponse struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

type itemsResponse struct {
	Items       []*domain.Item `json:"items"`
	Count       int            `json:"count"`
	Source      string         `json:"source"` // "live" | "fallback"
	Window      windowResponse `json:"window"`
	RefreshedAt string         `json:"refreshed_at,omitempty"`
}

// Items serves the current snapshot through the display-layer filter:
// a free-text query over title/description/course title ANDed with a kind
// selector ("all" disables it). Both are applied from scratch per request.
func Items(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))
		kind := domain.Kind(strings.TrimSpace(r.URL.Query().Get("kind")))

		if kind != "" && kind != domain.KindAll && kind != domain.KindWork && kind != domain.KindNotice {
			http.Error(w, "unknown kind", http.StatusBadRequest)
			return
		}

		snap := d.FeedIndex.Current()
		visible := domain.Narrow(snap.Items, query, kind)

		d.Logger.Debug("items request",
			logger.String("query", query),
			logger.String("kind", string(kind)),
			logger.Int("matched", len(visible)))

		resp := itemsResponse{
			Items:  visible,
			Count:  len(visible),
			Source: snapshotSource(snap.Live),
		}
		if snap.Window.Bounded() {
			resp.Window = windowResponse{
				From: snap.Window.From.Format(time.RFC3339),
				To:   snap.Window.To.Format(time.RFC3339),
			}
		}
		if !snap.RefreshedAt.IsZero() {
			resp.RefreshedAt = snap.RefreshedAt.Format(time.RFC3339)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func snapshotSource(live bool) string {
	if live {
		return "live"
	}
	return "fallback"
}
