package handlers

import (
	"net/http"
	"time"

	"github.com/hblboard/hblboard/internal/domain"
	"github.com/hblboard/hblboard/internal/httpserver/deps"
	"github.com/hblboard/hblboard/internal/logger"
)

// Refresh triggers a new fetch cycle on demand. Optional from/to query
// parameters (RFC3339) pin the fetch window for this and later cycles;
// reset=true returns to the rolling lookback window.
func Refresh(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		fromStr, toStr := q.Get("from"), q.Get("to")
		switch {
		case fromStr != "" && toStr != "":
			from, err := time.Parse(time.RFC3339, fromStr)
			if err != nil {
				http.Error(w, "unparsable from", http.StatusBadRequest)
				return
			}
			to, err := time.Parse(time.RFC3339, toStr)
			if err != nil {
				http.Error(w, "unparsable to", http.StatusBadRequest)
				return
			}
			if to.Before(from) {
				http.Error(w, "window ends before it starts", http.StatusBadRequest)
				return
			}
			d.Refresher.SetWindow(domain.TimeRange{From: from, To: to})
		case fromStr != "" || toStr != "":
			// A half-open window would silently disable the range filter;
			// reject it so the caller notices.
			http.Error(w, "from and to must be provided together", http.StatusBadRequest)
			return
		case q.Get("reset") == "true":
			d.Refresher.ResetWindow()
		}

		select {
		case d.RefreshTrigger <- struct{}{}:
			d.Logger.Info("manual refresh triggered via endpoint",
				logger.String("remote_ip", r.RemoteAddr))
			w.WriteHeader(http.StatusAccepted)
			if _, err := w.Write([]byte("refresh triggered\n")); err != nil {
				d.Logger.Debug("failed to write response", logger.Error(err))
			}
		default:
			d.Logger.Warn("refresh already in progress",
				logger.String("remote_ip", r.RemoteAddr))
			w.WriteHeader(http.StatusTooManyRequests)
			if _, err := w.Write([]byte("refresh already in progress, please wait\n")); err != nil {
				d.Logger.Debug("failed to write response", logger.Error(err))
			}
		}
	}
}
