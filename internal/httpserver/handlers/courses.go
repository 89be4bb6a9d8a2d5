package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/hblboard/hblboard/internal/domain"
	"github.com/hblboard/hblboard/internal/httpserver/deps"
)

type coursesResponse struct {
	Courses []domain.Course `json:"courses"`
}

// Courses lists the distinct courses referenced by the current snapshot.
// Courses are fetch-scoped and not stored anywhere else, so this is derived
// on demand.
func Courses(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := d.FeedIndex.Current()

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(coursesResponse{
			Courses: domain.Courses(snap.Items),
		})
	}
}
