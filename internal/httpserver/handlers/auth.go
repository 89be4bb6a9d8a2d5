package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/hblboard/hblboard/internal/httpserver/deps"
	"github.com/hblboard/hblboard/internal/logger"
)

type saveCredentialRequest struct {
	AccessToken string `json:"access_token"`
}

// SaveCredential stores the bearer credential obtained by the frontend's
// consent flow. The token is opaque here; validity only shows up as
// authentication failures against the classroom API, which degrade the
// feed to fallback rather than erroring.
func SaveCredential(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req saveCredentialRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid body", http.StatusBadRequest)
			return
		}
		if req.AccessToken == "" {
			http.Error(w, "access_token is required", http.StatusBadRequest)
			return
		}

		if err := d.Credentials.Set(r.Context(), req.AccessToken); err != nil {
			d.Logger.Error("failed to persist credential", logger.Error(err))
			http.Error(w, "failed to persist credential", http.StatusInternalServerError)
			return
		}

		d.Logger.Info("credential stored",
			logger.String("remote_ip", r.RemoteAddr))
		w.WriteHeader(http.StatusNoContent)
	}
}

// ClearCredential signs out: the persisted blob is removed and the next
// cycle serves the fallback dataset.
func ClearCredential(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Credentials.Clear(r.Context()); err != nil {
			d.Logger.Error("failed to clear credential", logger.Error(err))
			http.Error(w, "failed to clear credential", http.StatusInternalServerError)
			return
		}

		d.Logger.Info("credential cleared",
			logger.String("remote_ip", r.RemoteAddr))
		w.WriteHeader(http.StatusNoContent)
	}
}
