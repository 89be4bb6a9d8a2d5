package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/hblboard/hblboard/internal/httpserver/deps"
	"github.com/hblboard/hblboard/internal/httpserver/handlers"
	"github.com/hblboard/hblboard/internal/httpserver/mw"
)

func init() { Register(registerAuth) }

func registerAuth(r chi.Router, d deps.Deps) {
	limited := r.With(
		mw.EnforceHost(d.AllowedHosts, d.Logger),
		mw.RateLimit(mw.RateLimitConfig{
			Burst:             d.AuthRateBurst,
			RefillPerIPPerMin: d.AuthRatePerMin,
			TrustProxy:        d.TrustProxy,
		}),
	)
	limited.Post("/auth/token", handlers.SaveCredential(d))
	limited.Delete("/auth/token", handlers.ClearCredential(d))
}
