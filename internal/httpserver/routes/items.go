package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/hblboard/hblboard/internal/httpserver/deps"
	"github.com/hblboard/hblboard/internal/httpserver/handlers"
	"github.com/hblboard/hblboard/internal/httpserver/mw"
)

func init() { Register(registerItems) }

func registerItems(r chi.Router, d deps.Deps) {
	r.With(mw.EnforceHost(d.AllowedHosts, d.Logger)).Get("/items", handlers.Items(d))
	r.With(mw.EnforceHost(d.AllowedHosts, d.Logger)).Get("/courses", handlers.Courses(d))
}
