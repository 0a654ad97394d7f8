package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/nyankohost/dctw/internal/httpserver/deps"
	"github.com/nyankohost/dctw/internal/httpserver/handlers"
)

func init() { Register(registerPreferences) }

func registerPreferences(r chi.Router, d deps.Deps) {
	r.Get("/preferences", handlers.GetPreferences(d))
	r.Put("/preferences", handlers.UpdatePreferences(d))
	r.Post("/preferences/nsfw/toggle", handlers.ToggleNSFW(d))
}
