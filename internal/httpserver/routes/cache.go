package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/nyankohost/dctw/internal/httpserver/deps"
	"github.com/nyankohost/dctw/internal/httpserver/handlers"
)

func init() { Register(registerCache) }

func registerCache(r chi.Router, d deps.Deps) {
	r.Post("/cache/clear", handlers.ClearCaches(d))
}
