package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/nyankohost/dctw/internal/httpserver/deps"
	"github.com/nyankohost/dctw/internal/httpserver/handlers"
)

func init() { Register(registerBots) }

func registerBots(r chi.Router, d deps.Deps) {
	r.Get("/bots", handlers.ListBots(d))
	r.Get("/bots/{id}", handlers.GetBot(d))
}
