package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/nyankohost/dctw/internal/httpserver/deps"
	"github.com/nyankohost/dctw/internal/httpserver/handlers"
)

func init() { Register(registerServers) }

func registerServers(r chi.Router, d deps.Deps) {
	r.Get("/servers", handlers.ListServers(d))
	r.Get("/servers/{id}", handlers.GetServer(d))
}
