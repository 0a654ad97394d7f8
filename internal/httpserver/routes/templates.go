package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/nyankohost/dctw/internal/httpserver/deps"
	"github.com/nyankohost/dctw/internal/httpserver/handlers"
)

func init() { Register(registerTemplates) }

func registerTemplates(r chi.Router, d deps.Deps) {
	r.Get("/templates", handlers.ListTemplates(d))
	r.Get("/templates/{id}", handlers.GetTemplate(d))
}
