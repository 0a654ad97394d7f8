package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nyankohost/dctw/internal/dctw"
	"github.com/nyankohost/dctw/internal/domain"
	"github.com/nyankohost/dctw/internal/httpserver/deps"
)

// ListTemplates serves GET /templates with tags, nsfw, q and sort query params.
func ListTemplates(d deps.Deps) http.HandlerFunc {
	mapper := dctw.NewMapper()
	return func(w http.ResponseWriter, r *http.Request) {
		criteria, sortBy := parseListQuery(r, domain.NewTemplateTag)

		templates, err := d.Discovery.ListTemplates(r.Context(), &criteria, sortBy)
		if err != nil {
			writeServiceError(d, w, err)
			return
		}

		records := make([]dctw.TemplateRecord, len(templates))
		for i, template := range templates {
			records[i] = mapper.TemplateRecord(template)
		}
		writeJSON(w, http.StatusOK, listResponse[dctw.TemplateRecord]{Count: len(records), Data: records})
	}
}

// GetTemplate serves GET /templates/{id}.
func GetTemplate(d deps.Deps) http.HandlerFunc {
	mapper := dctw.NewMapper()
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid template id")
			return
		}

		template, err := d.Discovery.GetTemplateByID(r.Context(), id)
		if err != nil {
			writeServiceError(d, w, err)
			return
		}
		writeJSON(w, http.StatusOK, mapper.TemplateRecord(template))
	}
}
