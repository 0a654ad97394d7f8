package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nyankohost/dctw/internal/dctw"
	"github.com/nyankohost/dctw/internal/domain"
	"github.com/nyankohost/dctw/internal/httpserver/deps"
)

// ListServers serves GET /servers with tags, nsfw, q and sort query params.
func ListServers(d deps.Deps) http.HandlerFunc {
	mapper := dctw.NewMapper()
	return func(w http.ResponseWriter, r *http.Request) {
		criteria, sortBy := parseListQuery(r, domain.NewServerTag)

		servers, err := d.Discovery.ListServers(r.Context(), &criteria, sortBy)
		if err != nil {
			writeServiceError(d, w, err)
			return
		}

		records := make([]dctw.ServerRecord, len(servers))
		for i, server := range servers {
			records[i] = mapper.ServerRecord(server)
		}
		writeJSON(w, http.StatusOK, listResponse[dctw.ServerRecord]{Count: len(records), Data: records})
	}
}

// GetServer serves GET /servers/{id}.
func GetServer(d deps.Deps) http.HandlerFunc {
	mapper := dctw.NewMapper()
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid server id")
			return
		}

		server, err := d.Discovery.GetServerByID(r.Context(), id)
		if err != nil {
			writeServiceError(d, w, err)
			return
		}
		writeJSON(w, http.StatusOK, mapper.ServerRecord(server))
	}
}
