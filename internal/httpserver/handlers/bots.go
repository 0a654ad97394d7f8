package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nyankohost/dctw/internal/dctw"
	"github.com/nyankohost/dctw/internal/domain"
	"github.com/nyankohost/dctw/internal/httpserver/deps"
)

type listResponse[T any] struct {
	Count int `json:"count"`
	Data  []T `json:"data"`
}

// ListBots serves GET /bots with tags, nsfw, q and sort query params.
func ListBots(d deps.Deps) http.HandlerFunc {
	mapper := dctw.NewMapper()
	return func(w http.ResponseWriter, r *http.Request) {
		criteria, sortBy := parseListQuery(r, domain.NewBotTag)

		bots, err := d.Discovery.ListBots(r.Context(), &criteria, sortBy)
		if err != nil {
			writeServiceError(d, w, err)
			return
		}

		records := make([]dctw.BotRecord, len(bots))
		for i, bot := range bots {
			records[i] = mapper.BotRecord(bot)
		}
		writeJSON(w, http.StatusOK, listResponse[dctw.BotRecord]{Count: len(records), Data: records})
	}
}

// GetBot serves GET /bots/{id}.
func GetBot(d deps.Deps) http.HandlerFunc {
	mapper := dctw.NewMapper()
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid bot id")
			return
		}

		bot, err := d.Discovery.GetBotByID(r.Context(), id)
		if err != nil {
			writeServiceError(d, w, err)
			return
		}
		writeJSON(w, http.StatusOK, mapper.BotRecord(bot))
	}
}
