package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nyankohost/dctw/internal/domain"
	"github.com/nyankohost/dctw/internal/httpserver/deps"
	"github.com/nyankohost/dctw/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps domain lookup misses to 404 and everything else
// (upstream fetch, cache, corrupt data) to 502.
func writeServiceError(d deps.Deps, w http.ResponseWriter, err error) {
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		writeError(w, http.StatusNotFound, notFound.Error())
		return
	}
	d.Logger.Error("request failed", logger.Error(err))
	writeError(w, http.StatusBadGateway, "upstream listing unavailable")
}
