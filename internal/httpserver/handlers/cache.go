package handlers

import (
	"net/http"

	"github.com/nyankohost/dctw/internal/httpserver/deps"
	"github.com/nyankohost/dctw/internal/logger"
)

// ClearCaches serves POST /cache/clear. The next listing request refetches
// from the upstream API.
func ClearCaches(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Discovery.ClearAllCaches(r.Context()); err != nil {
			d.Logger.Error("cache clear failed", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to clear caches")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
