package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nyankohost/dctw/internal/domain"
	"github.com/nyankohost/dctw/internal/httpserver/deps"
)

// preferencesResponse mirrors the persisted record, with the API key masked.
// The raw key never leaves the process.
type preferencesResponse struct {
	ConfigVersion int    `json:"config_version"`
	Theme         string `json:"theme"`
	APIKey        string `json:"apikey"`
	NSFW          bool   `json:"nsfw"`
	UpdateCheck   string `json:"app_update_check"`
	HomeIndex     int    `json:"home_index"`
}

func preferencesView(prefs *domain.UserPreferences) preferencesResponse {
	return preferencesResponse{
		ConfigVersion: domain.ConfigVersion,
		Theme:         string(prefs.Theme()),
		APIKey:        prefs.APIKey().String(),
		NSFW:          prefs.NSFW().Enabled(),
		UpdateCheck:   string(prefs.UpdateCheck()),
		HomeIndex:     prefs.HomeIndex(),
	}
}

// GetPreferences serves GET /preferences.
func GetPreferences(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prefs, err := d.Preferences.GetCurrentPreferences(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to load preferences")
			return
		}
		writeJSON(w, http.StatusOK, preferencesView(prefs))
	}
}

// updatePreferencesRequest is a partial update; absent fields stay untouched.
type updatePreferencesRequest struct {
	Theme       *string `json:"theme"`
	APIKey      *string `json:"apikey"`
	NSFW        *bool   `json:"nsfw"`
	UpdateCheck *string `json:"app_update_check"`
	HomeIndex   *int    `json:"home_index"`
}

// UpdatePreferences serves PUT /preferences. Unknown theme and update check
// values fall back to their defaults, the same forgiving parse applied to
// stored documents.
func UpdatePreferences(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updatePreferencesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		ctx := r.Context()
		if req.Theme != nil {
			if err := d.Preferences.SetTheme(ctx, domain.ThemeFromString(*req.Theme)); err != nil {
				writeError(w, http.StatusInternalServerError, "failed to save preferences")
				return
			}
		}
		if req.APIKey != nil {
			if err := d.Preferences.SetAPIKey(ctx, *req.APIKey); err != nil {
				writeError(w, http.StatusInternalServerError, "failed to save preferences")
				return
			}
		}
		if req.NSFW != nil {
			if err := d.Preferences.SetNSFW(ctx, *req.NSFW); err != nil {
				writeError(w, http.StatusInternalServerError, "failed to save preferences")
				return
			}
		}
		if req.UpdateCheck != nil {
			if err := d.Preferences.SetUpdateCheck(ctx, domain.UpdateCheckFromString(*req.UpdateCheck)); err != nil {
				writeError(w, http.StatusInternalServerError, "failed to save preferences")
				return
			}
		}
		if req.HomeIndex != nil {
			if err := d.Preferences.SetHomeIndex(ctx, *req.HomeIndex); err != nil {
				writeError(w, http.StatusInternalServerError, "failed to save preferences")
				return
			}
		}

		prefs, err := d.Preferences.GetCurrentPreferences(ctx)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to load preferences")
			return
		}
		writeJSON(w, http.StatusOK, preferencesView(prefs))
	}
}

type nsfwToggleResponse struct {
	NSFW bool `json:"nsfw"`
}

// ToggleNSFW serves POST /preferences/nsfw/toggle and returns the new state.
func ToggleNSFW(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		enabled, err := d.Preferences.ToggleNSFW(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to toggle nsfw filter")
			return
		}
		writeJSON(w, http.StatusOK, nsfwToggleResponse{NSFW: enabled})
	}
}
