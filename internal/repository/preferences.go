package repository

import (
	"context"

	"github.com/nyankohost/dctw/internal/domain"
	"github.com/nyankohost/dctw/internal/logger"
	"github.com/nyankohost/dctw/internal/storage"
)

// FilePreferencesRepository persists the preferences aggregate as a flat
// versioned JSON document.
type FilePreferencesRepository struct {
	store *storage.ConfigFile
	log   logger.Logger
}

func NewFilePreferencesRepository(store *storage.ConfigFile, log logger.Logger) *FilePreferencesRepository {
	return &FilePreferencesRepository{store: store, log: log}
}

// Load returns the stored preferences, or the defaults when nothing usable
// is on disk. FromPreferencesRecord back-fills any key the document misses.
func (r *FilePreferencesRepository) Load(_ context.Context) (*domain.UserPreferences, error) {
	var rec domain.PreferencesRecord
	found, err := r.store.Load(&rec)
	if err != nil {
		return nil, err
	}
	if !found {
		r.log.Info("no config found, using defaults")
		return domain.NewUserPreferences(), nil
	}
	r.log.Debug("loaded preferences from config file")
	return domain.FromPreferencesRecord(rec), nil
}

func (r *FilePreferencesRepository) Save(_ context.Context, prefs *domain.UserPreferences) error {
	if err := r.store.Save(prefs.ToRecord()); err != nil {
		return err
	}
	r.log.Debug("preferences saved")
	return nil
}

func (r *FilePreferencesRepository) Exists(_ context.Context) (bool, error) {
	return r.store.Exists(), nil
}
