package service

import (
	"context"

	"github.com/nyankohost/dctw/internal/domain"
	"github.com/nyankohost/dctw/internal/logger"
	"github.com/nyankohost/dctw/internal/repository"
)

// PreferenceService owns the single live UserPreferences aggregate. It loads
// lazily on first use and persists after every successful mutation.
type PreferenceService struct {
	repo    repository.PreferencesRepository
	log     logger.Logger
	current *domain.UserPreferences
}

func NewPreferenceService(repo repository.PreferencesRepository, log logger.Logger) *PreferenceService {
	return &PreferenceService{repo: repo, log: log}
}

func (s *PreferenceService) ensureLoaded(ctx context.Context) error {
	if s.current != nil {
		return nil
	}
	prefs, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	s.current = prefs
	return nil
}

// GetCurrentPreferences returns the live aggregate, loading it on first call.
func (s *PreferenceService) GetCurrentPreferences(ctx context.Context) (*domain.UserPreferences, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return s.current, nil
}

// SavePreferences persists the current aggregate. Nothing loaded yet means
// nothing to save.
func (s *PreferenceService) SavePreferences(ctx context.Context) error {
	if s.current == nil {
		s.log.Warn("save requested before preferences were loaded")
		return nil
	}
	return s.repo.Save(ctx, s.current)
}

func (s *PreferenceService) SetTheme(ctx context.Context, theme domain.Theme) error {
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}
	event := s.current.ChangeTheme(theme)
	if event == nil {
		return nil
	}
	s.log.Info("theme changed", logger.String("theme", string(theme)))
	return s.repo.Save(ctx, s.current)
}

func (s *PreferenceService) SetAPIKey(ctx context.Context, key string) error {
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}
	s.current.UpdateAPIKey(domain.NewAPIKey(key))
	s.log.Info("api key updated", logger.String("apikey", s.current.APIKey().String()))
	return s.repo.Save(ctx, s.current)
}

// ToggleNSFW flips the filter and returns the new state.
func (s *PreferenceService) ToggleNSFW(ctx context.Context) (bool, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return false, err
	}
	s.current.ToggleNSFW()
	enabled := s.current.NSFW().Enabled()
	s.log.Info("nsfw filter toggled", logger.Bool("enabled", enabled))
	if err := s.repo.Save(ctx, s.current); err != nil {
		return enabled, err
	}
	return enabled, nil
}

func (s *PreferenceService) SetNSFW(ctx context.Context, enabled bool) error {
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}
	if s.current.SetNSFW(enabled) == nil {
		return nil
	}
	s.log.Info("nsfw filter set", logger.Bool("enabled", enabled))
	return s.repo.Save(ctx, s.current)
}

func (s *PreferenceService) SetUpdateCheck(ctx context.Context, mode domain.UpdateCheck) error {
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}
	if s.current.ChangeUpdateCheck(mode) == nil {
		return nil
	}
	s.log.Info("update check mode changed", logger.String("mode", string(mode)))
	return s.repo.Save(ctx, s.current)
}

func (s *PreferenceService) SetHomeIndex(ctx context.Context, index int) error {
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}
	before := s.current.HomeIndex()
	s.current.SetHomeIndex(index)
	if s.current.HomeIndex() == before {
		return nil
	}
	return s.repo.Save(ctx, s.current)
}
