// Package service implements the application use cases on top of the
// repositories and domain model.
package service

import (
	"context"
	"errors"

	"github.com/nyankohost/dctw/internal/domain"
	"github.com/nyankohost/dctw/internal/logger"
	"github.com/nyankohost/dctw/internal/repository"
)

// DiscoveryService answers listing, filtering, sorting and lookup queries
// for all three content kinds. Each query builds a fresh collection from
// the repository; cross-call caching lives in the repositories.
type DiscoveryService struct {
	bots      repository.BotRepository
	servers   repository.ServerRepository
	templates repository.TemplateRepository
	log       logger.Logger
}

func NewDiscoveryService(
	bots repository.BotRepository,
	servers repository.ServerRepository,
	templates repository.TemplateRepository,
	log logger.Logger,
) *DiscoveryService {
	return &DiscoveryService{
		bots:      bots,
		servers:   servers,
		templates: templates,
		log:       log,
	}
}

// ListBots returns bots matching the criteria, ordered by the sort option.
// A nil criteria skips filtering entirely.
func (s *DiscoveryService) ListBots(ctx context.Context, criteria *domain.FilterCriteria, sortBy domain.SortOption) ([]*domain.Bot, error) {
	bots, err := s.bots.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	coll := domain.NewBotCollection()
	s.log.Debug("bot snapshot loaded", logger.String("event", coll.Load(bots).EventName()), logger.Int("count", coll.Count()))

	result := coll.Bots()
	if criteria != nil {
		result = coll.FilterBy(*criteria)
	}
	return coll.SortBy(result, sortBy), nil
}

// ListServers mirrors ListBots for servers.
func (s *DiscoveryService) ListServers(ctx context.Context, criteria *domain.FilterCriteria, sortBy domain.SortOption) ([]*domain.Server, error) {
	servers, err := s.servers.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	coll := domain.NewServerCollection()
	s.log.Debug("server snapshot loaded", logger.String("event", coll.Load(servers).EventName()), logger.Int("count", coll.Count()))

	result := coll.Servers()
	if criteria != nil {
		result = coll.FilterBy(*criteria)
	}
	return coll.SortBy(result, sortBy), nil
}

// ListTemplates mirrors ListBots for templates. Pinned templates always
// surface first, whatever the sort option.
func (s *DiscoveryService) ListTemplates(ctx context.Context, criteria *domain.FilterCriteria, sortBy domain.SortOption) ([]*domain.Template, error) {
	templates, err := s.templates.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	coll := domain.NewTemplateCollection()
	s.log.Debug("template snapshot loaded", logger.String("event", coll.Load(templates).EventName()), logger.Int("count", coll.Count()))

	result := coll.Templates()
	if criteria != nil {
		result = coll.FilterBy(*criteria)
	}
	return coll.SortBy(result, sortBy), nil
}

// GetBotByID returns the bot or a NotFoundError.
func (s *DiscoveryService) GetBotByID(ctx context.Context, id int64) (*domain.Bot, error) {
	bot, err := s.bots.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bot == nil {
		return nil, &domain.NotFoundError{Entity: "Bot", ID: id}
	}
	return bot, nil
}

// GetServerByID returns the server or a NotFoundError.
func (s *DiscoveryService) GetServerByID(ctx context.Context, id int64) (*domain.Server, error) {
	server, err := s.servers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if server == nil {
		return nil, &domain.NotFoundError{Entity: "Server", ID: id}
	}
	return server, nil
}

// GetTemplateByID returns the template or a NotFoundError.
func (s *DiscoveryService) GetTemplateByID(ctx context.Context, id int64) (*domain.Template, error) {
	template, err := s.templates.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, &domain.NotFoundError{Entity: "Template", ID: id}
	}
	return template, nil
}

// ClearAllCaches drops every listing cache. All three are attempted even
// when one fails; the errors come back joined.
func (s *DiscoveryService) ClearAllCaches(ctx context.Context) error {
	errBots := s.bots.ClearCache(ctx)
	errServers := s.servers.ClearCache(ctx)
	errTemplates := s.templates.ClearCache(ctx)
	if err := errors.Join(errBots, errServers, errTemplates); err != nil {
		return err
	}
	s.log.Info("all listing caches cleared")
	return nil
}
