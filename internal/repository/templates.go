package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nyankohost/dctw/internal/cache"
	"github.com/nyankohost/dctw/internal/dctw"
	"github.com/nyankohost/dctw/internal/domain"
	"github.com/nyankohost/dctw/internal/logger"
)

const templatesCacheKey = "templates:all"

type templateAPI interface {
	GetTemplates(ctx context.Context) ([]dctw.TemplateRecord, error)
}

// CachedTemplateRepository serves templates from the TTL cache, falling back
// to the API.
type CachedTemplateRepository struct {
	api    templateAPI
	cache  cache.Manager
	mapper *dctw.Mapper
	log    logger.Logger
}

func NewCachedTemplateRepository(api templateAPI, cacheManager cache.Manager, log logger.Logger) *CachedTemplateRepository {
	return &CachedTemplateRepository{
		api:    api,
		cache:  cacheManager,
		mapper: dctw.NewMapper(),
		log:    log,
	}
}

func (r *CachedTemplateRepository) FindAll(ctx context.Context) ([]*domain.Template, error) {
	data, hit, err := r.cache.Get(ctx, templatesCacheKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read template cache: %w", err)
	}
	if hit {
		var records []dctw.TemplateRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to decode cached templates: %w", err)
		}
		templates, err := r.mapper.MapTemplates(records)
		if err != nil {
			return nil, fmt.Errorf("failed to map cached templates: %w", err)
		}
		r.log.Debug("loaded templates from cache", logger.Int("count", len(templates)))
		return templates, nil
	}

	records, err := r.api.GetTemplates(ctx)
	if err != nil {
		return nil, err
	}
	templates, err := r.mapper.MapTemplates(records)
	if err != nil {
		return nil, err
	}

	r.store(ctx, templates)
	r.log.Info("loaded templates from api", logger.Int("count", len(templates)))
	return templates, nil
}

func (r *CachedTemplateRepository) FindByID(ctx context.Context, id int64) (*domain.Template, error) {
	templates, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, template := range templates {
		if template.ID == id {
			return template, nil
		}
	}
	return nil, nil
}

func (r *CachedTemplateRepository) ClearCache(ctx context.Context) error {
	if err := r.cache.Delete(ctx, templatesCacheKey); err != nil {
		return fmt.Errorf("failed to clear template cache: %w", err)
	}
	r.log.Info("template cache cleared")
	return nil
}

func (r *CachedTemplateRepository) store(ctx context.Context, templates []*domain.Template) {
	records := make([]dctw.TemplateRecord, len(templates))
	for i, template := range templates {
		records[i] = r.mapper.TemplateRecord(template)
	}
	payload, err := json.Marshal(records)
	if err != nil {
		r.log.Warn("failed to encode templates for cache", logger.Error(err))
		return
	}
	if err := r.cache.Set(ctx, templatesCacheKey, payload, cacheTTL); err != nil {
		r.log.Warn("failed to cache templates", logger.Error(err))
	}
}
