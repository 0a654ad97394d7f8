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

const serversCacheKey = "servers:all"

type serverAPI interface {
	GetServers(ctx context.Context) ([]dctw.ServerRecord, error)
}

// CachedServerRepository serves servers from the TTL cache, falling back to
// the API.
type CachedServerRepository struct {
	api    serverAPI
	cache  cache.Manager
	mapper *dctw.Mapper
	log    logger.Logger
}

func NewCachedServerRepository(api serverAPI, cacheManager cache.Manager, log logger.Logger) *CachedServerRepository {
	return &CachedServerRepository{
		api:    api,
		cache:  cacheManager,
		mapper: dctw.NewMapper(),
		log:    log,
	}
}

func (r *CachedServerRepository) FindAll(ctx context.Context) ([]*domain.Server, error) {
	data, hit, err := r.cache.Get(ctx, serversCacheKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read server cache: %w", err)
	}
	if hit {
		var records []dctw.ServerRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to decode cached servers: %w", err)
		}
		servers, err := r.mapper.MapServers(records)
		if err != nil {
			return nil, fmt.Errorf("failed to map cached servers: %w", err)
		}
		r.log.Debug("loaded servers from cache", logger.Int("count", len(servers)))
		return servers, nil
	}

	records, err := r.api.GetServers(ctx)
	if err != nil {
		return nil, err
	}
	servers, err := r.mapper.MapServers(records)
	if err != nil {
		return nil, err
	}

	r.store(ctx, servers)
	r.log.Info("loaded servers from api", logger.Int("count", len(servers)))
	return servers, nil
}

func (r *CachedServerRepository) FindByID(ctx context.Context, id int64) (*domain.Server, error) {
	servers, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, server := range servers {
		if server.ID == id {
			return server, nil
		}
	}
	return nil, nil
}

func (r *CachedServerRepository) ClearCache(ctx context.Context) error {
	if err := r.cache.Delete(ctx, serversCacheKey); err != nil {
		return fmt.Errorf("failed to clear server cache: %w", err)
	}
	r.log.Info("server cache cleared")
	return nil
}

func (r *CachedServerRepository) store(ctx context.Context, servers []*domain.Server) {
	records := make([]dctw.ServerRecord, len(servers))
	for i, server := range servers {
		records[i] = r.mapper.ServerRecord(server)
	}
	payload, err := json.Marshal(records)
	if err != nil {
		r.log.Warn("failed to encode servers for cache", logger.Error(err))
		return
	}
	if err := r.cache.Set(ctx, serversCacheKey, payload, cacheTTL); err != nil {
		r.log.Warn("failed to cache servers", logger.Error(err))
	}
}
