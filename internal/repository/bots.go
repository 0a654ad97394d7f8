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

const botsCacheKey = "bots:all"

type botAPI interface {
	GetBots(ctx context.Context) ([]dctw.BotRecord, error)
}

// CachedBotRepository serves bots from the TTL cache, falling back to the
// API. Cache entries hold raw records, so a hit re-runs the same validating
// mapping fresh data gets.
type CachedBotRepository struct {
	api    botAPI
	cache  cache.Manager
	mapper *dctw.Mapper
	log    logger.Logger
}

func NewCachedBotRepository(api botAPI, cacheManager cache.Manager, log logger.Logger) *CachedBotRepository {
	return &CachedBotRepository{
		api:    api,
		cache:  cacheManager,
		mapper: dctw.NewMapper(),
		log:    log,
	}
}

func (r *CachedBotRepository) FindAll(ctx context.Context) ([]*domain.Bot, error) {
	data, hit, err := r.cache.Get(ctx, botsCacheKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read bot cache: %w", err)
	}
	if hit {
		var records []dctw.BotRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to decode cached bots: %w", err)
		}
		bots, err := r.mapper.MapBots(records)
		if err != nil {
			return nil, fmt.Errorf("failed to map cached bots: %w", err)
		}
		r.log.Debug("loaded bots from cache", logger.Int("count", len(bots)))
		return bots, nil
	}

	records, err := r.api.GetBots(ctx)
	if err != nil {
		return nil, err
	}
	bots, err := r.mapper.MapBots(records)
	if err != nil {
		return nil, err
	}

	r.store(ctx, bots)
	r.log.Info("loaded bots from api", logger.Int("count", len(bots)))
	return bots, nil
}

func (r *CachedBotRepository) FindByID(ctx context.Context, id int64) (*domain.Bot, error) {
	bots, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, bot := range bots {
		if bot.ID == id {
			return bot, nil
		}
	}
	return nil, nil
}

func (r *CachedBotRepository) ClearCache(ctx context.Context) error {
	if err := r.cache.Delete(ctx, botsCacheKey); err != nil {
		return fmt.Errorf("failed to clear bot cache: %w", err)
	}
	r.log.Info("bot cache cleared")
	return nil
}

// store writes the listing back to cache. Best effort: a listing that could
// not be cached is still a successful listing.
func (r *CachedBotRepository) store(ctx context.Context, bots []*domain.Bot) {
	records := make([]dctw.BotRecord, len(bots))
	for i, bot := range bots {
		records[i] = r.mapper.BotRecord(bot)
	}
	payload, err := json.Marshal(records)
	if err != nil {
		r.log.Warn("failed to encode bots for cache", logger.Error(err))
		return
	}
	if err := r.cache.Set(ctx, botsCacheKey, payload, cacheTTL); err != nil {
		r.log.Warn("failed to cache bots", logger.Error(err))
	}
}
