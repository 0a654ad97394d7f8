// Package repository provides cache-backed access to DCTW listings and the
// persisted user preferences.
package repository

import (
	"context"
	"time"

	"github.com/nyankohost/dctw/internal/domain"
)

// cacheTTL is how long a fetched listing stays served from cache.
const cacheTTL = 60 * time.Second

// BotRepository produces fully validated bots while minimizing upstream
// calls. FindByID returns nil on a miss; turning that into a NotFoundError
// is the service layer's job.
type BotRepository interface {
	FindAll(ctx context.Context) ([]*domain.Bot, error)
	FindByID(ctx context.Context, id int64) (*domain.Bot, error)
	ClearCache(ctx context.Context) error
}

// ServerRepository mirrors BotRepository for servers.
type ServerRepository interface {
	FindAll(ctx context.Context) ([]*domain.Server, error)
	FindByID(ctx context.Context, id int64) (*domain.Server, error)
	ClearCache(ctx context.Context) error
}

// TemplateRepository mirrors BotRepository for templates.
type TemplateRepository interface {
	FindAll(ctx context.Context) ([]*domain.Template, error)
	FindByID(ctx context.Context, id int64) (*domain.Template, error)
	ClearCache(ctx context.Context) error
}

// PreferencesRepository loads and persists the preferences aggregate.
// Load never fails on an absent store; it returns the defaults.
type PreferencesRepository interface {
	Load(ctx context.Context) (*domain.UserPreferences, error)
	Save(ctx context.Context, prefs *domain.UserPreferences) error
	Exists(ctx context.Context) (bool, error)
}
