package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/nyankohost/dctw/internal/cache"
	"github.com/nyankohost/dctw/internal/config"
	"github.com/nyankohost/dctw/internal/dctw"
	"github.com/nyankohost/dctw/internal/httpserver"
	"github.com/nyankohost/dctw/internal/httpserver/deps"
	"github.com/nyankohost/dctw/internal/logger"
	"github.com/nyankohost/dctw/internal/redisconn"
	"github.com/nyankohost/dctw/internal/repository"
	"github.com/nyankohost/dctw/internal/service"
	"github.com/nyankohost/dctw/internal/storage"
	"github.com/nyankohost/dctw/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Pick the cache backend. Redis connects early - fail fast if unavailable.
	var cacheManager cache.Manager
	var redisClient *goredis.Client
	switch cfg.CacheBackend {
	case "redis":
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redisconn.New(redisconn.Options{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		loggerClient.Info("Redis initialized successfully")
		redisClient = client
		cacheManager = cache.NewRedis(client)
	default:
		loggerClient.Info("using in-memory cache")
		cacheManager = cache.NewMemory()
	}

	// DCTW API client
	clientOpts := []dctw.Option{
		dctw.WithHTTPClient(&http.Client{Timeout: cfg.APITimeout}),
	}
	if cfg.APIBaseURL != "" {
		clientOpts = append(clientOpts, dctw.WithBaseURL(cfg.APIBaseURL))
	}
	if cfg.APIKey != "" {
		clientOpts = append(clientOpts, dctw.WithAPIKey(cfg.APIKey))
	}
	if cfg.UserAgent != "" {
		clientOpts = append(clientOpts, dctw.WithUserAgent(cfg.UserAgent))
	}
	apiClient := dctw.NewClient(loggerClient, clientOpts...)

	// Repositories
	botRepo := repository.NewCachedBotRepository(apiClient, cacheManager, loggerClient)
	serverRepo := repository.NewCachedServerRepository(apiClient, cacheManager, loggerClient)
	templateRepo := repository.NewCachedTemplateRepository(apiClient, cacheManager, loggerClient)
	prefsStore := storage.NewConfigFile(cfg.PreferencesFile, loggerClient)
	prefsRepo := repository.NewFilePreferencesRepository(prefsStore, loggerClient)

	// Services
	discovery := service.NewDiscoveryService(botRepo, serverRepo, templateRepo, loggerClient)
	preferences := service.NewPreferenceService(prefsRepo, loggerClient)

	d := deps.Deps{
		Logger:      loggerClient,
		StartTime:   time.Now(),
		Version:     version.Version,
		Commit:      version.Commit,
		BuildDate:   version.BuildDate,
		GoVersion:   version.GoVersion,
		TimeNow:     time.Now,
		Discovery:   discovery,
		Preferences: preferences,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting dctw v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("dctw %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ dctw stopped cleanly")
	return nil
}
