package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/hblboard/hblboard/internal/config"
	"github.com/hblboard/hblboard/internal/credential"
	"github.com/hblboard/hblboard/internal/httpserver"
	"github.com/hblboard/hblboard/internal/httpserver/deps"
	"github.com/hblboard/hblboard/internal/index"
	"github.com/hblboard/hblboard/internal/logger"
	"github.com/hblboard/hblboard/internal/redis"
	"github.com/hblboard/hblboard/internal/scheduler"
	"github.com/hblboard/hblboard/internal/sources/classroom"
	"github.com/hblboard/hblboard/internal/sources/fallback"
	redisstore "github.com/hblboard/hblboard/internal/store/redis"
	"github.com/hblboard/hblboard/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	feedIndex   *index.FeedIndex
	refresher   *scheduler.FeedRefresher
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Initialize Redis early - fail fast if unavailable
	loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		RedisDB:        cfg.RedisDB,
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

	// Fallback dataset is a startup requirement: without it there is
	// nothing to serve when the classroom API is unreachable.
	fallbackItems, err := fallback.NewLoader(cfg.FallbackFile).Load()
	if err != nil {
		loggerClient.Errorf("Failed to load fallback dataset: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("fallback dataset loaded",
		logger.Int("items", len(fallbackItems)))

	// Restore the persisted credential, if any. Never fatal.
	credentials := credential.NewProvider(redisstore.NewStore(redisClient), loggerClient)
	credentials.Load(context.Background())

	feedIndex := index.NewFeedIndex()

	client := classroom.NewClient(cfg.ClassroomBaseURL, cfg.RequestTimeout)
	aggregator := classroom.NewAggregator(client, fallbackItems, loggerClient)

	// Manual refresh trigger channel, shared with the HTTP layer.
	refreshTrigger := make(chan struct{}, 1)

	refresher := scheduler.NewFeedRefresher(
		aggregator,
		credentials,
		feedIndex,
		loggerClient,
		cfg.RefreshInterval,
		cfg.Lookback,
		refreshTrigger,
	)

	// Sign-in and sign-out both change what the next cycle can fetch, so
	// each nudges the refresher instead of waiting out the interval.
	credentials.OnChange(func() {
		select {
		case refreshTrigger <- struct{}{}:
		default:
		}
	})

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:         loggerClient,
		StartTime:      time.Now(),
		Version:        version.Version,
		Commit:         version.Commit,
		BuildDate:      version.BuildDate,
		GoVersion:      version.GoVersion,
		AllowedHosts:   cfg.AllowedHosts,
		AllowedCIDRS:   cfg.AllowedCIDRS,
		TrustProxy:     cfg.TrustProxy,
		RedisClient:    redisClient,
		FeedIndex:      feedIndex,
		Credentials:    credentials,
		Refresher:      refresher,
		RefreshTrigger: refreshTrigger,
		AuthRateBurst:  cfg.AuthRateBurst,
		AuthRatePerMin: cfg.AuthRatePerMin,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		feedIndex:   feedIndex,
		refresher:   refresher,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting hblboard v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("hblboard %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start the feed refresher (first cycle runs before this returns)
	if err := a.refresher.Start(ctx); err != nil {
		return fmt.Errorf("failed to start feed refresher: %w", err)
	}
	a.logger.Info("feed refresher started",
		logger.Duration("interval", a.cfg.RefreshInterval))

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

	a.refresher.Stop()

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

	a.logger.Info("✅ hblboard stopped cleanly")
	return nil
}
