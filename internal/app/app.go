package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/linkshelf/linkshelf/internal/config"
	"github.com/linkshelf/linkshelf/internal/dashboard"
	"github.com/linkshelf/linkshelf/internal/guard"
	"github.com/linkshelf/linkshelf/internal/httpserver"
	"github.com/linkshelf/linkshelf/internal/httpserver/deps"
	"github.com/linkshelf/linkshelf/internal/logger"
	"github.com/linkshelf/linkshelf/internal/redis"
	"github.com/linkshelf/linkshelf/internal/repo"
	"github.com/linkshelf/linkshelf/internal/snapshot"
	"github.com/linkshelf/linkshelf/internal/store"
	"github.com/linkshelf/linkshelf/internal/store/memory"
	redisstore "github.com/linkshelf/linkshelf/internal/store/redis"
	"github.com/linkshelf/linkshelf/internal/store/supabase"
	"github.com/linkshelf/linkshelf/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	store       store.RemoteStore
	guard       *guard.Guard
	redisClient *goredis.Client
	syncer      *snapshot.Syncer
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	var st store.RemoteStore
	switch cfg.StoreDriver {
	case config.DriverMemory:
		loggerClient.Warn("using the in-process store, nothing persists across restarts")
		st = memory.New()
	default:
		st = supabase.New(supabase.Options{
			BaseURL:     cfg.SupabaseURL,
			APIKey:      cfg.SupabaseKey,
			AccessToken: cfg.SupabaseToken,
			Timeout:     cfg.StoreTimeout,
		}, loggerClient)
	}

	// The snapshot mirror is optional; a missing redis only costs restarts
	// their warm start, so connection failure is not fatal.
	var (
		redisClient *goredis.Client
		syncer      *snapshot.Syncer
	)
	if cfg.RedisAddr != "" {
		client, err := redis.New(redis.ConnectOptions{
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
		}, loggerClient)
		if err != nil {
			loggerClient.Warnf("snapshot mirror disabled, redis unavailable: %v", err)
		} else {
			redisClient = client
			syncer = snapshot.New(redisstore.NewStore(client), loggerClient)
		}
	} else {
		loggerClient.Info("redis not configured, snapshot mirror disabled")
	}

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		store:       st,
		guard:       guard.New(st, loggerClient),
		redisClient: redisClient,
		syncer:      syncer,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Linkshelf v%s on %s", version.Version, a.cfg.ListenAddr)
	a.logger.Infof("Linkshelf %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Everything is scoped to one authenticated user; without a session
	// there is no state to serve.
	session, err := a.guard.Establish(ctx)
	if err != nil {
		return fmt.Errorf("failed to establish session: %w", err)
	}

	repository := repo.New(a.store, session.UserID, a.logger)

	var opts []dashboard.Option
	if a.syncer != nil {
		opts = append(opts, dashboard.WithReloadHook(a.syncer.Persist))

		// Warm start from the last mirrored collection; the first
		// authoritative load replaces it.
		if warm := a.syncer.Restore(ctx, session.UserID); warm != nil {
			repository.Seed(warm)
		}
	}
	dash := dashboard.New(a.guard, repository, a.logger, opts...)

	if err := dash.Refresh(ctx); err != nil {
		a.logger.Warn("initial load failed, serving the warm snapshot until a reload succeeds",
			logger.Error(err))
	}

	d := deps.Deps{
		Logger:       a.logger,
		StartTime:    time.Now(),
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		TimeNow:      time.Now,
		AllowedHosts: a.cfg.AllowedHosts,
		Dashboard:    dash,
		SeedFile:     a.cfg.SeedFile,
	}

	server := httpserver.New(a.cfg, a.logger, d)

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil {
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
	if err := server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ Linkshelf stopped cleanly")
	return nil
}
