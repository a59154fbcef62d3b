package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"

	"github.com/sristi/brainark-core/internal/api"
	"github.com/sristi/brainark-core/internal/core/service"
	"github.com/sristi/brainark-core/internal/infrastructure/db/redis"
	"github.com/sristi/brainark-core/internal/infrastructure/store/memory"
	"github.com/sristi/brainark-core/internal/notify"
	"github.com/sristi/brainark-core/internal/pkg/config"
	"github.com/sristi/brainark-core/pkg/logger"
)

// @title        Sristi BrainArk Session Core API
// @version      1.0
// @description  Bookings, community board and session management for the BrainArk site.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The stores are constructed once per process and discarded on exit;
	// there is no persistence across restarts.
	userRepo := memory.NewIdentityRepository()
	bookingRepo := memory.NewBookingRepository()
	forumRepo := memory.NewForumRepository()

	if cfg.Seed {
		if err := memory.Seed(ctx, userRepo, bookingRepo, forumRepo); err != nil {
			log.Fatal().Err(err).Msg("failed to seed demo data")
		}
		log.Info().Msg("demo catalog seeded")
	}

	var rdb *goredis.Client
	var guard service.SubmissionGuard
	if cfg.Redis.Addr != "" {
		client, err := redis.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to redis")
		}
		defer client.Close()
		rdb = client
		guard = redis.NewSubmissionGuard(client)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("submission guard enabled")
	} else {
		log.Warn().Msg("REDIS_ADDR not set, submission guard disabled")
	}

	center := notify.NewCenter(0, 0, log)
	center.Start(ctx)

	identity := service.NewIdentityService(userRepo, log)
	bookings := service.NewBookingService(bookingRepo, userRepo, guard, log)
	forum := service.NewForumService(forumRepo, log)
	session := service.NewSessionService(identity, bookings, forum, center, log)

	e := api.NewRouter(session, center, rdb, cfg.JWTSecret, log)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		if err := e.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
