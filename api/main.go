package main

import (
	"context"
	"net/http"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/ball-buddies/storefront/docs"
	"github.com/ball-buddies/storefront/internal/auth"
	"github.com/ball-buddies/storefront/internal/client"
	"github.com/ball-buddies/storefront/internal/config"
	"github.com/ball-buddies/storefront/internal/fetch"
	api "github.com/ball-buddies/storefront/internal/http"
	"github.com/ball-buddies/storefront/internal/http/handlers"
	rl "github.com/ball-buddies/storefront/internal/http/rate_limiter"
	"github.com/ball-buddies/storefront/internal/models"
	"github.com/ball-buddies/storefront/internal/session"
)

// @title Ball Buddies Storefront API
// @version 1.0
// @description Storefront and admin API for the Ball Buddies catalog.
// @BasePath /
// @securityDefinitions.apikey AdminSession
// @in cookie
// @name bb_admin_session
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("could not load configuration", zap.Error(err))
	}
	auth.SetSecret(cfg.JWTSecret)

	var store session.Store = session.NewMemoryStore()
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Fatal("could not connect to redis", zap.Error(err))
		}
		defer rdb.Close()
		store = session.NewRedisStore(rdb)
	} else {
		logger.Warn("redis_addr not set; session flag will not survive restarts")
	}

	catalog := client.NewCatalog(cfg.BackendURL, nil)
	guard := session.NewGuard(store, catalog, cfg.SessionKey, logger)
	shopFetcher := fetch.New[models.Buddy](nil, logger)

	handlers.SetLogger(logger)
	handlers.SetCatalog(catalog)
	handlers.SetGuard(guard)
	handlers.SetShopFetcher(shopFetcher)

	go rl.StartVisitorCleanupLoop()

	r := api.NewRouter()
	logger.Info("server running",
		zap.String("addr", cfg.Addr),
		zap.String("backend", cfg.BackendURL),
	)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
