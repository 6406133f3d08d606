package main

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dharmasatrya/flightoffers/internal/cache"
	"github.com/dharmasatrya/flightoffers/internal/catalog"
	"github.com/dharmasatrya/flightoffers/internal/config"
	"github.com/dharmasatrya/flightoffers/internal/handler"
	"github.com/dharmasatrya/flightoffers/internal/multileg"
	"github.com/dharmasatrya/flightoffers/internal/providers"
	"github.com/dharmasatrya/flightoffers/internal/ratelimit"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	cat := catalog.New()
	log.Printf("Catalog loaded: %d hubs", len(cat.Hubs()))

	var provider providers.Provider
	if cfg.Upstream.BaseURL != "" {
		limiter := ratelimit.New(ratelimit.Config{
			RequestsPerSecond: cfg.Upstream.RequestsPerSecond,
			BurstSize:         cfg.Upstream.BurstSize,
		})
		provider = providers.NewUpstreamProvider(providers.UpstreamConfig{
			BaseURL: cfg.Upstream.BaseURL,
			APIKey:  cfg.Upstream.APIKey,
			Timeout: cfg.Upstream.Timeout.Std(),
		}, limiter)
		log.Printf("Upstream provider enabled (%s)", cfg.Upstream.BaseURL)
	} else {
		log.Println("No upstream configured, serving synthesized offers only")
	}

	var offerCache cache.Cache
	if cfg.Cache.Enabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host:     cfg.Cache.RedisHost,
			Port:     cfg.Cache.RedisPort,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
			TTL:      cfg.Cache.TTL.Std(),
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		offerCache = redisCache
		log.Printf("Redis cache enabled (host: %s:%s, TTL: %v)", cfg.Cache.RedisHost, cfg.Cache.RedisPort, cfg.Cache.TTL.Std())
	} else {
		offerCache = cache.NewNoOpCache()
		log.Println("Cache disabled")
	}

	tuning := multileg.DefaultTuning()
	if cfg.Tuning.AcceptanceRatio > 0 {
		tuning.AcceptanceRatio = cfg.Tuning.AcceptanceRatio
	}
	if cfg.Tuning.LongStayDiscount > 0 {
		tuning.LongStayDiscount = cfg.Tuning.LongStayDiscount
	}

	searchHandler := handler.NewSearchHandler(provider, offerCache, cat, tuning, cfg.Tuning.PaddingFloor)

	api := e.Group("/api/v1")
	api.POST("/flights/search", searchHandler.Search)
	e.GET("/health", handler.HealthHandler)

	log.Printf("Starting flight offer server on port %s", cfg.Port)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
