package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"animehub/database"
	"animehub/internal/cache"
	"animehub/internal/config"
	"animehub/internal/logger"
	"animehub/internal/microservices/http-api/handler"
	"animehub/internal/microservices/http-api/middleware"
	"animehub/internal/microservices/http-api/repository"
	"animehub/internal/microservices/http-api/repository/mongostore"
	"animehub/internal/microservices/http-api/service"
)

func main() {
	seedFile := flag.String("seed", "", "JSON file of shows to insert before serving")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err := run(cfg, log, *seedFile); err != nil {
		log.Error("server_exit", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger, seedFile string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Storage
	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	if seedFile != "" {
		if err := seed(ctx, store, seedFile, log); err != nil {
			return err
		}
	}

	// 2. Cache
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = cache.Connect(ctx, cfg.RedisURL, cfg.RedisPassword)
		if err != nil {
			return err
		}
		defer rdb.Close()
		log.Info("Connected to Redis", "ttl", cfg.CacheExpiry())
	} else {
		log.Info("REDIS_URL not set, rating cache disabled")
	}
	ratingCache := cache.NewRatingCache(rdb, cfg.CacheExpiry())

	// 3. Identity
	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL)
	strategies := service.NewStrategies(store.Users, tokens)
	if err := strategies.Validate(); err != nil {
		return fmt.Errorf("identity strategies: %w", err)
	}

	// 4. Services and router
	services := handler.Services{
		Auth:         service.NewAuthService(strategies, tokens),
		Users:        service.NewUserService(store.Users, store.Shows, store.Favorites, store.WatchHistory),
		Shows:        service.NewShowService(store.Shows, store.SeasonRatings, store.Reviews, ratingCache),
		SeasonRating: service.NewSeasonRatingService(store.SeasonRatings, store.Shows, ratingCache),
		Reviews:      service.NewReviewService(store.Reviews, store.Users, ratingCache),
		Blogs:        service.NewBlogService(store.Blogs),
		UserShows:    service.NewUserShowService(store.UserShows, store.Shows),
		Home:         service.NewHomeService(store.HomeItems),
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handler.NewRouter(services, handler.RouterOptions{
		Strategies:     strategies,
		Limiter:        middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		CORSOrigins:    cfg.CORSOrigins,
		SecureCookie:   cfg.IsProduction(),
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: cfg.RequestTimeout,
		ReadTimeout:       2 * cfg.RequestTimeout,
		WriteTimeout:      2 * cfg.RequestTimeout,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server running", "addr", srv.Addr, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openStore connects the configured backend and returns its repositories
// together with a function that releases the connection.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (*repository.Store, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMongo:
		client, db, err := database.OpenMongo(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Warn("mongo_disconnect_failed", "error", err)
			}
		}
		return mongostore.NewStore(db), closeFn, nil
	default:
		db, err := database.OpenPostgres(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := database.Close(db); err != nil {
				log.Warn("postgres_close_failed", "error", err)
			}
		}
		return repository.NewGormStore(db), closeFn, nil
	}
}

func seed(ctx context.Context, store *repository.Store, path string, log *slog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	n, err := database.SeedShows(ctx, store.Shows, store.HomeItems, f, log)
	if err != nil {
		return err
	}
	log.Info("Seeded shows", "inserted", n, "file", path)
	return nil
}
