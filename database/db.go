// Package database opens the storage backends and prepares their schema.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"animehub/internal/config"
	"animehub/internal/microservices/http-api/models"
	"animehub/internal/microservices/http-api/repository/mongostore"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// reviewEpisodeIndex makes a user's per-episode review unique. Reviews without
// an episode number are outside the index. NULLS NOT DISTINCT (PostgreSQL 15+)
// keeps a missing season number from letting duplicates through.
const reviewEpisodeIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_reviews_episode_key
ON reviews (user_id, anime_id, season_number, episode_number) NULLS NOT DISTINCT
WHERE episode_number IS NOT NULL`

// OpenGorm connects to PostgreSQL and verifies the connection.
func OpenGorm(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	level := gormlogger.Warn
	if cfg.IsDevelopment() && cfg.LogLevel == "debug" {
		level = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		// close the handle if ping fails to avoid resource leak
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("Connected to the database successfully", "driver", config.StoreDriverPostgres)
	return db, nil
}

// OpenPostgres connects and migrates. The pool is closed again when the
// migration fails.
func OpenPostgres(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := OpenGorm(cfg, logger)
	if err != nil {
		return nil, err
	}
	return migrateOrClose(db, logger, Migrate)
}

func migrateOrClose(db *gorm.DB, logger *slog.Logger, migrate func(*gorm.DB, *slog.Logger) error) (*gorm.DB, error) {
	if err := migrate(db, logger); err != nil {
		if closeErr := Close(db); closeErr != nil {
			logger.Warn("postgres_close_failed", "error", closeErr)
		}
		return nil, err
	}
	return db, nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// Migrate creates or updates every table and index.
func Migrate(db *gorm.DB, logger *slog.Logger) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Show{},
		&models.Season{},
		&models.SeasonRating{},
		&models.Review{},
		&models.Blog{},
		&models.BlogLike{},
		&models.BlogComment{},
		&models.UserShow{},
		&models.Favorite{},
		&models.WatchProgress{},
		&models.HomeItem{},
	)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	if err := db.Exec(reviewEpisodeIndex).Error; err != nil {
		return fmt.Errorf("failed to create review episode index: %w", err)
	}

	logger.Info("Database migrations applied successfully")
	return nil
}

// OpenMongo connects to MongoDB and ensures the collection indexes exist.
func OpenMongo(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	db := client.Database(cfg.MongoDatabase)
	if err := mongostore.EnsureIndexes(connectCtx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	logger.Info("Connected to the database successfully", "driver", config.StoreDriverMongo, "database", cfg.MongoDatabase)
	return client, db, nil
}
