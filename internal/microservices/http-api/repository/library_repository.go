package repository

import (
	"context"

	"animehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var userShowColumns = []clause.Column{{Name: "user_id"}, {Name: "show_id"}}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Add(ctx context.Context, fav *models.Favorite) error {
	err := r.db.WithContext(ctx).
		Omit("User", "Show").
		Clauses(clause.OnConflict{Columns: userShowColumns, DoNothing: true}).
		Create(fav).Error
	return mapError(err, "add favorite")
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, showID string) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND show_id = ?", userID, showID).
		Delete(&models.Favorite{}).Error
	return mapError(err, "remove favorite")
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID string) ([]models.Favorite, error) {
	var favs []models.Favorite
	if err := r.db.WithContext(ctx).
		Preload("Show").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favs).Error; err != nil {
		return nil, mapError(err, "list favorites")
	}
	return favs, nil
}

type watchHistoryRepository struct {
	db *gorm.DB
}

func NewWatchHistoryRepository(db *gorm.DB) WatchHistoryRepository {
	return &watchHistoryRepository{db: db}
}

func (r *watchHistoryRepository) Upsert(ctx context.Context, entry *models.WatchProgress) error {
	err := r.db.WithContext(ctx).
		Omit("User", "Show").
		Clauses(clause.OnConflict{
			Columns:   userShowColumns,
			DoUpdates: clause.AssignmentColumns([]string{"progress", "last_watched"}),
		}).
		Create(entry).Error
	return mapError(err, "record watch progress")
}

func (r *watchHistoryRepository) ListByUser(ctx context.Context, userID string) ([]models.WatchProgress, error) {
	var list []models.WatchProgress
	if err := r.db.WithContext(ctx).
		Preload("Show").
		Where("user_id = ?", userID).
		Order("last_watched DESC").
		Find(&list).Error; err != nil {
		return nil, mapError(err, "list watch history")
	}
	return list, nil
}

type homeItemRepository struct {
	db *gorm.DB
}

func NewHomeItemRepository(db *gorm.DB) HomeItemRepository {
	return &homeItemRepository{db: db}
}

func (r *homeItemRepository) Create(ctx context.Context, item *models.HomeItem) error {
	return mapError(r.db.WithContext(ctx).Omit("Show").Create(item).Error, "create home item")
}

func (r *homeItemRepository) List(ctx context.Context) ([]models.HomeItem, error) {
	var items []models.HomeItem
	if err := r.db.WithContext(ctx).
		Preload("Show").
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, mapError(err, "list home items")
	}
	return items, nil
}

func (r *homeItemRepository) FindByID(ctx context.Context, id string) (*models.HomeItem, error) {
	var item models.HomeItem
	if err := r.db.WithContext(ctx).Preload("Show").First(&item, "id = ?", id).Error; err != nil {
		return nil, mapError(err, "find home item")
	}
	return &item, nil
}
