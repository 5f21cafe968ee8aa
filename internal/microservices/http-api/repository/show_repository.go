package repository

import (
	"context"

	"animehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type showRepository struct {
	db *gorm.DB
}

func NewShowRepository(db *gorm.DB) ShowRepository {
	return &showRepository{db: db}
}

func (r *showRepository) Create(ctx context.Context, show *models.Show) error {
	// seasons are inserted with the show through the has-many association
	return mapError(r.db.WithContext(ctx).Create(show).Error, "create show")
}

func (r *showRepository) List(ctx context.Context) ([]models.Show, error) {
	var list []models.Show
	if err := r.db.WithContext(ctx).
		Preload("Seasons", func(db *gorm.DB) *gorm.DB { return db.Order("season_number ASC") }).
		Order("title ASC").
		Find(&list).Error; err != nil {
		return nil, mapError(err, "list shows")
	}
	return list, nil
}

func (r *showRepository) FindByID(ctx context.Context, id string) (*models.Show, error) {
	var s models.Show
	if err := r.db.WithContext(ctx).
		Preload("Seasons", func(db *gorm.DB) *gorm.DB { return db.Order("season_number ASC") }).
		First(&s, "id = ?", id).Error; err != nil {
		return nil, mapError(err, "find show")
	}
	return &s, nil
}

func (r *showRepository) FindByTitle(ctx context.Context, title string) (*models.Show, error) {
	var s models.Show
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&s).Error; err != nil {
		return nil, mapError(err, "find show by title")
	}
	return &s, nil
}
