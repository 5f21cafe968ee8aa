package repository

import (
	"context"

	"animehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type userShowRepository struct {
	db *gorm.DB
}

func NewUserShowRepository(db *gorm.DB) UserShowRepository {
	return &userShowRepository{db: db}
}

// Add inserts a watch-list entry. A second entry for the same show fails
// with domain.ErrAlreadyExists.
func (r *userShowRepository) Add(ctx context.Context, entry *models.UserShow) error {
	return mapError(r.db.WithContext(ctx).Omit("User", "Show").Create(entry).Error, "add user show")
}

func (r *userShowRepository) Delete(ctx context.Context, id, userID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.UserShow{})
	if result.Error != nil {
		return mapError(result.Error, "remove user show")
	}
	if result.RowsAffected == 0 {
		return mapError(gorm.ErrRecordNotFound, "remove user show")
	}
	return nil
}

func (r *userShowRepository) ListByUser(ctx context.Context, userID string) ([]models.UserShow, error) {
	var list []models.UserShow
	if err := r.db.WithContext(ctx).
		Preload("Show").
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Find(&list).Error; err != nil {
		return nil, mapError(err, "list user shows")
	}
	return list, nil
}
