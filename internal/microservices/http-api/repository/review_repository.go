package repository

import (
	"context"

	"animehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create inserts a review. The partial unique index on
// (user_id, anime_id, season_number, episode_number) turns a duplicate
// episode review into domain.ErrAlreadyExists.
func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	return mapError(r.db.WithContext(ctx).Omit("User").Create(review).Error, "create review")
}

func (r *reviewRepository) ExistsForEpisode(ctx context.Context, key EpisodeKey) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("user_id = ? AND anime_id = ? AND episode_number = ?", key.UserID, key.AnimeID, key.EpisodeNumber)
	if key.SeasonNumber != nil {
		q = q.Where("season_number = ?", *key.SeasonNumber)
	}
	if err := q.Limit(1).Count(&count).Error; err != nil {
		return false, mapError(err, "check episode review")
	}
	return count > 0, nil
}

func (r *reviewRepository) List(ctx context.Context, query ReviewQuery) ([]models.Review, error) {
	var reviews []models.Review
	q := r.db.WithContext(ctx).Where("anime_id = ?", query.AnimeID)
	if query.SeasonNumber != nil {
		q = q.Where("season_number = ?", *query.SeasonNumber)
	}
	if query.EpisodeNumber != nil {
		q = q.Where("episode_number = ?", *query.EpisodeNumber)
	}
	if err := q.Preload("User").Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, mapError(err, "list reviews")
	}
	return reviews, nil
}

func (r *reviewRepository) ListByUser(ctx context.Context, userID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, mapError(err, "list reviews by user")
	}
	return reviews, nil
}

func (r *reviewRepository) RatingValuesForAnime(ctx context.Context, animeID string) ([]float64, error) {
	var values []float64
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("anime_id = ?", animeID).
		Pluck("rating", &values).Error
	if err != nil {
		return nil, mapError(err, "review rating values")
	}
	return values, nil
}

func (r *reviewRepository) RatingValuesByAnimes(ctx context.Context, animeIDs []string) (map[string][]float64, error) {
	if len(animeIDs) == 0 {
		return map[string][]float64{}, nil
	}
	var rows []ratingRow
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Select("anime_id AS show_id", "rating").
		Where("anime_id IN ?", animeIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, mapError(err, "review rating values by animes")
	}
	return groupRatings(rows, len(animeIDs)), nil
}
