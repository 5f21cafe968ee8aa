package repository

import (
	"context"

	"animehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type seasonRatingRepository struct {
	db *gorm.DB
}

func NewSeasonRatingRepository(db *gorm.DB) SeasonRatingRepository {
	return &seasonRatingRepository{db: db}
}

// Create inserts a new rating. A racing insert for the same
// (user, show, season) fails with domain.ErrAlreadyExists.
func (r *seasonRatingRepository) Create(ctx context.Context, rating *models.SeasonRating) error {
	return mapError(r.db.WithContext(ctx).Omit("User", "Show").Create(rating).Error, "create season rating")
}

// Update overwrites every mutable column, including zero values.
func (r *seasonRatingRepository) Update(ctx context.Context, rating *models.SeasonRating) error {
	result := r.db.WithContext(ctx).Model(rating).
		Select("SeasonTitle", "Rating", "Review", "EpisodesWatched", "TotalEpisodes", "UpdatedAt").
		Updates(rating)
	if result.Error != nil {
		return mapError(result.Error, "update season rating")
	}
	if result.RowsAffected == 0 {
		return mapError(gorm.ErrRecordNotFound, "update season rating")
	}
	return nil
}

func (r *seasonRatingRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.SeasonRating{})
	if result.Error != nil {
		return mapError(result.Error, "delete season rating")
	}
	if result.RowsAffected == 0 {
		return mapError(gorm.ErrRecordNotFound, "delete season rating")
	}
	return nil
}

func (r *seasonRatingRepository) FindByID(ctx context.Context, id string) (*models.SeasonRating, error) {
	var rating models.SeasonRating
	if err := r.db.WithContext(ctx).First(&rating, "id = ?", id).Error; err != nil {
		return nil, mapError(err, "find season rating")
	}
	return &rating, nil
}

func (r *seasonRatingRepository) FindByKey(ctx context.Context, userID, showID string, seasonNumber int) (*models.SeasonRating, error) {
	var rating models.SeasonRating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND show_id = ? AND season_number = ?", userID, showID, seasonNumber).
		Preload("Show").
		First(&rating).Error
	if err != nil {
		return nil, mapError(err, "find season rating by key")
	}
	return &rating, nil
}

func (r *seasonRatingRepository) ListByShow(ctx context.Context, showID, userID string) ([]models.SeasonRating, error) {
	var ratings []models.SeasonRating
	q := r.db.WithContext(ctx).Where("show_id = ?", showID)
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	err := q.Preload("User").
		Preload("Show").
		Order("season_number ASC").
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, mapError(err, "list season ratings by show")
	}
	return ratings, nil
}

func (r *seasonRatingRepository) ListByUser(ctx context.Context, userID string) ([]models.SeasonRating, error) {
	var ratings []models.SeasonRating
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Show").
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, mapError(err, "list season ratings by user")
	}
	return ratings, nil
}

func (r *seasonRatingRepository) RatingValuesForShow(ctx context.Context, showID string) ([]float64, error) {
	var values []float64
	err := r.db.WithContext(ctx).Model(&models.SeasonRating{}).
		Where("show_id = ?", showID).
		Pluck("rating", &values).Error
	if err != nil {
		return nil, mapError(err, "season rating values")
	}
	return values, nil
}

// ratingRow is one rating value keyed by the show it belongs to.
type ratingRow struct {
	ShowID string
	Rating float64
}

func groupRatings(rows []ratingRow, size int) map[string][]float64 {
	out := make(map[string][]float64, size)
	for _, row := range rows {
		out[row.ShowID] = append(out[row.ShowID], row.Rating)
	}
	return out
}

func (r *seasonRatingRepository) RatingValuesByShows(ctx context.Context, showIDs []string) (map[string][]float64, error) {
	if len(showIDs) == 0 {
		return map[string][]float64{}, nil
	}
	var rows []ratingRow
	err := r.db.WithContext(ctx).Model(&models.SeasonRating{}).
		Select("show_id", "rating").
		Where("show_id IN ?", showIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, mapError(err, "season rating values by shows")
	}
	return groupRatings(rows, len(showIDs)), nil
}
