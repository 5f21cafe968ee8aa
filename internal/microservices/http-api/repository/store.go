package repository

import (
	"context"

	"animehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// Every repository returns errors that wrap the domain sentinels:
// domain.ErrNotFound for a missing record and domain.ErrAlreadyExists for a
// unique-index violation. Both the gorm and the mongo implementations honor this.

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

type ShowRepository interface {
	Create(ctx context.Context, show *models.Show) error
	List(ctx context.Context) ([]models.Show, error)
	FindByID(ctx context.Context, id string) (*models.Show, error)
	FindByTitle(ctx context.Context, title string) (*models.Show, error)
}

// SeasonRatingRepository stores season ratings. List methods expand the
// User and Show associations.
type SeasonRatingRepository interface {
	Create(ctx context.Context, rating *models.SeasonRating) error
	Update(ctx context.Context, rating *models.SeasonRating) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*models.SeasonRating, error)
	FindByKey(ctx context.Context, userID, showID string, seasonNumber int) (*models.SeasonRating, error)
	// ListByShow orders by season number, then newest first. An empty userID means every user.
	ListByShow(ctx context.Context, showID, userID string) ([]models.SeasonRating, error)
	ListByUser(ctx context.Context, userID string) ([]models.SeasonRating, error)
	RatingValuesForShow(ctx context.Context, showID string) ([]float64, error)
	// RatingValuesByShows groups the rating values of several shows by show ID.
	RatingValuesByShows(ctx context.Context, showIDs []string) (map[string][]float64, error)
}

// EpisodeKey identifies a per-episode review. A nil SeasonNumber leaves the
// season unconstrained when checking for an existing review.
type EpisodeKey struct {
	UserID        string
	AnimeID       string
	SeasonNumber  *int
	EpisodeNumber int
}

// ReviewQuery filters public review listings. SeasonNumber and EpisodeNumber
// are exact matches when set.
type ReviewQuery struct {
	AnimeID       string
	SeasonNumber  *int
	EpisodeNumber *int
}

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	ExistsForEpisode(ctx context.Context, key EpisodeKey) (bool, error)
	// List returns newest first with the reviewer expanded.
	List(ctx context.Context, q ReviewQuery) ([]models.Review, error)
	ListByUser(ctx context.Context, userID string) ([]models.Review, error)
	RatingValuesForAnime(ctx context.Context, animeID string) ([]float64, error)
	RatingValuesByAnimes(ctx context.Context, animeIDs []string) (map[string][]float64, error)
}

type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	// Update persists title, content, tags and publication state.
	Update(ctx context.Context, blog *models.Blog) error
	Delete(ctx context.Context, id, authorID string) error
	FindByID(ctx context.Context, id string) (*models.Blog, error)
	ListPublished(ctx context.Context, offset, limit int) ([]models.Blog, int64, error)
	ListByAuthor(ctx context.Context, authorID string) ([]models.Blog, error)
	// ToggleLike adds the user's like or removes it when present and
	// reports whether the blog is liked afterwards.
	ToggleLike(ctx context.Context, blogID, userID string) (bool, error)
	AddComment(ctx context.Context, blogID string, comment *models.BlogComment) error
}

type UserShowRepository interface {
	Add(ctx context.Context, entry *models.UserShow) error
	Delete(ctx context.Context, id, userID string) error
	ListByUser(ctx context.Context, userID string) ([]models.UserShow, error)
}

// FavoriteRepository keeps a set of shows per user. List methods expand Show.
type FavoriteRepository interface {
	// Add is a no-op when the show is already a favorite.
	Add(ctx context.Context, fav *models.Favorite) error
	// Remove is a no-op when the show is not a favorite.
	Remove(ctx context.Context, userID, showID string) error
	ListByUser(ctx context.Context, userID string) ([]models.Favorite, error)
}

type WatchHistoryRepository interface {
	// Upsert sets progress and last-watched time of the (user, show) entry,
	// creating it when absent.
	Upsert(ctx context.Context, entry *models.WatchProgress) error
	// ListByUser returns the most recently watched first with Show expanded.
	ListByUser(ctx context.Context, userID string) ([]models.WatchProgress, error)
}

type HomeItemRepository interface {
	Create(ctx context.Context, item *models.HomeItem) error
	// List returns every item, oldest first, with Show expanded.
	List(ctx context.Context) ([]models.HomeItem, error)
	FindByID(ctx context.Context, id string) (*models.HomeItem, error)
}

// Store bundles the repositories of one storage backend.
type Store struct {
	Users         UserRepository
	Shows         ShowRepository
	SeasonRatings SeasonRatingRepository
	Reviews       ReviewRepository
	Blogs         BlogRepository
	UserShows     UserShowRepository
	Favorites     FavoriteRepository
	WatchHistory  WatchHistoryRepository
	HomeItems     HomeItemRepository
}

// NewGormStore creates the postgres-backed Store.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Users:         NewUserRepository(db),
		Shows:         NewShowRepository(db),
		SeasonRatings: NewSeasonRatingRepository(db),
		Reviews:       NewReviewRepository(db),
		Blogs:         NewBlogRepository(db),
		UserShows:     NewUserShowRepository(db),
		Favorites:     NewFavoriteRepository(db),
		WatchHistory:  NewWatchHistoryRepository(db),
		HomeItems:     NewHomeItemRepository(db),
	}
}
