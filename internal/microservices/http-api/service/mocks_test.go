package service

import (
	"context"

	"animehub/internal/cache"
	"animehub/internal/microservices/http-api/models"
	"animehub/internal/microservices/http-api/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockShowRepository mocks the ShowRepository interface
type MockShowRepository struct {
	mock.Mock
}

func (m *MockShowRepository) Create(ctx context.Context, show *models.Show) error {
	args := m.Called(ctx, show)
	return args.Error(0)
}

func (m *MockShowRepository) List(ctx context.Context) ([]models.Show, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Show), args.Error(1)
}

func (m *MockShowRepository) FindByID(ctx context.Context, id string) (*models.Show, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Show), args.Error(1)
}

func (m *MockShowRepository) FindByTitle(ctx context.Context, title string) (*models.Show, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Show), args.Error(1)
}

// MockSeasonRatingRepository mocks the SeasonRatingRepository interface
type MockSeasonRatingRepository struct {
	mock.Mock
}

func (m *MockSeasonRatingRepository) Create(ctx context.Context, rating *models.SeasonRating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockSeasonRatingRepository) Update(ctx context.Context, rating *models.SeasonRating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockSeasonRatingRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSeasonRatingRepository) FindByID(ctx context.Context, id string) (*models.SeasonRating, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SeasonRating), args.Error(1)
}

func (m *MockSeasonRatingRepository) FindByKey(ctx context.Context, userID, showID string, seasonNumber int) (*models.SeasonRating, error) {
	args := m.Called(ctx, userID, showID, seasonNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SeasonRating), args.Error(1)
}

func (m *MockSeasonRatingRepository) ListByShow(ctx context.Context, showID, userID string) ([]models.SeasonRating, error) {
	args := m.Called(ctx, showID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SeasonRating), args.Error(1)
}

func (m *MockSeasonRatingRepository) ListByUser(ctx context.Context, userID string) ([]models.SeasonRating, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SeasonRating), args.Error(1)
}

func (m *MockSeasonRatingRepository) RatingValuesForShow(ctx context.Context, showID string) ([]float64, error) {
	args := m.Called(ctx, showID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

func (m *MockSeasonRatingRepository) RatingValuesByShows(ctx context.Context, showIDs []string) (map[string][]float64, error) {
	args := m.Called(ctx, showIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]float64), args.Error(1)
}

// MockReviewRepository mocks the ReviewRepository interface
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) ExistsForEpisode(ctx context.Context, key repository.EpisodeKey) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) List(ctx context.Context, q repository.ReviewQuery) ([]models.Review, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByUser(ctx context.Context, userID string) ([]models.Review, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) RatingValuesForAnime(ctx context.Context, animeID string) ([]float64, error) {
	args := m.Called(ctx, animeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

func (m *MockReviewRepository) RatingValuesByAnimes(ctx context.Context, animeIDs []string) (map[string][]float64, error) {
	args := m.Called(ctx, animeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]float64), args.Error(1)
}

// MockBlogRepository mocks the BlogRepository interface
type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	args := m.Called(ctx, blog)
	return args.Error(0)
}

func (m *MockBlogRepository) Update(ctx context.Context, blog *models.Blog) error {
	args := m.Called(ctx, blog)
	return args.Error(0)
}

func (m *MockBlogRepository) Delete(ctx context.Context, id, authorID string) error {
	args := m.Called(ctx, id, authorID)
	return args.Error(0)
}

func (m *MockBlogRepository) FindByID(ctx context.Context, id string) (*models.Blog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Blog), args.Error(1)
}

func (m *MockBlogRepository) ListPublished(ctx context.Context, offset, limit int) ([]models.Blog, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Blog), args.Get(1).(int64), args.Error(2)
}

func (m *MockBlogRepository) ListByAuthor(ctx context.Context, authorID string) ([]models.Blog, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Blog), args.Error(1)
}

func (m *MockBlogRepository) ToggleLike(ctx context.Context, blogID, userID string) (bool, error) {
	args := m.Called(ctx, blogID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBlogRepository) AddComment(ctx context.Context, blogID string, comment *models.BlogComment) error {
	args := m.Called(ctx, blogID, comment)
	return args.Error(0)
}

// MockUserShowRepository mocks the UserShowRepository interface
type MockUserShowRepository struct {
	mock.Mock
}

func (m *MockUserShowRepository) Add(ctx context.Context, entry *models.UserShow) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockUserShowRepository) Delete(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockUserShowRepository) ListByUser(ctx context.Context, userID string) ([]models.UserShow, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserShow), args.Error(1)
}

// MockRatingCache mocks the RatingCache interface
type MockRatingCache struct {
	mock.Mock
}

func (m *MockRatingCache) Get(ctx context.Context, showID string) (cache.Aggregate, cache.Version, bool) {
	args := m.Called(ctx, showID)
	return args.Get(0).(cache.Aggregate), args.Get(1).(cache.Version), args.Bool(2)
}

func (m *MockRatingCache) Set(ctx context.Context, showID string, v cache.Version, agg cache.Aggregate) {
	m.Called(ctx, showID, v, agg)
}

func (m *MockRatingCache) Invalidate(ctx context.Context, showID string) {
	m.Called(ctx, showID)
}

// MockFavoriteRepository mocks the FavoriteRepository interface
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Add(ctx context.Context, fav *models.Favorite) error {
	args := m.Called(ctx, fav)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, userID, showID string) error {
	args := m.Called(ctx, userID, showID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) ListByUser(ctx context.Context, userID string) ([]models.Favorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Favorite), args.Error(1)
}

// MockWatchHistoryRepository mocks the WatchHistoryRepository interface
type MockWatchHistoryRepository struct {
	mock.Mock
}

func (m *MockWatchHistoryRepository) Upsert(ctx context.Context, entry *models.WatchProgress) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockWatchHistoryRepository) ListByUser(ctx context.Context, userID string) ([]models.WatchProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WatchProgress), args.Error(1)
}

// MockHomeItemRepository mocks the HomeItemRepository interface
type MockHomeItemRepository struct {
	mock.Mock
}

func (m *MockHomeItemRepository) Create(ctx context.Context, item *models.HomeItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockHomeItemRepository) List(ctx context.Context) ([]models.HomeItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.HomeItem), args.Error(1)
}

func (m *MockHomeItemRepository) FindByID(ctx context.Context, id string) (*models.HomeItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HomeItem), args.Error(1)
}
