package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"animehub/internal/cache"
	"animehub/internal/microservices/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShowRating_ComputesAndCachesOnMiss(t *testing.T) {
	shows := new(MockShowRepository)
	ratings := new(MockSeasonRatingRepository)
	reviews := new(MockReviewRepository)
	rc := new(MockRatingCache)
	svc := NewShowService(shows, ratings, reviews, rc)

	shows.On("FindByID", mock.Anything, "S1").Return(&models.Show{ID: "S1"}, nil)
	rc.On("Get", mock.Anything, "S1").Return(cache.Aggregate{}, cache.Version(3), false)
	ratings.On("RatingValuesForShow", mock.Anything, "S1").Return([]float64{4}, nil)
	reviews.On("RatingValuesForAnime", mock.Anything, "S1").Return([]float64{8}, nil)
	rc.On("Set", mock.Anything, "S1", cache.Version(3), mock.MatchedBy(func(a cache.Aggregate) bool {
		return a.Count == 2 && a.Average != nil && *a.Average == 4
	})).Return()

	resp, err := svc.Rating(context.Background(), "S1")

	require.NoError(t, err)
	require.NotNil(t, resp.AverageRating)
	assert.InDelta(t, 4.0, *resp.AverageRating, 1e-9)
	assert.Equal(t, 2, resp.RatingCount)
	rc.AssertExpectations(t)
}

func TestShowRating_CacheHitSkipsStore(t *testing.T) {
	shows := new(MockShowRepository)
	ratings := new(MockSeasonRatingRepository)
	reviews := new(MockReviewRepository)
	rc := new(MockRatingCache)
	svc := NewShowService(shows, ratings, reviews, rc)

	avg := 3.5
	shows.On("FindByID", mock.Anything, "S1").Return(&models.Show{ID: "S1"}, nil)
	rc.On("Get", mock.Anything, "S1").Return(cache.Aggregate{Average: &avg, Count: 7}, cache.Version(0), true)

	resp, err := svc.Rating(context.Background(), "S1")

	require.NoError(t, err)
	assert.Equal(t, 7, resp.RatingCount)
	ratings.AssertNotCalled(t, "RatingValuesForShow", mock.Anything, mock.Anything)
}

func TestShowRating_NothingRatedIsNull(t *testing.T) {
	shows := new(MockShowRepository)
	ratings := new(MockSeasonRatingRepository)
	reviews := new(MockReviewRepository)
	svc := NewShowService(shows, ratings, reviews, nil)

	shows.On("FindByID", mock.Anything, "S1").Return(&models.Show{ID: "S1"}, nil)
	ratings.On("RatingValuesForShow", mock.Anything, "S1").Return([]float64{}, nil)
	reviews.On("RatingValuesForAnime", mock.Anything, "S1").Return([]float64{}, nil)

	resp, err := svc.Rating(context.Background(), "S1")

	require.NoError(t, err)
	assert.Nil(t, resp.AverageRating)
	assert.Equal(t, 0, resp.RatingCount)
}

func TestGetShow_NotFound(t *testing.T) {
	shows := new(MockShowRepository)
	svc := NewShowService(shows, new(MockSeasonRatingRepository), new(MockReviewRepository), nil)
	shows.On("FindByID", mock.Anything, "nope").Return(nil, errNotFound)

	_, err := svc.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrShowNotFound)
}

// versionedCache is an in-memory RatingCache with the same versioning rules
// as the Redis one.
type versionedCache struct {
	mu       sync.Mutex
	versions map[string]cache.Version
	values   map[string]cache.Aggregate
}

func newVersionedCache() *versionedCache {
	return &versionedCache{versions: map[string]cache.Version{}, values: map[string]cache.Aggregate{}}
}

func versioned(showID string, v cache.Version) string {
	return fmt.Sprintf("%s@%d", showID, v)
}

func (c *versionedCache) Get(_ context.Context, showID string) (cache.Aggregate, cache.Version, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := c.versions[showID]
	agg, ok := c.values[versioned(showID, v)]
	return agg, v, ok
}

func (c *versionedCache) Set(_ context.Context, showID string, v cache.Version, agg cache.Aggregate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[versioned(showID, v)] = agg
}

func (c *versionedCache) Invalidate(_ context.Context, showID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, versioned(showID, c.versions[showID]))
	c.versions[showID]++
}

func TestShowRating_InvalidateDuringComputeIsNotOverwritten(t *testing.T) {
	shows := new(MockShowRepository)
	ratings := new(MockSeasonRatingRepository)
	reviews := new(MockReviewRepository)
	rc := newVersionedCache()
	svc := NewShowService(shows, ratings, reviews, rc)
	ctx := context.Background()

	shows.On("FindByID", mock.Anything, "S1").Return(&models.Show{ID: "S1"}, nil)
	ratings.On("RatingValuesForShow", mock.Anything, "S1").Return([]float64{2}, nil).Once()
	// a rating is written and the cache invalidated after the reader's first query
	reviews.On("RatingValuesForAnime", mock.Anything, "S1").Return([]float64{}, nil).Once().
		Run(func(mock.Arguments) { rc.Invalidate(ctx, "S1") })
	ratings.On("RatingValuesForShow", mock.Anything, "S1").Return([]float64{4}, nil).Once()
	reviews.On("RatingValuesForAnime", mock.Anything, "S1").Return([]float64{}, nil).Once()

	stale, err := svc.Rating(ctx, "S1")
	require.NoError(t, err)
	require.NotNil(t, stale.AverageRating)
	assert.InDelta(t, 2.0, *stale.AverageRating, 1e-9)

	fresh, err := svc.Rating(ctx, "S1")
	require.NoError(t, err)
	require.NotNil(t, fresh.AverageRating)
	assert.InDelta(t, 4.0, *fresh.AverageRating, 1e-9)

	cached, err := svc.Rating(ctx, "S1")
	require.NoError(t, err)
	assert.InDelta(t, 4.0, *cached.AverageRating, 1e-9)
	ratings.AssertNumberOfCalls(t, "RatingValuesForShow", 2)
	reviews.AssertExpectations(t)
}

func TestListShows_BatchesCacheMisses(t *testing.T) {
	shows := new(MockShowRepository)
	ratings := new(MockSeasonRatingRepository)
	reviews := new(MockReviewRepository)
	rc := newVersionedCache()
	svc := NewShowService(shows, ratings, reviews, rc)
	ctx := context.Background()

	cachedAvg := 5.0
	rc.Set(ctx, "S2", 0, cache.Aggregate{Average: &cachedAvg, Count: 9})

	shows.On("List", mock.Anything).Return([]models.Show{{ID: "S1"}, {ID: "S2"}, {ID: "S3"}}, nil)
	ratings.On("RatingValuesByShows", mock.Anything, []string{"S1", "S3"}).
		Return(map[string][]float64{"S1": {3}}, nil).Once()
	reviews.On("RatingValuesByAnimes", mock.Anything, []string{"S1", "S3"}).
		Return(map[string][]float64{"S1": {10}}, nil).Once()

	list, err := svc.List(ctx)

	require.NoError(t, err)
	require.Len(t, list, 3)
	require.NotNil(t, list[0].AverageRating)
	assert.InDelta(t, 4.0, *list[0].AverageRating, 1e-9)
	assert.Equal(t, 2, list[0].RatingCount)
	assert.Equal(t, 9, list[1].RatingCount)
	assert.Nil(t, list[2].AverageRating)
	assert.Equal(t, 0, list[2].RatingCount)
	ratings.AssertExpectations(t)
	reviews.AssertExpectations(t)
	ratings.AssertNotCalled(t, "RatingValuesForShow", mock.Anything, mock.Anything)

	_, _, ok := rc.Get(ctx, "S3")
	assert.True(t, ok, "computed aggregates are cached")
}
