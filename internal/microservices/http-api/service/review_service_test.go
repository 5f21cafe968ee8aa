package service

import (
	"context"
	"testing"

	"animehub/internal/domain"
	"animehub/internal/microservices/http-api/dto"
	"animehub/internal/microservices/http-api/models"
	"animehub/internal/microservices/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func reviewRequest() dto.CreateReviewRequest {
	return dto.CreateReviewRequest{
		AnimeID:       "A1",
		AnimeTitle:    "Frieren",
		Rating:        ratingOf(8),
		Title:         "Great episode",
		Content:       "  loved it  ",
		SeasonNumber:  dto.IntOf(1),
		EpisodeNumber: dto.IntOf(1),
	}
}

func newReviewFixture() (*MockReviewRepository, *MockUserRepository, ReviewService) {
	reviews := new(MockReviewRepository)
	users := new(MockUserRepository)
	return reviews, users, NewReviewService(reviews, users, nil)
}

func TestCreateReview_Success(t *testing.T) {
	reviews, users, svc := newReviewFixture()
	one := 1
	reviews.On("ExistsForEpisode", mock.Anything, repository.EpisodeKey{
		UserID: "U1", AnimeID: "A1", SeasonNumber: &one, EpisodeNumber: 1,
	}).Return(false, nil)
	reviews.On("Create", mock.Anything, mock.MatchedBy(func(r *models.Review) bool {
		return r.Content == "loved it" && r.Rating == 8 && *r.EpisodeNumber == 1
	})).Return(nil)
	users.On("FindByID", mock.Anything, "U1").Return(&models.User{ID: "U1", Username: "himmel"}, nil)

	resp, err := svc.Create(context.Background(), "U1", reviewRequest())

	require.NoError(t, err)
	assert.Equal(t, "loved it", resp.Content)
	assert.Equal(t, "himmel", resp.User.Username)
	reviews.AssertExpectations(t)
}

func TestCreateReview_DuplicateEpisodePreCheck(t *testing.T) {
	reviews, _, svc := newReviewFixture()
	reviews.On("ExistsForEpisode", mock.Anything, mock.Anything).Return(true, nil)

	_, err := svc.Create(context.Background(), "U1", reviewRequest())

	assert.ErrorIs(t, err, ErrReviewExists)
	assert.ErrorIs(t, err, domain.ErrConflict)
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateReview_StorageConflictIsSameError(t *testing.T) {
	reviews, _, svc := newReviewFixture()
	reviews.On("ExistsForEpisode", mock.Anything, mock.Anything).Return(false, nil)
	reviews.On("Create", mock.Anything, mock.Anything).Return(errExists)

	_, err := svc.Create(context.Background(), "U1", reviewRequest())

	assert.ErrorIs(t, err, ErrReviewExists)
}

func TestCreateReview_NoEpisodeSkipsDedup(t *testing.T) {
	reviews, users, svc := newReviewFixture()
	reviews.On("Create", mock.Anything, mock.MatchedBy(func(r *models.Review) bool {
		return r.EpisodeNumber == nil && r.SeasonNumber == nil
	})).Return(nil)
	users.On("FindByID", mock.Anything, "U1").Return(nil, errNotFound)

	req := reviewRequest()
	req.SeasonNumber = dto.OptionalInt{}
	req.EpisodeNumber = dto.OptionalInt{}

	resp, err := svc.Create(context.Background(), "U1", req)

	require.NoError(t, err)
	assert.Nil(t, resp.EpisodeNumber)
	reviews.AssertNotCalled(t, "ExistsForEpisode", mock.Anything, mock.Anything)
}

func TestCreateReview_ZeroRatingAccepted(t *testing.T) {
	reviews, users, svc := newReviewFixture()
	reviews.On("ExistsForEpisode", mock.Anything, mock.Anything).Return(false, nil)
	reviews.On("Create", mock.Anything, mock.Anything).Return(nil)
	users.On("FindByID", mock.Anything, "U1").Return(&models.User{ID: "U1"}, nil)

	req := reviewRequest()
	req.Rating = ratingOf(0)

	resp, err := svc.Create(context.Background(), "U1", req)

	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.Rating)
}

func TestCreateReview_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *dto.CreateReviewRequest)
	}{
		{"rating above 10", func(r *dto.CreateReviewRequest) { r.Rating = ratingOf(11) }},
		{"missing rating", func(r *dto.CreateReviewRequest) { r.Rating = nil }},
		{"whitespace content", func(r *dto.CreateReviewRequest) { r.Content = " \n\t " }},
		{"missing title", func(r *dto.CreateReviewRequest) { r.Title = "" }},
		{"missing anime", func(r *dto.CreateReviewRequest) { r.AnimeID = "" }},
		{"missing anime title", func(r *dto.CreateReviewRequest) { r.AnimeTitle = "" }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			reviews, _, svc := newReviewFixture()
			req := reviewRequest()
			tt.mutate(&req)

			_, err := svc.Create(context.Background(), "U1", req)

			assert.ErrorIs(t, err, domain.ErrValidation)
			reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateReview_InvalidatesShowAggregate(t *testing.T) {
	reviews := new(MockReviewRepository)
	users := new(MockUserRepository)
	rc := new(MockRatingCache)
	svc := NewReviewService(reviews, users, rc)

	reviews.On("ExistsForEpisode", mock.Anything, mock.Anything).Return(false, nil)
	reviews.On("Create", mock.Anything, mock.Anything).Return(nil)
	users.On("FindByID", mock.Anything, "U1").Return(&models.User{ID: "U1"}, nil)
	rc.On("Invalidate", mock.Anything, "A1").Return()

	_, err := svc.Create(context.Background(), "U1", reviewRequest())

	require.NoError(t, err)
	rc.AssertExpectations(t)
}

func TestListReviews_PassesFilters(t *testing.T) {
	reviews, _, svc := newReviewFixture()
	season := 2
	q := repository.ReviewQuery{AnimeID: "A1", SeasonNumber: &season}
	reviews.On("List", mock.Anything, q).Return([]models.Review{
		{ID: "RV1", AnimeID: "A1", User: &models.User{Username: "fern"}},
	}, nil)

	list, err := svc.List(context.Background(), q)

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "fern", list[0].User.Username)
}
