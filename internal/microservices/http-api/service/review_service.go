package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"animehub/internal/domain"
	"animehub/internal/microservices/http-api/dto"
	"animehub/internal/microservices/http-api/models"
	"animehub/internal/microservices/http-api/repository"
	"animehub/internal/validate"

	"github.com/google/uuid"
)

type ReviewService interface {
	// Create stores a review. A second review of the same episode by the
	// same user fails with ErrReviewExists.
	Create(ctx context.Context, userID string, req dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	List(ctx context.Context, q repository.ReviewQuery) ([]dto.ReviewResponse, error)
	ListMine(ctx context.Context, userID string) ([]dto.ReviewResponse, error)
}

type reviewService struct {
	reviews repository.ReviewRepository
	users   repository.UserRepository
	cache   RatingCache
}

func NewReviewService(reviews repository.ReviewRepository, users repository.UserRepository, rc RatingCache) ReviewService {
	return &reviewService{reviews: reviews, users: users, cache: orNoCache(rc)}
}

func (s *reviewService) Create(ctx context.Context, userID string, req dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	req.AnimeID = dto.FlexID(strings.TrimSpace(string(req.AnimeID)))
	req.AnimeTitle = strings.TrimSpace(req.AnimeTitle)
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	review := &models.Review{
		ID:            uuid.New().String(),
		UserID:        userID,
		AnimeID:       string(req.AnimeID),
		AnimeTitle:    req.AnimeTitle,
		AnimeImage:    strings.TrimSpace(req.AnimeImage),
		SeasonNumber:  req.SeasonNumber.Ptr(),
		EpisodeNumber: req.EpisodeNumber.Ptr(),
		Rating:        *req.Rating,
		Title:         req.Title,
		Content:       req.Content,
	}

	// Reviews without an episode number are never deduplicated.
	if req.EpisodeNumber.Set {
		exists, err := s.reviews.ExistsForEpisode(ctx, repository.EpisodeKey{
			UserID:        userID,
			AnimeID:       review.AnimeID,
			SeasonNumber:  review.SeasonNumber,
			EpisodeNumber: req.EpisodeNumber.Value,
		})
		if err != nil {
			return nil, fmt.Errorf("check existing review: %w", err)
		}
		if exists {
			return nil, ErrReviewExists
		}
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			slog.InfoContext(ctx, "review_conflict", "user_id", userID, "anime_id", review.AnimeID)
			return nil, ErrReviewExists
		}
		return nil, fmt.Errorf("create review: %w", err)
	}
	s.cache.Invalidate(ctx, review.AnimeID)

	if user, err := s.users.FindByID(ctx, userID); err == nil {
		review.User = user
	}
	resp := dto.FromModelToReviewResponse(review)
	return &resp, nil
}

func (s *reviewService) List(ctx context.Context, q repository.ReviewQuery) ([]dto.ReviewResponse, error) {
	reviews, err := s.reviews.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list reviews for %s: %w", q.AnimeID, err)
	}
	return dto.FromModelsToReviewResponses(reviews), nil
}

func (s *reviewService) ListMine(ctx context.Context, userID string) ([]dto.ReviewResponse, error) {
	reviews, err := s.reviews.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list reviews of user %s: %w", userID, err)
	}
	return dto.FromModelsToReviewResponses(reviews), nil
}
