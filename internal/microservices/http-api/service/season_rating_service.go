package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"animehub/internal/cache"
	"animehub/internal/domain"
	"animehub/internal/microservices/http-api/dto"
	"animehub/internal/microservices/http-api/models"
	"animehub/internal/microservices/http-api/repository"
	"animehub/internal/validate"

	"github.com/google/uuid"
)

// RatingCache is the aggregate cache the services invalidate on writes.
// *cache.RatingCache satisfies it, including as a nil pointer.
type RatingCache interface {
	Get(ctx context.Context, showID string) (cache.Aggregate, cache.Version, bool)
	Set(ctx context.Context, showID string, v cache.Version, agg cache.Aggregate)
	Invalidate(ctx context.Context, showID string)
}

// orNoCache substitutes the disabled cache for a nil interface.
func orNoCache(rc RatingCache) RatingCache {
	if rc == nil {
		return (*cache.RatingCache)(nil)
	}
	return rc
}

type SeasonRatingService interface {
	// Submit creates the caller's rating for a season or overwrites the existing one.
	Submit(ctx context.Context, userID string, req dto.SubmitSeasonRatingRequest) (*dto.SeasonRatingResponse, error)
	ListByShow(ctx context.Context, showID, userID string) ([]dto.SeasonRatingResponse, error)
	ListByUser(ctx context.Context, userID string) ([]dto.SeasonRatingResponse, error)
	Delete(ctx context.Context, id, callerID string) error
}

type seasonRatingService struct {
	ratings repository.SeasonRatingRepository
	shows   repository.ShowRepository
	cache   RatingCache
}

func NewSeasonRatingService(ratings repository.SeasonRatingRepository, shows repository.ShowRepository, rc RatingCache) SeasonRatingService {
	return &seasonRatingService{ratings: ratings, shows: shows, cache: orNoCache(rc)}
}

func (s *seasonRatingService) Submit(ctx context.Context, userID string, req dto.SubmitSeasonRatingRequest) (*dto.SeasonRatingResponse, error) {
	req.ShowID = strings.TrimSpace(req.ShowID)
	req.SeasonTitle = strings.TrimSpace(req.SeasonTitle)
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	show, err := s.shows.FindByID(ctx, req.ShowID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrShowNotFound
		}
		return nil, fmt.Errorf("find show: %w", err)
	}

	rating, err := s.upsert(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, show.ID)

	rating.Show = show
	resp := dto.FromModelToSeasonRatingResponse(rating, false)
	return &resp, nil
}

// upsert looks the rating up by its key and overwrites it, or inserts a new
// one. A concurrent insert of the same key surfaces as ErrAlreadyExists and
// a concurrent delete as ErrNotFound; either is retried once.
func (s *seasonRatingService) upsert(ctx context.Context, userID string, req dto.SubmitSeasonRatingRequest) (*models.SeasonRating, error) {
	for attempt := 0; ; attempt++ {
		rating, err := s.writeOnce(ctx, userID, req)
		if err == nil {
			return rating, nil
		}
		racing := errors.Is(err, domain.ErrAlreadyExists) || errors.Is(err, errRatingVanished)
		if !racing {
			return nil, err
		}
		if attempt > 0 {
			slog.WarnContext(ctx, "season_rating_upsert_conflict", "user_id", userID, "show_id", req.ShowID, "error", err)
			return nil, ErrRatingConflict
		}
		slog.InfoContext(ctx, "season_rating_upsert_retry", "user_id", userID, "show_id", req.ShowID)
	}
}

var errRatingVanished = errors.New("season rating removed during update")

func (s *seasonRatingService) writeOnce(ctx context.Context, userID string, req dto.SubmitSeasonRatingRequest) (*models.SeasonRating, error) {
	existing, err := s.ratings.FindByKey(ctx, userID, req.ShowID, req.SeasonNumber.Value)
	switch {
	case err == nil:
		applySubmission(existing, req)
		if err := s.ratings.Update(ctx, existing); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, errRatingVanished
			}
			return nil, fmt.Errorf("update season rating: %w", err)
		}
		return existing, nil
	case errors.Is(err, domain.ErrNotFound):
	default:
		return nil, fmt.Errorf("find season rating: %w", err)
	}

	rating := &models.SeasonRating{
		ID:           uuid.New().String(),
		UserID:       userID,
		ShowID:       req.ShowID,
		SeasonNumber: req.SeasonNumber.Value,
	}
	applySubmission(rating, req)
	if err := s.ratings.Create(ctx, rating); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, err
		}
		if errors.Is(err, domain.ErrNotFound) {
			return nil, missingReference(ctx, s.shows, req.ShowID)
		}
		return nil, fmt.Errorf("create season rating: %w", err)
	}
	return rating, nil
}

// missingReference names the row a foreign-key failure points at. A show
// that still exists leaves the caller's own user row, deleted while its
// token stayed valid.
func missingReference(ctx context.Context, shows repository.ShowRepository, showID string) error {
	_, err := shows.FindByID(ctx, showID)
	switch {
	case err == nil:
		return ErrUserGone
	case errors.Is(err, domain.ErrNotFound):
		return ErrShowNotFound
	default:
		return fmt.Errorf("find show: %w", err)
	}
}

// applySubmission overwrites every mutable field. Omitted counters reset to 0.
func applySubmission(r *models.SeasonRating, req dto.SubmitSeasonRatingRequest) {
	r.SeasonTitle = req.SeasonTitle
	r.Rating = *req.Rating
	r.Review = req.Review
	r.EpisodesWatched = req.EpisodesWatched.Value
	r.TotalEpisodes = req.TotalEpisodes.Value
}

func (s *seasonRatingService) ListByShow(ctx context.Context, showID, userID string) ([]dto.SeasonRatingResponse, error) {
	ratings, err := s.ratings.ListByShow(ctx, showID, strings.TrimSpace(userID))
	if err != nil {
		return nil, fmt.Errorf("list season ratings for show %s: %w", showID, err)
	}
	return dto.FromModelsToSeasonRatingResponses(ratings, false), nil
}

func (s *seasonRatingService) ListByUser(ctx context.Context, userID string) ([]dto.SeasonRatingResponse, error) {
	ratings, err := s.ratings.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list season ratings for user %s: %w", userID, err)
	}
	return dto.FromModelsToSeasonRatingResponses(ratings, true), nil
}

func (s *seasonRatingService) Delete(ctx context.Context, id, callerID string) error {
	rating, err := s.ratings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrRatingNotFound
		}
		return fmt.Errorf("find season rating: %w", err)
	}
	if rating.UserID != callerID {
		return ErrNotRatingOwner
	}
	if err := s.ratings.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrRatingNotFound
		}
		return fmt.Errorf("delete season rating: %w", err)
	}
	s.cache.Invalidate(ctx, rating.ShowID)
	return nil
}
