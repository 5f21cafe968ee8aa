package service

import (
	"context"
	"errors"
	"fmt"

	"animehub/internal/cache"
	"animehub/internal/domain"
	"animehub/internal/microservices/http-api/dto"
	"animehub/internal/microservices/http-api/repository"
)

type ShowService interface {
	List(ctx context.Context) ([]dto.ShowResponse, error)
	Get(ctx context.Context, id string) (*dto.ShowResponse, error)
	// Rating returns the combined season and review rating of a show.
	Rating(ctx context.Context, id string) (*dto.ShowRatingResponse, error)
}

type showService struct {
	shows   repository.ShowRepository
	ratings repository.SeasonRatingRepository
	reviews repository.ReviewRepository
	cache   RatingCache
}

func NewShowService(shows repository.ShowRepository, ratings repository.SeasonRatingRepository, reviews repository.ReviewRepository, rc RatingCache) ShowService {
	return &showService{shows: shows, ratings: ratings, reviews: reviews, cache: orNoCache(rc)}
}

// List serves cached aggregates and computes the rest with one batched
// query per rating source.
func (s *showService) List(ctx context.Context) ([]dto.ShowResponse, error) {
	shows, err := s.shows.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}

	aggs := make(map[string]dto.ShowRatingResponse, len(shows))
	versions := make(map[string]cache.Version)
	var missing []string
	for i := range shows {
		id := shows[i].ID
		cached, v, ok := s.cache.Get(ctx, id)
		if ok {
			aggs[id] = dto.ShowRatingResponse{ShowID: id, AverageRating: cached.Average, RatingCount: cached.Count}
			continue
		}
		versions[id] = v
		missing = append(missing, id)
	}

	if len(missing) > 0 {
		seasonValues, err := s.ratings.RatingValuesByShows(ctx, missing)
		if err != nil {
			return nil, fmt.Errorf("season ratings of %d shows: %w", len(missing), err)
		}
		reviewValues, err := s.reviews.RatingValuesByAnimes(ctx, missing)
		if err != nil {
			return nil, fmt.Errorf("review ratings of %d shows: %w", len(missing), err)
		}
		for _, id := range missing {
			avg, count := AggregateRating(seasonValues[id], reviewValues[id])
			s.cache.Set(ctx, id, versions[id], cache.Aggregate{Average: avg, Count: count})
			aggs[id] = dto.ShowRatingResponse{ShowID: id, AverageRating: avg, RatingCount: count}
		}
	}

	out := make([]dto.ShowResponse, 0, len(shows))
	for i := range shows {
		out = append(out, dto.FromModelToShowResponse(&shows[i], aggs[shows[i].ID]))
	}
	return out, nil
}

func (s *showService) Get(ctx context.Context, id string) (*dto.ShowResponse, error) {
	show, err := s.shows.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrShowNotFound
		}
		return nil, fmt.Errorf("find show: %w", err)
	}
	agg, err := s.aggregate(ctx, show.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.FromModelToShowResponse(show, agg)
	return &resp, nil
}

func (s *showService) Rating(ctx context.Context, id string) (*dto.ShowRatingResponse, error) {
	if _, err := s.shows.FindByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrShowNotFound
		}
		return nil, fmt.Errorf("find show: %w", err)
	}
	agg, err := s.aggregate(ctx, id)
	if err != nil {
		return nil, err
	}
	return &agg, nil
}

// aggregate reads through the cache. The value is stored under the version
// seen before the queries ran, so a write that invalidates in between
// leaves the stale result unreachable.
func (s *showService) aggregate(ctx context.Context, showID string) (dto.ShowRatingResponse, error) {
	cached, version, ok := s.cache.Get(ctx, showID)
	if ok {
		return dto.ShowRatingResponse{ShowID: showID, AverageRating: cached.Average, RatingCount: cached.Count}, nil
	}

	seasonValues, err := s.ratings.RatingValuesForShow(ctx, showID)
	if err != nil {
		return dto.ShowRatingResponse{}, fmt.Errorf("season ratings of %s: %w", showID, err)
	}
	reviewValues, err := s.reviews.RatingValuesForAnime(ctx, showID)
	if err != nil {
		return dto.ShowRatingResponse{}, fmt.Errorf("review ratings of %s: %w", showID, err)
	}

	avg, count := AggregateRating(seasonValues, reviewValues)
	s.cache.Set(ctx, showID, version, cache.Aggregate{Average: avg, Count: count})
	return dto.ShowRatingResponse{ShowID: showID, AverageRating: avg, RatingCount: count}, nil
}
