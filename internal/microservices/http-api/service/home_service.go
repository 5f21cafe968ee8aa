package service

import (
	"context"
	"errors"
	"fmt"

	"animehub/internal/domain"
	"animehub/internal/microservices/http-api/dto"
	"animehub/internal/microservices/http-api/repository"
)

// HomeService reads the shows featured on the home page.
type HomeService interface {
	List(ctx context.Context) ([]dto.HomeItemResponse, error)
	Get(ctx context.Context, id string) (*dto.HomeItemResponse, error)
}

type homeService struct {
	items repository.HomeItemRepository
}

func NewHomeService(items repository.HomeItemRepository) HomeService {
	return &homeService{items: items}
}

func (s *homeService) List(ctx context.Context) ([]dto.HomeItemResponse, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list home items: %w", err)
	}
	return dto.FromModelsToHomeItemResponses(items), nil
}

func (s *homeService) Get(ctx context.Context, id string) (*dto.HomeItemResponse, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrHomeItemNotFound
		}
		return nil, fmt.Errorf("find home item: %w", err)
	}
	resp := dto.FromModelToHomeItemResponse(item)
	return &resp, nil
}
