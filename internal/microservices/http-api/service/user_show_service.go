package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"animehub/internal/domain"
	"animehub/internal/microservices/http-api/dto"
	"animehub/internal/microservices/http-api/models"
	"animehub/internal/microservices/http-api/repository"
	"animehub/internal/validate"

	"github.com/google/uuid"
)

// UserShowService manages a user's watch list.
type UserShowService interface {
	List(ctx context.Context, userID string) ([]dto.UserShowResponse, error)
	Add(ctx context.Context, userID string, req dto.AddUserShowRequest) (*dto.UserShowResponse, error)
	Remove(ctx context.Context, userID, entryID string) error
}

type userShowService struct {
	entries repository.UserShowRepository
	shows   repository.ShowRepository
}

func NewUserShowService(entries repository.UserShowRepository, shows repository.ShowRepository) UserShowService {
	return &userShowService{entries: entries, shows: shows}
}

func (s *userShowService) List(ctx context.Context, userID string) ([]dto.UserShowResponse, error) {
	list, err := s.entries.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list watch list: %w", err)
	}
	return dto.FromModelsToUserShowResponses(list), nil
}

func (s *userShowService) Add(ctx context.Context, userID string, req dto.AddUserShowRequest) (*dto.UserShowResponse, error) {
	req.ShowID = strings.TrimSpace(req.ShowID)
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

	status := req.Status
	if status == "" {
		status = models.WatchStatusPlanToWatch
	}
	entry := &models.UserShow{
		ID:      uuid.New().String(),
		UserID:  userID,
		ShowID:  show.ID,
		Status:  status,
		AddedAt: time.Now(),
	}
	if err := s.entries.Add(ctx, entry); err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			return nil, ErrAlreadyInList
		case errors.Is(err, domain.ErrNotFound):
			return nil, missingReference(ctx, s.shows, show.ID)
		}
		return nil, fmt.Errorf("add to watch list: %w", err)
	}
	entry.Show = show
	resp := dto.FromModelToUserShowResponse(entry)
	return &resp, nil
}

func (s *userShowService) Remove(ctx context.Context, userID, entryID string) error {
	if err := s.entries.Delete(ctx, entryID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrWatchEntryNotFound
		}
		return fmt.Errorf("remove from watch list: %w", err)
	}
	return nil
}
