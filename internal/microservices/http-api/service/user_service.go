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

type UserService interface {
	Profile(ctx context.Context, userID string) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*dto.UserResponse, error)
	// PublicProfile omits the email address.
	PublicProfile(ctx context.Context, userID string) (*dto.UserResponse, error)

	Favorites(ctx context.Context, userID string) ([]dto.ShowRef, error)
	// AddFavorite is idempotent.
	AddFavorite(ctx context.Context, userID string, req dto.FavoriteRequest) error
	// RemoveFavorite succeeds whether or not the show was a favorite.
	RemoveFavorite(ctx context.Context, userID, showID string) error
	History(ctx context.Context, userID string) ([]dto.WatchHistoryResponse, error)
	// RecordProgress stores progress for a show, stamps it as just watched
	// and returns the updated history.
	RecordProgress(ctx context.Context, userID string, req dto.WatchProgressRequest) ([]dto.WatchHistoryResponse, error)
}

type userService struct {
	users     repository.UserRepository
	shows     repository.ShowRepository
	favorites repository.FavoriteRepository
	history   repository.WatchHistoryRepository
}

func NewUserService(users repository.UserRepository, shows repository.ShowRepository, favorites repository.FavoriteRepository, history repository.WatchHistoryRepository) UserService {
	return &userService{users: users, shows: shows, favorites: favorites, history: history}
}

func (s *userService) Profile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, userLookupError(err)
	}
	resp := dto.FromModelToUserResponse(user, false)
	return &resp, nil
}

func (s *userService) PublicProfile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, userLookupError(err)
	}
	resp := dto.FromModelToUserResponse(user, true)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	if req.Username != nil {
		trimmed := strings.TrimSpace(*req.Username)
		req.Username = &trimmed
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, userLookupError(err)
	}

	if req.Username != nil && *req.Username != user.Username {
		other, err := s.users.FindByUsername(ctx, *req.Username)
		switch {
		case err == nil && other.ID != user.ID:
			return nil, ErrNameInUse
		case err != nil && !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("find user by username: %w", err)
		}
		user.Username = *req.Username
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.FavoriteAnime != nil {
		user.FavoriteAnime = *req.FavoriteAnime
	}
	if req.ProfilePicture != nil {
		user.ProfilePicture = strings.TrimSpace(*req.ProfilePicture)
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, ErrNameInUse
		}
		return nil, userLookupError(err)
	}
	resp := dto.FromModelToUserResponse(user, false)
	return &resp, nil
}

func (s *userService) Favorites(ctx context.Context, userID string) ([]dto.ShowRef, error) {
	favs, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return dto.FromModelsToFavoriteShows(favs), nil
}

func (s *userService) AddFavorite(ctx context.Context, userID string, req dto.FavoriteRequest) error {
	req.ShowID = strings.TrimSpace(req.ShowID)
	if err := validate.Struct(req); err != nil {
		return err
	}
	show, err := s.findShow(ctx, req.ShowID)
	if err != nil {
		return err
	}

	fav := &models.Favorite{ID: uuid.New().String(), UserID: userID, ShowID: show.ID}
	if err := s.favorites.Add(ctx, fav); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return missingReference(ctx, s.shows, show.ID)
		}
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

func (s *userService) RemoveFavorite(ctx context.Context, userID, showID string) error {
	if err := s.favorites.Remove(ctx, userID, strings.TrimSpace(showID)); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}

func (s *userService) History(ctx context.Context, userID string) ([]dto.WatchHistoryResponse, error) {
	list, err := s.history.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list watch history: %w", err)
	}
	return dto.FromModelsToWatchHistoryResponses(list), nil
}

func (s *userService) RecordProgress(ctx context.Context, userID string, req dto.WatchProgressRequest) ([]dto.WatchHistoryResponse, error) {
	req.ShowID = strings.TrimSpace(req.ShowID)
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	show, err := s.findShow(ctx, req.ShowID)
	if err != nil {
		return nil, err
	}

	entry := &models.WatchProgress{
		ID:          uuid.New().String(),
		UserID:      userID,
		ShowID:      show.ID,
		Progress:    *req.Progress,
		LastWatched: time.Now().UTC(),
	}
	if err := s.history.Upsert(ctx, entry); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, missingReference(ctx, s.shows, show.ID)
		}
		return nil, fmt.Errorf("record watch progress: %w", err)
	}
	return s.History(ctx, userID)
}

func (s *userService) findShow(ctx context.Context, id string) (*models.Show, error) {
	show, err := s.shows.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrShowNotFound
		}
		return nil, fmt.Errorf("find show: %w", err)
	}
	return show, nil
}

func userLookupError(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return ErrUserNotFound
	}
	return fmt.Errorf("user: %w", err)
}
