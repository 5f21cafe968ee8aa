package dto

import (
	"time"

	"animehub/internal/microservices/http-api/models"
)

type FavoriteRequest struct {
	ShowID string `json:"showId" validate:"required"`
}

type WatchProgressRequest struct {
	ShowID   string   `json:"showId" validate:"required"`
	Progress *float64 `json:"progress" validate:"required,gte=0"`
}

type WatchHistoryResponse struct {
	ID          string    `json:"id"`
	ShowID      string    `json:"showId"`
	Progress    float64   `json:"progress"`
	LastWatched time.Time `json:"lastWatched"`
	Show        *ShowRef  `json:"show,omitempty"`
}

type HomeItemResponse struct {
	ID        string    `json:"id"`
	Show      *ShowRef  `json:"show"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToShowRef summarizes an expanded show; nil stays nil.
func ToShowRef(s *models.Show) *ShowRef {
	if s == nil {
		return nil
	}
	return &ShowRef{
		ID:       s.ID,
		Title:    s.Title,
		ImageURL: s.ImageURL,
		Genres:   append([]string{}, s.Genres...),
	}
}

// FromModelsToFavoriteShows lists the favorite shows, skipping favorites
// whose show no longer exists.
func FromModelsToFavoriteShows(favs []models.Favorite) []ShowRef {
	out := make([]ShowRef, 0, len(favs))
	for i := range favs {
		if ref := ToShowRef(favs[i].Show); ref != nil {
			out = append(out, *ref)
		}
	}
	return out
}

func FromModelsToWatchHistoryResponses(list []models.WatchProgress) []WatchHistoryResponse {
	out := make([]WatchHistoryResponse, 0, len(list))
	for i := range list {
		e := &list[i]
		out = append(out, WatchHistoryResponse{
			ID:          e.ID,
			ShowID:      e.ShowID,
			Progress:    e.Progress,
			LastWatched: e.LastWatched,
			Show:        ToShowRef(e.Show),
		})
	}
	return out
}

func FromModelToHomeItemResponse(item *models.HomeItem) HomeItemResponse {
	return HomeItemResponse{
		ID:        item.ID,
		Show:      ToShowRef(item.Show),
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func FromModelsToHomeItemResponses(items []models.HomeItem) []HomeItemResponse {
	out := make([]HomeItemResponse, 0, len(items))
	for i := range items {
		out = append(out, FromModelToHomeItemResponse(&items[i]))
	}
	return out
}
