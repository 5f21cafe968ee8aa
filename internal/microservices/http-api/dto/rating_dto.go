package dto

import (
	"time"

	"animehub/internal/microservices/http-api/models"
)

// SubmitSeasonRatingRequest is the body of POST /api/ratings/season.
// Omitted optional fields reset to their defaults on resubmission.
type SubmitSeasonRatingRequest struct {
	ShowID          string      `json:"showId" validate:"required"`
	SeasonNumber    OptionalInt `json:"seasonNumber" validate:"required,gte=1"`
	SeasonTitle     string      `json:"seasonTitle" validate:"required"`
	Rating          *float64    `json:"rating" validate:"required,gte=0,lte=5"`
	Review          string      `json:"review"`
	EpisodesWatched OptionalInt `json:"episodesWatched" validate:"omitempty,gte=0"`
	TotalEpisodes   OptionalInt `json:"totalEpisodes" validate:"omitempty,gte=0"`
}

// UserRef is an expanded user reference.
type UserRef struct {
	ID       string `json:"id"`
	Username string `json:"username,omitempty"`
}

// ShowRef is an expanded show reference.
type ShowRef struct {
	ID       string   `json:"id"`
	Title    string   `json:"title,omitempty"`
	ImageURL string   `json:"imageUrl,omitempty"`
	Genres   []string `json:"genres,omitempty"`
}

type SeasonRatingResponse struct {
	ID              string    `json:"id"`
	User            UserRef   `json:"user"`
	Show            ShowRef   `json:"show"`
	SeasonNumber    int       `json:"seasonNumber"`
	SeasonTitle     string    `json:"seasonTitle"`
	Rating          float64   `json:"rating"`
	Review          string    `json:"review"`
	EpisodesWatched int       `json:"episodesWatched"`
	TotalEpisodes   int       `json:"totalEpisodes"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// FromModelToSeasonRatingResponse converts a SeasonRating to its response.
// withGenres also copies the show's genres.
func FromModelToSeasonRatingResponse(r *models.SeasonRating, withGenres bool) SeasonRatingResponse {
	resp := SeasonRatingResponse{
		ID:              r.ID,
		User:            UserRef{ID: r.UserID},
		Show:            ShowRef{ID: r.ShowID},
		SeasonNumber:    r.SeasonNumber,
		SeasonTitle:     r.SeasonTitle,
		Rating:          r.Rating,
		Review:          r.Review,
		EpisodesWatched: r.EpisodesWatched,
		TotalEpisodes:   r.TotalEpisodes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.User != nil {
		resp.User.Username = r.User.Username
	}
	if r.Show != nil {
		resp.Show.Title = r.Show.Title
		resp.Show.ImageURL = r.Show.ImageURL
		if withGenres {
			resp.Show.Genres = append([]string{}, r.Show.Genres...)
		}
	}
	return resp
}

// FromModelsToSeasonRatingResponses never returns nil so empty lists encode as [].
func FromModelsToSeasonRatingResponses(list []models.SeasonRating, withGenres bool) []SeasonRatingResponse {
	out := make([]SeasonRatingResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelToSeasonRatingResponse(&list[i], withGenres))
	}
	return out
}
