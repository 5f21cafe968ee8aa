package dto

import (
	"time"

	"animehub/internal/microservices/http-api/models"
)

// CreateReviewRequest is the body of POST /api/reviews.
type CreateReviewRequest struct {
	AnimeID       FlexID      `json:"animeId" validate:"required"`
	AnimeTitle    string      `json:"animeTitle" validate:"required"`
	AnimeImage    string      `json:"animeImage"`
	Rating        *float64    `json:"rating" validate:"required,gte=0,lte=10"`
	Title         string      `json:"title" validate:"required"`
	Content       string      `json:"content" validate:"required"`
	SeasonNumber  OptionalInt `json:"seasonNumber"`
	EpisodeNumber OptionalInt `json:"episodeNumber"`
}

type ReviewResponse struct {
	ID            string    `json:"id"`
	User          UserRef   `json:"user"`
	AnimeID       string    `json:"animeId"`
	AnimeTitle    string    `json:"animeTitle"`
	AnimeImage    string    `json:"animeImage,omitempty"`
	SeasonNumber  *int      `json:"seasonNumber,omitempty"`
	EpisodeNumber *int      `json:"episodeNumber,omitempty"`
	Rating        float64   `json:"rating"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromModelToReviewResponse(r *models.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:            r.ID,
		User:          UserRef{ID: r.UserID},
		AnimeID:       r.AnimeID,
		AnimeTitle:    r.AnimeTitle,
		AnimeImage:    r.AnimeImage,
		SeasonNumber:  r.SeasonNumber,
		EpisodeNumber: r.EpisodeNumber,
		Rating:        r.Rating,
		Title:         r.Title,
		Content:       r.Content,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if r.User != nil {
		resp.User.Username = r.User.Username
	}
	return resp
}

func FromModelsToReviewResponses(list []models.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelToReviewResponse(&list[i]))
	}
	return out
}
