package dto

import (
	"time"

	"animehub/internal/microservices/http-api/models"
)

type SeasonResponse struct {
	SeasonNumber int    `json:"seasonNumber"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Episodes     int    `json:"episodes"`
	ImageURL     string `json:"imageUrl,omitempty"`
}

type ShowResponse struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Genres        []string         `json:"genres"`
	ImageURL      string           `json:"imageUrl"`
	CoverImageURL string           `json:"coverImageUrl,omitempty"`
	Episodes      int              `json:"episodes"`
	TotalSeasons  int              `json:"totalSeasons"`
	Seasons       []SeasonResponse `json:"seasons"`
	AverageRating *float64         `json:"averageRating"`
	RatingCount   int              `json:"ratingCount"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// ShowRatingResponse: AverageRating is null when nothing has been rated.
type ShowRatingResponse struct {
	ShowID        string   `json:"showId"`
	AverageRating *float64 `json:"averageRating"`
	RatingCount   int      `json:"ratingCount"`
}

func FromModelToShowResponse(s *models.Show, rating ShowRatingResponse) ShowResponse {
	seasons := make([]SeasonResponse, 0, len(s.Seasons))
	for _, se := range s.Seasons {
		seasons = append(seasons, SeasonResponse{
			SeasonNumber: se.SeasonNumber,
			Title:        se.Title,
			Description:  se.Description,
			Episodes:     se.Episodes,
			ImageURL:     se.ImageURL,
		})
	}
	genres := append([]string{}, s.Genres...)
	return ShowResponse{
		ID:            s.ID,
		Title:         s.Title,
		Description:   s.Description,
		Genres:        genres,
		ImageURL:      s.ImageURL,
		CoverImageURL: s.CoverImageURL,
		Episodes:      s.Episodes,
		TotalSeasons:  s.TotalSeasons,
		Seasons:       seasons,
		AverageRating: rating.AverageRating,
		RatingCount:   rating.RatingCount,
		CreatedAt:     s.CreatedAt,
	}
}

// SeedShow is one entry of a catalog seed file.
type SeedShow struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Genres        []string         `json:"genres"`
	ImageURL      string           `json:"imageUrl"`
	CoverImageURL string           `json:"coverImageUrl"`
	Episodes      int              `json:"episodes"`
	Seasons       []SeasonResponse `json:"seasons"`
	// Featured shows get a home page item when they are inserted.
	Featured bool `json:"featured"`
}

func (s SeedShow) ToModel() *models.Show {
	show := &models.Show{
		ID:            s.ID,
		Title:         s.Title,
		Description:   s.Description,
		Genres:        append([]string{}, s.Genres...),
		ImageURL:      s.ImageURL,
		CoverImageURL: s.CoverImageURL,
		Episodes:      s.Episodes,
		TotalSeasons:  max(len(s.Seasons), 1),
	}
	for _, se := range s.Seasons {
		show.Seasons = append(show.Seasons, models.Season{
			SeasonNumber: se.SeasonNumber,
			Title:        se.Title,
			Description:  se.Description,
			Episodes:     se.Episodes,
			ImageURL:     se.ImageURL,
		})
	}
	return show
}
