package dto

import (
	"time"

	"animehub/internal/microservices/http-api/models"
)

type AddUserShowRequest struct {
	ShowID string `json:"showId" validate:"required"`
	Status string `json:"status" validate:"omitempty,oneof=watching completed plan_to_watch dropped"`
}

type UserShowResponse struct {
	ID      string    `json:"id"`
	ShowID  string    `json:"showId"`
	Status  string    `json:"status"`
	AddedAt time.Time `json:"addedAt"`
	Show    *ShowRef  `json:"show,omitempty"`
}

func FromModelToUserShowResponse(e *models.UserShow) UserShowResponse {
	return UserShowResponse{
		ID:      e.ID,
		ShowID:  e.ShowID,
		Status:  e.Status,
		AddedAt: e.AddedAt,
		Show:    ToShowRef(e.Show),
	}
}

func FromModelsToUserShowResponses(list []models.UserShow) []UserShowResponse {
	out := make([]UserShowResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelToUserShowResponse(&list[i]))
	}
	return out
}
