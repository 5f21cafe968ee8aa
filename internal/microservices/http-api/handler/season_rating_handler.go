package handler

import (
	"net/http"

	"animehub/internal/microservices/http-api/dto"
	"animehub/internal/microservices/http-api/middleware"
	"animehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type SeasonRatingHandler struct {
	svc service.SeasonRatingService
}

func NewSeasonRatingHandler(svc service.SeasonRatingService) *SeasonRatingHandler {
	return &SeasonRatingHandler{svc: svc}
}

func (h *SeasonRatingHandler) RegisterRoutes(rg *gin.RouterGroup, g Guards) {
	// Public routes
	rg.GET("/show/:showId", h.ListByShow)
	rg.GET("/user/:userId", h.ListByUser)

	// Authenticated routes
	rg.GET("/my-ratings", g.Auth, h.ListMine)
	rg.POST("/season", g.Auth, g.Limit, h.Submit)
	rg.DELETE("/season/:id", g.Auth, g.Limit, h.Delete)
}

// Submit creates or overwrites the caller's rating of one season
// POST /api/ratings/season
func (h *SeasonRatingHandler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SubmitSeasonRatingRequest
	if !bindJSON(c, &req) {
		return
	}

	rating, err := h.svc.Submit(ctx, middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rating)
}

// ListByShow returns a show's season ratings, optionally for one user
// GET /api/ratings/show/:showId?userId=
func (h *SeasonRatingHandler) ListByShow(c *gin.Context) {
	ctx := c.Request.Context()

	ratings, err := h.svc.ListByShow(ctx, c.Param("showId"), c.Query("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// ListByUser GET /api/ratings/user/:userId
func (h *SeasonRatingHandler) ListByUser(c *gin.Context) {
	h.listForUser(c, c.Param("userId"))
}

// ListMine GET /api/ratings/my-ratings
func (h *SeasonRatingHandler) ListMine(c *gin.Context) {
	h.listForUser(c, middleware.UserID(c))
}

func (h *SeasonRatingHandler) listForUser(c *gin.Context, userID string) {
	ctx := c.Request.Context()

	ratings, err := h.svc.ListByUser(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// Delete removes one of the caller's ratings
// DELETE /api/ratings/season/:id
func (h *SeasonRatingHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.svc.Delete(ctx, c.Param("id"), middleware.UserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rating deleted successfully."})
}
