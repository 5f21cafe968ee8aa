package handler

import (
	"net/http"

	"animehub/internal/microservices/http-api/dto"
	"animehub/internal/microservices/http-api/middleware"
	"animehub/internal/microservices/http-api/repository"
	"animehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	svc service.ReviewService
}

func NewReviewHandler(svc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup, g Guards) {
	rg.POST("", g.Auth, g.Limit, h.Create)
	rg.GET("/my-reviews", g.Auth, h.ListMine)

	anime := rg.Group("/anime/:animeId")
	{
		anime.GET("", h.List)
		anime.GET("/season/:seasonNumber", h.List)
		anime.GET("/season/:seasonNumber/episode/:episodeNumber", h.List)
	}
}

// Create POST /api/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.svc.Create(ctx, middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// List serves the anime, season and episode listings. Path segments that are
// absent from the matched route leave that filter open.
func (h *ReviewHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	q := repository.ReviewQuery{AnimeID: c.Param("animeId")}
	var ok bool
	if q.SeasonNumber, ok = pathInt(c, "seasonNumber"); !ok {
		return
	}
	if q.EpisodeNumber, ok = pathInt(c, "episodeNumber"); !ok {
		return
	}

	reviews, err := h.svc.List(ctx, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// ListMine GET /api/reviews/my-reviews
func (h *ReviewHandler) ListMine(c *gin.Context) {
	ctx := c.Request.Context()

	reviews, err := h.svc.ListMine(ctx, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// pathInt parses an optional integer path parameter. It answers 400 and
// returns false when the segment is present but not an integer.
func pathInt(c *gin.Context, name string) (*int, bool) {
	raw := c.Param(name)
	if raw == "" {
		return nil, true
	}
	n, err := dto.ParseOptionalInt(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return nil, false
	}
	return n.Ptr(), true
}
