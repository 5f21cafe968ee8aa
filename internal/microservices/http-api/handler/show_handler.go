package handler

import (
	"net/http"

	"animehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type ShowHandler struct {
	svc service.ShowService
}

func NewShowHandler(svc service.ShowService) *ShowHandler {
	return &ShowHandler{svc: svc}
}

func (h *ShowHandler) RegisterRoutes(rg *gin.RouterGroup, _ Guards) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.GET("/:id/rating", h.Rating)
}

func (h *ShowHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	shows, err := h.svc.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shows)
}

func (h *ShowHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	show, err := h.svc.Get(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, show)
}

// Rating returns the show's combined rating; averageRating is null when unrated.
func (h *ShowHandler) Rating(c *gin.Context) {
	ctx := c.Request.Context()

	rating, err := h.svc.Rating(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rating)
}
