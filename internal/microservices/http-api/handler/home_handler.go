package handler

import (
	"net/http"

	"animehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// HomeHandler serves the shows featured on the home page.
type HomeHandler struct {
	svc service.HomeService
}

func NewHomeHandler(svc service.HomeService) *HomeHandler {
	return &HomeHandler{svc: svc}
}

func (h *HomeHandler) RegisterRoutes(rg *gin.RouterGroup, _ Guards) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
}

func (h *HomeHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *HomeHandler) Get(c *gin.Context) {
	item, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}
