package handler

import (
	"net/http"

	"animehub/internal/microservices/http-api/dto"
	"animehub/internal/microservices/http-api/middleware"
	"animehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// UserShowHandler serves the caller's watch list.
type UserShowHandler struct {
	svc service.UserShowService
}

func NewUserShowHandler(svc service.UserShowService) *UserShowHandler {
	return &UserShowHandler{svc: svc}
}

func (h *UserShowHandler) RegisterRoutes(rg *gin.RouterGroup, g Guards) {
	rg.Use(g.Auth)
	rg.GET("", h.List)
	rg.POST("", g.Limit, h.Add)
	rg.DELETE("/:id", g.Limit, h.Remove)
}

func (h *UserShowHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	list, err := h.svc.List(ctx, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *UserShowHandler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.AddUserShowRequest
	if !bindJSON(c, &req) {
		return
	}
	entry, err := h.svc.Add(ctx, middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *UserShowHandler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.svc.Remove(ctx, middleware.UserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Show removed from your list"})
}
