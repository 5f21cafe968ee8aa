package handler

import (
	"net/http"

	"animehub/internal/microservices/http-api/dto"
	"animehub/internal/microservices/http-api/middleware"
	"animehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, g Guards) {
	rg.GET("/profile", g.Auth, h.GetProfile)
	rg.PUT("/profile", g.Auth, g.Limit, h.UpdateProfile)

	rg.GET("/favorites", g.Auth, h.Favorites)
	rg.POST("/favorites", g.Auth, g.Limit, h.AddFavorite)
	rg.DELETE("/favorites/:showId", g.Auth, g.Limit, h.RemoveFavorite)
	rg.GET("/history", g.Auth, h.History)
	rg.POST("/history", g.Auth, g.Limit, h.RecordProgress)

	rg.GET("/:id", h.GetPublic)
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := h.svc.Profile(ctx, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.svc.UpdateProfile(ctx, middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetPublic(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := h.svc.PublicProfile(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Favorites(c *gin.Context) {
	shows, err := h.svc.Favorites(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shows)
}

func (h *UserHandler) AddFavorite(c *gin.Context) {
	var req dto.FavoriteRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.svc.AddFavorite(c.Request.Context(), middleware.UserID(c), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Show added to favorites"})
}

func (h *UserHandler) RemoveFavorite(c *gin.Context) {
	if err := h.svc.RemoveFavorite(c.Request.Context(), middleware.UserID(c), c.Param("showId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Show removed from favorites"})
}

func (h *UserHandler) History(c *gin.Context) {
	list, err := h.svc.History(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// RecordProgress answers 201 with the whole history, as the web client expects.
func (h *UserHandler) RecordProgress(c *gin.Context) {
	var req dto.WatchProgressRequest
	if !bindJSON(c, &req) {
		return
	}
	list, err := h.svc.RecordProgress(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, list)
}
