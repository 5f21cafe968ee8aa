package handler

import (
	"net/http"
	"strconv"

	"animehub/internal/microservices/http-api/dto"
	"animehub/internal/microservices/http-api/middleware"
	"animehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	svc service.BlogService
}

func NewBlogHandler(svc service.BlogService) *BlogHandler {
	return &BlogHandler{svc: svc}
}

func (h *BlogHandler) RegisterRoutes(rg *gin.RouterGroup, g Guards) {
	rg.GET("/public", h.ListPublic)
	rg.GET("/my-blogs", g.Auth, h.ListMine)
	rg.POST("", g.Auth, g.Limit, h.Create)
	rg.PUT("/:id", g.Auth, g.Limit, h.Update)
	rg.DELETE("/:id", g.Auth, g.Limit, h.Delete)
	rg.POST("/:id/like", g.Auth, g.Limit, h.ToggleLike)
	rg.POST("/:id/comment", g.Auth, g.Limit, h.AddComment)
}

// ListPublic GET /api/blogs/public?page=1&limit=10
func (h *BlogHandler) ListPublic(c *gin.Context) {
	ctx := c.Request.Context()

	page, limit := 1, service.DefaultBlogPageSize
	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		limit = l
	}

	resp, err := h.svc.ListPublic(ctx, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BlogHandler) ListMine(c *gin.Context) {
	ctx := c.Request.Context()

	blogs, err := h.svc.ListMine(ctx, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, blogs)
}

func (h *BlogHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateBlogRequest
	if !bindJSON(c, &req) {
		return
	}
	blog, err := h.svc.Create(ctx, middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, blog)
}

func (h *BlogHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.UpdateBlogRequest
	if !bindJSON(c, &req) {
		return
	}
	blog, err := h.svc.Update(ctx, middleware.UserID(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.svc.Delete(ctx, middleware.UserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog deleted successfully"})
}

func (h *BlogHandler) ToggleLike(c *gin.Context) {
	ctx := c.Request.Context()

	resp, err := h.svc.ToggleLike(ctx, middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BlogHandler) AddComment(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CommentRequest
	if !bindJSON(c, &req) {
		return
	}
	blog, err := h.svc.AddComment(ctx, middleware.UserID(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, blog)
}
