package handler

import (
	"net/http"

	"animehub/internal/microservices/http-api/dto"
	"animehub/internal/microservices/http-api/middleware"
	"animehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService  service.AuthService
	secureCookie bool
}

func NewAuthHandler(authService service.AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookie: secureCookie}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup, g Guards) {
	rg.POST("/signup", g.Limit, h.Signup)
	rg.POST("/login", g.Limit, h.Login)
	rg.POST("/logout", h.Logout)
}

// Signup POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.authService.Signup(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.setTokenCookie(c, resp.Token, int(resp.ExpiresIn))
	c.JSON(http.StatusCreated, resp)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.setTokenCookie(c, resp.Token, int(resp.ExpiresIn))
	c.JSON(http.StatusOK, resp)
}

// Logout clears the token cookie. Bearer tokens stay valid until they expire.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setTokenCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, token, maxAge, "/", "", h.secureCookie, true)
}
