package handler

import (
	"net/http"
	"time"

	"animehub/internal/microservices/http-api/middleware"
	"animehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// DefaultRequestTimeout applies when RouterOptions.RequestTimeout is zero.
const DefaultRequestTimeout = 5 * time.Second

// Guards are the middlewares individual routes opt into.
type Guards struct {
	Auth  gin.HandlerFunc // rejects anonymous callers
	Limit gin.HandlerFunc // per-client write throttle
}

// Services bundles everything the HTTP layer depends on.
type Services struct {
	Auth         service.AuthService
	Users        service.UserService
	Shows        service.ShowService
	SeasonRating service.SeasonRatingService
	Reviews      service.ReviewService
	Blogs        service.BlogService
	UserShows    service.UserShowService
	Home         service.HomeService
}

type RouterOptions struct {
	Strategies   service.Strategies
	Limiter      *middleware.RateLimiter
	CORSOrigins  []string
	SecureCookie bool
	// RequestTimeout bounds the store work of a single request.
	RequestTimeout time.Duration
}

// NewRouter builds the gin engine with every route under /api.
func NewRouter(svc Services, opts RouterOptions) *gin.Engine {
	r := gin.New()
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	r.Use(gin.Logger(), gin.Recovery(), middleware.Timeout(timeout))
	if len(opts.CORSOrigins) > 0 {
		r.Use(middleware.CORS(opts.CORSOrigins))
	}

	guards := Guards{
		Auth:  middleware.RequireAuth(opts.Strategies.Bearer),
		Limit: func(c *gin.Context) { c.Next() },
	}
	if opts.Limiter != nil {
		guards.Limit = middleware.RateLimit(opts.Limiter)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	NewAuthHandler(svc.Auth, opts.SecureCookie).RegisterRoutes(api.Group("/auth"), guards)
	NewUserHandler(svc.Users).RegisterRoutes(api.Group("/user"), guards)
	NewShowHandler(svc.Shows).RegisterRoutes(api.Group("/shows"), guards)
	NewSeasonRatingHandler(svc.SeasonRating).RegisterRoutes(api.Group("/ratings"), guards)
	NewReviewHandler(svc.Reviews).RegisterRoutes(api.Group("/reviews"), guards)
	NewBlogHandler(svc.Blogs).RegisterRoutes(api.Group("/blogs"), guards)
	NewUserShowHandler(svc.UserShows).RegisterRoutes(api.Group("/user-shows"), guards)
	NewHomeHandler(svc.Home).RegisterRoutes(api.Group("/home"), guards)

	return r
}
