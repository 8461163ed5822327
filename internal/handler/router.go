package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"turf-booking/internal/handler/api"
	"turf-booking/internal/handler/middleware"
	"turf-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine              *gin.Engine
	Config              config.Config
	BookingHandler      *api.BookingHandler
	AvailabilityHandler *api.AvailabilityHandler
	ProfileHandler      *api.ProfileHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Limiter             middleware.RateLimiter `optional:"true"`
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.Tracing())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// booking creation is the contended path
	var createMw []gin.HandlerFunc
	if p.Config.RateLimit.Enabled && p.Limiter != nil {
		createMw = append(createMw, middleware.RateLimit(p.Limiter))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/bookings/check", Handler: p.AvailabilityHandler.Check},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(p.AuthMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: p.BookingHandler.Create, Mw: createMw},
				{Method: http.MethodGet, Path: "", Handler: p.BookingHandler.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: p.BookingHandler.Get},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: p.BookingHandler.UpdateStatus},
			})
		}

		owner := apiGroup.Group("/owner")
		owner.Use(p.AuthMiddleware.RequireAuth())
		{
			addRoutes(owner, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: p.BookingHandler.ListForOwner},
			})
		}

		profiles := apiGroup.Group("/profiles")
		profiles.Use(p.AuthMiddleware.RequireAuth())
		{
			addRoutes(profiles, []route{
				{Method: http.MethodPost, Path: "", Handler: p.ProfileHandler.Register},
				{Method: http.MethodGet, Path: "/me", Handler: p.ProfileHandler.Me},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
