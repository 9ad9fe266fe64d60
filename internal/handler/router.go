package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"office-hours/internal/domain/user"
	"office-hours/internal/handler/api"
	"office-hours/internal/handler/middleware"
	"office-hours/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type handlers struct {
	Slots        *api.SlotHandler
	Appointments *api.AppointmentHandler
	Auth         *middleware.AuthMiddleware
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	slotHandler *api.SlotHandler,
	appointmentHandler *api.AppointmentHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers{
		Slots:        slotHandler,
		Appointments: appointmentHandler,
		Auth:         authMiddleware,
	})
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(h.Auth.RequireAuth())
	{
		professorOnly := h.Auth.RequireRole(user.RoleProfessor)
		studentOnly := h.Auth.RequireRole(user.RoleStudent)

		slots := apiGroup.Group("/slots")
		addRoutes(slots, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Slots.Create, Mw: []gin.HandlerFunc{professorOnly}},
			{Method: http.MethodGet, Path: "/mine", Handler: h.Slots.ListMine, Mw: []gin.HandlerFunc{professorOnly}},
		})

		professors := apiGroup.Group("/professors")
		addRoutes(professors, []route{
			{Method: http.MethodGet, Path: "/:id/slots", Handler: h.Slots.ListAvailable},
		})

		appointments := apiGroup.Group("/appointments")
		addRoutes(appointments, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Appointments.Book, Mw: []gin.HandlerFunc{studentOnly}},
			{Method: http.MethodGet, Path: "", Handler: h.Appointments.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Appointments.Get},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Appointments.Cancel},
		})
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
