package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-ops/internal/handler/api"
	"hotel-ops/internal/handler/middleware"
	"hotel-ops/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Rooms        *api.RoomHandler
	Guests       *api.GuestHandler
	Reservations *api.ReservationHandler
	Activities   *api.ActivityHandler
	Housekeeping *api.HousekeepingHandler
	Billing      *api.BillingHandler
	Simulation   *api.SimulationHandler
	Dashboard    *api.DashboardHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, handlers)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
	if cfg.Metrics.Enabled {
		engine.Use(middleware.NewMetrics(cfg.Metrics).Middleware())
	}
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Rooms.ListRooms},
				{Method: http.MethodGet, Path: "/available", Handler: h.Rooms.ListAvailableRooms},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Rooms.GetRoom},
			})
		}

		guests := apiGroup.Group("/guests")
		{
			addRoutes(guests, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Guests.CreateGuest},
				{Method: http.MethodGet, Path: "", Handler: h.Guests.ListGuests},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Guests.GetGuest},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Guests.UpdateGuest},
				{Method: http.MethodPost, Path: "/:id/loyalty-points", Handler: h.Guests.AddLoyaltyPoints},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservations.CreateReservation},
				{Method: http.MethodGet, Path: "", Handler: h.Reservations.ListReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservations.GetReservation},
				{Method: http.MethodPost, Path: "/:id/check-in", Handler: h.Reservations.CheckIn},
				{Method: http.MethodPost, Path: "/:id/check-out", Handler: h.Reservations.CheckOut},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservations.Cancel},
				{Method: http.MethodPut, Path: "/:id/status", Handler: h.Reservations.UpdateStatus},
				{Method: http.MethodPut, Path: "/:id/room", Handler: h.Reservations.ShiftRoom},
			})
		}

		activities := apiGroup.Group("/activities")
		{
			addRoutes(activities, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Activities.CreateActivity},
				{Method: http.MethodGet, Path: "", Handler: h.Activities.ListActivities},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Activities.GetActivity},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Activities.CompleteActivity},
				{Method: http.MethodPut, Path: "/:id/status", Handler: h.Activities.UpdateActivityStatus},
			})
		}

		housekeeping := apiGroup.Group("/housekeeping")
		{
			addRoutes(housekeeping, []route{
				{Method: http.MethodPost, Path: "/tasks", Handler: h.Housekeeping.CreateTask},
				{Method: http.MethodGet, Path: "/tasks", Handler: h.Housekeeping.ListTasks},
				{Method: http.MethodGet, Path: "/tasks/:id", Handler: h.Housekeeping.GetTask},
				{Method: http.MethodPost, Path: "/tasks/:id/start", Handler: h.Housekeeping.StartTask},
				{Method: http.MethodPost, Path: "/tasks/:id/complete", Handler: h.Housekeeping.CompleteTask},
				{Method: http.MethodPut, Path: "/tasks/:id/status", Handler: h.Housekeeping.UpdateTaskStatus},
				{Method: http.MethodPost, Path: "/rooms/:roomId/make-available", Handler: h.Housekeeping.MakeRoomAvailable},
			})
		}

		billing := apiGroup.Group("/billing")
		{
			addRoutes(billing, []route{
				{Method: http.MethodPost, Path: "/invoices", Handler: h.Billing.GenerateInvoice},
				{Method: http.MethodGet, Path: "/invoices", Handler: h.Billing.ListInvoices},
				{Method: http.MethodGet, Path: "/invoices/:id", Handler: h.Billing.GetInvoice},
				{Method: http.MethodPost, Path: "/invoices/:id/pay", Handler: h.Billing.ProcessPayment},
				{Method: http.MethodGet, Path: "/revenue", Handler: h.Billing.Revenue},
			})
		}

		simulation := apiGroup.Group("/simulation")
		{
			addRoutes(simulation, []route{
				{Method: http.MethodPost, Path: "/reset", Handler: h.Simulation.Reset},
				{Method: http.MethodPost, Path: "/clear", Handler: h.Simulation.Clear},
				{Method: http.MethodPost, Path: "/clear-all", Handler: h.Simulation.ClearAll},
				{Method: http.MethodPut, Path: "/start-empty", Handler: h.Simulation.SetStartEmpty},
			})
		}

		apiGroup.GET("/dashboard", h.Dashboard.GetDashboard)
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
