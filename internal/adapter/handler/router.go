package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-scribe/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-scribe/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	meetingHandler *Meeting
	transcriber    string
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingHandler *Meeting, transcriber string) *Router {
	return &Router{
		cfg:            cfg,
		meetingHandler: meetingHandler,
		transcriber:    transcriber,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// Pages
	e.GET("/", rt.meetingHandler.Index)
	e.POST("/", rt.meetingHandler.Upload)
	e.GET("/result/:id", rt.meetingHandler.Result)
	e.POST("/result/:id/chat", rt.meetingHandler.Chat)

	// JSON API
	api := e.Group("/api")
	rt.setupMeetingRoutes(api)
}

// setupMeetingRoutes configures the JSON meeting routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings")
	meetings.GET("", rt.meetingHandler.ListAPI)
	meetings.GET("/:id", rt.meetingHandler.GetAPI)
	meetings.POST("/:id/chat", rt.meetingHandler.Chat)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	providers := make([]string, 0, 2)
	for _, p := range rt.meetingHandler.svc.Providers() {
		providers = append(providers, p.String())
	}
	resp := meeting.HealthResponse{
		Status:      "ok",
		Providers:   providers,
		Transcriber: rt.transcriber,
	}
	if rt.cfg != nil {
		resp.Environment = rt.cfg.Server.Environment
		resp.Storage = rt.cfg.Storage.Type
	}
	return c.JSON(http.StatusOK, resp)
}
