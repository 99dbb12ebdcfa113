// Package api exposes the HTTP surface: chat submission with a live
// SSE stream, session management, and resumable event reads.
package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/relay-agents/relay/pkg/config"
	"github.com/relay-agents/relay/pkg/database"
	"github.com/relay-agents/relay/pkg/run"
	"github.com/relay-agents/relay/pkg/services"
)

// Server wires handlers to the orchestrator and services.
type Server struct {
	echo   *echo.Echo
	cfg    *config.Config
	db     *database.Client
	runner *run.Runner
	reader *run.Reader

	sessionService *services.SessionService
	eventService   *services.EventService
}

// NewServer creates the HTTP server and registers all routes.
func NewServer(
	cfg *config.Config,
	db *database.Client,
	runner *run.Runner,
	reader *run.Reader,
	sessionService *services.SessionService,
	eventService *services.EventService,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(securityHeaders())

	s := &Server{
		echo:           e,
		cfg:            cfg,
		db:             db,
		runner:         runner,
		reader:         reader,
		sessionService: sessionService,
		eventService:   eventService,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.healthHandler)

	v1 := s.echo.Group("/api/v1")
	v1.POST("/chat", s.chatHandler)
	v1.GET("/sessions", s.listSessionsHandler)
	v1.GET("/sessions/:id", s.getSessionHandler)
	v1.GET("/sessions/:id/messages", s.getSessionMessagesHandler)
	v1.GET("/sessions/:id/events", s.listEventsHandler)
	v1.POST("/sessions/:id/abort", s.abortSessionHandler)
	v1.DELETE("/sessions/:id", s.deleteSessionHandler)
}

// Start blocks serving HTTP until Shutdown.
func (s *Server) Start() error {
	return s.echo.Start(":" + s.cfg.HTTPPort)
}

// Shutdown stops the listener and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Echo exposes the router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// securityHeaders sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			return next(c)
		}
	}
}
