// Package web provides a real-time telemetry and tuning dashboard for
// the attention pipeline. It is an observability surface only; the
// decision core runs identically with the server disabled.
package web

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/gazepilot/go-gazepilot/pkg/attention"
	"github.com/gazepilot/go-gazepilot/pkg/hub"
)

// Server exposes pipeline snapshots and runtime tuning over HTTP and
// websocket.
type Server struct {
	app    *fiber.App
	addr   string
	logger *slog.Logger

	pipeline  *attention.Pipeline
	statusHub *hub.Hub
}

// NewServer wires a dashboard around the given pipeline.
func NewServer(addr string, pipeline *attention.Pipeline, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		addr:      addr,
		logger:    logger,
		pipeline:  pipeline,
		statusHub: hub.New("status", logger),
	}

	app := fiber.New(fiber.Config{
		AppName:               "gazepilot dashboard",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	api := app.Group("/api")
	api.Get("/status", s.handleStatus)
	api.Get("/tuning", s.handleGetTuning)
	api.Post("/tuning", s.handleSetTuning)
	api.Post("/reset", s.handleReset)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/status", websocket.New(s.handleStatusWS))

	s.app = app
	return s
}

// Publish broadcasts a pipeline snapshot to all dashboard clients.
// The pipeline calls this after every processed frame.
func (s *Server) Publish(snap attention.Snapshot) {
	s.statusHub.BroadcastJSON(snap)
}

// Start runs the hub and listens on the configured address. Blocks.
func (s *Server) Start() error {
	go s.statusHub.Run()
	s.logger.Info("dashboard listening", "addr", s.addr)
	return s.app.Listen(s.addr)
}

// StartAsync runs the server in a goroutine.
func (s *Server) StartAsync() {
	go func() {
		if err := s.Start(); err != nil {
			s.logger.Error("dashboard server stopped", "error", err)
		}
	}()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// Ensure Server implements the pipeline's snapshot sink.
var _ attention.StateSink = (*Server)(nil)
