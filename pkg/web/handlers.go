package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/gazepilot/go-gazepilot/pkg/attention"
	"github.com/gazepilot/go-gazepilot/pkg/hub"
)

// handleStatus returns the most recent pipeline snapshot.
func (s *Server) handleStatus(c *fiber.Ctx) error {
	return c.JSON(s.pipeline.Snapshot())
}

// handleGetTuning returns the active tuning parameters.
func (s *Server) handleGetTuning(c *fiber.Ctx) error {
	return c.JSON(s.pipeline.GetTuningParams())
}

// handleSetTuning applies tuning parameters at runtime. Invalid
// combinations are rejected as a whole and nothing changes.
func (s *Server) handleSetTuning(c *fiber.Ctx) error {
	var params attention.TuningParams
	if err := c.BodyParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformed tuning body",
		})
	}

	if err := s.pipeline.SetTuningParams(params); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	s.logger.Info("tuning updated via API")
	return c.JSON(s.pipeline.GetTuningParams())
}

// handleReset zeros the pipeline for a fresh capture session.
func (s *Server) handleReset(c *fiber.Ctx) error {
	s.pipeline.Reset()
	return c.JSON(fiber.Map{
		"session_id": s.pipeline.SessionID(),
	})
}

// handleStatusWS streams snapshots to a dashboard client.
func (s *Server) handleStatusWS(c *websocket.Conn) {
	client := hub.NewClient(s.statusHub, c)
	client.Run()
}
