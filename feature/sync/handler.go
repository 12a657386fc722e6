package sync

import (
	"errors"

	"event-sync/core/event"
	"event-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the sync feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Post("/", h.HandleRunSync)
	group.Get("/report", h.HandleLastReport)
}

// HandleRunSync runs one reconciliation pass.
// @Summary Run Reconciliation Pass
// @Description Performs one full bidirectional fetch-compare-push pass and returns its report.
// @Tags sync
// @Accept json
// @Produce json
// @Success 200 {object} reconcile.SyncReport "Sync Report"
// @Failure 502 {object} map[string]string "Fetch Failure"
// @Router /sync [post]
func (h *Handler) HandleRunSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering reconciliation pass")

	report, err := h.service.RunPass(c.Context())
	if err != nil {
		l.Error("Reconciliation pass failed", zap.Error(err))

		status := fiber.StatusInternalServerError
		var fetchErr *event.FetchError
		if errors.As(err, &fetchErr) {
			// An unreachable origin is the upstream's fault
			status = fiber.StatusBadGateway
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

// HandleLastReport returns the most recent sync report.
// @Summary Last Sync Report
// @Description Returns the report of the most recent successful pass.
// @Tags sync
// @Accept json
// @Produce json
// @Success 200 {object} reconcile.SyncReport "Sync Report"
// @Failure 404 {object} map[string]string "No pass has run yet"
// @Router /sync/report [get]
func (h *Handler) HandleLastReport(c *fiber.Ctx) error {
	report := h.service.LastReport()
	if report == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no sync pass has completed yet",
		})
	}
	return c.JSON(report)
}
