package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postdeck/internal/models"
	"github.com/maheshrc27/postdeck/internal/scheduler"
)

type AnalyticsHandler struct {
	store *scheduler.Store
}

func NewAnalyticsHandler(store *scheduler.Store) *AnalyticsHandler {
	return &AnalyticsHandler{store: store}
}

func (h *AnalyticsHandler) ListSnapshots(c *fiber.Ctx) error {
	accountID := c.Query("account_id")
	snapshots := h.store.Snapshots()
	if accountID == "" {
		return c.Status(fiber.StatusOK).JSON(snapshots)
	}

	filtered := make([]models.EngagementSnapshot, 0, len(snapshots))
	for _, snap := range snapshots {
		if snap.AccountID == accountID {
			filtered = append(filtered, snap)
		}
	}
	return c.Status(fiber.StatusOK).JSON(filtered)
}
