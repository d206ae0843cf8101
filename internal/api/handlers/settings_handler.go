package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postdeck/internal/scheduler"
	"github.com/maheshrc27/postdeck/internal/transfer"
)

type SettingsHandler struct {
	store *scheduler.Store
}

func NewSettingsHandler(store *scheduler.Store) *SettingsHandler {
	return &SettingsHandler{store: store}
}

func (h *SettingsHandler) GetBrandVoice(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"voice": h.store.BrandVoice(),
	})
}

func (h *SettingsHandler) UpdateBrandVoice(c *fiber.Ctx) error {
	var vu transfer.VoiceUpdate
	if err := c.BodyParser(&vu); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	h.store.SetBrandVoice(vu.Voice)
	return c.SendStatus(fiber.StatusOK)
}
