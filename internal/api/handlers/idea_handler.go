package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postdeck/internal/scheduler"
	"github.com/maheshrc27/postdeck/internal/transfer"
)

type IdeaHandler struct {
	store *scheduler.Store
}

func NewIdeaHandler(store *scheduler.Store) *IdeaHandler {
	return &IdeaHandler{store: store}
}

func (h *IdeaHandler) ListTopics(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.store.TopicsByCategory())
}

func (h *IdeaHandler) GenerateIdea(c *fiber.Ctx) error {
	var ig transfer.IdeaGeneration
	if err := c.BodyParser(&ig); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	platforms, err := parsePlatforms(ig.Platforms)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	idea, err := h.store.GenerateIdea(ig.TopicID, platforms, ig.BrandVoice)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if idea == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Topic doesn't exist",
		})
	}

	return c.Status(fiber.StatusOK).JSON(idea)
}
