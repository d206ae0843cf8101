package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postdeck/internal/models"
	"github.com/maheshrc27/postdeck/internal/scheduler"
	"github.com/maheshrc27/postdeck/internal/transfer"
)

type PostHandler struct {
	store *scheduler.Store
}

func NewPostHandler(store *scheduler.Store) *PostHandler {
	return &PostHandler{store: store}
}

func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.store.Posts())
}

func (h *PostHandler) SchedulePost(c *fiber.Ctx) error {
	var ps transfer.PostScheduling
	if err := c.BodyParser(&ps); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	if ps.Idea.Caption == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Caption cannot be empty",
		})
	}
	if len(ps.AccountIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No accounts selected",
		})
	}

	scheduledAt, err := parseScheduledAt(ps.ScheduledAt)
	if err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	post, err := h.store.SchedulePost(ps.Idea, ps.AccountIDs, scheduledAt)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to schedule post",
		})
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *PostHandler) MarkStatus(c *fiber.Ctx) error {
	var su transfer.StatusUpdate
	if err := c.BodyParser(&su); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	found, err := h.store.MarkPostStatus(su.PostID, models.PostStatus(su.Status))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Post doesn't exist",
		})
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *PostHandler) ReschedulePost(c *fiber.Ctx) error {
	var pr transfer.PostReschedule
	if err := c.BodyParser(&pr); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	newAt, err := parseScheduledAt(pr.ScheduledAt)
	if err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	post := h.store.ReschedulePost(pr.PostID, newAt)
	if post == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Post doesn't exist",
		})
	}

	return c.Status(fiber.StatusOK).JSON(post)
}
