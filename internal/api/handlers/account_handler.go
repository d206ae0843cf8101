package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postdeck/internal/models"
	"github.com/maheshrc27/postdeck/internal/scheduler"
	"github.com/maheshrc27/postdeck/internal/transfer"
)

type AccountHandler struct {
	store *scheduler.Store
}

func NewAccountHandler(store *scheduler.Store) *AccountHandler {
	return &AccountHandler{store: store}
}

func (h *AccountHandler) ListAccounts(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.store.Accounts())
}

func (h *AccountHandler) AddAccount(c *fiber.Ctx) error {
	var ac transfer.AccountCreation
	if err := c.BodyParser(&ac); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	platform := models.Platform(ac.Platform)
	if !models.KnownPlatform(platform) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown platform",
		})
	}
	if ac.Name == "" || ac.Handle == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and handle are required",
		})
	}
	if ac.Audience < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Audience cannot be negative",
		})
	}

	id, err := h.store.AddAccount(models.Account{
		Name:           ac.Name,
		Handle:         ac.Handle,
		Platform:       platform,
		AvatarURL:      ac.AvatarURL,
		Audience:       ac.Audience,
		EngagementRate: ac.EngagementRate,
		BestPostTime:   ac.BestPostTime,
		Categories:     ac.Categories,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to add account",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"id": id})
}

func (h *AccountHandler) RemoveAccount(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Account id is required",
		})
	}

	h.store.RemoveAccount(id)
	return c.SendStatus(fiber.StatusOK)
}

func (h *AccountHandler) ToggleConnection(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Account id is required",
		})
	}

	h.store.ToggleConnection(id)
	return c.SendStatus(fiber.StatusOK)
}
