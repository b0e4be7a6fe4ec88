package handlers

import (
	"Cocktail-Companion/domain"
	"Cocktail-Companion/internal/api/presenters"
	"Cocktail-Companion/pkg/favorite"
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FavoriteHandler interface {
		AddFavorite(c *fiber.Ctx) error
		RemoveFavorite(c *fiber.Ctx) error
		GetFavorites(c *fiber.Ctx) error
		StreamFavorites(c *fiber.Ctx) error
	}

	favoriteHandler struct {
		favoriteService favorite.FavoriteService
		validator       *validator.Validate
	}
)

func NewFavoriteHandler(favoriteService favorite.FavoriteService, validator *validator.Validate) FavoriteHandler {
	return &favoriteHandler{
		favoriteService: favoriteService,
		validator:       validator,
	}
}

// AddFavorite accepts the write and returns immediately: the store write is
// fire-and-forget, failures go to the service's error channel.
func (h *favoriteHandler) AddFavorite(c *fiber.Ctx) error {
	req := new(domain.AddFavoriteRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFavorite, err)
	}

	h.favoriteService.Add(req.Cocktail)
	return presenters.SuccessResponse(c, nil, fiber.StatusAccepted, domain.MessageAcceptedAddFavorite)
}

func (h *favoriteHandler) RemoveFavorite(c *fiber.Ctx) error {
	drinkID := c.Params("id")
	if drinkID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, nil)
	}

	h.favoriteService.Remove(drinkID)
	return presenters.SuccessResponse(c, nil, fiber.StatusAccepted, domain.MessageAcceptedRemoveFavorite)
}

func (h *favoriteHandler) GetFavorites(c *fiber.Ctx) error {
	favorites, err := h.favoriteService.Favorites(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFavorites, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"favorites": favorites}, fiber.StatusOK, domain.MessageSuccessGetFavorites)
}

// StreamFavorites exposes the live favorites sequence as server-sent events.
// Every committed write pushes the full updated set to the subscriber.
func (h *favoriteHandler) StreamFavorites(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	updates, cancel := h.favoriteService.Watch(context.Background())

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer cancel()
		for favorites := range updates {
			payload, err := json.Marshal(favorites)
			if err != nil {
				return
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				return
			}
			if err := w.Flush(); err != nil {
				return
			}
		}
	})
	return nil
}
