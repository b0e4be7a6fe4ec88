package handlers

import (
	"Cocktail-Companion/domain"
	"Cocktail-Companion/internal/api/presenters"
	"Cocktail-Companion/pkg/nav"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	NavHandler interface {
		Navigate(c *fiber.Ctx) error
		Back(c *fiber.Ctx) error
		GetStack(c *fiber.Ctx) error
	}

	navHandler struct {
		navigator *nav.Navigator
		validator *validator.Validate
	}
)

func NewNavHandler(navigator *nav.Navigator, validator *validator.Validate) NavHandler {
	return &navHandler{
		navigator: navigator,
		validator: validator,
	}
}

func (h *navHandler) Navigate(c *fiber.Ctx) error {
	req := new(domain.NavigateRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedNavigate, err)
	}

	entry, err := h.navigator.Navigate(req.Route)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedNavigate, err)
	}

	return presenters.SuccessResponse(c, entry, fiber.StatusOK, domain.MessageSuccessNavigate)
}

func (h *navHandler) Back(c *fiber.Ctx) error {
	entry, popped := h.navigator.Back()
	return presenters.SuccessResponse(c, fiber.Map{
		"current": entry,
		"popped":  popped,
	}, fiber.StatusOK, domain.MessageSuccessGoBack)
}

func (h *navHandler) GetStack(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, fiber.Map{
		"stack":   h.navigator.Stack(),
		"current": h.navigator.Current(),
	}, fiber.StatusOK, domain.MessageSuccessGetStack)
}
