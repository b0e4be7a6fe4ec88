package handlers

import (
	"Cocktail-Companion/domain"
	"Cocktail-Companion/internal/api/presenters"
	"Cocktail-Companion/pkg/gemini"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GeminiHandler interface {
		GenerateCocktail(c *fiber.Ctx) error
	}

	geminiHandler struct {
		geminiService gemini.GeminiService
		validator     *validator.Validate
	}

	generateRequest struct {
		Ingredients string `json:"ingredients" validate:"required"`
	}
)

func NewGeminiHandler(geminiService gemini.GeminiService, validator *validator.Validate) GeminiHandler {
	return &geminiHandler{
		geminiService: geminiService,
		validator:     validator,
	}
}

func (h *geminiHandler) GenerateCocktail(c *fiber.Ctx) error {
	req := new(generateRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerate, err)
	}

	cocktail, err := h.geminiService.GenerateCocktail(c.Context(), req.Ingredients)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGenerate, err)
	}

	return presenters.SuccessResponse(c, cocktail, fiber.StatusOK, domain.MessageSuccessGenerate)
}
