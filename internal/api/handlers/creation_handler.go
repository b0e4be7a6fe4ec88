package handlers

import (
	"Cocktail-Companion/domain"
	"Cocktail-Companion/internal/api/presenters"
	"Cocktail-Companion/internal/utils/storage"
	"Cocktail-Companion/pkg/creation"
	"Cocktail-Companion/pkg/nav"
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type (
	CreationHandler interface {
		CreateCocktail(c *fiber.Ctx) error
		GetCreations(c *fiber.Ctx) error
		StreamCreations(c *fiber.Ctx) error
		UploadCreationImage(c *fiber.Ctx) error
	}

	creationHandler struct {
		creationService creation.CreationService
		navigator       *nav.Navigator
		s3              storage.AwsS3
		validator       *validator.Validate
	}
)

func NewCreationHandler(
	creationService creation.CreationService,
	navigator *nav.Navigator,
	s3 storage.AwsS3,
	validator *validator.Validate,
) CreationHandler {
	return &creationHandler{
		creationService: creationService,
		navigator:       navigator,
		s3:              s3,
		validator:       validator,
	}
}

// CreateCocktail validates the form, writes the creation, and completes the
// form's navigation transition: the creation screen is removed from the back
// stack and the creations list becomes the current destination.
func (h *creationHandler) CreateCocktail(c *fiber.Ctx) error {
	req := new(domain.CreateCocktailRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCocktail, err)
	}

	id, err := h.creationService.Create(c.Context(), *req)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrMissingRequiredFields) {
			status = fiber.StatusUnprocessableEntity
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedCreateCocktail, err)
	}

	entry := h.navigator.CompleteCreation()
	return presenters.SuccessResponse(c, domain.CreateCocktailResponse{
		ID:          id,
		Destination: string(entry.Destination),
	}, fiber.StatusCreated, domain.MessageSuccessCreateCocktail)
}

func (h *creationHandler) GetCreations(c *fiber.Ctx) error {
	creations, err := h.creationService.GetCreations(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCreations, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"creations": creations}, fiber.StatusOK, domain.MessageSuccessGetCreations)
}

// StreamCreations exposes the live creations sequence as server-sent events,
// newest first, same contract as the favorites stream.
func (h *creationHandler) StreamCreations(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	updates, cancel := h.creationService.Watch(context.Background())

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer cancel()
		for creations := range updates {
			payload, err := json.Marshal(creations)
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

// UploadCreationImage stores a creation photo and returns the URI the client
// should attach to its submission.
func (h *creationHandler) UploadCreationImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	objectKey, err := h.s3.UploadFile(uuid.New().String(), file, "creations", storage.AllowImage...)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"image_uri": h.s3.ObjectURL(objectKey),
	}, fiber.StatusCreated, domain.MessageSuccessUploadImage)
}
