package handlers

import (
	"Cocktail-Companion/domain"
	"Cocktail-Companion/internal/api/presenters"
	"Cocktail-Companion/pkg/cocktaildb"
	"Cocktail-Companion/pkg/creation"
	"Cocktail-Companion/pkg/favorite"
	"Cocktail-Companion/pkg/session"
	"context"
	"errors"
	"math/rand"

	"github.com/gofiber/fiber/v2"
)

type (
	CocktailHandler interface {
		GetHome(c *fiber.Ctx) error
		GetMoodSuggestion(c *fiber.Ctx) error
		GetRandomCocktail(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
		GetCocktailsByCategory(c *fiber.Ctx) error
		SearchCocktails(c *fiber.Ctx) error
		GetCocktailDetail(c *fiber.Ctx) error
	}

	cocktailHandler struct {
		cocktailClient  cocktaildb.CocktailClient
		favoriteService favorite.FavoriteService
		creationService creation.CreationService
		session         *session.Session
	}
)

func NewCocktailHandler(
	cocktailClient cocktaildb.CocktailClient,
	favoriteService favorite.FavoriteService,
	creationService creation.CreationService,
	sess *session.Session,
) CocktailHandler {
	return &cocktailHandler{
		cocktailClient:  cocktailClient,
		favoriteService: favoriteService,
		creationService: creationService,
		session:         sess,
	}
}

// GetHome serves the home screen payload: the memoized daily suggestion, the
// recently-viewed history and the one-shot mood popup flag. A failed
// suggestion fetch leaves the cache empty, so the next visit retries.
func (h *cocktailHandler) GetHome(c *fiber.Ctx) error {
	suggestion, err := h.session.DailySuggestion(c.Context(), func(ctx context.Context) (domain.Cocktail, error) {
		return h.cocktailClient.Random(ctx)
	})

	payload := fiber.Map{
		"recently_viewed": h.session.RecentlyViewed(),
		"show_mood_popup": h.session.ShouldShowMoodPopup(),
	}
	if err == nil {
		payload["daily_suggestion"] = suggestion
	} else {
		payload["suggestion_error"] = domain.MessageFailedGetCocktail
	}

	return presenters.SuccessResponse(c, payload, fiber.StatusOK, domain.MessageSuccessGetHome)
}

// GetMoodSuggestion backs the barman popup: a random pick from the
// alcohol-filtered listing.
func (h *cocktailHandler) GetMoodSuggestion(c *fiber.Ctx) error {
	filter := c.Query("filter", "Alcoholic")

	drinks, err := h.cocktailClient.ByAlcohol(c.Context(), filter)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCocktail, err)
	}

	pick := drinks[rand.Intn(len(drinks))]
	return presenters.SuccessResponse(c, pick, fiber.StatusOK, domain.MessageSuccessGetCocktail)
}

func (h *cocktailHandler) GetRandomCocktail(c *fiber.Ctx) error {
	cocktail, err := h.cocktailClient.Random(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCocktail, err)
	}

	h.session.RecordView(cocktail)
	return presenters.SuccessResponse(c, cocktail, fiber.StatusOK, domain.MessageSuccessGetCocktail)
}

// GetCategories prepends the local "My Creations" entry to the remote list.
func (h *cocktailHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.cocktailClient.Categories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCategories, err)
	}

	categories = append([]string{domain.MyCreationsCategory}, categories...)
	return presenters.SuccessResponse(c, fiber.Map{"categories": categories}, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

// GetCocktailsByCategory lists a category's drinks. "My Creations" is served
// from the local store and never reaches the remote API.
func (h *cocktailHandler) GetCocktailsByCategory(c *fiber.Ctx) error {
	category := c.Query("category")
	if category == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCocktails, domain.ErrNoCocktailFound)
	}

	if category == domain.MyCreationsCategory {
		creations, err := h.creationService.GetCreations(c.Context())
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCreations, err)
		}
		return presenters.SuccessResponse(c, fiber.Map{"creations": creations}, fiber.StatusOK, domain.MessageSuccessGetCreations)
	}

	drinks, err := h.cocktailClient.ByCategory(c.Context(), category)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrNoCocktailFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetCocktails, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"drinks": drinks}, fiber.StatusOK, domain.MessageSuccessGetCocktails)
}

func (h *cocktailHandler) SearchCocktails(c *fiber.Ctx) error {
	name := c.Query("s")

	drinks, err := h.cocktailClient.Search(c.Context(), name)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrNoCocktailFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetCocktails, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"drinks": drinks}, fiber.StatusOK, domain.MessageSuccessGetCocktails)
}

// GetCocktailDetail looks up one drink, records the view in the session
// history, and reports the current favorite state so the toggle renders
// correctly on first paint.
func (h *cocktailHandler) GetCocktailDetail(c *fiber.Ctx) error {
	drinkID := c.Params("id")
	if drinkID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCocktail, domain.ErrNoCocktailFound)
	}

	cocktail, err := h.cocktailClient.Lookup(c.Context(), drinkID)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrNoCocktailFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetCocktail, err)
	}

	h.session.RecordView(cocktail)

	isFavorite, err := h.favoriteService.IsFavorite(c.Context(), cocktail.ID)
	if err != nil {
		isFavorite = false
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"cocktail":    cocktail,
		"is_favorite": isFavorite,
	}, fiber.StatusOK, domain.MessageSuccessGetCocktail)
}
