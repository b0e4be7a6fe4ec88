package routes

import (
	"Cocktail-Companion/internal/api/handlers"
	"Cocktail-Companion/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	CocktailHandler handlers.CocktailHandler
	FavoriteHandler handlers.FavoriteHandler
	CreationHandler handlers.CreationHandler
	GeminiHandler   handlers.GeminiHandler
	NavHandler      handlers.NavHandler
	Middleware      middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Cocktails()
	c.Favorites()
	c.Creations()
	c.Gemini()
	c.Navigation()
	c.GuestRoute()
}

func (c *Config) Cocktails() {
	cocktails := c.App.Group("/api/v1/cocktails")
	// fixed segments before the :id wildcard
	{
		cocktails.Get("/random", c.CocktailHandler.GetRandomCocktail)
		cocktails.Get("/categories", c.CocktailHandler.GetCategories)
		cocktails.Get("/search", c.CocktailHandler.SearchCocktails)
		cocktails.Get("", c.CocktailHandler.GetCocktailsByCategory)
		cocktails.Get("/:id", c.CocktailHandler.GetCocktailDetail)
	}

	c.App.Get("/api/v1/home", c.CocktailHandler.GetHome)
	c.App.Get("/api/v1/home/mood", c.CocktailHandler.GetMoodSuggestion)
}

func (c *Config) Favorites() {
	favorites := c.App.Group("/api/v1/favorites")
	{
		favorites.Get("/stream", c.FavoriteHandler.StreamFavorites)
		favorites.Get("", c.FavoriteHandler.GetFavorites)
		favorites.Post("", c.FavoriteHandler.AddFavorite)
		favorites.Delete("/:id", c.FavoriteHandler.RemoveFavorite)
	}
}

func (c *Config) Creations() {
	creations := c.App.Group("/api/v1/creations")
	{
		creations.Get("/stream", c.CreationHandler.StreamCreations)
		creations.Post("/image", c.CreationHandler.UploadCreationImage)
		creations.Get("", c.CreationHandler.GetCreations)
		creations.Post("", c.CreationHandler.CreateCocktail)
	}
}

func (c *Config) Gemini() {
	c.App.Post("/api/v1/gemini/generate", c.GeminiHandler.GenerateCocktail)
}

func (c *Config) Navigation() {
	navigate := c.App.Group("/api/v1/navigate")
	{
		navigate.Post("", c.NavHandler.Navigate)
		navigate.Post("/back", c.NavHandler.Back)
		navigate.Get("/stack", c.NavHandler.GetStack)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}
