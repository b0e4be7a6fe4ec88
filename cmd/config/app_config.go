package config

import (
	"Cocktail-Companion/internal/api/handlers"
	"Cocktail-Companion/internal/api/routes"
	"Cocktail-Companion/internal/middleware"
	"Cocktail-Companion/internal/utils"
	"Cocktail-Companion/internal/utils/storage"
	"Cocktail-Companion/pkg/cocktaildb"
	"Cocktail-Companion/pkg/creation"
	"Cocktail-Companion/pkg/favorite"
	"Cocktail-Companion/pkg/gemini"
	"Cocktail-Companion/pkg/nav"
	"Cocktail-Companion/pkg/session"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	sess := session.New()
	navigator := nav.NewNavigator()

	// Repository
	favoriteRepository := favorite.NewFavoriteRepository(db)
	creationRepository := creation.NewCreationRepository(db)

	// Service
	cocktailClient := cocktaildb.NewCocktailClient(utils.GetConfig("COCKTAILDB_BASE_URL"))
	geminiService := gemini.NewGeminiService(
		utils.GetConfig("GEMINI_API_KEY"),
		utils.GetConfig("GEMINI_MODEL"),
	)
	favoriteService := favorite.NewFavoriteService(favoriteRepository)
	creationService := creation.NewCreationService(creationRepository)

	// background writes report here instead of to the caller
	go func() {
		for err := range favoriteService.Errors() {
			log.Errorf("favorite write failed: %v", err)
		}
	}()

	// Handler
	cocktailHandler := handlers.NewCocktailHandler(cocktailClient, favoriteService, creationService, sess)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService, validator)
	creationHandler := handlers.NewCreationHandler(creationService, navigator, s3, validator)
	geminiHandler := handlers.NewGeminiHandler(geminiService, validator)
	navHandler := handlers.NewNavHandler(navigator, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		CocktailHandler: cocktailHandler,
		FavoriteHandler: favoriteHandler,
		CreationHandler: creationHandler,
		GeminiHandler:   geminiHandler,
		NavHandler:      navHandler,
		Middleware:      middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
