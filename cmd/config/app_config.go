package config

import (
	"Recipe-Sharing-API/internal/api/handlers"
	"Recipe-Sharing-API/internal/api/routes"
	"Recipe-Sharing-API/internal/middleware"
	"Recipe-Sharing-API/internal/utils"
	"Recipe-Sharing-API/pkg/completion"
	"Recipe-Sharing-API/pkg/jwt"
	"Recipe-Sharing-API/pkg/recipe"
	"Recipe-Sharing-API/pkg/user"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName: "recipe-share",
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	output, err := logOutput(utils.GetConfig("LOG_FILE"))
	if err != nil {
		return nil, err
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     output,
	}))

	if limit, err := strconv.Atoi(utils.GetConfig("RATE_LIMIT_MAX")); err == nil && limit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        limit,
			Expiration: 1 * time.Second,
		}))
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)

	// Service
	jwtService := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"))
	userService := user.NewUserService(userRepository, jwtService)
	recipeService := recipe.NewRecipeService(recipeRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)

	var completionHandler handlers.CompletionHandler
	if apiKey := utils.GetConfig("OPENAI_API_KEY"); apiKey != "" {
		completionService := completion.NewCompletionService(
			apiKey,
			utils.GetConfig("OPENAI_MODEL"),
			utils.GetConfig("OPENAI_BASE_URL"),
		)
		completionHandler = handlers.NewCompletionHandler(completionService, validator)
	}

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		RecipeHandler:     recipeHandler,
		CompletionHandler: completionHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

// logOutput writes access logs to stdout and, when path is set, appends them
// to that file as well.
func logOutput(path string) (io.Writer, error) {
	if path == "" {
		return os.Stdout, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	return io.MultiWriter(os.Stdout, file), nil
}
