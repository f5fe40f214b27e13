package routes

import (
	"Recipe-Sharing-API/internal/api/handlers"
	"Recipe-Sharing-API/internal/middleware"
	"Recipe-Sharing-API/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	RecipeHandler     handlers.RecipeHandler
	CompletionHandler handlers.CompletionHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.User()
	c.Recipes()
	c.Completions()
}

func (c *Config) User() {
	user := c.App.Group("/api/users")
	// user routes
	{
		user.Post("/signup", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/profile", c.UserHandler.GetProfile)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipes")

	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeByID)
	recipes.Post("", c.RecipeHandler.CreateRecipe)
	recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
	recipes.Post("/:recipeId/copy", c.RecipeHandler.CopyRecipe)
}

// Completions is only mounted when a completion backend is configured.
func (c *Config) Completions() {
	if c.CompletionHandler == nil {
		return
	}
	c.App.Post("/api/completions", c.CompletionHandler.Complete)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
