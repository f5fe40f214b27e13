package main

import (
	"Recipe-Sharing-API/cmd/config"
	migration "Recipe-Sharing-API/cmd/database/migrate"
	"Recipe-Sharing-API/internal/utils"
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = "config.yaml"
	}
	if err := utils.LoadConfig(configPath); err != nil {
		log.Fatalf("error loading config: %v", err)
	}
	if utils.GetConfig("JWT_SECRET") == "" {
		log.Warn("JWT_SECRET is empty, issued tokens are not secure")
	}

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := migration.Migrate(db); err != nil {
		log.Fatalf("%v", err)
	}
	log.Info("Database migration complete")

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		if err := app.Shutdown(); err != nil {
			log.Errorf("error shutting down: %v", err)
		}
	}()

	port := utils.GetConfig("PORT")
	log.Infof("Server listening on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
