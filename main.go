package main

import (
	"context"
	"log"
	"os"

	"github.com/Timexll/TEMMY-REALTY/config"
	"github.com/Timexll/TEMMY-REALTY/routes"
	"github.com/Timexll/TEMMY-REALTY/services"
	"github.com/Timexll/TEMMY-REALTY/utils"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()

	config.ConnectDB()
	defer config.DisconnectDB()

	utils.InitRedis()

	var describer *services.Describer
	if cfg.GeminiAPIKey != "" {
		d, err := services.NewDescriber(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("Description generator disabled: %v", err)
		} else {
			describer = d
		}
	} else {
		log.Println("GEMINI_API_KEY not set, description generation disabled")
	}

	e := echo.New()
	e.Validator = utils.NewRequestValidator()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	routes.RegisterRoutes(e, describer, cfg.AdminMasterEmail)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
