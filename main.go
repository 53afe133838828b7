package main

import (
	"log"
	"os"

	"blog/config"
	"blog/database"
	"blog/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if wd, err := os.Getwd(); err == nil {
		log.Printf("Current working directory: %s", wd)
	}

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)
	if cfg.UsesDefaultSecret() {
		log.Println("SECRET_KEY is not set, falling back to the built-in key; do not run like this in production")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	r, err := routes.NewRouter(cfg, db)
	if err != nil {
		log.Fatal("Failed to build router:", err)
	}

	log.Printf("Server starting on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
