package main

import (
	"log"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/app"
	"github.com/joho/godotenv"
)

func main() {
	loadLocalEnv()

	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}

func loadLocalEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found; relying on existing environment")
	}
}
