package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/careerpilot/careerpilot-backend/internal/app"
)

func main() {
	// Missing .env is fine; containerized deploys pass real env vars.
	_ = godotenv.Load()

	a, err := app.New(context.Background())
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		a.Log.Fatal("Server exited", "error", err)
	}
}
