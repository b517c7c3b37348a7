package main

import (
	"log"
	"time"

	"github.com/cli/browser"
	"github.com/joho/godotenv"

	"github.com/fitdash/config"
	"github.com/fitdash/server"
)

func main() {
	// .env is optional; FITDASH_ vars can come from the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	if cfg.OpenBrowser {
		url := "http://localhost" + cfg.Addr
		go func() {
			// Give the listener a moment before pointing the browser at it.
			time.Sleep(300 * time.Millisecond)
			if err := browser.OpenURL(url); err != nil {
				log.Printf("Failed to open browser: %v", err)
			}
		}()
	}

	if err := server.Serve(cfg); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
