package main

import (
	"flag"
	"fmt"
	"log"

	"churchplus-backend/internal/config"
	"churchplus-backend/internal/logger"
	"churchplus-backend/internal/security"
)

// Issues an access token for an owner account, for local use against the API.
func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	userID := flag.String("user", "", "Owner id placed in the user_id claim")
	email := flag.String("email", "", "Optional e-mail claim")
	flag.Parse()

	if *userID == "" {
		log.Fatalf("-user is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.AccessTokenTTL())
	token, err := tokenManager.GenerateAccessToken(*userID, *email)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	logger.Debug("Issued access token", "user_id", *userID, "expires_in", cfg.AccessTokenTTL())
	fmt.Println(token)
}
