package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/content"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/router"
	"portfolio-backend/internal/services"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()

	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	log.Info().Msg("✓ Environment variables loaded")

	if cfg.OpenAIAPIKey == "" {
		log.Warn().Msg("OPENAI_API_KEY is not set; the assistant will return a configuration error")
	}

	// ──── Step 2: Select Content Source ────
	source := content.NewSource(cfg.NotionAPIKey, cfg.NotionDatabaseID)
	if cfg.UsesRemoteContent() {
		log.Info().Msg("✓ Project catalog: Notion with static fallback")
	} else {
		log.Info().Msg("✓ Project catalog: static")
	}

	// ──── Step 3: Initialize Services & Handlers ────
	chatService := services.NewChatService(cfg.OpenAIAPIKey)
	chatHandler := handlers.NewChatHandler(chatService)
	projectsHandler := handlers.NewProjectsHandler(source)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(chatHandler, projectsHandler, cfg.FrontendURL)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info().Msg("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Info().Msgf("✓ Portfolio backend ready on http://localhost:%s", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("Server error")
	}
}
