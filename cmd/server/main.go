package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clara-backend/internal/config"
	"clara-backend/internal/handlers"
	"clara-backend/internal/router"
	"clara-backend/internal/services"
	"clara-backend/pkg/log"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()

	// ──── Step 2: Initialize Logger ────
	if err := log.Init(cfg.LogLevel, cfg.LogFormat()); err != nil {
		fmt.Fprintf(os.Stderr, "logger initialization failed: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	log.Infow("Starting Clara backend", "env", cfg.Env)

	// ──── Step 3: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal("Gemini client initialization failed", err)
	}
	defer geminiService.Close()
	log.Infow("Gemini client initialized", "model", cfg.GeminiModel)

	// ──── Step 4: Initialize Twilio Client ────
	smsService := services.NewSMSService(
		cfg.TwilioAccountSID,
		cfg.TwilioAuthToken,
		cfg.TwilioFromNumber,
		cfg.CaregiverPhoneNumber,
	)
	log.Info("Twilio client initialized")

	// ──── Step 5: Start HTTP Server ────
	r := router.New(
		handlers.NewChatHandler(geminiService),
		handlers.NewGeofenceHandler(smsService),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Error("Graceful shutdown failed", err)
		}
	}()

	log.Infof("Clara backend ready on http://localhost:%s", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal("Server error", err)
	}
	<-shutdownDone
}
