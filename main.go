package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"statline/app"
	"statline/internal"
	"statline/internal/catalog"
	"statline/internal/config"
	"statline/internal/generator"
	"statline/ui"
)

func main() {
	// .env is optional; real environment variables win.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := internal.NewLogger(internal.ParseLogLevel(appConfig.LogLevel))

	cat, err := catalog.Load(appConfig.Generation.CatalogFile)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	if appConfig.Generation.CatalogFile != "" {
		logger.Info("using catalog overlay %s (%d teams)", appConfig.Generation.CatalogFile, len(cat.Teams))
	}

	service, err := app.NewPopulationService(generator.Config{
		Seed:    appConfig.Generation.Seed,
		Count:   appConfig.Generation.Count,
		Catalog: cat,
	}, logger)
	if err != nil {
		log.Fatalf("Failed to generate population: %v", err)
	}

	handler := ui.NewApp(service, ui.Config{
		AllowedOrigins: appConfig.Server.AllowedOrigins,
		RequestTimeout: appConfig.Server.RequestTimeout,
	}, logger)

	server := &http.Server{
		Addr:         appConfig.Addr(),
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: appConfig.Server.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Starting statline server on %s (seed %d, %d players)",
			server.Addr, appConfig.Generation.Seed, appConfig.Generation.Count)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server error: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("✅ Server stopped")
}
