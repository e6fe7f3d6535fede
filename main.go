package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/yleroy/coffeehouse-be/internal/api"
	"github.com/yleroy/coffeehouse-be/internal/auth"
	"github.com/yleroy/coffeehouse-be/internal/config"
	"github.com/yleroy/coffeehouse-be/internal/database"
	"github.com/yleroy/coffeehouse-be/internal/logger"
	"github.com/yleroy/coffeehouse-be/internal/services"
	"github.com/yleroy/coffeehouse-be/internal/session"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.LogLevel)

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.Timezone).Msg("Failed to load timezone")
	}

	// Set up database
	client, err := database.New(cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to disconnect from MongoDB")
		}
	}()
	db := client.Database(cfg.MongoDatabase)

	// Set up the session store and run its background janitor
	sessions := session.NewMemoryStore(cfg.Session.TTL)
	go sessions.Run()

	// Set up services
	issuer := auth.NewTokenIssuer(cfg.JWTSecret)
	authService := services.NewAuthService(database.NewUserStore(db), sessions, issuer, loc)
	coffeeService := services.NewCoffeeService(database.NewCoffeeStore(db), loc)

	// Set up router
	router := api.NewRouter(cfg, authService, coffeeService, issuer)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	sessions.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
