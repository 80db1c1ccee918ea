package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sysdesignlab/internal/api"
	"sysdesignlab/internal/api/middleware"
	"sysdesignlab/internal/app/evaluator"
	"sysdesignlab/internal/app/service"
	"sysdesignlab/internal/common/security"
	"sysdesignlab/internal/domain/repository"
	"sysdesignlab/internal/platform/cache"
	"sysdesignlab/internal/platform/config"
	"sysdesignlab/internal/platform/database"
	"syscall"
	"time"
)

func main() {
	// 1. Load Configuration
	config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Initialize JWT
	security.InitJWT()
	fmt.Println("JWT initialized.")

	// 3. Initialize Database
	database.Connect()
	defer database.Close()
	fmt.Println("Database connected.")

	// 4. Initialize Redis
	cache.ConnectRedis()
	defer cache.CloseRedis()
	fmt.Println("Redis connected.")

	// 5. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	problemRepo := repository.NewPgProblemRepository(database.DB)
	designRepo := repository.NewPgDesignRepository(database.DB)

	// 6. Pick the evaluator: AI-backed when a key is configured, otherwise
	// the deterministic mock carries every evaluation.
	var primary evaluator.Evaluator
	if config.AppConfig.OpenAIAPIKey != "" {
		primary = evaluator.NewAIEvaluator(evaluator.NewOpenAIGenerator(config.AppConfig.OpenAIAPIKey, config.AppConfig.OpenAIModel))
		log.Printf("AI evaluator enabled (model %s)", config.AppConfig.OpenAIModel)
	} else {
		log.Println("No OPENAI_API_KEY configured, using the mock evaluator")
	}

	// 7. Initialize Services
	authService := service.NewAuthService(userRepo)
	problemService := service.NewProblemService(problemRepo)
	designService := service.NewDesignService(designRepo, problemRepo)
	evaluationService := service.NewEvaluationService(designRepo, problemRepo, primary, config.AppConfig.EvaluationTimeout)
	leaderboardService := service.NewLeaderboardService(designRepo, userRepo)

	// 8. Initialize Router & HTTP Server
	rateLimiter := middleware.NewRateLimiter(cache.RDB)
	router := api.NewRouter(authService, problemService, designService, evaluationService, leaderboardService, rateLimiter)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second, // Evaluation calls can be slow
		IdleTimeout:  120 * time.Second,
	}

	// 9. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
