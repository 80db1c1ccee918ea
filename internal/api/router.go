package api

import (
	"net/http"
	"sysdesignlab/internal/api/handler"
	"sysdesignlab/internal/api/middleware"
	"sysdesignlab/internal/app/service"
	"sysdesignlab/internal/common/security"
	"sysdesignlab/internal/platform/config"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	authService *service.AuthService,
	problemService *service.ProblemService,
	designService *service.DesignService,
	evaluationService *service.EvaluationService,
	leaderboardService *service.LeaderboardService,
	rateLimiter *middleware.RateLimiter,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger) // Chi's logger
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// JWT Auth Middleware Setup
	// Verifies a bearer token when present and puts claims in context; the
	// Authenticator middleware on protected groups enforces it.
	r.Use(jwtauth.Verifier(security.TokenAuth))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	cfg := config.AppConfig

	// API v1 Routes
	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(rateLimiter.Limit("general", cfg.GeneralRateLimit, cfg.GeneralRateWindow))

		// Auth routes (public, tighter limit)
		authHandler := handler.NewAuthHandler(authService)
		v1.Route("/auth", func(authRouter chi.Router) {
			authRouter.Use(rateLimiter.Limit("auth", cfg.AuthRateLimit, cfg.AuthRateWindow))
			authHandler.RegisterRoutes(authRouter)
		})

		// Problem routes (authenticated; role gates pro problems)
		problemHandler := handler.NewProblemHandler(problemService)
		v1.Route("/problems", problemHandler.RegisterRoutes)

		// Design routes (authenticated)
		designHandler := handler.NewDesignHandler(designService)
		v1.Route("/designs", designHandler.RegisterRoutes)

		// Evaluation routes (authenticated, evaluation limit)
		evaluationHandler := handler.NewEvaluationHandler(evaluationService)
		v1.Route("/evaluations", func(evalRouter chi.Router) {
			evalRouter.Use(middleware.Authenticator)
			evalRouter.Use(rateLimiter.Limit("evaluation", cfg.EvaluationRateLimit, cfg.EvaluationRateWindow))
			evaluationHandler.RegisterRoutes(evalRouter)
		})

		// Leaderboard routes (list is public, /me requires auth)
		leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService)
		v1.Route("/leaderboard", leaderboardHandler.RegisterRoutes)
	})

	return r
}
