package api

import (
	"net/http"
	"time"

	"ioi_scoring/internal/api/handler"
	"ioi_scoring/internal/app/service"
	"ioi_scoring/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	logger *httplog.Logger,
	authService *service.AuthService,
	leaderboardService *service.LeaderboardService,
	scoringService *service.ScoringService,
	configService *service.ProblemConfigService,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Puts verified claims in the request context; Authenticator enforces them
	// only where a route requires it.
	r.Use(jwtauth.Verifier(security.TokenAuth))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/api/v1", func(v1 chi.Router) {
		authHandler := handler.NewAuthHandler(authService)
		authHandler.RegisterRoutes(v1)

		leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService)
		v1.Route("/contests/{contestID}/leaderboard", leaderboardHandler.RegisterRoutes)

		submissionHandler := handler.NewSubmissionHandler(scoringService)
		v1.Route("/submissions", submissionHandler.RegisterRoutes)

		configHandler := handler.NewScoringConfigHandler(configService)
		v1.Route("/problems", configHandler.RegisterRoutes)
	})

	return r
}
