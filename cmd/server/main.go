package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ioi_scoring/internal/api"
	"ioi_scoring/internal/app/service"
	"ioi_scoring/internal/app/worker"
	"ioi_scoring/internal/common/security"
	"ioi_scoring/internal/domain/repository"
	"ioi_scoring/internal/platform/config"
	"ioi_scoring/internal/platform/database"
	"ioi_scoring/internal/platform/kv"

	"github.com/go-chi/httplog/v2"
)

func main() {
	config.Load()

	logger := httplog.NewLogger("ioi-scoring", httplog.Options{
		LogLevel:       slog.LevelInfo,
		Concise:        true,
		RequestHeaders: false,
	})
	slog.SetDefault(logger.Logger)

	security.InitJWT()

	database.Connect()
	defer database.Close()

	kv.ConnectRedis()
	defer kv.CloseRedis()

	userRepo := repository.NewPgUserRepository(database.DB)
	contestRepo := repository.NewPgContestRepository(database.DB)
	submissionRepo := repository.NewPgSubmissionRepository(database.DB)
	configRepo := repository.NewRedisProblemConfigRepository(kv.RDB)

	authService := service.NewAuthService(userRepo)
	rescoreService := service.NewRescoreService(kv.RDB, submissionRepo)
	configService := service.NewProblemConfigService(configRepo, rescoreService)
	scoringService := service.NewScoringService(submissionRepo, configService)
	leaderboardService := service.NewLeaderboardService(contestRepo, submissionRepo, configService)

	rescoreWorker := worker.NewRescoreWorker(kv.RDB, scoringService)
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	go rescoreWorker.Start(workerCtx)

	router := api.NewRouter(logger, authService, leaderboardService, scoringService, configService)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	<-stop

	slog.Info("shutting down")
	workerCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "err", err)
		os.Exit(1)
	}
	slog.Info("server and worker stopped")
}
