// File: crewly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crewly/config"
	"crewly/cron"
	"crewly/database"
	jobRepoPkg "crewly/database/repository/job"
	recommendationRepoPkg "crewly/database/repository/recommendation"
	workerRepoPkg "crewly/database/repository/worker"
	"crewly/handlers"
	"crewly/middleware"
	"crewly/routes"
	"crewly/services/dispatch"
	"crewly/services/tasks"
	"crewly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAvailabilityCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	workerRepo := workerRepoPkg.NewMongoWorkerRepo()
	jobRepo := jobRepoPkg.NewMongoJobRepo()
	recommendationRepo := recommendationRepoPkg.NewMongoRecommendationRepo()

	if err := workerRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure worker indexes: %v", err)
	}
	if err := jobRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure job indexes: %v", err)
	}

	// services.
	dispatchService := &dispatch.DefaultDispatchService{
		Workers: workerRepo,
		Jobs:    jobRepo,
		Recs:    recommendationRepo,
		Cache:   utils.GetAvailabilityCacheClient(),
	}

	reminderScheduler := tasks.NewReminderScheduler()
	defer reminderScheduler.Close()
	cron.InitReminderWorker()

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Worker:   handlers.NewWorkerHandler(workerRepo, dispatchService),
		Job:      handlers.NewJobHandler(jobRepo, dispatchService, reminderScheduler),
		Schedule: handlers.NewScheduleHandler(dispatchService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAvailabilityCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
