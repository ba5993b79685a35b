package routes

import (
	"net/http"
	"time"

	"crewly/handlers"
	"crewly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterWorkerRoutes registers worker management endpoints.
func RegisterWorkerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/workers")
	{
		api.POST("/register", hb.Worker.RegisterWorkerHandler)
		api.GET("", hb.Worker.ListWorkersHandler)
		api.GET("/id/:id", hb.Worker.GetWorkerHandler)
		api.PUT("/update/:id", hb.Worker.UpdateWorkerHandler)
		api.DELETE("/delete/:id", hb.Worker.DeleteWorkerHandler)

		// Schedule-affecting writes.
		api.PUT("/working-hours/:id", hb.Worker.SetWorkingHoursHandler)
		api.PUT("/exceptions/:id", hb.Worker.SetExceptionHandler)
		api.DELETE("/exceptions/:id/:date", hb.Worker.ClearExceptionHandler)
	}
}

// RegisterJobRoutes registers job endpoints. Creates and reschedules are
// conflict-checked before they commit.
func RegisterJobRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/jobs")
	{
		api.POST("", hb.Job.CreateJobHandler)
		api.GET("", hb.Job.ListJobsByDateHandler)
		api.GET("/id/:id", hb.Job.GetJobHandler)
		api.PUT("/update/:id", hb.Job.UpdateJobHandler)
		api.DELETE("/delete/:id", hb.Job.DeleteJobHandler)
	}
}

// RegisterScheduleRoutes sets up the endpoints for the scheduling engine.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	scheduleGroup := r.Group("/api/schedule")
	{
		scheduleGroup.GET("/timeline", hb.Schedule.TimelineHandler)
		scheduleGroup.GET("/availability/:workerId", hb.Schedule.AvailabilityHandler)
		scheduleGroup.POST("/validate", hb.Schedule.ValidateHandler)
		scheduleGroup.GET("/utilization", hb.Schedule.UtilizationHandler)
		scheduleGroup.GET("/recommendations/:jobId", hb.Schedule.RecommendationsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterWorkerRoutes(r, hb)
	RegisterJobRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterHealthRoute(r)
}
