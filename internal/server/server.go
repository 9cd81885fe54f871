package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/mansoorceksport/gymlogger/internal/config"
	"github.com/mansoorceksport/gymlogger/internal/domain"
	"github.com/mansoorceksport/gymlogger/internal/handler"
	"github.com/mansoorceksport/gymlogger/internal/repository"
	"github.com/mansoorceksport/gymlogger/internal/service"
	"github.com/mansoorceksport/gymlogger/internal/telemetry"
)

// AppDependencies holds the dependencies required to start the application
type AppDependencies struct {
	Config *config.Config
	// KVStore is the persistence substrate (Redis in production, in-memory
	// in tests or when no Redis is configured).
	KVStore domain.KeyValueStore
}

// NewApp creates and configures the Fiber application with the given dependencies
func NewApp(deps AppDependencies) *fiber.App {
	// Initialize repositories
	workoutRepo := repository.NewKVWorkoutRepository(deps.KVStore)

	// Backup sharing is optional; without an S3 endpoint exports stay local.
	var uploader service.BackupUploader
	if deps.Config.S3.Endpoint != "" {
		s3Repo, err := repository.NewS3BackupRepository(context.Background(), deps.Config.S3)
		if err != nil {
			log.Printf("Warning: Failed to initialize S3 backup repository: %v", err)
		} else {
			uploader = s3Repo
		}
	}

	// Initialize services
	historyService := service.NewHistoryService(workoutRepo)
	backupService := service.NewBackupService(workoutRepo, deps.Config.Backup.Dir, uploader)

	// Initialize handlers
	workoutHandler := handler.NewWorkoutHandler(workoutRepo, historyService)
	historyHandler := handler.NewHistoryHandler(historyService)
	backupHandler := handler.NewBackupHandler(backupService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Gym Logger API",
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))
	if deps.Config.OTEL.Enabled {
		app.Use(telemetry.FiberMiddleware())
	}

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "gymlogger",
		})
	})

	// API v1 routes
	v1 := app.Group("/v1")

	// Daily workouts
	workouts := v1.Group("/workouts")
	workouts.Get("/", workoutHandler.ListWorkouts)
	workouts.Get("/dates", workoutHandler.ListDates)
	workouts.Get("/:date", workoutHandler.GetWorkout)
	workouts.Put("/:date", workoutHandler.SaveWorkout)
	workouts.Get("/:date/last", workoutHandler.LastWorkout)
	workouts.Get("/:date/progress", workoutHandler.Progress)
	workouts.Post("/:date/copy", workoutHandler.CopyWorkout)
	workouts.Post("/:date/exercises", workoutHandler.SaveExercise)
	workouts.Delete("/:date/exercises/:id", workoutHandler.RemoveExercise)

	// Custom exercise library
	exercises := v1.Group("/exercises")
	exercises.Get("/", workoutHandler.ListCustomExercises)
	exercises.Post("/", workoutHandler.CreateCustomExercise)

	// Cross-session history
	history := v1.Group("/history")
	history.Get("/sets", historyHandler.Sets)
	history.Get("/pr-check", historyHandler.CheckPR)
	history.Get("/estimate-1rm", historyHandler.Estimate1RM)

	// Backup / restore
	backup := v1.Group("/backup")
	backup.Post("/export", backupHandler.Export)
	backup.Post("/restore/plan", backupHandler.PlanRestore)
	backup.Post("/restore/commit", backupHandler.CommitRestore)

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	log.Printf("Error: %v", err)
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
