package main

import (
	fiber "github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/campusgig/campusgig/internal/api/v1/handlers"
	"github.com/campusgig/campusgig/internal/api/v1/middleware"
	"github.com/campusgig/campusgig/internal/api/v1/routes"
	"github.com/campusgig/campusgig/internal/api/v1/services"
	"github.com/campusgig/campusgig/internal/config"
	"github.com/campusgig/campusgig/internal/db"
	"github.com/campusgig/campusgig/internal/db/repos"
	"github.com/campusgig/campusgig/internal/logger"
	"github.com/campusgig/campusgig/internal/types"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	_ = godotenv.Load()

	logger.Initialize()

	database, err := db.New(db.Options{
		Host:     config.GetEnv("DB_HOST", ""),
		User:     config.GetEnv("DB_USER", ""),
		Password: config.GetEnv("DB_PASSWORD", ""),
		DBName:   config.GetEnv("DB_NAME", ""),
		Port:     config.GetEnvInt("DB_PORT", 0),
	})
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	jwtSecret := []byte(config.GetEnv("JWT_SECRET", ""))
	if len(jwtSecret) == 0 {
		logger.Warn("JWT_SECRET is not set, using an insecure development secret")
		jwtSecret = []byte("campusgig-dev-secret")
	}

	// Repositories
	userRepo := repos.NewUserRepository(database)
	jobRepo := repos.NewJobRepository(database)
	applicationRepo := repos.NewApplicationRepository(database)
	ratingRepo := repos.NewRatingRepository(database)
	notificationRepo := repos.NewNotificationRepository(database)
	messageRepo := repos.NewMessageRepository(database)

	// Services
	notificationService := services.NewNotificationService(notificationRepo)
	userService := services.NewUserService(userRepo, jwtSecret)
	jobService := services.NewJobService(jobRepo, notificationService)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo, userRepo, notificationService)
	ratingService := services.NewRatingService(ratingRepo, jobRepo, notificationService)
	messageService := services.NewMessageService(messageRepo, userRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})
	app.Use(middleware.Logger())

	routes.RegisterRoutes(app,
		handlers.NewUserHandler(userService),
		handlers.NewJobHandler(jobService),
		handlers.NewApplicationHandler(applicationService),
		handlers.NewRatingHandler(ratingService),
		handlers.NewMessageHandler(messageService),
		handlers.NewNotificationHandler(notificationService),
		jwtSecret,
	)

	port := config.GetEnv("PORT", routes.DefaultPort)
	logger.Infof("Starting server on port %s", port)
	logger.Fatal(app.Listen(":" + port))
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(types.ErrorResponse{
		Message: err.Error(),
	})
}
