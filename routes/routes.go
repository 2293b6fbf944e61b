package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"regboard/config"
	"regboard/controllers"
)

// SetupRoutes wires every API route. Admin routes are separated by path
// only; no authorization is enforced on them.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, logger *logrus.Logger) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg, logger)
	app.Post("/api/submit-form", authController.Register)
	app.Post("/api/sign-in", authController.SignIn)

	// Task routes
	taskController := controllers.NewTaskController(db, cfg, logger)
	app.Post("/api/admin/upload-task", taskController.UploadTask)
	app.Get("/api/tasks", taskController.ListTasks)

	// Submission routes
	submissionController := controllers.NewSubmissionController(db, cfg, logger)
	app.Post("/api/submit-task", submissionController.SubmitTask)
	app.Post("/api/admin/update-points", submissionController.UpdatePoints)

	// Leaderboard routes
	leaderboardController := controllers.NewLeaderboardController(db, cfg, logger)
	app.Get("/api/leaderboard", leaderboardController.GetLeaderboard)

	// User routes
	userController := controllers.NewUserController(db, cfg, logger)
	app.Get("/api/profile", userController.GetProfile)
}
