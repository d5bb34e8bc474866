package FiberConfig

import (
	"fmt"
	"os"

	"Hearth/Controllers"
	"Hearth/ResetJob"
	"Hearth/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, runner *ResetJob.Runner) {
	resetController := Controllers.NewResetController(db, runner)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Reset job ops routes
	api := app.Group("/api")
	reset := api.Group("/reset", middleware.VerifyAdmin())
	reset.Post("/run", resetController.TriggerRun)
	reset.Get("/runs", resetController.ListRuns)
	reset.Get("/runs/today", resetController.TodayRun)
}

func FiberConfig(db *gorm.DB, runner *ResetJob.Runner) {
	fmt.Println("Server Up...")
	app := fiber.New()
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Admin-Key, X-Requested-With",
		MaxAge:       300,
	}))

	SetupRoutes(app, db, runner)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	app.Listen(":" + port)
}
