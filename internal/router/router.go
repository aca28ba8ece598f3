package router

import (
	"github.com/gofiber/fiber/v2"

	"extractor-web/internal/config"
	"extractor-web/internal/handler"
	"extractor-web/internal/repository"
	"extractor-web/internal/service"
)

func Setup(app *fiber.App, cfg *config.Config) {
	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"app":    cfg.AppName,
		})
	})

	// Web routes (HTML)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("index", fiber.Map{
			"Title": cfg.AppName,
		})
	})

	// API routes (JSON)
	sessionRepo := repository.NewSessionRepository(cfg.SessionTTL)
	extractService := service.NewExtractService()
	extractHandler := handler.NewExtractHandler(sessionRepo, extractService, cfg)

	api := app.Group("/api/v1")
	extracts := api.Group("/extracts")
	extracts.Post("/", extractHandler.UploadWorkbooks)
	extracts.Get("/:code", extractHandler.GetSession)
	extracts.Post("/:code/export", extractHandler.ExportExtract)
}
