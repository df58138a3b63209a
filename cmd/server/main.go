package main

import (
	"os"

	httpadapter "resume-maker/internal/adapter/http"
	"resume-maker/internal/config"
	"resume-maker/internal/usecase"
	"resume-maker/pkg/ai"
	infra "resume-maker/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration error")
	}

	gemini, err := ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("gemini client setup failed")
	}
	enhancer := ai.NewEnhancer(gemini, log)

	renderer := infra.NewChromedpRenderer(cfg.ConvertTimeout)

	store, err := usecase.NewFileStore(cfg.StorageDir, cfg.MaxStoredFiles, usecase.NewRegistry(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("storage setup failed")
	}

	processor := usecase.NewProcessor(enhancer, renderer, store, log)
	h := httpadapter.NewHandler(processor, store, log)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: func() string { return uuid.NewString() }}))
	app.Use(cors.New())
	app.Static("/", "./public")

	app.Post("/api/generate-resume", limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: cfg.RateLimitWindow,
	}), h.GenerateResume)
	app.Get("/download-resume/:filename", h.DownloadResume)

	log.Info().Str("port", cfg.Port).Msg("Resume Builder running")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
