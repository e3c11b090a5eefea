package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AsmaDaoussi/ecosmart-insights/internal/config"
	httpHandlers "github.com/AsmaDaoussi/ecosmart-insights/internal/http"
	"github.com/AsmaDaoussi/ecosmart-insights/internal/service"
	"github.com/AsmaDaoussi/ecosmart-insights/internal/storage"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	store, err := storage.New(config.UploadDir())
	if err != nil {
		log.Fatal().Err(err).Msg("upload dir init failed")
	}

	svcs := service.New(store)
	app := fiber.New(fiber.Config{
		BodyLimit: config.MaxUploadMB() << 20,
	})

	httpHandlers.Register(app, svcs)

	addr := config.APIAddr()
	log.Info().Str("addr", addr).Str("uploads", store.Dir()).Msg("api listening")
	log.Fatal().Err(app.Listen(addr)).Msg("server exit")
}
