package http

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/AsmaDaoussi/ecosmart-insights/internal/analytics"
	"github.com/AsmaDaoussi/ecosmart-insights/internal/config"
	"github.com/AsmaDaoussi/ecosmart-insights/internal/generator"
	"github.com/AsmaDaoussi/ecosmart-insights/internal/ingest"
	"github.com/AsmaDaoussi/ecosmart-insights/internal/recommend"
	"github.com/AsmaDaoussi/ecosmart-insights/internal/service"
)

func Register(app *fiber.App, svcs *service.Services) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "EcoSmart Insights API",
			"version": "1.0.0",
			"status":  "running",
		})
	})

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy", "timestamp": time.Now().Format(time.RFC3339)})
	})

	app.Post("/api/upload", func(c *fiber.Ctx) error {
		header, err := c.FormFile("file")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "no file provided"})
		}
		if strings.ToLower(filepath.Ext(header.Filename)) != ".csv" {
			return c.Status(400).JSON(fiber.Map{"error": "unsupported file format, use CSV"})
		}
		if header.Size > int64(config.MaxUploadMB())<<20 {
			return c.Status(400).JSON(fiber.Map{"error": "file too large"})
		}

		f, err := header.Open()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}

		readings, err := ingest.ParseCSV(bytes.NewReader(data))
		if err != nil {
			return fail(c, err)
		}

		path, err := svcs.Store.Save(header.Filename, data)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		log.Info().Str("filepath", path).Int("rows", len(readings)).Msg("file uploaded")

		return c.JSON(fiber.Map{
			"success":  true,
			"message":  "file uploaded successfully",
			"filename": header.Filename,
			"filepath": path,
			"stats":    ingest.Stats(readings),
		})
	})

	app.Post("/api/analyze", func(c *fiber.Ctx) error {
		var body struct {
			Filepath string `json:"filepath"`
		}
		if err := c.BodyParser(&body); err != nil || body.Filepath == "" {
			return c.Status(400).JSON(fiber.Map{"error": "filepath is required"})
		}

		doc, err := svcs.Analytics.Analyze(body.Filepath)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{
			"success":         true,
			"cluster":         doc.Profile,
			"anomalies":       doc.Anomalies,
			"hourly_patterns": doc.Patterns,
			"comparison":      doc.Comparison,
			"stats":           doc.Stats,
			"daily":           doc.Daily,
			"timestamp":       doc.Timestamp.Format(time.RFC3339),
		})
	})

	app.Post("/api/predict", func(c *fiber.Ctx) error {
		var body struct {
			Filepath string `json:"filepath"`
			Days     int    `json:"days"`
		}
		if err := c.BodyParser(&body); err != nil || body.Filepath == "" {
			return c.Status(400).JSON(fiber.Map{"error": "filepath is required"})
		}
		if body.Days < 0 {
			return c.Status(400).JSON(fiber.Map{"error": "days must be positive"})
		}

		predictions, err := svcs.Analytics.Predict(body.Filepath, body.Days)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{
			"success":     true,
			"predictions": predictions,
			"timestamp":   time.Now().Format(time.RFC3339),
		})
	})

	app.Post("/api/recommendations", func(c *fiber.Ctx) error {
		var body struct {
			ProfileName string `json:"profile_name"`
		}
		if err := c.BodyParser(&body); err != nil || body.ProfileName == "" {
			return c.Status(400).JSON(fiber.Map{"error": "profile_name is required"})
		}
		archetype, ok := analytics.ParseArchetype(body.ProfileName)
		if !ok {
			return c.Status(400).JSON(fiber.Map{"error": "unknown profile: " + body.ProfileName})
		}
		return c.JSON(fiber.Map{
			"success":         true,
			"recommendations": recommend.For(archetype),
			"timestamp":       time.Now().Format(time.RFC3339),
		})
	})

	app.Get("/api/generate-sample", func(c *fiber.Ctx) error {
		days := c.QueryInt("days", 30)
		if days < 1 {
			return c.Status(400).JSON(fiber.Map{"error": "days must be at least 1"})
		}
		profile := c.Query("profile", "normal")
		if _, ok := generator.Profiles[profile]; !ok {
			return c.Status(400).JSON(fiber.Map{"error": "unknown profile: " + profile})
		}

		start := time.Now().AddDate(0, 0, -days).Truncate(time.Hour)
		readings := generator.Generate(days, profile, time.Now().UnixNano(), start)

		var buf bytes.Buffer
		if err := generator.WriteCSV(&buf, readings); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		path, err := svcs.Store.SaveAs("sample_data_"+profile+".csv", buf.Bytes())
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		log.Info().Str("filepath", path).Int("days", days).Str("profile", profile).Msg("sample data generated")

		return c.JSON(fiber.Map{
			"success":  true,
			"message":  "sample data generated",
			"filename": filepath.Base(path),
			"filepath": path,
			"rows":     len(readings),
		})
	})

	app.Get("/uploads/:filename", func(c *fiber.Ctx) error {
		path, err := svcs.Store.Resolve(c.Params("filename"))
		if err != nil {
			return c.Status(404).JSON(fiber.Map{"error": "file not found"})
		}
		return c.Download(path)
	})
}

// fail maps pipeline error kinds to HTTP statuses: bad input 400, too
// little data 422, missing files 404, anything else 500.
func fail(c *fiber.Ctx, err error) error {
	var invalid *analytics.InvalidInputError
	var insufficient *analytics.InsufficientDataError
	switch {
	case errors.Is(err, os.ErrNotExist):
		return c.Status(404).JSON(fiber.Map{"error": "file not found"})
	case errors.As(err, &invalid):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &insufficient):
		return c.Status(422).JSON(fiber.Map{
			"error":            err.Error(),
			"minimum_required": insufficient.Required,
			"found":            insufficient.Found,
		})
	default:
		log.Error().Err(err).Msg("request failed")
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
}
