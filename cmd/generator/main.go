// Command generator writes one synthetic consumption CSV per profile
// into the upload directory, for demos and local testing.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AsmaDaoussi/ecosmart-insights/internal/config"
	"github.com/AsmaDaoussi/ecosmart-insights/internal/generator"
	"github.com/AsmaDaoussi/ecosmart-insights/internal/storage"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	days := flag.Int("days", 30, "number of days to generate per profile")
	flag.Parse()

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	store, err := storage.New(config.UploadDir())
	if err != nil {
		log.Fatal().Err(err).Msg("upload dir init failed")
	}

	start := time.Now().AddDate(0, 0, -*days).Truncate(time.Hour)
	for profile := range generator.Profiles {
		readings := generator.Generate(*days, profile, time.Now().UnixNano(), start)

		var buf bytes.Buffer
		if err := generator.WriteCSV(&buf, readings); err != nil {
			log.Fatal().Err(err).Str("profile", profile).Msg("csv encode failed")
		}
		name := fmt.Sprintf("sample_%s_%ddays.csv", profile, *days)
		path, err := store.SaveAs(name, buf.Bytes())
		if err != nil {
			log.Fatal().Err(err).Str("profile", profile).Msg("write failed")
		}
		log.Info().Str("filepath", path).Int("rows", len(readings)).Msg("sample generated")
	}
	log.Info().Msg("generation done")
}
