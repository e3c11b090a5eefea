package service

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/AsmaDaoussi/ecosmart-insights/internal/analytics"
	"github.com/AsmaDaoussi/ecosmart-insights/internal/config"
	"github.com/AsmaDaoussi/ecosmart-insights/internal/domain"
	"github.com/AsmaDaoussi/ecosmart-insights/internal/ingest"
	"github.com/AsmaDaoussi/ecosmart-insights/internal/storage"
)

type Services struct {
	Store     *storage.Store
	Analytics *AnalyticsService
}

func New(store *storage.Store) *Services {
	return &Services{
		Store: store,
		Analytics: &AnalyticsService{
			store:       store,
			seed:        config.AnalyticsSeed(),
			pricePerKWh: config.PricePerKWh(),
		},
	}
}

// AnalyticsService runs the analysis and prediction pipelines over a
// stored series. Every call builds its own models and intermediate
// state; nothing is shared or reused across requests.
type AnalyticsService struct {
	store       *storage.Store
	seed        int64
	pricePerKWh float64
}

func (s *AnalyticsService) loadSeries(clientPath string) ([]domain.RawReading, error) {
	f, err := s.store.Open(clientPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	readings, err := ingest.ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", clientPath, err)
	}
	return readings, nil
}

// Analyze runs the full analysis chain on a stored series: transform,
// profile classification, anomaly detection, hourly patterns, daily
// aggregates, overall stats and the reference comparison.
func (s *AnalyticsService) Analyze(clientPath string) (*domain.AnalysisDocument, error) {
	readings, err := s.loadSeries(clientPath)
	if err != nil {
		return nil, err
	}
	log.Info().Str("filepath", clientPath).Int("rows", len(readings)).Msg("analysis started")

	enriched, err := analytics.Transform(readings)
	if err != nil {
		return nil, err
	}

	profile, err := analytics.ClassifyProfile(enriched)
	if err != nil {
		return nil, err
	}
	log.Info().Str("profile", profile.Archetype).Msg("profile classified")

	anomalies, err := analytics.DetectAnomalies(enriched, s.seed)
	if err != nil {
		return nil, err
	}
	log.Info().Int("count", anomalies.Count).Msg("anomalies detected")

	patterns, err := analytics.SummarizeHourly(enriched)
	if err != nil {
		return nil, err
	}

	archetype, _ := analytics.ParseArchetype(profile.Archetype)
	comparison, err := analytics.Compare(enriched, archetype)
	if err != nil {
		return nil, err
	}

	stats, err := analytics.DescribeConsumption(enriched)
	if err != nil {
		return nil, err
	}

	return &domain.AnalysisDocument{
		Profile:    profile,
		Anomalies:  anomalies,
		Patterns:   patterns,
		Comparison: comparison,
		Stats:      stats,
		Daily:      analytics.AggregateDaily(enriched),
		Timestamp:  time.Now(),
	}, nil
}

// Predict transforms a stored series and rolls the forecaster forward.
// The horizon is clamped to [1, FORECAST_MAX_DAYS]; zero means the
// configured default.
func (s *AnalyticsService) Predict(clientPath string, days int) (*domain.ForecastResult, error) {
	if days == 0 {
		days = config.ForecastDefaultDays()
	}
	if max := config.ForecastMaxDays(); days > max {
		days = max
	}

	readings, err := s.loadSeries(clientPath)
	if err != nil {
		return nil, err
	}
	log.Info().Str("filepath", clientPath).Int("days", days).Msg("prediction started")

	enriched, err := analytics.Transform(readings)
	if err != nil {
		return nil, err
	}
	result, err := analytics.Forecast(enriched, days, s.pricePerKWh, s.seed)
	if err != nil {
		return nil, err
	}
	log.Info().Float64("total_kwh", result.TotalPredicted).Int("days", days).Msg("prediction complete")
	return result, nil
}
