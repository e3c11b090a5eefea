package analytics

import (
	"math"
	"sort"

	"github.com/AsmaDaoussi/ecosmart-insights/internal/domain"
	"github.com/AsmaDaoussi/ecosmart-insights/internal/ml"
)

const (
	anomalyTrees     = 100
	anomalySubsample = 256
	contamination    = 0.05
	maxReported      = 10
)

// DetectAnomalies scores every reading with an isolation forest over the
// standardized (consumption, hour, day_of_week) triple and flags the
// most isolated ~5%. The flagged records are ranked by absolute
// deviation from the hour-of-day mean and truncated to the top 10;
// Count still reports every flagged record. The scaler and forest live
// only for this call.
func DetectAnomalies(enriched []domain.EnrichedReading, seed int64) (*domain.AnomalyReport, error) {
	if len(enriched) < 2 {
		return nil, &InsufficientDataError{Op: "anomaly detection", Required: 2, Found: len(enriched)}
	}

	features := make([][]float64, len(enriched))
	for i, e := range enriched {
		features[i] = []float64{e.ConsumptionKWh, float64(e.Hour), float64(e.DayOfWeek)}
	}
	scaled := ml.FitStandardizer(features).Transform(features)

	forest := ml.NewIsolationForest(anomalyTrees, anomalySubsample, seed)
	if err := forest.Fit(scaled); err != nil {
		return nil, &ComputationError{Op: "anomaly detection", Message: err.Error()}
	}
	scores := forest.Scores(scaled)

	// The anomaly threshold is the (1 - contamination) quantile of the
	// batch scores, so ties can push the flagged count past 5%.
	sorted := append([]float64(nil), scores...)
	sort.Float64s(sorted)
	cut := int(math.Floor(float64(len(sorted)) * (1 - contamination)))
	if cut >= len(sorted) {
		cut = len(sorted) - 1
	}
	threshold := sorted[cut]

	hourSum := make([]float64, 24)
	hourCount := make([]int, 24)
	for _, e := range enriched {
		hourSum[e.Hour] += e.ConsumptionKWh
		hourCount[e.Hour]++
	}

	var records []domain.AnomalyRecord
	for i, e := range enriched {
		if scores[i] < threshold {
			continue
		}
		expected := hourSum[e.Hour] / float64(hourCount[e.Hour])
		if expected == 0 {
			return nil, &ComputationError{
				Op:      "anomaly detection",
				Message: "zero mean consumption for hour, deviation undefined",
			}
		}
		records = append(records, domain.AnomalyRecord{
			Timestamp:        e.Timestamp,
			Consumption:      e.ConsumptionKWh,
			Expected:         expected,
			DeviationPercent: (e.ConsumptionKWh - expected) / expected * 100,
			Hour:             e.Hour,
			DayName:          e.DayName,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return math.Abs(records[i].DeviationPercent) > math.Abs(records[j].DeviationPercent)
	})

	count := len(records)
	if len(records) > maxReported {
		records = records[:maxReported]
	}
	return &domain.AnomalyReport{Count: count, Anomalies: records}, nil
}
