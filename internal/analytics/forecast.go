package analytics

import (
	"math"
	"time"

	"github.com/AsmaDaoussi/ecosmart-insights/internal/domain"
	"github.com/AsmaDaoussi/ecosmart-insights/internal/ml"
)

const (
	forecastMinRecords  = 48
	forecastMinTraining = 24
	forecastTrees       = 50
	forecastMaxDepth    = 10
)

// Forecast trains a fresh regression forest on {hour, day_of_week,
// is_weekend, prev_consumption, rolling_avg_24h} -> consumption and
// rolls it forward hour by hour for days*24 steps, feeding each
// prediction back in as the next step's lag feature.
//
// Known limitation, kept on purpose: the rolling-average feature stays
// frozen at the last real observation for the whole rollout instead of
// being recomputed from predictions. Output values depend on it.
func Forecast(enriched []domain.EnrichedReading, days int, pricePerKWh float64, seed int64) (*domain.ForecastResult, error) {
	if days < 1 {
		return nil, &InvalidInputError{Field: "days", Message: "horizon must be at least 1 day"}
	}
	if len(enriched) < forecastMinRecords {
		return nil, &InsufficientDataError{Op: "forecast", Required: forecastMinRecords, Found: len(enriched)}
	}

	var X [][]float64
	var y []float64
	lastIdx := -1
	for i, e := range enriched {
		features := []float64{
			float64(e.Hour),
			float64(e.DayOfWeek),
			float64(e.IsWeekend),
			e.PrevConsumption,
			e.RollingAvg24h,
		}
		valid := true
		for _, f := range features {
			if math.IsNaN(f) {
				valid = false
				break
			}
		}
		if !valid || math.IsNaN(e.ConsumptionKWh) {
			continue
		}
		X = append(X, features)
		y = append(y, e.ConsumptionKWh)
		lastIdx = i
	}
	if len(X) < forecastMinTraining {
		return nil, &InsufficientDataError{Op: "forecast training", Required: forecastMinTraining, Found: len(X)}
	}

	forest := ml.NewRegressionForest(forecastTrees, forecastMaxDepth, seed)
	if err := forest.Fit(X, y); err != nil {
		return nil, &ComputationError{Op: "forecast", Message: err.Error()}
	}

	last := enriched[lastIdx]
	lastTS := last.Timestamp
	prev := last.ConsumptionKWh
	frozenRolling := last.RollingAvg24h

	hourly := make([]domain.ForecastPoint, 0, days*24)
	for day := 0; day < days; day++ {
		for hour := 0; hour < 24; hour++ {
			future := lastTS.Add(time.Duration(day)*24*time.Hour + time.Duration(hour+1)*time.Hour)
			dow := (int(future.Weekday()) + 6) % 7
			weekend := 0.0
			if dow >= 5 {
				weekend = 1.0
			}

			pred := forest.Predict([]float64{
				float64(future.Hour()),
				float64(dow),
				weekend,
				prev,
				frozenRolling,
			})
			if pred < 0 {
				pred = 0
			}
			prev = pred

			hourly = append(hourly, domain.ForecastPoint{
				Timestamp:   future,
				Consumption: pred,
				Day:         day + 1,
				Hour:        hour,
			})
		}
	}

	daily := make([]domain.DailyForecast, 0, days)
	var totalPredicted, totalCost float64
	for day := 0; day < days; day++ {
		var total float64
		for _, p := range hourly[day*24 : (day+1)*24] {
			total += p.Consumption
		}
		cost := total * pricePerKWh
		daily = append(daily, domain.DailyForecast{
			Day:           day + 1,
			Date:          lastTS.AddDate(0, 0, day+1).Format("2006-01-02"),
			TotalKWh:      total,
			AvgKWh:        total / 24,
			EstimatedCost: cost,
		})
		totalPredicted += total
		totalCost += cost
	}

	return &domain.ForecastResult{
		Hourly:         hourly,
		Daily:          daily,
		TotalPredicted: totalPredicted,
		TotalCost:      totalCost,
	}, nil
}
