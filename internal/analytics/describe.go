package analytics

import (
	"math"

	"github.com/AsmaDaoussi/ecosmart-insights/internal/domain"
)

// DescribeConsumption computes the overall statistics block of the
// analysis document: totals, extremes, and mean consumption per time
// period and weekend/weekday split.
func DescribeConsumption(enriched []domain.EnrichedReading) (*domain.ConsumptionStats, error) {
	if len(enriched) == 0 {
		return nil, &InvalidInputError{Field: "enriched", Message: "empty series"}
	}

	values := make([]float64, len(enriched))
	byPeriod := make(map[string][]float64, 4)
	var weekend, weekday []float64
	for i, e := range enriched {
		values[i] = e.ConsumptionKWh
		byPeriod[e.TimePeriod] = append(byPeriod[e.TimePeriod], e.ConsumptionKWh)
		if e.IsWeekend == 1 {
			weekend = append(weekend, e.ConsumptionKWh)
		} else {
			weekday = append(weekday, e.ConsumptionKWh)
		}
	}

	var total float64
	max := math.Inf(-1)
	min := math.Inf(1)
	for _, v := range values {
		total += v
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
	}

	avgByPeriod := make(map[string]float64, len(byPeriod))
	for period, vs := range byPeriod {
		avgByPeriod[period] = mean(vs)
	}

	std := sampleStd(values)
	if math.IsNaN(std) {
		std = 0
	}
	avgWeekend := mean(weekend)
	if math.IsNaN(avgWeekend) {
		avgWeekend = 0
	}
	avgWeekday := mean(weekday)
	if math.IsNaN(avgWeekday) {
		avgWeekday = 0
	}

	return &domain.ConsumptionStats{
		Total:       total,
		Avg:         total / float64(len(values)),
		Max:         max,
		Min:         min,
		Std:         std,
		AvgByPeriod: avgByPeriod,
		AvgWeekend:  avgWeekend,
		AvgWeekday:  avgWeekday,
	}, nil
}
