package analytics

import (
	"sort"

	"github.com/AsmaDaoussi/ecosmart-insights/internal/domain"
)

// SummarizeHourly groups the series by hour-of-day and computes mean,
// population std and max per hour. All 24 hours appear in the output;
// hours with no readings keep Count == 0 and zeroed stats rather than
// synthesized values. Peak hours are the three highest means, ties
// resolved toward the earlier hour.
func SummarizeHourly(enriched []domain.EnrichedReading) (*domain.HourlySummary, error) {
	if len(enriched) == 0 {
		return nil, &InvalidInputError{Field: "enriched", Message: "empty series"}
	}

	byHour := make([][]float64, 24)
	for _, e := range enriched {
		byHour[e.Hour] = append(byHour[e.Hour], e.ConsumptionKWh)
	}

	data := make([]domain.HourlyPattern, 24)
	for h := 0; h < 24; h++ {
		p := domain.HourlyPattern{Hour: h, Count: len(byHour[h])}
		if p.Count > 0 {
			p.Mean = mean(byHour[h])
			p.Std = populationStd(byHour[h])
			var max float64
			for _, v := range byHour[h] {
				if v > max {
					max = v
				}
			}
			p.Max = max
		}
		data[h] = p
	}

	// Rank only hours that actually occur; stable sort keeps hour order
	// for equal means.
	ranked := make([]domain.HourlyPattern, 0, 24)
	for _, p := range data {
		if p.Count > 0 {
			ranked = append(ranked, p)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Mean > ranked[j].Mean })
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}

	peak := make([]int, 0, 3)
	isPeak := make(map[int]bool, 3)
	for _, p := range ranked {
		peak = append(peak, p.Hour)
		isPeak[p.Hour] = true
	}
	offPeak := make([]int, 0, 24-len(peak))
	for h := 0; h < 24; h++ {
		if !isPeak[h] {
			offPeak = append(offPeak, h)
		}
	}

	return &domain.HourlySummary{
		HourlyData:   data,
		PeakHours:    peak,
		OffPeakHours: offPeak,
	}, nil
}
