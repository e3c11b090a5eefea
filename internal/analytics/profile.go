package analytics

import (
	"math"
	"sort"

	"github.com/AsmaDaoussi/ecosmart-insights/internal/domain"
)

// Archetype is one of the four fixed consumption-profile categories.
type Archetype string

const (
	ArchetypeEconomical Archetype = "Economical"
	ArchetypeAverage    Archetype = "Average"
	ArchetypeHigh       Archetype = "High"
	ArchetypeIrregular  Archetype = "Irregular"
)

// referenceProfile carries the fixed reference average (kWh/h, French
// household baselines) and description for an archetype.
type referenceProfile struct {
	AvgKWh      float64
	Description string
}

var referenceProfiles = map[Archetype]referenceProfile{
	ArchetypeEconomical: {AvgKWh: 3.5, Description: "Consumption well below the national average"},
	ArchetypeAverage:    {AvgKWh: 5.0, Description: "Consumption around the national average"},
	ArchetypeHigh:       {AvgKWh: 7.0, Description: "Consumption above the national average"},
	ArchetypeIrregular:  {AvgKWh: 6.0, Description: "Unpredictable consumption pattern"},
}

// ParseArchetype maps a profile name to its Archetype, false when unknown.
func ParseArchetype(name string) (Archetype, bool) {
	a := Archetype(name)
	_, ok := referenceProfiles[a]
	return a, ok
}

// AggregateDaily groups the enriched series by calendar date and
// summarizes each day. Std is the sample standard deviation and NaN for
// single-reading days.
func AggregateDaily(enriched []domain.EnrichedReading) []domain.DailyAggregate {
	byDate := make(map[string][]float64)
	weekend := make(map[string]int)
	for _, e := range enriched {
		byDate[e.Date] = append(byDate[e.Date], e.ConsumptionKWh)
		if _, ok := weekend[e.Date]; !ok {
			weekend[e.Date] = e.IsWeekend
		}
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	out := make([]domain.DailyAggregate, 0, len(dates))
	for _, d := range dates {
		values := byDate[d]
		var total, max, min float64
		max = math.Inf(-1)
		min = math.Inf(1)
		for _, v := range values {
			total += v
			if v > max {
				max = v
			}
			if v < min {
				min = v
			}
		}
		out = append(out, domain.DailyAggregate{
			Date:      d,
			TotalKWh:  total,
			AvgKWh:    total / float64(len(values)),
			MaxKWh:    max,
			MinKWh:    min,
			StdKWh:    sampleStd(values),
			IsWeekend: weekend[d],
		})
	}
	return out
}

// ClassifyProfile assigns one of the four archetypes from daily
// aggregate statistics using an ordered rule table, first match wins:
//
//	avg < 4.0            -> Economical
//	avg < 6.0            -> Average
//	else, daily std < 2.0 -> High (elevated but regular)
//	else                  -> Irregular
func ClassifyProfile(enriched []domain.EnrichedReading) (*domain.ProfileAssignment, error) {
	daily := AggregateDaily(enriched)
	if len(daily) == 0 {
		return nil, &InvalidInputError{Field: "enriched", Message: "no dates to aggregate"}
	}

	dailyMeans := make([]float64, len(daily))
	dailyStds := make([]float64, len(daily))
	var weekendMeans, weekdayMeans []float64
	for i, d := range daily {
		dailyMeans[i] = d.AvgKWh
		dailyStds[i] = d.StdKWh
		if d.IsWeekend == 1 {
			weekendMeans = append(weekendMeans, d.AvgKWh)
		} else {
			weekdayMeans = append(weekdayMeans, d.AvgKWh)
		}
	}

	avgConsumption := mean(dailyMeans)
	stdConsumption := nanMean(dailyStds)
	if math.IsNaN(stdConsumption) {
		stdConsumption = 0
	}

	// When the series covers only weekdays (or only weekends) the missing
	// side borrows the overall average so the ratio degrades to 1.0.
	weekendAvg := mean(weekendMeans)
	weekdayAvg := mean(weekdayMeans)
	if math.IsNaN(weekendAvg) {
		weekendAvg = avgConsumption
	}
	if math.IsNaN(weekdayAvg) {
		weekdayAvg = avgConsumption
	}
	weekendRatio := 1.0
	if weekdayAvg > 0 {
		weekendRatio = weekendAvg / weekdayAvg
	}

	var peakValues, nightValues []float64
	for _, e := range enriched {
		if e.Hour >= 18 && e.Hour <= 21 {
			peakValues = append(peakValues, e.ConsumptionKWh)
		}
		if e.Hour <= 5 {
			nightValues = append(nightValues, e.ConsumptionKWh)
		}
	}
	peakAvg := mean(peakValues)
	if math.IsNaN(peakAvg) {
		peakAvg = 0
	}
	nightAvg := mean(nightValues)
	if math.IsNaN(nightAvg) {
		nightAvg = 0
	}

	var archetype Archetype
	switch {
	case avgConsumption < 4.0:
		archetype = ArchetypeEconomical
	case avgConsumption < 6.0:
		archetype = ArchetypeAverage
	case stdConsumption < 2.0:
		archetype = ArchetypeHigh
	default:
		archetype = ArchetypeIrregular
	}

	ref := referenceProfiles[archetype]
	return &domain.ProfileAssignment{
		Archetype:         string(archetype),
		Description:       ref.Description,
		YourAvg:           avgConsumption,
		ReferenceAvg:      ref.AvgKWh,
		DifferencePercent: (avgConsumption - ref.AvgKWh) / ref.AvgKWh * 100,
		Features: domain.ProfileFeatures{
			AvgConsumption: avgConsumption,
			StdConsumption: stdConsumption,
			WeekendRatio:   weekendRatio,
			PeakHoursAvg:   peakAvg,
			NightAvg:       nightAvg,
		},
	}, nil
}
