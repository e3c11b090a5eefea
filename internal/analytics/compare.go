package analytics

import "github.com/AsmaDaoussi/ecosmart-insights/internal/domain"

// Compare relates the series' mean consumption to the reference average
// of the given archetype. Equality counts as "below".
func Compare(enriched []domain.EnrichedReading, archetype Archetype) (*domain.ComparisonResult, error) {
	if len(enriched) == 0 {
		return nil, &InvalidInputError{Field: "enriched", Message: "empty series"}
	}
	ref, ok := referenceProfiles[archetype]
	if !ok {
		return nil, &InvalidInputError{Field: "archetype", Message: "unknown archetype " + string(archetype)}
	}

	var sum float64
	for _, e := range enriched {
		sum += e.ConsumptionKWh
	}
	avg := sum / float64(len(enriched))

	status := "below"
	if avg > ref.AvgKWh {
		status = "above"
	}
	return &domain.ComparisonResult{
		YourAverage:       avg,
		ReferenceAverage:  ref.AvgKWh,
		Difference:        avg - ref.AvgKWh,
		DifferencePercent: (avg - ref.AvgKWh) / ref.AvgKWh * 100,
		Status:            status,
	}, nil
}
