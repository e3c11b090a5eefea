package analytics

import (
	"errors"
	"math"
	"testing"
)

func alternatingSeries(hours int, center, spread float64) []float64 {
	values := make([]float64, hours)
	for i := range values {
		if i%2 == 0 {
			values[i] = center - spread
		} else {
			values[i] = center + spread
		}
	}
	return values
}

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		name      string
		values    []float64
		archetype Archetype
	}{
		{"constant 3.9 economical", alternatingSeries(3*24, 3.9, 0), ArchetypeEconomical},
		{"constant 4.0 average", alternatingSeries(3*24, 4.0, 0), ArchetypeAverage},
		{"constant 5.9 average before std check", alternatingSeries(3*24, 5.9, 0), ArchetypeAverage},
		{"6.5 with low std high", alternatingSeries(3*24, 6.5, 1.0), ArchetypeHigh},
		{"6.5 with high std irregular", alternatingSeries(3*24, 6.5, 3.0), ArchetypeIrregular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			enriched := mustTransform(t, hourlyRaw(seriesStart, tc.values))
			profile, err := ClassifyProfile(enriched)
			if err != nil {
				t.Fatalf("classify failed: %v", err)
			}
			if profile.Archetype != string(tc.archetype) {
				t.Fatalf("got %s want %s (avg %.2f std %.2f)",
					profile.Archetype, tc.archetype,
					profile.Features.AvgConsumption, profile.Features.StdConsumption)
			}
		})
	}
}

func TestClassifyReferenceAndDifference(t *testing.T) {
	enriched := mustTransform(t, hourlyRaw(seriesStart, alternatingSeries(2*24, 3.9, 0)))
	profile, err := ClassifyProfile(enriched)
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if profile.ReferenceAvg != 3.5 {
		t.Fatalf("expected economical reference 3.5, got %v", profile.ReferenceAvg)
	}
	want := (3.9 - 3.5) / 3.5 * 100
	if math.Abs(profile.DifferencePercent-want) > 1e-9 {
		t.Fatalf("difference percent: got %v want %v", profile.DifferencePercent, want)
	}
	if profile.Description == "" {
		t.Fatal("expected non-empty description")
	}
}

func TestClassifyWeekdayOnlyRatioDegrades(t *testing.T) {
	// Five days starting Monday: no weekend days at all.
	enriched := mustTransform(t, hourlyRaw(seriesStart, alternatingSeries(5*24, 5.0, 0.5)))
	profile, err := ClassifyProfile(enriched)
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if math.Abs(profile.Features.WeekendRatio-1.0) > 1e-9 {
		t.Fatalf("expected ratio 1.0 without weekend days, got %v", profile.Features.WeekendRatio)
	}
}

func TestClassifyPeakAndNightFeatures(t *testing.T) {
	// 2.0 everywhere except evening peak hours at 8.0.
	values := make([]float64, 2*24)
	for i := range values {
		hour := i % 24
		if hour >= 18 && hour <= 21 {
			values[i] = 8.0
		} else {
			values[i] = 2.0
		}
	}
	enriched := mustTransform(t, hourlyRaw(seriesStart, values))
	profile, err := ClassifyProfile(enriched)
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if math.Abs(profile.Features.PeakHoursAvg-8.0) > 1e-9 {
		t.Fatalf("peak hours avg: got %v want 8.0", profile.Features.PeakHoursAvg)
	}
	if math.Abs(profile.Features.NightAvg-2.0) > 1e-9 {
		t.Fatalf("night avg: got %v want 2.0", profile.Features.NightAvg)
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	_, err := ClassifyProfile(nil)
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
}

func TestAggregateDaily(t *testing.T) {
	enriched := mustTransform(t, hourlyRaw(seriesStart, alternatingSeries(2*24, 3.0, 1.0)))
	daily := AggregateDaily(enriched)
	if len(daily) != 2 {
		t.Fatalf("expected 2 days, got %d", len(daily))
	}
	first := daily[0]
	if first.Date != "2024-01-01" {
		t.Fatalf("unexpected first date %s", first.Date)
	}
	if math.Abs(first.TotalKWh-72.0) > 1e-9 {
		t.Fatalf("daily total: got %v want 72", first.TotalKWh)
	}
	if math.Abs(first.AvgKWh-3.0) > 1e-9 || first.MaxKWh != 4.0 || first.MinKWh != 2.0 {
		t.Fatalf("daily aggregate mismatch: %+v", first)
	}
	if first.IsWeekend != 0 {
		t.Fatalf("Monday flagged as weekend")
	}
}
