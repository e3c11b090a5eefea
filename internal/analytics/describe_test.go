package analytics

import (
	"math"
	"testing"
)

func TestDescribeConsumption(t *testing.T) {
	enriched := mustTransform(t, hourlyRaw(seriesStart, alternatingSeries(2*24, 3.0, 1.0)))

	stats, err := DescribeConsumption(enriched)
	if err != nil {
		t.Fatalf("describe failed: %v", err)
	}
	if math.Abs(stats.Total-144.0) > 1e-9 {
		t.Fatalf("total: got %v want 144", stats.Total)
	}
	if math.Abs(stats.Avg-3.0) > 1e-9 || stats.Max != 4.0 || stats.Min != 2.0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if len(stats.AvgByPeriod) != 4 {
		t.Fatalf("expected 4 time periods, got %v", stats.AvgByPeriod)
	}
	for _, period := range []string{PeriodNight, PeriodMorning, PeriodAfternoon, PeriodEvening} {
		if math.Abs(stats.AvgByPeriod[period]-3.0) > 1e-9 {
			t.Fatalf("period %s: got %v want 3.0", period, stats.AvgByPeriod[period])
		}
	}
	// Monday+Tuesday only.
	if stats.AvgWeekend != 0 {
		t.Fatalf("no weekend readings, got avg %v", stats.AvgWeekend)
	}
	if math.Abs(stats.AvgWeekday-3.0) > 1e-9 {
		t.Fatalf("weekday avg: got %v want 3.0", stats.AvgWeekday)
	}
}
