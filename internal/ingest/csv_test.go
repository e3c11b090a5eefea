package ingest

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/AsmaDaoussi/ecosmart-insights/internal/analytics"
)

func TestParseCSV(t *testing.T) {
	csv := `timestamp,consumption_kwh
2024-01-01 00:00:00,1.5
2024-01-01 01:00:00,2.25
2024-01-01 02:00:00,0.75
`
	readings, err := ParseCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(readings) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(readings))
	}
	if readings[0].Timestamp != "2024-01-01 00:00:00" || readings[0].ConsumptionKWh != 1.5 {
		t.Fatalf("unexpected first row: %+v", readings[0])
	}
}

func TestParseCSVHeaderCaseAndExtraColumns(t *testing.T) {
	csv := `Timestamp,meter_id,Consumption_KWh
2024-01-01 00:00:00,m1,2.0
`
	readings, err := ParseCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if readings[0].ConsumptionKWh != 2.0 {
		t.Fatalf("unexpected value: %v", readings[0].ConsumptionKWh)
	}
}

func TestParseCSVMissingColumn(t *testing.T) {
	csv := `timestamp,power_kw
2024-01-01 00:00:00,2.0
`
	_, err := ParseCSV(strings.NewReader(csv))
	var invalid *analytics.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
	if !strings.Contains(err.Error(), "consumption_kwh") {
		t.Fatalf("error should name the missing column: %v", err)
	}
}

func TestParseCSVEmptyCellsBecomeNaN(t *testing.T) {
	csv := `timestamp,consumption_kwh
2024-01-01 00:00:00,
2024-01-01 01:00:00,not-a-number
2024-01-01 02:00:00,3.0
`
	readings, err := ParseCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !math.IsNaN(readings[0].ConsumptionKWh) || !math.IsNaN(readings[1].ConsumptionKWh) {
		t.Fatalf("expected NaN for empty/invalid cells: %+v", readings)
	}
	if readings[2].ConsumptionKWh != 3.0 {
		t.Fatalf("valid cell mangled: %v", readings[2].ConsumptionKWh)
	}
}

func TestParseCSVEmptyFile(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""))
	var invalid *analytics.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError for empty file, got %v", err)
	}

	_, err = ParseCSV(strings.NewReader("timestamp,consumption_kwh\n"))
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError for header-only file, got %v", err)
	}
}

func TestStats(t *testing.T) {
	csv := `timestamp,consumption_kwh
2024-01-01 00:00:00,1.0
2024-01-01 01:00:00,
2024-01-01 02:00:00,5.0
`
	readings, err := ParseCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	stats := Stats(readings)
	if stats.Rows != 3 {
		t.Fatalf("rows: got %d", stats.Rows)
	}
	if stats.StartDate != "2024-01-01 00:00:00" || stats.EndDate != "2024-01-01 02:00:00" {
		t.Fatalf("date bounds: %+v", stats)
	}
	// NaN cells are excluded from value statistics.
	if stats.Total != 6.0 || stats.AvgConsumption != 3.0 || stats.MinConsumption != 1.0 || stats.MaxConsumption != 5.0 {
		t.Fatalf("value stats: %+v", stats)
	}
}
