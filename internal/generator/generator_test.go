package generator

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

var genStart = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func TestGenerateShape(t *testing.T) {
	readings := Generate(7, "normal", 1, genStart)
	if len(readings) != 7*24 {
		t.Fatalf("expected %d readings, got %d", 7*24, len(readings))
	}
	for i, r := range readings {
		if r.ConsumptionKWh < 0 {
			t.Fatalf("reading %d negative: %v", i, r.ConsumptionKWh)
		}
	}
	if readings[0].Timestamp != "2024-03-01 00:00:00" {
		t.Fatalf("unexpected first timestamp: %s", readings[0].Timestamp)
	}
	if readings[1].Timestamp != "2024-03-01 01:00:00" {
		t.Fatalf("expected hourly steps, got %s", readings[1].Timestamp)
	}
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	a := Generate(3, "high", 5, genStart)
	b := Generate(3, "high", 5, genStart)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at %d", i)
		}
	}
	c := Generate(3, "high", 6, genStart)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical series")
	}
}

func TestGenerateUnknownProfileFallsBack(t *testing.T) {
	a := Generate(1, "unknown", 9, genStart)
	b := Generate(1, "normal", 9, genStart)
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("unknown profile should use the normal configuration")
		}
	}
}

func TestGenerateProfilesDiffer(t *testing.T) {
	eco := Generate(7, "economical", 3, genStart)
	high := Generate(7, "high", 3, genStart)

	var ecoSum, highSum float64
	for i := range eco {
		ecoSum += eco[i].ConsumptionKWh
		highSum += high[i].ConsumptionKWh
	}
	if ecoSum >= highSum {
		t.Fatalf("economical profile should consume less: %v vs %v", ecoSum, highSum)
	}
}

func TestWriteCSV(t *testing.T) {
	readings := Generate(1, "normal", 2, genStart)
	var buf bytes.Buffer
	if err := WriteCSV(&buf, readings); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "timestamp,consumption_kwh" {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if len(lines) != 1+24 {
		t.Fatalf("expected 25 lines, got %d", len(lines))
	}
}
