package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/AsmaDaoussi/ecosmart-insights/internal/domain"
)

// Time-period labels for the four fixed hour buckets. Bucket edges are
// closed-open: [0,6) [6,12) [12,18) [18,24).
const (
	PeriodNight     = "Night"
	PeriodMorning   = "Morning"
	PeriodAfternoon = "Afternoon"
	PeriodEvening   = "Evening"
)

// timestampLayouts are tried in order when parsing uploaded timestamps.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Transform converts a raw consumption series into an enriched one:
// parse and sort timestamps, fill gaps forward then backward, drop
// negative readings, derive calendar fields, lag-1 consumption and the
// trailing 24h rolling mean. The output keeps one record per surviving
// input row, ordered by timestamp.
func Transform(readings []domain.RawReading) ([]domain.EnrichedReading, error) {
	if len(readings) == 0 {
		return nil, &InvalidInputError{Field: "readings", Message: "empty series"}
	}

	type row struct {
		ts    time.Time
		value float64
	}
	rows := make([]row, 0, len(readings))
	for i, r := range readings {
		ts, err := parseTimestamp(r.Timestamp)
		if err != nil {
			return nil, &InvalidInputError{
				Field:   "timestamp",
				Message: fmt.Sprintf("row %d: unparsable value %q", i, r.Timestamp),
			}
		}
		rows = append(rows, row{ts: ts, value: r.ConsumptionKWh})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].ts.Before(rows[j].ts) })

	// Forward-fill then backward-fill missing values, pandas style: a gap
	// borrows the most recent prior value, a leading gap the first later one.
	last := math.NaN()
	for i := range rows {
		if math.IsNaN(rows[i].value) {
			rows[i].value = last
		} else {
			last = rows[i].value
		}
	}
	next := math.NaN()
	for i := len(rows) - 1; i >= 0; i-- {
		if math.IsNaN(rows[i].value) {
			rows[i].value = next
		} else {
			next = rows[i].value
		}
	}

	// Negative readings are sensor errors; rows that stayed NaN had no
	// value anywhere in the series. Both are silently excluded.
	kept := rows[:0]
	for _, r := range rows {
		if !math.IsNaN(r.value) && r.value >= 0 {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return nil, &InvalidInputError{Field: "readings", Message: "no valid readings after filtering"}
	}

	var sum float64
	for _, r := range kept {
		sum += r.value
	}
	seriesMean := sum / float64(len(kept))

	enriched := make([]domain.EnrichedReading, len(kept))
	var windowSum float64
	for i, r := range kept {
		dow := (int(r.ts.Weekday()) + 6) % 7
		weekend := 0
		if dow >= 5 {
			weekend = 1
		}

		prev := seriesMean
		if i > 0 {
			prev = kept[i-1].value
		}

		// Trailing rolling mean, window 24, minimum period 1.
		windowSum += r.value
		if i >= 24 {
			windowSum -= kept[i-24].value
		}
		windowLen := i + 1
		if windowLen > 24 {
			windowLen = 24
		}
		rolling := windowSum / float64(windowLen)

		enriched[i] = domain.EnrichedReading{
			Timestamp:       r.ts,
			ConsumptionKWh:  r.value,
			Hour:            r.ts.Hour(),
			DayOfWeek:       dow,
			DayName:         r.ts.Weekday().String(),
			Month:           int(r.ts.Month()),
			Date:            r.ts.Format("2006-01-02"),
			IsWeekend:       weekend,
			TimePeriod:      timePeriod(r.ts.Hour()),
			PrevConsumption: prev,
			RollingAvg24h:   rolling,
			Deviation:       r.value - rolling,
		}
	}
	return enriched, nil
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("no layout matches %q", s)
}

func timePeriod(hour int) string {
	switch {
	case hour < 6:
		return PeriodNight
	case hour < 12:
		return PeriodMorning
	case hour < 18:
		return PeriodAfternoon
	default:
		return PeriodEvening
	}
}
