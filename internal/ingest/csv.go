// Package ingest parses uploaded consumption CSVs into raw readings for
// the analytics pipeline. It validates column presence only; timestamp
// parsing belongs to the transform.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/AsmaDaoussi/ecosmart-insights/internal/analytics"
	"github.com/AsmaDaoussi/ecosmart-insights/internal/domain"
)

const (
	columnTimestamp   = "timestamp"
	columnConsumption = "consumption_kwh"
)

// ParseCSV reads a consumption CSV with at least the timestamp and
// consumption_kwh columns. Empty or non-numeric consumption cells come
// back as NaN so the transform can impute them.
func ParseCSV(r io.Reader) ([]domain.RawReading, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &analytics.InvalidInputError{Field: "file", Message: "empty file"}
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}
	tsCol, tsOK := columns[columnTimestamp]
	kwhCol, kwhOK := columns[columnConsumption]
	if !tsOK || !kwhOK {
		return nil, &analytics.InvalidInputError{
			Field: "columns",
			Message: fmt.Sprintf("required columns [%s %s], found [%s]",
				columnTimestamp, columnConsumption, strings.Join(header, " ")),
		}
	}

	var readings []domain.RawReading
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		if len(record) <= tsCol || len(record) <= kwhCol {
			continue
		}

		value := math.NaN()
		if cell := strings.TrimSpace(record[kwhCol]); cell != "" {
			if parsed, err := strconv.ParseFloat(cell, 64); err == nil {
				value = parsed
			}
		}
		readings = append(readings, domain.RawReading{
			Timestamp:      strings.TrimSpace(record[tsCol]),
			ConsumptionKWh: value,
		})
	}
	if len(readings) == 0 {
		return nil, &analytics.InvalidInputError{Field: "file", Message: "no data rows"}
	}
	return readings, nil
}

// Stats summarizes a freshly parsed series for the upload response.
// Date bounds compare the raw timestamp strings, which orders correctly
// for the ISO-style formats the transform accepts.
func Stats(readings []domain.RawReading) *domain.UploadStats {
	stats := &domain.UploadStats{
		Rows:           len(readings),
		MaxConsumption: math.Inf(-1),
		MinConsumption: math.Inf(1),
	}
	var sum float64
	var n int
	for _, r := range readings {
		if stats.StartDate == "" || r.Timestamp < stats.StartDate {
			stats.StartDate = r.Timestamp
		}
		if r.Timestamp > stats.EndDate {
			stats.EndDate = r.Timestamp
		}
		if math.IsNaN(r.ConsumptionKWh) {
			continue
		}
		sum += r.ConsumptionKWh
		n++
		if r.ConsumptionKWh > stats.MaxConsumption {
			stats.MaxConsumption = r.ConsumptionKWh
		}
		if r.ConsumptionKWh < stats.MinConsumption {
			stats.MinConsumption = r.ConsumptionKWh
		}
	}
	if n > 0 {
		stats.AvgConsumption = sum / float64(n)
		stats.Total = sum
	} else {
		stats.MaxConsumption = 0
		stats.MinConsumption = 0
	}
	return stats
}
