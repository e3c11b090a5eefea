// Package ml holds the small, request-scoped models the analytics
// pipeline trains and discards per call: a z-score standardizer, an
// isolation forest for outlier scoring, and a bootstrap-aggregated
// regression forest for the consumption forecaster. All randomness is
// driven by caller-supplied seeds so results are reproducible.
package ml

import "math"

// Standardizer rescales features to zero mean and unit variance using
// statistics fitted on one batch.
type Standardizer struct {
	Mean []float64
	Std  []float64
}

// FitStandardizer computes per-column mean and population std. Columns
// with zero variance keep std 1 so transforms stay finite.
func FitStandardizer(X [][]float64) *Standardizer {
	if len(X) == 0 {
		return &Standardizer{}
	}
	cols := len(X[0])
	s := &Standardizer{
		Mean: make([]float64, cols),
		Std:  make([]float64, cols),
	}
	n := float64(len(X))
	for _, row := range X {
		for j, v := range row {
			s.Mean[j] += v
		}
	}
	for j := range s.Mean {
		s.Mean[j] /= n
	}
	for _, row := range X {
		for j, v := range row {
			d := v - s.Mean[j]
			s.Std[j] += d * d
		}
	}
	for j := range s.Std {
		s.Std[j] = math.Sqrt(s.Std[j] / n)
		if s.Std[j] < 1e-10 {
			s.Std[j] = 1
		}
	}
	return s
}

// Transform returns the standardized copy of X.
func (s *Standardizer) Transform(X [][]float64) [][]float64 {
	out := make([][]float64, len(X))
	for i, row := range X {
		scaled := make([]float64, len(row))
		for j, v := range row {
			scaled[j] = (v - s.Mean[j]) / s.Std[j]
		}
		out[i] = scaled
	}
	return out
}
