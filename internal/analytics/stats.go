package analytics

import "math"

func mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStd is the n-1 normalized standard deviation. It returns NaN for
// fewer than two values, matching how the daily aggregation treats
// single-reading days.
func sampleStd(values []float64) float64 {
	if len(values) < 2 {
		return math.NaN()
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

// populationStd is the n-normalized standard deviation.
func populationStd(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}

// nanMean averages the non-NaN values, NaN when none remain.
func nanMean(values []float64) float64 {
	var sum float64
	var n int
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}
