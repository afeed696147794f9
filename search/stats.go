package search

import "sort"

// quartile returns the p-th quantile (0<=p<=1) of a slice of samples using
// linear interpolation between closest ranks, the standard method for the
// robust outlier rule in §4.6 step 3c ("Q3(I) + 3*IQR(I)").
func quartile(samples []float64, p float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p * float64(len(sorted)-1)
	lo := int(pos)
	hi := lo + 1
	if hi >= len(sorted) {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// outlierThreshold returns Q3(samples) + 3*IQR(samples), the robust
// stopping-point rule that auto-calibrates the adaptive threshold from the
// observed merge-cost distribution (§4.6 step 3c).
func outlierThreshold(samples []float64) float64 {
	q1 := quartile(samples, 0.25)
	q3 := quartile(samples, 0.75)
	iqr := q3 - q1
	return q3 + 3*iqr
}
