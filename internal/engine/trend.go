package engine

import "math"

// KcalPerKg is the energy equivalent of one kilogram of body mass.
const KcalPerKg = 7700.0

// ProjectedTrend projects weight change over a horizon from the average
// energy deficit, alongside the observed least-squares slope of the raw
// weight samples.
//
// Sign convention: a positive deficit predicts mass loss, so
// ProjectedWeightChangeKg is negative for loss and positive for gain.
type ProjectedTrend struct {
	AvgDeficit              float64 `json:"avgDeficit"`
	ProjectedWeightChangeKg float64 `json:"projectedWeightChangeKg"`
	ObservedSlopeKgPerWeek  float64 `json:"observedSlopeKgPerWeek"`
	HorizonDays             int     `json:"horizonDays"`
	ConfidenceWindowDays    int     `json:"confidenceWindowDays"`
}

// ProjectTrend computes the projection over the aggregation range.
// AvgDeficit is the arithmetic mean of NetDeficit over all days in range.
// ConfidenceWindowDays counts the days with at least one logged entry, a
// data-density proxy for how much history backs the projection.
// Empty input or a non-positive horizon yields a zero-valued result,
// never NaN or Inf.
func ProjectTrend(days []DaySummary, weights []WeightSample, horizonDays int) ProjectedTrend {
	trend := ProjectedTrend{HorizonDays: horizonDays}
	if len(days) == 0 {
		trend.HorizonDays = 0
		return trend
	}

	var sum float64
	for _, d := range days {
		sum += d.NetDeficit
		if d.HasAnyEntry() {
			trend.ConfidenceWindowDays++
		}
	}
	trend.AvgDeficit = sum / float64(len(days))

	if horizonDays > 0 {
		trend.ProjectedWeightChangeKg = -(trend.AvgDeficit * float64(horizonDays)) / KcalPerKg
	} else {
		trend.HorizonDays = 0
	}

	trend.ObservedSlopeKgPerWeek = weightSlopePerWeek(weights)
	return trend
}

// weightSlopePerWeek fits a least-squares line through the weight samples and
// returns its slope in kg per week. Fewer than two samples, or samples all at
// the same instant, yield zero.
func weightSlopePerWeek(weights []WeightSample) float64 {
	n := len(weights)
	if n < 2 {
		return 0
	}

	base := weights[0].At
	var sumX, sumY, sumXY, sumX2 float64
	for _, w := range weights {
		x := w.At.Sub(base).Hours() / 24 // days since first sample
		y := w.Kg
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}

	nf := float64(n)
	denominator := nf*sumX2 - sumX*sumX
	if denominator == 0 {
		return 0
	}

	slopePerDay := (nf*sumXY - sumX*sumY) / denominator
	if math.IsNaN(slopePerDay) || math.IsInf(slopePerDay, 0) {
		return 0
	}
	return slopePerDay * 7
}
