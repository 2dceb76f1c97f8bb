package engine

import (
	"sort"
	"time"

	"slim/internal/store"
)

// DaySummary is one calendar day's aggregated energy-balance record.
// Dates are ISO-8601 strings and all numeric fields are float64 so the
// structure crosses serialization boundaries losslessly.
type DaySummary struct {
	Date                  string  `json:"date"`
	CaloriesConsumed      float64 `json:"caloriesConsumed"`
	CaloriesBurntExercise float64 `json:"caloriesBurntExercise"`
	TDEE                  float64 `json:"tdee"`
	NetDeficit            float64 `json:"netDeficit"`
	WaterGlasses          float64 `json:"waterGlasses"`
	HasFoodEntry          bool    `json:"hasFoodEntry"`
	HasExerciseEntry      bool    `json:"hasExerciseEntry"`
}

// HasAnyEntry reports whether any food, exercise, or water was logged.
func (d DaySummary) HasAnyEntry() bool {
	return d.HasFoodEntry || d.HasExerciseEntry || d.WaterGlasses > 0
}

// WeightSample is a dated body-weight measurement.
type WeightSample struct {
	At time.Time `json:"at"`
	Kg float64   `json:"kg"`
}

// ExtractWeightSamples pulls weight events out of a raw event slice, sorted
// chronologically. Non-positive weights are dropped as malformed.
func ExtractWeightSamples(events []store.Event) []WeightSample {
	samples := make([]WeightSample, 0)
	for _, e := range events {
		if e.Kind == store.EventWeight && e.Value > 0 {
			samples = append(samples, WeightSample{At: e.LoggedAt, Kg: e.Value})
		}
	}
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].At.Before(samples[j].At)
	})
	return samples
}

// Aggregate folds raw events into exactly one DaySummary per calendar day in
// [from, to] inclusive, bucketed in loc. Days without events are zero-filled
// with a real TDEE so downstream consumers never special-case gaps.
//
// Events outside the range are ignored, except weight samples before the
// range, which seed the effective-weight resolution: each day's TDEE uses the
// most recent weight sample at or before that day, falling back to the
// profile's baseline weight.
//
// Malformed negative magnitudes are clamped to zero rather than failing the
// whole computation; clamped reports how many were hit so callers can log it.
// The input slice is never mutated.
func Aggregate(events []store.Event, profile Profile, from, to time.Time, loc *time.Location) (summaries []DaySummary, clamped int, err error) {
	days, err := EnumerateDays(from, to, loc)
	if err != nil {
		return nil, 0, err
	}

	startKey := days[0].Format(DayFormat)
	endKey := days[len(days)-1].Format(DayFormat)

	type bucket struct {
		consumed    float64
		burnt       float64
		water       float64
		hasFood     bool
		hasExercise bool
	}
	buckets := make(map[string]*bucket, len(days))

	weights := ExtractWeightSamples(events)

	for _, e := range events {
		key := DayKey(e.LoggedAt, loc)
		if key < startKey || key > endKey {
			continue
		}

		b := buckets[key]
		if b == nil {
			b = &bucket{}
			buckets[key] = b
		}

		value := e.Value
		if value < 0 {
			value = 0
			clamped++
		}

		switch e.Kind {
		case store.EventFood:
			b.consumed += value
			b.hasFood = true
		case store.EventExercise:
			b.burnt += value
			b.hasExercise = true
		case store.EventWater:
			b.water += value
		}
	}

	summaries = make([]DaySummary, 0, len(days))
	for _, day := range days {
		key := day.Format(DayFormat)
		d := DaySummary{Date: key}
		if b := buckets[key]; b != nil {
			d.CaloriesConsumed = b.consumed
			d.CaloriesBurntExercise = b.burnt
			d.WaterGlasses = b.water
			d.HasFoodEntry = b.hasFood
			d.HasExerciseEntry = b.hasExercise
		}

		weight := effectiveWeight(weights, day, loc, profile.WeightKg)
		d.TDEE = TDEE(profile, weight)
		d.NetDeficit = d.TDEE + d.CaloriesBurntExercise - d.CaloriesConsumed

		summaries = append(summaries, d)
	}

	return summaries, clamped, nil
}

// effectiveWeight resolves the weight in force on day: the most recent sample
// at or before the day's end, else the baseline.
func effectiveWeight(weights []WeightSample, day time.Time, loc *time.Location, baseline float64) float64 {
	dayKey := day.Format(DayFormat)
	weight := baseline
	for _, w := range weights {
		if DayKey(w.At, loc) > dayKey {
			break
		}
		weight = w.Kg
	}
	return weight
}
