package engine

import "time"

// WeekSeries is one week-aligned slice of a DaySummary sequence. Weeks at the
// edges of a range keep however many days they contain; consumers must handle
// variable-length weeks explicitly.
type WeekSeries struct {
	WeekStart             string       `json:"weekStart"`
	Days                  []DaySummary `json:"days"`
	CaloriesConsumed      float64      `json:"caloriesConsumed"`
	CaloriesBurntExercise float64      `json:"caloriesBurntExercise"`
	NetDeficit            float64      `json:"netDeficit"`
	WaterGlasses          float64      `json:"waterGlasses"`
	AvgDeficit            float64      `json:"avgDeficit"`
}

// RangeAggregate flattens a DaySummary sequence into range totals and means.
//
// Denominator conventions: energy means (AvgDeficit, AvgTDEE, AvgWaterPerDay)
// divide by all calendar days in range; AvgConsumedPerLoggedDay divides by
// days with at least one food entry. Both day counts are exposed so consumers
// can recompute either way.
type RangeAggregate struct {
	StartDate               string  `json:"startDate"`
	EndDate                 string  `json:"endDate"`
	TotalDays               int     `json:"totalDays"`
	DaysWithFood            int     `json:"daysWithFood"`
	DaysWithExercise        int     `json:"daysWithExercise"`
	TotalConsumed           float64 `json:"totalConsumed"`
	TotalBurntExercise      float64 `json:"totalBurntExercise"`
	TotalTDEE               float64 `json:"totalTdee"`
	TotalDeficit            float64 `json:"totalDeficit"`
	TotalWaterGlasses       float64 `json:"totalWaterGlasses"`
	AvgDeficit              float64 `json:"avgDeficit"`
	AvgTDEE                 float64 `json:"avgTdee"`
	AvgWaterPerDay          float64 `json:"avgWaterPerDay"`
	AvgConsumedPerLoggedDay float64 `json:"avgConsumedPerLoggedDay"`
}

// RollupWeeks groups an ordered DaySummary sequence into week-aligned series.
// Grouping is by calendar week with the configured week-start day; partial
// weeks at the range edges are included as-is, never padded or dropped.
func RollupWeeks(days []DaySummary, ws WeekStart) []WeekSeries {
	weeks := make([]WeekSeries, 0)
	var cur *WeekSeries

	for _, d := range days {
		day, err := time.Parse(DayFormat, d.Date)
		if err != nil {
			continue
		}
		weekKey := StartOfWeek(day, ws).Format(DayFormat)

		if cur == nil || cur.WeekStart != weekKey {
			weeks = append(weeks, WeekSeries{WeekStart: weekKey})
			cur = &weeks[len(weeks)-1]
		}

		cur.Days = append(cur.Days, d)
		cur.CaloriesConsumed += d.CaloriesConsumed
		cur.CaloriesBurntExercise += d.CaloriesBurntExercise
		cur.NetDeficit += d.NetDeficit
		cur.WaterGlasses += d.WaterGlasses
	}

	for i := range weeks {
		if n := len(weeks[i].Days); n > 0 {
			weeks[i].AvgDeficit = weeks[i].NetDeficit / float64(n)
		}
	}
	return weeks
}

// RollupRange flattens an ordered DaySummary sequence into a RangeAggregate.
// An empty sequence yields a zero-valued aggregate, not an error.
func RollupRange(days []DaySummary) RangeAggregate {
	agg := RangeAggregate{TotalDays: len(days)}
	if len(days) == 0 {
		return agg
	}

	agg.StartDate = days[0].Date
	agg.EndDate = days[len(days)-1].Date

	for _, d := range days {
		agg.TotalConsumed += d.CaloriesConsumed
		agg.TotalBurntExercise += d.CaloriesBurntExercise
		agg.TotalTDEE += d.TDEE
		agg.TotalDeficit += d.NetDeficit
		agg.TotalWaterGlasses += d.WaterGlasses
		if d.HasFoodEntry {
			agg.DaysWithFood++
		}
		if d.HasExerciseEntry {
			agg.DaysWithExercise++
		}
	}

	total := float64(agg.TotalDays)
	agg.AvgDeficit = agg.TotalDeficit / total
	agg.AvgTDEE = agg.TotalTDEE / total
	agg.AvgWaterPerDay = agg.TotalWaterGlasses / total
	if agg.DaysWithFood > 0 {
		agg.AvgConsumedPerLoggedDay = agg.TotalConsumed / float64(agg.DaysWithFood)
	}
	return agg
}
