package engine

import (
	"fmt"
	"strings"
)

// SustainableDeficitLimit is the average daily deficit above which the report
// flags the pace as aggressive when the profile has sustainability mode on.
const SustainableDeficitLimit = 1000.0

// ReportData is the engine's top-level output record.
type ReportData struct {
	Range     RangeAggregate `json:"range"`
	Streaks   StreakState    `json:"streaks"`
	Trend     ProjectedTrend `json:"trend"`
	Narrative string         `json:"narrative"`
}

// ComposeReport assembles rollup, streaks, and projection into a single
// record with a short narrative. Pure function of its inputs: identical
// inputs always produce the identical narrative.
func ComposeReport(agg RangeAggregate, streaks StreakState, trend ProjectedTrend, profile Profile) ReportData {
	return ReportData{
		Range:     agg,
		Streaks:   streaks,
		Trend:     trend,
		Narrative: narrative(agg, streaks, trend, profile),
	}
}

func narrative(agg RangeAggregate, streaks StreakState, trend ProjectedTrend, profile Profile) string {
	if agg.TotalDays == 0 {
		return "No days in range."
	}

	var b strings.Builder

	switch {
	case trend.AvgDeficit > 0:
		fmt.Fprintf(&b, "Over %d %s you averaged a %.0f kcal daily deficit.",
			agg.TotalDays, dayWord(agg.TotalDays), trend.AvgDeficit)
	case trend.AvgDeficit < 0:
		fmt.Fprintf(&b, "Over %d %s you averaged a %.0f kcal daily surplus.",
			agg.TotalDays, dayWord(agg.TotalDays), -trend.AvgDeficit)
	default:
		fmt.Fprintf(&b, "Over %d %s your energy balance was even.",
			agg.TotalDays, dayWord(agg.TotalDays))
	}

	if trend.HorizonDays > 0 {
		fmt.Fprintf(&b, " At this rate you are projected to change by %s kg over the next %d %s.",
			signedKg(trend.ProjectedWeightChangeKg), trend.HorizonDays, dayWord(trend.HorizonDays))
	}

	fmt.Fprintf(&b, " Current streak: %d %s (longest %d).",
		streaks.Current, dayWord(streaks.Current), streaks.Longest)

	if profile.SustainabilityMode && trend.AvgDeficit > SustainableDeficitLimit {
		fmt.Fprintf(&b, " Your average deficit exceeds %.0f kcal/day; consider a gentler pace.",
			SustainableDeficitLimit)
	}

	return b.String()
}

// signedKg renders a weight delta with a leading "+" only when positive;
// losses keep their minus sign and zero stays unsigned.
func signedKg(v float64) string {
	if v > 0 {
		return fmt.Sprintf("+%.1f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

func dayWord(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}
