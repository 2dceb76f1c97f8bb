package engine

import "fmt"

// StreakState holds current and longest adherence streak lengths.
type StreakState struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// QualifyFunc decides whether a day counts toward a streak.
type QualifyFunc func(DaySummary) bool

// QualifyFood counts days with at least one food entry.
func QualifyFood(d DaySummary) bool { return d.HasFoodEntry }

// QualifyFoodAndExercise counts days with both food and exercise logged.
func QualifyFoodAndExercise(d DaySummary) bool {
	return d.HasFoodEntry && d.HasExerciseEntry
}

// QualifyDeficit counts days that ended in an energy deficit.
func QualifyDeficit(d DaySummary) bool { return d.NetDeficit > 0 }

// QualifyRule maps a configured rule name to its predicate.
func QualifyRule(name string) (QualifyFunc, error) {
	switch name {
	case "food":
		return QualifyFood, nil
	case "", "food_and_exercise":
		return QualifyFoodAndExercise, nil
	case "deficit":
		return QualifyDeficit, nil
	}
	return nil, fmt.Errorf("unknown streak rule %q", name)
}

// ComputeStreaks scans a dense, chronologically ordered DaySummary sequence.
// Current is the run of qualifying days ending at the last day in the series
// (zero when that day does not qualify); Longest is the maximum run anywhere.
// An empty series yields {0, 0}.
func ComputeStreaks(days []DaySummary, qualifies QualifyFunc) StreakState {
	var state StreakState
	run := 0

	for _, d := range days {
		if qualifies(d) {
			run++
			if run > state.Longest {
				state.Longest = run
			}
		} else {
			run = 0
		}
	}

	state.Current = run
	return state
}
