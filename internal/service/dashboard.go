package service

import (
	"time"

	"slim/internal/engine"
	"slim/internal/store"
)

// DashboardData contains all data needed for the dashboard.
type DashboardData struct {
	Today         engine.DaySummary     `json:"today"`
	Week          engine.WeekSeries     `json:"week"`
	Streaks       engine.StreakState    `json:"streaks"`
	RecentWeights []engine.WeightSample `json:"recentWeights"`
}

// GetDashboardData computes the dashboard payload anchored at now: today's
// summary, the current week so far, and streaks over the recent history
// window. Works pre-onboarding; missing profile data falls back inside the
// engine.
func (q *QueryService) GetDashboardData(now time.Time) (*DashboardData, error) {
	profile, err := q.profile()
	if err != nil {
		return nil, err
	}

	today := engine.DayOf(now, q.loc)
	from := today.AddDate(0, 0, -(DashboardStreakDays - 1))

	events, err := q.loadEvents(from, today)
	if err != nil {
		return nil, err
	}

	days, err := q.aggregate(profile, events, from, today)
	if err != nil {
		return nil, err
	}

	data := &DashboardData{
		Today:   days[len(days)-1],
		Streaks: engine.ComputeStreaks(days, q.qualifies),
	}

	// Current week so far: the trailing partial week of the rollup.
	weeks := engine.RollupWeeks(days, q.weekStart)
	if len(weeks) > 0 {
		data.Week = weeks[len(weeks)-1]
	}

	recent, err := q.store.ListRecentEvents(store.EventWeight, RecentWeightLimit)
	if err != nil {
		return nil, err
	}
	data.RecentWeights = engine.ExtractWeightSamples(recent)

	return data, nil
}
