package service

import (
	"time"

	"slim/internal/engine"
)

// Report is the full periodic-report payload: the day series and week series
// for charts plus the composed ReportData record.
type Report struct {
	Days  []engine.DaySummary `json:"days"`
	Weeks []engine.WeekSeries `json:"weeks"`
	Data  engine.ReportData   `json:"data"`
}

// GetReport aggregates [from, to] and composes the report. The range is
// inclusive of both endpoints' calendar days; an inverted range is rejected
// with engine.ErrInvalidRange.
func (q *QueryService) GetReport(from, to time.Time) (*Report, error) {
	profile, err := q.profile()
	if err != nil {
		return nil, err
	}

	events, err := q.loadEvents(from, to)
	if err != nil {
		return nil, err
	}

	days, err := q.aggregate(profile, events, from, to)
	if err != nil {
		return nil, err
	}

	weights := engine.ExtractWeightSamples(events)
	agg := engine.RollupRange(days)
	streaks := engine.ComputeStreaks(days, q.qualifies)
	trend := engine.ProjectTrend(days, weights, q.horizon)

	return &Report{
		Days:  days,
		Weeks: engine.RollupWeeks(days, q.weekStart),
		Data:  engine.ComposeReport(agg, streaks, trend, profile),
	}, nil
}
