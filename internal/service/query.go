package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"slim/internal/config"
	"slim/internal/engine"
	"slim/internal/store"
)

// QueryService provides read-only analytics queries over the event store.
// Profile and events are loaded per call and handed to the engine as values;
// the service holds no derived state between calls.
type QueryService struct {
	store     *store.Store
	loc       *time.Location
	weekStart engine.WeekStart
	qualifies engine.QualifyFunc
	horizon   int
}

// NewQueryService builds a query service from the store and configuration.
func NewQueryService(st *store.Store, cfg *config.Config) (*QueryService, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("resolving time zone: %w", err)
	}
	ws, err := engine.ParseWeekStart(cfg.WeekStart)
	if err != nil {
		return nil, err
	}
	qualifies, err := engine.QualifyRule(cfg.StreakRule)
	if err != nil {
		return nil, err
	}
	horizon := cfg.ProjectionHorizonDays
	if horizon <= 0 {
		horizon = DefaultHorizonDays
	}

	return &QueryService{
		store:     st,
		loc:       loc,
		weekStart: ws,
		qualifies: qualifies,
		horizon:   horizon,
	}, nil
}

// profile loads the stored profile, mapping a missing row to the zero
// profile so the engine's fallback TDEE path applies pre-onboarding.
func (q *QueryService) profile() (engine.Profile, error) {
	stored, err := q.store.GetProfile()
	if errors.Is(err, store.ErrNoProfile) {
		return engine.Profile{}, nil
	}
	if err != nil {
		return engine.Profile{}, err
	}
	return engine.Profile{
		Sex:                engine.Sex(stored.Sex),
		Age:                stored.Age,
		HeightCM:           stored.HeightCM,
		WeightKg:           stored.WeightKg,
		ActivityLevel:      stored.ActivityLevel,
		SustainabilityMode: stored.SustainabilityMode,
	}, nil
}

// loadEvents fetches all events relevant to aggregating [from, to]: the range
// itself plus a look-back window so the effective-weight rule sees the last
// sample logged before the range starts.
func (q *QueryService) loadEvents(from, to time.Time) ([]store.Event, error) {
	lookback := engine.DayOf(from, q.loc).AddDate(0, 0, -WeightLookbackDays)
	end := engine.DayOf(to, q.loc).AddDate(0, 0, 1)
	return q.store.ListEventsInRange(lookback, end)
}

// aggregate runs the daily aggregator for [from, to], logging (but not
// failing on) clamped malformed magnitudes.
func (q *QueryService) aggregate(profile engine.Profile, events []store.Event, from, to time.Time) ([]engine.DaySummary, error) {
	days, clamped, err := engine.Aggregate(events, profile, from, to, q.loc)
	if err != nil {
		return nil, err
	}
	if clamped > 0 {
		log.Printf("aggregate: clamped %d negative magnitudes to zero", clamped)
	}
	return days, nil
}
