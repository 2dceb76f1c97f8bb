package engine

import (
	"math"
	"reflect"
	"testing"
	"time"

	"slim/internal/store"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func event(kind store.EventKind, at time.Time, value float64) store.Event {
	return store.Event{Kind: kind, LoggedAt: at, Value: value}
}

func TestAggregate(t *testing.T) {
	d1 := day(2025, time.March, 10)

	tests := []struct {
		name    string
		events  []store.Event
		profile Profile
		from    time.Time
		to      time.Time
		checkFn func(t *testing.T, days []DaySummary, clamped int)
	}{
		{
			name: "two food entries on a single day",
			events: []store.Event{
				event(store.EventFood, d1.Add(8*time.Hour), 300),
				event(store.EventFood, d1.Add(13*time.Hour), 200),
			},
			// Incomplete profile falls back to the 2000 kcal TDEE constant
			profile: Profile{},
			from:    d1,
			to:      d1,
			checkFn: func(t *testing.T, days []DaySummary, clamped int) {
				if len(days) != 1 {
					t.Fatalf("len(days) = %d, want 1", len(days))
				}
				d := days[0]
				if d.CaloriesConsumed != 500 {
					t.Errorf("CaloriesConsumed = %v, want 500", d.CaloriesConsumed)
				}
				if d.CaloriesBurntExercise != 0 {
					t.Errorf("CaloriesBurntExercise = %v, want 0", d.CaloriesBurntExercise)
				}
				if d.TDEE != 2000 {
					t.Errorf("TDEE = %v, want 2000", d.TDEE)
				}
				if d.NetDeficit != 1500 {
					t.Errorf("NetDeficit = %v, want 1500", d.NetDeficit)
				}
				if !d.HasFoodEntry || d.HasExerciseEntry {
					t.Errorf("flags = food %v exercise %v, want true false", d.HasFoodEntry, d.HasExerciseEntry)
				}
			},
		},
		{
			name:    "empty events over seven days are zero-filled",
			events:  nil,
			profile: Profile{},
			from:    d1,
			to:      d1.AddDate(0, 0, 6),
			checkFn: func(t *testing.T, days []DaySummary, clamped int) {
				if len(days) != 7 {
					t.Fatalf("len(days) = %d, want 7", len(days))
				}
				for i, d := range days {
					if d.CaloriesConsumed != 0 || d.CaloriesBurntExercise != 0 || d.WaterGlasses != 0 {
						t.Errorf("day %d not zero-filled: %+v", i, d)
					}
					if d.TDEE != 2000 {
						t.Errorf("day %d TDEE = %v, want fallback 2000", i, d.TDEE)
					}
					if d.HasFoodEntry || d.HasExerciseEntry {
						t.Errorf("day %d has entry flags set", i)
					}
				}
			},
		},
		{
			name: "negative magnitudes clamped to zero",
			events: []store.Event{
				event(store.EventFood, d1.Add(time.Hour), -300),
				event(store.EventExercise, d1.Add(2*time.Hour), -50),
				event(store.EventFood, d1.Add(3*time.Hour), 400),
			},
			profile: Profile{},
			from:    d1,
			to:      d1,
			checkFn: func(t *testing.T, days []DaySummary, clamped int) {
				if clamped != 2 {
					t.Errorf("clamped = %d, want 2", clamped)
				}
				if days[0].CaloriesConsumed != 400 {
					t.Errorf("CaloriesConsumed = %v, want 400", days[0].CaloriesConsumed)
				}
				// Clamped rows still mark the day as logged
				if !days[0].HasExerciseEntry {
					t.Error("HasExerciseEntry should be true for a clamped exercise row")
				}
			},
		},
		{
			name: "events outside the range are ignored",
			events: []store.Event{
				event(store.EventFood, d1.AddDate(0, 0, -1), 800),
				event(store.EventFood, d1.Add(time.Hour), 600),
				event(store.EventFood, d1.AddDate(0, 0, 1), 900),
			},
			profile: Profile{},
			from:    d1,
			to:      d1,
			checkFn: func(t *testing.T, days []DaySummary, clamped int) {
				if days[0].CaloriesConsumed != 600 {
					t.Errorf("CaloriesConsumed = %v, want 600", days[0].CaloriesConsumed)
				}
			},
		},
		{
			name: "water sums per day",
			events: []store.Event{
				event(store.EventWater, d1.Add(time.Hour), 2),
				event(store.EventWater, d1.Add(5*time.Hour), 3),
			},
			profile: Profile{},
			from:    d1,
			to:      d1,
			checkFn: func(t *testing.T, days []DaySummary, clamped int) {
				if days[0].WaterGlasses != 5 {
					t.Errorf("WaterGlasses = %v, want 5", days[0].WaterGlasses)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, clamped, err := Aggregate(tt.events, tt.profile, tt.from, tt.to, time.UTC)
			if err != nil {
				t.Fatalf("Aggregate returned error: %v", err)
			}
			tt.checkFn(t, days, clamped)
		})
	}
}

func TestAggregateInvalidRange(t *testing.T) {
	d1 := day(2025, time.March, 10)
	_, _, err := Aggregate(nil, Profile{}, d1, d1.AddDate(0, 0, -1), time.UTC)
	if err != ErrInvalidRange {
		t.Fatalf("err = %v, want ErrInvalidRange", err)
	}
}

// Every range must produce exactly one summary per calendar day, ordered
// ascending with no gaps or duplicates.
func TestAggregateDense(t *testing.T) {
	from := day(2025, time.January, 28)
	to := day(2025, time.March, 3) // spans a month boundary and February

	days, _, err := Aggregate(nil, Profile{}, from, to, time.UTC)
	if err != nil {
		t.Fatal(err)
	}

	want := 35 // Jan 28 .. Mar 3 inclusive, non-leap February
	if len(days) != want {
		t.Fatalf("len(days) = %d, want %d", len(days), want)
	}

	prev := ""
	cursor := from
	for i, d := range days {
		if d.Date <= prev {
			t.Fatalf("day %d (%s) not strictly after %s", i, d.Date, prev)
		}
		if got := cursor.Format(DayFormat); d.Date != got {
			t.Fatalf("day %d = %s, want %s", i, d.Date, got)
		}
		prev = d.Date
		cursor = cursor.AddDate(0, 0, 1)
	}
}

// netDeficit must satisfy the energy-balance identity exactly.
func TestAggregateDeficitIdentity(t *testing.T) {
	d1 := day(2025, time.June, 1)
	events := []store.Event{
		event(store.EventFood, d1.Add(time.Hour), 1723.5),
		event(store.EventExercise, d1.Add(2*time.Hour), 312.25),
		event(store.EventFood, d1.AddDate(0, 0, 1).Add(time.Hour), 2250),
	}
	profile := Profile{Sex: SexFemale, Age: 31, HeightCM: 168, WeightKg: 70, ActivityLevel: "moderate"}

	days, _, err := Aggregate(events, profile, d1, d1.AddDate(0, 0, 2), time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range days {
		want := d.TDEE + d.CaloriesBurntExercise - d.CaloriesConsumed
		if d.NetDeficit != want {
			t.Errorf("%s: NetDeficit = %v, want exact %v", d.Date, d.NetDeficit, want)
		}
	}
}

func TestAggregateIdempotent(t *testing.T) {
	d1 := day(2025, time.June, 1)
	events := []store.Event{
		event(store.EventFood, d1.Add(time.Hour), 500),
		event(store.EventWeight, d1.Add(2*time.Hour), 81),
		event(store.EventExercise, d1.AddDate(0, 0, 3), 250),
	}
	profile := Profile{Sex: SexMale, Age: 40, HeightCM: 180, WeightKg: 85, ActivityLevel: "light"}

	first, _, err := Aggregate(events, profile, d1, d1.AddDate(0, 0, 6), time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	second, _, err := Aggregate(events, profile, d1, d1.AddDate(0, 0, 6), time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Aggregate is not idempotent for identical inputs")
	}
}

// TDEE must follow the weight sample effective on each day: the most recent
// sample at or before the day, else the profile baseline.
func TestAggregateEffectiveWeight(t *testing.T) {
	d1 := day(2025, time.June, 1)
	profile := Profile{Sex: SexMale, Age: 40, HeightCM: 180, WeightKg: 90, ActivityLevel: "sedentary"}

	// Weight drops to 85 kg on day 3; a stale sample before the range sets
	// the carry-in weight for days 1-2.
	events := []store.Event{
		event(store.EventWeight, d1.AddDate(0, 0, -10), 88),
		event(store.EventWeight, d1.AddDate(0, 0, 2).Add(9*time.Hour), 85),
	}

	days, _, err := Aggregate(events, profile, d1, d1.AddDate(0, 0, 3), time.UTC)
	if err != nil {
		t.Fatal(err)
	}

	tdeeAt := func(kg float64) float64 { return TDEE(profile, kg) }
	wants := []float64{tdeeAt(88), tdeeAt(88), tdeeAt(85), tdeeAt(85)}
	for i, want := range wants {
		if math.Abs(days[i].TDEE-want) > 1e-9 {
			t.Errorf("day %d TDEE = %v, want %v", i, days[i].TDEE, want)
		}
	}
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	d1 := day(2025, time.June, 1)
	events := []store.Event{
		event(store.EventFood, d1.Add(2*time.Hour), -100),
		event(store.EventWeight, d1.Add(time.Hour), 80),
	}
	snapshot := make([]store.Event, len(events))
	copy(snapshot, events)

	if _, _, err := Aggregate(events, Profile{}, d1, d1, time.UTC); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(events, snapshot) {
		t.Error("Aggregate mutated its input slice")
	}
}
