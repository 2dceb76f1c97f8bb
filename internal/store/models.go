package store

import "time"

// EventKind identifies the type of a logged event.
type EventKind string

const (
	EventFood     EventKind = "food"     // Value = calories consumed (kcal)
	EventExercise EventKind = "exercise" // Value = calories burnt (kcal)
	EventWater    EventKind = "water"    // Value = glasses
	EventWeight   EventKind = "weight"   // Value = body weight (kg)
)

// ValidKind reports whether k is a known event kind.
func ValidKind(k EventKind) bool {
	switch k {
	case EventFood, EventExercise, EventWater, EventWeight:
		return true
	}
	return false
}

// Event is one raw logged row. The analytics engine reads events as immutable
// snapshots; nothing downstream ever mutates them.
type Event struct {
	ID       int64     `db:"id"`
	Kind     EventKind `db:"kind"`
	LoggedAt time.Time `db:"logged_at"`
	Value    float64   `db:"value"`
	Note     string    `db:"note"`
}

// Profile is the stored user profile (singleton row).
type Profile struct {
	Sex                string    `db:"sex"`
	Age                int       `db:"age"`
	HeightCM           float64   `db:"height_cm"`
	WeightKg           float64   `db:"weight_kg"`
	ActivityLevel      string    `db:"activity_level"`
	SustainabilityMode bool      `db:"sustainability_mode"`
	UpdatedAt          time.Time `db:"updated_at"`
}
