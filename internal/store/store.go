package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Timestamps are stored as RFC3339 strings in UTC, so lexical comparisons in
// SQL match chronological order.

// AddEvent inserts a raw logged event and returns its ID.
func (s *Store) AddEvent(e *Event) (int64, error) {
	if !ValidKind(e.Kind) {
		return 0, fmt.Errorf("unknown event kind %q", e.Kind)
	}
	if e.LoggedAt.IsZero() {
		e.LoggedAt = time.Now()
	}

	res, err := s.db.Exec(`
		INSERT INTO events (kind, logged_at, value, note)
		VALUES (?, ?, ?, ?)`,
		string(e.Kind), e.LoggedAt.UTC().Format(time.RFC3339), e.Value, e.Note,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting event: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolving event id: %w", err)
	}
	return id, nil
}

// ListEventsInRange returns all events with from <= logged_at < to,
// ordered by logged_at ascending.
func (s *Store) ListEventsInRange(from, to time.Time) ([]Event, error) {
	rows, err := s.db.Query(`
		SELECT id, kind, logged_at, value, note
		FROM events
		WHERE logged_at >= ? AND logged_at < ?
		ORDER BY logged_at ASC, id ASC`,
		from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListRecentEvents returns up to limit events of the given kind,
// newest first.
func (s *Store) ListRecentEvents(kind EventKind, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, kind, logged_at, value, note
		FROM events
		WHERE kind = ?
		ORDER BY logged_at DESC, id DESC
		LIMIT ?`,
		string(kind), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying recent events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// DeleteLastEvent removes the most recently logged event of the given kind.
// Returns false when there was nothing to delete.
func (s *Store) DeleteLastEvent(kind EventKind) (bool, error) {
	res, err := s.db.Exec(`
		DELETE FROM events WHERE id = (
			SELECT id FROM events WHERE kind = ?
			ORDER BY logged_at DESC, id DESC LIMIT 1
		)`,
		string(kind),
	)
	if err != nil {
		return false, fmt.Errorf("deleting event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CountEvents returns the total number of stored events.
func (s *Store) CountEvents() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM events`).Scan(&n)
	return n, err
}

// GetProfile retrieves the stored profile, or ErrNoProfile when the user has
// not onboarded yet.
func (s *Store) GetProfile() (*Profile, error) {
	var p Profile
	var sustainability int64
	var updatedAt string
	err := s.db.QueryRow(`
		SELECT sex, age, height_cm, weight_kg, activity_level, sustainability_mode, updated_at
		FROM profiles WHERE id = 1`,
	).Scan(&p.Sex, &p.Age, &p.HeightCM, &p.WeightKg, &p.ActivityLevel, &sustainability, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoProfile
	}
	if err != nil {
		return nil, fmt.Errorf("querying profile: %w", err)
	}

	p.SustainabilityMode = sustainability == 1
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		p.UpdatedAt = t
	}
	return &p, nil
}

// SaveProfile stores or replaces the singleton profile row.
func (s *Store) SaveProfile(p *Profile) error {
	sustainability := 0
	if p.SustainabilityMode {
		sustainability = 1
	}
	_, err := s.db.Exec(`
		INSERT INTO profiles (id, sex, age, height_cm, weight_kg, activity_level, sustainability_mode, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			sex = excluded.sex,
			age = excluded.age,
			height_cm = excluded.height_cm,
			weight_kg = excluded.weight_kg,
			activity_level = excluded.activity_level,
			sustainability_mode = excluded.sustainability_mode,
			updated_at = excluded.updated_at`,
		p.Sex, p.Age, p.HeightCM, p.WeightKg, p.ActivityLevel, sustainability,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}

func scanEvents(rows *sql.Rows) ([]Event, error) {
	events := make([]Event, 0)
	for rows.Next() {
		var e Event
		var kind, loggedAt string
		if err := rows.Scan(&e.ID, &kind, &loggedAt, &e.Value, &e.Note); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		t, err := time.Parse(time.RFC3339, loggedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing logged_at %q: %w", loggedAt, err)
		}
		e.Kind = EventKind(kind)
		e.LoggedAt = t
		events = append(events, e)
	}
	return events, rows.Err()
}
