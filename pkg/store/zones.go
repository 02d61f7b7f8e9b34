package store

import (
	"database/sql"
	"fmt"
	"time"
)

// SavedZones returns the user's world-clock zone list in display order.
func (s *Store) SavedZones() ([]string, error) {
	rows, err := s.db.Query("SELECT zone FROM saved_zones ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying saved zones: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Debug("failed to close rows", "error", closeErr)
		}
	}()

	var zones []string
	for rows.Next() {
		var zone string
		if err := rows.Scan(&zone); err != nil {
			return nil, fmt.Errorf("scanning saved zone: %w", err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading saved zones: %w", err)
	}
	return zones, nil
}

// SaveZones replaces the saved-zone list, preserving the given order.
func (s *Store) SaveZones(zones []string) error {
	return s.replaceAll("saved_zones", func(tx *sql.Tx) error {
		for i, zone := range zones {
			if _, err := tx.Exec("INSERT INTO saved_zones (position, zone) VALUES (?, ?)", i, zone); err != nil {
				return fmt.Errorf("inserting saved zone %q: %w", zone, err)
			}
		}
		return nil
	})
}

// ConversionState is the converter screen's last-used instant and base zone.
type ConversionState struct {
	At       time.Time
	BaseZone string
}

// LastConversion returns the persisted conversion state, or nil when none
// has been saved yet.
func (s *Store) LastConversion() (*ConversionState, error) {
	var state ConversionState
	err := s.db.QueryRow("SELECT at, base_zone FROM conversion_state WHERE id = 1").
		Scan(&state.At, &state.BaseZone)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying conversion state: %w", err)
	}
	return &state, nil
}

// PutLastConversion upserts the conversion state.
func (s *Store) PutLastConversion(state ConversionState) error {
	_, err := s.db.Exec(`
		INSERT INTO conversion_state (id, at, base_zone) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET at = excluded.at, base_zone = excluded.base_zone`,
		state.At, state.BaseZone)
	if err != nil {
		return fmt.Errorf("saving conversion state: %w", err)
	}
	return nil
}
