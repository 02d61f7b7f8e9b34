package store

import (
	"database/sql"
	"fmt"
)

// Settings are the app-wide preferences the UI persists.
type Settings struct {
	MyTimezone string  `json:"myTimezone"`
	WorkStart  float64 `json:"workStart"`
	WorkEnd    float64 `json:"workEnd"`
}

// DefaultSettings are used until the user saves their own.
func DefaultSettings() Settings {
	return Settings{MyTimezone: "UTC", WorkStart: 9, WorkEnd: 18}
}

// Settings returns the persisted settings, or defaults when none exist.
func (s *Store) Settings() (Settings, error) {
	var out Settings
	err := s.db.QueryRow("SELECT my_timezone, work_start, work_end FROM settings WHERE id = 1").
		Scan(&out.MyTimezone, &out.WorkStart, &out.WorkEnd)
	if err == sql.ErrNoRows {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("querying settings: %w", err)
	}
	return out, nil
}

// PutSettings upserts the settings row.
func (s *Store) PutSettings(settings Settings) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (id, my_timezone, work_start, work_end) VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			my_timezone = excluded.my_timezone,
			work_start  = excluded.work_start,
			work_end    = excluded.work_end`,
		settings.MyTimezone, settings.WorkStart, settings.WorkEnd)
	if err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}
