package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/chronomap-dev/chronomap/pkg/overlap"
)

// Participants returns the persisted meeting participant set in order.
func (s *Store) Participants() ([]overlap.Participant, error) {
	rows, err := s.db.Query(
		"SELECT id, type, timezone, label, work_start, work_end FROM participants ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying participants: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Debug("failed to close rows", "error", closeErr)
		}
	}()

	var participants []overlap.Participant
	for rows.Next() {
		var p overlap.Participant
		var typ string
		if err := rows.Scan(&p.ID, &typ, &p.Timezone, &p.Label, &p.WorkingHours.Start, &p.WorkingHours.End); err != nil {
			return nil, fmt.Errorf("scanning participant: %w", err)
		}
		p.Type = overlap.ParticipantType(typ)
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading participants: %w", err)
	}
	return participants, nil
}

// SaveParticipants replaces the participant set, preserving order and
// assigning ids where absent.
func (s *Store) SaveParticipants(participants []overlap.Participant) error {
	return s.replaceAll("participants", func(tx *sql.Tx) error {
		for i, p := range participants {
			if p.ID == "" {
				p.ID = uuid.NewString()
			}
			_, err := tx.Exec(
				"INSERT INTO participants (position, id, type, timezone, label, work_start, work_end) VALUES (?, ?, ?, ?, ?, ?, ?)",
				i, p.ID, string(p.Type), p.Timezone, p.Label, p.WorkingHours.Start, p.WorkingHours.End)
			if err != nil {
				return fmt.Errorf("inserting participant %q: %w", p.Label, err)
			}
		}
		return nil
	})
}
