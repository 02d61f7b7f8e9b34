package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrContactNotFound is returned when an update or delete targets an
// unknown contact id.
var ErrContactNotFound = errors.New("contact not found")

// Contact is a person the user plans meetings with.
type Contact struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Timezone  string    `json:"timezone"`
	Notes     string    `json:"notes"`
}

// CreateContact inserts a contact, assigning an id and creation time when
// absent.
func (s *Store) CreateContact(c *Contact) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		"INSERT INTO contacts (id, name, timezone, notes, created_at) VALUES (?, ?, ?, ?, ?)",
		c.ID, c.Name, c.Timezone, c.Notes, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting contact: %w", err)
	}
	return nil
}

// Contacts lists all contacts, oldest first.
func (s *Store) Contacts() ([]Contact, error) {
	rows, err := s.db.Query("SELECT id, name, timezone, notes, created_at FROM contacts ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("querying contacts: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Debug("failed to close rows", "error", closeErr)
		}
	}()

	var contacts []Contact
	for rows.Next() {
		var c Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Timezone, &c.Notes, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading contacts: %w", err)
	}
	return contacts, nil
}

// UpdateContact rewrites a contact's mutable fields.
func (s *Store) UpdateContact(c Contact) error {
	res, err := s.db.Exec(
		"UPDATE contacts SET name = ?, timezone = ?, notes = ? WHERE id = ?",
		c.Name, c.Timezone, c.Notes, c.ID)
	if err != nil {
		return fmt.Errorf("updating contact: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return ErrContactNotFound
	}
	return nil
}

// DeleteContact removes a contact by id.
func (s *Store) DeleteContact(id string) error {
	res, err := s.db.Exec("DELETE FROM contacts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting contact: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return ErrContactNotFound
	}
	return nil
}
