package state

import (
	"database/sql"
	"errors"
	"time"
)

// GetValue returns the stored value for key, or empty string if the
// key has never been written.
func (m *Manager) GetValue(key string) (string, error) {
	var value string
	err := m.db.QueryRow(`SELECT value FROM ui_values WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// SetValue writes the value for key, replacing any previous value.
func (m *Manager) SetValue(key, value string) error {
	_, err := m.db.Exec(`
		INSERT INTO ui_values (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value, time.Now().Unix())
	return err
}
