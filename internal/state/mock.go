// internal/state/mock.go
package state

import (
	"database/sql"
	"errors"
)

// Mock is a test double for Manager backed by plain maps.
type Mock struct {
	panelState *PanelState
	values     map[string]string
	valueErr   error
	closed     bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{values: make(map[string]string)}
}

// FailValues makes all GetValue/SetValue calls return an error,
// simulating unavailable local storage.
func (m *Mock) FailValues() {
	m.valueErr = errors.New("storage unavailable")
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) SavePanel(state PanelState) {
	m.panelState = &state
}

func (m *Mock) GetPanel() (*PanelState, error) {
	return m.panelState, nil
}

func (m *Mock) GetValue(key string) (string, error) {
	if m.valueErr != nil {
		return "", m.valueErr
	}
	return m.values[key], nil
}

func (m *Mock) SetValue(key, value string) error {
	if m.valueErr != nil {
		return m.valueErr
	}
	m.values[key] = value
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Compile-time check that Mock implements Interface.
var _ Interface = (*Mock)(nil)
