package state

import "database/sql"

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	DB() *sql.DB
	SavePanel(state PanelState)
	GetPanel() (*PanelState, error)
	GetValue(key string) (string, error)
	SetValue(key, value string) error
	Close() error
}

// Compile-time check that Manager implements Interface.
var _ Interface = (*Manager)(nil)
