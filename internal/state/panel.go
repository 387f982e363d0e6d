package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/lvasseur/boxoffice/internal/db"
)

// PanelState remembers which admin panel was active across restarts.
type PanelState struct {
	ActivePanel string // "flags", "fees", "roles" or "requests"
	SelectedID  string
}

func getPanel(db *sql.DB) (*PanelState, error) {
	row := db.QueryRow(`
		SELECT active_panel, selected_id
		FROM panel_state WHERE id = 1
	`)

	var state PanelState
	var selectedID sql.NullString

	err := row.Scan(&state.ActivePanel, &selectedID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.SelectedID = dbutil.NullStringValue(selectedID)
	return &state, nil
}

func savePanel(db *sql.DB, state PanelState) error {
	_, err := db.Exec(`
		INSERT INTO panel_state (id, active_panel, selected_id)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			active_panel = excluded.active_panel,
			selected_id = excluded.selected_id
	`, state.ActivePanel, state.SelectedID)

	return err
}
