package flagspanel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lvasseur/boxoffice/internal/errmsg"
	"github.com/lvasseur/boxoffice/internal/ui"
)

// Update handles messages for the flags panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.IsFocused() {
			return m, nil
		}
		return m.handleKey(msg)

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errMsg = errmsg.Format(errmsg.OpFlagsLoad, msg.Err)
			return m, nil
		}
		m.flags = msg.Flags
		m.cursor.ClampToBounds(len(m.flags))
		return m, nil

	case SavedMsg:
		if msg.Err != nil {
			// Roll the optimistic flip back
			m.setEnabled(msg.Key, !msg.Enabled)
			m.errMsg = errmsg.Format(errmsg.OpFlagSet, msg.Err)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.errMsg = ""

	switch msg.String() {
	case "j", "down":
		m.cursor.Move(1, len(m.flags), m.ListHeight(ui.PanelOverhead))

	case "k", "up":
		m.cursor.Move(-1, len(m.flags), m.ListHeight(ui.PanelOverhead))

	case "g":
		m.cursor.JumpStart()

	case "G":
		m.cursor.JumpEnd(len(m.flags), m.ListHeight(ui.PanelOverhead))

	case "enter", " ":
		flag, ok := m.Selected()
		if !ok {
			return m, nil
		}
		m.setEnabled(flag.Key, !flag.Enabled)
		return m, saveCmd(m.store, flag.Key, !flag.Enabled, m.updatedBy)

	case "r":
		return m, m.Load()
	}
	return m, nil
}
