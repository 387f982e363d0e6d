package requestspanel

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lvasseur/boxoffice/internal/errmsg"
	"github.com/lvasseur/boxoffice/internal/ui"
)

// Update handles messages for the requests panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.IsFocused() {
			return m, nil
		}
		if m.mode == modeNote {
			return m.handleNoteKey(msg)
		}
		return m.handleListKey(msg)

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errMsg = errmsg.Format(errmsg.OpRequestsLoad, msg.Err)
			return m, nil
		}
		m.requests = msg.Requests
		m.cursor.ClampToBounds(len(m.requests))
		return m, nil

	case ResolvedMsg:
		if msg.Err != nil {
			m.errMsg = errmsg.Format(errmsg.OpRequestResolve, msg.Err)
			return m, nil
		}
		m.remove(msg.ID)
		if msg.Approved {
			m.status = "Request approved"
		} else {
			m.status = "Request rejected"
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.errMsg = ""
	m.status = ""

	switch msg.String() {
	case "j", "down":
		m.cursor.Move(1, len(m.requests), m.ListHeight(ui.PanelOverhead))

	case "k", "up":
		m.cursor.Move(-1, len(m.requests), m.ListHeight(ui.PanelOverhead))

	case "g":
		m.cursor.JumpStart()

	case "G":
		m.cursor.JumpEnd(len(m.requests), m.ListHeight(ui.PanelOverhead))

	case "a":
		if _, ok := m.Selected(); ok {
			m.mode = modeNote
			m.approve = true
			m.note = ""
		}

	case "x":
		if _, ok := m.Selected(); ok {
			m.mode = modeNote
			m.approve = false
			m.note = ""
		}

	case "r":
		return m, m.Load()
	}
	return m, nil
}

func (m Model) handleNoteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.note = ""

	case "enter":
		req, ok := m.Selected()
		if !ok {
			m.mode = modeList
			return m, nil
		}
		// A rejection must tell the submitter why.
		if !m.approve && strings.TrimSpace(m.note) == "" {
			m.errMsg = "Rejection requires a note"
			return m, nil
		}
		m.mode = modeList
		return m, resolveCmd(m.store, req.ID, m.approve, m.note)

	case "backspace":
		if m.note != "" {
			m.note = m.note[:len(m.note)-1]
		}

	default:
		if len(msg.String()) == 1 && msg.String()[0] >= 32 {
			m.note += msg.String()
			m.errMsg = ""
		}
	}
	return m, nil
}
