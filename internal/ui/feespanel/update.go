package feespanel

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lvasseur/boxoffice/internal/errmsg"
)

// Update handles messages for the fees panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.IsFocused() {
			return m, nil
		}
		if m.editing {
			return m.handleEditKey(msg)
		}
		return m.handleKey(msg)

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errMsg = errmsg.Format(errmsg.OpFeesLoad, msg.Err)
			return m, nil
		}
		m.saved = msg.Config
		m.draft = msg.Config
		return m, nil

	case SavedMsg:
		if msg.Err != nil {
			m.errMsg = errmsg.Format(errmsg.OpFeesSave, msg.Err)
			return m, nil
		}
		m.saved = msg.Config
		m.status = "Saved"
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.errMsg = ""
	m.status = ""

	switch msg.String() {
	case "j", "down":
		if m.field < fieldCount-1 {
			m.field++
		}

	case "k", "up":
		if m.field > 0 {
			m.field--
		}

	case "enter":
		m.editing = true
		m.buffer = m.fieldValue(m.field)

	case "s":
		if err := m.draft.Validate(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		return m, saveCmd(m.store, m.draft)

	case "u":
		m.draft = m.saved
		m.status = "Reverted"

	case "r":
		return m, m.Load()
	}
	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.buffer = ""

	case "enter":
		if err := m.applyBuffer(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.editing = false
		m.buffer = ""

	case "backspace":
		if m.buffer != "" {
			m.buffer = m.buffer[:len(m.buffer)-1]
		}

	default:
		s := msg.String()
		if len(s) == 1 && (s[0] >= '0' && s[0] <= '9' || s[0] == '.') {
			m.buffer += s
		}
	}
	return m, nil
}

// fieldValue renders the current draft value of a field for editing.
func (m Model) fieldValue(f field) string {
	switch f {
	case fieldPercent:
		return strconv.FormatFloat(m.draft.ServiceFeePercent, 'f', -1, 64)
	case fieldFixed:
		return strconv.FormatFloat(float64(m.draft.ServiceFeeFixed)/100, 'f', 2, 64)
	case fieldTimer:
		return strconv.Itoa(m.draft.CheckoutTimerMinute)
	}
	return ""
}

// applyBuffer parses the edit buffer into the selected draft field.
func (m *Model) applyBuffer() error {
	text := strings.TrimSpace(m.buffer)
	if text == "" {
		return fmt.Errorf("value must not be empty")
	}

	switch m.field {
	case fieldPercent:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("invalid percentage %q", text)
		}
		m.draft.ServiceFeePercent = v

	case fieldFixed:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q", text)
		}
		m.draft.ServiceFeeFixed = int64(v*100 + 0.5)

	case fieldTimer:
		v, err := strconv.Atoi(text)
		if err != nil {
			return fmt.Errorf("invalid minute count %q", text)
		}
		m.draft.CheckoutTimerMinute = v
	}
	return nil
}
