package feespanel

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lvasseur/boxoffice/internal/platform"
)

type fakeStore struct {
	cfg    platform.FeeConfig
	savedN int
}

func (f *fakeStore) GetFeeConfig(context.Context) (platform.FeeConfig, error) {
	return f.cfg, nil
}

func (f *fakeStore) SaveFeeConfig(_ context.Context, cfg platform.FeeConfig) error {
	f.cfg = cfg
	f.savedN++
	return nil
}

func newTestPanel(store *fakeStore) Model {
	m := New(store)
	m.SetSize(80, 24)
	m.SetFocused(true)
	cmd := m.Load()
	updated, _ := m.Update(cmd())
	return updated
}

func typeKeys(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = m.Update(msg)
	}
	return m
}

func baseConfig() platform.FeeConfig {
	return platform.FeeConfig{
		ServiceFeePercent:   5,
		ServiceFeeFixed:     150,
		CheckoutTimerMinute: 10,
	}
}

func TestEditPercent(t *testing.T) {
	m := newTestPanel(&fakeStore{cfg: baseConfig()})

	m = typeKeys(m, "enter", "backspace", "7", ".", "5", "enter")
	if got := m.Config().ServiceFeePercent; got != 7.5 {
		t.Errorf("percent = %v, want 7.5", got)
	}
	if !m.Dirty() {
		t.Error("edit should mark the draft dirty")
	}
}

func TestEditFixedFeeConvertsToCents(t *testing.T) {
	m := newTestPanel(&fakeStore{cfg: baseConfig()})

	m = typeKeys(m, "j", "enter")
	for range "1.50" {
		m = typeKeys(m, "backspace")
	}
	m = typeKeys(m, "2", ".", "2", "5", "enter")
	if got := m.Config().ServiceFeeFixed; got != 225 {
		t.Errorf("fixed = %d cents, want 225", got)
	}
}

func TestInvalidInputRejected(t *testing.T) {
	m := newTestPanel(&fakeStore{cfg: baseConfig()})

	m = typeKeys(m, "enter", "backspace", "enter")
	if !m.editing {
		t.Error("empty value should keep edit mode open")
	}
	if m.errMsg == "" {
		t.Error("empty value should surface an error")
	}
}

func TestSaveValidates(t *testing.T) {
	store := &fakeStore{cfg: baseConfig()}
	m := newTestPanel(store)

	// Out-of-range percent must not reach the store
	m = typeKeys(m, "enter", "backspace", "2", "0", "0", "enter", "s")
	if store.savedN != 0 {
		t.Error("invalid config should not be saved")
	}
	if m.errMsg == "" {
		t.Error("invalid config should surface a validation error")
	}
}

func TestSavePersists(t *testing.T) {
	store := &fakeStore{cfg: baseConfig()}
	m := newTestPanel(store)

	m = typeKeys(m, "enter", "backspace", "8", "enter")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	if cmd == nil {
		t.Fatal("save should schedule a write")
	}
	m, _ = m.Update(cmd())

	if store.savedN != 1 || store.cfg.ServiceFeePercent != 8 {
		t.Errorf("save not persisted: n=%d cfg=%v", store.savedN, store.cfg)
	}
	if m.Dirty() {
		t.Error("saved draft should no longer be dirty")
	}
}

func TestRevert(t *testing.T) {
	m := newTestPanel(&fakeStore{cfg: baseConfig()})

	m = typeKeys(m, "enter", "backspace", "9", "enter", "u")
	if m.Dirty() {
		t.Error("revert should restore stored values")
	}
	if got := m.Config().ServiceFeePercent; got != 5 {
		t.Errorf("percent = %v, want 5", got)
	}
}
