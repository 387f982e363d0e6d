package feespanel

import (
	"fmt"
	"strings"

	"github.com/lvasseur/boxoffice/internal/ui/render"
	"github.com/lvasseur/boxoffice/internal/ui/styles"
)

// View renders the fees panel content.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	s := styles.T().S()
	var b strings.Builder

	b.WriteString(s.Title.Render("Fees & Checkout"))
	if m.Dirty() {
		b.WriteString(" " + s.Warning.Render("(unsaved)"))
	}
	b.WriteString("\n")
	b.WriteString(render.Separator(m.Width()))
	b.WriteString("\n")

	if m.loading {
		b.WriteString(s.Muted.Render("Loading configuration..."))
		return b.String()
	}

	labels := [fieldCount]string{
		"Service fee percent",
		"Service fee fixed",
		"Checkout timer (min)",
	}
	values := [fieldCount]string{
		fmt.Sprintf("%.2f %%", m.draft.ServiceFeePercent),
		fmt.Sprintf("$%.2f", float64(m.draft.ServiceFeeFixed)/100),
		fmt.Sprintf("%d", m.draft.CheckoutTimerMinute),
	}

	for f := field(0); f < fieldCount; f++ {
		label := render.Pad(labels[f], 24)
		value := values[f]

		if f == m.field && m.editing {
			value = s.Selected.Render(m.buffer + "█")
		} else if f == m.field && m.IsFocused() {
			value = s.Selected.Render(value)
		} else {
			value = s.Base.Render(value)
		}

		prefix := "  "
		if f == m.field && m.IsFocused() {
			prefix = s.Selected.Render("> ")
		}
		b.WriteString(prefix + s.Muted.Render(label) + value + "\n")
	}

	b.WriteString("\n")
	switch {
	case m.errMsg != "":
		b.WriteString(s.Error.Render(m.errMsg))
	case m.status != "":
		b.WriteString(s.Success.Render(m.status))
	default:
		b.WriteString(s.Subtle.Render("Enter: edit  s: save  u: revert"))
	}
	return b.String()
}
