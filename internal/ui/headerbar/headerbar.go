// internal/ui/headerbar/headerbar.go
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lvasseur/boxoffice/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// tab represents a header bar tab.
type tab struct {
	key  string
	name string
	mode string
}

// baseTabs are the always-available panel tabs.
var baseTabs = []tab{
	{"F1", "Flags", "flags"},
	{"F2", "Fees", "fees"},
	{"F3", "Roles", "roles"},
}

// requestsTab is shown for viewers allowed to moderate requests.
var requestsTab = tab{"F4", "Requests", "requests"}

// Styles
var (
	activeKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2dd4bf")).
			Bold(true)

	activeNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2dd4bf")).
			Bold(true)

	inactiveKeyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))

	inactiveNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Render returns the header bar string for the given width.
// currentMode should be "flags", "fees", "roles", or "requests".
// showRequests controls whether the F4 Requests tab is shown.
func Render(currentMode string, width int, showRequests bool) string {
	if width < 20 {
		return ""
	}

	tabs := baseTabs
	if showRequests {
		tabs = append(tabs, requestsTab)
	}

	parts := make([]string, 0, len(tabs))
	separator := separatorStyle.Render(" │ ")

	for _, t := range tabs {
		isActive := t.mode == currentMode

		var keyStyle, nameStyle lipgloss.Style
		if isActive {
			keyStyle = activeKeyStyle
			nameStyle = activeNameStyle
		} else {
			keyStyle = inactiveKeyStyle
			nameStyle = inactiveNameStyle
		}

		part := keyStyle.Render(t.key) + " " + nameStyle.Render(t.name)
		parts = append(parts, part)
	}

	title := styles.ApplyBoldGradient("boxoffice", styles.T().Primary, styles.T().Secondary)
	content := title + separatorStyle.Render("  ") + strings.Join(parts, separator)

	// Center the content
	contentWidth := lipgloss.Width(content)
	if contentWidth < width {
		padLeft := (width - contentWidth) / 2
		content = strings.Repeat(" ", padLeft) + content
	}

	return content
}
