package keymap

// Binding describes a single key binding.
type Binding struct {
	Keys        []string
	Action      Action
	Description string
	Context     string // "global", "flags", "fees", "roles", "requests", "search"
}

// All contains all key bindings for dispatch and help generation.
// Panel-local keys carry an empty action: they are resolved inside the
// panel and listed here for the help overlay only.
var All = []Binding{
	// Global
	{[]string{"q", "ctrl+c"}, ActionQuit, "Quit", "global"},
	{[]string{"/", "ctrl+k"}, ActionQuickSearch, "Quick search", "global"},
	{[]string{"ctrl+b"}, ActionBrowser, "Database browser", "global"},
	{[]string{"f1"}, ActionPanelFlags, "Feature flags", "global"},
	{[]string{"f2"}, ActionPanelFees, "Fees & checkout", "global"},
	{[]string{"f3"}, ActionPanelRoles, "Admin roles", "global"},
	{[]string{"f4"}, ActionPanelRequests, "Request queue", "global"},
	{[]string{"?"}, ActionHelp, "Show help", "global"},

	// Feature flags panel
	{[]string{"enter", "space"}, "", "Toggle flag", "flags"},
	{[]string{"r"}, "", "Reload", "flags"},

	// Fees panel
	{[]string{"enter"}, "", "Edit field", "fees"},
	{[]string{"s"}, "", "Save", "fees"},
	{[]string{"u"}, "", "Revert", "fees"},

	// Roles panel
	{[]string{"a"}, "", "Toggle admin role", "roles"},
	{[]string{"d"}, "", "Toggle developer role", "roles"},
	{[]string{"s"}, "", "Toggle support role", "roles"},
	{[]string{"m"}, "", "Toggle moderator role", "roles"},

	// Requests panel
	{[]string{"a"}, "", "Approve with note", "requests"},
	{[]string{"x"}, "", "Reject with note", "requests"},

	// Search popup
	{[]string{"enter"}, "", "Open selected record", "search"},
	{[]string{"ctrl+x"}, "", "Remove recent record", "search"},
	{[]string{"esc"}, "", "Close search", "search"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
