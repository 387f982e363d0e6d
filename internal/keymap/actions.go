// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionQuickSearch Action = "quick_search"
	ActionBrowser     Action = "browser"
	ActionHelp        Action = "help"

	// Panel switching
	ActionPanelFlags    Action = "panel_flags"
	ActionPanelFees     Action = "panel_fees"
	ActionPanelRoles    Action = "panel_roles"
	ActionPanelRequests Action = "panel_requests"
)
