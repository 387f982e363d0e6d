// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Search operations
	OpSearch       Op = "search the platform"
	OpSearchLookup Op = "look up category results"

	// Recent records
	OpRecentLoad Op = "load recent records"
	OpRecentSave Op = "save recent records"

	// Feature flags
	OpFlagsLoad Op = "load feature flags"
	OpFlagSet   Op = "update feature flag"

	// Fees and checkout timer
	OpFeesLoad Op = "load fee configuration"
	OpFeesSave Op = "save fee configuration"

	// Role management
	OpAdminsLoad Op = "load admin users"
	OpRoleGrant  Op = "grant role"
	OpRoleRevoke Op = "revoke role"

	// Request moderation
	OpRequestsLoad   Op = "load submitted requests"
	OpRequestResolve Op = "resolve submitted request"

	// Identity
	OpViewerLoad Op = "resolve operator roles"

	// Initialization
	OpInitialize Op = "initialize application"
	OpConnect    Op = "connect to platform database"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
