//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpSearch,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpFlagSet,
			err:      errors.New("connection reset"),
			expected: "Failed to update feature flag: connection reset",
		},
		{
			name:     "fees operation",
			op:       OpFeesSave,
			err:      errors.New("permission denied"),
			expected: "Failed to save fee configuration: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.op, tt.err); got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	err := errors.New("row not found")

	got := FormatWith(OpRoleGrant, "ada@example.com", err)
	want := "Failed to grant role 'ada@example.com': row not found"
	if got != want {
		t.Errorf("FormatWith() = %q, want %q", got, want)
	}

	if got := FormatWith(OpRoleGrant, "", err); got != Format(OpRoleGrant, err) {
		t.Errorf("empty context should fall back to Format: %q", got)
	}

	if got := FormatWith(OpRoleGrant, "ctx", nil); got != "" {
		t.Errorf("nil error should return empty string, got %q", got)
	}
}
