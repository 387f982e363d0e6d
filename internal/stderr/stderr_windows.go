//go:build windows

// Package stderr is a no-op on Windows, where fd duplication via
// syscall.Dup is not available. Captured-line consumers block on an
// always-empty channel, which is the desired idle behavior.
package stderr

// Messages never receives on Windows.
var Messages = make(chan string)

// Start is a no-op on Windows.
func Start() error {
	return nil
}

// Stop is a no-op on Windows.
func Stop() {}
