//go:build !windows

// Package stderr redirects file descriptor 2 into a channel while the
// console owns the terminal. Database drivers and terminal libraries
// occasionally print warnings straight to stderr; uncaptured, those
// lines land in the middle of the rendered UI.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"syscall"
)

// Messages receives captured stderr lines. The app drains it into the
// status bar.
var Messages = make(chan string, 100)

var capture struct {
	saved   int
	r, w    *os.File
	running bool
}

// Start redirects fd 2 into the capture pipe. Call before anything
// that might write to stderr. On failure the program continues with
// stderr untouched.
func Start() error {
	if capture.running {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	saved, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(saved)
		r.Close()
		w.Close()
		return err
	}

	capture.saved = saved
	capture.r = r
	capture.w = w
	capture.running = true

	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			select {
			case Messages <- line:
			default:
				// Drop rather than block the writer.
			}
		}
	}()

	return nil
}

// Stop restores the original fd 2 and closes the channel. Call on
// exit, after the terminal is released.
func Stop() {
	if !capture.running {
		return
	}

	_ = syscall.Dup2(capture.saved, int(os.Stderr.Fd()))
	_ = syscall.Close(capture.saved)
	capture.w.Close()
	capture.r.Close()

	close(Messages)
	capture.running = false
}
