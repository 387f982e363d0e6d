package app

import "sync"

// errorSink collects errors raised outside the update loop (aggregator
// fan-out goroutines, recent record persistence) so they can be shown
// on the status line on the next update.
type errorSink struct {
	mu   sync.Mutex
	msgs []string
}

func newErrorSink() *errorSink {
	return &errorSink{}
}

// Push appends one message. Safe for concurrent use.
func (s *errorSink) Push(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, msg)
}

// Drain returns and clears the collected messages.
func (s *errorSink) Drain() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := s.msgs
	s.msgs = nil
	return msgs
}
