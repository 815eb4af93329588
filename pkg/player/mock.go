package player

import (
	"context"
	"sync"
)

// MockSink records commands for testing.
type MockSink struct {
	mu       sync.Mutex
	commands []Command
	closed   bool

	// SendErr, when set, is returned by every Send call.
	SendErr error
}

// NewMockSink creates an empty recording sink.
func NewMockSink() *MockSink {
	return &MockSink{}
}

// Send records the command.
func (m *MockSink) Send(_ context.Context, cmd Command) error {
	if m.SendErr != nil {
		return m.SendErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commands = append(m.commands, cmd)
	return nil
}

// Commands returns a copy of everything sent so far.
func (m *MockSink) Commands() []Command {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Command, len(m.commands))
	copy(out, m.commands)
	return out
}

// Close marks the sink closed.
func (m *MockSink) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSink) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Ensure MockSink implements Sink.
var _ Sink = (*MockSink)(nil)
