package signal

import (
	"context"
	"sync"
	"time"
)

// MockSource is a synthetic frame source for testing and demos.
// By default it produces a steady face at a fixed position with open
// eyes; options layer blinks, jitter, and face dropouts on top.
type MockSource struct {
	mu     sync.Mutex
	frame  int
	closed bool

	// Timing
	interval time.Duration
	now      time.Time

	// Baseline signal
	position Point
	openEAR  float64

	// Jitter (position noise amplitude, deterministic triangle wave)
	jitter float64

	// Blink schedule: every blinkEvery frames, hold closedEAR for
	// blinkFrames frames. Zero disables.
	blinkEvery  int
	blinkFrames int
	closedEAR   float64

	// Dropout schedule: every dropEvery frames, report no face for
	// dropFrames frames. Zero disables.
	dropEvery  int
	dropFrames int
}

// MockOption configures a MockSource.
type MockOption func(*MockSource)

// WithPosition sets the baseline tracked position.
func WithPosition(p Point) MockOption {
	return func(m *MockSource) { m.position = p }
}

// WithJitter adds deterministic positional noise of the given amplitude.
func WithJitter(amplitude float64) MockOption {
	return func(m *MockSource) { m.jitter = amplitude }
}

// WithBlinks schedules a blink of the given length every n frames.
func WithBlinks(every, frames int) MockOption {
	return func(m *MockSource) {
		m.blinkEvery = every
		m.blinkFrames = frames
	}
}

// WithDropouts schedules a face-detection miss of the given length
// every n frames.
func WithDropouts(every, frames int) MockOption {
	return func(m *MockSource) {
		m.dropEvery = every
		m.dropFrames = frames
	}
}

// WithInterval sets the synthetic frame interval (default 33ms).
func WithInterval(d time.Duration) MockOption {
	return func(m *MockSource) { m.interval = d }
}

// NewMockSource creates a synthetic source. Frames carry timestamps
// advancing by the configured interval from a fixed origin, so pipeline
// debounce behavior is reproducible run to run.
func NewMockSource(opts ...MockOption) *MockSource {
	m := &MockSource{
		interval:  33 * time.Millisecond,
		now:       time.Now(),
		position:  Point{X: 320, Y: 240},
		openEAR:   0.30,
		closedEAR: 0.08,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Next returns the next synthetic frame.
func (m *MockSource) Next(ctx context.Context) (Frame, error) {
	if err := ctx.Err(); err != nil {
		return Frame{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return Frame{}, ErrSourceClosed
	}

	n := m.frame
	m.frame++
	at := m.now.Add(time.Duration(n) * m.interval)

	if m.dropEvery > 0 && n%m.dropEvery < m.dropFrames {
		return Frame{FacePresent: false, At: at}, nil
	}

	ear := m.openEAR
	if m.blinkEvery > 0 && n%m.blinkEvery < m.blinkFrames {
		ear = m.closedEAR
	}

	pos := m.position
	if m.jitter > 0 {
		// Triangle wave keeps the noise deterministic
		phase := float64(n%4) - 1.5
		pos.X += m.jitter * phase
		pos.Y -= m.jitter * phase * 0.5
	}

	return Frame{
		FacePresent: true,
		EAR:         ear,
		Position:    pos,
		At:          at,
	}, nil
}

// Close stops the source; subsequent Next calls return ErrSourceClosed.
func (m *MockSource) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Ensure MockSource implements Source.
var _ Source = (*MockSource)(nil)
