package attention

import (
	"time"

	"github.com/gazepilot/go-gazepilot/pkg/signal"
)

// sample is one timestamped entry in a sliding window.
type sample[T any] struct {
	value T
	at    time.Time
}

// window is a fixed-capacity FIFO of timestamped samples. It backs the
// gaze machine's position history; capacity bounds the memory, the
// horizon bounds the effective averaging interval under frame-rate
// stalls.
type window[T any] struct {
	samples []sample[T]
	cap     int
}

func newWindow[T any](capacity int) *window[T] {
	return &window[T]{
		samples: make([]sample[T], 0, capacity),
		cap:     capacity,
	}
}

// push appends a sample, evicting the oldest at capacity.
func (w *window[T]) push(value T, at time.Time) {
	if len(w.samples) == w.cap {
		copy(w.samples, w.samples[1:])
		w.samples = w.samples[:len(w.samples)-1]
	}
	w.samples = append(w.samples, sample[T]{value: value, at: at})
}

// prune drops samples older than horizon relative to now. A zero
// horizon disables pruning.
func (w *window[T]) prune(horizon time.Duration, now time.Time) {
	if horizon <= 0 {
		return
	}
	cutoff := now.Add(-horizon)
	keep := 0
	for keep < len(w.samples) && w.samples[keep].at.Before(cutoff) {
		keep++
	}
	if keep > 0 {
		w.samples = w.samples[:copy(w.samples, w.samples[keep:])]
	}
}

func (w *window[T]) len() int {
	return len(w.samples)
}

func (w *window[T]) clear() {
	w.samples = w.samples[:0]
}

// varianceSum computes var(x) + var(y) over the window's positions.
// Population variance; the window is the whole population of interest.
func varianceSum(w *window[signal.Point]) float64 {
	n := float64(len(w.samples))
	if n == 0 {
		return 0
	}

	var meanX, meanY float64
	for _, s := range w.samples {
		meanX += s.value.X
		meanY += s.value.Y
	}
	meanX /= n
	meanY /= n

	var varX, varY float64
	for _, s := range w.samples {
		dx := s.value.X - meanX
		dy := s.value.Y - meanY
		varX += dx * dx
		varY += dy * dy
	}

	return varX/n + varY/n
}
