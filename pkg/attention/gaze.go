package attention

import (
	"math"
	"time"

	"github.com/gazepilot/go-gazepilot/pkg/signal"
)

// GazeState is the debounced engagement classification.
type GazeState int

const (
	// NotGazing means the subject is moving or disengaged.
	NotGazing GazeState = iota
	// Gazing means the subject is holding steady attention.
	Gazing
)

// String returns the lowercase state name.
func (s GazeState) String() string {
	if s == Gazing {
		return "gazing"
	}
	return "not_gazing"
}

// GazeReading is the per-frame output of the gaze machine.
type GazeReading struct {
	Gazing      bool
	Stable      bool    // This frame's variance verdict
	VarianceSum float64 // var(x) + var(y) over the current window
	Samples     int     // Window occupancy after pruning
}

// GazeMachine decides from positional jitter of a tracked point whether
// the subject is holding steady attention. Entry and exit are debounced
// asymmetrically: entering Gazing requires deliberate sustained
// stillness, while leaving tolerates brief involuntary twitches, so
// BreakFrames >= ConfirmFrames.
type GazeMachine struct {
	cfg Config

	state   GazeState
	win     *window[signal.Point]
	confirm int // Consecutive stable frames while NotGazing
	breaks  int // Consecutive unstable frames while Gazing

	lastVariance float64
}

// NewGazeMachine creates a gaze machine. The config must already be
// validated; NewPipeline does this for callers.
func NewGazeMachine(cfg Config) *GazeMachine {
	return &GazeMachine{
		cfg: cfg,
		win: newWindow[signal.Point](cfg.WindowSize),
	}
}

// Update advances the machine with one tracked position and returns the
// engagement classification for this frame. Positions with NaN
// coordinates are treated as missing readings: state and counters hold.
func (m *GazeMachine) Update(pos signal.Point, at time.Time) GazeReading {
	if math.IsNaN(pos.X) || math.IsNaN(pos.Y) {
		return m.reading(m.state == Gazing && m.win.len() >= m.cfg.MinSamples, false)
	}

	m.win.push(pos, at)
	m.win.prune(m.cfg.WindowHorizon, at)

	// Insufficient evidence: report disengaged, hold the counters.
	if m.win.len() < m.cfg.MinSamples {
		m.lastVariance = 0
		return m.reading(false, false)
	}

	m.lastVariance = varianceSum(m.win)
	stable := m.lastVariance < m.cfg.StabilityThreshold
	m.advance(stable)

	return m.reading(m.state == Gazing, stable)
}

// FaceLost records a frame with no tracked position. No sample enters
// the window; the frame counts as unstable so that sustained absence
// breaks an established gaze at the normal debounced rate, while a
// single detector miss cannot.
func (m *GazeMachine) FaceLost(at time.Time) GazeReading {
	m.win.prune(m.cfg.WindowHorizon, at)
	m.advance(false)
	return m.reading(m.state == Gazing, false)
}

// Reset returns the machine to its initial state with an empty window.
func (m *GazeMachine) Reset() {
	m.state = NotGazing
	m.win.clear()
	m.confirm = 0
	m.breaks = 0
	m.lastVariance = 0
}

// State returns the current engagement state for introspection.
func (m *GazeMachine) State() GazeState {
	return m.state
}

// VarianceSum returns the most recent variance sum for introspection.
func (m *GazeMachine) VarianceSum() float64 {
	return m.lastVariance
}

// advance runs the confirm/break counter logic for one classified frame.
func (m *GazeMachine) advance(stable bool) {
	switch m.state {
	case NotGazing:
		if stable {
			m.confirm++
			if m.confirm >= m.cfg.ConfirmFrames {
				m.state = Gazing
				m.confirm = 0
				m.breaks = 0
			}
		} else {
			m.confirm = 0
		}

	case Gazing:
		if stable {
			m.breaks = 0
		} else {
			m.breaks++
			if m.breaks >= m.cfg.BreakFrames {
				m.state = NotGazing
				m.confirm = 0
				m.breaks = 0
			}
		}
	}
}

func (m *GazeMachine) reading(gazing, stable bool) GazeReading {
	return GazeReading{
		Gazing:      gazing,
		Stable:      stable,
		VarianceSum: m.lastVariance,
		Samples:     m.win.len(),
	}
}
