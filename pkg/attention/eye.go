package attention

import "math"

// EyeState is the debounced openness classification of the eyes.
type EyeState int

const (
	// EyeOpen means the eyes are confirmed open.
	EyeOpen EyeState = iota
	// EyeClosing means EAR dropped below the blink threshold but the
	// closure has not yet lasted long enough to count as closed.
	EyeClosing
	// EyeClosed means a sustained closure.
	EyeClosed
	// EyeOpening means EAR recovered above the open threshold and the
	// machine is unwinding back toward confirmed open.
	EyeOpening
)

// String returns the lowercase state name.
func (s EyeState) String() string {
	switch s {
	case EyeOpen:
		return "open"
	case EyeClosing:
		return "closing"
	case EyeClosed:
		return "closed"
	case EyeOpening:
		return "opening"
	default:
		return "unknown"
	}
}

// EyeReading is the per-frame output of the eye machine.
type EyeReading struct {
	State  EyeState
	EAR    float64
	Closed bool // Sustained or in-progress closure
	Blink  bool // True for every frame of a short involuntary closure
}

// lookbackDepth is how many prior states the blink confirmation
// examines to make sure the closure started from open eyes.
const lookbackDepth = 3

// EyeMachine classifies instantaneous eye-aspect-ratio readings into a
// stable openness state and flags short involuntary closures (blinks)
// separately from sustained intentional ones.
//
// The machine is a pure per-frame transformer over private counters; it
// never blocks and holds its state on invalid input.
type EyeMachine struct {
	cfg Config

	state     EyeState
	closedFor int  // Frames of continuous sub-threshold EAR in this closure
	unwind    int  // Confirming frames still required to declare open
	cooldown  int  // Frames left before a new blink episode may start
	blinking  bool // Current closure qualified as a blink episode

	// Recent states preceding the current frame, oldest first.
	history []EyeState

	last    EyeReading
	hasLast bool
}

// NewEyeMachine creates an eye machine. The config must already be
// validated; NewPipeline does this for callers.
func NewEyeMachine(cfg Config) *EyeMachine {
	return &EyeMachine{
		cfg:     cfg,
		state:   EyeOpen,
		history: make([]EyeState, 0, lookbackDepth),
	}
}

// Update advances the machine with one EAR reading and returns the
// classification for this frame. NaN, infinite, or negative EAR is
// treated as a missing reading: the previous state and reading are held
// and no transition occurs.
func (m *EyeMachine) Update(ear float64) EyeReading {
	if math.IsNaN(ear) || math.IsInf(ear, 0) || ear < 0 {
		if m.hasLast {
			return m.last
		}
		return EyeReading{State: m.state}
	}

	if m.cooldown > 0 {
		m.cooldown--
	}

	// Lookback is judged against the states of preceding frames only;
	// this frame's state joins the history afterwards.
	lookbackOK := m.lookbackMostlyOpen()

	switch m.state {
	case EyeOpen:
		if ear < m.cfg.BlinkEARThreshold {
			m.state = EyeClosing
			m.closedFor = 1
		}

	case EyeClosing:
		if ear < m.cfg.BlinkEARThreshold {
			m.closedFor++
			if m.closedFor > m.cfg.SustainedClosedFrames {
				m.state = EyeClosed
			}
		} else {
			// Recovered before the closure sustained: a blink ended
			m.state = EyeOpen
			m.closedFor = 0
		}

	case EyeClosed:
		if ear > m.cfg.OpenEARThreshold {
			m.state = EyeOpening
			// Unwind is capped so long closures reopen promptly; its
			// only job is rejecting a single noisy high-EAR frame.
			m.unwind = m.cfg.SustainedClosedFrames
			if m.closedFor < m.unwind {
				m.unwind = m.closedFor
			}
		} else {
			m.closedFor++
		}

	case EyeOpening:
		if ear > m.cfg.OpenEARThreshold {
			m.unwind--
			if m.unwind <= 0 {
				m.state = EyeOpen
				m.closedFor = 0
				m.unwind = 0
			}
		} else {
			m.state = EyeClosed
		}
	}

	// Blink episode bookkeeping. An episode opens on the first frame of
	// a qualifying closure and covers every frame until the closure ends
	// or sustains; the cooldown only gates the start of the next one.
	switch {
	case m.state == EyeClosing && m.closedFor == 1 && !m.blinking:
		if m.cooldown == 0 && (!m.cfg.BlinkRequiresLookback || lookbackOK) {
			m.blinking = true
		}
	case m.state == EyeClosed:
		// Sustained: this closure is intent, not a blink.
		m.blinking = false
	case m.state == EyeOpen && m.blinking:
		m.blinking = false
		m.cooldown = m.cfg.BlinkCooldownFrames
	}

	reading := EyeReading{
		State:  m.state,
		EAR:    ear,
		Closed: m.state == EyeClosed || (m.state == EyeClosing && ear < m.cfg.OpenEARThreshold),
		Blink:  m.blinking && m.state == EyeClosing && m.closedFor <= m.cfg.SustainedClosedFrames,
	}

	m.recordHistory()
	m.last = reading
	m.hasLast = true
	return reading
}

// FaceLost force-resets the machine to open with all counters zeroed.
// Any supposed closure reading without a tracked face is meaningless,
// so no state survives a loss of tracking.
func (m *EyeMachine) FaceLost() EyeReading {
	m.Reset()
	reading := EyeReading{State: EyeOpen}
	m.last = reading
	m.hasLast = true
	return reading
}

// Reset returns the machine to its initial state.
func (m *EyeMachine) Reset() {
	m.state = EyeOpen
	m.closedFor = 0
	m.unwind = 0
	m.cooldown = 0
	m.blinking = false
	m.history = m.history[:0]
	m.last = EyeReading{State: EyeOpen}
	m.hasLast = false
}

// State returns the current openness state for introspection.
func (m *EyeMachine) State() EyeState {
	return m.state
}

// lookbackMostlyOpen reports whether at least two of the last three
// recorded states were open or opening.
func (m *EyeMachine) lookbackMostlyOpen() bool {
	if len(m.history) < lookbackDepth {
		return false
	}
	open := 0
	for _, s := range m.history {
		if s == EyeOpen || s == EyeOpening {
			open++
		}
	}
	return open >= 2
}

// recordHistory appends the frame's settled state, keeping only the
// most recent lookbackDepth entries.
func (m *EyeMachine) recordHistory() {
	if len(m.history) == lookbackDepth {
		copy(m.history, m.history[1:])
		m.history = m.history[:lookbackDepth-1]
	}
	m.history = append(m.history, m.state)
}
