// Package attention turns a noisy per-frame stream of facial geometry
// into a small set of debounced play/pause commands. It is the temporal
// decision layer between an external landmark extractor and an external
// media player: three cooperating state machines (eye openness, gaze
// stability, action arbitration) evaluated synchronously once per frame.
package attention

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gazepilot/go-gazepilot/pkg/player"
	"github.com/gazepilot/go-gazepilot/pkg/signal"
)

// Snapshot is a read-only export of pipeline state for dashboards and
// telemetry. It is an observability surface, never an input to the
// decision logic.
type Snapshot struct {
	SessionID   string    `json:"session_id"`
	At          time.Time `json:"at"`
	FacePresent bool      `json:"face_present"`
	EyeState    string    `json:"eye_state"`
	EAR         float64   `json:"ear"`
	EyesClosed  bool      `json:"eyes_closed"`
	Blink       bool      `json:"blink"`
	GazeState   string    `json:"gaze_state"`
	Gazing      bool      `json:"gazing"`
	VarianceSum float64   `json:"variance_sum"`
	Samples     int       `json:"samples"`
	LastCommand string    `json:"last_command"`
	FPS         float64   `json:"fps"`
	Frames      uint64    `json:"frames"`
}

// StateSink receives a snapshot after every processed frame. Sinks must
// not block; the pipeline calls them inline.
type StateSink interface {
	Publish(Snapshot)
}

// fpsSampleFrames is how many frames the FPS estimate averages over.
const fpsSampleFrames = 10

// Pipeline is the per-frame arbiter: one signal flows through the eye
// and gaze machines, then into the action controller. Process is a
// plain call-and-return step intended to run on a single goroutine; the
// internal lock only protects the tuning and snapshot surfaces read by
// the dashboard.
type Pipeline struct {
	mu     sync.RWMutex
	cfg    Config
	logger *slog.Logger

	eye        *EyeMachine
	gaze       *GazeMachine
	controller *ActionController

	sink StateSink

	sessionID string
	frames    uint64
	fps       float64
	fpsAnchor time.Time

	last Snapshot
}

// NewPipeline validates the configuration and assembles the three
// machines under a fresh session ID.
func NewPipeline(cfg Config, logger *slog.Logger) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	p := &Pipeline{
		cfg:        cfg,
		logger:     logger,
		eye:        NewEyeMachine(cfg),
		gaze:       NewGazeMachine(cfg),
		controller: NewActionController(cfg),
		sessionID:  uuid.NewString(),
	}

	logger.Info("attention pipeline ready",
		"session", p.sessionID,
		"confirm_frames", cfg.ConfirmFrames,
		"break_frames", cfg.BreakFrames,
		"stability_threshold", cfg.StabilityThreshold,
		"command_cooldown", cfg.CommandCooldown,
	)

	return p, nil
}

// SetStateSink registers the snapshot receiver (dashboard hub).
func (p *Pipeline) SetStateSink(sink StateSink) {
	p.mu.Lock()
	p.sink = sink
	p.mu.Unlock()
}

// Process runs one frame through all three machines and returns the
// command to forward downstream, if any. It never blocks and never
// panics on malformed numeric input.
func (p *Pipeline) Process(frame signal.Frame) (player.Command, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var eye EyeReading
	var gaze GazeReading

	if frame.FacePresent {
		// Update holds state on invalid EAR readings by itself.
		eye = p.eye.Update(frame.EAR)
		gaze = p.gaze.Update(frame.Position, frame.At)
	} else {
		eye = p.eye.FaceLost()
		gaze = p.gaze.FaceLost(frame.At)
	}

	cmd, emitted := p.controller.Update(DetectionFrame{
		FacePresent: frame.FacePresent,
		Eye:         eye,
		Gaze:        gaze,
		At:          frame.At,
	})

	p.frames++
	p.updateFPS(frame.At)

	p.last = Snapshot{
		SessionID:   p.sessionID,
		At:          frame.At,
		FacePresent: frame.FacePresent,
		EyeState:    eye.State.String(),
		EAR:         eye.EAR,
		EyesClosed:  eye.Closed,
		Blink:       eye.Blink,
		GazeState:   p.gaze.State().String(),
		Gazing:      gaze.Gazing,
		VarianceSum: gaze.VarianceSum,
		Samples:     gaze.Samples,
		LastCommand: p.controller.LastCommand().String(),
		FPS:         p.fps,
		Frames:      p.frames,
	}

	if p.sink != nil {
		p.sink.Publish(p.last)
	}

	if emitted {
		p.logger.Info("command emitted",
			"session", p.sessionID,
			"command", cmd.String(),
			"eye_state", eye.State.String(),
			"gazing", gaze.Gazing,
			"face_present", frame.FacePresent,
		)
	}

	return cmd, emitted
}

// Reset zeros all three machines' counters and windows, clears the last
// command, and starts a new session. Callers invoke it when the capture
// session restarts so the pipeline never resumes mid-debounce on stale
// data.
func (p *Pipeline) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.eye.Reset()
	p.gaze.Reset()
	p.controller.Reset()
	p.frames = 0
	p.fps = 0
	p.fpsAnchor = time.Time{}
	p.sessionID = uuid.NewString()
	p.last = Snapshot{SessionID: p.sessionID}

	p.logger.Info("attention pipeline reset", "session", p.sessionID)
}

// Snapshot returns the most recent per-frame snapshot.
func (p *Pipeline) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.last
}

// SessionID returns the current session identifier.
func (p *Pipeline) SessionID() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.sessionID
}

// Config returns a copy of the active configuration.
func (p *Pipeline) Config() Config {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cfg
}

// updateFPS estimates throughput from frame timestamps, averaged over
// fpsSampleFrames frames.
func (p *Pipeline) updateFPS(at time.Time) {
	if p.fpsAnchor.IsZero() {
		p.fpsAnchor = at
		return
	}
	if p.frames%fpsSampleFrames != 0 {
		return
	}
	elapsed := at.Sub(p.fpsAnchor).Seconds()
	if elapsed > 0 {
		p.fps = fpsSampleFrames / elapsed
	}
	p.fpsAnchor = at
}
