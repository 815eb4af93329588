package attention

import (
	"time"

	"github.com/gazepilot/go-gazepilot/pkg/player"
)

// DetectionFrame aggregates one frame's machine outputs for the action
// controller. Instances live for a single frame-processing step.
type DetectionFrame struct {
	FacePresent bool
	Eye         EyeReading
	Gaze        GazeReading
	At          time.Time
}

// ActionController arbitrates face presence, eye openness, and gaze
// engagement into an edge-triggered command stream. It is the only
// component with an observable side effect (the returned command); all
// debounce bookkeeping is private.
//
// Wall-clock decisions (cooldown, grace, initial-gaze gate) are measured
// against frame timestamps, so variable frame rates do not corrupt the
// debounce behavior.
type ActionController struct {
	cfg Config

	lastCommand   player.Command
	lastCommandAt time.Time
	lastFaceSeen  time.Time
	gazeSince     time.Time // When the current engagement began; zero when disengaged
	gateCleared   bool      // Initial-gaze gate passed for this engagement epoch
	anchored      bool
}

// NewActionController creates a controller. The config must already be
// validated; NewPipeline does this for callers.
func NewActionController(cfg Config) *ActionController {
	return &ActionController{cfg: cfg}
}

// Update evaluates one detection frame and returns the command to emit,
// if any. Emission is edge-triggered (no repeats of the standing
// command) and rate-limited by the command cooldown.
func (c *ActionController) Update(frame DetectionFrame) (player.Command, bool) {
	at := frame.At

	// The cooldown applies from the first observed frame, so a spurious
	// command cannot fire before the signal has had time to stabilize.
	if !c.anchored {
		c.anchored = true
		c.lastCommandAt = at
		c.lastFaceSeen = at
	}

	if frame.FacePresent {
		c.lastFaceSeen = at
	}

	// Track when the current engagement began.
	if frame.FacePresent && frame.Gaze.Gazing {
		if c.gazeSince.IsZero() {
			c.gazeSince = at
		}
	} else {
		c.gazeSince = time.Time{}
	}

	desired, ok := c.desired(frame, at)
	if !ok {
		return player.CommandNone, false
	}

	if desired == c.lastCommand {
		return player.CommandNone, false
	}
	if at.Sub(c.lastCommandAt) < c.cfg.CommandCooldown {
		return player.CommandNone, false
	}

	c.lastCommand = desired
	c.lastCommandAt = at
	return desired, true
}

// desired derives the command the current frame asks for, before the
// edge-trigger and cooldown rules are applied.
func (c *ActionController) desired(frame DetectionFrame, at time.Time) (player.Command, bool) {
	if !frame.FacePresent {
		if at.Sub(c.lastFaceSeen) < c.cfg.FaceLossGrace {
			// Momentary detector miss; hold rather than flap.
			return player.CommandNone, false
		}
		// Full disengagement re-arms the initial-gaze gate.
		c.gateCleared = false
		return player.CommandPause, true
	}

	if frame.Eye.Closed {
		// A short closure while engaged is a blink, not intent. The
		// Closing disjunct also covers closures the blink heuristics
		// declined to flag.
		blinkTolerated := c.cfg.IgnoreBlinkWhileGazing &&
			frame.Gaze.Gazing &&
			(frame.Eye.Blink || frame.Eye.State == EyeClosing)
		if blinkTolerated {
			return player.CommandNone, false
		}
		return player.CommandPause, true
	}

	if !frame.Gaze.Gazing {
		return player.CommandPause, true
	}

	// Engaged. The first Play of an engagement epoch waits out the
	// initial-gaze duration to confirm intent; later toggles do not.
	if !c.gateCleared {
		if c.gazeSince.IsZero() || at.Sub(c.gazeSince) < c.cfg.InitialGazeDuration {
			return player.CommandNone, false
		}
		c.gateCleared = true
	}
	return player.CommandPlay, true
}

// Reset clears the controller back to its initial state: no last
// command, gate re-armed, cooldown re-anchored at the next frame.
func (c *ActionController) Reset() {
	c.lastCommand = player.CommandNone
	c.lastCommandAt = time.Time{}
	c.lastFaceSeen = time.Time{}
	c.gazeSince = time.Time{}
	c.gateCleared = false
	c.anchored = false
}

// LastCommand returns the most recently emitted command for
// introspection.
func (c *ActionController) LastCommand() player.Command {
	return c.lastCommand
}
