package attention

import "time"

// Config holds all tunable parameters for the attention pipeline.
// Every magic threshold of the decision layer is named here; the
// machines themselves carry no hard-coded constants.
type Config struct {
	// Eye machine
	BlinkEARThreshold     float64 // Enter-closing threshold (EAR below this starts a closure)
	OpenEARThreshold      float64 // Re-open confirmation threshold (EAR above this starts reopening)
	SustainedClosedFrames int     // Closures longer than this many frames stop counting as blinks
	BlinkCooldownFrames   int     // Frames after a flagged blink during which no new blink is flagged
	BlinkRequiresLookback bool    // Require a mostly-open recent history before flagging a blink

	// Gaze machine
	WindowSize         int           // Max position samples considered
	WindowHorizon      time.Duration // Discard samples older than this, even under capacity
	MinSamples         int           // Below this, report not-gazing without advancing counters
	StabilityThreshold float64       // Max var(x)+var(y) for a frame to count as stable (px²)
	ConfirmFrames      int           // Consecutive stable frames to enter Gazing
	BreakFrames        int           // Consecutive unstable frames to leave Gazing (>= ConfirmFrames)

	// Action controller
	CommandCooldown        time.Duration // Minimum wall-clock gap between emitted commands
	FaceLossGrace          time.Duration // Continuous face absence tolerated before Pause
	InitialGazeDuration    time.Duration // One-time hold before the first Play after (re)engagement
	IgnoreBlinkWhileGazing bool          // A blink during confirmed gaze does not pause playback
}

// DefaultConfig returns the recommended configuration for webcam-rate
// input (roughly 30 fps).
func DefaultConfig() Config {
	return Config{
		// Eye machine - thresholds from the standard 6-point EAR scale
		BlinkEARThreshold:     0.18,
		OpenEARThreshold:      0.25,
		SustainedClosedFrames: 3,
		BlinkCooldownFrames:   2,
		BlinkRequiresLookback: true,

		// Gaze machine
		WindowSize:         15,
		WindowHorizon:      time.Second,
		MinSamples:         5,
		StabilityThreshold: 30.0, // px² at 640x480 tracking resolution
		ConfirmFrames:      10,
		BreakFrames:        15,

		// Action controller
		CommandCooldown:        800 * time.Millisecond,
		FaceLossGrace:          time.Second,
		InitialGazeDuration:    1500 * time.Millisecond,
		IgnoreBlinkWhileGazing: true,
	}
}

// StrictConfig returns a configuration that demands longer, stiller
// engagement before playing and pauses on any closure, blinks included.
func StrictConfig() Config {
	cfg := DefaultConfig()
	cfg.SustainedClosedFrames = 2
	cfg.BlinkCooldownFrames = 10
	cfg.ConfirmFrames = 15
	cfg.BreakFrames = 15
	cfg.StabilityThreshold = 25.0
	cfg.InitialGazeDuration = 2 * time.Second
	cfg.IgnoreBlinkWhileGazing = false
	return cfg
}

// RelaxedConfig returns a configuration tolerant of fidgety viewers:
// faster engagement, more jitter allowed, longer debounce on the way out.
func RelaxedConfig() Config {
	cfg := DefaultConfig()
	cfg.SustainedClosedFrames = 4
	cfg.ConfirmFrames = 8
	cfg.BreakFrames = 20
	cfg.StabilityThreshold = 35.0
	cfg.InitialGazeDuration = time.Second
	return cfg
}

// Validate rejects configurations the machines must not run with.
func (c Config) Validate() error {
	if c.BlinkEARThreshold >= c.OpenEARThreshold {
		return ErrThresholdOrder
	}
	if c.SustainedClosedFrames <= 0 {
		return ErrSustainedFrames
	}
	if c.BlinkCooldownFrames < 0 {
		return ErrBlinkCooldown
	}
	if c.MinSamples <= 0 {
		return ErrMinSamples
	}
	if c.WindowSize < c.MinSamples {
		return ErrWindowSize
	}
	if c.StabilityThreshold <= 0 {
		return ErrStabilityThreshold
	}
	if c.ConfirmFrames <= 0 {
		return ErrConfirmFrames
	}
	if c.BreakFrames < c.ConfirmFrames {
		return ErrBreakBelowConfirm
	}
	if c.CommandCooldown <= 0 {
		return ErrCommandCooldown
	}
	if c.FaceLossGrace <= 0 {
		return ErrFaceLossGrace
	}
	if c.InitialGazeDuration < 0 {
		return ErrInitialGaze
	}
	return nil
}
