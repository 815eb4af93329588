package attention

import "errors"

// Sentinel errors for configuration validation. The machines refuse to
// run with nonsensical thresholds; these surface at construction time.
var (
	// ErrThresholdOrder indicates the blink threshold is not below the
	// open threshold, which would make the eye machine oscillate.
	ErrThresholdOrder = errors.New("attention: blink EAR threshold must be below open EAR threshold")

	// ErrSustainedFrames indicates a non-positive sustained-closure count.
	ErrSustainedFrames = errors.New("attention: sustained closed frames must be positive")

	// ErrBlinkCooldown indicates a negative blink cooldown.
	ErrBlinkCooldown = errors.New("attention: blink cooldown frames must not be negative")

	// ErrWindowSize indicates the gaze window cannot hold the minimum
	// sample count.
	ErrWindowSize = errors.New("attention: window size must be at least the minimum sample count")

	// ErrMinSamples indicates a non-positive minimum sample count.
	ErrMinSamples = errors.New("attention: minimum samples must be positive")

	// ErrStabilityThreshold indicates a non-positive variance threshold.
	ErrStabilityThreshold = errors.New("attention: stability threshold must be positive")

	// ErrConfirmFrames indicates a non-positive gaze confirm count.
	ErrConfirmFrames = errors.New("attention: confirm frames must be positive")

	// ErrBreakBelowConfirm indicates break frames below confirm frames.
	// Leaving gaze must tolerate at least as much noise as entering it.
	ErrBreakBelowConfirm = errors.New("attention: break frames must be >= confirm frames")

	// ErrCommandCooldown indicates a non-positive command cooldown.
	ErrCommandCooldown = errors.New("attention: command cooldown must be positive")

	// ErrFaceLossGrace indicates a non-positive face-loss grace period.
	ErrFaceLossGrace = errors.New("attention: face loss grace must be positive")

	// ErrInitialGaze indicates a negative initial gaze duration.
	ErrInitialGaze = errors.New("attention: initial gaze duration must not be negative")
)
