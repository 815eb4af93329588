package attention

import "time"

// TuningParams holds the runtime-adjustable decision thresholds. These
// can be modified via the dashboard tuning API without restarting the
// pipeline or losing machine state.
type TuningParams struct {
	// Eye machine
	BlinkEARThreshold     float64 `json:"blink_ear_threshold"`
	OpenEARThreshold      float64 `json:"open_ear_threshold"`
	SustainedClosedFrames int     `json:"sustained_closed_frames"`
	BlinkCooldownFrames   int     `json:"blink_cooldown_frames"`

	// Gaze machine
	StabilityThreshold float64 `json:"stability_threshold"`
	ConfirmFrames      int     `json:"confirm_frames"`
	BreakFrames        int     `json:"break_frames"`

	// Action controller (milliseconds)
	CommandCooldownMS     int `json:"command_cooldown_ms"`
	FaceLossGraceMS       int `json:"face_loss_grace_ms"`
	InitialGazeDurationMS int `json:"initial_gaze_duration_ms"`
}

// GetTuningParams returns the current tuning parameters.
func (p *Pipeline) GetTuningParams() TuningParams {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return TuningParams{
		BlinkEARThreshold:     p.cfg.BlinkEARThreshold,
		OpenEARThreshold:      p.cfg.OpenEARThreshold,
		SustainedClosedFrames: p.cfg.SustainedClosedFrames,
		BlinkCooldownFrames:   p.cfg.BlinkCooldownFrames,
		StabilityThreshold:    p.cfg.StabilityThreshold,
		ConfirmFrames:         p.cfg.ConfirmFrames,
		BreakFrames:           p.cfg.BreakFrames,
		CommandCooldownMS:     int(p.cfg.CommandCooldown / time.Millisecond),
		FaceLossGraceMS:       int(p.cfg.FaceLossGrace / time.Millisecond),
		InitialGazeDurationMS: int(p.cfg.InitialGazeDuration / time.Millisecond),
	}
}

// SetTuningParams applies tuning parameters at runtime. Only positive
// values are applied; the merged configuration is validated as a whole
// before anything takes effect, so a bad update cannot leave the
// machines running with nonsensical thresholds.
func (p *Pipeline) SetTuningParams(params TuningParams) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	cfg := p.cfg

	if params.BlinkEARThreshold > 0 {
		cfg.BlinkEARThreshold = params.BlinkEARThreshold
	}
	if params.OpenEARThreshold > 0 {
		cfg.OpenEARThreshold = params.OpenEARThreshold
	}
	if params.SustainedClosedFrames > 0 {
		cfg.SustainedClosedFrames = params.SustainedClosedFrames
	}
	if params.BlinkCooldownFrames > 0 {
		cfg.BlinkCooldownFrames = params.BlinkCooldownFrames
	}
	if params.StabilityThreshold > 0 {
		cfg.StabilityThreshold = params.StabilityThreshold
	}
	if params.ConfirmFrames > 0 {
		cfg.ConfirmFrames = params.ConfirmFrames
	}
	if params.BreakFrames > 0 {
		cfg.BreakFrames = params.BreakFrames
	}
	if params.CommandCooldownMS > 0 {
		cfg.CommandCooldown = time.Duration(params.CommandCooldownMS) * time.Millisecond
	}
	if params.FaceLossGraceMS > 0 {
		cfg.FaceLossGrace = time.Duration(params.FaceLossGraceMS) * time.Millisecond
	}
	if params.InitialGazeDurationMS > 0 {
		cfg.InitialGazeDuration = time.Duration(params.InitialGazeDurationMS) * time.Millisecond
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	p.cfg = cfg
	p.eye.cfg = cfg
	p.gaze.cfg = cfg
	p.controller.cfg = cfg
	return nil
}
