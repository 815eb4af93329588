package attention

import (
	"errors"
	"testing"
	"time"
)

func TestConfig_PresetsValidate(t *testing.T) {
	presets := map[string]Config{
		"default": DefaultConfig(),
		"strict":  StrictConfig(),
		"relaxed": RelaxedConfig(),
	}

	for name, cfg := range presets {
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s preset invalid: %v", name, err)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "blink threshold above open threshold",
			mutate:  func(c *Config) { c.BlinkEARThreshold = 0.30 },
			wantErr: ErrThresholdOrder,
		},
		{
			name:    "equal thresholds",
			mutate:  func(c *Config) { c.BlinkEARThreshold = c.OpenEARThreshold },
			wantErr: ErrThresholdOrder,
		},
		{
			name:    "zero sustained frames",
			mutate:  func(c *Config) { c.SustainedClosedFrames = 0 },
			wantErr: ErrSustainedFrames,
		},
		{
			name:    "negative blink cooldown",
			mutate:  func(c *Config) { c.BlinkCooldownFrames = -1 },
			wantErr: ErrBlinkCooldown,
		},
		{
			name:    "zero min samples",
			mutate:  func(c *Config) { c.MinSamples = 0 },
			wantErr: ErrMinSamples,
		},
		{
			name:    "window smaller than min samples",
			mutate:  func(c *Config) { c.WindowSize = 3 },
			wantErr: ErrWindowSize,
		},
		{
			name:    "zero stability threshold",
			mutate:  func(c *Config) { c.StabilityThreshold = 0 },
			wantErr: ErrStabilityThreshold,
		},
		{
			name:    "zero confirm frames",
			mutate:  func(c *Config) { c.ConfirmFrames = 0 },
			wantErr: ErrConfirmFrames,
		},
		{
			name:    "break below confirm",
			mutate:  func(c *Config) { c.BreakFrames = c.ConfirmFrames - 1 },
			wantErr: ErrBreakBelowConfirm,
		},
		{
			name:    "zero command cooldown",
			mutate:  func(c *Config) { c.CommandCooldown = 0 },
			wantErr: ErrCommandCooldown,
		},
		{
			name:    "zero face loss grace",
			mutate:  func(c *Config) { c.FaceLossGrace = 0 },
			wantErr: ErrFaceLossGrace,
		},
		{
			name:    "negative initial gaze",
			mutate:  func(c *Config) { c.InitialGazeDuration = -time.Second },
			wantErr: ErrInitialGaze,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ZeroInitialGazeAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitialGazeDuration = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("zero initial gaze rejected: %v", err)
	}
}
