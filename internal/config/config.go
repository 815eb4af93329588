// Package config provides configuration helpers for gazepilot commands.
package config

import (
	"os"
	"time"

	"github.com/gazepilot/go-gazepilot/pkg/attention"
)

// Default command configuration.
const (
	DefaultDashboardAddr = ":8090"
	DefaultProfile       = "default"
	DefaultVocabulary    = "video"
)

// Env returns the named environment variable or the fallback.
func Env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Settings is the full command configuration: where to listen, what to
// drive, and any per-install overrides of the decision thresholds.
type Settings struct {
	LogLevel      string
	DashboardAddr string
	Profile       string // default, strict, relaxed
	Vocabulary    string // video, document
	PlayerURL     string // websocket player remote; empty = log sink
	TracePath     string // JSONL frame trace; empty = synthetic source

	// Threshold overrides layered onto the profile preset. Zero values
	// leave the preset untouched.
	Overrides Overrides
}

// Overrides carries optional threshold overrides from the settings
// file. All fields are optional.
type Overrides struct {
	BlinkEARThreshold  float64
	OpenEARThreshold   float64
	StabilityThreshold float64
	ConfirmFrames      int
	BreakFrames        int
	CommandCooldownMS  int
	FaceLossGraceMS    int
	InitialGazeMS      int
}

// DefaultSettings returns the out-of-the-box configuration.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:      "info",
		DashboardAddr: DefaultDashboardAddr,
		Profile:       DefaultProfile,
		Vocabulary:    DefaultVocabulary,
	}
}

// AttentionConfig resolves the profile preset plus overrides into a
// pipeline configuration. Validation happens at pipeline construction.
func (s Settings) AttentionConfig() attention.Config {
	var cfg attention.Config
	switch s.Profile {
	case "strict":
		cfg = attention.StrictConfig()
	case "relaxed":
		cfg = attention.RelaxedConfig()
	default:
		cfg = attention.DefaultConfig()
	}

	o := s.Overrides
	if o.BlinkEARThreshold > 0 {
		cfg.BlinkEARThreshold = o.BlinkEARThreshold
	}
	if o.OpenEARThreshold > 0 {
		cfg.OpenEARThreshold = o.OpenEARThreshold
	}
	if o.StabilityThreshold > 0 {
		cfg.StabilityThreshold = o.StabilityThreshold
	}
	if o.ConfirmFrames > 0 {
		cfg.ConfirmFrames = o.ConfirmFrames
	}
	if o.BreakFrames > 0 {
		cfg.BreakFrames = o.BreakFrames
	}
	if o.CommandCooldownMS > 0 {
		cfg.CommandCooldown = time.Duration(o.CommandCooldownMS) * time.Millisecond
	}
	if o.FaceLossGraceMS > 0 {
		cfg.FaceLossGrace = time.Duration(o.FaceLossGraceMS) * time.Millisecond
	}
	if o.InitialGazeMS > 0 {
		cfg.InitialGazeDuration = time.Duration(o.InitialGazeMS) * time.Millisecond
	}
	return cfg
}
