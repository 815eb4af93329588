package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	LogLevel      string `yaml:"log_level"`
	DashboardAddr string `yaml:"dashboard_addr"`
	Profile       string `yaml:"profile"`
	Vocabulary    string `yaml:"vocabulary"`
	PlayerURL     string `yaml:"player_url"`
	TracePath     string `yaml:"trace_path"`

	BlinkEARThreshold  float64 `yaml:"blink_ear_threshold"`
	OpenEARThreshold   float64 `yaml:"open_ear_threshold"`
	StabilityThreshold float64 `yaml:"stability_threshold"`
	ConfirmFrames      int     `yaml:"confirm_frames"`
	BreakFrames        int     `yaml:"break_frames"`
	CommandCooldownMS  int     `yaml:"command_cooldown_ms"`
	FaceLossGraceMS    int     `yaml:"face_loss_grace_ms"`
	InitialGazeMS      int     `yaml:"initial_gaze_ms"`
}

// LoadSettings reads settings from YAML. If the file does not exist,
// defaults are returned.
func LoadSettings(appName string) (Settings, error) {
	settings := DefaultSettings()
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return settings, err
	}

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes settings to YAML.
func SaveSettings(appName string, settings Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		LogLevel:           settings.LogLevel,
		DashboardAddr:      settings.DashboardAddr,
		Profile:            settings.Profile,
		Vocabulary:         settings.Vocabulary,
		PlayerURL:          settings.PlayerURL,
		TracePath:          settings.TracePath,
		BlinkEARThreshold:  settings.Overrides.BlinkEARThreshold,
		OpenEARThreshold:   settings.Overrides.OpenEARThreshold,
		StabilityThreshold: settings.Overrides.StabilityThreshold,
		ConfirmFrames:      settings.Overrides.ConfirmFrames,
		BreakFrames:        settings.Overrides.BreakFrames,
		CommandCooldownMS:  settings.Overrides.CommandCooldownMS,
		FaceLossGraceMS:    settings.Overrides.FaceLossGraceMS,
		InitialGazeMS:      settings.Overrides.InitialGazeMS,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *Settings, fileData yamlSettings) {
	if fileData.LogLevel != "" {
		settings.LogLevel = fileData.LogLevel
	}
	if fileData.DashboardAddr != "" {
		settings.DashboardAddr = fileData.DashboardAddr
	}
	if fileData.Profile != "" {
		settings.Profile = fileData.Profile
	}
	if fileData.Vocabulary != "" {
		settings.Vocabulary = fileData.Vocabulary
	}
	settings.PlayerURL = fileData.PlayerURL
	settings.TracePath = fileData.TracePath

	settings.Overrides = Overrides{
		BlinkEARThreshold:  fileData.BlinkEARThreshold,
		OpenEARThreshold:   fileData.OpenEARThreshold,
		StabilityThreshold: fileData.StabilityThreshold,
		ConfirmFrames:      fileData.ConfirmFrames,
		BreakFrames:        fileData.BreakFrames,
		CommandCooldownMS:  fileData.CommandCooldownMS,
		FaceLossGraceMS:    fileData.FaceLossGraceMS,
		InitialGazeMS:      fileData.InitialGazeMS,
	}
}
