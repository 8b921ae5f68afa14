// Package config provides YAML/TOML configuration loading for the
// simulation constants and the key bindings.
package config

import (
	"fmt"
	"strings"
)

// PongConfig contains all tunable constants of the simulation.
type PongConfig struct {
	Physics   PongPhysics   `yaml:"physics" toml:"physics"`
	Paddles   PongPaddles   `yaml:"paddles" toml:"paddles"`
	Ball      PongBall      `yaml:"ball" toml:"ball"`
	Playfield PongPlayfield `yaml:"playfield" toml:"playfield"`
}

// PongPhysics defines speeds in world units per second.
type PongPhysics struct {
	PaddleSpeed  float64 `yaml:"paddle_speed" toml:"paddle_speed"`
	ServeSpeed   float64 `yaml:"serve_speed" toml:"serve_speed"`
	BounceFactor float64 `yaml:"bounce_factor" toml:"bounce_factor"` // velocity multiplier per paddle hit, > 1
}

// PongPaddles defines paddle dimensions in world units.
type PongPaddles struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PongBall defines ball dimensions in world units.
type PongBall struct {
	Radius float64 `yaml:"radius" toml:"radius"`
}

// PongPlayfield defines the camera. A zero aspect follows the terminal.
type PongPlayfield struct {
	Aspect float64 `yaml:"aspect" toml:"aspect"`
}

// Binding maps one key or mouse button to an action name.
// Exactly one of Key and Button is set.
type Binding struct {
	Key    string `yaml:"key,omitempty" toml:"key,omitempty"`
	Button uint32 `yaml:"button,omitempty" toml:"button,omitempty"`
	Action string `yaml:"action" toml:"action"`
}

// BindingsConfig is the list of active bindings.
type BindingsConfig struct {
	Bindings []Binding `yaml:"bindings" toml:"bindings"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPongPreset modifies the config based on a difficulty preset.
// Unknown or empty presets leave the config untouched.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.ServeSpeed = 0.45
		cfg.Physics.BounceFactor = 1.1
		cfg.Paddles.Height = 0.4
	case DifficultyHard:
		cfg.Physics.ServeSpeed = 0.8
		cfg.Physics.BounceFactor = 1.3
		cfg.Paddles.Height = 0.25
	}
}

// ParseDifficulty validates a preset name. An empty name selects normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(name)); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}
