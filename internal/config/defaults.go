package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

//go:embed defaults/bindings.yaml
var defaultBindingsYAML []byte

// DefaultPongConfig returns the default simulation constants.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Physics: PongPhysics{
			PaddleSpeed:  2.0,
			ServeSpeed:   0.6,
			BounceFactor: 1.2,
		},
		Paddles: PongPaddles{
			Width:  0.01,
			Height: 0.3,
		},
		Ball: PongBall{
			Radius: 0.02,
		},
	}
}

// DefaultBindings returns the default two-player keyboard layout.
func DefaultBindings() BindingsConfig {
	return BindingsConfig{
		Bindings: []Binding{
			{Key: "Escape", Action: "Exit"},
			{Key: "W", Action: "LeftPaddleUp"},
			{Key: "S", Action: "LeftPaddleDown"},
			{Key: "Up", Action: "RightPaddleUp"},
			{Key: "Down", Action: "RightPaddleDown"},
			{Key: "Space", Action: "StartRound"},
			{Button: 1, Action: "StartRound"},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "pong":
		return defaultPongYAML
	case "bindings":
		return defaultBindingsYAML
	default:
		return nil
	}
}
