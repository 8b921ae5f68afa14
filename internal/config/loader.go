package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/rawinput"
)

var (
	// ErrUnknownAction is returned for a binding naming an undefined action.
	ErrUnknownAction = errors.New("unknown action")
	// ErrUnknownKey is returned for a binding naming an undefined key.
	ErrUnknownKey = errors.New("unknown key")
)

// LoadPong loads the simulation constants.
// Search order: customPath -> ~/.pong/configs/pong.yaml -> ./configs/pong.yaml -> embedded default
func LoadPong(customPath string) (PongConfig, error) {
	cfg := DefaultPongConfig()
	if err := load(customPath, "pong.yaml", defaultPongYAML, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadBindings loads the key bindings.
// Search order: customPath -> ~/.pong/configs/bindings.yaml -> ./configs/bindings.yaml -> embedded default
func LoadBindings(customPath string) (BindingsConfig, error) {
	var cfg BindingsConfig
	if err := load(customPath, "bindings.yaml", defaultBindingsYAML, &cfg); err != nil {
		return cfg, err
	}
	if len(cfg.Bindings) == 0 {
		cfg = DefaultBindings()
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// load fills out from the first readable source. A custom path must load;
// the user and local files are skipped when missing or malformed.
func load(customPath, filename string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := decode(customPath, data, out); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return nil
	}

	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		if data, err := os.ReadFile(path); err == nil {
			if err := decode(path, data, out); err == nil {
				return nil
			}
		}
	}

	// Embedded default; the hard-coded value already in out is the fallback.
	//nolint:errcheck // embedded YAML is covered by tests
	decode(filename, embedded, out)
	return nil
}

// decode picks the format from the file extension: .toml is TOML,
// everything else YAML.
func decode(path string, data []byte, out any) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, out)
	}
	return yaml.Unmarshal(data, out)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong", "configs", filename)
}

// Validate checks that all constants are usable.
func (c PongConfig) Validate() error {
	switch {
	case c.Physics.PaddleSpeed < 0:
		return fmt.Errorf("config: paddle_speed must not be negative, got %v", c.Physics.PaddleSpeed)
	case c.Physics.ServeSpeed <= 0:
		return fmt.Errorf("config: serve_speed must be positive, got %v", c.Physics.ServeSpeed)
	case c.Physics.BounceFactor < 1:
		return fmt.Errorf("config: bounce_factor must be at least 1, got %v", c.Physics.BounceFactor)
	case c.Paddles.Width <= 0 || c.Paddles.Height <= 0:
		return fmt.Errorf("config: paddle dimensions must be positive, got %vx%v", c.Paddles.Width, c.Paddles.Height)
	case c.Paddles.Height >= 2:
		return fmt.Errorf("config: paddle height must be below the playfield height 2, got %v", c.Paddles.Height)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("config: ball radius must be positive, got %v", c.Ball.Radius)
	case c.Playfield.Aspect < 0:
		return fmt.Errorf("config: aspect must not be negative, got %v", c.Playfield.Aspect)
	}
	return nil
}

// Validate checks that every binding names a known action and a known key
// or a button.
func (c BindingsConfig) Validate() error {
	for i, b := range c.Bindings {
		if _, ok := core.ParseAction(b.Action); !ok {
			return fmt.Errorf("config: binding %d: %w %q", i, ErrUnknownAction, b.Action)
		}
		if b.Key == "" && b.Button == 0 {
			return fmt.Errorf("config: binding %d: needs a key or a button", i)
		}
		if b.Key != "" {
			if _, ok := rawinput.ParseKeyCode(b.Key); !ok {
				return fmt.Errorf("config: binding %d: %w %q", i, ErrUnknownKey, b.Key)
			}
		}
	}
	return nil
}
