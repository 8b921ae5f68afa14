package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML PongConfig
	if err := yaml.Unmarshal(GetDefaultYAML("pong"), &fromYAML); err != nil {
		t.Fatalf("embedded pong.yaml does not parse: %v", err)
	}
	if fromYAML != DefaultPongConfig() {
		t.Errorf("embedded pong.yaml = %+v, expected %+v", fromYAML, DefaultPongConfig())
	}

	var bindings BindingsConfig
	if err := yaml.Unmarshal(GetDefaultYAML("bindings"), &bindings); err != nil {
		t.Fatalf("embedded bindings.yaml does not parse: %v", err)
	}
	if len(bindings.Bindings) != len(DefaultBindings().Bindings) {
		t.Errorf("embedded bindings has %d entries, expected %d", len(bindings.Bindings), len(DefaultBindings().Bindings))
	}
	if err := bindings.Validate(); err != nil {
		t.Errorf("embedded bindings invalid: %v", err)
	}
	if GetDefaultYAML("flappy") != nil {
		t.Error("unknown config name should have no default")
	}
}

func TestLoadPongCustomYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.yaml")
	data := []byte("physics:\n  serve_speed: 0.9\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPong(path)
	if err != nil {
		t.Fatalf("LoadPong() failed: %v", err)
	}
	if cfg.Physics.ServeSpeed != 0.9 {
		t.Errorf("ServeSpeed = %v, expected 0.9", cfg.Physics.ServeSpeed)
	}
	// Unset keys keep their defaults.
	if cfg.Physics.BounceFactor != 1.2 {
		t.Errorf("BounceFactor = %v, expected default 1.2", cfg.Physics.BounceFactor)
	}
}

func TestLoadPongCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.toml")
	data := []byte("[physics]\nbounce_factor = 1.5\n\n[paddles]\nheight = 0.5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPong(path)
	if err != nil {
		t.Fatalf("LoadPong() failed: %v", err)
	}
	if cfg.Physics.BounceFactor != 1.5 {
		t.Errorf("BounceFactor = %v, expected 1.5", cfg.Physics.BounceFactor)
	}
	if cfg.Paddles.Height != 0.5 {
		t.Errorf("Paddles.Height = %v, expected 0.5", cfg.Paddles.Height)
	}
}

func TestLoadPongMissingCustomPath(t *testing.T) {
	if _, err := LoadPong(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadPong() with a missing custom path should fail")
	}
}

func TestLoadPongInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  bounce_factor: 0.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPong(path); err == nil {
		t.Error("LoadPong() should reject bounce_factor < 1")
	}
}

func TestLoadBindingsUnknownAction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.yaml")
	data := []byte("bindings:\n  - key: W\n    action: Jump\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadBindings(path)
	if !errors.Is(err, ErrUnknownAction) {
		t.Errorf("LoadBindings() error = %v, expected ErrUnknownAction", err)
	}
}

func TestLoadBindingsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.toml")
	data := []byte("[[bindings]]\nkey = \"Hyper\"\naction = \"Exit\"\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadBindings(path)
	if !errors.Is(err, ErrUnknownKey) {
		t.Errorf("LoadBindings() error = %v, expected ErrUnknownKey", err)
	}
}

func TestLoadBindingsEmptyFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.yaml")
	if err := os.WriteFile(path, []byte("bindings: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadBindings(path)
	if err != nil {
		t.Fatalf("LoadBindings() failed: %v", err)
	}
	if len(cfg.Bindings) != len(DefaultBindings().Bindings) {
		t.Errorf("empty bindings should fall back to defaults, got %d", len(cfg.Bindings))
	}
}

func TestApplyPongPreset(t *testing.T) {
	cfg := DefaultPongConfig()
	ApplyPongPreset(&cfg, DifficultyNormal)
	if cfg != DefaultPongConfig() {
		t.Error("normal preset should keep defaults")
	}

	ApplyPongPreset(&cfg, DifficultyHard)
	if cfg.Physics.ServeSpeed <= DefaultPongConfig().Physics.ServeSpeed {
		t.Error("hard preset should serve faster")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("hard preset invalid: %v", err)
	}

	cfg = DefaultPongConfig()
	ApplyPongPreset(&cfg, DifficultyEasy)
	if cfg.Physics.BounceFactor >= DefaultPongConfig().Physics.BounceFactor {
		t.Error("easy preset should accelerate rallies less")
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"HARD", DifficultyHard, false},
		{"fixed", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDifficulty(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDifficulty(%q) err = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseDifficulty(%q) = %q, expected %q", tt.in, got, tt.want)
			}
		})
	}
}
