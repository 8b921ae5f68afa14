// pong is a two-player Pong for the terminal.
//
// Usage:
//
//	pong play                - Play a match in this terminal
//	pong serve               - Start SSH server for remote play
//	pong history [match-id]  - Show recorded matches or the misses of one
//	pong keys                - Show the active key bindings
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible serves
//	--db <path>          - Set database path (default: ~/.pong/pong.db)
//	--config <path>      - Simulation constants (YAML or TOML)
//	--bindings <path>    - Key bindings (YAML or TOML)
//	--difficulty <name>  - easy, normal or hard
//	--log-file <path>    - Log destination (default: ~/.pong/pong.log)
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagBindings   string
	flagDifficulty string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Two-player Pong in your terminal",
	Long: `Pong is a two-player table tennis game for the terminal.

Available commands:
  play     - Play a match locally
  serve    - Start SSH server for remote play
  history  - View recorded matches
  keys     - Show key bindings

Examples:
  pong play
  pong play --difficulty hard --backend tcell
  pong serve --ssh :2222
  pong history
  pong history 3f2a9c1e`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pong/pong.db", "Path to match history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom simulation config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagBindings, "bindings", "", "Path to custom key bindings (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.pong/pong.log", "Path to log file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(keysCmd)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// settings is the resolved configuration shared by play and serve.
type settings struct {
	pong       config.PongConfig
	bindings   config.BindingsConfig
	difficulty config.DifficultyPreset
}

func loadSettings() (settings, error) {
	difficulty, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return settings{}, err
	}
	pongCfg, err := config.LoadPong(flagConfig)
	if err != nil {
		return settings{}, err
	}
	config.ApplyPongPreset(&pongCfg, difficulty)
	if err := pongCfg.Validate(); err != nil {
		return settings{}, err
	}
	bindings, err := config.LoadBindings(flagBindings)
	if err != nil {
		return settings{}, err
	}
	return settings{pong: pongCfg, bindings: bindings, difficulty: difficulty}, nil
}

// openLog opens the log file. The terminal belongs to the game, so logs
// never go to stderr while playing. The caller closes the file.
func openLog(path string) (*log.Logger, *os.File, error) {
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
	})
	return logger, f, nil
}
