package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/binding"
	"github.com/vovakirdan/tui-pong/internal/config"
)

var flagDefaultBindings bool

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the active key bindings",
	Long: `List every key and mouse button bound to a game action.

Bindings are read from --bindings, then ~/.pong/configs/bindings.yaml,
then ./configs/bindings.yaml, falling back to the built-in defaults.

Examples:
  pong keys
  pong keys --bindings ./my-keys.toml
  pong keys --default > ~/.pong/configs/bindings.yaml`,
	Args: cobra.NoArgs,
	RunE: runKeys,
}

func init() {
	keysCmd.Flags().BoolVar(&flagDefaultBindings, "default", false, "Print the built-in bindings file")
}

func runKeys(_ *cobra.Command, _ []string) error {
	if flagDefaultBindings {
		_, err := os.Stdout.Write(config.GetDefaultYAML("bindings"))
		return err
	}

	cfg, err := config.LoadBindings(flagBindings)
	if err != nil {
		return err
	}
	remapper, err := binding.New(cfg)
	if err != nil {
		return err
	}

	entries := remapper.Entries()
	if len(entries) == 0 {
		fmt.Println("No bindings configured.")
		return nil
	}

	// Calculate column widths
	maxInputLen := len("Input")
	for _, e := range entries {
		if len(e.Input) > maxInputLen {
			maxInputLen = len(e.Input)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxInputLen, "Input", "Action")
	fmt.Printf("  %-*s  %s\n", maxInputLen, "-----", "------")
	for _, e := range entries {
		fmt.Printf("  %-*s  %s\n", maxInputLen, e.Input, e.Action)
	}
	return nil
}
