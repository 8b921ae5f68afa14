package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"os/user"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tcellhost"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/session"
	"github.com/vovakirdan/tui-pong/internal/sound"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagBackend     string
	flagSound       bool
	flagPlayer      string
	flagHoldTimeout time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a two-player match in this terminal.

Default controls:
  W/S        - Left paddle up/down
  Up/Down    - Right paddle up/down
  Space      - Serve (also left mouse button)
  Esc        - Quit
  Ctrl+C     - Quit

Terminals do not report key releases: a paddle keeps moving while its key
repeats and stops once the key has been quiet for --hold-timeout.

Difficulty options:
  easy   - Slow serve, gentle rally acceleration, tall paddles
  normal - Default constants
  hard   - Fast serve, steep rally acceleration, short paddles

Examples:
  pong play
  pong play --difficulty hard
  pong play --backend tcell --sound
  pong play --config ./my-pong.toml --bindings ./my-keys.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tea", "Terminal backend: tea or tcell")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name recorded in history (default: current user)")
	playCmd.Flags().DurationVar(&flagHoldTimeout, "hold-timeout", 0, "Release a key after this much silence (default 250ms)")
}

func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return "player"
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if flagBackend != "tea" && flagBackend != "tcell" {
		return fmt.Errorf("unknown backend %q (want tea or tcell)", flagBackend)
	}

	s, err := loadSettings()
	if err != nil {
		return err
	}

	logger, logFile, err := openLog(flagLogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := session.Options{
		Pong:     s.pong,
		Bindings: s.bindings,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  max(height-tui.FooterHeight, 0),
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Player:      playerName(),
		Difficulty:  string(s.difficulty),
		HoldTimeout: flagHoldTimeout,
		Logger:      logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open match database", "error", err)
		// Continue without storage - the match still works
	} else {
		defer store.Close()
		opts.Recorder = store
	}

	if flagSound {
		player := sound.NewPlayer()
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer player.Close()
			opts.Speaker = player
		}
	}

	sess, err := session.New(opts)
	if err != nil {
		return err
	}

	var runErr error
	switch flagBackend {
	case "tcell":
		host, hostErr := tcellhost.New(sess, flagFPS)
		if hostErr != nil {
			runErr = hostErr
			break
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		runErr = host.Run(ctx)
		stop()
		if errors.Is(runErr, context.Canceled) {
			runErr = nil
		}
	default:
		runErr = tui.Run(sess, flagFPS)
	}

	reason := storage.EndQuit
	if !sess.Quit() {
		reason = storage.EndDisconnect
	}
	if err := sess.Close(reason); err != nil {
		logger.Warn("could not finish match", "error", err)
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	if id := sess.MatchID(); id != "" {
		st := sess.State()
		fmt.Printf("Match %s ended %d - %d\n", shortID(id), st.Match.LeftScore, st.Match.RightScore)
	}
	return nil
}
