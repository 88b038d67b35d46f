package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/games/snake"
	"github.com/vovakirdan/term-snake/internal/loop"
	"github.com/vovakirdan/term-snake/internal/platform/tui"
)

const tooSmallMessage = "Minimum terminal size required is 30x15! Please try again!"

func runPlay(cmd *cobra.Command, args []string) error {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return fmt.Errorf("cannot read terminal size: %w", err)
	}

	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}
	if rc.TooSmall() {
		fmt.Fprintln(cmd.OutOrStdout(), tooSmallMessage)
		return nil
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := gameCfg.Validate(snake.WinLength); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	terminal := tui.NewTerminal(snake.FrameWidth, snake.FrameHeight)
	ctrl := loop.New(terminal, gameCfg,
		loop.WithLogger(logger),
		loop.WithSeed(rc.Seed),
	)

	logger.Debug("starting", "width", width, "height", height, "seed", rc.Seed)
	runErr := ctrl.Run(ctx)

	switch {
	case runErr == nil:
		return nil
	case errors.Is(runErr, loop.ErrHardQuit):
		return runErr
	case errors.Is(runErr, context.Canceled):
		logger.Warn("terminated by signal")
		return errors.New("terminated by signal")
	default:
		logger.Error("game aborted", "err", runErr)
		return runErr
	}
}

// newLogger returns a logger writing to path, or a discarding logger when
// path is empty. The returned func closes the log file.
func newLogger(path string, debug bool) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closer := func() {}

	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}
