package main

import (
	"fmt"
	"io"
	rand "math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/FBemf/freecell/internal/board"
	"github.com/FBemf/freecell/internal/config"
	"github.com/FBemf/freecell/internal/history"
	"github.com/FBemf/freecell/internal/savegame"
	"github.com/FBemf/freecell/internal/tui"
)

// PlayCmd runs the interactive game
type PlayCmd struct {
	Seed   *uint64 `short:"s" help:"Seed to generate the deal from (random if omitted)"`
	Load   string  `short:"l" help:"Save file to resume" type:"existingfile"`
	Config string  `short:"c" help:"HCL config file" default:"freecell.hcl"`
	Quiet  bool    `short:"q" help:"Don't write a log file"`
	Debug  bool    `help:"Log at debug level"`
}

func (p *PlayCmd) Run() error {
	cfg, err := config.Load(p.Config)
	if err != nil {
		return err
	}

	// the terminal belongs to the TUI, so logs go to a file
	logOutput := io.Discard
	if !p.Quiet {
		logFile, err := os.OpenFile("freecell.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer logFile.Close()
		logOutput = logFile
	}
	logger := log.NewWithOptions(logOutput, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if p.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	var (
		seed uint64
		b    *board.Board
		undo *history.UndoStack
	)
	switch {
	case p.Load != "":
		seed, b, undo, err = savegame.Load(p.Load)
		if err != nil {
			return err
		}
		logger.Info("resumed game", "file", p.Load, "seed", seed)
	case p.Seed != nil:
		seed = *p.Seed
		b = board.NewDeal(seed)
		undo = history.New()
	default:
		seed = rand.Uint64()
		b = board.NewDeal(seed)
		undo = history.New()
	}
	logger.Info("starting game", "seed", seed)

	model := tui.New(logger, cfg.Interface, quartz.NewReal(), seed, b, undo)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("interface error: %w", err)
	}
	return nil
}
