// Package tui is the interactive interface loop. It owns no rules: it maps
// typed commands to board addresses, feeds every accepted transition through
// the undo stack, and drives the auto-move timer. All engine calls are
// serialized through the bubbletea update loop.
package tui

import (
	"fmt"
	rand "math/rand/v2"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/FBemf/freecell/internal/board"
	"github.com/FBemf/freecell/internal/card"
	"github.com/FBemf/freecell/internal/config"
	"github.com/FBemf/freecell/internal/history"
	"github.com/FBemf/freecell/internal/savegame"
)

// Model is the bubbletea model for one session. It may run many deals; the
// undo stack is replaced whenever a new deal starts.
type Model struct {
	logger *log.Logger
	cfg    config.InterfaceSettings
	clock  quartz.Clock

	seed  uint64
	board *board.Board
	undo  *history.UndoStack

	input     textinput.Model
	status    string
	statusErr bool
	statusGen int
	quitting  bool
}

type autoMoveMsg struct{}

type clearStatusMsg struct{ gen int }

// New creates a session model for the given deal
func New(logger *log.Logger, cfg config.InterfaceSettings, clock quartz.Clock, seed uint64, b *board.Board, undo *history.UndoStack) *Model {
	ti := textinput.New()
	ti.Placeholder = "move 3 7 2 | undo | redo | new | save | help"
	ti.Focus()
	ti.CharLimit = 60
	ti.Prompt = "> "

	return &Model{
		logger: logger.WithPrefix("tui"),
		cfg:    cfg,
		clock:  clock,
		seed:   seed,
		board:  b,
		undo:   undo,
		input:  ti,
	}
}

// Init starts the input cursor and the auto-move timer
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.autoMoveTick())
}

// autoMoveTick waits one auto-move interval on the injected clock
func (m *Model) autoMoveTick() tea.Cmd {
	timer := m.clock.NewTimer(m.cfg.AutoMoveInterval())
	return func() tea.Msg {
		<-timer.C
		return autoMoveMsg{}
	}
}

// Update handles bubbletea messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			return m.runCommand(line)
		}

	case autoMoveMsg:
		if !m.board.HasFloating() {
			if next, ok := m.board.AutoMoveToFoundations(); ok {
				m.board = m.undo.SneakUpdate(m.board, next)
				m.logger.Debug("auto-move to foundation\n" + m.board.View().String())
			}
		}
		return m, m.autoMoveTick()

	case clearStatusMsg:
		if msg.gen == m.statusGen {
			m.status = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// setStatus shows transient status text and schedules its expiry
func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.status = text
	m.statusErr = isErr
	m.statusGen++
	gen := m.statusGen
	timer := m.clock.NewTimer(m.cfg.StatusDuration())
	return func() tea.Msg {
		<-timer.C
		return clearStatusMsg{gen: gen}
	}
}

// runCommand parses and executes one typed command
func (m *Model) runCommand(line string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(strings.ToLower(line))
	switch fields[0] {
	case "quit", "q", "exit":
		m.quitting = true
		return m, tea.Quit

	case "undo", "u":
		m.board = m.undo.Undo(m.board)
		return m, nil

	case "redo", "r":
		m.board = m.undo.Redo(m.board)
		return m, nil

	case "move", "m":
		return m.runMove(fields[1:])

	case "new", "n":
		seed := rand.Uint64()
		if len(fields) > 1 {
			parsed, err := parseSeed(fields[1])
			if err != nil {
				return m, m.setStatus(err.Error(), true)
			}
			seed = parsed
		}
		m.seed = seed
		m.board = board.NewDeal(seed)
		m.undo = history.New()
		m.logger.Info("new deal", "seed", seed)
		return m, m.setStatus(fmt.Sprintf("new deal %d", seed), false)

	case "save", "s":
		if len(fields) > 1 {
			if err := savegame.Save(fields[1], m.seed, m.board, m.undo); err != nil {
				m.logger.Error("save failed", "error", err)
				return m, m.setStatus("save failed", true)
			}
			return m, m.setStatus("saved to "+fields[1], false)
		}
		path, err := savegame.SaveNew(m.cfg.SaveDir, m.cfg.SavePrefix, m.seed, m.board, m.undo)
		if err != nil {
			m.logger.Error("save failed", "error", err)
			return m, m.setStatus("save failed", true)
		}
		return m, m.setStatus("saved to "+path, false)

	case "seed":
		return m, m.setStatus(fmt.Sprintf("seed %d", m.seed), false)

	case "help", "h", "?":
		return m, m.setStatus(helpText, false)

	default:
		return m, m.setStatus(fmt.Sprintf("unknown command %q (try help)", fields[0]), true)
	}
}

const helpText = "move <from> <to> [count] (from/to: 1-8 column, a-d free cell, to may be 'f' for foundation); undo/redo, new [seed], save [path], seed, quit"

// runMove performs a pick-up followed by a placement as two recorded
// transitions, so the undo stack sees the same shape of history as a
// pointer-driven interface would. A failed placement drops the held cards
// back where they came from via Undo.
func (m *Model) runMove(args []string) (tea.Model, tea.Cmd) {
	if len(args) < 2 {
		return m, m.setStatus("usage: move <from> <to> [count]", true)
	}
	src, err := parseSource(args[0])
	if err != nil {
		return m, m.setStatus(err.Error(), true)
	}
	count := 1
	if len(args) > 2 {
		count, err = strconv.Atoi(args[2])
		if err != nil {
			return m, m.setStatus(fmt.Sprintf("bad count %q", args[2]), true)
		}
	}

	var picked *board.Board
	if src.Kind == card.KindColumn {
		picked, err = m.board.PickUpStack(src, count)
	} else {
		if count != 1 {
			return m, m.setStatus("can only move one card from a free cell", true)
		}
		picked, err = m.board.PickUpCard(src)
	}
	if err != nil {
		m.logger.Debug("pick-up rejected", "from", src, "error", err)
		return m, m.setStatus(err.Error(), true)
	}
	m.board = m.undo.Update(m.board, picked)

	dst, err := parseDestination(args[1], m.board)
	if err != nil {
		m.board = m.undo.Undo(m.board)
		return m, m.setStatus(err.Error(), true)
	}
	placed, err := m.board.Place(dst)
	if err != nil {
		m.logger.Debug("placement rejected", "to", dst, "error", err)
		m.board = m.undo.Undo(m.board)
		return m, m.setStatus(err.Error(), true)
	}
	m.board = m.undo.Update(m.board, placed)
	m.logger.Debug("move complete\n" + m.board.View().String())
	return m, nil
}

// View renders the board, status line, and command input
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(" ♠ ♥ FreeCell ♦ ♣ "))
	sb.WriteString(InfoStyle.Render(fmt.Sprintf("  seed %d", m.seed)))
	sb.WriteString("\n\n")
	sb.WriteString(renderBoard(m.board.View()))
	sb.WriteString("\n")

	if m.board.View().IsWon() {
		sb.WriteString(WinStyle.Render("You won! Type 'new' to deal again."))
		sb.WriteString("\n")
	}
	if m.status != "" {
		style := StatusStyle
		if m.statusErr {
			style = ErrorStyle
		}
		sb.WriteString(style.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	return sb.String()
}
