package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
)

// Board cell dimensions in characters, including the shared border.
const (
	cellWidth  = 7
	cellHeight = 2
)

// Minimum terminal size needed to show the board plus HUD.
const (
	minScreenW = game.BoardSize*cellWidth + 1 + 4
	minScreenH = game.BoardSize*cellHeight + 1 + 5
)

// Model is the Bubble Tea model driving one game. It owns the
// presentation state (screen buffer, elapsed clock, help bar) and calls
// into the grid engine on each directional key.
type Model struct {
	engine *game.Engine
	screen *core.Screen
	cfg    config.Config
	keys   KeyMap
	help   help.Model
	logger *log.Logger

	status   game.Status
	elapsed  int // Whole seconds since start, frozen at game over
	width    int
	height   int
	quitting bool
}

// NewModel creates a model for the given engine and terminal size.
func NewModel(engine *game.Engine, cfg config.Config, logger *log.Logger, width, height int) Model {
	m := Model{
		engine: engine,
		cfg:    cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
		status: engine.Status(),
		width:  width,
		height: height,
	}
	m.screen = core.NewScreen(width, height-m.helpLines())
	m.help.Width = width
	return m
}

// helpLines returns how many terminal rows the help bar reserves.
func (m Model) helpLines() int {
	if m.cfg.UI.ShowHelp {
		return 1
	}
	return 0
}

// Init starts the elapsed-time clock.
func (m Model) Init() tea.Cmd {
	return clockCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, msg.Height-m.helpLines())
		m.help.Width = msg.Width
		return m, nil

	case ClockMsg:
		return m.handleClock()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		return m.applyMove(game.DirUp)
	case key.Matches(msg, m.keys.Down):
		return m.applyMove(game.DirDown)
	case key.Matches(msg, m.keys.Left):
		return m.applyMove(game.DirLeft)
	case key.Matches(msg, m.keys.Right):
		return m.applyMove(game.DirRight)
	}

	return m, nil
}

// applyMove runs one engine step: move, spawn on change, re-derive
// status. Moves are ignored once the game is over.
func (m Model) applyMove(dir game.Direction) (tea.Model, tea.Cmd) {
	if m.status == game.StatusOver {
		return m, nil
	}

	res := m.engine.ApplyMove(dir)
	if !res.Changed {
		return m, nil
	}

	m.engine.SpawnTile()
	m.status = m.engine.Status()

	m.logger.Debug("move", "dir", dir, "delta", res.ScoreDelta, "score", m.engine.Score())
	if m.status == game.StatusOver {
		m.logger.Info("game over",
			"score", m.engine.Score(),
			"max_tile", game.MaxTile(m.engine.Board()),
			"elapsed", m.elapsed)
	}

	return m, nil
}

// handleClock advances the elapsed-time display. The clock is not
// rescheduled once the game is over, so the display freezes.
func (m Model) handleClock() (tea.Model, tea.Cmd) {
	if m.status == game.StatusOver {
		return m, nil
	}
	m.elapsed++
	return m, clockCmd()
}

// saveScreenshot dumps the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.render()

	dir := m.cfg.UI.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		dir = filepath.Join(home, ".tui-2048", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "dir", dir, "error", err)
		return
	}

	path := filepath.Join(dir, fmt.Sprintf("2048_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	view := RenderScreen(m.screen)
	if m.cfg.UI.ShowHelp {
		view += "\n" + m.help.View(m.keys)
	}
	return view
}

// render draws the full frame into the screen buffer.
func (m *Model) render() {
	m.screen.Clear()

	if m.width < minScreenW || m.screen.Height() < minScreenH {
		m.renderTooSmall()
		return
	}

	boardW := game.BoardSize*cellWidth + 1
	boardH := game.BoardSize*cellHeight + 1
	boardX := (m.width - boardW) / 2
	boardY := 3

	m.renderHUD(boardX, boardW)
	m.renderBoard(boardX, boardY)

	if m.status == game.StatusOver {
		m.renderGameOver(boardX, boardY, boardW, boardH)
	}
}

// renderTooSmall shows a resize hint instead of the board.
func (m *Model) renderTooSmall() {
	y := m.screen.Height() / 2
	m.screen.DrawTextCentered(y, "Window too small")
	m.screen.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and elapsed time above the board.
func (m *Model) renderHUD(boardX, boardW int) {
	theme := m.cfg.Theme

	title := "2048"
	titleX := boardX + (boardW-len(title))/2
	m.screen.DrawTextColor(titleX, 0, title, theme.AccentColor())

	scoreStr := fmt.Sprintf("Score: %d", m.engine.Score())
	m.screen.DrawTextColor(boardX, 1, scoreStr, theme.TextColor())

	timeStr := fmt.Sprintf("Time: %ds", m.elapsed)
	timeX := core.Max(boardX+boardW-len(timeStr), boardX+len(scoreStr)+2)
	m.screen.DrawTextColor(timeX, 1, timeStr, theme.TextColor())
}

// renderBoard draws the 4x4 grid with colored tiles.
func (m *Model) renderBoard(boardX, boardY int) {
	board := m.engine.Board()
	boardColor := m.cfg.Theme.BoardColor()

	// Grid lines and intersections
	for y := range game.BoardSize + 1 {
		for x := range game.BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == game.BoardSize:
				corner = '┐'
			case y == game.BoardSize && x == 0:
				corner = '└'
			case y == game.BoardSize && x == game.BoardSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == game.BoardSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == game.BoardSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			m.screen.SetCell(px, py, corner, boardColor)

			if x < game.BoardSize {
				for i := 1; i < cellWidth; i++ {
					m.screen.SetCell(px+i, py, '─', boardColor)
				}
			}
			if y < game.BoardSize {
				for i := 1; i < cellHeight; i++ {
					m.screen.SetCell(px, py+i, '│', boardColor)
				}
			}
		}
	}

	// Tiles, centered in their cells
	for y := range game.BoardSize {
		for x := range game.BoardSize {
			val := board[y][x]
			if val == 0 {
				continue
			}

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := core.Max((cellWidth-1-len(valStr))/2, 0)

			m.screen.DrawTextColor(cellX+padLeft, cellY, valStr, m.cfg.Theme.TileColor(val))
		}
	}
}

// renderGameOver draws the terminal-state overlay across the board.
func (m *Model) renderGameOver(boardX, boardY, boardW, boardH int) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Max tile: %d", game.MaxTile(m.engine.Board())),
		"Press Q to quit",
	}

	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := boardX + (boardW-boxW)/2
	boxY := boardY + (boardH-boxH)/2

	m.screen.FillRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	m.screen.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	accent := m.cfg.Theme.AccentColor()
	for i, line := range lines {
		x := boxX + (boxW-len(line))/2
		if i == 0 {
			m.screen.DrawTextColor(x, boxY+1+i, line, accent)
		} else {
			m.screen.DrawText(x, boxY+1+i, line)
		}
	}
}

// Run starts the Bubble Tea program for the given engine and blocks
// until the player quits.
func Run(engine *game.Engine, cfg config.Config, logger *log.Logger, width, height int) error {
	model := NewModel(engine, cfg, logger, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
