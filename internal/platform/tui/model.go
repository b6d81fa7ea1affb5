package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/games/starcatch"
	"github.com/vovakirdan/starcatch/internal/storage"
)

const (
	hudRows   = 1  // Status bar below the arena
	cueFrames = 30 // How many ticks a HUD cue stays visible
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// viewport tracks the terminal size and converts it to arena units.
type viewport struct {
	cols, rows   int
	cellW, cellH float32
}

// ArenaSize reports the arena in arena units: every cell below the HUD.
func (v *viewport) ArenaSize() (float32, float32, error) {
	rows := v.rows - hudRows
	if v.cols <= 0 || rows <= 0 {
		return 0, 0, fmt.Errorf("terminal too small: %dx%d", v.cols, v.rows)
	}
	return float32(v.cols) * v.cellW, float32(rows) * v.cellH, nil
}

// Model is the Bubble Tea model hosting the starcatch simulation.
type Model struct {
	game      *starcatch.Game
	view      *viewport
	screen    *core.Screen
	keys      KeyMap
	mapper    *KeyMapper
	help      help.Model
	scores    table.Model
	hasScores bool
	rank      int
	store     *storage.Store
	runtime   core.RuntimeConfig
	logger    *log.Logger
	last      starcatch.StepResult
	cue       string
	cueLeft   int
	err       error
	quitting  bool
}

// NewModel creates the game and its host model. The store is optional.
func NewModel(cfg config.StarcatchConfig, rt core.RuntimeConfig, store *storage.Store, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	view := &viewport{
		cols:  rt.ScreenW,
		rows:  rt.ScreenH,
		cellW: cfg.Arena.CellWidth,
		cellH: cfg.Arena.CellHeight,
	}

	var recorder starcatch.ScoreRecorder
	if store != nil {
		recorder = store
	}
	game, err := starcatch.New(cfg, rt, view,
		starcatch.WithLogger(logger),
		starcatch.WithHighScores(starcatch.NewHighScores(recorder, logger)),
	)
	if err != nil {
		return Model{}, err
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		game:    game,
		view:    view,
		screen:  core.NewScreen(rt.ScreenW, max(rt.ScreenH-hudRows, 0)),
		keys:    keys,
		mapper:  NewKeyMapper(keys),
		help:    h,
		scores:  newScoreTable(),
		store:   store,
		runtime: rt,
		logger:  logger,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		m.mapper.HandleKey(msg, time.Now())
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleResize updates the arena size. The game picks it up on the next tick.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.view.cols = msg.Width
	m.view.rows = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-hudRows, 0))
	m.help.Width = msg.Width
	m.logger.Debug("terminal resized", "cols", msg.Width, "rows", msg.Height)
	return m, nil
}

// handleTick runs one fixed-delta simulation step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	res, err := m.game.Tick(core.Frame{
		Delta: m.runtime.TickDelta(),
		Input: m.mapper.Frame(now),
	})
	if err != nil {
		m.logger.Error("simulation stopped", "error", err)
		m.err = err
		return m, tea.Quit
	}
	m.last = res

	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	if c := cueFor(res.Signals); c != "" {
		m.cue = c
		m.cueLeft = cueFrames
	} else if m.cueLeft > 0 {
		m.cueLeft--
		if m.cueLeft == 0 {
			m.cue = ""
		}
	}

	if len(res.GameOvers) > 0 {
		m = m.refreshScores()
	}

	return m, tickCmd(m.runtime.TickRate)
}

// refreshScores reloads the board and the rank of the last run.
func (m Model) refreshScores() Model {
	entries := topScores(m.store, m.game.HighScores(), maxScores)
	m.scores.SetRows(scoreRows(entries))
	m.hasScores = len(entries) > 0

	last := m.game.LastScore()
	m.rank = 1
	if m.store != nil {
		if r, err := m.store.Rank(int(last)); err == nil {
			m.rank = r
			return m
		}
	}
	for _, s := range m.game.HighScores().History() {
		if s > last {
			m.rank++
		}
	}
	return m
}

// cueFor picks the most important signal of a tick for the HUD.
func cueFor(sig starcatch.Signals) string {
	switch {
	case sig.PlayerDestroyed:
		return "CRASH!"
	case sig.StarsCollected > 0:
		return fmt.Sprintf("+%d %c", sig.StarsCollected, starcatch.StarChar)
	case sig.EnemiesSpawned > 0:
		return "enemy incoming"
	case sig.Bounced:
		return "bonk"
	}
	return ""
}

// View renders the current phase.
func (m Model) View() string {
	if m.quitting || m.err != nil {
		return ""
	}

	switch m.game.AppState() {
	case starcatch.AppGame:
		return m.viewGame()
	case starcatch.AppGameOver:
		return m.viewGameOver()
	default:
		return m.viewMenu()
	}
}

func (m Model) viewGame() string {
	m.game.Render(m.screen)

	score, _ := m.game.Score()
	left := fmt.Sprintf("Score %d  Best %d", score, m.best())
	right := "RUNNING"
	if m.game.SimulationState() == starcatch.SimPaused {
		right = "PAUSED"
	}
	cue := ""
	if m.cueLeft > 0 {
		cue = m.cue
	}

	return RenderScreen(m.screen) + "\n" + renderHUD(m.view.cols, left, cue, right)
}

// best returns the session high score, preferring the store.
func (m Model) best() int {
	if m.store != nil {
		if b, err := m.store.HighScore(); err == nil {
			return b
		}
	}
	b, _ := m.game.HighScores().Best()
	return int(b)
}

// spaced upper-cases a title and puts a space between its letters.
func spaced(title string) string {
	return strings.Join(strings.Split(strings.ToUpper(title), ""), " ")
}

func (m Model) viewMenu() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(spaced(m.game.Title())),
		subtitleStyle.Render(fmt.Sprintf("Catch %c  Dodge %c", starcatch.StarChar, starcatch.EnemyChar)),
		"",
		renderScoreboard(m.scores, !m.hasScores),
		"",
		helpStyle.Render(m.help.View(m.keys)),
	)
	return m.place(content)
}

func (m Model) viewGameOver() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("G A M E   O V E R"),
		"",
		fmt.Sprintf("Final score: %d", m.game.LastScore()),
		subtitleStyle.Render(fmt.Sprintf("Rank #%d this session", m.rank)),
		"",
		renderScoreboard(m.scores, !m.hasScores),
		"",
		helpStyle.Render(m.help.View(m.keys)),
	)
	return m.place(content)
}

func (m Model) place(content string) string {
	return lipgloss.Place(m.view.cols, m.view.rows, lipgloss.Center, lipgloss.Center, content)
}

// Err returns the error that stopped the simulation, if any.
func (m Model) Err() error {
	return m.err
}

// Game exposes the hosted simulation.
func (m Model) Game() *starcatch.Game {
	return m.game
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(cfg config.StarcatchConfig, rt core.RuntimeConfig, store *storage.Store, logger *log.Logger) error {
	model, err := NewModel(cfg, rt, store, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
