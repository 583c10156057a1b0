package tui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

// mouseHint prefixes the help footer; the pointer has no key binding to list.
const mouseHint = "mouse: move paddle • "

// Model is the Bubble Tea model driving the game loop. Every message is
// delivered on one goroutine, so the session needs no locking.
type Model struct {
	session  *pong.Session
	screen   *core.Screen
	canvas   *core.Canvas
	config   core.RuntimeConfig
	keys     KeyMap
	mapper   *KeyMapper
	help     help.Model
	logger   *log.Logger
	quitting bool
}

// NewModel creates a new Bubble Tea model for a fresh session.
func NewModel(cfg core.RuntimeConfig, game config.PongConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	session := pong.NewSession(game, rand.New(rand.NewSource(cfg.Seed)))
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	keys := DefaultKeyMap()
	h := help.New()
	h.Width = helpWidth(cfg.ScreenW)

	m := Model{
		session: session,
		screen:  screen,
		canvas:  core.NewCanvas(screen, screen.Bounds(), session.Field.Width, session.Field.Height),
		config:  cfg,
		keys:    keys,
		mapper:  NewKeyMapper(keys),
		help:    h,
		logger:  logger,
	}
	m.layout()
	return m
}

// Session returns the game session driven by this model.
func (m Model) Session() *pong.Session {
	return m.session
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started",
		"field", m.session.Field,
		"screen", [2]int{m.config.ScreenW, m.config.ScreenH},
		"tick_rate", m.config.TickRate,
		"seed", m.config.Seed,
	)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mapper.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "tick", m.session.Tick, "player", m.session.Score.Player, "opponent", m.session.Score.Opponent)
		return m, tea.Quit
	case core.ActionUp:
		m.session.NudgePlayer(-1)
	case core.ActionDown:
		m.session.NudgePlayer(1)
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	}
	return m, nil
}

// handleMouse centers the player paddle on the pointer row.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionMotion && msg.Action != tea.MouseActionPress {
		return m, nil
	}
	_, y := m.canvas.ToField(msg.X, msg.Y)
	m.session.MovePointer(y)
	return m, nil
}

// handleResize processes window resize events. The field has fixed
// dimensions, so the session is left alone.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = helpWidth(msg.Width)
	m.layout()
	m.logger.Debug("resize", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.session.Step()

	if side := m.session.LastPoint; side != pong.SideNone {
		m.logger.Debug("point",
			"side", side,
			"tick", m.session.Tick,
			"player", m.session.Score.Player,
			"opponent", m.session.Score.Opponent,
		)
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// layout gives the field every row the footer does not use.
func (m *Model) layout() {
	rows := m.config.ScreenH - lipgloss.Height(m.footer())
	m.screen.Resize(m.config.ScreenW, max(0, rows))
	m.canvas.SetArea(m.screen.Bounds())
}

// helpWidth is the room left for key help next to the mouse hint.
func helpWidth(screenW int) int {
	return max(0, screenW-lipgloss.Width(mouseHint))
}

// footer renders the help line.
func (m Model) footer() string {
	return footerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, mouseHint, m.help.View(m.keys)))
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	pong.Render(m.session, m.canvas)
	return lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), m.footer())
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(cfg core.RuntimeConfig, game config.PongConfig, logger *log.Logger) error {
	model := NewModel(cfg, game, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Report pointer motion without a button held
	)

	_, err := p.Run()
	return err
}
