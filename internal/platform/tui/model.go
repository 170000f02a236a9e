package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/termgrid/snake/internal/config"
	"github.com/termgrid/snake/internal/core"
	"github.com/termgrid/snake/internal/game"
)

// Model is the Bubble Tea model for a single game session. It drives the
// two cadences: every frame samples directional input, and every
// moveEveryFrames frames one movement tick runs (move, collide, eat,
// refresh transforms, in that order, never interleaved with sampling).
type Model struct {
	runtime core.RuntimeConfig
	gameCfg config.Config
	colors  config.ColorSet
	keys    KeyMap
	help    help.Model

	state  *game.State
	screen *core.Screen
	input  core.InputFrame

	moveEveryFrames int
	frameCounter    int
	quitting        bool
	initErr         error
}

// NewModel creates a session model. The playfield window is the screen
// minus the bottom help line.
func NewModel(gameCfg config.Config, rc core.RuntimeConfig) (Model, error) {
	colors, err := gameCfg.Colors.Resolve()
	if err != nil {
		return Model{}, err
	}

	if rc.TickRate <= 0 {
		rc.TickRate = gameCfg.Cadence.TickRate
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	m := Model{
		runtime:         rc,
		gameCfg:         gameCfg,
		colors:          colors,
		keys:            DefaultKeyMap(),
		help:            help.New(),
		screen:          core.NewScreen(rc.ScreenW, playfieldHeight(rc.ScreenH)),
		input:           core.NewInputFrame(),
		moveEveryFrames: moveInterval(rc.TickRate, gameCfg.Cadence.StepsPerSecond),
	}
	m.state, m.initErr = m.newSession(rc.Seed)
	return m, m.initErr
}

// playfieldHeight reserves the bottom line for the help bar.
func playfieldHeight(screenH int) int {
	return max(1, screenH-1)
}

// moveInterval converts the movement rate into a frame count.
func moveInterval(tickRate, stepsPerSecond int) int {
	if stepsPerSecond <= 0 {
		stepsPerSecond = config.Default().Cadence.StepsPerSecond
	}
	return max(1, tickRate/stepsPerSecond)
}

// newSession builds a fresh game state sized to the current playfield.
func (m *Model) newSession(seed int64) (*game.State, error) {
	return game.NewState(
		float64(m.screen.Width()),
		float64(m.screen.Height()),
		m.gameCfg.Grid.Divisor,
		seed,
	)
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame()
	}

	return m, nil
}

// handleKey records pressed keys into the current input frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionUp:
		m.input.Set(core.ActionUp)
	case core.ActionDown:
		m.input.Set(core.ActionDown)
	case core.ActionLeft:
		m.input.Set(core.ActionLeft)
	case core.ActionRight:
		m.input.Set(core.ActionRight)
	case core.ActionRestart:
		if m.state != nil && m.state.Phase == game.PhaseGameOver {
			m.input.Set(core.ActionRestart)
		}
	}
	return m, nil
}

// handleResize rebuilds the playfield for the new terminal size. A resize
// mid-game restarts the session; the grid is immutable once derived.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))

	state, err := m.newSession(time.Now().UnixNano())
	if err != nil {
		m.initErr = err
		return m, nil
	}
	m.initErr = nil
	m.state = state
	m.frameCounter = 0
	return m, nil
}

// handleFrame runs one input-sampling frame and, on the slower cadence,
// one movement tick.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	if m.state == nil {
		return m, frameCmd(m.runtime.TickRate)
	}

	// Restart on game over: fresh seed, fresh session.
	if m.input.Has(core.ActionRestart) && m.state.Phase == game.PhaseGameOver {
		state, err := m.newSession(time.Now().UnixNano())
		if err == nil {
			m.state = state
			m.frameCounter = 0
		}
		m.input.Clear()
		return m, frameCmd(m.runtime.TickRate)
	}

	// Fast cadence: facing follows the most recently pressed direction.
	m.state.SampleFacing(m.input)

	// Slow cadence: movement tick.
	m.frameCounter++
	if m.frameCounter >= m.moveEveryFrames {
		m.frameCounter = 0
		m.state.Tick()
	}

	m.input.Clear()
	return m, frameCmd(m.runtime.TickRate)
}

// View renders the playfield plus the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.initErr != nil {
		return "snake: " + m.initErr.Error()
	}

	Draw(m.screen, m.state, m.colors)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(gameCfg config.Config, rc core.RuntimeConfig) error {
	model, err := NewModel(gameCfg, rc)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
