package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skyleap-game/skyleap/internal/config"
	"github.com/skyleap-game/skyleap/internal/core"
	"github.com/skyleap-game/skyleap/internal/gen"
	"github.com/skyleap-game/skyleap/internal/level"
	"github.com/skyleap-game/skyleap/internal/sim"
)

// levelMsg delivers a requested level (or the request failure) to the model.
type levelMsg struct {
	lvl *level.Level
	err error
}

var (
	loadingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hudStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Model is the Bubble Tea model hosting the skyleap simulation. It owns the
// loading/pause/HUD state; the driver owns all simulation state. While a
// level request is in flight the simulation simply does not tick.
type Model struct {
	runtime core.RuntimeConfig
	gameCfg config.Config

	source gen.Source
	dm     *config.DifficultyManager

	driver  *sim.Driver
	current *level.Level // Level in play, kept for restarts
	fixed   bool         // Playing a fixed payload; no generated progression

	screen *core.Screen
	keys   *KeyMapper
	input  core.InputFrame

	spin    spinner.Model
	loading bool
	loadErr error

	paused        bool
	cleared       bool // Fixed level finished
	levelNum      int  // 1-based display number
	levelsCleared int
	deaths        int
	quitting      bool
}

// NewModel creates a model that plays generated levels from the source.
func NewModel(source gen.Source, gameCfg config.Config, runtime core.RuntimeConfig) Model {
	return newModel(source, nil, gameCfg, runtime)
}

// NewFixedModel creates a model that plays a single pre-parsed level.
func NewFixedModel(lvl *level.Level, gameCfg config.Config, runtime core.RuntimeConfig) Model {
	return newModel(nil, lvl, gameCfg, runtime)
}

func newModel(source gen.Source, fixed *level.Level, gameCfg config.Config, runtime core.RuntimeConfig) Model {
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = loadingStyle

	m := Model{
		runtime: runtime,
		gameCfg: gameCfg,
		source:  source,
		dm:      config.NewDifficultyManager(gameCfg.Difficulty),
		screen:  core.NewScreen(runtime.ScreenW, runtime.ScreenH),
		keys:    NewKeyMapper(),
		input:   core.NewInputFrame(),
		spin:    sp,
		current: fixed,
		fixed:   fixed != nil,
		// Generated campaigns start in the loading state; Init's value
		// receiver cannot flip it later.
		loading:  fixed == nil,
		levelNum: 1,
	}
	return m
}

// Init starts the tick loop and, for generated campaigns, the first level
// request.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.runtime.TickRate)}

	if m.fixed {
		// Value receiver: the driver is built on the first tick instead.
		return tea.Batch(cmds...)
	}

	cmds = append(cmds, m.spin.Tick, m.requestLevel())
	return tea.Batch(cmds...)
}

// requestLevel asks the source for the next payload and parses it.
func (m Model) requestLevel() tea.Cmd {
	source := m.source
	params := gen.DeriveParams(m.gameCfg, m.dm, m.levelsCleared, m.runtime.Seed+int64(m.levelNum))
	timeout := time.Duration(m.gameCfg.Generation.ServiceTimeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		payload, err := source.Next(ctx, params)
		if err != nil {
			return levelMsg{err: err}
		}
		lvl, err := level.Parse(payload)
		if err != nil {
			return levelMsg{err: err}
		}
		if !lvl.Playable() {
			return levelMsg{err: sim.ErrNoLevel}
		}
		return levelMsg{lvl: lvl}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case levelMsg:
		return m.handleLevel(msg)

	case TickMsg:
		return m.handleTick()

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionPause:
		if m.driver != nil && !m.loading {
			m.paused = !m.paused
		}
	case core.ActionRestart:
		return m.handleRestart()
	case core.ActionNone:
	default:
		m.input.Set(action)
	}

	return m, nil
}

// handleRestart retries a failed load, or replays the current level from its
// initial state.
func (m Model) handleRestart() (tea.Model, tea.Cmd) {
	if m.loadErr != nil {
		m.loadErr = nil
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.requestLevel())
	}

	if m.driver != nil && m.current != nil {
		if err := m.driver.LoadLevel(m.current); err == nil {
			m.cleared = false
			m.paused = false
		}
	}
	return m, nil
}

// handleLevel installs a freshly requested level.
func (m Model) handleLevel(msg levelMsg) (tea.Model, tea.Cmd) {
	m.loading = false

	if msg.err != nil {
		m.loadErr = msg.err
		return m, nil
	}

	m.loadErr = nil
	m.current = msg.lvl

	if m.driver == nil {
		driver, err := sim.New(msg.lvl, m.gameCfg)
		if err != nil {
			m.loadErr = err
			return m, nil
		}
		m.driver = driver
		return m, nil
	}

	if err := m.driver.LoadLevel(msg.lvl); err != nil {
		m.loadErr = err
	}
	return m, nil
}

// handleTick advances the simulation by one tick and reacts to its events.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// The fixed-level driver cannot be built in Init (value receiver), so it
	// is lazily built on the first tick.
	if m.driver == nil && m.fixed && m.loadErr == nil {
		driver, err := sim.New(m.current, m.gameCfg)
		if err != nil {
			m.loadErr = err
		} else {
			m.driver = driver
		}
	}

	var cmds []tea.Cmd

	if m.driver != nil && !m.loading && !m.paused && !m.cleared {
		ev := m.driver.Step(m.input)

		switch ev {
		case sim.EventPlayerDied:
			m.deaths++
		case sim.EventLevelCompleted:
			m.levelsCleared++
			if m.fixed {
				m.cleared = true
			} else {
				m.levelNum++
				m.loading = true
				cmds = append(cmds, m.spin.Tick, m.requestLevel())
			}
		}
	}

	m.input.Clear()
	cmds = append(cmds, tickCmd(m.runtime.TickRate))
	return m, tea.Batch(cmds...)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.loadErr != nil {
		return m.centerLines(
			errorStyle.Render("No level available"),
			hudStyle.Render(fmt.Sprintf("%v", m.loadErr)),
			"Press R to retry, Q to quit",
		)
	}

	if m.loading || m.driver == nil {
		return m.centerLines(
			m.spin.View()+" "+loadingStyle.Render("Generating level..."),
			hudStyle.Render(fmt.Sprintf("Level %d", m.levelNum)),
		)
	}

	RenderWorld(m.screen, m.driver)
	m.drawHUD()
	return RenderScreen(m.screen)
}

// drawHUD writes the level indicator, death counter, and overlays into the
// top rows of the screen buffer.
func (m Model) drawHUD() {
	m.screen.DrawText(1, 0, fmt.Sprintf("Level: %d", m.levelNum))
	deaths := fmt.Sprintf("Deaths: %d", m.deaths)
	m.screen.DrawText(m.screen.Width()-len(deaths)-1, 0, deaths)

	switch {
	case m.paused:
		m.drawCenteredBox("PAUSED", "Press P to resume")
	case m.cleared:
		m.drawCenteredBox("LEVEL COMPLETE!", "Press R to replay, Q to quit")
	}
}

// drawCenteredBox draws a centered message box.
func (m Model) drawCenteredBox(title, subtitle string) {
	w := m.screen.Width()
	h := m.screen.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	m.screen.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	m.screen.DrawBox(boxX, boxY, boxW, boxH)

	m.screen.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	m.screen.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// centerLines renders free-standing centered text without the world screen.
func (m Model) centerLines(lines ...string) string {
	return lipgloss.Place(
		m.runtime.ScreenW, m.runtime.ScreenH,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...),
	)
}

// Run starts the Bubble Tea program with the given model.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
