package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/sim"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// panStep is how many grid cells one pan key press moves the view.
const panStep = 4

// Options carries the optional collaborators of a Model.
type Options struct {
	Store          *storage.Store // nil disables run history and snapshots
	Logger         *log.Logger    // nil discards log output
	MaxGenerations uint64         // 0 runs until the user quits
}

// Model is the Bubble Tea model for running a life simulation.
type Model struct {
	sim        *sim.Simulation
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	maxGens    uint64
	notice     string
	quitting   bool
	runSaved   bool
}

// NewModel creates a Bubble Tea model around an already seeded simulation.
func NewModel(simulation *sim.Simulation, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := simulation.Config()
	return Model{
		sim:        simulation,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		store:      opts.Store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		maxGens:    opts.MaxGenerations,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.Interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Pause and step are queued for the next
// tick; everything else, panning included, takes effect immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.ActionFor(msg); action {
	case core.ActionQuit:
		m.saveRun()
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart:
		m.saveRun()
		m.config.Seed = time.Now().UnixNano()
		if err := m.sim.Reset(m.config); err != nil {
			m.notice = err.Error()
			m.logger.Error("reseed failed", "err", err)
			return m, nil
		}
		m.runSaved = false
		m.notice = "reseeded"
		m.inputFrame.Clear()

	case core.ActionFaster, core.ActionSlower:
		m.config.Interval = adjustInterval(m.config.Interval, action == core.ActionFaster)
		m.sim.SetInterval(m.config.Interval)

	case core.ActionSnapshot:
		m.saveSnapshot()

	case core.ActionPanUp:
		m.sim.Pan(-panStep, 0)
	case core.ActionPanDown:
		m.sim.Pan(panStep, 0)
	case core.ActionPanLeft:
		m.sim.Pan(0, -panStep)
	case core.ActionPanRight:
		m.sim.Pan(0, panStep)

	case core.ActionPause, core.ActionStep:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The grid is independent of
// the terminal size, so the simulation keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by one generation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	result := m.sim.Step(m.inputFrame)
	m.inputFrame.Clear()

	if m.maxGens > 0 && result.State.Generation >= m.maxGens {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.Interval)
}

// saveRun records the current run once. Runs that never advanced are skipped.
func (m *Model) saveRun() {
	if m.store == nil || m.runSaved {
		return
	}
	st := m.sim.State()
	if st.Generation == 0 {
		return
	}

	cfg := m.sim.Config()
	id, err := m.store.SaveRun(storage.RunRecord{
		SeedMode:        cfg.SeedMode,
		GridSize:        cfg.GridSize,
		Seed:            cfg.Seed,
		Generations:     st.Generation,
		FinalPopulation: st.Population,
	})
	if err != nil {
		m.logger.Warn("could not save run", "err", err)
		return
	}
	m.runSaved = true
	m.logger.Debug("run saved", "id", id, "generations", st.Generation)
}

// saveSnapshot persists the current grid so it can be resumed later.
func (m *Model) saveSnapshot() {
	if m.store == nil {
		m.notice = "snapshots disabled"
		return
	}
	grid := m.sim.Grid()
	if grid == nil {
		return
	}

	st := m.sim.State()
	id, err := m.store.SaveSnapshot(grid, st.Generation, m.sim.Config().SeedMode)
	if err != nil {
		m.notice = "snapshot failed"
		m.logger.Error("could not save snapshot", "err", err)
		return
	}
	m.notice = fmt.Sprintf("snapshot #%d saved", id)
	m.logger.Info("snapshot saved", "id", id, "generation", st.Generation)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.sim.Render(m.screen)
	return RenderFrame(m.screen, m.help.View(m.keys), m.notice)
}

// State returns the current simulation state.
func (m Model) State() core.SimState {
	return m.sim.State()
}

// Run starts the Bubble Tea program with the given simulation.
func Run(simulation *sim.Simulation, opts Options) error {
	model := NewModel(simulation, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
