package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/mkostin/pathgrid/internal/boundary"
	"github.com/mkostin/pathgrid/internal/config"
	"github.com/mkostin/pathgrid/internal/grid"
	"github.com/mkostin/pathgrid/internal/storage"
)

// PlayModel hosts one core instance inside a Bubble Tea program. The model
// is the host side of the call boundary: ticks, key and mouse events go
// in; draw calls come out onto the canvas.
type PlayModel struct {
	core     *boundary.Core
	canvas   *Canvas
	store    *storage.Store
	keymap   *KeyMapper
	keys     playKeyMap
	help     help.Model
	cfg      config.Config
	tickRate int

	started  time.Time
	savedGen uint64
	pointer  grid.Coord
	quitting bool
}

// NewPlayModel creates a play model over a fresh core. The store may be
// nil; runs are then simply not recorded.
func NewPlayModel(store *storage.Store, cfg config.Config, tickRate int, logger *log.Logger) *PlayModel {
	canvas := NewCanvas(cfg.Grid.Width, cfg.Grid.Height)
	host := newCanvasHost(canvas, logger)
	core := boundary.NewCore(host, boundary.Params{
		GridWidth:     cfg.Grid.Width,
		GridHeight:    cfg.Grid.Height,
		Seed:          cfg.Grid.Seed,
		FollowPointer: cfg.Engine.FollowPointer,
	})

	h := help.New()
	h.ShowAll = false

	return &PlayModel{
		core:     core,
		canvas:   canvas,
		store:    store,
		keymap:   NewKeyMapper(),
		keys:     defaultPlayKeyMap(),
		help:     h,
		cfg:      cfg,
		tickRate: tickRate,
		pointer:  grid.C(cfg.Grid.Width-1, cfg.Grid.Height-1),
	}
}

// Init initializes the core and starts the tick loop.
func (m *PlayModel) Init() tea.Cmd {
	debug := 0
	if m.cfg.Engine.Debug {
		debug = 1
	}
	// Viewport matches the grid one-to-one: one unit per terminal cell.
	m.core.Initialize(debug, m.cfg.Engine.RenderIntervalMs,
		uint(m.cfg.Grid.Width), uint(m.cfg.Grid.Height))
	m.started = time.Now()
	return tickCmd(m.tickRate)
}

// Update handles messages.
func (m *PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.core.MouseMove(float64(msg.X), float64(msg.Y))
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m *PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keymap.IsQuit(msg) {
		m.quitting = true
		return m, tea.Quit
	}

	if dx, dy, ok := m.keymap.MapMove(msg); ok {
		m.pointer = m.clampToGrid(m.pointer.Add(dx, dy))
		// Cell centers avoid truncation artifacts at cell edges.
		m.core.MouseMove(float64(m.pointer.X)+0.5, float64(m.pointer.Y)+0.5)
		return m, nil
	}

	if code, ok := m.keymap.MapKey(msg); ok {
		// Terminals report taps, not held keys; the engine keeps the press
		// edge until the next tick consumes it.
		m.core.KeyDown(code)
		m.core.KeyUp(code)
	}
	return m, nil
}

func (m *PlayModel) clampToGrid(c grid.Coord) grid.Coord {
	if c.X < 0 {
		c.X = 0
	}
	if c.X >= m.cfg.Grid.Width {
		c.X = m.cfg.Grid.Width - 1
	}
	if c.Y < 0 {
		c.Y = 0
	}
	if c.Y >= m.cfg.Grid.Height {
		c.Y = m.cfg.Grid.Height - 1
	}
	return c
}

func (m *PlayModel) handleTick() (tea.Model, tea.Cmd) {
	elapsed := float64(time.Since(m.started).Microseconds()) / 1000.0
	m.core.Tick(elapsed)
	m.maybeSaveRun()
	return m, tickCmd(m.tickRate)
}

// maybeSaveRun records each newly completed search once.
func (m *PlayModel) maybeSaveRun() {
	if m.store == nil {
		return
	}
	run, ok := m.core.LastRun()
	if !ok || run.Generation <= m.savedGen {
		return
	}
	m.savedGen = run.Generation

	//nolint:errcheck // Best-effort save
	m.store.SaveRun(storage.RunEntry{
		Seed:       run.Seed,
		Width:      run.GridW,
		Height:     run.GridH,
		StartX:     run.Start.X,
		StartY:     run.Start.Y,
		GoalX:      run.Goal.X,
		GoalY:      run.Goal.Y,
		Found:      run.Found,
		Cost:       run.Cost,
		PathLen:    run.PathLen,
		Expanded:   run.Expanded,
		DurationMs: run.DurationMs,
	})
}

// View renders the canvas plus a status line and key hints.
func (m *PlayModel) View() string {
	if m.quitting {
		return ""
	}

	hud := ""
	if stats, ok := m.core.CurrentStats(); ok {
		if stats.Found {
			hud = fmt.Sprintf("fps %.0f | cost %.1f | %d cells | %d expanded | seed %d",
				stats.FPS, stats.Cost, stats.PathLen, stats.Expanded, stats.Seed)
		} else {
			hud = fmt.Sprintf("fps %.0f | no path | %d expanded | seed %d",
				stats.FPS, stats.Expanded, stats.Seed)
		}
		if stats.Overlay {
			hud += " | overlay"
		}
		if !stats.Follow {
			hud += " | follow off"
		}
	}

	return m.canvas.String() + "\n" + hud + "\n" + m.help.View(m.keys)
}

// Run starts the interactive host for a single core session.
func Run(store *storage.Store, cfg config.Config, tickRate int, logger *log.Logger) error {
	model := NewPlayModel(store, cfg, tickRate, logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: program failed: %w", err)
	}
	return nil
}
