package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkostin/pathgrid/internal/storage"
)

const maxRuns = 100

// RunboardKeyMap defines the key bindings for the run history view.
type RunboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultRunboardKeyMap returns default key bindings.
func DefaultRunboardKeyMap() RunboardKeyMap {
	return RunboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunboardModel is the Bubble Tea model for browsing recorded runs.
type RunboardModel struct {
	store    *storage.Store
	table    table.Model
	help     help.Model
	keys     RunboardKeyMap
	stats    *storage.Stats
	quitting bool
}

// NewRunboardModel creates a run history model backed by the store.
func NewRunboardModel(store *storage.Store, height int) (RunboardModel, error) {
	runs, err := store.RecentRuns(maxRuns)
	if err != nil {
		return RunboardModel{}, err
	}
	stats, err := store.GetStats()
	if err != nil {
		return RunboardModel{}, err
	}

	columns := []table.Column{
		{Title: "When", Width: 17},
		{Title: "Grid", Width: 8},
		{Title: "Seed", Width: 8},
		{Title: "Result", Width: 8},
		{Title: "Cost", Width: 8},
		{Title: "Cells", Width: 6},
		{Title: "Expanded", Width: 9},
		{Title: "ms", Width: 7},
	}

	rows := make([]table.Row, 0, len(runs))
	for _, r := range runs {
		result := "no path"
		cost := "-"
		if r.Found {
			result = "found"
			cost = fmt.Sprintf("%.1f", r.Cost)
		}
		rows = append(rows, table.Row{
			r.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			fmt.Sprintf("%d", r.Seed),
			result,
			cost,
			fmt.Sprintf("%d", r.PathLen),
			fmt.Sprintf("%d", r.Expanded),
			fmt.Sprintf("%.2f", r.DurationMs),
		})
	}

	tableHeight := height - 6
	if tableHeight < 4 {
		tableHeight = 4
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	h := help.New()

	return RunboardModel{
		store: store,
		table: t,
		help:  h,
		keys:  DefaultRunboardKeyMap(),
		stats: stats,
	}, nil
}

// Init implements tea.Model.
func (m RunboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m RunboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table with a summary line.
func (m RunboardModel) View() string {
	if m.quitting {
		return ""
	}

	summary := fmt.Sprintf("%d runs, %d found", m.stats.RunCount, m.stats.FoundCount)
	if m.stats.FoundCount > 0 {
		summary += fmt.Sprintf(", avg cost %.1f, avg expanded %.0f",
			m.stats.AvgCost, m.stats.AvgExpanded)
	}

	title := lipgloss.NewStyle().Bold(true).Render("Search Runs")
	return title + "\n" + summary + "\n\n" + m.table.View() + "\n" + m.help.View(m.keys)
}

// RunRunboard starts the interactive run history view.
func RunRunboard(store *storage.Store, height int) error {
	model, err := NewRunboardModel(store, height)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: runboard failed: %w", err)
	}
	return nil
}
