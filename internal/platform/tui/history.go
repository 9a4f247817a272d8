package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/storage"
)

const maxHistoryRows = 100

// historyTab selects which table the history view shows.
type historyTab int

const (
	tabRuns historyTab = iota
	tabSnapshots
)

func (t historyTab) String() string {
	if t == tabSnapshots {
		return "Snapshots"
	}
	return "Runs"
}

// HistoryKeyMap defines the key bindings for the history view.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Resume key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns bindings shown in the help bar.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Resume, k.Delete, k.Quit}
}

// FullHelp returns bindings shown in the expanded help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right"),
			key.WithHelp("tab", "runs/snapshots"),
		),
		Resume: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "resume snapshot"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete snapshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing past runs and snapshots.
type HistoryModel struct {
	store     *storage.Store
	tab       historyTab
	runs      []storage.RunRecord
	snapshots []storage.Snapshot
	loadErr   error
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	width     int
	height    int
	selected  int64 // Snapshot ID chosen with Resume, 0 if none
	notice    string
	quitting  bool
}

// NewHistoryModel creates a history model and loads both tables.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.load()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// load reads runs and snapshots from the store.
func (m *HistoryModel) load() {
	if m.store == nil {
		return
	}
	runs, err := m.store.RecentRuns(maxHistoryRows)
	if err != nil {
		m.loadErr = err
		return
	}
	snaps, err := m.store.ListSnapshots(maxHistoryRows)
	if err != nil {
		m.loadErr = err
		return
	}
	m.runs, m.snapshots = runs, snaps
}

// createTable creates a table with the columns for the active tab.
func (m *HistoryModel) createTable() table.Model {
	var columns []table.Column
	if m.tab == tabRuns {
		columns = []table.Column{
			{Title: "ID", Width: 6},
			{Title: "Mode", Width: 8},
			{Title: "Size", Width: 6},
			{Title: "Gens", Width: 8},
			{Title: "Pop", Width: 8},
			{Title: "Date", Width: 14},
		}
	} else {
		columns = []table.Column{
			{Title: "ID", Width: 6},
			{Title: "Mode", Width: 8},
			{Title: "Size", Width: 6},
			{Title: "Gen", Width: 8},
			{Title: "Pop", Width: 8},
			{Title: "Date", Width: 14},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the active tab's records.
func (m *HistoryModel) updateTableRows() {
	var rows []table.Row
	if m.tab == tabRuns {
		rows = make([]table.Row, len(m.runs))
		for i, r := range m.runs {
			rows[i] = table.Row{
				fmt.Sprintf("%d", r.ID),
				r.SeedMode,
				fmt.Sprintf("%d", r.GridSize),
				fmt.Sprintf("%d", r.Generations),
				fmt.Sprintf("%d", r.FinalPopulation),
				r.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	} else {
		rows = make([]table.Row, len(m.snapshots))
		for i, s := range m.snapshots {
			rows[i] = table.Row{
				fmt.Sprintf("%d", s.ID),
				s.SeedMode,
				fmt.Sprintf("%d", s.GridSize),
				fmt.Sprintf("%d", s.Generation),
				fmt.Sprintf("%d", s.Population),
				s.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// deleteSnapshot removes the snapshot at row i and reloads both tables,
// keeping the cursor on the same row where possible.
func (m *HistoryModel) deleteSnapshot(i int) {
	id := m.snapshots[i].ID
	if err := m.store.DeleteSnapshot(id); err != nil {
		m.notice = "delete failed: " + err.Error()
		return
	}
	m.load()
	m.updateTableRows()
	if n := len(m.snapshots); n > 0 {
		m.table.SetCursor(min(i, n-1))
	}
	m.notice = fmt.Sprintf("snapshot #%d deleted", id)
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			if m.tab == tabRuns {
				m.tab = tabSnapshots
			} else {
				m.tab = tabRuns
			}
			m.table = m.createTable()
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.Resume):
			if m.tab == tabSnapshots && len(m.snapshots) > 0 {
				m.selected = m.snapshots[m.table.Cursor()].ID
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if m.tab == tabSnapshots && len(m.snapshots) > 0 {
				m.deleteSnapshot(m.table.Cursor())
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history view.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)

	b.WriteString(centerText(titleStyle.Render("HISTORY"), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, 0, 2)
	for _, t := range []historyTab{tabRuns, tabSnapshots} {
		if t == m.tab {
			tabs = append(tabs, activeTabStyle.Render(t.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(t.String()))
		}
	}
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	if m.notice != "" {
		b.WriteString("   ")
		b.WriteString(noticeStyle.Render(m.notice))
	}

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("History database unavailable.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load history:\n" + m.loadErr.Error())
	case m.tab == tabRuns && len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nRun a simulation and quit to record one.")
	case m.tab == tabSnapshots && len(m.snapshots) == 0:
		return emptyStyle.Render("No snapshots saved yet.\nPress ctrl+s while a simulation runs.")
	}
	return m.table.View()
}

// Selected returns the snapshot ID the user chose to resume, or 0.
func (m HistoryModel) Selected() int64 {
	return m.selected
}

// RunHistory runs the history browser.
// Returns the ID of a snapshot to resume, or 0 if the user just quit.
func RunHistory(store *storage.Store, width, height int) (int64, error) {
	model := NewHistoryModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return 0, nil
	}
	return m.Selected(), nil
}

// centerText pads text on the left so it is centered within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
