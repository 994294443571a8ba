package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilephys/internal/sim"
	"github.com/vovakirdan/tilephys/internal/storage"
)

// traceChrome is the number of rows used by the title, summary, borders and help.
const traceChrome = 9

// TraceKeyMap defines the key bindings for the trace viewer.
type TraceKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k TraceKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PageDown, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k TraceKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Top, k.Bottom, k.Quit},
	}
}

// DefaultTraceKeyMap returns default key bindings.
func DefaultTraceKeyMap() TraceKeyMap {
	return TraceKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "prev step"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next step"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f"),
			key.WithHelp("pgdn", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first step"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last step"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// TraceModel is the Bubble Tea model that browses the frames of a recorded run.
type TraceModel struct {
	run      storage.RunEntry
	frames   []sim.Frame
	table    table.Model
	help     help.Model
	keys     TraceKeyMap
	width    int
	height   int
	quitting bool
}

// NewTraceModel creates a trace viewer for run and its frames.
func NewTraceModel(run storage.RunEntry, frames []sim.Frame, width, height int) TraceModel {
	m := TraceModel{
		run:    run,
		frames: frames,
		help:   help.New(),
		keys:   DefaultTraceKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

// createTable builds the frame table sized to the current window.
func (m *TraceModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Step", Width: 6},
		{Title: "X", Width: 8},
		{Title: "Y", Width: 8},
		{Title: "W", Width: 6},
		{Title: "H", Width: 6},
		{Title: "Floor", Width: 6},
		{Title: "Ceil", Width: 6},
		{Title: "Wall", Width: 6},
	}

	rows := make([]table.Row, len(m.frames))
	for i, f := range m.frames {
		rows[i] = table.Row{
			fmt.Sprintf("%d", f.Step),
			fmt.Sprintf("%d", f.Rect.X),
			fmt.Sprintf("%d", f.Rect.Y),
			fmt.Sprintf("%d", f.Rect.W),
			fmt.Sprintf("%d", f.Rect.H),
			mark(f.Contact.Floor),
			mark(f.Contact.Ceiling),
			mark(f.Contact.Wall),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-traceChrome)),
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

func mark(b bool) string {
	if b {
		return "●"
	}
	return "·"
}

// Init initializes the trace model.
func (m TraceModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the trace viewer.
func (m TraceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Top):
			m.table.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.table.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		cursor := m.table.Cursor()
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Selected returns the frame under the cursor.
func (m TraceModel) Selected() (sim.Frame, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.frames) {
		return sim.Frame{}, false
	}
	return m.frames[i], true
}

// View renders the trace viewer.
func (m TraceModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(fmt.Sprintf("RUN #%d - %s", m.run.ID, m.run.Scenario)))
	b.WriteString("\n")

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	summary := fmt.Sprintf("%d steps, final position (%d,%d), recorded %s",
		m.run.Steps, m.run.FinalX, m.run.FinalY, m.run.CreatedAt.Format("2006-01-02 15:04"))
	b.WriteString(dimStyle.Render(summary))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.frames) == 0 {
		emptyStyle := dimStyle.Italic(true).Padding(1, 4)
		b.WriteString(tableStyle.Render(emptyStyle.Render("This run has no frames.")))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	if f, ok := m.Selected(); ok {
		b.WriteString(fmt.Sprintf("step %d: %v", f.Step, f.Rect))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunTraceViewer shows the frames of a stored run until the user quits.
func RunTraceViewer(store *storage.Store, runID int64, width, height int) error {
	run, err := store.Run(runID)
	if err != nil {
		return err
	}
	frames, err := store.RunFrames(runID)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewTraceModel(run, frames, width, height),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}
