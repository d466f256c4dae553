// Package watch implements the live score monitor TUI. It polls the
// scorer's /scores endpoint and renders the journal as a table.
package watch

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mattjoyce/axis-scorer/internal/history"
)

var (
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))

	tierStyles = map[string]lipgloss.Style{
		"Excellent": lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")),
		"Fair":      lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00")),
		"Poor":      lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")),
	}

	failedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// Model is the BubbleTea model for the watch TUI.
type Model struct {
	apiURL string

	width  int
	height int

	table     table.Model
	lastError string
	lastFetch time.Time
}

// New creates a new watch TUI model.
func New(apiURL string) *Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Received", Width: 19},
			{Title: "Conversation", Width: 16},
			{Title: "AXIS", Width: 5},
			{Title: "Tier", Width: 10},
			{Title: "Status", Width: 10},
			{Title: "Error", Width: 32},
		}),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	return &Model{
		apiURL: apiURL,
		table:  t,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		fetchScores(m.apiURL),
		tea.Tick(2*time.Second, func(t time.Time) tea.Msg { return tickMsg(t) }),
		tea.EnterAltScreen,
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(maxInt(5, m.height-6))

	case tickMsg:
		return m, tea.Batch(
			fetchScores(m.apiURL),
			tea.Tick(2*time.Second, func(t time.Time) tea.Msg { return tickMsg(t) }),
		)

	case scoresMsg:
		m.table.SetRows(rowsFor(msg))
		m.lastError = ""
		m.lastFetch = time.Now()

	case errMsg:
		m.lastError = msg.Error()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.width == 0 {
		return "Connecting to scorer..."
	}

	title := titleStyle.Render("AXIS scores · " + m.apiURL)

	var errBar string
	if m.lastError != "" {
		errBar = errStyle.Render(" ⚠ " + m.lastError)
	}

	help := helpStyle.Render(" [q] Quit • refreshes every 2s")

	parts := []string{title, borderStyle.Render(m.table.View())}
	if errBar != "" {
		parts = append(parts, errBar)
	}
	parts = append(parts, help)

	return lipgloss.NewStyle().Margin(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, parts...),
	)
}

func rowsFor(entries []history.Entry) []table.Row {
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		row := table.Row{
			e.ReceivedAt.Local().Format("2006-01-02 15:04:05"),
			e.ConversationID,
			formatAxis(e),
			renderTier(e),
			string(e.Status),
			e.Error,
		}
		rows = append(rows, row)
	}
	return rows
}

func formatAxis(e history.Entry) string {
	if e.Status != history.StatusSucceeded {
		return "-"
	}
	return trimFloat(e.Axis)
}

func renderTier(e history.Entry) string {
	if e.Status != history.StatusSucceeded {
		return failedStyle.Render("-")
	}
	if style, ok := tierStyles[e.Tier]; ok {
		return style.Render(e.Tier)
	}
	return e.Tier
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
