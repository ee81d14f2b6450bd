package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/sketchwall/sketchwall/internal/store"
)

// boardListModel is the bubbletea model behind "boards browse".
// It windows the board list so large stores stay navigable and records
// the entry chosen with enter in Selected.
type boardListModel struct {
	Boards   []store.BoardInfo
	Cursor   int
	Selected *store.BoardInfo
	Height   int
	Offset   int
}

// newBoardListModel creates a picker over the given boards.
func newBoardListModel(boards []store.BoardInfo) boardListModel {
	return boardListModel{
		Boards: boards,
		Height: 15,
	}
}

func (m boardListModel) Init() tea.Cmd {
	return nil
}

func (m boardListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Boards)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			board := m.Boards[m.Cursor]
			m.Selected = &board
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m boardListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Board"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Boards) {
		end = len(m.Boards)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		info := m.Boards[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		name := info.Name
		if name == "" {
			name = info.ID
		}

		rows = append(rows, []string{
			cursor,
			name,
			fmt.Sprintf("%d", info.Shapes),
			formatRelativeTime(info.UpdatedAt),
			info.ID,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Board", "Shapes", "Updated", "ID").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				if col <= 1 {
					return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
				}
				return lipgloss.NewStyle().Bold(true)
			}
			if col >= 3 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Boards))))

	return b.String()
}

// formatRelativeTime renders t as a compact age for list output.
func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "—"
	}

	diff := time.Since(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
