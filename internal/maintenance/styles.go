package maintenance

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// styles are bound to the output writer so colours are dropped when it is
// not a terminal.
type styles struct {
	renderer *lipgloss.Renderer
	Title    lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		renderer: r,
		Title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		Success:  r.NewStyle().Foreground(lipgloss.Color("#22C55E")),
		Error:    r.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true),
		Muted:    r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		Header:   r.NewStyle().Bold(true).Padding(0, 1),
		Cell:     r.NewStyle().Padding(0, 1),
	}
}

// table renders headers and rows with a normal border.
func (s styles) table(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Muted).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.Header
			}
			return s.Cell
		}).
		Headers(headers...).
		Rows(rows...).
		Render()
}

func (s styles) banner(title string, width int) string {
	line := strings.Repeat("=", width)
	return line + "\n" + s.Title.Render(title) + "\n" + line
}
