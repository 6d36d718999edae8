package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/axelroques/ditto/lib/cover"
	"github.com/axelroques/ditto/lib/table"
	"github.com/charmbracelet/lipgloss"
)

// ErrRank is returned for a rank outside the cover order of the table
var ErrRank = errors.New("render: rank out of range")

// Marks used when symbols are not printed
const (
	markHighlight = "#"
	markOther     = "."
	markEmpty     = " "
)

var (
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).PaddingRight(1)
	cellStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	highlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("27"))
	legendStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).MarginTop(1)
)

// Grid renders cover m of ct with the cells of the pattern at position rank of the
// cover order highlighted. With letters the symbol of every covered cell is printed,
// otherwise highlighted and other covered cells get a mark.
func Grid(m *cover.Matrix, ct *table.CodeTable, rank int, letters bool) (string, error) {
	order := ct.CoverOrder()
	if rank < 0 || rank >= len(order) {
		return "", fmt.Errorf("%w: %d (table has %d patterns)", ErrRank, rank, len(order))
	}
	target := ct.At(order[rank])

	labels := make([]string, m.Rows())
	width := 0
	for seq := range labels {
		labels[seq] = fmt.Sprintf("S_%d", seq)
		width = max(width, lipgloss.Width(labels[seq]))
	}

	var sb strings.Builder
	for seq := 0; seq < m.Rows(); seq++ {
		sb.WriteString(labelStyle.Width(width + 1).Render(labels[seq]))
		for step := 0; step < m.Cols(); step++ {
			sb.WriteString(renderCell(m.At(seq, step), target.ID, letters))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(legendStyle.Render(fmt.Sprintf("%s  usage %d  gap %d", target.Name, target.Usage(), target.Stats.Gap)))
	return sb.String(), nil
}

func renderCell(c cover.Cell, target int, letters bool) string {
	switch {
	case c.IsEmpty():
		return cellStyle.Render(markEmpty)
	case c.Pattern == target && letters:
		return highlightStyle.Render(string(c.Symbol))
	case c.Pattern == target:
		return highlightStyle.Render(markHighlight)
	case letters:
		return cellStyle.Render(string(c.Symbol))
	default:
		return cellStyle.Render(markOther)
	}
}
