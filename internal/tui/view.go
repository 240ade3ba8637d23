package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/arcanaland/patience/internal/card"
	"github.com/arcanaland/patience/internal/engine"
)

const cardWidth = 5

var (
	tableStyle = lipgloss.NewStyle().Padding(1, 2)

	cardStyle = lipgloss.NewStyle().
			Width(cardWidth).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder())

	redStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	blackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	backStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	hoverBorder    = lipgloss.Color("11")
	selectedBorder = lipgloss.Color("10")

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTopRow())
	b.WriteString("\n")
	b.WriteString(m.renderTableaus())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())

	if m.won {
		b.WriteString("\n\n")
		b.WriteString(winBanner(fmt.Sprintf("  YOU WON in %d moves!  ", m.moves)))
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("[r]estart | [q]uit"))
	}

	return tableStyle.Render(b.String())
}

// cardFace renders a card label with suit coloring
func cardFace(c card.Card) string {
	if !c.FaceUp {
		return backStyle.Render("░░░")
	}
	label := c.Rank.String() + c.Suit.String()
	if c.Suit.Color() == card.Red {
		return redStyle.Render(label)
	}
	return blackStyle.Render(label)
}

// renderPileBox draws a one-card box for a pile top, with cursor and
// selection highlighting
func (m Model) renderPileBox(id engine.PileID, placeholder string) string {
	style := cardStyle

	if m.selected != nil && m.selected.src == id {
		style = style.BorderForeground(selectedBorder)
	}
	if m.cursor == id {
		style = style.BorderForeground(hoverBorder)
	}

	pile := m.board.Pile(id)
	top, ok := pile.Peek()
	if !ok {
		return style.Render(dimStyle.Render(placeholder))
	}
	return style.Render(cardFace(top))
}

func (m Model) renderTopRow() string {
	stock := m.renderPileBox(engine.StockID(), "···")
	waste := m.renderPileBox(engine.WasteID(), " ")

	foundations := make([]string, 0, engine.NumFoundations)
	for _, suit := range card.Suits {
		foundations = append(foundations,
			m.renderPileBox(engine.FoundationID(suit), suit.String()))
	}

	gap := strings.Repeat(" ", cardWidth)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		stock, waste, gap, lipgloss.JoinHorizontal(lipgloss.Top, foundations...))
}

func (m Model) renderTableaus() string {
	cols := make([]string, engine.NumTableaus)
	for i := range cols {
		cols[i] = m.renderTableau(i)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// renderTableau draws one column: a header box showing hover state, then the
// cards from bottom to top, with the picked-up run marked.
func (m Model) renderTableau(i int) string {
	id := engine.TableauID(i)
	pile := m.board.Pile(id)

	header := dimStyle.Render(fmt.Sprintf(" %d", i+1))
	if m.cursor == id {
		header = lipgloss.NewStyle().Foreground(hoverBorder).Render(fmt.Sprintf("▸%d", i+1))
	}

	lines := []string{header}
	if pile.Empty() {
		lines = append(lines, dimStyle.Render("···"))
	}

	selFrom := -1
	if m.selected != nil && m.selected.src == id {
		selFrom = pile.Len() - m.selected.n
	}

	for j, c := range pile {
		line := cardFace(c)
		if selFrom >= 0 && j >= selFrom {
			line = lipgloss.NewStyle().Foreground(selectedBorder).Render("*") + line
		} else {
			line = " " + line
		}
		lines = append(lines, line)
	}

	col := lipgloss.NewStyle().Width(cardWidth + 1).Render(strings.Join(lines, "\n"))
	return col
}

func (m Model) renderStatus() string {
	if m.status != "" {
		return errorStyle.Render(m.status)
	}

	hints := "navigate: ←↑↓→ | pick/drop: ␣ | more: shift+↑↓ | [d]raw | [c]ancel | [r]estart | [q]uit"
	if m.selected != nil {
		hints = fmt.Sprintf("moving %d from %v | drop: ␣ on target | [c]ancel", m.selected.n, m.selected.src)
	}
	return statusStyle.Render(hints)
}

// winBanner renders the win message with a color gradient
func winBanner(text string) string {
	from, _ := colorful.Hex("#43cea2")
	to, _ := colorful.Hex("#185a9d")

	runes := []rune(text)
	var b strings.Builder
	for i, r := range runes {
		t := float64(i) / float64(len(runes)-1)
		c := from.BlendLuv(to, t)
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Hex())).
			Bold(true).
			Render(string(r)))
	}
	return b.String()
}
