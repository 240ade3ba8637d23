package tui

import (
	"math/rand"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcanaland/patience/internal/card"
	"github.com/arcanaland/patience/internal/deck"
	"github.com/arcanaland/patience/internal/engine"
)

// topRow is the pile order of the upper board row, left to right
var topRow = []engine.PileID{
	engine.StockID(),
	engine.WasteID(),
	engine.FoundationID(card.Clubs),
	engine.FoundationID(card.Spades),
	engine.FoundationID(card.Hearts),
	engine.FoundationID(card.Diamonds),
}

// selection tracks the cards picked up for a pending move
type selection struct {
	src engine.PileID
	n   int
}

// Model is the bubbletea model for an interactive game. It owns the engine
// board and only talks to it through its query and command surface.
type Model struct {
	board     *engine.Board
	rng       *rand.Rand
	drawCount int

	cursor   engine.PileID
	selected *selection
	status   string
	moves    int
	won      bool

	width  int
	height int
}

// New creates a model seeded for its first deal. Restarts reshuffle with
// fresh seeds drawn from the same stream, so a fixed seed reproduces the
// whole session.
func New(seed int64, drawCount int) Model {
	m := Model{
		rng:       rand.New(rand.NewSource(seed)),
		drawCount: drawCount,
		cursor:    engine.StockID(),
	}
	m.board = m.newGame()
	return m
}

func (m *Model) newGame() *engine.Board {
	d := deck.New()
	deck.Shuffle(d, m.rng.Int63())
	return engine.Deal(d, m.drawCount)
}

// Board exposes the current board, for tests
func (m Model) Board() *engine.Board {
	return m.board
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.board = m.newGame()
		m.selected = nil
		m.cursor = engine.StockID()
		m.status = ""
		m.moves = 0
		m.won = false
		return m, nil
	}

	if m.won {
		return m, nil
	}

	switch key {
	case "left", "h":
		m.moveCursor(-1)
	case "right", "l":
		m.moveCursor(1)
	case "up", "k":
		m.switchRow()
	case "down", "j":
		m.switchRow()
	case "shift+up", "K", "+":
		m.growSelection(1)
	case "shift+down", "J", "-":
		m.growSelection(-1)
	case "1", "2", "3", "4", "5", "6", "7":
		m.cursor = engine.TableauID(int(key[0] - '1'))
	case "d":
		m.applyMove(engine.DrawMove())
	case "c", "esc":
		m.selected = nil
		m.status = ""
	case " ", "enter":
		m.interact()
	}
	return m, nil
}

// moveCursor moves left or right within the current row, wrapping around
func (m *Model) moveCursor(delta int) {
	if m.cursor.Kind == engine.Tableau {
		i := (m.cursor.Index + delta + engine.NumTableaus) % engine.NumTableaus
		m.cursor = engine.TableauID(i)
		return
	}
	i := topRowIndex(m.cursor)
	i = (i + delta + len(topRow)) % len(topRow)
	m.cursor = topRow[i]
}

// switchRow jumps between the stock/waste/foundation row and the tableaus,
// keeping roughly the same column
func (m *Model) switchRow() {
	if m.cursor.Kind == engine.Tableau {
		col := m.cursor.Index
		if col >= len(topRow) {
			col = len(topRow) - 1
		}
		m.cursor = topRow[col]
		return
	}
	m.cursor = engine.TableauID(topRowIndex(m.cursor))
}

func topRowIndex(id engine.PileID) int {
	for i, p := range topRow {
		if p == id {
			return i
		}
	}
	return 0
}

// growSelection extends or shrinks the picked-up tableau run
func (m *Model) growSelection(delta int) {
	if m.selected == nil || m.selected.src.Kind != engine.Tableau {
		return
	}
	limit := m.board.Pile(m.selected.src).FaceUpLen()
	n := m.selected.n + delta
	if n < 1 || n > limit {
		return
	}
	m.selected.n = n
}

// interact is the space/enter action: draw on the stock, pick up a card, or
// drop the picked-up cards onto the hovered pile.
func (m *Model) interact() {
	if m.selected == nil {
		if m.cursor.Kind == engine.Stock {
			m.applyMove(engine.DrawMove())
			return
		}
		pile := m.board.Pile(m.cursor)
		if top, ok := pile.Peek(); !ok || !top.FaceUp {
			return
		}
		m.selected = &selection{src: m.cursor, n: 1}
		m.status = ""
		return
	}

	if m.cursor == m.selected.src {
		m.selected = nil
		m.status = ""
		return
	}

	m.applyMove(engine.Move{Src: m.selected.src, N: m.selected.n, Dst: m.cursor})
}

func (m *Model) applyMove(move engine.Move) {
	if err := m.board.Apply(move); err != nil {
		// The only error kind the engine reports; show it and keep the
		// selection so the player can try another destination.
		m.status = err.Error()
		return
	}

	m.selected = nil
	m.status = ""
	m.moves++
	if m.board.IsWon() {
		m.won = true
	}
}
