package engine

import (
	"fmt"

	"github.com/arcanaland/patience/internal/card"
	"github.com/arcanaland/patience/internal/deck"
)

const (
	// NumTableaus is the number of tableau columns in Klondike
	NumTableaus = 7
	// NumFoundations is the number of foundation piles, one per suit
	NumFoundations = 4
	// DefaultDrawCount is how many cards a single draw turns over
	DefaultDrawCount = 1
)

// PileKind identifies which kind of pile a PileID refers to
type PileKind int

const (
	Stock PileKind = iota
	Waste
	Foundation
	Tableau
)

func (k PileKind) String() string {
	switch k {
	case Stock:
		return "stock"
	case Waste:
		return "waste"
	case Foundation:
		return "foundation"
	case Tableau:
		return "tableau"
	}
	return "unknown"
}

// PileID names a single pile on the board. Index is only meaningful for
// foundations (0..3, keyed by suit) and tableaus (0..6).
type PileID struct {
	Kind  PileKind
	Index int
}

func (id PileID) String() string {
	switch id.Kind {
	case Foundation:
		return fmt.Sprintf("foundation %v", card.Suit(id.Index))
	case Tableau:
		return fmt.Sprintf("tableau %d", id.Index+1)
	default:
		return id.Kind.String()
	}
}

// StockID returns the PileID of the stock
func StockID() PileID { return PileID{Kind: Stock} }

// WasteID returns the PileID of the waste
func WasteID() PileID { return PileID{Kind: Waste} }

// FoundationID returns the PileID of the foundation for the given suit
func FoundationID(s card.Suit) PileID { return PileID{Kind: Foundation, Index: int(s)} }

// TableauID returns the PileID of the n-th tableau column (0-based)
func TableauID(n int) PileID { return PileID{Kind: Tableau, Index: n} }

// Move asks the engine to transfer the top N cards from Src onto Dst. Moving
// from the stock to the waste is the draw move; it ignores N and instead
// draws the board's configured draw count (or recycles the waste when the
// stock is empty).
type Move struct {
	Src PileID
	N   int
	Dst PileID
}

// DrawMove returns the move that turns over cards from the stock
func DrawMove() Move {
	return Move{Src: StockID(), N: 1, Dst: WasteID()}
}

// IsDraw reports whether the move is the stock draw
func (m Move) IsDraw() bool {
	return m.Src.Kind == Stock && m.Dst.Kind == Waste
}

func (m Move) String() string {
	if m.IsDraw() {
		return "draw"
	}
	if m.N > 1 {
		return fmt.Sprintf("%v (%d cards) to %v", m.Src, m.N, m.Dst)
	}
	return fmt.Sprintf("%v to %v", m.Src, m.Dst)
}

// Board holds every pile of a Klondike game. It is only ever mutated through
// Apply and Draw, which keep the 52-card invariant intact.
type Board struct {
	Tableaus    [NumTableaus]Pile
	Foundations [NumFoundations]Pile
	Stock       Pile
	Waste       Pile

	// DrawCount is how many cards Draw turns over at once, 1 or 3.
	DrawCount int
}

// Deal lays out a shuffled deck into a fresh board: tableau column i receives
// i+1 cards with only the top one face-up, and the remaining 24 cards form
// the face-down stock.
func Deal(d deck.Deck, drawCount int) *Board {
	if drawCount < 1 {
		drawCount = DefaultDrawCount
	}

	b := &Board{DrawCount: drawCount}
	b.Stock = make(Pile, len(d))
	copy(b.Stock, d)
	for i := range b.Stock {
		b.Stock[i].FaceUp = false
	}

	// One card to each of columns i..6 per round, from the top of the stock.
	for i := 0; i < NumTableaus; i++ {
		for j := i; j < NumTableaus; j++ {
			c, _ := b.Stock.Pop()
			b.Tableaus[j].Push(c)
		}
	}

	for i := range b.Tableaus {
		b.Tableaus[i][len(b.Tableaus[i])-1].FaceUp = true
	}

	return b
}

// pile resolves a PileID to the underlying pile, or nil when the ID is out
// of range.
func (b *Board) pile(id PileID) *Pile {
	switch id.Kind {
	case Stock:
		return &b.Stock
	case Waste:
		return &b.Waste
	case Foundation:
		if id.Index < 0 || id.Index >= NumFoundations {
			return nil
		}
		return &b.Foundations[id.Index]
	case Tableau:
		if id.Index < 0 || id.Index >= NumTableaus {
			return nil
		}
		return &b.Tableaus[id.Index]
	}
	return nil
}

// Pile returns a read-only snapshot view of the pile at id, or nil for an
// unknown id. Intended for presentation layers.
func (b *Board) Pile(id PileID) Pile {
	p := b.pile(id)
	if p == nil {
		return nil
	}
	return *p
}

// Draw turns over cards from the stock onto the waste. Drawn cards become
// face-up. When the stock is empty the waste is recycled: turned back over
// onto the stock in reverse order, face-down. When both piles are empty the
// draw is a no-op.
func (b *Board) Draw() {
	if b.Stock.Empty() {
		for {
			c, ok := b.Waste.Pop()
			if !ok {
				return
			}
			c.FaceUp = false
			b.Stock.Push(c)
		}
	}

	n := b.DrawCount
	if n > b.Stock.Len() {
		n = b.Stock.Len()
	}
	// The packet keeps its order, so the former stock top ends up on top
	// of the waste.
	cs := b.Stock.takeTop(n)
	for i := range cs {
		cs[i].FaceUp = true
	}
	b.Waste.Push(cs...)
}

// IsWon reports whether every foundation holds its full 13-card suit
func (b *Board) IsWon() bool {
	for _, f := range b.Foundations {
		if f.Len() != len(card.Ranks) {
			return false
		}
	}
	return true
}

// Stuck reports whether no legal moves remain
func (b *Board) Stuck() bool {
	return len(b.LegalMoves()) == 0
}

// Check verifies the board invariant: the union of all piles is exactly the
// 52-card deck, every card appearing once. It returns the first violation.
func (b *Board) Check() error {
	seen := make(map[card.Card]PileID, deck.Size)
	total := 0

	count := func(id PileID, p Pile) error {
		for _, c := range p {
			key := card.Card{Suit: c.Suit, Rank: c.Rank}
			if prev, dup := seen[key]; dup {
				return fmt.Errorf("card %v%v appears in both %v and %v", c.Rank, c.Suit, prev, id)
			}
			seen[key] = id
			total++
		}
		return nil
	}

	if err := count(StockID(), b.Stock); err != nil {
		return err
	}
	if err := count(WasteID(), b.Waste); err != nil {
		return err
	}
	for i, f := range b.Foundations {
		if err := count(FoundationID(card.Suit(i)), f); err != nil {
			return err
		}
	}
	for i, t := range b.Tableaus {
		if err := count(TableauID(i), t); err != nil {
			return err
		}
	}

	if total != deck.Size {
		return fmt.Errorf("board holds %d cards, want %d", total, deck.Size)
	}
	return nil
}
