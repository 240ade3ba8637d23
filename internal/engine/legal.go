package engine

import "github.com/arcanaland/patience/internal/card"

// canPlace reports whether a run with the given bottom card may be placed on
// the pile at dst under the current board state.
func (b *Board) canPlace(bottom card.Card, dst PileID) bool {
	p := b.pile(dst)
	if p == nil {
		return false
	}
	if dst.Kind == Foundation && dst.Index != int(bottom.Suit) {
		return false
	}
	if top, ok := p.Peek(); ok {
		return validSeq(dst.Kind, []card.Card{top, bottom})
	}
	switch dst.Kind {
	case Tableau:
		return bottom.Rank == card.King
	case Foundation:
		return bottom.Rank == card.Ace
	}
	return false
}

// LegalMoves enumerates every move Apply would accept in the current state:
// waste and foundation tops onto the tableaus, tableau runs onto other
// tableaus, single cards onto their foundations, and the stock draw whenever
// there is anything left to draw or recycle.
func (b *Board) LegalMoves() []Move {
	var moves []Move

	addCardMoves := func(src PileID, n int, bottom card.Card) {
		for i := 0; i < NumTableaus; i++ {
			if src.Kind == Tableau && src.Index == i {
				continue
			}
			if b.canPlace(bottom, TableauID(i)) {
				moves = append(moves, Move{Src: src, N: n, Dst: TableauID(i)})
			}
		}
		if n == 1 && src.Kind != Foundation {
			if b.canPlace(bottom, FoundationID(bottom.Suit)) {
				moves = append(moves, Move{Src: src, N: n, Dst: FoundationID(bottom.Suit)})
			}
		}
	}

	if top, ok := b.Waste.Peek(); ok {
		addCardMoves(WasteID(), 1, top)
	}

	for i, t := range b.Tableaus {
		faceUp := t.FaceUpLen()
		for n := 1; n <= faceUp; n++ {
			run, ok := t.TopRun(n)
			if !ok || !validSeq(Tableau, run) {
				continue
			}
			addCardMoves(TableauID(i), n, run[0])
		}
	}

	for i, f := range b.Foundations {
		if top, ok := f.Peek(); ok {
			addCardMoves(FoundationID(card.Suit(i)), 1, top)
		}
	}

	if !b.Stock.Empty() || !b.Waste.Empty() {
		moves = append(moves, DrawMove())
	}

	return moves
}
