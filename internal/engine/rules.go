package engine

import (
	"errors"
	"fmt"

	"github.com/arcanaland/patience/internal/card"
)

// ErrIllegalMove is the single error kind the engine reports. Every rejected
// move wraps it with a reason; the board is left untouched.
var ErrIllegalMove = errors.New("illegal move")

func illegal(reason string) error {
	return fmt.Errorf("%w: %s", ErrIllegalMove, reason)
}

// validSeq reports whether the given cards form a sequence that may sit on a
// pile of the given kind, bottom card first:
//   - tableau: descending rank, alternating color
//   - foundation: ascending rank, same suit
//   - stock and waste: any sequence
func validSeq(kind PileKind, cs []card.Card) bool {
	switch kind {
	case Tableau:
		for i := 1; i < len(cs); i++ {
			if cs[i].Suit.Color() == cs[i-1].Suit.Color() {
				return false
			}
			if cs[i].Rank != cs[i-1].Rank-1 {
				return false
			}
		}
	case Foundation:
		for i := 1; i < len(cs); i++ {
			if cs[i].Suit != cs[i-1].Suit {
				return false
			}
			if cs[i].Rank != cs[i-1].Rank+1 {
				return false
			}
		}
	}
	return true
}

// Apply validates the move against the current board and, only when every
// rule passes, transfers the cards and flips a newly exposed tableau card
// face-up. A rejected move returns an error wrapping ErrIllegalMove and
// leaves the board exactly as it was.
func (b *Board) Apply(m Move) error {
	// The stock can only be drawn, never moved from.
	if m.Src.Kind == Stock {
		if m.Dst.Kind == Waste {
			b.Draw()
			return nil
		}
		return illegal("cannot move cards from the stock")
	}

	if m.N == 0 {
		return illegal("cannot take 0 cards")
	}
	if m.Src.Kind == Waste && m.N != 1 {
		return illegal("cannot move more than 1 card from the waste")
	}

	switch m.Dst.Kind {
	case Tableau:
	case Foundation:
		if m.N != 1 {
			return illegal("cannot move more than 1 card to a foundation")
		}
	case Stock:
		return illegal("cannot move cards to the stock")
	case Waste:
		return illegal("cannot move cards to the waste")
	}

	// Source == destination is a no-op.
	if m.Src == m.Dst {
		return nil
	}

	src := b.pile(m.Src)
	if src == nil {
		return illegal("no such source pile")
	}
	dst := b.pile(m.Dst)
	if dst == nil {
		return illegal("no such destination pile")
	}

	run, ok := src.TopRun(m.N)
	if !ok {
		return illegal("not enough movable cards in the source pile")
	}
	if !validSeq(m.Src.Kind, run) {
		return illegal("source sequence is invalid")
	}

	bottom := run[0]
	if top, hasTop := dst.Peek(); hasTop {
		if !validSeq(m.Dst.Kind, []card.Card{top, bottom}) {
			return illegal("destination sequence is invalid")
		}
	} else {
		switch m.Dst.Kind {
		case Tableau:
			if bottom.Rank != card.King {
				return illegal("only a King may move to an empty tableau")
			}
		case Foundation:
			if bottom.Rank != card.Ace {
				return illegal("only an Ace may start a foundation")
			}
		}
	}

	// Foundations are keyed by suit.
	if m.Dst.Kind == Foundation && m.Dst.Index != int(bottom.Suit) {
		return illegal(fmt.Sprintf("card belongs on the %v foundation", bottom.Suit))
	}

	// All rules passed, mutate.
	dst.Push(src.takeTop(m.N)...)
	if m.Src.Kind == Tableau {
		if n := src.Len(); n > 0 && !(*src)[n-1].FaceUp {
			(*src)[n-1].FaceUp = true
		}
	}
	return nil
}
