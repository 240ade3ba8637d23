package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/patience/internal/card"
	"github.com/arcanaland/patience/internal/deck"
)

func newTestBoard() *Board {
	d := deck.New()
	deck.Shuffle(d, 1)
	return Deal(d, 1)
}

func TestValidSeqTableau(t *testing.T) {
	assert.True(t, validSeq(Tableau, card.MustParseAll("KC", "QH", "JS", "XD")))

	assert.False(t, validSeq(Tableau, card.MustParseAll("XD", "JS", "QH", "KC")),
		"ascending runs are invalid on a tableau")
	assert.False(t, validSeq(Tableau, card.MustParseAll("8H", "7D", "6D")),
		"same-color neighbors are invalid")
	assert.False(t, validSeq(Tableau, card.MustParseAll("2C", "AH", "KS")),
		"rank does not wrap around")
}

func TestValidSeqFoundation(t *testing.T) {
	assert.True(t, validSeq(Foundation, card.MustParseAll("XC", "JC", "QC", "KC")))

	assert.False(t, validSeq(Foundation, card.MustParseAll("KC", "QC", "JC", "XC")),
		"descending runs are invalid on a foundation")
	assert.False(t, validSeq(Foundation, card.MustParseAll("6D", "7D", "8H")),
		"mixed suits are invalid")
	assert.False(t, validSeq(Foundation, card.MustParseAll("QC", "KC", "AC")),
		"rank does not wrap around")
}

func TestApplyInvalidInput(t *testing.T) {
	b := newTestBoard()

	cases := []struct {
		name string
		move Move
	}{
		{"zero cards", Move{Src: TableauID(0), N: 0, Dst: TableauID(1)}},
		{"from stock to tableau", Move{Src: StockID(), N: 1, Dst: TableauID(0)}},
		{"two cards from waste", Move{Src: WasteID(), N: 2, Dst: TableauID(0)}},
		{"two cards to foundation", Move{Src: TableauID(0), N: 2, Dst: FoundationID(card.Clubs)}},
		{"to stock", Move{Src: TableauID(0), N: 1, Dst: StockID()}},
		{"to waste", Move{Src: TableauID(0), N: 1, Dst: WasteID()}},
		{"unknown tableau", Move{Src: TableauID(7), N: 1, Dst: TableauID(0)}},
		{"unknown destination", Move{Src: TableauID(0), N: 1, Dst: TableauID(-1)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := b.Apply(tc.move)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrIllegalMove)
		})
	}
}

func TestApplyInvalidMove(t *testing.T) {
	b := &Board{DrawCount: 1}
	b.Stock = Pile(card.MustParseAll("#KC", "#AH"))
	b.Tableaus[0] = Pile(card.MustParseAll("2S"))
	b.Tableaus[1] = Pile(card.MustParseAll("6H", "3D"))

	// Nothing in the waste yet.
	err := b.Apply(Move{Src: WasteID(), N: 1, Dst: TableauID(0)})
	assert.ErrorIs(t, err, ErrIllegalMove)

	b.Draw() // AH now on the waste

	// An Ace is not a King, so no empty-tableau move.
	err = b.Apply(Move{Src: WasteID(), N: 1, Dst: TableauID(2)})
	assert.ErrorIs(t, err, ErrIllegalMove)

	// A 2 cannot start a foundation.
	err = b.Apply(Move{Src: TableauID(0), N: 1, Dst: FoundationID(card.Spades)})
	assert.ErrorIs(t, err, ErrIllegalMove)

	// AH does not continue 3D.
	err = b.Apply(Move{Src: WasteID(), N: 1, Dst: TableauID(1)})
	assert.ErrorIs(t, err, ErrIllegalMove)

	// 6H,3D is not a movable sequence.
	err = b.Apply(Move{Src: TableauID(1), N: 2, Dst: TableauID(0)})
	assert.ErrorIs(t, err, ErrIllegalMove)

	// 3D on 2S is not a valid destination sequence.
	err = b.Apply(Move{Src: TableauID(1), N: 1, Dst: TableauID(0)})
	assert.ErrorIs(t, err, ErrIllegalMove)
}

func TestApplyRejectionLeavesBoardUnchanged(t *testing.T) {
	b := newTestBoard()
	before := *b
	for i := range before.Tableaus {
		before.Tableaus[i] = append(Pile(nil), b.Tableaus[i]...)
	}
	before.Stock = append(Pile(nil), b.Stock...)

	illegalMoves := []Move{
		{Src: TableauID(0), N: 0, Dst: TableauID(1)},
		{Src: TableauID(0), N: 1, Dst: StockID()},
		{Src: TableauID(3), N: 4, Dst: TableauID(1)},
		{Src: WasteID(), N: 1, Dst: TableauID(0)},
	}
	for _, m := range illegalMoves {
		require.Error(t, b.Apply(m))
		assert.Equal(t, &before, b, "rejected move %v must not mutate the board", m)
	}
}

func TestApplyMoveWalk(t *testing.T) {
	b := &Board{DrawCount: 1}
	b.Stock = Pile(card.MustParseAll("#KC", "#AH"))
	b.Tableaus[0] = Pile(card.MustParseAll("2S"))
	b.Tableaus[1] = Pile(card.MustParseAll("3D"))

	b.Draw() // AH to the waste

	// Ace of Hearts onto the 2 of Spades.
	require.NoError(t, b.Apply(Move{Src: WasteID(), N: 1, Dst: TableauID(0)}))
	assert.True(t, b.Waste.Empty())
	assert.Equal(t, Pile(card.MustParseAll("2S", "AH")), b.Tableaus[0])

	// The 2,A run onto the 3 of Diamonds.
	require.NoError(t, b.Apply(Move{Src: TableauID(0), N: 2, Dst: TableauID(1)}))
	assert.True(t, b.Tableaus[0].Empty())
	assert.Equal(t, Pile(card.MustParseAll("3D", "2S", "AH")), b.Tableaus[1])

	// Ace of Hearts up to its foundation.
	require.NoError(t, b.Apply(Move{Src: TableauID(1), N: 1, Dst: FoundationID(card.Hearts)}))
	assert.Equal(t, Pile(card.MustParseAll("3D", "2S")), b.Tableaus[1])
	assert.Equal(t, Pile(card.MustParseAll("AH")), b.Foundations[card.Hearts])

	// Draw the King of Clubs and park it on an empty tableau.
	b.Draw()
	require.NoError(t, b.Apply(Move{Src: WasteID(), N: 1, Dst: TableauID(2)}))
	assert.Equal(t, Pile(card.MustParseAll("KC")), b.Tableaus[2])

	// A foundation card can come back down.
	require.NoError(t, b.Apply(Move{Src: FoundationID(card.Hearts), N: 1, Dst: TableauID(1)}))
	assert.True(t, b.Foundations[card.Hearts].Empty())
	assert.Equal(t, Pile(card.MustParseAll("3D", "2S", "AH")), b.Tableaus[1])
}

func TestApplySourceEqualsDestinationIsNoOp(t *testing.T) {
	b := &Board{DrawCount: 1}
	b.Tableaus[0] = Pile(card.MustParseAll("#5C", "7H"))

	require.NoError(t, b.Apply(Move{Src: TableauID(0), N: 1, Dst: TableauID(0)}))
	assert.Equal(t, Pile(card.MustParseAll("#5C", "7H")), b.Tableaus[0])
}

func TestApplyFlipsExposedCard(t *testing.T) {
	b := &Board{DrawCount: 1}
	b.Tableaus[0] = Pile(card.MustParseAll("#5C", "7H"))
	b.Tableaus[1] = Pile(card.MustParseAll("8S"))

	require.NoError(t, b.Apply(Move{Src: TableauID(0), N: 1, Dst: TableauID(1)}))
	assert.Equal(t, Pile(card.MustParseAll("8S", "7H")), b.Tableaus[1])

	top, ok := b.Tableaus[0].Peek()
	require.True(t, ok)
	assert.True(t, top.FaceUp, "exposed card should flip face-up")
	assert.True(t, top.Is(card.MustParse("5C")))
}

func TestApplyFoundationKeyedBySuit(t *testing.T) {
	b := &Board{DrawCount: 1}
	b.Tableaus[0] = Pile(card.MustParseAll("AH"))

	// The Ace of Hearts only goes on the hearts foundation.
	err := b.Apply(Move{Src: TableauID(0), N: 1, Dst: FoundationID(card.Spades)})
	assert.ErrorIs(t, err, ErrIllegalMove)

	require.NoError(t, b.Apply(Move{Src: TableauID(0), N: 1, Dst: FoundationID(card.Hearts)}))
	assert.Equal(t, Pile(card.MustParseAll("AH")), b.Foundations[card.Hearts])
}

func TestApplyFaceDownRunRejected(t *testing.T) {
	b := &Board{DrawCount: 1}
	b.Tableaus[0] = Pile(card.MustParseAll("#9D", "8H"))
	b.Tableaus[1] = Pile(card.MustParseAll("XS"))

	// The 9 is face-down, so a two-card take is not addressable.
	err := b.Apply(Move{Src: TableauID(0), N: 2, Dst: TableauID(1)})
	assert.ErrorIs(t, err, ErrIllegalMove)
}

func TestWinByLastMove(t *testing.T) {
	b := &Board{DrawCount: 1}
	for i, suit := range card.Suits {
		for _, rank := range card.Ranks[:12] {
			b.Foundations[i].Push(card.Card{Suit: suit, Rank: rank, FaceUp: true})
		}
	}
	// All four Kings wait on a tableau each.
	for i, suit := range card.Suits {
		b.Tableaus[i] = Pile{card.Card{Suit: suit, Rank: card.King, FaceUp: true}}
	}

	assert.False(t, b.IsWon())
	for i, suit := range card.Suits {
		require.NoError(t, b.Apply(Move{Src: TableauID(i), N: 1, Dst: FoundationID(suit)}))
	}
	assert.True(t, b.IsWon())
	require.NoError(t, b.Check())
}

func TestCardCountStaysFixedAcrossPlay(t *testing.T) {
	b := newTestBoard()
	require.NoError(t, b.Check())

	// Play a handful of whatever moves are legal, drawing in between.
	for i := 0; i < 40; i++ {
		moves := b.LegalMoves()
		if len(moves) == 0 {
			break
		}
		require.NoError(t, b.Apply(moves[i%len(moves)]))
		require.NoError(t, b.Check(), "invariant broken after %v", moves[i%len(moves)])
	}
}
