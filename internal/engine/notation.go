package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arcanaland/patience/internal/card"
)

// ParseMove reads a move from a compact notation:
//
//	d           draw from the stock
//	w-t3        waste onto tableau 3
//	t1-t4       top card of tableau 1 onto tableau 4
//	t1:3-t4     top 3 cards of tableau 1 onto tableau 4
//	t2-f        top card of tableau 2 onto its foundation
//	fh-t5       hearts foundation onto tableau 5
//
// Tableau numbers are 1-based. Foundations are addressed by suit letter
// (fc, fs, fh, fd); a bare "f" destination resolves to the foundation of the
// card being moved, which requires the board.
func ParseMove(b *Board, s string) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "d" || s == "draw" {
		return DrawMove(), nil
	}

	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return Move{}, fmt.Errorf("invalid move notation: %q", s)
	}

	src, n, err := parseSource(parts[0])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move notation %q: %v", s, err)
	}

	dst, err := parseDest(b, parts[1], src, n)
	if err != nil {
		return Move{}, fmt.Errorf("invalid move notation %q: %v", s, err)
	}

	return Move{Src: src, N: n, Dst: dst}, nil
}

func parseSource(s string) (PileID, int, error) {
	n := 1
	if name, count, found := strings.Cut(s, ":"); found {
		parsed, err := strconv.Atoi(count)
		if err != nil || parsed < 1 {
			return PileID{}, 0, fmt.Errorf("bad card count %q", count)
		}
		s, n = name, parsed
	}

	id, err := parsePile(s)
	if err != nil {
		return PileID{}, 0, err
	}
	if id.Kind != Tableau && n != 1 {
		return PileID{}, 0, fmt.Errorf("card count only applies to tableau sources")
	}
	return id, n, nil
}

func parseDest(b *Board, s string, src PileID, n int) (PileID, error) {
	// A bare "f" means "the foundation this card belongs on".
	if s == "f" {
		srcPile := b.pile(src)
		if srcPile == nil {
			return PileID{}, fmt.Errorf("unknown source pile")
		}
		run, ok := srcPile.TopRun(n)
		if !ok {
			return PileID{}, fmt.Errorf("no movable card to send to a foundation")
		}
		return FoundationID(run[0].Suit), nil
	}
	return parsePile(s)
}

func parsePile(s string) (PileID, error) {
	switch {
	case s == "w" || s == "waste":
		return WasteID(), nil
	case strings.HasPrefix(s, "t"):
		n, err := strconv.Atoi(s[1:])
		if err != nil || n < 1 || n > NumTableaus {
			return PileID{}, fmt.Errorf("bad tableau %q", s)
		}
		return TableauID(n - 1), nil
	case strings.HasPrefix(s, "f") && len(s) == 2:
		switch s[1] {
		case 'c':
			return FoundationID(card.Clubs), nil
		case 's':
			return FoundationID(card.Spades), nil
		case 'h':
			return FoundationID(card.Hearts), nil
		case 'd':
			return FoundationID(card.Diamonds), nil
		}
	}
	return PileID{}, fmt.Errorf("unknown pile %q", s)
}
