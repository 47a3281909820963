package board

import "fmt"

// Move encodes a pseudo-move in 16 bits:
// bits 0-5:   origin square
// bits 6-11:  destination square
// bits 12-14: promotion piece type (None for non-promotions)
//
// A move is constructed only from distinct, in-range origin/destination
// squares, with the promotion piece restricted to rook, knight, bishop,
// queen, or None. Violating those contracts is a caller bug; the
// constructors only verify them when DebugChecks is enabled.
type Move uint16

// NewMove creates a non-promotion move.
func NewMove(from, to Square) Move {
	if DebugChecks {
		checkMoveContract(from, to, None)
	}
	return Move(from) | Move(to)<<6 | Move(None)<<12
}

// NewPromotion creates a promotion move.
func NewPromotion(from, to Square, promo PieceType) Move {
	if DebugChecks {
		checkMoveContract(from, to, promo)
	}
	return Move(from) | Move(to)<<6 | Move(promo)<<12
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(m>>6) & 0x3F
}

// Promotion returns the promotion piece type, None for non-promotions.
func (m Move) Promotion() PieceType {
	return PieceType(m>>12) & 7
}

// IsPromotion reports whether the move carries a promotion piece.
func (m Move) IsPromotion() bool {
	return m.Promotion() != None
}

// String returns the move in coordinate form (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(m.Promotion().Char())
	}
	return s
}

func checkMoveContract(from, to Square, promo PieceType) {
	if from >= NoSquare || to >= NoSquare {
		panic(fmt.Sprintf("board: move square out of range: %d-%d", from, to))
	}
	if from == to {
		panic(fmt.Sprintf("board: move origin equals destination: %v", from))
	}
	if promo == Pawn || promo == King {
		panic(fmt.Sprintf("board: invalid promotion piece: %v", promo))
	}
}

// Record is a reversible-move record: everything needed to undo one applied
// move. Target is the square actually vacated by the move, which differs
// from To only for en passant. Captured is read before any mutation, so a
// quiet move records None.
type Record struct {
	From      Square
	To        Square
	Target    Square
	Captured  PieceType
	Promotion bool
}
