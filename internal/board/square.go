// Package board implements the state core of the chess computer: a
// bit-parallel position representation, the make/unmake engine that mutates
// it, and the precomputed move tables consulted by move generation.
package board

import "fmt"

// Square identifies one board cell (0-63).
// Rank-major indexing: A1=0, H1=7, A8=56, H8=63. Rank 0 is the edge nearest
// White, file 0 is the queenside edge.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// NewSquare creates a square from file and rank (both 0-indexed).
// The caller guarantees both are in [0,8); there is no bounds check.
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// File returns the file (column) of the square (0=a .. 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank (row) of the square (0=rank 1 .. 7=rank 8).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// Rotate maps the square from rank-major to file-major numbering and back.
// The mapping swaps the rank and file of the square, so it is its own
// inverse: sq.Rotate().Rotate() == sq. It keeps the rotated occupancy view
// of a Position in sync with the standard view.
func (sq Square) Rotate() Square {
	return sq&7<<3 | sq>>3
}

// String returns the algebraic name of the square (e.g. "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// ParseSquare parses an algebraic square name (e.g. "e4").
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	file := int(s[0] - 'a')
	rank := int(s[1] - '1')

	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	return NewSquare(file, rank), nil
}
