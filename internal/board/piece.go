package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// PieceType represents the type of piece occupying a square. None is a
// first-class value: it owns the seventh occupancy channel of a Position,
// which is always the complement of the union of the six real-piece
// channels. That lets "nothing here" be looked up and cleared uniformly
// during captures.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	None
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the lowercase letter conventionally used for the piece type,
// or '.' for None. Used by the debug renderers.
func (pt PieceType) Char() byte {
	if pt >= None {
		return '.'
	}
	return "pnbrqk"[pt]
}
