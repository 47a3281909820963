package board

import (
	"fmt"
	"strings"
)

// Position is the mutable aggregate of game state. It keeps five redundant
// views of one logical board, all mutated in lock-step by Make and Unmake:
//
//   - byColor: one occupancy bitboard per color, standard orientation
//   - rotated: the same occupancy re-expressed through Square.Rotate, giving
//     an O(1) file-major view for file-lane lookups
//   - byType: one occupancy bitboard per piece type, including the explicit
//     None channel (always the complement of the union of the others)
//   - squares: per-square piece type lookup
//
// plus the LIFO history of reversible-move records and the side to move.
//
// A Position is owned by one logical caller at a time; there is no internal
// locking. Concurrent searchers each take their own copy.
type Position struct {
	byColor [2]Bitboard
	rotated [2]Bitboard
	byType  [7]Bitboard
	squares [64]PieceType
	history []Record
	side    Color

	// side at construction; the side to move is stored directly and flipped
	// by every make/unmake, but it must always agree with the history depth
	// relative to this anchor.
	base Color
}

// NewPosition creates the standard starting position, White to move.
func NewPosition() *Position {
	p := newEmptyPosition()

	backRank := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < 8; file++ {
		p.put(backRank[file], White, NewSquare(file, 0))
		p.put(Pawn, White, NewSquare(file, 1))
		p.put(Pawn, Black, NewSquare(file, 6))
		p.put(backRank[file], Black, NewSquare(file, 7))
	}

	return p
}

// NewCustomPosition creates a position from an arbitrary arrangement: types
// gives the occupant of each square (None for empty) and white marks which
// occupied squares hold White's pieces. The arrangement is assumed legal
// apart from basic shape; overlap between white and occupied-by-type
// bookkeeping is rejected.
func NewCustomPosition(types [64]PieceType, white Bitboard, side Color) (*Position, error) {
	p := newEmptyPosition()
	p.side = side
	p.base = side

	for sq := A1; sq <= H8; sq++ {
		pt := types[sq]
		if pt == None {
			if white.IsSet(sq) {
				return nil, fmt.Errorf("board: square %v marked white but empty", sq)
			}
			continue
		}
		if pt > None {
			return nil, fmt.Errorf("board: invalid piece type %d at %v", pt, sq)
		}
		c := Black
		if white.IsSet(sq) {
			c = White
		}
		p.put(pt, c, sq)
	}

	return p, nil
}

func newEmptyPosition() *Position {
	p := &Position{}
	p.byType[None] = Universe
	for sq := range p.squares {
		p.squares[sq] = None
	}
	return p
}

// put places a piece during construction, updating all five views.
func (p *Position) put(pt PieceType, c Color, sq Square) {
	p.squares[sq] = pt
	p.byColor[c] = p.byColor[c].Set(sq)
	p.byType[pt] = p.byType[pt].Set(sq)
	p.byType[None] = p.byType[None].Clear(sq)
	p.rotated[c] = p.rotated[c].Set(sq.Rotate())
}

// Copy returns an independently owned copy of the position, including its
// own history stack.
func (p *Position) Copy() *Position {
	q := *p
	q.history = append([]Record(nil), p.history...)
	return &q
}

// SideToMove returns the color whose turn it is.
func (p *Position) SideToMove() Color {
	return p.side
}

// Occupied returns the occupancy bitboard for one color, standard
// orientation.
func (p *Position) Occupied(c Color) Bitboard {
	return p.byColor[c]
}

// OccupiedRotated returns the occupancy bitboard for one color in the
// file-major rotated orientation.
func (p *Position) OccupiedRotated(c Color) Bitboard {
	return p.rotated[c]
}

// AllOccupied returns the occupancy of both colors combined.
func (p *Position) AllOccupied() Bitboard {
	return p.byColor[White] | p.byColor[Black]
}

// Pieces returns the occupancy bitboard for one piece type. Pieces(None)
// is the set of empty squares.
func (p *Position) Pieces(pt PieceType) Bitboard {
	return p.byType[pt]
}

// PieceTypeAt returns the type of the piece on sq, None for an empty square.
func (p *Position) PieceTypeAt(sq Square) PieceType {
	return p.squares[sq]
}

// ColorAt returns the color of the piece on sq. The square must be occupied.
func (p *Position) ColorAt(sq Square) Color {
	if p.byColor[White].IsSet(sq) {
		return White
	}
	return Black
}

// HistoryDepth returns the number of applied moves available to Unmake.
func (p *Position) HistoryDepth() int {
	return len(p.history)
}

// RankOccupancy returns the occupancy byte of one rank.
func (p *Position) RankOccupancy(rank int) Bitlane {
	return Bitlane(p.AllOccupied() >> (rank * 8))
}

// FileOccupancy returns the occupancy byte of one file, read from the
// rotated view in O(1). Bit n of the result is the square at rank n of the
// file.
func (p *Position) FileOccupancy(file int) Bitlane {
	rot := p.rotated[White] | p.rotated[Black]
	return Bitlane(rot >> (file * 8))
}

// Validate checks the cross-view invariants that must hold at every
// externally observable point. It is meant for tests and offline
// consistency checks, never for the per-move hot path.
func (p *Position) Validate() error {
	occupied := p.byColor[White] | p.byColor[Black]

	if p.byColor[White]&p.byColor[Black] != 0 {
		return fmt.Errorf("board: color bitboards overlap: %x", p.byColor[White]&p.byColor[Black])
	}
	if p.byType[None] != ^occupied {
		return fmt.Errorf("board: empty channel is not the complement of occupancy")
	}

	for sq := A1; sq <= H8; sq++ {
		var owners int
		for pt := Pawn; pt <= None; pt++ {
			if p.byType[pt].IsSet(sq) {
				owners++
				if pt != p.squares[sq] {
					return fmt.Errorf("board: square %v is %v in the type bitboards but %v in the lookup array",
						sq, pt, p.squares[sq])
				}
			}
		}
		if owners != 1 {
			return fmt.Errorf("board: square %v appears in %d type bitboards", sq, owners)
		}
	}

	for c := White; c <= Black; c++ {
		var rot Bitboard
		for b := p.byColor[c]; b != 0; {
			rot = rot.Set(b.PopLSB().Rotate())
		}
		if rot != p.rotated[c] {
			return fmt.Errorf("board: rotated view out of sync for %v", c)
		}
	}

	expected := p.base
	if len(p.history)%2 == 1 {
		expected = p.base.Other()
	}
	if p.side != expected {
		return fmt.Errorf("board: side to move %v disagrees with history depth %d", p.side, len(p.history))
	}

	return nil
}

// String renders the position for diagnostics: rank 8 first, queenside
// leftmost, uppercase for White.
func (p *Position) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			ch := p.squares[sq].Char()
			if p.squares[sq] != None && p.ColorAt(sq) == White {
				ch -= 'a' - 'A'
			}
			sb.WriteByte(ch)
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "%v to move, %d in history\n", p.side, len(p.history))
	return sb.String()
}
