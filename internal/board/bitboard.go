package board

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit occupancy set over all squares. Bit n (least
// significant first) marks square n.
type Bitboard uint64

// Bitlane is an 8-bit occupancy set over one rank (standard orientation) or
// one file (rotated orientation). Bit n marks the n-th square along the lane
// counting from the queenside/white edge.
type Bitlane uint8

// File masks.
const (
	FileA Bitboard = 0x0101010101010101
	FileH Bitboard = FileA << 7

	NotFileA  Bitboard = ^FileA
	NotFileH  Bitboard = ^FileH
	NotFileAB Bitboard = ^(FileA | FileA<<1)
	NotFileGH Bitboard = ^(FileH | FileH>>1)
)

const (
	EmptyBB  Bitboard = 0
	Universe Bitboard = 0xFFFFFFFFFFFFFFFF

	FullLane Bitlane = 0xFF
)

// SquareBB returns a singleton bitboard with only the given square marked.
// No bounds check; the caller guarantees sq < 64.
func SquareBB(sq Square) Bitboard {
	return 1 << sq
}

// LaneBB returns a singleton bitlane with only the i-th square of the lane
// marked. No bounds check; the caller guarantees i < 8.
func LaneBB(i int) Bitlane {
	return 1 << i
}

// Set marks the given square.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | 1<<sq
}

// Clear unmarks the given square.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ (1 << sq)
}

// IsSet reports whether the given square is marked.
func (b Bitboard) IsSet(sq Square) bool {
	return b&(1<<sq) != 0
}

// PopCount returns the number of marked squares.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the lowest marked square, or NoSquare for the empty board.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB removes and returns the lowest marked square.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// IsSet reports whether the i-th square of the lane is marked.
func (l Bitlane) IsSet(i int) bool {
	return l&(1<<i) != 0
}

// PopCount returns the number of marked squares in the lane.
func (l Bitlane) PopCount() int {
	return bits.OnesCount8(uint8(l))
}

// String renders the bitboard for diagnostics: rank 8 first, each rank
// queenside to kingside.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if b.IsSet(NewSquare(file, rank)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
