package board

// Precomputed move tables. Built once at package init from board geometry
// alone, immutable afterwards, and safe to read from any goroutine.
var (
	knightMoves [64]Bitboard

	// laneMoves[o][occ] is the set of squares reachable along one 8-square
	// lane from position o within the lane, given the lane occupancy byte
	// occ. Rays stop at and include the first occupied square in each
	// direction. A lane is a rank in the standard orientation or a file in
	// the rotated one, so this single table serves both rook directions.
	laneMoves [8][256]Bitlane

	// epTarget[c][to] is the square holding the pawn removed when a pawn of
	// color c captures en passant onto the empty square to: one rank behind
	// the destination from the mover's perspective.
	epTarget [2][64]Square
)

func init() {
	initKnightMoves()
	initLaneMoves()
	initEPTargets()
}

func initKnightMoves() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)

		attacks := EmptyBB

		// Two ranks, one file.
		attacks |= (bb << 17) & NotFileA
		attacks |= (bb << 15) & NotFileH
		attacks |= (bb >> 17) & NotFileH
		attacks |= (bb >> 15) & NotFileA

		// One rank, two files.
		attacks |= (bb << 10) & NotFileAB
		attacks |= (bb << 6) & NotFileGH
		attacks |= (bb >> 10) & NotFileGH
		attacks |= (bb >> 6) & NotFileAB

		knightMoves[sq] = attacks
	}
}

func initLaneMoves() {
	for origin := 0; origin < 8; origin++ {
		for occ := 0; occ < 256; occ++ {
			var moves Bitlane
			for i := origin - 1; i >= 0; i-- {
				moves |= LaneBB(i)
				if Bitlane(occ).IsSet(i) {
					break
				}
			}
			for i := origin + 1; i < 8; i++ {
				moves |= LaneBB(i)
				if Bitlane(occ).IsSet(i) {
					break
				}
			}
			laneMoves[origin][occ] = moves
		}
	}
}

func initEPTargets() {
	for sq := A1; sq <= H8; sq++ {
		epTarget[White][sq] = NoSquare
		epTarget[Black][sq] = NoSquare
		if sq.Rank() > 0 {
			epTarget[White][sq] = sq - 8
		}
		if sq.Rank() < 7 {
			epTarget[Black][sq] = sq + 8
		}
	}
}

// KnightMoves returns the squares reachable by one knight move from sq.
func KnightMoves(sq Square) Bitboard {
	return knightMoves[sq]
}

// LaneMoves returns the squares reachable along one lane from position
// origin within the lane, given the lane occupancy. Rays stop at and
// include the first occupied square in each direction. The result still
// contains blockers of either color; callers mask out their own pieces.
func LaneMoves(origin int, occ Bitlane) Bitlane {
	return laneMoves[origin][occ]
}
