package board

// captureTarget resolves the square whose occupant is removed by a move: the
// destination, unless the move is recognized as en passant, in which case
// the square one rank behind the destination from the mover's perspective
// (the destination's file at the origin's rank).
//
// A move is recognized as en passant when the moving piece is a pawn, the
// origin and destination are on different files, and the destination is
// currently empty. Nothing beyond that is checked: the caller has already
// validated legality, so the resolver only disambiguates which square to
// clear. The result for an illegal move is unspecified.
func captureTarget(from, to Square, moved, destOccupant PieceType, mover Color) Square {
	if moved == Pawn && from.File() != to.File() && destOccupant == None {
		return epTarget[mover][to]
	}
	return to
}
