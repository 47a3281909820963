package board

import "log"

// DebugChecks enables contract verification on the hot paths: move
// constructor arguments, Make preconditions, and post-move view consistency.
// Release callers leave it off; the move generator and legality checker are
// responsible for never presenting malformed input.
var DebugChecks = false

// Make applies an assumed-legal move, mutating all five views of the board
// in lock-step and pushing a reversible-move record. No legality validation
// is performed; feeding an illegal move leaves the position in an
// unspecified state.
func (p *Position) Make(m Move) {
	from, to, promo := m.From(), m.To(), m.Promotion()
	us := p.side
	them := us.Other()
	moved := p.squares[from]

	if DebugChecks {
		checkMoveContract(from, to, promo)
		if moved == None {
			log.Panicf("board: Make %v: no piece on %v", m, from)
		}
		if !p.byColor[us].IsSet(from) {
			log.Panicf("board: Make %v: %v piece on %v with %v to move", m, p.ColorAt(from), from, us)
		}
	}

	// The target may differ from the destination only for en passant. Its
	// occupant is recorded before any view is touched.
	target := captureTarget(from, to, moved, p.squares[to], us)
	captured := p.squares[target]
	p.history = append(p.history, Record{
		From:      from,
		To:        to,
		Target:    target,
		Captured:  captured,
		Promotion: promo != None,
	})

	// Vacate the origin.
	p.squares[from] = None
	p.byColor[us] = p.byColor[us].Clear(from)
	p.byType[moved] = p.byType[moved].Clear(from)
	p.byType[None] = p.byType[None].Set(from)
	p.rotated[us] = p.rotated[us].Clear(from.Rotate())

	// Remove the target square's occupant. All clears happen before the
	// destination is populated so that a capture onto the destination does
	// not reintroduce stale bits.
	p.squares[target] = None
	p.byColor[them] = p.byColor[them].Clear(target)
	p.byType[captured] = p.byType[captured].Clear(target)
	p.byType[None] = p.byType[None].Set(target)
	p.rotated[them] = p.rotated[them].Clear(target.Rotate())

	// Populate the destination with the moved piece, or the promotion piece
	// for promotions.
	resulting := moved
	if promo != None {
		resulting = promo
	}
	p.squares[to] = resulting
	p.byColor[us] = p.byColor[us].Set(to)
	p.byType[resulting] = p.byType[resulting].Set(to)
	p.byType[None] = p.byType[None].Clear(to)
	p.rotated[us] = p.rotated[us].Set(to.Rotate())

	p.side = them

	if DebugChecks {
		if err := p.Validate(); err != nil {
			log.Panicf("board: Make %v: %v", m, err)
		}
	}
}

// Unmake reverses the most recently applied move, restoring every view, the
// side to move, and the history depth exactly. Unmaking with an empty
// history is a contract violation and panics.
func (p *Position) Unmake() {
	rec := p.history[len(p.history)-1]
	mover := p.side.Other()
	them := p.side

	// The piece standing on the destination is the post-move type; the
	// pre-move type differs only for promotions, which restore a pawn.
	post := p.squares[rec.To]
	pre := post
	if rec.Promotion {
		pre = Pawn
	}

	// Remove the piece from the destination.
	p.squares[rec.To] = None
	p.byColor[mover] = p.byColor[mover].Clear(rec.To)
	p.byType[post] = p.byType[post].Clear(rec.To)
	p.byType[None] = p.byType[None].Set(rec.To)
	p.rotated[mover] = p.rotated[mover].Clear(rec.To.Rotate())

	// Restore the captured piece, if any. Guarded: unconditionally writing
	// the None channel here would corrupt an empty target square.
	if rec.Captured != None {
		p.squares[rec.Target] = rec.Captured
		p.byColor[them] = p.byColor[them].Set(rec.Target)
		p.byType[rec.Captured] = p.byType[rec.Captured].Set(rec.Target)
		p.byType[None] = p.byType[None].Clear(rec.Target)
		p.rotated[them] = p.rotated[them].Set(rec.Target.Rotate())
	}

	// Restore the pre-move piece at the origin.
	p.squares[rec.From] = pre
	p.byColor[mover] = p.byColor[mover].Set(rec.From)
	p.byType[pre] = p.byType[pre].Set(rec.From)
	p.byType[None] = p.byType[None].Clear(rec.From)
	p.rotated[mover] = p.rotated[mover].Set(rec.From.Rotate())

	p.history = p.history[:len(p.history)-1]
	p.side = mover

	if DebugChecks {
		if err := p.Validate(); err != nil {
			log.Panicf("board: Unmake %v%v: %v", rec.From, rec.To, err)
		}
	}
}
