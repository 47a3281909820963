package board

import (
	"math/rand"
	"testing"
)

// samePosition compares every view of two positions plus the side to move
// and the history depth.
func samePosition(a, b *Position) bool {
	return a.byColor == b.byColor &&
		a.rotated == b.rotated &&
		a.byType == b.byType &&
		a.squares == b.squares &&
		a.side == b.side &&
		len(a.history) == len(b.history)
}

// custom builds a position from a sparse piece listing.
func custom(t *testing.T, side Color, white map[Square]PieceType, black map[Square]PieceType) *Position {
	t.Helper()

	var types [64]PieceType
	for sq := range types {
		types[sq] = None
	}
	var whiteBB Bitboard
	for sq, pt := range white {
		types[sq] = pt
		whiteBB = whiteBB.Set(sq)
	}
	for sq, pt := range black {
		types[sq] = pt
	}

	p, err := NewCustomPosition(types, whiteBB, side)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestMakeQuietMove(t *testing.T) {
	p := NewPosition()
	p.Make(NewMove(G1, F3))

	if p.PieceTypeAt(G1) != None || p.PieceTypeAt(F3) != Knight {
		t.Error("knight did not move")
	}
	if p.SideToMove() != Black {
		t.Error("side to move did not flip")
	}
	if p.HistoryDepth() != 1 {
		t.Errorf("history depth = %d, want 1", p.HistoryDepth())
	}

	rec := p.history[0]
	if rec.Target != F3 || rec.Captured != None || rec.Promotion {
		t.Errorf("record = %+v", rec)
	}
	if err := p.Validate(); err != nil {
		t.Error(err)
	}
}

func TestMakeOrdinaryCapture(t *testing.T) {
	// A rook capture along a file resolves the target to the destination.
	p := custom(t, White,
		map[Square]PieceType{A1: Rook, E1: King},
		map[Square]PieceType{A7: Pawn, E8: King})

	p.Make(NewMove(A1, A7))

	rec := p.history[0]
	if rec.Target != A7 {
		t.Errorf("target = %v, want a7", rec.Target)
	}
	if rec.Captured != Pawn {
		t.Errorf("captured = %v, want Pawn", rec.Captured)
	}
	if p.PieceTypeAt(A7) != Rook || p.ColorAt(A7) != White {
		t.Error("rook not on a7")
	}
	if p.Occupied(Black).IsSet(A7) {
		t.Error("black occupancy still marks a7")
	}
	if err := p.Validate(); err != nil {
		t.Error(err)
	}

	p.Unmake()
	if p.PieceTypeAt(A1) != Rook || p.PieceTypeAt(A7) != Pawn || p.ColorAt(A7) != Black {
		t.Error("capture not undone")
	}
}

func TestMakeEnPassant(t *testing.T) {
	// White pawn on e5 captures the f5 pawn en passant by moving to the
	// empty f6: a pawn moving to a different file onto an empty square.
	p := custom(t, White,
		map[Square]PieceType{E5: Pawn, E1: King},
		map[Square]PieceType{F5: Pawn, E8: King})

	p.Make(NewMove(E5, F6))

	rec := p.history[0]
	if rec.Target != F5 {
		t.Errorf("target = %v, want f5 (origin rank, destination file)", rec.Target)
	}
	if rec.Captured != Pawn {
		t.Errorf("captured = %v, want Pawn", rec.Captured)
	}
	if p.PieceTypeAt(F5) != None {
		t.Error("captured pawn still on f5")
	}
	if p.PieceTypeAt(F6) != Pawn || p.ColorAt(F6) != White {
		t.Error("capturing pawn not on f6")
	}
	if err := p.Validate(); err != nil {
		t.Error(err)
	}

	p.Unmake()
	if p.PieceTypeAt(E5) != Pawn || p.PieceTypeAt(F6) != None {
		t.Error("capturing pawn not restored")
	}
	if p.PieceTypeAt(F5) != Pawn || p.ColorAt(F5) != Black {
		t.Error("captured pawn not restored on f5")
	}
}

func TestMakeBlackEnPassant(t *testing.T) {
	p := custom(t, Black,
		map[Square]PieceType{C4: Pawn, E1: King},
		map[Square]PieceType{D4: Pawn, E8: King})

	p.Make(NewMove(D4, C3))

	rec := p.history[0]
	if rec.Target != C4 {
		t.Errorf("target = %v, want c4", rec.Target)
	}
	if p.PieceTypeAt(C4) != None || p.PieceTypeAt(C3) != Pawn {
		t.Error("black en passant not applied")
	}

	p.Unmake()
	if p.PieceTypeAt(C4) != Pawn || p.ColorAt(C4) != White {
		t.Error("white pawn not restored")
	}
}

func TestPawnPushIsNotEnPassant(t *testing.T) {
	// Same file: an ordinary push, even though the destination is empty.
	p := NewPosition()
	p.Make(NewMove(E2, E4))

	rec := p.history[0]
	if rec.Target != E4 || rec.Captured != None {
		t.Errorf("record = %+v, want target e4 with no capture", rec)
	}

	p.Unmake()
	if p.PieceTypeAt(E2) != Pawn || p.PieceTypeAt(E4) != None {
		t.Error("push not undone")
	}
}

func TestPawnCaptureIsNotEnPassant(t *testing.T) {
	// Different file but occupied destination: an ordinary capture.
	p := custom(t, White,
		map[Square]PieceType{E4: Pawn, E1: King},
		map[Square]PieceType{D5: Knight, E8: King})

	p.Make(NewMove(E4, D5))

	rec := p.history[0]
	if rec.Target != D5 || rec.Captured != Knight {
		t.Errorf("record = %+v, want knight captured on d5", rec)
	}
}

func TestMakePromotion(t *testing.T) {
	p := custom(t, White,
		map[Square]PieceType{A7: Pawn, E1: King},
		map[Square]PieceType{E8: King})

	p.Make(NewPromotion(A7, A8, Queen))

	if p.PieceTypeAt(A8) != Queen || p.ColorAt(A8) != White {
		t.Error("no queen on a8")
	}
	if p.Pieces(Pawn).IsSet(A8) {
		t.Error("pawn channel still marks a8")
	}
	if err := p.Validate(); err != nil {
		t.Error(err)
	}

	p.Unmake()
	if p.PieceTypeAt(A7) != Pawn {
		t.Error("pawn not restored on undo")
	}
	if p.PieceTypeAt(A8) != None || p.Pieces(Queen).IsSet(A8) {
		t.Error("queen not removed on undo")
	}
}

func TestMakeCapturePromotion(t *testing.T) {
	p := custom(t, White,
		map[Square]PieceType{A7: Pawn, E1: King},
		map[Square]PieceType{B8: Rook, E8: King})

	p.Make(NewPromotion(A7, B8, Knight))

	rec := p.history[0]
	if rec.Target != B8 || rec.Captured != Rook || !rec.Promotion {
		t.Errorf("record = %+v", rec)
	}
	if p.PieceTypeAt(B8) != Knight || p.ColorAt(B8) != White {
		t.Error("promoted knight missing")
	}

	p.Unmake()
	if p.PieceTypeAt(A7) != Pawn || p.PieceTypeAt(B8) != Rook || p.ColorAt(B8) != Black {
		t.Error("capture promotion not undone")
	}
	if err := p.Validate(); err != nil {
		t.Error(err)
	}
}

func TestMakeUnmakeIsExactInverse(t *testing.T) {
	p := NewPosition()
	script := []Move{
		NewMove(E2, E4), NewMove(D7, D5),
		NewMove(E4, D5), NewMove(D8, D5), // captures both ways
		NewMove(B1, C3), NewMove(D5, A5),
		NewMove(G1, F3), NewMove(B8, C6),
	}

	for i, m := range script {
		before := p.Copy()
		p.Make(m)
		if err := p.Validate(); err != nil {
			t.Fatalf("move %d (%v): %v", i, m, err)
		}
		p.Unmake()
		if !samePosition(p, before) {
			t.Fatalf("move %d (%v): unmake is not an exact inverse", i, m)
		}
		p.Make(m)
	}

	for range script {
		p.Unmake()
	}
	if !samePosition(p, NewPosition()) {
		t.Error("full unwind did not restore the start")
	}
}

func TestUnmakeEmptyHistoryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Unmake on empty history did not panic")
		}
	}()
	NewPosition().Unmake()
}

// TestRandomWalkPreservesInvariants plays random assumed-legal knight moves,
// validating every intermediate position, then unwinds and checks the
// starting arrangement came back.
func TestRandomWalkPreservesInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := NewPosition()
	start := NewPosition()

	for step := 0; step < 400; step++ {
		var moves []Move
		own := p.Occupied(p.SideToMove())
		kings := p.Pieces(King)
		for b := p.Pieces(Knight) & own; b != 0; {
			from := b.PopLSB()
			for targets := KnightMoves(from) &^ own &^ kings; targets != 0; {
				moves = append(moves, NewMove(from, targets.PopLSB()))
			}
		}
		if len(moves) == 0 {
			break
		}

		if rng.Intn(3) == 0 && p.HistoryDepth() > 0 {
			p.Unmake()
		} else {
			p.Make(moves[rng.Intn(len(moves))])
		}
		if err := p.Validate(); err != nil {
			t.Fatalf("step %d: %v", step, err)
		}
	}

	for p.HistoryDepth() > 0 {
		p.Unmake()
	}
	for sq := A1; sq <= H8; sq++ {
		if p.PieceTypeAt(sq) != start.PieceTypeAt(sq) {
			t.Fatalf("square %v: %v, want %v after unwind", sq, p.PieceTypeAt(sq), start.PieceTypeAt(sq))
		}
	}
	if p.SideToMove() != White {
		t.Error("side to move not restored after unwind")
	}
}
