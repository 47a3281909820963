// Package diagram renders bitboards and positions as SVG diagrams for
// diagnostics. It reads the board state through the core's accessors only
// and never mutates it.
package diagram

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/duncpro/simple-chess-computer/internal/board"
)

const (
	cell   = 48
	margin = 24
	size   = margin*2 + cell*8
)

const (
	lightFill = "fill:#eeeed2"
	darkFill  = "fill:#769656"
	markFill  = "fill:#d08050;fill-opacity:0.85"
	textStyle = "font-family:monospace;font-size:28px;text-anchor:middle;dominant-baseline:central"
	edgeStyle = "font-family:monospace;font-size:14px;text-anchor:middle;fill:#555"
)

// WriteBitboard renders the bitboard as an 8x8 diagram with the marked
// squares highlighted. Rank 8 is drawn at the top, the queenside file at the
// left, matching the text renderers.
func WriteBitboard(w io.Writer, b board.Bitboard) {
	canvas := svg.New(w)
	canvas.Start(size, size)
	drawGrid(canvas)

	for sq := board.A1; sq <= board.H8; sq++ {
		if !b.IsSet(sq) {
			continue
		}
		x, y := cellOrigin(sq)
		canvas.Rect(x, y, cell, cell, markFill)
	}

	canvas.End()
}

// WritePosition renders the position with piece letters, uppercase for
// White.
func WritePosition(w io.Writer, p *board.Position) {
	canvas := svg.New(w)
	canvas.Start(size, size)
	drawGrid(canvas)

	for sq := board.A1; sq <= board.H8; sq++ {
		pt := p.PieceTypeAt(sq)
		if pt == board.None {
			continue
		}
		ch := pt.Char()
		if p.ColorAt(sq) == board.White {
			ch -= 'a' - 'A'
		}
		x, y := cellOrigin(sq)
		canvas.Text(x+cell/2, y+cell/2, string(ch), textStyle)
	}

	canvas.End()
}

func drawGrid(canvas *svg.SVG) {
	for sq := board.A1; sq <= board.H8; sq++ {
		x, y := cellOrigin(sq)
		fill := lightFill
		if (sq.File()+sq.Rank())%2 == 0 {
			fill = darkFill
		}
		canvas.Rect(x, y, cell, cell, fill)
	}
	for file := 0; file < 8; file++ {
		canvas.Text(margin+file*cell+cell/2, size-margin/3, string(rune('a'+file)), edgeStyle)
	}
	for rank := 0; rank < 8; rank++ {
		_, y := cellOrigin(board.NewSquare(0, rank))
		canvas.Text(margin/2, y+cell/2, string(rune('1'+rank)), edgeStyle)
	}
}

// cellOrigin maps a square to the top-left pixel of its cell. Rank 8 sits at
// the top of the diagram.
func cellOrigin(sq board.Square) (int, int) {
	x := margin + sq.File()*cell
	y := margin + (7-sq.Rank())*cell
	return x, y
}
