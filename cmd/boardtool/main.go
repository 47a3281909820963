// Command boardtool is a workbench for the board core: it dumps the
// precomputed tables, renders SVG diagrams, runs a parallel make/unmake
// consistency check, and manages stored position snapshots.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/duncpro/simple-chess-computer/internal/board"
	"github.com/duncpro/simple-chess-computer/internal/diagram"
	"github.com/duncpro/simple-chess-computer/internal/storage"
)

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
	}

	var err error
	switch os.Args[1] {
	case "knight":
		err = cmdKnight(os.Args[2:])
	case "diagram":
		err = cmdDiagram(os.Args[2:])
	case "stress":
		err = cmdStress(os.Args[2:])
	case "save":
		err = cmdSave(os.Args[2:])
	case "show":
		err = cmdShow(os.Args[2:])
	case "list":
		err = cmdList()
	default:
		usage()
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: boardtool <command> [flags]

commands:
  knight [square]     print the knight move table entry (default d4)
  diagram [flags]     render an SVG diagram
  stress [flags]      run a parallel make/unmake consistency check
  save <name>         store the starting position as a named snapshot
  show <name>         print a stored snapshot
  list                list stored snapshots`)
	os.Exit(2)
}

func cmdKnight(args []string) error {
	name := "d4"
	if len(args) > 0 {
		name = args[0]
	}
	sq, err := board.ParseSquare(name)
	if err != nil {
		return err
	}
	fmt.Print(board.KnightMoves(sq))
	return nil
}

func cmdDiagram(args []string) error {
	fs := flag.NewFlagSet("diagram", flag.ExitOnError)
	out := fs.String("out", "board.svg", "output file")
	knight := fs.String("knight", "", "render the knight table entry for this square instead of the starting position")
	fs.Parse(args)

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer f.Close()

	if *knight != "" {
		sq, err := board.ParseSquare(*knight)
		if err != nil {
			return err
		}
		diagram.WriteBitboard(f, board.KnightMoves(sq))
	} else {
		diagram.WritePosition(f, board.NewPosition())
	}

	log.Printf("wrote %s", *out)
	return nil
}

func cmdStress(args []string) error {
	fs := flag.NewFlagSet("stress", flag.ExitOnError)
	steps := fs.Int("n", 100_000, "steps per worker")
	workers := fs.Int("workers", 4, "worker count")
	seed := fs.Int64("seed", time.Now().UnixNano(), "random seed")
	fs.Parse(args)

	board.DebugChecks = true

	start := time.Now()
	g, ctx := errgroup.WithContext(context.Background())
	for w := 0; w < *workers; w++ {
		g.Go(func() error {
			return stressWorker(ctx, *seed+int64(w), *steps)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.Printf("stress ok: %d workers x %d steps in %v", *workers, *steps, time.Since(start))
	return nil
}

// stressWorker plays random assumed-legal knight and rook moves against its
// own position, validating the cross-view invariants after every step, then
// unwinds the whole history and checks the starting arrangement came back.
// Each worker owns its position outright; the precomputed tables are the
// only shared state.
func stressWorker(ctx context.Context, seed int64, steps int) error {
	rng := rand.New(rand.NewSource(seed))
	p := board.NewPosition()
	baseline := storage.Take(p)

	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if rng.Intn(4) == 0 && p.HistoryDepth() > 0 {
			p.Unmake()
		} else {
			moves := pseudoMoves(p)
			if len(moves) == 0 {
				for p.HistoryDepth() > 0 {
					p.Unmake()
				}
				continue
			}
			p.Make(moves[rng.Intn(len(moves))])
		}

		if err := p.Validate(); err != nil {
			return fmt.Errorf("seed %d step %d: %w", seed, i, err)
		}
	}

	for p.HistoryDepth() > 0 {
		p.Unmake()
	}
	if err := sameArrangement(baseline, p); err != nil {
		return fmt.Errorf("seed %d: unwind did not restore the start: %w", seed, err)
	}
	return nil
}

// pseudoMoves generates the assumed-legal moves the stress check plays:
// knight and rook moves of the side to move onto squares not holding a
// friendly piece or a king. Legality beyond that (checks, pins) is
// irrelevant here; the core accepts any move of this shape.
func pseudoMoves(p *board.Position) []board.Move {
	us := p.SideToMove()
	own := p.Occupied(us)
	kings := p.Pieces(board.King)

	var moves []board.Move
	for b := p.Pieces(board.Knight) & own; b != 0; {
		from := b.PopLSB()
		for t := board.KnightMoves(from) &^ own &^ kings; t != 0; {
			moves = append(moves, board.NewMove(from, t.PopLSB()))
		}
	}
	for b := p.Pieces(board.Rook) & own; b != 0; {
		from := b.PopLSB()
		for t := rookMoves(p, from) &^ own &^ kings; t != 0; {
			moves = append(moves, board.NewMove(from, t.PopLSB()))
		}
	}
	return moves
}

// rookMoves assembles the rank ray and the file ray from the single-lane
// table. The rank lane comes from the standard occupancy, the file lane from
// the rotated view, both in O(1).
func rookMoves(p *board.Position, from board.Square) board.Bitboard {
	file, rank := from.File(), from.Rank()
	var out board.Bitboard

	rankLane := board.LaneMoves(file, p.RankOccupancy(rank))
	fileLane := board.LaneMoves(rank, p.FileOccupancy(file))
	for i := 0; i < 8; i++ {
		if rankLane.IsSet(i) {
			out = out.Set(board.NewSquare(i, rank))
		}
		if fileLane.IsSet(i) {
			out = out.Set(board.NewSquare(file, i))
		}
	}
	return out
}

func sameArrangement(want *storage.Snapshot, p *board.Position) error {
	got := storage.Take(p)
	if got.White != want.White {
		return fmt.Errorf("white occupancy %x, want %x", got.White, want.White)
	}
	if got.Side != want.Side {
		return fmt.Errorf("side to move %d, want %d", got.Side, want.Side)
	}
	if got.Squares != want.Squares {
		return fmt.Errorf("square arrangement differs")
	}
	return nil
}

func cmdSave(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: boardtool save <name>")
	}

	store, err := storage.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(args[0], board.NewPosition()); err != nil {
		return err
	}
	log.Printf("saved %q", args[0])
	return nil
}

func cmdShow(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: boardtool show <name>")
	}

	store, err := storage.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	p, err := store.Load(args[0])
	if err != nil {
		return err
	}
	fmt.Print(p)
	return nil
}

func cmdList() error {
	store, err := storage.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	names, err := store.List()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
