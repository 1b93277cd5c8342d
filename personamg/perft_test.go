package personamg_test

import (
	"testing"

	pm "persona-chess/personamg"
)

// Classical perft positions with their published node counts.
var perftCases = []struct {
	name  string
	fen   string
	nodes []uint64 // nodes[i] is perft(i+1)
}{
	{
		name:  "initial",
		fen:   pm.FENStartPos,
		nodes: []uint64{20, 400, 8902, 197281},
	},
	{
		name:  "kiwipete",
		fen:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		nodes: []uint64{48, 2039, 97862},
	},
	{
		name:  "position3",
		fen:   "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		nodes: []uint64{14, 191, 2812, 43238},
	},
	{
		name:  "position4",
		fen:   "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		nodes: []uint64{6, 264, 9467},
	},
	{
		name:  "position5",
		fen:   "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		nodes: []uint64{44, 1486, 62379},
	},
}

func TestPerft(t *testing.T) {
	for _, tc := range perftCases {
		t.Run(tc.name, func(t *testing.T) {
			board, err := pm.ParseFEN(tc.fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q): %v", tc.fen, err)
			}
			for d, want := range tc.nodes {
				if got := pm.Perft(board, d+1); got != want {
					t.Fatalf("perft depth %d: got %d want %d", d+1, got, want)
				}
			}
			// The board must come back untouched.
			if board.ToFEN() != tc.fen {
				t.Errorf("board mutated by perft: got %q want %q", board.ToFEN(), tc.fen)
			}
		})
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	board, err := pm.ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	const depth = 3
	div := pm.PerftDivide(board, depth)
	if len(div) != 48 {
		t.Fatalf("divide root moves: got %d want 48", len(div))
	}
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if want := pm.Perft(board, depth); sum != want {
		t.Fatalf("divide sum %d != perft %d", sum, want)
	}
}
