package personamg_test

import (
	"sort"
	"strings"
	"testing"

	dragon "github.com/dylhunn/dragontoothmg"

	pm "persona-chess/personamg"
)

// Differential checks against an independent move generator. Any
// disagreement on move sets or node counts points at a generator bug
// on one side, and the reference has years of mileage.

var oracleFENs = []string{
	pm.FENStartPos,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
	"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
}

func sortedMoveSet(moves []string) string {
	sort.Strings(moves)
	return strings.Join(moves, " ")
}

func TestMoveSetsAgreeWithReference(t *testing.T) {
	for _, fen := range oracleFENs {
		board := mustBoard(t, fen)
		ours := moveStrings(board.GenerateMoves())

		ref := dragon.ParseFen(fen)
		var theirs []string
		for _, m := range ref.GenerateLegalMoves() {
			theirs = append(theirs, m.String())
		}

		if got, want := sortedMoveSet(ours), sortedMoveSet(theirs); got != want {
			t.Errorf("move set mismatch for %q:\n ours:   %s\n theirs: %s", fen, got, want)
		}
	}
}

func referencePerft(b *dragon.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		nodes += referencePerft(b, depth-1)
		unapply()
	}
	return nodes
}

func TestPerftAgreesWithReference(t *testing.T) {
	if testing.Short() {
		t.Skip("differential perft is slow")
	}
	for _, fen := range oracleFENs {
		board := mustBoard(t, fen)
		ref := dragon.ParseFen(fen)
		for depth := 1; depth <= 3; depth++ {
			ours := pm.Perft(board, depth)
			theirs := referencePerft(&ref, depth)
			if ours != theirs {
				t.Errorf("perft(%d) mismatch for %q: ours %d theirs %d", depth, fen, ours, theirs)
			}
		}
	}
}
