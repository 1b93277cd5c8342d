package personamg_test

import (
	"testing"

	pm "persona-chess/personamg"
)

func TestFoolsMate(t *testing.T) {
	b := pm.NewBoard()
	for _, uci := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		m := mustMove(t, b, uci)
		if ok, _ := b.MakeMove(m); !ok {
			t.Fatalf("MakeMove(%s) failed", uci)
		}
	}
	if !b.InCheck(pm.White) {
		t.Fatal("white not in check after Qh4")
	}
	if !b.InCheckmate() {
		t.Fatal("fool's mate not recognized as checkmate")
	}
	if b.InStalemate() {
		t.Fatal("checkmate reported as stalemate")
	}
	if b.HasLegalMoves() {
		t.Fatal("legal moves reported in a mated position")
	}
}

func TestBackRankMate(t *testing.T) {
	b := mustBoard(t, "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")
	if !b.InCheckmate() {
		t.Fatalf("back rank mate not recognized: %v", moveStrings(b.GenerateMoves()))
	}
}

func TestStalemate(t *testing.T) {
	b := mustBoard(t, "7k/5Q2/5K2/8/8/8/8/8 b - - 0 1")
	if b.InCheck(pm.Black) {
		t.Fatal("stalemate position reported as check")
	}
	if !b.InStalemate() {
		t.Fatalf("stalemate not recognized: %v", moveStrings(b.GenerateMoves()))
	}
	if b.InCheckmate() {
		t.Fatal("stalemate reported as checkmate")
	}
}

func TestDrawBy50(t *testing.T) {
	b := mustBoard(t, "4k3/8/8/8/8/8/8/4K3 w - - 99 80")
	if b.IsDrawBy50() {
		t.Fatal("draw claimed at 99 half moves")
	}
	m := mustMove(t, b, "e1e2")
	b.MakeMove(m)
	if !b.IsDrawBy50() {
		t.Fatal("draw not claimed at 100 half moves")
	}
}

func TestDrawByRepetition(t *testing.T) {
	b := pm.NewBoard()
	history := []uint64{b.Hash()}
	// Knights shuffle out and back twice; the start position recurs.
	for _, uci := range []string{
		"g1f3", "g8f6", "f3g1", "f6g8",
		"g1f3", "g8f6", "f3g1",
	} {
		m := mustMove(t, b, uci)
		b.MakeMove(m)
		history = append(history, b.Hash())
	}
	if b.IsDrawByRepetition(history) {
		t.Fatal("threefold claimed one ply early")
	}
	m := mustMove(t, b, "f6g8")
	b.MakeMove(m)
	history = append(history, b.Hash())
	if !b.IsDrawByRepetition(history) {
		t.Fatal("threefold repetition not detected")
	}
}
