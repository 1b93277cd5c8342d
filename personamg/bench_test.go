package personamg_test

import (
	"testing"

	pm "persona-chess/personamg"
)

func benchGenerateMoves(b *testing.B, fen string) {
	board, err := pm.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	buf := make([]pm.Move, 0, 256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = board.GenerateMovesInto(buf)
		buf = buf[:0]
	}
}

func BenchmarkGenerateMoves_Initial(b *testing.B) {
	benchGenerateMoves(b, pm.FENStartPos)
}

func BenchmarkGenerateMoves_Kiwipete(b *testing.B) {
	benchGenerateMoves(b, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
}

func benchPerft(b *testing.B, fen string, depth int) {
	board, err := pm.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pm.Perft(board, depth)
	}
}

func BenchmarkPerft3_Initial(b *testing.B) {
	benchPerft(b, pm.FENStartPos, 3)
}

func BenchmarkPerft2_Kiwipete(b *testing.B) {
	benchPerft(b, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2)
}

func BenchmarkMakeUnmake(b *testing.B) {
	board := pm.NewBoard()
	moves := board.GenerateMoves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := moves[i%len(moves)]
		_, st := board.MakeMove(m)
		board.UnmakeMove(m, st)
	}
}
