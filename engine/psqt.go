package engine

import pm "persona-chess/personamg"

// =============================================================================
// PIECE-SQUARE TABLES
// =============================================================================
// Tables are written in visual order, eighth rank first, so the
// literals read like a board from White's side. psqIndex flips a
// square into that orientation. The non-pawn tables are symmetric
// about the horizontal midline and serve both colors unchanged; the
// pawn table is White's and Black reads it through the mirror.

// psqIndex maps an a1-based square to its visual-order table slot.
func psqIndex(sq pm.Square) int { return int(sq) ^ 56 }

var knightTable = [64]float64{
	1, 1, 1, 1, 1, 1, 1, 1,
	1, 2, 2, 2, 2, 2, 2, 1,
	1, 2, 3, 3, 3, 3, 2, 1,
	1, 2, 3, 4, 4, 3, 2, 1,
	1, 2, 3, 4, 4, 3, 2, 1,
	1, 2, 3, 3, 3, 3, 2, 1,
	1, 2, 2, 2, 2, 2, 2, 1,
	1, 1, 1, 1, 1, 1, 1, 1,
}

var bishopTable = [64]float64{
	4, 3, 2, 1, 1, 2, 3, 4,
	3, 4, 3, 2, 2, 3, 4, 3,
	2, 3, 4, 3, 3, 4, 3, 2,
	1, 2, 3, 4, 4, 3, 2, 1,
	1, 2, 3, 4, 4, 3, 2, 1,
	2, 3, 4, 3, 3, 4, 3, 2,
	3, 4, 3, 2, 2, 3, 4, 3,
	4, 3, 2, 1, 1, 2, 3, 4,
}

var rookTable = [64]float64{
	4, 3, 4, 4, 4, 4, 3, 4,
	4, 4, 4, 4, 4, 4, 4, 4,
	1, 1, 2, 3, 3, 2, 1, 1,
	1, 2, 3, 4, 4, 3, 2, 1,
	1, 2, 3, 4, 4, 3, 2, 1,
	1, 1, 2, 2, 2, 2, 1, 1,
	4, 4, 4, 4, 4, 4, 4, 4,
	4, 3, 2, 1, 1, 2, 3, 4,
}

var queenTable = [64]float64{
	1, 1, 1, 3, 1, 1, 1, 1,
	1, 2, 3, 3, 3, 1, 1, 1,
	1, 4, 3, 3, 3, 4, 2, 1,
	1, 2, 3, 3, 3, 2, 2, 1,
	1, 2, 3, 3, 3, 2, 2, 1,
	1, 4, 3, 3, 3, 4, 2, 1,
	1, 1, 2, 3, 3, 1, 1, 1,
	1, 1, 1, 3, 1, 1, 1, 1,
}

var pawnTable = [64]float64{
	8, 8, 8, 8, 8, 8, 8, 8,
	8, 8, 8, 8, 8, 8, 8, 8,
	5, 6, 6, 7, 7, 6, 6, 5,
	2, 3, 3, 5, 5, 3, 3, 2,
	1, 2, 3, 4, 4, 3, 2, 1,
	1, 1, 2, 3, 3, 2, 1, 1,
	1, 1, 1, 0, 0, 1, 1, 1,
	0, 0, 0, 0, 0, 0, 0, 0,
}

// pieceSquare returns the positional table value for p standing on sq.
// Kings score zero here, their placement is the king safety term's
// business.
func pieceSquare(p pm.Piece, sq pm.Square) float64 {
	switch p.Type() {
	case pm.Pawn:
		if p.Color() == pm.White {
			return pawnTable[psqIndex(sq)]
		}
		return pawnTable[sq]
	case pm.Knight:
		return knightTable[psqIndex(sq)]
	case pm.Bishop:
		return bishopTable[psqIndex(sq)]
	case pm.Rook:
		return rookTable[psqIndex(sq)]
	case pm.Queen:
		return queenTable[psqIndex(sq)]
	}
	return 0
}

// =============================================================================
// KING SAFETY
// =============================================================================
// A castled king behind its wing scores well, a king stuck in the
// center or wandering up the board scores badly. Built from per-file
// and per-rank components at init; written for White, Black reads it
// mirrored.

var kingSafetyTable [64]float64

var kingFileSafety = [8]float64{0.6, 0.6, 0.6, -0.8, -0.8, 0.7, 0.7, 0.7}

// Indexed by the king's own-relative rank, home rank first.
var kingRankSafety = [8]float64{0.2, 0, -0.2, -0.4, -0.6, -0.8, -1.0, -1.2}

func init() {
	for sq := 0; sq < 64; sq++ {
		kingSafetyTable[sq] = kingFileSafety[sq&7] + kingRankSafety[sq>>3]
	}
}

// kingSafety scores c's king placement on b.
func kingSafety(b *pm.Board, c pm.Color) float64 {
	ks := b.KingSquare(c)
	if ks == pm.NoSquare {
		return 0
	}
	if c == pm.Black {
		ks ^= 56
	}
	return kingSafetyTable[ks]
}
