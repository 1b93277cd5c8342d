package personamg

import "math/rand"

// Zobrist key material: one number per (color, piece type, square),
// per castling-rights mask, per en-passant file, and one for the side
// to move being Black.
var (
	zobristPiece  [2][7][64]uint64
	zobristCastle [16]uint64
	zobristEP     [8]uint64
	zobristSide   uint64
)

func init() {
	// Fixed seed so hashes are stable across runs and tests.
	rnd := rand.New(rand.NewSource(0x5EED1E55))
	for c := 0; c < 2; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][pt][sq] = rnd.Uint64()
			}
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rnd.Uint64()
	}
	for i := range zobristEP {
		zobristEP[i] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// ComputeZobrist rebuilds the position key from scratch. MakeMove keeps
// the key incrementally; this is the reference for validation.
func (b *Board) ComputeZobrist() uint64 {
	var key uint64
	for sq := Square(0); sq < 64; sq++ {
		if p := b.squares[sq]; p != NoPiece {
			key ^= zobristPiece[p.Color()][p.Type()][sq]
		}
	}
	if b.stm == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[b.castling]
	if b.epSquare != NoSquare {
		key ^= zobristEP[b.epSquare.File()]
	}
	return key
}
