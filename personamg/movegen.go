package personamg

import "math/bits"

// maxMoves bounds the number of legal moves in any chess position.
const maxMoves = 256

// Ray directions. The first four run toward higher square indices, the
// last four toward lower ones; blocker scans pick the bit scan
// direction from that split.
const (
	dirN = iota
	dirE
	dirNE
	dirNW
	dirS
	dirW
	dirSE
	dirSW
)

var (
	knightAttacks [64]uint64
	kingAttacks   [64]uint64
	// pawnCaptures[c][sq] holds the squares a pawn of color c attacks
	// from sq. Indexed by the defender's opposite for reverse queries.
	pawnCaptures [2][64]uint64
	// rayTable[d][sq] is the full ray from sq in direction d, origin
	// excluded.
	rayTable [8][64]uint64
)

var rookDirs = [4]int{dirN, dirE, dirS, dirW}
var bishopDirs = [4]int{dirNE, dirNW, dirSE, dirSW}

func init() {
	leaperOffsets := map[*[64]uint64][][2]int{
		&knightAttacks: {{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}},
		&kingAttacks:   {{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}},
	}
	for table, offsets := range leaperOffsets {
		for sq := 0; sq < 64; sq++ {
			f, r := sq&7, sq>>3
			for _, off := range offsets {
				ff, rr := f+off[1], r+off[0]
				if ff >= 0 && ff < 8 && rr >= 0 && rr < 8 {
					table[sq] |= bb(SquareAt(ff, rr))
				}
			}
		}
	}

	for sq := 0; sq < 64; sq++ {
		f, r := sq&7, sq>>3
		for _, df := range [2]int{-1, 1} {
			if f+df < 0 || f+df > 7 {
				continue
			}
			if r < 7 {
				pawnCaptures[White][sq] |= bb(SquareAt(f+df, r+1))
			}
			if r > 0 {
				pawnCaptures[Black][sq] |= bb(SquareAt(f+df, r-1))
			}
		}
	}

	dirSteps := [8][2]int{
		dirN:  {0, 1},
		dirE:  {1, 0},
		dirNE: {1, 1},
		dirNW: {-1, 1},
		dirS:  {0, -1},
		dirW:  {-1, 0},
		dirSE: {1, -1},
		dirSW: {-1, -1},
	}
	for d, step := range dirSteps {
		for sq := 0; sq < 64; sq++ {
			f, r := sq&7+step[0], sq>>3+step[1]
			for f >= 0 && f < 8 && r >= 0 && r < 8 {
				rayTable[d][sq] |= bb(SquareAt(f, r))
				f += step[0]
				r += step[1]
			}
		}
	}
}

// slidingAttacks walks the four given rays from sq, truncating each at
// its first blocker (the blocker square stays included, so captures of
// the blocking piece are generated).
func slidingAttacks(sq int, occ uint64, dirs [4]int) uint64 {
	var att uint64
	for _, d := range dirs {
		ray := rayTable[d][sq]
		if blockers := ray & occ; blockers != 0 {
			var first int
			if d < dirS {
				first = bits.TrailingZeros64(blockers)
			} else {
				first = 63 - bits.LeadingZeros64(blockers)
			}
			ray &^= rayTable[d][first]
		}
		att |= ray
	}
	return att
}

func rookAttacks(sq int, occ uint64) uint64 { return slidingAttacks(sq, occ, rookDirs) }

func bishopAttacks(sq int, occ uint64) uint64 { return slidingAttacks(sq, occ, bishopDirs) }

// attacksFrom returns the squares a piece of the given type and color
// attacks from sq under the given occupancy. Pawn pushes are not
// attacks and are excluded.
func attacksFrom(pt PieceType, c Color, sq int, occ uint64) uint64 {
	switch pt {
	case Pawn:
		return pawnCaptures[c][sq]
	case Knight:
		return knightAttacks[sq]
	case Bishop:
		return bishopAttacks(sq, occ)
	case Rook:
		return rookAttacks(sq, occ)
	case Queen:
		return rookAttacks(sq, occ) | bishopAttacks(sq, occ)
	case King:
		return kingAttacks[sq]
	}
	return 0
}

// IsSquareAttacked reports whether any piece of color by attacks sq.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	s := int(sq)
	occ := b.Occupied()
	if pawnCaptures[by.Other()][s]&b.PieceBB(by, Pawn) != 0 {
		return true
	}
	if knightAttacks[s]&b.PieceBB(by, Knight) != 0 {
		return true
	}
	if kingAttacks[s]&b.PieceBB(by, King) != 0 {
		return true
	}
	if rookAttacks(s, occ)&(b.PieceBB(by, Rook)|b.PieceBB(by, Queen)) != 0 {
		return true
	}
	return bishopAttacks(s, occ)&(b.PieceBB(by, Bishop)|b.PieceBB(by, Queen)) != 0
}

// InCheck reports whether c's king is currently attacked.
func (b *Board) InCheck(c Color) bool {
	ks := b.KingSquare(c)
	if ks == NoSquare {
		return false
	}
	return b.IsSquareAttacked(ks, c.Other())
}

// AttackCount counts (attacker, target) pairs where a piece of color
// by attacks an enemy-occupied square. Multiple attackers of one
// target all count; it is a cheap aggression measure for evaluation.
func (b *Board) AttackCount(by Color) int {
	occ := b.Occupied()
	enemy := b.byColor[by.Other()]
	total := 0
	for own := b.byColor[by]; own != 0; {
		sq := popLSB(&own)
		total += bits.OnesCount64(attacksFrom(b.squares[sq].Type(), by, sq, occ) & enemy)
	}
	return total
}

// promotionChoices lists promotion targets in the order they are
// emitted: queen first, knight last.
var promotionChoices = [4]PieceType{Queen, Rook, Bishop, Knight}

// generatePseudo appends every pseudo-legal move for the side to move:
// piece rules, blockers, en-passant target and castling preconditions
// (including the attack checks on the king's path) are honored, but a
// move may still leave the mover's king in check. Iteration order is
// fixed: pawns, knights, bishops, rooks, queens, king, castling last,
// each piece group in ascending square order.
func (b *Board) generatePseudo(moves []Move) []Move {
	us := b.stm
	them := us.Other()
	own := b.byColor[us]
	enemy := b.byColor[them]
	occ := own | enemy

	push := 8
	homeRank, lastRank := 1, 7
	if us == Black {
		push = -8
		homeRank, lastRank = 6, 0
	}

	appendPawnMove := func(from, to Square, captured Piece, tag MoveTag) {
		moved := b.squares[from]
		if to.Rank() == lastRank {
			for _, pt := range promotionChoices {
				moves = append(moves, NewMove(from, to, moved, captured, MakePiece(us, pt), TagNone))
			}
			return
		}
		moves = append(moves, NewMove(from, to, moved, captured, NoPiece, tag))
	}

	for pawns := b.PieceBB(us, Pawn); pawns != 0; {
		from := Square(popLSB(&pawns))
		one := from + Square(push)
		if occ&bb(one) == 0 {
			appendPawnMove(from, one, NoPiece, TagNone)
			if from.Rank() == homeRank {
				if two := one + Square(push); occ&bb(two) == 0 {
					appendPawnMove(from, two, NoPiece, TagDoublePush)
				}
			}
		}
		for caps := pawnCaptures[us][from] & enemy; caps != 0; {
			to := Square(popLSB(&caps))
			appendPawnMove(from, to, b.squares[to], TagNone)
		}
		if b.epSquare != NoSquare && pawnCaptures[us][from]&bb(b.epSquare) != 0 {
			moves = append(moves, NewMove(from, b.epSquare, b.squares[from],
				MakePiece(them, Pawn), NoPiece, TagEnPassant))
		}
	}

	appendLeaps := func(from Square, targets uint64) {
		moved := b.squares[from]
		for t := targets &^ own; t != 0; {
			to := Square(popLSB(&t))
			moves = append(moves, NewMove(from, to, moved, b.squares[to], NoPiece, TagNone))
		}
	}

	for pieces := b.PieceBB(us, Knight); pieces != 0; {
		from := Square(popLSB(&pieces))
		appendLeaps(from, knightAttacks[from])
	}
	for pieces := b.PieceBB(us, Bishop); pieces != 0; {
		from := Square(popLSB(&pieces))
		appendLeaps(from, bishopAttacks(int(from), occ))
	}
	for pieces := b.PieceBB(us, Rook); pieces != 0; {
		from := Square(popLSB(&pieces))
		appendLeaps(from, rookAttacks(int(from), occ))
	}
	for pieces := b.PieceBB(us, Queen); pieces != 0; {
		from := Square(popLSB(&pieces))
		appendLeaps(from, rookAttacks(int(from), occ)|bishopAttacks(int(from), occ))
	}

	ks := b.KingSquare(us)
	if ks == NoSquare {
		return moves
	}
	appendLeaps(ks, kingAttacks[ks])

	// Castling: rights present, path empty, rook home, and the king is
	// neither in check nor crosses an attacked square. The destination
	// square is covered by the MakeMove legality filter.
	rank := 0
	if us == Black {
		rank = 7
	}
	kingside, queenside := WhiteKingside, WhiteQueenside
	if us == Black {
		kingside, queenside = BlackKingside, BlackQueenside
	}
	if b.castling&kingside != 0 &&
		b.squares[SquareAt(7, rank)] == MakePiece(us, Rook) &&
		occ&(bb(SquareAt(5, rank))|bb(SquareAt(6, rank))) == 0 &&
		!b.IsSquareAttacked(ks, them) &&
		!b.IsSquareAttacked(SquareAt(5, rank), them) {
		moves = append(moves, NewMove(ks, SquareAt(6, rank), b.squares[ks], NoPiece, NoPiece, TagCastleKingside))
	}
	if b.castling&queenside != 0 &&
		b.squares[SquareAt(0, rank)] == MakePiece(us, Rook) &&
		occ&(bb(SquareAt(1, rank))|bb(SquareAt(2, rank))|bb(SquareAt(3, rank))) == 0 &&
		!b.IsSquareAttacked(ks, them) &&
		!b.IsSquareAttacked(SquareAt(3, rank), them) {
		moves = append(moves, NewMove(ks, SquareAt(2, rank), b.squares[ks], NoPiece, NoPiece, TagCastleQueenside))
	}
	return moves
}

// GenerateMovesInto appends every legal move for the side to move into
// dst (truncated first) and returns it. The order is deterministic for
// a given position: pseudo-legal generation order with illegal moves
// filtered out by a make/unmake king-safety test.
func (b *Board) GenerateMovesInto(dst []Move) []Move {
	var scratch [maxMoves]Move
	dst = dst[:0]
	for _, m := range b.generatePseudo(scratch[:0]) {
		if ok, st := b.MakeMove(m); ok {
			b.UnmakeMove(m, st)
			dst = append(dst, m)
		}
	}
	return dst
}

// GenerateMoves returns all legal moves in a fresh slice. Hot paths
// should prefer GenerateMovesInto with a reused buffer.
func (b *Board) GenerateMoves() []Move {
	return b.GenerateMovesInto(make([]Move, 0, 64))
}

// Perft counts leaf nodes of the legal move tree to the given depth.
// It is the standard movegen correctness diagnostic.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	bufs := make([][]Move, depth)
	for i := range bufs {
		bufs[i] = make([]Move, 0, maxMoves)
	}
	return perft(b, depth, bufs)
}

func perft(b *Board, depth int, bufs [][]Move) uint64 {
	moves := b.GenerateMovesInto(bufs[depth-1])
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		_, st := b.MakeMove(m)
		nodes += perft(b, depth-1, bufs)
		b.UnmakeMove(m, st)
	}
	return nodes
}

// PerftDivide maps each legal root move to its subtree leaf count,
// for narrowing down generator disagreements.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	out := make(map[Move]uint64)
	if depth <= 0 {
		return out
	}
	for _, m := range b.GenerateMoves() {
		_, st := b.MakeMove(m)
		out[m] = Perft(b, depth-1)
		b.UnmakeMove(m, st)
	}
	return out
}
