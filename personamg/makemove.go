package personamg

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is returned by ApplyMove when the requested move is
// not legal in the current position. The board is left untouched.
var ErrIllegalMove = errors.New("illegal move")

// MoveState captures everything UnmakeMove needs to restore the
// position bit for bit after the corresponding MakeMove.
type MoveState struct {
	move     Move
	castling CastlingRights
	epSquare Square
	halfmove int
	fullmove int
	key      uint64
}

// rightsClearedBy maps a square to the castling rights that disappear
// when a move starts or ends there (king or rook leaving home, or a
// rook being captured on its home square).
var rightsClearedBy = func() [64]CastlingRights {
	var t [64]CastlingRights
	t[SquareAt(0, 0)] = WhiteQueenside
	t[SquareAt(4, 0)] = WhiteKingside | WhiteQueenside
	t[SquareAt(7, 0)] = WhiteKingside
	t[SquareAt(0, 7)] = BlackQueenside
	t[SquareAt(4, 7)] = BlackKingside | BlackQueenside
	t[SquareAt(7, 7)] = BlackKingside
	return t
}()

// castleRookFromTo returns the rook's from/to squares for a castling
// move by the given side.
func castleRookFromTo(tag MoveTag, c Color) (from, to Square) {
	rank := 0
	if c == Black {
		rank = 7
	}
	if tag == TagCastleKingside {
		return SquareAt(7, rank), SquareAt(5, rank)
	}
	return SquareAt(0, rank), SquareAt(3, rank)
}

// MakeMove plays a pseudo-legal move in place and reports whether it
// was legal. On ok=false the position has already been restored. The
// returned MoveState feeds UnmakeMove for search backtracking.
func (b *Board) MakeMove(m Move) (ok bool, st MoveState) {
	st = MoveState{
		move:     m,
		castling: b.castling,
		epSquare: b.epSquare,
		halfmove: b.halfmove,
		fullmove: b.fullmove,
		key:      b.key,
	}

	us := b.stm
	from, to := m.From(), m.To()
	moved := m.MovedPiece()
	tag := m.Tag()

	if b.epSquare != NoSquare {
		b.key ^= zobristEP[b.epSquare.File()]
	}
	b.epSquare = NoSquare

	// Remove the captured piece first so the destination is free.
	if captured := m.CapturedPiece(); captured != NoPiece {
		capSq := to
		if tag == TagEnPassant {
			if us == White {
				capSq = to - 8
			} else {
				capSq = to + 8
			}
		}
		b.lift(capSq)
	}

	b.lift(from)
	placed := moved
	if promo := m.Promotion(); promo != NoPiece {
		placed = promo
	}
	b.put(placed, to)

	switch tag {
	case TagCastleKingside, TagCastleQueenside:
		rookFrom, rookTo := castleRookFromTo(tag, us)
		b.put(b.lift(rookFrom), rookTo)
	case TagDoublePush:
		b.epSquare = (from + to) / 2
		b.key ^= zobristEP[b.epSquare.File()]
	}

	if cleared := rightsClearedBy[from] | rightsClearedBy[to]; b.castling&cleared != 0 {
		b.key ^= zobristCastle[b.castling]
		b.castling &^= cleared
		b.key ^= zobristCastle[b.castling]
	}

	b.stm = us.Other()
	b.key ^= zobristSide

	// A pseudo-legal move that leaves the mover's own king attacked is
	// rejected and unwound here; the generator relies on this filter.
	if b.InCheck(us) {
		b.UnmakeMove(m, st)
		return false, st
	}

	if moved.Type() == Pawn || m.IsCapture() {
		b.halfmove = 0
	} else {
		b.halfmove++
	}
	if us == Black {
		b.fullmove++
	}
	return true, st
}

// UnmakeMove restores the position exactly as it was before the
// matching MakeMove.
func (b *Board) UnmakeMove(m Move, st MoveState) {
	b.stm = b.stm.Other()
	us := b.stm
	from, to := m.From(), m.To()
	tag := m.Tag()

	b.lift(to)
	b.put(m.MovedPiece(), from)

	if captured := m.CapturedPiece(); captured != NoPiece {
		capSq := to
		if tag == TagEnPassant {
			if us == White {
				capSq = to - 8
			} else {
				capSq = to + 8
			}
		}
		b.put(captured, capSq)
	}

	if tag == TagCastleKingside || tag == TagCastleQueenside {
		rookFrom, rookTo := castleRookFromTo(tag, us)
		b.put(b.lift(rookTo), rookFrom)
	}

	b.castling = st.castling
	b.epSquare = st.epSquare
	b.halfmove = st.halfmove
	b.fullmove = st.fullmove
	b.key = st.key
}

// ApplyMove validates m against the legal moves before playing it, so
// callers outside the search (UI, protocol adapters) can never corrupt
// the position. It matches on the full encoded move; use FindMove to
// build one from coordinates.
func (b *Board) ApplyMove(m Move) (MoveState, error) {
	for _, legal := range b.GenerateMoves() {
		if legal == m {
			_, st := b.MakeMove(m)
			return st, nil
		}
	}
	return MoveState{}, fmt.Errorf("%w: %s for %s", ErrIllegalMove, m, b.stm)
}
