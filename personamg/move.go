package personamg

import "strings"

// Move is a value type packing a full move description into 32 bits:
// from and to squares, the moved and captured pieces, the promotion
// piece, and a special-move tag. A non-zero promotion piece marks a
// promotion; the tag covers the remaining special cases.
type Move uint32

// Bit layout, LSB first.
const (
	shiftFrom  = 0  // 6 bits
	shiftTo    = 6  // 6 bits
	shiftPiece = 12 // 4 bits
	shiftCap   = 16 // 4 bits
	shiftPromo = 20 // 4 bits
	shiftTag   = 24 // 3 bits
)

// MoveTag labels the special-move kind of a Move.
type MoveTag uint8

const (
	TagNone MoveTag = iota
	TagDoublePush
	TagEnPassant
	TagCastleKingside
	TagCastleQueenside
)

// NullMove is the zero Move; it never describes a playable move.
const NullMove Move = 0

// NewMove assembles a move value from its parts.
func NewMove(from, to Square, moved, captured, promo Piece, tag MoveTag) Move {
	return Move(uint32(from&0x3F) |
		uint32(to&0x3F)<<shiftTo |
		uint32(moved&0xF)<<shiftPiece |
		uint32(captured&0xF)<<shiftCap |
		uint32(promo&0xF)<<shiftPromo |
		uint32(tag&0x7)<<shiftTag)
}

// From returns the source square.
func (m Move) From() Square { return Square(uint32(m) >> shiftFrom & 0x3F) }

// To returns the destination square.
func (m Move) To() Square { return Square(uint32(m) >> shiftTo & 0x3F) }

// MovedPiece returns the piece performing the move.
func (m Move) MovedPiece() Piece { return Piece(uint32(m) >> shiftPiece & 0xF) }

// CapturedPiece returns the captured piece, or NoPiece. For en passant
// this is the pawn removed from behind the destination square.
func (m Move) CapturedPiece() Piece { return Piece(uint32(m) >> shiftCap & 0xF) }

// Promotion returns the piece a promoting pawn turns into, or NoPiece.
func (m Move) Promotion() Piece { return Piece(uint32(m) >> shiftPromo & 0xF) }

// Tag returns the special-move tag.
func (m Move) Tag() MoveTag { return MoveTag(uint32(m) >> shiftTag & 0x7) }

// IsCapture reports whether the move takes a piece (including en passant).
func (m Move) IsCapture() bool { return m.CapturedPiece() != NoPiece }

// String renders the move in UCI coordinate form, e.g. "e2e4", "e7e8q".
func (m Move) String() string {
	if m == NullMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if promo := m.Promotion(); promo != NoPiece {
		s += strings.ToLower(string(fenChar(promo)))
	}
	return s
}

// FindMove resolves a (from, to, promotion-type) triple against the
// current legal moves, filling in captured piece and tag. It is the
// lookup a UI or protocol layer uses to turn coordinates into a Move.
// A caller that passes NoPieceType for a promoting pawn gets the queen
// promotion; that is the documented default.
func (b *Board) FindMove(from, to Square, promo PieceType) (Move, bool) {
	var fallback Move
	for _, m := range b.GenerateMoves() {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.Promotion().Type() == promo {
			return m, true
		}
		if promo == NoPieceType && m.Promotion().Type() == Queen {
			fallback = m
		}
	}
	if fallback != NullMove {
		return fallback, true
	}
	return NullMove, false
}
