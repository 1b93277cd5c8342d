package personamg

import "math/bits"

// Piece packs a colorless type in bits 0-2 and the color in bit 3
// (set = Black), so that p&7 yields the type and p>>3 the color.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhiteRook   Piece = Piece(Rook)
	WhiteQueen  Piece = Piece(Queen)
	WhiteKing   Piece = Piece(King)
	BlackPawn   Piece = Piece(Pawn) | 8
	BlackKnight Piece = Piece(Knight) | 8
	BlackBishop Piece = Piece(Bishop) | 8
	BlackRook   Piece = Piece(Rook) | 8
	BlackQueen  Piece = Piece(Queen) | 8
	BlackKing   Piece = Piece(King) | 8
)

// PieceType is the colorless piece kind, usable as a table index.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Type returns the colorless kind of the piece.
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side owning the piece. NoPiece reports White.
func (p Piece) Color() Color { return Color(p >> 3) }

// MakePiece combines a color and a type into a concrete Piece.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == NoPieceType {
		return NoPiece
	}
	return Piece(pt) | Piece(c)<<3
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// CastlingRights is a bitmask of the four independent castling permissions.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// Square indexes the board 0-63 with a1=0, b1=1, ..., h8=63.
type Square int

const NoSquare Square = -1

// File returns the square's file 0-7 (a-h).
func (s Square) File() int { return int(s) & 7 }

// Rank returns the square's rank 0-7.
func (s Square) Rank() int { return int(s) >> 3 }

func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

// SquareAt builds a square from file and rank, both 0-7.
func SquareAt(file, rank int) Square { return Square(rank<<3 | file) }

// Board is the exclusive owner of a position: a mailbox array for
// square lookups plus redundant bitboards (one per piece type, one per
// color) for move generation, with the game-state fields a FEN carries.
// All mutation goes through MakeMove/UnmakeMove or SetPiece.
type Board struct {
	squares [64]Piece
	byType  [7]uint64
	byColor [2]uint64

	stm      Color
	castling CastlingRights
	epSquare Square
	halfmove int
	fullmove int

	key uint64
}

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.stm }

// Castling returns the current castling-rights mask.
func (b *Board) Castling() CastlingRights { return b.castling }

// EnPassantSquare returns the en-passant target square, or NoSquare.
func (b *Board) EnPassantSquare() Square { return b.epSquare }

// HalfmoveClock counts half-moves since the last capture or pawn move.
func (b *Board) HalfmoveClock() int { return b.halfmove }

// FullmoveNumber starts at 1 and increments after each Black move.
func (b *Board) FullmoveNumber() int { return b.fullmove }

// Hash returns the incrementally maintained Zobrist key.
func (b *Board) Hash() uint64 { return b.key }

// PieceAt returns the piece standing on sq.
func (b *Board) PieceAt(sq Square) Piece { return b.squares[sq] }

// Occupied returns the bitboard of all occupied squares.
func (b *Board) Occupied() uint64 { return b.byColor[White] | b.byColor[Black] }

// ColorBB returns the occupancy bitboard of one side.
func (b *Board) ColorBB(c Color) uint64 { return b.byColor[c] }

// PieceBB returns the bitboard of one side's pieces of one type.
func (b *Board) PieceBB(c Color, pt PieceType) uint64 {
	return b.byType[pt] & b.byColor[c]
}

// KingSquare returns the square of c's king. Legal positions always
// have exactly one king per side.
func (b *Board) KingSquare(c Color) Square {
	kings := b.PieceBB(c, King)
	if kings == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(kings))
}

// Copy returns an independent duplicate of the board, e.g. for running
// concurrent searches that each need their own mutable state.
func (b *Board) Copy() *Board {
	dup := *b
	return &dup
}

// HasLegalMoves reports whether the side to move has any legal move.
func (b *Board) HasLegalMoves() bool {
	var buf [maxMoves]Move
	return len(b.GenerateMovesInto(buf[:0])) > 0
}

// InCheckmate reports whether the side to move is checkmated: in check
// with no legal moves.
func (b *Board) InCheckmate() bool {
	return b.InCheck(b.stm) && !b.HasLegalMoves()
}

// InStalemate reports whether the side to move is stalemated: not in
// check and without a legal move.
func (b *Board) InStalemate() bool {
	return !b.InCheck(b.stm) && !b.HasLegalMoves()
}

// IsDrawBy50 reports a fifty-move-rule draw (the clock counts half-moves).
func (b *Board) IsDrawBy50() bool { return b.halfmove >= 100 }

// IsDrawByRepetition reports threefold repetition given the Zobrist
// history of positions played on the board (most recent last). The
// current position counts as one occurrence; it does not need to be
// part of history.
func (b *Board) IsDrawByRepetition(history []uint64) bool {
	end := len(history)
	if end > 0 && history[end-1] == b.key {
		end--
	}
	seen := 0
	for _, k := range history[:end] {
		if k == b.key {
			seen++
			if seen >= 2 {
				return true
			}
		}
	}
	return false
}

// bb returns a bitboard with only sq set.
func bb(sq Square) uint64 { return 1 << uint(sq) }

// PopLSB clears and returns the lowest set bit's index. Callers use it
// to walk bitboards returned by the accessors.
func PopLSB(mask *uint64) int {
	idx := bits.TrailingZeros64(*mask)
	*mask &= *mask - 1
	return idx
}

func popLSB(mask *uint64) int { return PopLSB(mask) }

// put places p on an empty square, updating mailbox, bitboards and key.
func (b *Board) put(p Piece, sq Square) {
	b.squares[sq] = p
	b.byType[p.Type()] |= bb(sq)
	b.byColor[p.Color()] |= bb(sq)
	b.key ^= zobristPiece[p.Color()][p.Type()][sq]
}

// lift removes and returns the piece on sq, which must be occupied.
func (b *Board) lift(sq Square) Piece {
	p := b.squares[sq]
	b.squares[sq] = NoPiece
	b.byType[p.Type()] &^= bb(sq)
	b.byColor[p.Color()] &^= bb(sq)
	b.key ^= zobristPiece[p.Color()][p.Type()][sq]
	return p
}

// SetPiece replaces whatever stands on sq with p (NoPiece clears the
// square). Intended for position setup; it does not touch clocks or
// rights.
func (b *Board) SetPiece(sq Square, p Piece) {
	if b.squares[sq] != NoPiece {
		b.lift(sq)
	}
	if p != NoPiece {
		b.put(p, sq)
	}
}

// Validate cross-checks mailbox, bitboards and the Zobrist key.
func (b *Board) Validate() bool {
	var byType [7]uint64
	var byColor [2]uint64
	for sq := Square(0); sq < 64; sq++ {
		p := b.squares[sq]
		if p == NoPiece {
			continue
		}
		byType[p.Type()] |= bb(sq)
		byColor[p.Color()] |= bb(sq)
	}
	if byType != b.byType || byColor != b.byColor {
		return false
	}
	return b.key == b.ComputeZobrist()
}
