package personamg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the standard initial position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN wraps any FEN parsing failure.
var ErrInvalidFEN = errors.New("invalid fen")

var fenPieceChars = [7]byte{0, 'p', 'n', 'b', 'r', 'q', 'k'}

// fenChar returns the FEN letter for p, uppercase for White.
func fenChar(p Piece) byte {
	c := fenPieceChars[p.Type()]
	if p.Color() == White {
		c -= 'a' - 'A'
	}
	return c
}

func pieceFromFEN(c byte) (Piece, bool) {
	color := Black
	if c >= 'A' && c <= 'Z' {
		color = White
		c += 'a' - 'A'
	}
	for pt, fc := range fenPieceChars {
		if fc == c {
			return MakePiece(color, PieceType(pt)), true
		}
	}
	return NoPiece, false
}

func parseSquare(s string) (Square, bool) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, false
	}
	return SquareAt(int(s[0]-'a'), int(s[1]-'1')), true
}

// NewBoard returns a board at the standard starting position.
func NewBoard() *Board {
	b, err := ParseFEN(FENStartPos)
	if err != nil {
		panic(err)
	}
	return b
}

// ParseFEN builds a board from a FEN record. The halfmove clock and
// fullmove number fields may be omitted and default to 0 and 1.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: want at least 4 fields, got %d", ErrInvalidFEN, len(fields))
	}

	b := &Board{epSquare: NoSquare, fullmove: 1}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: want 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}
	for i, row := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			p, ok := pieceFromFEN(c)
			if !ok || file > 7 {
				return nil, fmt.Errorf("%w: bad placement rank %q", ErrInvalidFEN, row)
			}
			b.put(p, SquareAt(file, rank))
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("%w: rank %q covers %d files", ErrInvalidFEN, row, file)
		}
	}

	switch fields[1] {
	case "w":
		b.stm = White
	case "b":
		b.stm = Black
	default:
		return nil, fmt.Errorf("%w: side to move %q", ErrInvalidFEN, fields[1])
	}

	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				b.castling |= WhiteKingside
			case 'Q':
				b.castling |= WhiteQueenside
			case 'k':
				b.castling |= BlackKingside
			case 'q':
				b.castling |= BlackQueenside
			default:
				return nil, fmt.Errorf("%w: castling field %q", ErrInvalidFEN, fields[2])
			}
		}
	}

	if fields[3] != "-" {
		sq, ok := parseSquare(fields[3])
		if !ok {
			return nil, fmt.Errorf("%w: en-passant square %q", ErrInvalidFEN, fields[3])
		}
		b.epSquare = sq
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: halfmove clock %q", ErrInvalidFEN, fields[4])
		}
		b.halfmove = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: fullmove number %q", ErrInvalidFEN, fields[5])
		}
		b.fullmove = n
	}

	b.key = b.ComputeZobrist()
	return b, nil
}

// ToFEN renders the board as a full six-field FEN record.
func (b *Board) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.squares[SquareAt(file, rank)]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(fenChar(p))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.stm == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if b.castling == 0 {
		sb.WriteByte('-')
	} else {
		for i, c := range []byte{'K', 'Q', 'k', 'q'} {
			if b.castling&(1<<i) != 0 {
				sb.WriteByte(c)
			}
		}
	}

	sb.WriteByte(' ')
	if b.epSquare == NoSquare {
		sb.WriteString("-")
	} else {
		sb.WriteString(b.epSquare.String())
	}

	fmt.Fprintf(&sb, " %d %d", b.halfmove, b.fullmove)
	return sb.String()
}
