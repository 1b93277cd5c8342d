package engine

import (
	"fmt"

	pm "persona-chess/personamg"
)

// MateValue is the magnitude of a checkmate score. Mates found deeper
// in the tree score closer to zero, so equal-depth searches prefer the
// faster mate.
const MateValue = 1000.0

// ScoredMove pairs a legal root move with its exact negamax score.
type ScoredMove struct {
	Move  pm.Move
	Score float64
}

// searcher holds per-invocation state so Search stays reentrant across
// goroutines each working on their own board.
type searcher struct {
	board *pm.Board
	w     *Weights
	// one move buffer per ply, reused across siblings
	bufs [][]pm.Move
}

// Search scores every legal move in b to the given depth and returns
// them in generation order. b is mutated during the search and
// restored before returning. Scores are exact: each root move is
// searched with a full window, so pruning below never changes a
// reported score, only the work done to find it.
func Search(b *pm.Board, w *Weights, depth int) ([]ScoredMove, error) {
	if depth <= 0 {
		return nil, fmt.Errorf("%w: depth %d", ErrInvalidWeights, depth)
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}

	s := &searcher{board: b, w: w, bufs: make([][]pm.Move, depth)}
	for i := range s.bufs {
		s.bufs[i] = make([]pm.Move, 0, 64)
	}

	moves := b.GenerateMoves()
	if len(moves) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoLegalMoves, b.ToFEN())
	}

	scored := make([]ScoredMove, 0, len(moves))
	for _, m := range moves {
		_, st := b.MakeMove(m)
		score := -s.negamax(depth-1, 1, -MateValue, MateValue, m)
		b.UnmakeMove(m, st)
		scored = append(scored, ScoredMove{Move: m, Score: score})
	}
	return scored, nil
}

// negamax returns the score of the current position for its side to
// move. last is the move that produced the position; ply is the
// distance from the root, used to grade mate scores.
func (s *searcher) negamax(depth, ply int, alpha, beta float64, last pm.Move) float64 {
	b := s.board

	// Terminal states outrank the depth horizon: a position with no
	// legal moves is mate or stalemate even at depth 0.
	moves := b.GenerateMovesInto(s.bufs[ply-1])
	if len(moves) == 0 {
		if b.InCheck(b.SideToMove()) {
			return -(MateValue - float64(ply))
		}
		return 0
	}

	if depth == 0 {
		return Evaluate(b, s.w, last)
	}

	best := -MateValue
	for _, m := range moves {
		_, st := b.MakeMove(m)
		score := -s.negamax(depth-1, ply+1, -beta, -alpha, m)
		b.UnmakeMove(m, st)

		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}
