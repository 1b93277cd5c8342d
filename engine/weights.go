package engine

import (
	"errors"
	"fmt"

	pm "persona-chess/personamg"
)

// =============================================================================
// ERROR KINDS
// =============================================================================

var (
	// ErrNoLegalMoves is returned when a search or selection is asked
	// for a move in a position that has none.
	ErrNoLegalMoves = errors.New("no legal moves")

	// ErrInvalidWeights is returned when a weight set or search
	// parameter block fails validation.
	ErrInvalidWeights = errors.New("invalid weights")
)

// =============================================================================
// WEIGHTS
// =============================================================================

// Weights parameterizes the evaluation. A personality is nothing but a
// Weights value plus SearchParams; the evaluator and search never
// branch on who is playing.
type Weights struct {
	// PieceValue is indexed by PieceType. The king entry stays 0, mate
	// detection lives in the search.
	PieceValue [7]float64

	// Positional scales the piece-square tables.
	Positional float64

	// KingSafety toggles the king placement term.
	KingSafety bool

	// AttackBonus credits the side to move per enemy piece its pieces
	// attack. The opponent's attacks are not counted against it.
	AttackBonus float64

	// CaptureBonus credits the mover with this fraction of the
	// captured piece's value on top of the material swing.
	CaptureBonus float64

	// CheckBonus is scored against a side that stands in check.
	CheckBonus float64
}

// DefaultPieceValues returns the classical material scale with pawns
// at 1.0.
func DefaultPieceValues() [7]float64 {
	var v [7]float64
	v[pm.Pawn] = 1
	v[pm.Knight] = 3
	v[pm.Bishop] = 3
	v[pm.Rook] = 5
	v[pm.Queen] = 9
	v[pm.King] = 0
	return v
}

// Validate rejects weight sets the evaluator cannot score sensibly.
func (w *Weights) Validate() error {
	for pt := pm.Pawn; pt <= pm.Queen; pt++ {
		if w.PieceValue[pt] < 0 {
			return fmt.Errorf("%w: negative value for piece type %d", ErrInvalidWeights, pt)
		}
	}
	if w.Positional < 0 || w.AttackBonus < 0 || w.CaptureBonus < 0 || w.CheckBonus < 0 {
		return fmt.Errorf("%w: scalar terms must be non-negative", ErrInvalidWeights)
	}
	return nil
}

// =============================================================================
// SEARCH PARAMETERS
// =============================================================================

// PolicyKind picks how the root move is drawn from the scored list.
type PolicyKind uint8

const (
	// PickBest takes the highest-scored move, first occurrence on ties.
	PickBest PolicyKind = iota
	// PickWeighted draws among the top K moves with the given weights.
	PickWeighted
)

// SelectionPolicy describes root move selection. TopK and TopWeights
// only apply to PickWeighted.
type SelectionPolicy struct {
	Kind       PolicyKind
	TopK       int
	TopWeights []float64
}

// BestPolicy is the deterministic selection used by most personalities.
var BestPolicy = SelectionPolicy{Kind: PickBest}

// SearchParams bounds a search invocation.
type SearchParams struct {
	Depth  int
	Policy SelectionPolicy
}

// Validate rejects unusable parameter blocks.
func (p *SearchParams) Validate() error {
	if p.Depth <= 0 {
		return fmt.Errorf("%w: depth %d", ErrInvalidWeights, p.Depth)
	}
	if p.Policy.Kind == PickWeighted {
		if p.Policy.TopK <= 0 {
			return fmt.Errorf("%w: top-k %d", ErrInvalidWeights, p.Policy.TopK)
		}
		if len(p.Policy.TopWeights) != p.Policy.TopK {
			return fmt.Errorf("%w: %d weights for top-%d selection",
				ErrInvalidWeights, len(p.Policy.TopWeights), p.Policy.TopK)
		}
		total := 0.0
		for _, wt := range p.Policy.TopWeights {
			if wt < 0 {
				return fmt.Errorf("%w: negative selection weight %v", ErrInvalidWeights, wt)
			}
			total += wt
		}
		if total <= 0 {
			return fmt.Errorf("%w: selection weights sum to %v", ErrInvalidWeights, total)
		}
	}
	return nil
}
