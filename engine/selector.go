package engine

import (
	"fmt"

	"golang.org/x/exp/slices"

	pm "persona-chess/personamg"
)

// RandSource supplies the randomness for weighted selection. *rand.Rand
// satisfies it; tests inject fixed sequences.
type RandSource interface {
	Float64() float64
}

// Select draws one move from scored according to policy. PickBest is
// deterministic and ignores rng; PickWeighted stable-sorts by
// descending score, keeps the top K (fewer when the list is shorter,
// with the weight prefix renormalized) and draws proportionally to the
// policy weights. Ties keep the scored order, so equal-scored moves
// rank by generation order.
func Select(scored []ScoredMove, policy SelectionPolicy, rng RandSource) (pm.Move, error) {
	if len(scored) == 0 {
		return pm.NullMove, fmt.Errorf("%w: empty scored list", ErrNoLegalMoves)
	}

	if policy.Kind == PickBest {
		best := scored[0]
		for _, sm := range scored[1:] {
			if sm.Score > best.Score {
				best = sm
			}
		}
		return best.Move, nil
	}

	if policy.TopK <= 0 || len(policy.TopWeights) != policy.TopK {
		return pm.NullMove, fmt.Errorf("%w: top-k %d with %d weights",
			ErrInvalidWeights, policy.TopK, len(policy.TopWeights))
	}

	ranked := make([]ScoredMove, len(scored))
	copy(ranked, scored)
	slices.SortStableFunc(ranked, func(a, b ScoredMove) bool {
		return a.Score > b.Score
	})

	k := policy.TopK
	if k > len(ranked) {
		k = len(ranked)
	}
	ranked = ranked[:k]
	weights := policy.TopWeights[:k]

	total := 0.0
	for _, wt := range weights {
		total += wt
	}
	if total <= 0 {
		return pm.NullMove, fmt.Errorf("%w: selection weights sum to %v", ErrInvalidWeights, total)
	}

	r := rng.Float64() * total
	for i, wt := range weights {
		r -= wt
		if r < 0 {
			return ranked[i].Move, nil
		}
	}
	// Float64 returned a value at or past the cumulative total; the
	// draw lands on the last candidate.
	return ranked[k-1].Move, nil
}
