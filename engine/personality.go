package engine

import (
	"fmt"
	"sort"

	pm "persona-chess/personamg"
)

// Personality is a named weight set plus search parameters. The four
// built-in records differ only in data; they all run through the same
// Search, Evaluate and Select.
type Personality struct {
	Name    string
	Weights Weights
	Params  SearchParams
}

// The built-in roster. Fortress hoards pawns behind a castled king,
// Gambler overrates minor pieces and gambles among its top candidates,
// Prophet searches deepest and leans on placement, Tactician chases
// captures and checks.
func builtins() []Personality {
	fortress := Weights{
		PieceValue: DefaultPieceValues(),
		Positional: 0.1,
		KingSafety: true,
	}
	fortress.PieceValue[pm.Pawn] = 1.4

	gambler := Weights{
		PieceValue:  DefaultPieceValues(),
		Positional:  0.1,
		AttackBonus: 0.08,
	}
	gambler.PieceValue[pm.Knight] = 3.3
	gambler.PieceValue[pm.Bishop] = 3.3

	prophet := Weights{
		PieceValue: DefaultPieceValues(),
		Positional: 0.3,
		KingSafety: true,
	}

	tactician := Weights{
		PieceValue:   DefaultPieceValues(),
		Positional:   0.05,
		CaptureBonus: 0.5,
		CheckBonus:   0.5,
	}

	return []Personality{
		{Name: "fortress", Weights: fortress, Params: SearchParams{Depth: 3, Policy: BestPolicy}},
		{Name: "gambler", Weights: gambler, Params: SearchParams{
			Depth: 4,
			Policy: SelectionPolicy{
				Kind:       PickWeighted,
				TopK:       3,
				TopWeights: []float64{0.65, 0.25, 0.10},
			},
		}},
		{Name: "prophet", Weights: prophet, Params: SearchParams{Depth: 5, Policy: BestPolicy}},
		{Name: "tactician", Weights: tactician, Params: SearchParams{Depth: 3, Policy: BestPolicy}},
	}
}

var registry = func() map[string]Personality {
	m := make(map[string]Personality)
	for _, p := range builtins() {
		if err := p.Weights.Validate(); err != nil {
			panic(err)
		}
		if err := p.Params.Validate(); err != nil {
			panic(err)
		}
		m[p.Name] = p
	}
	return m
}()

// Lookup returns the named built-in personality.
func Lookup(name string) (Personality, bool) {
	p, ok := registry[name]
	return p, ok
}

// Names lists the built-in personalities in lexical order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// BestMove searches b with the personality's weights and depth, then
// applies its selection policy. rng is only consulted for weighted
// policies and may be nil otherwise.
func BestMove(b *pm.Board, p Personality, rng RandSource) (pm.Move, error) {
	scored, err := Search(b, &p.Weights, p.Params.Depth)
	if err != nil {
		return pm.NullMove, fmt.Errorf("%s: %w", p.Name, err)
	}
	return Select(scored, p.Params.Policy, rng)
}
