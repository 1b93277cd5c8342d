package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"

	"persona-chess/engine"
	pm "persona-chess/personamg"
)

func main() {
	fen := flag.String("fen", pm.FENStartPos, "FEN string (defaults to initial position)")
	name := flag.String("personality", "tactician",
		"Personality to play as ("+strings.Join(engine.Names(), ", ")+")")
	seed := flag.Int64("seed", 1, "Seed for weighted selection personalities")
	flag.Parse()

	p, ok := engine.Lookup(*name)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown personality %q, want one of: %s\n",
			*name, strings.Join(engine.Names(), ", "))
		os.Exit(2)
	}

	board, err := pm.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	scored, err := engine.Search(board, &p.Weights, p.Params.Depth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "search error: %v\n", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))
	chosen, err := engine.Select(scored, p.Params.Policy, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "selection error: %v\n", err)
		os.Exit(1)
	}

	ranked := make([]engine.ScoredMove, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })

	fmt.Printf("%s depth %d, %d legal moves\n", p.Name, p.Params.Depth, len(scored))
	for i, sm := range ranked {
		if i == 5 {
			break
		}
		mark := " "
		if sm.Move == chosen {
			mark = "*"
		}
		fmt.Printf("%s %d. %-7s %+.2f\n", mark, i+1, sm.Move.String(), sm.Score)
	}
	fmt.Printf("bestmove %s\n", chosen.String())
}
