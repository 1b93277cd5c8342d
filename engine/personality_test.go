package engine_test

import (
	"math/rand"
	"sort"
	"testing"

	"persona-chess/engine"
	pm "persona-chess/personamg"
)

func TestRegistryRoster(t *testing.T) {
	want := []string{"fortress", "gambler", "prophet", "tactician"}
	got := engine.Names()
	if len(got) != len(want) {
		t.Fatalf("roster: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("roster: got %v want %v", got, want)
		}
	}
	if _, ok := engine.Lookup("berserker"); ok {
		t.Error("unknown personality resolved")
	}
}

func TestPersonalityParameters(t *testing.T) {
	fortress, _ := engine.Lookup("fortress")
	if fortress.Params.Depth != 3 || !fortress.Weights.KingSafety {
		t.Errorf("fortress params off: %+v", fortress)
	}
	if fortress.Weights.PieceValue[pm.Pawn] != 1.4 {
		t.Errorf("fortress pawn value: got %v want 1.4", fortress.Weights.PieceValue[pm.Pawn])
	}

	gambler, _ := engine.Lookup("gambler")
	if gambler.Params.Depth != 4 || gambler.Params.Policy.Kind != engine.PickWeighted {
		t.Errorf("gambler params off: %+v", gambler.Params)
	}
	if gambler.Weights.PieceValue[pm.Knight] != 3.3 || gambler.Weights.PieceValue[pm.Bishop] != 3.3 {
		t.Errorf("gambler minors: %v", gambler.Weights.PieceValue)
	}
	if gambler.Weights.AttackBonus != 0.08 {
		t.Errorf("gambler attack bonus: got %v", gambler.Weights.AttackBonus)
	}

	prophet, _ := engine.Lookup("prophet")
	if prophet.Params.Depth != 5 || prophet.Weights.Positional != 0.3 {
		t.Errorf("prophet params off: %+v", prophet)
	}

	tactician, _ := engine.Lookup("tactician")
	if tactician.Weights.CaptureBonus != 0.5 || tactician.Weights.CheckBonus != 0.5 {
		t.Errorf("tactician bonuses off: %+v", tactician.Weights)
	}
}

func TestBestMoveIsLegal(t *testing.T) {
	// A middlegame position with enough tension that the
	// personalities disagree yet each must return a legal move.
	fen := "r1bqk2r/pppp1ppp/2n2n2/2b1p3/2B1P3/2NP1N2/PPP2PPP/R1BQK2R w KQkq - 0 5"
	for _, name := range []string{"fortress", "gambler", "tactician"} {
		p, ok := engine.Lookup(name)
		if !ok {
			t.Fatalf("missing personality %s", name)
		}
		b := mustBoard(t, fen)
		rng := rand.New(rand.NewSource(99))
		m, err := engine.BestMove(b, p, rng)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		fresh := mustBoard(t, fen)
		if _, err := fresh.ApplyMove(m); err != nil {
			t.Errorf("%s chose illegal move %s: %v", name, m, err)
		}
	}
}

func TestBestMoveProphetEndgame(t *testing.T) {
	// Depth 5 stays cheap in a sparse king-and-pawn ending.
	p, _ := engine.Lookup("prophet")
	b := mustBoard(t, "8/8/4k3/8/4P3/4K3/8/8 w - - 0 1")
	m, err := engine.BestMove(b, p, nil)
	if err != nil {
		t.Fatalf("prophet: %v", err)
	}
	fresh := mustBoard(t, "8/8/4k3/8/4P3/4K3/8/8 w - - 0 1")
	if _, err := fresh.ApplyMove(m); err != nil {
		t.Errorf("prophet chose illegal move %s: %v", m, err)
	}
}

func TestGamblerStaysInTopThree(t *testing.T) {
	fen := "r1bqk2r/pppp1ppp/2n2n2/2b1p3/2B1P3/2NP1N2/PPP2PPP/R1BQK2R w KQkq - 0 5"
	p, _ := engine.Lookup("gambler")

	b := mustBoard(t, fen)
	scored, err := engine.Search(b, &p.Weights, p.Params.Depth)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	// Rank once, then check repeated draws stay inside the top three
	// candidates.
	ranked := append([]engine.ScoredMove(nil), scored...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	top := map[pm.Move]bool{
		ranked[0].Move: true,
		ranked[1].Move: true,
		ranked[2].Move: true,
	}

	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 25; i++ {
		m, err := engine.Select(scored, p.Params.Policy, rng)
		if err != nil {
			t.Fatalf("Select: %v", err)
		}
		if !top[m] {
			t.Fatalf("gambler drew %s outside its top three", m)
		}
	}
}

func TestBestMoveNoLegalMoves(t *testing.T) {
	p, _ := engine.Lookup("tactician")
	b := mustBoard(t, "7k/5Q2/5K2/8/8/8/8/8 b - - 0 1")
	if _, err := engine.BestMove(b, p, nil); err == nil {
		t.Fatal("BestMove succeeded in a stalemate position")
	}
}
