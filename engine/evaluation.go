package engine

import pm "persona-chess/personamg"

// Evaluate scores b from the perspective of the side to move, positive
// meaning that side is better. last is the move that produced b, or
// pm.NullMove at the search root; it carries the capture information
// the capture bonus term needs, so nothing is diffed off the board.
//
// The terms are material, piece-square placement, king safety, an
// attacked-enemy-piece count, a bonus for a capture just played, and a
// penalty for standing in check. Every term is gated or scaled by w;
// with zeroed scalars Evaluate degrades to bare material.
func Evaluate(b *pm.Board, w *Weights, last pm.Move) float64 {
	stm := b.SideToMove()

	// Material and placement in one pass over the occupied squares,
	// accumulated white-positive and flipped at the end.
	score := 0.0
	for occ := b.Occupied(); occ != 0; {
		sq := pm.Square(pm.PopLSB(&occ))
		p := b.PieceAt(sq)
		v := w.PieceValue[p.Type()] + w.Positional*pieceSquare(p, sq)
		if p.Color() == pm.White {
			score += v
		} else {
			score -= v
		}
	}

	if w.KingSafety {
		score += kingSafety(b, pm.White) - kingSafety(b, pm.Black)
	}

	if stm == pm.Black {
		score = -score
	}

	if w.AttackBonus != 0 {
		score += w.AttackBonus * float64(b.AttackCount(stm))
	}

	// last was played by the opponent of the side to move, so its
	// capture credit counts against us here; the negamax negation one
	// ply up turns that into a bonus for the capturer.
	if w.CaptureBonus != 0 && last.IsCapture() {
		score -= w.CaptureBonus * w.PieceValue[last.CapturedPiece().Type()]
	}

	if w.CheckBonus != 0 && b.InCheck(stm) {
		score -= w.CheckBonus
	}

	return score
}
