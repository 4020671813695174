package engine

import (
	"arbiter/board"
	"arbiter/position"
)

// scoreMaterial is the centipawn value per piece kind. This is deliberately
// the whole evaluation: the kernel is a correctness-first rules engine, not
// a playing-strength engine.
var scoreMaterial = [6 + 1]int16{
	board.KindPawn:   100,
	board.KindKnight: 320,
	board.KindBishop: 350,
	board.KindRook:   500,
	board.KindQueen:  900,
	board.KindKing:   0,
}

// Evaluate returns the material balance from the perspective of the side to
// move.
func (e *Engine) Evaluate(b *board.Board) int16 {
	var balance int16
	for pos := position.Pos(0); pos < board.TotalCells; pos++ {
		if !pos.OnBoard() {
			continue
		}
		p := b.GetPiece(pos)
		switch p.Side() {
		case board.SideWhite:
			balance += scoreMaterial[p.Kind()]
		case board.SideBlack:
			balance -= scoreMaterial[p.Kind()]
		}
	}
	if b.Turn() == board.SideBlack {
		balance = -balance
	}
	return balance
}
