package board

import "arbiter/position"

// 0x88 move offsets: the rank stride is 0x10, so diagonals are 0x0f/0x11 and
// knight leaps combine two strides with a file step.
var (
	offsetsKnight     = [8]position.Pos{0x21, 0x1f, 0x12, 0x0e, -0x0e, -0x12, -0x1f, -0x21}
	offsetsKing       = [8]position.Pos{0x11, 0x10, 0x0f, 0x01, -0x01, -0x0f, -0x10, -0x11}
	offsetsDiagonal   = [4]position.Pos{0x11, 0x0f, -0x0f, -0x11}
	offsetsOrthogonal = [4]position.Pos{0x10, 0x01, -0x01, -0x10}
)

// IsAttacked reports whether the given square is attacked by any piece of
// side by. It is a pure query; the board is not modified.
func (b *Board) IsAttacked(pos position.Pos, by Side) bool {
	for _, off := range offsetsKnight {
		if from := pos + off; from.OnBoard() && b.cells[from] == NewPiece(by, KindKnight) {
			return true
		}
	}

	for _, off := range offsetsKing {
		if from := pos + off; from.OnBoard() && b.cells[from] == NewPiece(by, KindKing) {
			return true
		}
	}

	// a white pawn attacks the two squares diagonally ahead of it, so pos is
	// attacked when a white pawn sits diagonally behind it
	pawnDir := position.Pos(0x10)
	if by == SideWhite {
		pawnDir = -0x10
	}
	for _, off := range [2]position.Pos{pawnDir + 0x01, pawnDir - 0x01} {
		if from := pos + off; from.OnBoard() && b.cells[from] == NewPiece(by, KindPawn) {
			return true
		}
	}

	bishop, rook, queen := NewPiece(by, KindBishop), NewPiece(by, KindRook), NewPiece(by, KindQueen)
	for _, off := range offsetsDiagonal {
		for from := pos + off; from.OnBoard(); from += off {
			p := b.cells[from]
			if p == PieceNone {
				continue
			}
			if p == bishop || p == queen {
				return true
			}
			break
		}
	}
	for _, off := range offsetsOrthogonal {
		for from := pos + off; from.OnBoard(); from += off {
			p := b.cells[from]
			if p == PieceNone {
				continue
			}
			if p == rook || p == queen {
				return true
			}
			break
		}
	}

	return false
}

// IsKingChecked reports whether the king of side s stands attacked. A board
// without that king reports false; well-formed positions always carry one
// king per side.
func (b *Board) IsKingChecked(s Side) bool {
	king := NewPiece(s, KindKing)
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		if b.cells[pos] == king {
			return b.IsAttacked(pos, s.Opposite())
		}
	}
	return false
}
