package board

import "arbiter/position"

// Move is a plain value; it carries no reference to the board it was
// generated from, so applying it to any other board is the caller's mistake.
type Move struct {
	From, To position.Pos
	Piece    Piece

	IsCapture   bool
	IsEnPassant bool
	IsCastle    CastleDirection
	IsPromote   Kind
}

func (m Move) String() string {
	return m.Algebra()
}

func (m Move) Equals(o Move) bool {
	return m == o
}

func (m Move) IsNull() bool {
	return m == Move{}
}

func (m Move) Algebra() string {
	if m.IsCastle != CastleDirectionUnknown {
		if m.IsCastle.IsRight() {
			return "0-0"
		}
		return "0-0-0"
	}
	nt := m.Piece.Kind().SymbolAlgebra()
	if m.IsCapture {
		if m.Piece.Kind() == KindPawn {
			nt += m.From.File().NotationComponentFile()
		} else {
			nt += m.From.Notation()
		}
		nt += "x"
	}
	nt += m.To.Notation()
	if m.IsPromote != KindNone {
		nt += m.IsPromote.SymbolAlgebra()
	}
	if m.IsEnPassant {
		nt += " e.p."
	}
	return nt
}

func (m Move) UCI() string {
	return m.From.Notation() + m.To.Notation() + m.IsPromote.SymbolUCI()
}
