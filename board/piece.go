package board

// Piece encodes both the piece kind and its color in a single value. All
// white pieces precede all black pieces, so classifying a non-empty piece's
// side is a single comparison.
type Piece uint8

const (
	PieceNone Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
)

// Kind is the color-free piece kind.
type Kind uint8

const (
	KindNone Kind = iota
	KindPawn
	KindKnight
	KindBishop
	KindRook
	KindQueen
	KindKing
)

// PawnPromoteCandidates represents the candidates for pawn promotion.
var PawnPromoteCandidates = []Kind{KindQueen, KindRook, KindBishop, KindKnight}

func NewPiece(s Side, k Kind) Piece {
	if k == KindNone {
		return PieceNone
	}
	switch s {
	case SideWhite:
		return Piece(k)
	case SideBlack:
		return Piece(k) + BlackPawn - WhitePawn
	default:
		return PieceNone
	}
}

func (p Piece) Side() Side {
	switch {
	case p == PieceNone:
		return SideUnknown
	case p <= WhiteKing:
		return SideWhite
	default:
		return SideBlack
	}
}

func (p Piece) Kind() Kind {
	if p == PieceNone {
		return KindNone
	}
	if p >= BlackPawn {
		return Kind(p - BlackPawn + 1)
	}
	return Kind(p)
}

func (p Piece) String() string {
	return p.Kind().Name()
}

func (k Kind) Name() string {
	switch k {
	case KindPawn:
		return "Pawn"
	case KindKnight:
		return "Knight"
	case KindBishop:
		return "Bishop"
	case KindRook:
		return "Rook"
	case KindQueen:
		return "Queen"
	case KindKing:
		return "King"
	default:
		return ""
	}
}

func (k Kind) SymbolAlgebra() string {
	if k == KindPawn {
		return ""
	}
	return NewPiece(SideWhite, k).SymbolFEN()
}

// SymbolUCI returns the lowercase promotion letter used by UCI move tokens.
func (k Kind) SymbolUCI() string {
	if k == KindNone {
		return ""
	}
	return NewPiece(SideBlack, k).SymbolFEN()
}

func (p Piece) SymbolFEN() string {
	var sym rune
	switch p.Kind() {
	case KindPawn:
		sym = 'P'
	case KindKnight:
		sym = 'N'
	case KindBishop:
		sym = 'B'
	case KindRook:
		sym = 'R'
	case KindQueen:
		sym = 'Q'
	case KindKing:
		sym = 'K'
	default:
		return ""
	}
	if p.Side() == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func pieceFromSymbolFEN(sym rune) Piece {
	switch sym {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return PieceNone
	}
}

func (p Piece) SymbolUnicode() string {
	switch p {
	case WhitePawn:
		return "♙"
	case WhiteKnight:
		return "♘"
	case WhiteBishop:
		return "♗"
	case WhiteRook:
		return "♖"
	case WhiteQueen:
		return "♕"
	case WhiteKing:
		return "♔"
	case BlackPawn:
		return "♟"
	case BlackKnight:
		return "♞"
	case BlackBishop:
		return "♝"
	case BlackRook:
		return "♜"
	case BlackQueen:
		return "♛"
	case BlackKing:
		return "♚"
	default:
		return ""
	}
}
