package board

import "arbiter/position"

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteRight
	CastleDirectionWhiteLeft
	CastleDirectionBlackRight
	CastleDirectionBlackLeft
)

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteRight:
		return "White 0-0"
	case CastleDirectionWhiteLeft:
		return "White 0-0-0"
	case CastleDirectionBlackRight:
		return "Black 0-0"
	case CastleDirectionBlackLeft:
		return "Black 0-0-0"
	default:
		return ""
	}
}

func (d CastleDirection) IsWhite() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionWhiteLeft
}

func (d CastleDirection) IsRight() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionBlackRight
}

type CastleRights uint8

var maskCastleRights = [4 + 1]CastleRights{
	CastleDirectionWhiteRight: 0b1000,
	CastleDirectionWhiteLeft:  0b0100,
	CastleDirectionBlackRight: 0b0010,
	CastleDirectionBlackLeft:  0b0001,
}

func (c *CastleRights) Set(d CastleDirection, allow bool) {
	if allow {
		*c |= maskCastleRights[d]
	} else {
		*c &^= maskCastleRights[d]
	}
}

func (c CastleRights) IsAllowed(d CastleDirection) bool {
	return c&maskCastleRights[d] != 0
}

func (c CastleRights) IsSideAllowed(s Side) bool {
	if s == SideWhite {
		return c&(maskCastleRights[CastleDirectionWhiteLeft]|maskCastleRights[CastleDirectionWhiteRight]) != 0
	}
	return c&(maskCastleRights[CastleDirectionBlackLeft]|maskCastleRights[CastleDirectionBlackRight]) != 0
}

var (
	sideCastleDirections = map[Side][2]CastleDirection{
		SideWhite: {CastleDirectionWhiteRight, CastleDirectionWhiteLeft},
		SideBlack: {CastleDirectionBlackRight, CastleDirectionBlackLeft},
	}

	// posCastlingKing and posCastlingRook hold the {from, to} hops of the
	// king and rook for each castle direction.
	posCastlingKing = [4 + 1][2]position.Pos{
		CastleDirectionWhiteRight: {position.E1, position.G1},
		CastleDirectionWhiteLeft:  {position.E1, position.C1},
		CastleDirectionBlackRight: {position.E8, position.G8},
		CastleDirectionBlackLeft:  {position.E8, position.C8},
	}
	posCastlingRook = [4 + 1][2]position.Pos{
		CastleDirectionWhiteRight: {position.H1, position.F1},
		CastleDirectionWhiteLeft:  {position.A1, position.D1},
		CastleDirectionBlackRight: {position.H8, position.F8},
		CastleDirectionBlackLeft:  {position.A8, position.D8},
	}

	// posCastlingEmpty are the squares between king and rook that must be
	// vacant; posCastlingSafe are the squares the king occupies or crosses,
	// which must not be attacked by the opponent.
	posCastlingEmpty = [4 + 1][]position.Pos{
		CastleDirectionWhiteRight: {position.F1, position.G1},
		CastleDirectionWhiteLeft:  {position.D1, position.C1, position.B1},
		CastleDirectionBlackRight: {position.F8, position.G8},
		CastleDirectionBlackLeft:  {position.D8, position.C8, position.B8},
	}
	posCastlingSafe = [4 + 1][]position.Pos{
		CastleDirectionWhiteRight: {position.E1, position.F1, position.G1},
		CastleDirectionWhiteLeft:  {position.E1, position.D1, position.C1},
		CastleDirectionBlackRight: {position.E8, position.F8, position.G8},
		CastleDirectionBlackLeft:  {position.E8, position.D8, position.C8},
	}

	// posRookHomeRights maps each rook home square to the castle right it
	// anchors. Any move touching one of these squares revokes the right,
	// whether or not the rook itself moved.
	posRookHomeRights = [...]struct {
		pos position.Pos
		d   CastleDirection
	}{
		{position.H1, CastleDirectionWhiteRight},
		{position.A1, CastleDirectionWhiteLeft},
		{position.H8, CastleDirectionBlackRight},
		{position.A8, CastleDirectionBlackLeft},
	}
)
