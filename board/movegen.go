package board

import (
	"errors"
	"fmt"
	"strings"

	"arbiter/position"
)

// MaxMoves caps the expected number of moves in a single position. No legal
// chess position exceeds it; buffers start at this capacity and append would
// still grow them rather than overflow silently.
const MaxMoves = 256

var ErrInvalidMove = errors.New("invalid move")

// GeneratePseudoLegalMoves emits every move obeying per-piece movement rules
// for the side to move, without verifying that the mover's own king is left
// safe. Castling is the exception: its path-emptiness and path-safety
// conditions are checked here, at generation time. With capturesOnly set,
// quiet moves are suppressed.
func (b *Board) GeneratePseudoLegalMoves(capturesOnly bool) []Move {
	mvs := make([]Move, 0, MaxMoves)
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		if !pos.OnBoard() {
			continue
		}
		p := b.cells[pos]
		if p.Side() != b.turn {
			continue
		}
		switch p.Kind() {
		case KindPawn:
			mvs = b.genPawnMoves(mvs, pos, capturesOnly)
		case KindKnight:
			mvs = b.genLeaperMoves(mvs, pos, offsetsKnight[:], capturesOnly)
		case KindBishop:
			mvs = b.genSliderMoves(mvs, pos, offsetsDiagonal[:], capturesOnly)
		case KindRook:
			mvs = b.genSliderMoves(mvs, pos, offsetsOrthogonal[:], capturesOnly)
		case KindQueen:
			mvs = b.genSliderMoves(mvs, pos, offsetsDiagonal[:], capturesOnly)
			mvs = b.genSliderMoves(mvs, pos, offsetsOrthogonal[:], capturesOnly)
		case KindKing:
			mvs = b.genLeaperMoves(mvs, pos, offsetsKing[:], capturesOnly)
			if !capturesOnly {
				mvs = b.genCastleMoves(mvs, pos)
			}
		}
	}
	return mvs
}

// GenerateLegalMoves generates pseudo-legal moves and discards every move
// that leaves the mover's own king in check.
func (b *Board) GenerateLegalMoves() []Move {
	pseudo := b.GeneratePseudoLegalMoves(false)
	mvs := make([]Move, 0, len(pseudo))
	for _, mv := range pseudo {
		if b.IsLegal(mv) {
			mvs = append(mvs, mv)
		}
	}
	return mvs
}

// IsLegal reports whether applying the pseudo-legal move keeps the mover's
// king out of check. The board is restored before returning.
func (b *Board) IsLegal(mv Move) bool {
	us := b.turn
	u := b.Apply(mv)
	legal := !b.IsKingChecked(us)
	b.Unapply(mv, u)
	return legal
}

func (b *Board) genPawnMoves(mvs []Move, from position.Pos, capturesOnly bool) []Move {
	p := b.cells[from]
	dir, startRank, promoRank := position.Pos(0x10), position.Rank2, position.Rank8
	if b.turn == SideBlack {
		dir, startRank, promoRank = -0x10, position.Rank7, position.Rank1
	}

	emit := func(to position.Pos, capture, enPassant bool) []Move {
		mv := Move{From: from, To: to, Piece: p, IsCapture: capture, IsEnPassant: enPassant}
		if to.Rank() == promoRank {
			for _, prom := range PawnPromoteCandidates {
				mv.IsPromote = prom
				mvs = append(mvs, mv)
			}
			return mvs
		}
		return append(mvs, mv)
	}

	if one := from + dir; one.OnBoard() && b.cells[one] == PieceNone {
		if !capturesOnly {
			mvs = emit(one, false, false)
			if two := one + dir; from.Rank() == startRank && b.cells[two] == PieceNone {
				mvs = emit(two, false, false)
			}
		}
	}
	for _, off := range [2]position.Pos{dir - 0x01, dir + 0x01} {
		to := from + off
		if !to.OnBoard() {
			continue
		}
		if target := b.cells[to]; target != PieceNone && target.Side() == b.turn.Opposite() {
			mvs = emit(to, true, false)
		} else if to == b.enPassant {
			mvs = emit(to, true, true)
		}
	}
	return mvs
}

func (b *Board) genLeaperMoves(mvs []Move, from position.Pos, offsets []position.Pos, capturesOnly bool) []Move {
	p := b.cells[from]
	for _, off := range offsets {
		to := from + off
		if !to.OnBoard() {
			continue
		}
		target := b.cells[to]
		if target.Side() == b.turn {
			continue
		}
		if capture := target != PieceNone; capture || !capturesOnly {
			mvs = append(mvs, Move{From: from, To: to, Piece: p, IsCapture: capture})
		}
	}
	return mvs
}

func (b *Board) genSliderMoves(mvs []Move, from position.Pos, offsets []position.Pos, capturesOnly bool) []Move {
	p := b.cells[from]
	for _, off := range offsets {
		for to := from + off; to.OnBoard(); to += off {
			target := b.cells[to]
			if target == PieceNone {
				if !capturesOnly {
					mvs = append(mvs, Move{From: from, To: to, Piece: p})
				}
				continue
			}
			if target.Side() != b.turn {
				mvs = append(mvs, Move{From: from, To: to, Piece: p, IsCapture: true})
			}
			break
		}
	}
	return mvs
}

// genCastleMoves offers a castle only when all four conditions hold at
// generation time: the rights bit is set, the path is vacant, the king is
// not in check, and no square the king crosses or lands on is attacked.
func (b *Board) genCastleMoves(mvs []Move, from position.Pos) []Move {
	if !b.castleRights.IsSideAllowed(b.turn) {
		return mvs
	}
	them := b.turn.Opposite()
	for _, d := range sideCastleDirections[b.turn] {
		if !b.castleRights.IsAllowed(d) || posCastlingKing[d][0] != from {
			continue
		}
		vacant := true
		for _, pos := range posCastlingEmpty[d] {
			if b.cells[pos] != PieceNone {
				vacant = false
				break
			}
		}
		if !vacant {
			continue
		}
		safe := true
		for _, pos := range posCastlingSafe[d] {
			if b.IsAttacked(pos, them) {
				safe = false
				break
			}
		}
		if !safe {
			continue
		}
		mvs = append(mvs, Move{
			From:     posCastlingKing[d][0],
			To:       posCastlingKing[d][1],
			Piece:    b.cells[from],
			IsCastle: d,
		})
	}
	return mvs
}

// MoveFromUCI resolves a UCI move token ("e2e4", "a7a8q") against the legal
// moves of the current position. A token that does not match any legal move
// is rejected; it is never partially trusted.
func (b *Board) MoveFromUCI(token string) (Move, error) {
	if len(token) != 4 && len(token) != 5 {
		return Move{}, fmt.Errorf("%w: malformed token %q", ErrInvalidMove, token)
	}
	from, err := position.NewPosFromNotation(token[:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}
	to, err := position.NewPosFromNotation(token[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}
	promote := KindNone
	if len(token) == 5 {
		switch strings.ToLower(token[4:]) {
		case "q":
			promote = KindQueen
		case "r":
			promote = KindRook
		case "b":
			promote = KindBishop
		case "n":
			promote = KindKnight
		default:
			return Move{}, fmt.Errorf("%w: unknown promotion %q", ErrInvalidMove, token[4:])
		}
	}

	for _, mv := range b.GenerateLegalMoves() {
		if mv.From == from && mv.To == to && mv.IsPromote == promote {
			return mv, nil
		}
	}
	return Move{}, fmt.Errorf("%w: %q is not legal here", ErrInvalidMove, token)
}
