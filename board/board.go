package board

import (
	"fmt"
	"strings"

	"arbiter/position"
)

const (
	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// TotalCells is the size of the 0x88 board array. Half of the slots are
	// off-board padding; the gaps make edge detection a single mask test.
	TotalCells = 128

	flagNoEnPassant position.Pos = -1
)

// Board is the canonical position state: a 0x88 piece array plus the
// bookkeeping fields required to continue play from it.
type Board struct {
	cells [TotalCells]Piece

	turn          Side
	castleRights  CastleRights
	enPassant     position.Pos
	halfMoveClock uint8
	fullMoveClock uint16
}

type boardConfig struct {
	fen string
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
	}
}

func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{
		fen: DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}

	b := &Board{}
	if err := UnmarshalFEN(cfg.fen, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) Turn() Side {
	return b.turn
}

func (b *Board) CastleRights() CastleRights {
	return b.castleRights
}

func (b *Board) EnPassant() position.Pos {
	return b.enPassant
}

func (b *Board) HalfMoveClock() uint8 {
	return b.halfMoveClock
}

func (b *Board) FullMoveClock() uint16 {
	return b.fullMoveClock
}

// GetPiece returns the piece on the given square, PieceNone when empty or
// off-board.
func (b *Board) GetPiece(pos position.Pos) Piece {
	if !pos.OnBoard() {
		return PieceNone
	}
	return b.cells[pos]
}

func (b *Board) Clone() *Board {
	bb := *b
	return &bb
}

// Undo records everything Apply destroys that cannot be recomputed from the
// move alone. Unapply needs the exact record returned by the matching Apply.
type Undo struct {
	Captured      Piece
	CastleRights  CastleRights
	EnPassant     position.Pos
	HalfMoveClock uint8
}

// Apply mutates the board in place and returns the undo record. The move
// must have been generated against this exact position; Apply does not
// re-validate it.
func (b *Board) Apply(mv Move) Undo {
	u := Undo{
		CastleRights:  b.castleRights,
		EnPassant:     b.enPassant,
		HalfMoveClock: b.halfMoveClock,
	}
	us := b.turn

	// capture first: the en passant victim does not sit on the target square
	if mv.IsEnPassant {
		capPos := enPassantVictim(mv.To, us)
		u.Captured = b.cells[capPos]
		b.cells[capPos] = PieceNone
	} else if mv.IsCapture {
		u.Captured = b.cells[mv.To]
	}

	// relocate the mover
	b.cells[mv.From] = PieceNone
	b.cells[mv.To] = mv.Piece
	if mv.IsPromote != KindNone {
		b.cells[mv.To] = NewPiece(us, mv.IsPromote)
	}
	if mv.IsCastle != CastleDirectionUnknown {
		hop := posCastlingRook[mv.IsCastle]
		b.cells[hop[1]] = b.cells[hop[0]]
		b.cells[hop[0]] = PieceNone
	}

	// revoke castle rights: king moves drop both of the mover's rights, and
	// any move touching a rook home square drops that right, even when the
	// piece moving is not the rook
	if mv.Piece.Kind() == KindKing {
		for _, d := range sideCastleDirections[us] {
			b.castleRights.Set(d, false)
		}
	}
	for _, rh := range posRookHomeRights {
		if mv.From == rh.pos || mv.To == rh.pos {
			b.castleRights.Set(rh.d, false)
		}
	}

	// en passant target appears only after a two-square pawn push
	b.enPassant = flagNoEnPassant
	if mv.Piece.Kind() == KindPawn {
		if d := mv.To - mv.From; d == 0x20 || d == -0x20 {
			b.enPassant = (mv.From + mv.To) / 2
		}
	}

	if mv.Piece.Kind() == KindPawn || mv.IsCapture {
		b.halfMoveClock = 0
	} else {
		b.halfMoveClock++
	}

	if us == SideBlack {
		b.fullMoveClock++
	}
	b.turn = us.Opposite()

	return u
}

// Unapply reverts a move applied by Apply, restoring every mutated field.
func (b *Board) Unapply(mv Move, u Undo) {
	b.turn = b.turn.Opposite()
	us := b.turn

	if us == SideBlack {
		b.fullMoveClock--
	}
	b.castleRights = u.CastleRights
	b.enPassant = u.EnPassant
	b.halfMoveClock = u.HalfMoveClock

	if mv.IsCastle != CastleDirectionUnknown {
		hop := posCastlingRook[mv.IsCastle]
		b.cells[hop[0]] = b.cells[hop[1]]
		b.cells[hop[1]] = PieceNone
	}
	b.cells[mv.From] = mv.Piece
	b.cells[mv.To] = PieceNone
	if mv.IsEnPassant {
		b.cells[enPassantVictim(mv.To, us)] = u.Captured
	} else if mv.IsCapture {
		b.cells[mv.To] = u.Captured
	}
}

// enPassantVictim is the square of the pawn removed by an en passant capture
// landing on to: one rank behind the target, from the mover's perspective.
func enPassantVictim(to position.Pos, mover Side) position.Pos {
	if mover == SideWhite {
		return to - 0x10
	}
	return to + 0x10
}

type State uint8

const (
	StateUnknown State = iota

	// StateRunning is when the side to move has legal moves and is not in check.
	StateRunning

	// StateCheck is when the side to move is in check but can still move.
	StateCheck

	// StateCheckmate is when the side to move is in check with no legal moves.
	StateCheckmate

	// StateStalemate is when the side to move has no legal moves and is not in check.
	StateStalemate

	// StateFiftyMoveViolated is when 50 full moves passed without a capture
	// or pawn move.
	StateFiftyMoveViolated
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "StateRunning"
	case StateCheck:
		return "StateCheck"
	case StateCheckmate:
		return "StateCheckmate"
	case StateStalemate:
		return "StateStalemate"
	case StateFiftyMoveViolated:
		return "StateFiftyMoveViolated"
	default:
		return "StateUnknown"
	}
}

func (s State) IsRunning() bool {
	return s == StateRunning || s == StateCheck
}

// State classifies the position for the side to move.
func (b *Board) State() State {
	hasMoves := len(b.GenerateLegalMoves()) != 0
	checked := b.IsKingChecked(b.turn)
	switch {
	case checked && !hasMoves:
		return StateCheckmate
	case checked:
		return StateCheck
	case !hasMoves:
		return StateStalemate
	}
	// checkmate takes precedence over the 50 move rule
	if b.halfMoveClock >= 100 {
		return StateFiftyMoveViolated
	}
	return StateRunning
}

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for rank := position.Pos(position.Height) - 1; rank >= 0; rank-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", rank+1))
		for file := position.Pos(0); file < position.Width; file++ {
			sym := b.cells[position.NewPos(file, rank)].SymbolFEN()
			if sym == "" {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for file := position.Pos(0); file < position.Width; file++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", file.NotationComponentFile()))
	}
	return builder.String()
}

func (b *Board) Draw() string {
	builder := strings.Builder{}
	for rank := position.Pos(position.Height) - 1; rank >= 0; rank-- {
		_, _ = builder.WriteString(fmt.Sprintf("\033[1m %d \033[0m", rank+1))
		for file := position.Pos(0); file < position.Width; file++ {
			sym := b.cells[position.NewPos(file, rank)].SymbolUnicode()
			if sym == "" {
				sym = " "
			}
			var cell string
			if file%2^rank%2 == 0 {
				cell = "\033[38;5;233;48;5;77m"
			} else {
				cell = "\033[38;5;233;48;5;194m"
			}
			cell += fmt.Sprintf(" %s ", sym) + "\033[0m"
			builder.WriteString(cell)
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for file := position.Pos(0); file < position.Width; file++ {
		_, _ = builder.WriteString(fmt.Sprintf("\033[1m %s \033[0m", file.NotationComponentFile()))
	}
	return builder.String()
}

func (b *Board) DebugString() string {
	return fmt.Sprintf("cast: %04b\nhalf: %4d\nfull: %4d\nstat: %s", b.castleRights, b.halfMoveClock, b.fullMoveClock, b.State())
}
