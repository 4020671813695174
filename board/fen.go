package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"arbiter/position"
)

var (
	ErrInvalidFEN = errors.New("invalid fen")
)

// UnmarshalFEN parses a FEN record into b. On failure b is reset to the
// empty position; it never holds a partially parsed state. The two trailing
// clock fields are optional and lenient: when absent or malformed the
// halfmove clock defaults to 0 and the fullmove number to 1.
func UnmarshalFEN(fen string, b *Board) error {
	if b == nil {
		return fmt.Errorf("invalid board")
	}
	*b = Board{enPassant: flagNoEnPassant}

	segments := strings.Split(fen, " ")
	if len(segments) < 4 || len(segments) > 6 {
		*b = Board{enPassant: flagNoEnPassant}
		return fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}
	if err := unmarshalFEN(segments, b); err != nil {
		*b = Board{enPassant: flagNoEnPassant}
		return err
	}
	return nil
}

func unmarshalFEN(segments []string, b *Board) error {
	rows := strings.Split(segments[0], "/")
	if len(rows) != position.Height {
		return fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	for i, row := range rows {
		rank := position.Pos(position.Height - 1 - i)
		file := position.Pos(0)
		for _, cell := range row {
			if file >= position.Width {
				return fmt.Errorf("%w: rank overflow", ErrInvalidFEN)
			}
			if cell != '0' && unicode.IsDigit(cell) {
				skip := position.Pos(cell - '0')
				if file+skip > position.Width {
					return fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				file += skip
				continue
			}
			p := pieceFromSymbolFEN(cell)
			if p == PieceNone {
				return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(cell))
			}
			b.cells[position.NewPos(file, rank)] = p
			file++
		}
		if file != position.Width {
			return fmt.Errorf("%w: missing cells", ErrInvalidFEN)
		}
	}

	switch segments[1] {
	case "w":
		b.turn = SideWhite
	case "b":
		b.turn = SideBlack
	default:
		return fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	if len(segments[2]) > 4 {
		return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
crLoop:
	for i, e := range segments[2] {
		switch e {
		case 'K':
			b.castleRights.Set(CastleDirectionWhiteRight, true)
		case 'k':
			b.castleRights.Set(CastleDirectionBlackRight, true)
		case 'Q':
			b.castleRights.Set(CastleDirectionWhiteLeft, true)
		case 'q':
			b.castleRights.Set(CastleDirectionBlackLeft, true)
		default:
			if i == 0 && e == '-' {
				break crLoop
			}
			return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
		}
	}

	if segments[3] != "-" {
		pos, err := position.NewPosFromNotation(segments[3])
		if err != nil {
			return fmt.Errorf("%w: invalid enpassant position: %v", ErrInvalidFEN, err)
		}
		if r := pos.Rank(); r != position.Rank3 && r != position.Rank6 {
			return fmt.Errorf("%w: invalid enpassant position", ErrInvalidFEN)
		}
		b.enPassant = pos
	}

	// lenient tail parse
	b.fullMoveClock = 1
	if len(segments) >= 5 {
		if halfMoveClock, err := strconv.ParseUint(segments[4], 10, 8); err == nil {
			b.halfMoveClock = uint8(halfMoveClock)
		}
	}
	if len(segments) >= 6 {
		if fullMoveClock, err := strconv.ParseUint(segments[5], 10, 16); err == nil {
			b.fullMoveClock = uint16(fullMoveClock)
		}
	}

	return nil
}

func MarshalFEN(b *Board) (string, error) {
	if b == nil {
		return "", fmt.Errorf("invalid board")
	}
	builder := strings.Builder{}
	for rank := position.Pos(position.Height) - 1; rank >= 0; rank-- {
		var skip int
		for file := position.Pos(0); file < position.Width; file++ {
			p := b.cells[position.NewPos(file, rank)]
			if p == PieceNone {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
				skip = 0
			}
			_, _ = builder.WriteString(p.SymbolFEN())
		}
		if skip != 0 {
			_, _ = builder.WriteRune(rune(skip + '0'))
		}
		if rank > 0 {
			_, _ = builder.WriteRune('/')
		}
	}

	if b.turn == SideWhite {
		_, _ = builder.WriteString(" w ")
	} else {
		_, _ = builder.WriteString(" b ")
	}

	if b.castleRights == 0 {
		_, _ = builder.WriteRune('-')
	} else {
		if b.castleRights.IsAllowed(CastleDirectionWhiteRight) {
			_, _ = builder.WriteRune('K')
		}
		if b.castleRights.IsAllowed(CastleDirectionWhiteLeft) {
			_, _ = builder.WriteRune('Q')
		}
		if b.castleRights.IsAllowed(CastleDirectionBlackRight) {
			_, _ = builder.WriteRune('k')
		}
		if b.castleRights.IsAllowed(CastleDirectionBlackLeft) {
			_, _ = builder.WriteRune('q')
		}
	}
	_, _ = builder.WriteRune(' ')

	if b.enPassant == flagNoEnPassant {
		_, _ = builder.WriteRune('-')
	} else {
		_, _ = builder.WriteString(b.enPassant.Notation())
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", b.halfMoveClock, b.fullMoveClock))

	return builder.String(), nil
}
