package position

import (
	"errors"
)

const (
	// Width and Height are the board dimensions the position system supports.
	Width  = 8
	Height = 8

	// OffBoardMask flags every index outside the 8x8 board. A Pos packs the
	// file into the low nibble and the rank into bits 4-6, so bit 3 of either
	// nibble is set exactly when an index has left the board. Negative
	// overflow values also trip the mask.
	OffBoardMask Pos = 0x88
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Pos is a 0x88 square index.
type Pos int16

func NewPos(file, rank Pos) Pos {
	return rank<<4 | file
}

func NewPosFromNotation(n string) (Pos, error) {
	file, rank, err := notationToFileRank(n)
	if err != nil {
		return 0, err
	}
	return NewPos(file, rank), nil
}

func (p Pos) String() string {
	return p.Notation()
}

func (p Pos) Notation() string {
	if !p.OnBoard() {
		return ""
	}
	return string(rune('a'+p.File())) + string(rune('1'+p.Rank()))
}

// OnBoard reports whether p addresses a real square.
func (p Pos) OnBoard() bool {
	return p&OffBoardMask == 0
}

func (p Pos) File() Pos {
	return p & 0x7
}

func (p Pos) Rank() Pos {
	return p >> 4
}

func notationToFileRank(n string) (Pos, Pos, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	file, err := notationToFile(n[0])
	if err != nil {
		return 0, 0, err
	}
	rank, err := notationToRank(n[1])
	if err != nil {
		return 0, 0, err
	}
	return file, rank, nil
}

func notationToFile(f byte) (Pos, error) {
	file := Pos(f - 'a')
	if file < 0 || Width <= file {
		return 0, ErrInvalidNotation
	}
	return file, nil
}

func notationToRank(r byte) (Pos, error) {
	rank := Pos(r-'0') - 1
	if rank < 0 || Height <= rank {
		return 0, ErrInvalidNotation
	}
	return rank, nil
}

func (p Pos) NotationComponentFile() string {
	if p < 0 || Width <= p {
		return ""
	}
	return string(rune('a' + p))
}

func (p Pos) NotationComponentRank() string {
	if p < 0 || Height <= p {
		return ""
	}
	return string(rune('0' + p + 1))
}
