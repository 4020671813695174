package position

const (
	FileA Pos = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 Pos = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const (
	A1 Pos = 0x10*iota + FileA
	A2
	A3
	A4
	A5
	A6
	A7
	A8
)

const (
	B1 Pos = 0x10*iota + FileB
	B2
	B3
	B4
	B5
	B6
	B7
	B8
)

const (
	C1 Pos = 0x10*iota + FileC
	C2
	C3
	C4
	C5
	C6
	C7
	C8
)

const (
	D1 Pos = 0x10*iota + FileD
	D2
	D3
	D4
	D5
	D6
	D7
	D8
)

const (
	E1 Pos = 0x10*iota + FileE
	E2
	E3
	E4
	E5
	E6
	E7
	E8
)

const (
	F1 Pos = 0x10*iota + FileF
	F2
	F3
	F4
	F5
	F6
	F7
	F8
)

const (
	G1 Pos = 0x10*iota + FileG
	G2
	G3
	G4
	G5
	G6
	G7
	G8
)

const (
	H1 Pos = 0x10*iota + FileH
	H2
	H3
	H4
	H5
	H6
	H7
	H8
)
