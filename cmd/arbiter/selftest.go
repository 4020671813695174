package main

import (
	"fmt"

	"github.com/fatih/color"

	"arbiter/bench"
	"arbiter/board"
)

// Reference counts obtained from https://www.chessprogramming.org/Perft_Results,
// except the en passant case, which is verified by hand.
var selfTestCases = []struct {
	name  string
	fen   string
	depth int
	want  uint64
}{
	{name: "startpos", fen: board.DefaultStartingPositionFEN, depth: 1, want: 20},
	{name: "startpos", fen: board.DefaultStartingPositionFEN, depth: 2, want: 400},
	{name: "startpos", fen: board.DefaultStartingPositionFEN, depth: 3, want: 8_902},
	{name: "startpos", fen: board.DefaultStartingPositionFEN, depth: 4, want: 197_281},
	{name: "kiwipete", fen: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", depth: 1, want: 48},
	{name: "kiwipete", fen: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", depth: 2, want: 2_039},
	{name: "endgame", fen: "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", depth: 2, want: 191},
	{name: "endgame", fen: "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", depth: 3, want: 2_812},
	{name: "promotion", fen: "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", depth: 1, want: 44},
	{name: "promotion", fen: "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", depth: 2, want: 1_486},
	{name: "enpassant", fen: "rnbqkbnr/pppppppp/8/8/3Pp3/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 1", depth: 1, want: 22},
}

// selfTest replays the built-in reference suite and reports OK or MISMATCH
// per case. Any mismatch points at a move generator or move applier defect.
func selfTest() error {
	var failed int
	for _, tc := range selfTestCases {
		nodes, err := bench.Count(tc.fen, tc.depth)
		if err != nil {
			return err
		}
		if nodes == tc.want {
			fmt.Printf("%s %-10s perft(%d)=%d\n", color.GreenString("OK      "), tc.name, tc.depth, nodes)
		} else {
			fmt.Printf("%s %-10s perft(%d)=%d want=%d fen=%q\n", color.RedString("MISMATCH"), tc.name, tc.depth, nodes, tc.want, tc.fen)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d cases mismatched", failed, len(selfTestCases))
	}
	return nil
}
