package engine

import (
	"fmt"
	"strings"
	"testing"

	"arbiter/board"
)

func quietEngine() *Engine {
	return NewEngine(&EngineConfig{Logger: func(...any) {}})
}

func TestEvaluateMaterial(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
		want int16
	}{
		{
			name: "starting position is balanced",
			fen:  board.DefaultStartingPositionFEN,
			want: 0,
		},
		{
			name: "extra rook for the side to move",
			fen:  "7k/8/8/8/8/8/8/R6K w - - 0 1",
			want: 500,
		},
		{
			name: "extra rook against the side to move",
			fen:  "7k/8/8/8/8/8/8/R6K b - - 0 1",
			want: -500,
		},
		{
			name: "mixed material",
			fen:  "1n5k/8/8/8/8/8/8/QB5K w - - 0 1",
			want: 900 + 350 - 320,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := board.NewBoard(board.WithFEN(tt.fen))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if got := quietEngine().Evaluate(b); got != tt.want {
				t.Errorf("unexpected evaluation: got=%d want=%d", got, tt.want)
			}
		})
	}
}

func TestSearchFindsMateInOne(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		fen      string
		wantMove string
	}{
		{
			name:     "back rank mate for white",
			fen:      "6k1/5ppp/8/8/8/8/8/4R1K1 w - - 0 1",
			wantMove: "e1e8",
		},
		{
			name:     "back rank mate for black",
			fen:      "4r1k1/8/8/8/8/8/5PPP/6K1 b - - 0 1",
			wantMove: "e8e1",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := board.NewBoard(board.WithFEN(tt.fen))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			mv, score, err := quietEngine().Search(b, 2)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if got := mv.UCI(); got != tt.wantMove {
				t.Errorf("unexpected best move: got=%s want=%s", got, tt.wantMove)
			}
			if want := scoreCheckmate - 1; score != want {
				t.Errorf("unexpected score: got=%d want=%d", score, want)
			}
		})
	}
}

func TestSearchIsDeterministic(t *testing.T) {
	t.Parallel()
	b, err := board.NewBoard(board.WithFEN("r3k2r/1bppqppp/p1n2n2/2b1p3/B3P3/2NP1N2/1PP2PPP/R1BQ1RK1 b kq - 2 10"))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	mv1, score1, err := quietEngine().Search(b, 3)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	mv2, score2, err := quietEngine().Search(b, 3)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	if !mv1.Equals(mv2) {
		t.Errorf("unexpected best move divergence: %s vs %s", mv1.UCI(), mv2.UCI())
	}
	if score1 != score2 {
		t.Errorf("unexpected score divergence: %d vs %d", score1, score2)
	}
}

func TestSearchLeavesBoardUntouched(t *testing.T) {
	t.Parallel()
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if _, _, err := quietEngine().Search(b, 2); err != nil {
		t.Fatal("unexpected error:", err)
	}
	gotFEN, err := board.MarshalFEN(b)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if gotFEN != fen {
		t.Errorf("search mutated the board: got=%s want=%s", gotFEN, fen)
	}
}

func TestSearchRejectsDeadPositions(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
	}{
		{name: "stalemate", fen: "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"},
		{name: "checkmate", fen: "4R1k1/5ppp/8/8/8/8/8/6K1 b - - 0 1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := board.NewBoard(board.WithFEN(tt.fen))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if _, _, err := quietEngine().Search(b, 2); err == nil {
				t.Error("error expected: got=nil")
			}
		})
	}
}

func TestSearchRejectsZeroDepth(t *testing.T) {
	t.Parallel()
	b, err := board.NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if _, _, err := quietEngine().Search(b, 0); err == nil {
		t.Error("error expected: got=nil")
	}
}

// plainNegamax is negamax without pruning. Alpha-beta over the full window
// must return exactly the same value; it may only visit fewer nodes.
func plainNegamax(e *Engine, b *board.Board, depth, dist uint8) int16 {
	if depth == 0 {
		return e.Evaluate(b)
	}
	mvs := b.GenerateLegalMoves()
	if len(mvs) == 0 {
		if b.IsKingChecked(b.Turn()) {
			return -(scoreCheckmate - int16(dist))
		}
		return 0
	}
	best := -ScoreInfinite
	for _, mv := range mvs {
		u := b.Apply(mv)
		if score := -plainNegamax(e, b, depth-1, dist+1); score > best {
			best = score
		}
		b.Unapply(mv, u)
	}
	return best
}

func TestNegamaxPruningPreservesValue(t *testing.T) {
	t.Parallel()
	fens := []string{
		board.DefaultStartingPositionFEN,
		"r3k2r/1bppqppp/p1n2n2/2b1p3/B3P3/2NP1N2/1PP2PPP/R1BQ1RK1 b kq - 2 10",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}

	for _, fen := range fens {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			b, err := board.NewBoard(board.WithFEN(fen))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}

			e := quietEngine()
			var pvl PVLine
			got := e.negamax(b, &pvl, 3, 0, -ScoreInfinite, ScoreInfinite)
			want := plainNegamax(e, b, 3, 0)
			if got != want {
				t.Errorf("unexpected pruned value: got=%d want=%d", got, want)
			}
		})
	}
}

func TestSearchLogsUCIInfo(t *testing.T) {
	t.Parallel()
	b, err := board.NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	var lines []string
	e := NewEngine(&EngineConfig{Logger: func(a ...any) {
		lines = append(lines, fmt.Sprint(a...))
	}})
	if _, _, err := e.Search(b, 2); err != nil {
		t.Fatal("unexpected error:", err)
	}

	if len(lines) != 1 {
		t.Fatalf("unexpected log line count: got=%d want=1", len(lines))
	}
	if !strings.HasPrefix(lines[0], "info depth 2 score cp ") {
		t.Errorf("unexpected log line: %s", lines[0])
	}
	if !strings.Contains(lines[0], " pv ") {
		t.Errorf("log line carries no pv: %s", lines[0])
	}
}

func TestPVLine(t *testing.T) {
	t.Parallel()
	b, err := board.NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	e2e4, err := b.MoveFromUCI("e2e4")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	b.Apply(e2e4)
	e7e5, err := b.MoveFromUCI("e7e5")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	var tail, pvl PVLine
	tail.Set(e7e5, PVLine{})
	pvl.Set(e2e4, tail)

	if pvl.Len() != 2 {
		t.Errorf("unexpected length: got=%d want=2", pvl.Len())
	}
	if !pvl.GetPV().Equals(e2e4) {
		t.Errorf("unexpected head move: got=%s", pvl.GetPV().UCI())
	}
	if got := pvl.StringUCI(); got != "e2e4 e7e5" {
		t.Errorf("unexpected pv string: got=%q want=%q", got, "e2e4 e7e5")
	}

	pvl.Clear()
	if pvl.Len() != 0 || !pvl.GetPV().IsNull() {
		t.Error("clear did not empty the line")
	}
}

func TestFormatScoreUCI(t *testing.T) {
	t.Parallel()
	tests := []struct {
		score int16
		want  string
	}{
		{score: 0, want: "cp 0"},
		{score: 125, want: "cp 125"},
		{score: -350, want: "cp -350"},
		{score: scoreCheckmate - 1, want: "mate 1"},
		{score: scoreCheckmate - 2, want: "mate 1"},
		{score: scoreCheckmate - 3, want: "mate 2"},
		{score: -(scoreCheckmate - 2), want: "mate -1"},
		{score: -(scoreCheckmate - 4), want: "mate -2"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := formatScoreUCI(tt.score); got != tt.want {
				t.Errorf("unexpected format: got=%q want=%q", got, tt.want)
			}
		})
	}
}
