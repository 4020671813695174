package engine

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"

	"arbiter/board"
)

const (
	ScoreInfinite int16 = math.MaxInt16

	// MaxDepth bounds the search recursion; callers asking for more are
	// clamped rather than rejected.
	MaxDepth uint8 = 64

	scoreCheckmate = ScoreInfinite - 1
)

func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

// PVLine records the principal variation: the line of play the search
// currently believes is best. It is rebuilt on every Search call and never
// persisted across calls.
type PVLine struct {
	mvs []board.Move
}

func (pvl *PVLine) GetPV() board.Move {
	if len(pvl.mvs) == 0 {
		return board.Move{}
	}
	return pvl.mvs[0]
}

func (pvl *PVLine) Set(mv board.Move, nextPVL PVLine) {
	if pvl == nil {
		return
	}
	pvl.mvs = append([]board.Move{mv}, nextPVL.mvs...)
}

func (pvl *PVLine) Clear() {
	pvl.mvs = pvl.mvs[:0] // memory not released for GC
}

func (pvl *PVLine) Len() int {
	return len(pvl.mvs)
}

func (pvl *PVLine) StringUCI() string {
	if pvl == nil {
		return ""
	}
	builder := strings.Builder{}
	for i, mv := range pvl.mvs {
		_, _ = builder.WriteString(mv.UCI())
		if i < len(pvl.mvs)-1 {
			_, _ = builder.WriteRune(' ')
		}
	}
	return builder.String()
}

type EngineConfig struct {
	Logger func(...any)
}

type Engine struct {
	nodes  uint32
	logger func(...any)
}

func NewEngine(cfg *EngineConfig) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = DefaultLogger
	}
	return &Engine{
		logger: cfg.Logger,
	}
}

// Search runs a fixed-depth negamax search over the full window and returns
// the best move with its centipawn score. The board is explored with
// Apply/Unapply and left exactly as given. Search runs to completion on the
// calling goroutine; a caller that wants bounded time must bound depth.
func (e *Engine) Search(b *board.Board, depth uint8) (board.Move, int16, error) {
	depth = min(depth, MaxDepth)
	if depth == 0 {
		return board.Move{}, 0, errors.New("zero search depth")
	}

	var pvl PVLine
	e.nodes = 0
	score := e.negamax(b, &pvl, depth, 0, -ScoreInfinite, ScoreInfinite)
	bestMove := pvl.GetPV()
	if bestMove.IsNull() {
		return board.Move{}, score, fmt.Errorf("cannot resolve best move: %s", b.State())
	}

	e.logger(fmt.Sprintf("info depth %d score %s nodes %d pv %s",
		depth, formatScoreUCI(score), e.nodes, pvl.StringUCI()))
	return bestMove, score, nil
}

// negamax explores the move tree with alpha-beta pruning. Each ply negates
// and swaps the child's bounds; pruning only reduces the work done, never
// the returned value.
func (e *Engine) negamax(b *board.Board, pvl *PVLine, depth, dist uint8, alpha, beta int16) int16 {
	e.nodes++

	if depth == 0 {
		return e.Evaluate(b)
	}

	mvs := b.GenerateLegalMoves()
	if len(mvs) == 0 {
		if b.IsKingChecked(b.Turn()) {
			// checkmate, preferring the shorter mate
			return -(scoreCheckmate - int16(dist))
		}
		// stalemate
		return 0
	}

	var childPVL PVLine
	bestScore := -ScoreInfinite
	for _, mv := range mvs {
		u := b.Apply(mv)
		score := -e.negamax(b, &childPVL, depth-1, dist+1, -beta, -alpha)
		b.Unapply(mv, u)

		if score > bestScore {
			bestScore = score
		}
		if score >= beta {
			break // fail-hard cutoff
		}
		if score > alpha {
			alpha = score
			pvl.Set(mv, childPVL)
		}
		childPVL.Clear()
	}

	return bestScore
}

func min[T constraints.Ordered](x1, x2 T) T {
	if x1 < x2 {
		return x1
	}
	return x2
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return x * -1
	}
	return x
}

func formatScoreUCI(s int16) string {
	if abs(s) >= scoreCheckmate-int16(MaxDepth) {
		plies := scoreCheckmate - abs(s)
		mate := (plies + 1) / 2
		if s < 0 {
			mate = -mate
		}
		return fmt.Sprintf("mate %d", mate)
	}
	return fmt.Sprintf("cp %d", s)
}
