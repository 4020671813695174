package bench

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"arbiter/board"
)

// Perft counts the leaf nodes of the legal move tree at the given depth and
// streams output lines to out. With divide set, each root move's subtree
// count is emitted so a mismatch against a reference count can be localized
// to one root move. The walk is strictly single-threaded.
func Perft(depth int, fen string, divide bool, out chan<- string) (uint64, error) {
	b, err := board.NewBoard(
		board.WithFEN(fen),
	)
	if err != nil {
		return 0, err
	}

	start := time.Now()
	nodes := runPerft(b, depth, true, divide, out)
	elapsed := time.Since(start)

	out <- message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s (%.3fs elapsed)",
			depth, nodes, int(float64(nodes)/elapsed.Seconds()), elapsed.Seconds())

	return nodes, nil
}

// Count is the silent variant of Perft, used by the self-test suite and
// tests.
func Count(fen string, depth int) (uint64, error) {
	b, err := board.NewBoard(
		board.WithFEN(fen),
	)
	if err != nil {
		return 0, err
	}
	return runPerft(b, depth, false, false, nil), nil
}

func runPerft(b *board.Board, d int, root, divide bool, out chan<- string) uint64 {
	if d <= 0 {
		return 1
	}

	var sum uint64
	for _, mv := range b.GenerateLegalMoves() {
		u := b.Apply(mv)
		child := runPerft(b, d-1, false, divide, out)
		b.Unapply(mv, u)
		if divide && root {
			out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
		}
		sum += child
	}
	return sum
}
