package main

import (
	"fmt"

	"arbiter/board"
	"arbiter/engine"
)

func search(fen string, depth int) error {
	if depth < 1 || depth > int(engine.MaxDepth) {
		return fmt.Errorf("search depth must be within 1..%d", engine.MaxDepth)
	}
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Println(b.Draw())
	fmt.Println("to move:", b.Turn())

	e := engine.NewEngine(&engine.EngineConfig{})
	mv, _, err := e.Search(b, uint8(depth))
	if err != nil {
		return err
	}

	fmt.Printf("bestmove %s\n", mv.UCI())
	return nil
}
