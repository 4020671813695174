package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"arbiter/bench"
	"arbiter/board"
)

const (
	exitOK = iota
	exitErr
)

var errUsage = errors.New("usage: arbiter [<fen> <depth>] [--divide | --divide-pseudo | --search]")

func main() {
	err := realMain(os.Args[1:])
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain(args []string) error {
	var divide, dividePseudo, searchMode bool
	var rest []string
	for _, arg := range args {
		switch arg {
		case "--divide":
			divide = true
		case "--divide-pseudo":
			dividePseudo = true
		case "--search":
			searchMode = true
		default:
			rest = append(rest, arg)
		}
	}

	if len(rest) == 0 {
		return selfTest()
	}
	if len(rest) < 2 {
		return errUsage
	}

	// the FEN may arrive unquoted as several arguments; the depth is always
	// the last one
	depth, err := strconv.Atoi(rest[len(rest)-1])
	if err != nil || depth < 0 {
		return fmt.Errorf("invalid depth %q", rest[len(rest)-1])
	}
	fen := strings.Join(rest[:len(rest)-1], " ")

	switch {
	case dividePseudo:
		return dumpPseudoLegal(fen)
	case searchMode:
		return search(fen, depth)
	default:
		return perft(fen, depth, divide)
	}
}

func perft(fen string, depth int, divide bool) error {
	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			fmt.Println(s)
		}
	}()

	_, err := bench.Perft(depth, fen, divide, out)
	close(out)
	<-done
	return err
}

func dumpPseudoLegal(fen string) error {
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	for _, mv := range b.GeneratePseudoLegalMoves(false) {
		fmt.Println(mv.UCI())
	}
	return nil
}
