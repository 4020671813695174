package main

import (
	"errors"
	"strings"
	"testing"

	"arbiter/board"
)

func TestRealMainArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    string
		wantErr bool
	}{
		{
			name: "perft with a space-split fen",
			args: board.DefaultStartingPositionFEN + " 1",
		},
		{
			name: "divide perft",
			args: "--divide " + board.DefaultStartingPositionFEN + " 1",
		},
		{
			name: "pseudo-legal dump",
			args: "--divide-pseudo " + board.DefaultStartingPositionFEN + " 0",
		},
		{
			name: "search",
			args: "--search " + board.DefaultStartingPositionFEN + " 2",
		},
		{
			name:    "depth missing",
			args:    "onlyonearg",
			wantErr: true,
		},
		{
			name:    "depth not a number",
			args:    board.DefaultStartingPositionFEN + " abc",
			wantErr: true,
		},
		{
			name:    "negative depth",
			args:    board.DefaultStartingPositionFEN + " -3",
			wantErr: true,
		},
		{
			name:    "search at depth zero",
			args:    "--search " + board.DefaultStartingPositionFEN + " 0",
			wantErr: true,
		},
		{
			name:    "bad fen",
			args:    "notafen 1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := realMain(strings.Fields(tt.args))
			if tt.wantErr {
				if err == nil {
					t.Error("error expected: got=nil")
				}
				return
			}
			if err != nil {
				t.Error("unexpected error:", err)
			}
		})
	}
}

func TestRealMainUsage(t *testing.T) {
	if err := realMain([]string{"onlyonearg"}); !errors.Is(err, errUsage) {
		t.Errorf("unexpected error: got=%v want=%v", err, errUsage)
	}
}
