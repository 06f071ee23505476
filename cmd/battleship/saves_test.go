package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-battleship/internal/board"
)

func TestPrintBoards(t *testing.T) {
	var player, opponent board.Grid
	player.Set(0, 0, board.Ship)
	player.Set(1, 0, board.Hit)
	opponent.Set(9, 9, board.Miss)

	var buf bytes.Buffer
	printBoards(&buf, &player, &opponent)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2+board.Size {
		t.Fatalf("expected %d lines, got %d", 2+board.Size, len(lines))
	}
	if !strings.HasPrefix(lines[1], "   A B C D E F G H I J") {
		t.Errorf("header = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], " 1 # X . ") {
		t.Errorf("row 1 = %q", lines[2])
	}
	if !strings.HasSuffix(lines[11], "10 . . . . . . . . . o") {
		t.Errorf("row 10 = %q", lines[11])
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0123456789abcdef"); got != "01234567" {
		t.Errorf("shortID = %q", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("shortID = %q", got)
	}
}
