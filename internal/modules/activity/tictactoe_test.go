package activity

import (
	"errors"
	"testing"
)

func emptyBoard() []string {
	board := make([]string, boardSize)
	for i := range board {
		board[i] = cellEmpty
	}
	return board
}

func newTestGame(picks ...int) *Game {
	g := NewGame()
	i := 0
	g.intn = func(n int) int {
		if i >= len(picks) {
			return 0
		}
		p := picks[i]
		i++
		return p
	}
	return g
}

func TestPlayInvalidMoves(t *testing.T) {
	occupied := emptyBoard()
	occupied[4] = cellComputer

	tests := []struct {
		name  string
		board []string
		move  int
	}{
		{"negative index", emptyBoard(), -1},
		{"index too large", emptyBoard(), 9},
		{"occupied cell", occupied, 4},
		{"short board", make([]string, 8), 0},
		{"long board", make([]string, 10), 0},
		{"bad cell value", []string{"Z", " ", " ", " ", " ", " ", " ", " ", " "}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGame().Play(tt.board, tt.move); !errors.Is(err, ErrInvalidMove) {
				t.Errorf("Play() error = %v, want ErrInvalidMove", err)
			}
		})
	}
}

func TestPlayHumanWin(t *testing.T) {
	board := []string{
		"X", "X", " ",
		"O", "O", " ",
		" ", " ", " ",
	}

	result, err := NewGame().Play(board, 2)
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if result.Status != "win" {
		t.Errorf("result.Status = %q, want %q", result.Status, "win")
	}
	if result.Message != "You win!" {
		t.Errorf("result.Message = %q, want %q", result.Message, "You win!")
	}
	if result.Board[2] != cellHuman {
		t.Errorf("result.Board[2] = %q, want %q", result.Board[2], cellHuman)
	}
}

func TestPlayComputerWin(t *testing.T) {
	// Computer holds 3 and 4; cell 5 completes its row. After the human
	// move at 7 the empty cells are [5 8]; pick index 0 selects 5.
	board := []string{
		"X", "X", "O",
		"O", "O", " ",
		"X", " ", " ",
	}

	result, err := newTestGame(0).Play(board, 7)
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if result.Status != "lose" {
		t.Errorf("result.Status = %q, want %q (board %v)", result.Status, "lose", result.Board)
	}
	if result.Message != "Computer wins!" {
		t.Errorf("result.Message = %q, want %q", result.Message, "Computer wins!")
	}
}

func TestPlayDrawOnHumanMove(t *testing.T) {
	// Last empty cell; placing X fills the board with no winner.
	board := []string{
		"X", "O", "X",
		"X", "O", "O",
		"O", "X", " ",
	}

	result, err := NewGame().Play(board, 8)
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if result.Status != "draw" {
		t.Errorf("result.Status = %q, want %q", result.Status, "draw")
	}
	if result.Message != "It's a draw!" {
		t.Errorf("result.Message = %q, want %q", result.Message, "It's a draw!")
	}
}

func TestPlayDrawOnComputerMove(t *testing.T) {
	// Two empty cells; after X at 8 and O at 6 the board is full with no
	// winner.
	board := []string{
		"X", "O", "X",
		"X", "O", "O",
		" ", "X", " ",
	}

	result, err := newTestGame(0).Play(board, 8)
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if result.Status != "draw" {
		t.Errorf("result.Status = %q, want %q (board %v)", result.Status, "draw", result.Board)
	}
}

func TestPlayContinues(t *testing.T) {
	result, err := newTestGame(0).Play(emptyBoard(), 4)
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if result.Status != "continue" {
		t.Errorf("result.Status = %q, want %q", result.Status, "continue")
	}
	if result.Message != "Game continues" {
		t.Errorf("result.Message = %q, want %q", result.Message, "Game continues")
	}

	var humans, computers int
	for _, cell := range result.Board {
		switch cell {
		case cellHuman:
			humans++
		case cellComputer:
			computers++
		}
	}
	if humans != 1 || computers != 1 {
		t.Errorf("board has %d X and %d O, want 1 and 1 (board %v)", humans, computers, result.Board)
	}
	if result.Board[4] != cellHuman {
		t.Errorf("result.Board[4] = %q, want %q", result.Board[4], cellHuman)
	}
}

func TestPlayDoesNotMutateInput(t *testing.T) {
	board := emptyBoard()

	if _, err := NewGame().Play(board, 0); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	for i, cell := range board {
		if cell != cellEmpty {
			t.Errorf("input board[%d] = %q after Play, want empty", i, cell)
		}
	}
}

func TestHasWon(t *testing.T) {
	tests := []struct {
		name  string
		board []string
		want  bool
	}{
		{"row", []string{"X", "X", "X", " ", " ", " ", " ", " ", " "}, true},
		{"column", []string{"X", " ", " ", "X", " ", " ", "X", " ", " "}, true},
		{"diagonal", []string{"X", " ", " ", " ", "X", " ", " ", " ", "X"}, true},
		{"anti-diagonal", []string{" ", " ", "X", " ", "X", " ", "X", " ", " "}, true},
		{"no line", []string{"X", "O", "X", "O", "X", "O", "O", "X", "O"}, false},
		{"opponent line", []string{"O", "O", "O", " ", " ", " ", " ", " ", " "}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasWon(tt.board, cellHuman); got != tt.want {
				t.Errorf("hasWon(%v) = %v, want %v", tt.board, got, tt.want)
			}
		})
	}
}
