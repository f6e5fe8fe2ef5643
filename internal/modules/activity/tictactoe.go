package activity

import (
	"errors"
	"math/rand"
)

// Board cell marks.
const (
	cellEmpty    = " "
	cellHuman    = "X"
	cellComputer = "O"
)

const boardSize = 9

// ErrInvalidMove rejects an out-of-range index, an occupied target cell, or
// a board that is not a valid 9-cell grid.
var ErrInvalidMove = errors.New("Invalid move")

// winningTriples are the 3 rows, 3 columns, and 2 diagonals.
var winningTriples = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// GameResult carries the mutated board and the call's terminal state. The
// board is the caller's to round-trip; no game state lives server-side.
type GameResult struct {
	Board   []string `json:"board"`
	Status  string   `json:"status"` // "win" | "lose" | "draw" | "continue"
	Message string   `json:"message"`
}

// Game is the tic-tac-toe move engine. The zero value is not usable; build
// with NewGame.
type Game struct {
	intn func(n int) int
}

func NewGame() *Game {
	return &Game{intn: rand.Intn}
}

// Play applies the human move, then a uniformly random computer move,
// checking for win/draw after each. The input board is not modified; the
// result holds a fresh copy.
func (g *Game) Play(board []string, move int) (*GameResult, error) {
	if len(board) != boardSize {
		return nil, ErrInvalidMove
	}
	for _, cell := range board {
		if cell != cellEmpty && cell != cellHuman && cell != cellComputer {
			return nil, ErrInvalidMove
		}
	}
	if move < 0 || move >= boardSize || board[move] != cellEmpty {
		return nil, ErrInvalidMove
	}

	next := make([]string, boardSize)
	copy(next, board)

	next[move] = cellHuman
	if hasWon(next, cellHuman) {
		return &GameResult{Board: next, Status: "win", Message: "You win!"}, nil
	}
	empty := emptyCells(next)
	if len(empty) == 0 {
		return &GameResult{Board: next, Status: "draw", Message: "It's a draw!"}, nil
	}

	next[empty[g.intn(len(empty))]] = cellComputer
	if hasWon(next, cellComputer) {
		return &GameResult{Board: next, Status: "lose", Message: "Computer wins!"}, nil
	}
	if len(emptyCells(next)) == 0 {
		return &GameResult{Board: next, Status: "draw", Message: "It's a draw!"}, nil
	}

	return &GameResult{Board: next, Status: "continue", Message: "Game continues"}, nil
}

func hasWon(board []string, player string) bool {
	for _, triple := range winningTriples {
		if board[triple[0]] == player && board[triple[1]] == player && board[triple[2]] == player {
			return true
		}
	}
	return false
}

func emptyCells(board []string) []int {
	cells := make([]int, 0, boardSize)
	for i, cell := range board {
		if cell == cellEmpty {
			cells = append(cells, i)
		}
	}
	return cells
}
