package domain

import "fmt"

// MoveResult classifies what happened to an attempted move.
type MoveResult int

const (
	MoveRejected MoveResult = iota
	MoveVictory
	MoveContinues
)

// MoveOutcome is the result of Board.TryMove. Next is only meaningful
// when Result is MoveContinues; a won board state is never built.
type MoveOutcome struct {
	Result MoveResult
	Next   Board
}

// Board holds the grid plus the player whose turn it is. It is a value
// type: copying it copies the whole grid, so search branches never
// share state. Row 0 is the top, Rows-1 the bottom.
type Board struct {
	cells [Rows][Columns]PlayerID
	turn  PlayerID
}

func NewBoard() Board {
	return Board{turn: Player1}
}

func (b Board) Turn() PlayerID {
	return b.turn
}

func (b Board) Cell(row, column int) PlayerID {
	return b.cells[row][column]
}

// TurnCount is the number of disks on the board. Display aid only.
func (b Board) TurnCount() int {
	count := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			if b.cells[r][c] != Empty {
				count++
			}
		}
	}
	return count
}

func (b Board) Full() bool {
	for c := 0; c < Columns; c++ {
		if b.cells[0][c] == Empty {
			return false
		}
	}
	return true
}

// TryMove drops the current player's disk into column. A full column
// rejects the move. If the disk would complete a run of ToWin the
// outcome is MoveVictory and no successor board is built. Otherwise
// the outcome carries the new board with the turn passed on. An
// out-of-range column is a caller bug and panics; the search only ever
// generates indices inside [0, Columns).
func (b Board) TryMove(column int) MoveOutcome {
	if column < 0 || column >= Columns {
		panic(fmt.Sprintf("column %d out of range", column))
	}

	if b.cells[0][column] != Empty {
		return MoveOutcome{Result: MoveRejected}
	}

	row := b.landingRow(column)
	if b.winsAt(row, column, b.turn) {
		return MoveOutcome{Result: MoveVictory}
	}

	next := b
	next.cells[row][column] = b.turn
	next.turn = b.turn.Other()
	return MoveOutcome{Result: MoveContinues, Next: next}
}

// the disk settles on the lowest empty row of the column
func (b Board) landingRow(column int) int {
	for row := Rows - 1; row >= 0; row-- {
		if b.cells[row][column] == Empty {
			return row
		}
	}
	// unreachable, TryMove already checked the top cell
	return -1
}
