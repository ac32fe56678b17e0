package domain

// Game drives one match for the CLI layer. The search works on Board
// values directly and never goes through this.
type Game struct {
	Board     Board
	Status    GameStatus
	Winner    PlayerID
	MoveCount int
}

func NewGame() *Game {
	return &Game{
		Board:  NewBoard(),
		Status: StatusActive,
		Winner: Empty,
	}
}

// MakeMove applies one move for the player whose turn it is. On a win
// the winning disk is not placed; the pre-move board is kept and the
// mover is recorded as winner.
func (g *Game) MakeMove(column int) error {
	if g.Status != StatusActive {
		return ErrGameOver
	}
	if column < 0 || column >= Columns {
		return ErrInvalidMove
	}

	outcome := g.Board.TryMove(column)
	switch outcome.Result {
	case MoveRejected:
		return ErrColumnFull
	case MoveVictory:
		g.Status = StatusWon
		g.Winner = g.Board.Turn()
		g.MoveCount++
		return nil
	}

	g.Board = outcome.Next
	g.MoveCount++

	if g.Board.Full() {
		g.Status = StatusDraw
	}
	return nil
}

func (g *Game) IsFinished() bool {
	return g.Status != StatusActive
}
