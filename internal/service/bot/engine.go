package bot

import (
	"golang.org/x/sync/errgroup"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

// Evaluation classifies a position from the perspective of the player
// about to move.
type Evaluation int

const (
	// Undetermined covers drawn, cut-off and mixed positions. A
	// position at the search horizon is always neutral; there is no
	// static scoring.
	Undetermined Evaluation = iota
	// ImmediateWin means a legal move wins outright.
	ImmediateWin
	// ForcedWin means some move leads to a position the opponent
	// cannot escape from.
	ForcedWin
	// ForcedLoss means every legal move lets the opponent force a win.
	ForcedLoss
)

func (e Evaluation) String() string {
	switch e {
	case ImmediateWin:
		return "immediate win"
	case ForcedWin:
		return "forced win"
	case ForcedLoss:
		return "forced loss"
	}
	return "undetermined"
}

type candidate struct {
	column int
	next   domain.Board
}

// FindNextMove searches the position exhaustively to the given depth
// and returns the columns that are equally good under the returned
// evaluation. The move set is in ascending column order and empty only
// when no legal move remains (a draw). With parallel set, the
// candidates of this call fan out one goroutine each; everything below
// runs sequentially inside its branch, so fan-out stays bounded to one
// level. Sequential and parallel runs return identical results.
func FindNextMove(board domain.Board, depth int, parallel bool) ([]int, Evaluation) {
	var candidates []candidate
	for column := 0; column < domain.Columns; column++ {
		outcome := board.TryMove(column)
		switch outcome.Result {
		case domain.MoveVictory:
			// first winning column in scan order, done
			return []int{column}, ImmediateWin
		case domain.MoveContinues:
			candidates = append(candidates, candidate{column, outcome.Next})
		}
	}

	// every column full: draw
	if len(candidates) == 0 {
		return nil, Undetermined
	}

	// Evaluate each successor from the opponent's perspective.
	// Index-aligned write-back keeps parallel runs deterministic.
	// Depth 0 is the horizon: successors stay Undetermined.
	evals := make([]Evaluation, len(candidates))
	if depth > 0 {
		if parallel {
			var g errgroup.Group
			for i, cand := range candidates {
				i, cand := i, cand
				g.Go(func() error {
					_, evals[i] = FindNextMove(cand.next, depth-1, false)
					return nil
				})
			}
			// branches never return an error
			_ = g.Wait()
		} else {
			for i, cand := range candidates {
				_, evals[i] = FindNextMove(cand.next, depth-1, false)
			}
		}
	}

	opponentWins := 0
	opponentLosses := 0
	for _, e := range evals {
		switch e {
		case ImmediateWin, ForcedWin:
			opponentWins++
		case ForcedLoss:
			opponentLosses++
		}
	}

	switch {
	case opponentWins == len(candidates):
		// the opponent wins whatever we play; every legal move is
		// still reported, a lost move is never hidden
		moves := make([]int, len(candidates))
		for i, cand := range candidates {
			moves[i] = cand.column
		}
		return moves, ForcedLoss

	case opponentLosses > 0:
		// keep only the moves that force the win
		moves := make([]int, 0, opponentLosses)
		for i, cand := range candidates {
			if evals[i] == ForcedLoss {
				moves = append(moves, cand.column)
			}
		}
		return moves, ForcedWin

	default:
		// neutral position; drop the moves that hand the opponent a
		// win, alternatives exist because not all replies win for them
		moves := make([]int, 0, len(candidates))
		for i, cand := range candidates {
			if evals[i] == ImmediateWin || evals[i] == ForcedWin {
				continue
			}
			moves = append(moves, cand.column)
		}
		return moves, Undetermined
	}
}
