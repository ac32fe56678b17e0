package bot

import (
	"reflect"
	"testing"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

func buildBoard(t *testing.T, columns ...int) domain.Board {
	t.Helper()
	b := domain.NewBoard()
	for i, column := range columns {
		outcome := b.TryMove(column)
		if outcome.Result != domain.MoveContinues {
			t.Fatalf("setup move %d in column %d: got %v", i, column, outcome.Result)
		}
		b = outcome.Next
	}
	return b
}

func TestEmptyBoardDepthOneIsNeutral(t *testing.T) {
	moves, eval := FindNextMove(domain.NewBoard(), 1, false)
	if eval != Undetermined {
		t.Fatalf("expected Undetermined, got %v", eval)
	}
	if !reflect.DeepEqual(moves, []int{0, 1, 2, 3, 4, 5, 6}) {
		t.Fatalf("expected every column to be playable, got %v", moves)
	}
}

func TestDepthZeroOnlySeesImmediateWins(t *testing.T) {
	moves, eval := FindNextMove(domain.NewBoard(), 0, false)
	if eval != Undetermined || len(moves) != domain.Columns {
		t.Fatalf("expected all %d columns and Undetermined, got %v (%v)", domain.Columns, moves, eval)
	}
}

func TestImmediateWinFoundAtAnyDepth(t *testing.T) {
	// Player 1 has three stacked disks in column 2
	b := buildBoard(t, 2, 3, 2, 3, 2, 6)

	for depth := 0; depth <= 3; depth++ {
		moves, eval := FindNextMove(b, depth, false)
		if eval != ImmediateWin {
			t.Fatalf("depth %d: expected ImmediateWin, got %v", depth, eval)
		}
		if !reflect.DeepEqual(moves, []int{2}) {
			t.Fatalf("depth %d: expected column 2 only, got %v", depth, moves)
		}
	}
}

func TestImmediateWinShortCircuitsOnFirstColumn(t *testing.T) {
	// ..XXX.. on the bottom row wins in column 0 and column 4, only
	// the first in scan order is reported
	b := buildBoard(t, 1, 6, 2, 6, 3, 5)

	moves, eval := FindNextMove(b, 0, false)
	if eval != ImmediateWin {
		t.Fatalf("expected ImmediateWin, got %v", eval)
	}
	if !reflect.DeepEqual(moves, []int{0}) {
		t.Fatalf("expected the first winning column only, got %v", moves)
	}
}

func TestFullBoardIsADraw(t *testing.T) {
	b := domain.MustParseBoard([]string{
		"XOXOXOO",
		"XOXOXOX",
		"OXOXOXO",
		"OXOXOXO",
		"XOXOXOX",
		"XOXOXOX",
	}, domain.Player1)

	moves, eval := FindNextMove(b, 5, false)
	if eval != Undetermined {
		t.Fatalf("expected Undetermined on a full board, got %v", eval)
	}
	if len(moves) != 0 {
		t.Fatalf("expected an empty move set, got %v", moves)
	}
}

func TestForcedLossStillReportsTheOnlyMove(t *testing.T) {
	// Only column 3 is open. Player 1 must play it, and the reply in
	// the same column completes Player 2's top row.
	b := domain.MustParseBoard([]string{
		"OOO.XOX",
		"XOX.XOX",
		"OXOXOXO",
		"OXOXOXO",
		"XOXOXOX",
		"XOXOXOX",
	}, domain.Player1)

	for depth := 1; depth <= 3; depth++ {
		moves, eval := FindNextMove(b, depth, false)
		if eval != ForcedLoss {
			t.Fatalf("depth %d: expected ForcedLoss, got %v", depth, eval)
		}
		if !reflect.DeepEqual(moves, []int{3}) {
			t.Fatalf("depth %d: a lost move must still be reported, got %v", depth, moves)
		}
	}
}

func TestForcedWinKeepsOnlyTheForcingMove(t *testing.T) {
	// Player 1 holds the bottom of columns 1 and 2; playing column 3
	// makes an open-ended three that wins against every reply.
	b := buildBoard(t, 1, 6, 2, 6)

	for depth := 2; depth <= 3; depth++ {
		moves, eval := FindNextMove(b, depth, false)
		if eval != ForcedWin {
			t.Fatalf("depth %d: expected ForcedWin, got %v", depth, eval)
		}
		if !reflect.DeepEqual(moves, []int{3}) {
			t.Fatalf("depth %d: expected only the forcing column, got %v", depth, moves)
		}
	}
}

func TestNeutralPositionDropsLosingMoves(t *testing.T) {
	// Player 2 to move while Player 1 threatens an open-ended three
	// via column 3. Any reply outside columns 0, 3 and 4 lets Player 1
	// build the double threat and is dropped from the move set.
	b := buildBoard(t, 1, 6, 2)

	moves, eval := FindNextMove(b, 3, false)
	if eval != Undetermined {
		t.Fatalf("expected Undetermined, got %v", eval)
	}
	if !reflect.DeepEqual(moves, []int{0, 3, 4}) {
		t.Fatalf("expected the losing replies to be dropped, got %v", moves)
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	boards := []domain.Board{
		domain.NewBoard(),
		buildBoard(t, 3, 3, 2, 4, 5, 1),
		buildBoard(t, 1, 6, 2, 6),
	}

	for i, b := range boards {
		seqMoves, seqEval := FindNextMove(b, 4, false)
		againMoves, againEval := FindNextMove(b, 4, false)
		parMoves, parEval := FindNextMove(b, 4, true)

		if seqEval != againEval || !reflect.DeepEqual(seqMoves, againMoves) {
			t.Fatalf("board %d: sequential search is not deterministic: %v/%v vs %v/%v",
				i, seqMoves, seqEval, againMoves, againEval)
		}
		if seqEval != parEval || !reflect.DeepEqual(seqMoves, parMoves) {
			t.Fatalf("board %d: parallel result diverged: %v/%v vs %v/%v",
				i, seqMoves, seqEval, parMoves, parEval)
		}
	}
}
