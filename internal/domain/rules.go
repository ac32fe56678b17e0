package domain

// the four line directions a win can run along
var directions = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{1, -1}, // diagonal /
}

// winsAt reports whether placing player's disk at (row, column) would
// complete a run of at least ToWin. The cell itself is still empty;
// the run is that cell plus the contiguous player-owned disks extending
// from it in both senses of each direction.
func (b Board) winsAt(row, column int, player PlayerID) bool {
	for _, dir := range directions {
		run := 1 +
			b.countInDirection(row, column, dir[0], dir[1], player) +
			b.countInDirection(row, column, -dir[0], -dir[1], player)
		if run >= ToWin {
			return true
		}
	}
	return false
}

// countInDirection counts the contiguous disks of player found by
// stepping from (row, column) along (deltaRow, deltaCol), stopping at
// the first foreign or out-of-bounds cell.
func (b Board) countInDirection(row, column, deltaRow, deltaCol int, player PlayerID) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for r >= 0 && r < Rows && c >= 0 && c < Columns && b.cells[r][c] == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}
