package domain

import "strings"

// canonical glyphs for Ascii / ParseBoard; the renderer has its own
// configurable set
const asciiGlyphs = ".XO"

// Ascii flattens the grid to one glyph per cell, top row first.
func (b Board) Ascii() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < Columns; c++ {
			sb.WriteByte(asciiGlyphs[b.cells[r][c]])
		}
	}
	return sb.String()
}

// ParseBoard builds a board from glyph rows, top row first, with turn
// as the player to move. It rejects wrong dimensions, unknown glyphs
// and floating disks.
func ParseBoard(rows []string, turn PlayerID) (Board, error) {
	if len(rows) != Rows {
		return Board{}, ErrBadBoard
	}

	b := Board{turn: turn}
	for r, line := range rows {
		if len(line) != Columns {
			return Board{}, ErrBadBoard
		}
		for c := 0; c < Columns; c++ {
			switch line[c] {
			case '.':
				b.cells[r][c] = Empty
			case 'X':
				b.cells[r][c] = Player1
			case 'O':
				b.cells[r][c] = Player2
			default:
				return Board{}, ErrBadBoard
			}
		}
	}

	// gravity: walking up a column, nothing sits above an empty cell
	for c := 0; c < Columns; c++ {
		for r := 0; r < Rows-1; r++ {
			if b.cells[r][c] != Empty && b.cells[r+1][c] == Empty {
				return Board{}, ErrBadBoard
			}
		}
	}

	return b, nil
}

// MustParseBoard is ParseBoard for hardcoded positions.
func MustParseBoard(rows []string, turn PlayerID) Board {
	b, err := ParseBoard(rows, turn)
	if err != nil {
		panic(err)
	}
	return b
}
