package render

import (
	"strconv"
	"strings"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

// Glyphs maps cell states to printable text.
type Glyphs struct {
	Empty   string
	Player1 string
	Player2 string
}

var DefaultGlyphs = Glyphs{Empty: ".", Player1: "X", Player2: "O"}

// Board renders the grid top row first, one space between cells, with
// a 1-based column footer matching the driver's prompts.
func Board(b domain.Board, glyphs Glyphs) string {
	var sb strings.Builder
	for r := 0; r < domain.Rows; r++ {
		for c := 0; c < domain.Columns; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			switch b.Cell(r, c) {
			case domain.Player1:
				sb.WriteString(glyphs.Player1)
			case domain.Player2:
				sb.WriteString(glyphs.Player2)
			default:
				sb.WriteString(glyphs.Empty)
			}
		}
		sb.WriteByte('\n')
	}
	for c := 1; c <= domain.Columns; c++ {
		if c > 1 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(c))
	}
	return sb.String()
}
