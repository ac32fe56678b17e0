package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/iamasit07/connect4-engine/internal/config"
	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/bot"
	"github.com/iamasit07/connect4-engine/pkg/render"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.LoadConfig()

	depth := flag.Int("depth", cfg.SearchDepth, "AI search tree depth; computation time rises exponentially with depth")
	seed := flag.Int64("seed", cfg.AiSeed, "seed for the AI's move picker, 0 derives one")
	noAuto := flag.Bool("no-auto", !cfg.AutoPlay, "wait for Enter before each AI move")
	showTime := flag.Bool("time", cfg.ShowTime, "print total game time")
	flag.Parse()

	mode := strings.ToLower(flag.Arg(0))
	if mode == "" {
		fmt.Fprintln(os.Stderr, "usage: connect4 [flags] pvp|pvc|cvc")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	a := &app{
		depth:    *depth,
		parallel: cfg.SearchParallel,
		noAuto:   *noAuto,
		glyphs: render.Glyphs{
			Empty:   cfg.EmptyChar,
			Player1: cfg.Player1Char,
			Player2: cfg.Player2Char,
		},
		picker: bot.NewPicker(*seed),
		input:  bufio.NewReader(os.Stdin),
	}

	start := time.Now()
	switch mode {
	case "cvc":
		a.computerVsComputer()
	case "pvc":
		a.playerVsComputer()
	case "pvp":
		a.playerVsPlayer()
	default:
		log.Fatalf("unknown mode %q, want pvp, pvc or cvc", mode)
	}

	if *showTime {
		fmt.Printf("Time: %.3fs\n", time.Since(start).Seconds())
	}
}

type app struct {
	depth    int
	parallel bool
	noAuto   bool
	glyphs   render.Glyphs
	picker   *bot.Picker
	input    *bufio.Reader
}

func (a *app) computerVsComputer() {
	game := domain.NewGame()
	for !game.IsFinished() {
		if !a.aiMove(game) {
			break
		}
	}
	a.report(game)
}

func (a *app) playerVsComputer() {
	game := domain.NewGame()
	fmt.Println(render.Board(game.Board, a.glyphs))
	for !game.IsFinished() {
		if game.Board.Turn() == domain.Player1 {
			a.humanMove(game)
		} else if !a.aiMove(game) {
			break
		}
	}
	a.report(game)
}

func (a *app) playerVsPlayer() {
	game := domain.NewGame()
	fmt.Println(render.Board(game.Board, a.glyphs))
	for !game.IsFinished() {
		a.humanMove(game)
	}
	a.report(game)
}

// aiMove plays one AI move; false means no legal move was left.
func (a *app) aiMove(game *domain.Game) bool {
	moves, eval := bot.FindNextMove(game.Board, a.depth, a.parallel)
	column, ok := a.picker.Pick(moves)
	if !ok {
		return false
	}

	if a.noAuto {
		_, _ = a.input.ReadString('\n')
	}

	fmt.Printf("%s plays column %d (%s)\n", game.Board.Turn(), column+1, eval)
	if err := game.MakeMove(column); err != nil {
		log.Fatalf("AI picked an illegal move: %v", err)
	}
	if !game.IsFinished() {
		fmt.Println(render.Board(game.Board, a.glyphs))
	}
	return true
}

func (a *app) humanMove(game *domain.Game) {
	for {
		fmt.Printf("%s, pick a column (1-%d): ", game.Board.Turn(), domain.Columns)
		line, err := a.input.ReadString('\n')
		if err != nil {
			log.Fatalf("reading input: %v", err)
		}

		column, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || column < 1 || column > domain.Columns {
			fmt.Println("That is not a column.")
			continue
		}
		if err := game.MakeMove(column - 1); err != nil {
			fmt.Println(err)
			continue
		}

		if !game.IsFinished() {
			fmt.Println(render.Board(game.Board, a.glyphs))
		}
		return
	}
}

func (a *app) report(game *domain.Game) {
	switch game.Status {
	case domain.StatusWon:
		fmt.Printf("Victory! %s wins after %d moves.\n", game.Winner, game.MoveCount)
	case domain.StatusDraw:
		fmt.Printf("Draw after %d moves.\n", game.MoveCount)
	}
}
