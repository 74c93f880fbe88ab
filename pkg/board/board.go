// Package board contains the chess rules engine: the piece and board data model, the move
// validator and generator, and the transactional move/undo service that backs search.
package board

import (
	"fmt"

	"github.com/seekerror/stdlib/pkg/lang"
)

// Square is one of the 64 cells of the board: a coordinate and the piece occupying it (NoPiece
// if empty).
type Square struct {
	Coord Coord
	Piece Piece
}

// Board is an 8x8 grid of squares plus the handful of slots the rules engine needs to stay
// cheap to query: the en-passant target, a king-position cache, and the move history. Not
// thread-safe; the search mutates it directly and relies on UndoMove to restore it.
type Board struct {
	grid map[Coord]*Square

	turn Color

	whiteKing Coord
	blackKing Coord

	enPassant lang.Optional[Coord]

	history []Move
}

// newEmpty returns a board with all 64 squares present and empty.
func newEmpty() *Board {
	b := &Board{grid: make(map[Coord]*Square, 64), turn: White}
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			c := NewCoord(r, f)
			b.grid[c] = &Square{Coord: c, Piece: NoPiece}
		}
	}
	return b
}

// Get returns the square at c, and false if c is out of range. Out-of-range coordinates are
// the generator's board-edge termination signal.
func (b *Board) Get(c Coord) (*Square, bool) {
	sq, ok := b.grid[c]
	return sq, ok
}

// place sets the piece at c unconditionally, outside of normal move application. Used only by
// preset setup.
func (b *Board) place(c Coord, p Piece) {
	b.grid[c].Piece = p
	if p.Kind == King {
		b.setKingPos(p.Color, c)
	}
}

func (b *Board) kingPos(c Color) Coord {
	if c == White {
		return b.whiteKing
	}
	return b.blackKing
}

func (b *Board) setKingPos(c Color, at Coord) {
	if c == White {
		b.whiteKing = at
	} else {
		b.blackKing = at
	}
}

// Turn returns the side to move.
func (b *Board) Turn() Color {
	return b.turn
}

// EnPassantTarget returns the current en-passant target coordinate, if any.
func (b *Board) EnPassantTarget() lang.Optional[Coord] {
	return b.enPassant
}

// History returns the move history, oldest first. Callers must not mutate the slice.
func (b *Board) History() []Move {
	return b.history
}

// LastMove returns the most recently applied move record, if any.
func (b *Board) LastMove() (Move, bool) {
	if len(b.history) == 0 {
		return Move{}, false
	}
	return b.history[len(b.history)-1], true
}

func (b *Board) String() string {
	return fmt.Sprintf("board{turn=%v, history=%d}", b.turn, len(b.history))
}
