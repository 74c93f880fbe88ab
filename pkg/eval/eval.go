// Package eval contains the static position evaluator: material, piece-square position, and
// mobility, combined into a single signed Score.
package eval

import (
	"context"

	"github.com/herohde/chessgo/pkg/board"
)

// Evaluator is a static (non-terminal) position evaluator. It does not know about checkmate or
// stalemate; search assigns the terminal Inf/NegInf values itself.
type Evaluator interface {
	Evaluate(ctx context.Context, b *board.Board) Score
}

// Static is the material + position + mobility evaluator.
type Static struct{}

// Evaluate sums, over every occupied square, the piece's material value, its piece-square
// position value, and (for Knight/Bishop/Rook/Queen) its mobility bonus -- each term signed
// for the piece's color -- rounding to 3 decimal places after every square, matching the
// original accumulation exactly rather than rounding once at the end.
func (Static) Evaluate(ctx context.Context, b *board.Board) Score {
	endGame := countQueens(b) == 0

	total := float64(ZeroScore)
	for r := board.Rank1; r <= board.Rank8; r++ {
		for f := board.FileA; f <= board.FileH; f++ {
			c := board.NewCoord(r, f)
			sq, _ := b.Get(c)
			if sq.Piece.IsEmpty() {
				continue
			}
			sign := float64(Unit(sq.Piece.Color))

			total += sign * mobilityBonus(b, c, sq.Piece, endGame)
			total += pieceValue[sq.Piece.Kind]*sign + sign*positionTable[sq.Piece.Color][sq.Piece.Kind][r-1][8-f]
			total = float64(round3(total))
		}
	}
	return Crop(Score(total))
}

func mobilityBonus(b *board.Board, c board.Coord, p board.Piece, endGame bool) float64 {
	switch p.Kind {
	case board.Knight, board.Bishop, board.Rook:
		n := len(b.AllValidMovesOfSquare(c))
		return mobilityTable[endGame][p.Kind][n]
	case board.Queen:
		n := len(b.AllValidMovesOfSquare(c))
		return mobilityTable[false][board.Queen][n]
	default:
		return 0
	}
}

func countQueens(b *board.Board) int {
	n := 0
	for r := board.Rank1; r <= board.Rank8; r++ {
		for f := board.FileA; f <= board.FileH; f++ {
			sq, _ := b.Get(board.NewCoord(r, f))
			if sq.Piece.Kind == board.Queen {
				n++
			}
		}
	}
	return n
}
