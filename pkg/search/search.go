// Package search implements fixed-depth alpha-beta minimax over the board package's move
// generator and transactional apply/undo.
package search

import (
	"context"
	"fmt"

	"github.com/herohde/chessgo/pkg/board"
	"github.com/herohde/chessgo/pkg/eval"
)

// Result is the outcome of a search: the chosen move and its minimax value.
type Result struct {
	Move  board.Move
	Score eval.Score
	Depth int
}

func (r Result) String() string {
	return fmt.Sprintf("depth=%v score=%v move=%v", r.Depth, r.Score, r.Move)
}

// BestMove runs fixed-depth minimax for the side to move. If no move is found at depth (the
// position is checkmate or stalemate at the root), it retries at depth-1, depth-2, ..., down
// to 0 -- the shallowest search is a plain one-ply static evaluation of every legal move, so
// a genuinely terminal root position fails at every depth and BestMove reports no move found.
func BestMove(ctx context.Context, b *board.Board, depth int, ev eval.Evaluator) (Result, bool) {
	for d := depth; d >= 0; d-- {
		var m board.Move
		var s eval.Score
		var ok bool
		if b.Turn() == board.White {
			m, s, ok = maxSearch(ctx, b, ev, d, eval.NegInf, eval.Inf)
		} else {
			m, s, ok = minSearch(ctx, b, ev, d, eval.NegInf, eval.Inf)
		}
		if ok {
			return Result{Move: m, Score: s, Depth: d}, true
		}
	}
	return Result{}, false
}
