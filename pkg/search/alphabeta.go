package search

import (
	"context"

	"github.com/herohde/chessgo/pkg/board"
	"github.com/herohde/chessgo/pkg/eval"
)

// maxSearch and minSearch implement alpha-beta pruning for the side to move. Pseudo-code:
//
// function alphabeta(node, depth, α, β, maximizingPlayer) is
//
//	if depth = 0 or node is a terminal node then
//	    return the heuristic value of node
//	if maximizingPlayer then
//	    value := −∞
//	    for each child of node do
//	        value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
//	        α := max(α, value)
//	        if α ≥ β then
//	            break (* β cutoff *)
//	    return value
//	else
//	    value := +∞
//	    for each child of node do
//	        value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
//	        β := min(β, value)
//	        if β ≤ α then
//	            break (* α cutoff *)
//	    return value
//
// See: https://en.wikipedia.org/wiki/Alpha-beta_pruning. Moves are tried in the generator's
// natural order and are never reordered, so the first move to reach the best value is the one
// reported -- this makes move order itself part of the search's tie-breaking behavior.
func maxSearch(ctx context.Context, b *board.Board, ev eval.Evaluator, depth int, alpha, beta eval.Score) (board.Move, eval.Score, bool) {
	mover := b.Turn()

	var best board.Move
	var bestScore eval.Score
	found := false

	for _, m := range b.AllMoves(mover) {
		if !b.TestAndApply(m, mover) {
			continue
		}

		var score eval.Score
		if depth > 1 {
			_, s, ok := minSearch(ctx, b, ev, depth-1, alpha, beta)
			if ok {
				score = s
			} else {
				score = terminalScore(mover, b.IsInCheck(b.Turn()))
			}
		} else {
			score = ev.Evaluate(ctx, b)
		}
		alpha = eval.Max(alpha, score)
		b.UndoMove()

		if !found || bestScore < score {
			bestScore = score
			best = m
			found = true
		}
		if beta <= alpha {
			break
		}
	}
	return best, bestScore, found
}

func minSearch(ctx context.Context, b *board.Board, ev eval.Evaluator, depth int, alpha, beta eval.Score) (board.Move, eval.Score, bool) {
	mover := b.Turn()

	var best board.Move
	var bestScore eval.Score
	found := false

	for _, m := range b.AllMoves(mover) {
		if !b.TestAndApply(m, mover) {
			continue
		}

		var score eval.Score
		if depth > 1 {
			_, s, ok := maxSearch(ctx, b, ev, depth-1, alpha, beta)
			if ok {
				score = s
			} else {
				score = terminalScore(mover, b.IsInCheck(b.Turn()))
			}
		} else {
			score = ev.Evaluate(ctx, b)
		}
		beta = eval.Min(beta, score)
		b.UndoMove()

		if !found || score < bestScore {
			bestScore = score
			best = m
			found = true
		}
		if beta <= alpha {
			break
		}
	}
	return best, bestScore, found
}

// terminalScore assigns the extreme value for a position where mover's move left the opponent
// with no legal reply. A checkmate favors mover outright. A stalemate is scored as if mover
// itself had been mated -- the search actively avoids forcing a draw it could otherwise win.
func terminalScore(mover board.Color, responderInCheck bool) eval.Score {
	favored := mover
	if !responderInCheck {
		favored = mover.Opponent()
	}
	if favored == board.White {
		return eval.Inf
	}
	return eval.NegInf
}
