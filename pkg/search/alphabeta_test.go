package search_test

import (
	"context"
	"testing"

	"github.com/herohde/chessgo/pkg/board"
	"github.com/herohde/chessgo/pkg/eval"
	"github.com/herohde/chessgo/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestMoveFindsNoMoveWhenAlreadyCheckmated(t *testing.T) {
	ctx := context.Background()
	b := board.NewBoard(board.Checkmate)

	require.True(t, b.IsInCheck(board.White))
	assert.Equal(t, 0, legalMoveCount(b, board.White))

	_, ok := search.BestMove(ctx, b, 2, eval.Static{})
	assert.False(t, ok, "the mated side has no legal move at any depth")
}

func TestBestMoveFindsNoMoveWhenAlreadyStalemated(t *testing.T) {
	ctx := context.Background()
	b := board.NewBoard(board.Stalemate)

	require.False(t, b.IsInCheck(board.White))
	assert.Equal(t, 0, legalMoveCount(b, board.White))

	_, ok := search.BestMove(ctx, b, 2, eval.Static{})
	assert.False(t, ok, "the stalemated side has no legal move at any depth")
}

// legalMoveCount trial-applies every pseudo-legal move of c and counts the ones that don't
// leave c's own king in check, undoing each immediately.
func legalMoveCount(b *board.Board, c board.Color) int {
	n := 0
	for _, m := range b.AllMoves(c) {
		if b.TestAndApply(m, c) {
			n++
			b.UndoMove()
		}
	}
	return n
}

func TestBestMoveFindsCheckInOne(t *testing.T) {
	ctx := context.Background()
	b := board.NewBoard(board.CheckInOneForWhite)

	result, ok := search.BestMove(ctx, b, 2, eval.Static{})
	require.True(t, ok)

	require.True(t, b.TryApplyHuman(result.Move.Player, result.Move.From, result.Move.To))
	assert.True(t, b.IsInCheck(board.Black))
}

func TestBestMoveDepthFallbackExhaustsOnTerminalRoot(t *testing.T) {
	ctx := context.Background()
	b := board.NewBoard(board.Checkmate)

	_, ok := search.BestMove(ctx, b, 6, eval.Static{})
	assert.False(t, ok, "every retry depth down to 0 should fail on an already-terminal root")
}
