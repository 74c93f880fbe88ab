package eval_test

import (
	"context"
	"testing"

	"github.com/herohde/chessgo/pkg/board"
	"github.com/herohde/chessgo/pkg/eval"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateStartingPositionIsSymmetric(t *testing.T) {
	ctx := context.Background()
	b := board.NewBoard(board.Normal)

	s := eval.Static{}.Evaluate(ctx, b)
	assert.Equal(t, eval.ZeroScore, s, "a symmetric starting position should evaluate to zero")
}

func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	ctx := context.Background()
	b := board.NewBoard(board.CheckInOneForWhite)

	s := eval.Static{}.Evaluate(ctx, b)
	assert.NotEqual(t, eval.ZeroScore, s)
}

func TestEvaluateIsDeterministic(t *testing.T) {
	ctx := context.Background()
	b := board.NewBoard(board.Normal)

	a := eval.Static{}.Evaluate(ctx, b)
	c := eval.Static{}.Evaluate(ctx, b)
	assert.Equal(t, a, c)
}
