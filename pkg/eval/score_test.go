package eval_test

import (
	"testing"

	"github.com/herohde/chessgo/pkg/board"
	"github.com/herohde/chessgo/pkg/eval"
	"github.com/stretchr/testify/assert"
)

func TestUnit(t *testing.T) {
	assert.Equal(t, eval.Score(1), eval.Unit(board.White))
	assert.Equal(t, eval.Score(-1), eval.Unit(board.Black))
}

func TestCrop(t *testing.T) {
	assert.Equal(t, eval.MaxScore, eval.Crop(eval.Inf))
	assert.Equal(t, eval.MinScore, eval.Crop(eval.NegInf))
	assert.Equal(t, eval.Score(12), eval.Crop(eval.Score(12)))
}

func TestMaxMin(t *testing.T) {
	assert.Equal(t, eval.Score(5), eval.Max(eval.Score(5), eval.Score(-5)))
	assert.Equal(t, eval.Score(-5), eval.Min(eval.Score(5), eval.Score(-5)))
}

func TestScoreString(t *testing.T) {
	assert.Equal(t, "1.500", eval.Score(1.5).String())
}
