package board_test

import (
	"testing"

	"github.com/herohde/chessgo/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalOpeningMove(t *testing.T) {
	b := board.NewBoard(board.Normal)

	ok := b.TryApplyHuman(board.White, board.NewCoord(board.Rank2, board.FileE), board.NewCoord(board.Rank4, board.FileE))
	require.True(t, ok)
	assert.Equal(t, board.Black, b.Turn())

	sq, ok := b.Get(board.NewCoord(board.Rank4, board.FileE))
	require.True(t, ok)
	assert.Equal(t, board.Pawn, sq.Piece.Kind)
	assert.Equal(t, board.White, sq.Piece.Color)

	from, ok := b.Get(board.NewCoord(board.Rank2, board.FileE))
	require.True(t, ok)
	assert.True(t, from.Piece.IsEmpty())

	target, has := b.EnPassantTarget().V()
	require.True(t, has)
	assert.Equal(t, board.NewCoord(board.Rank3, board.FileE), target)
}

func TestWrongPlayerMoveRejected(t *testing.T) {
	b := board.NewBoard(board.Normal)
	ok := b.TryApplyHuman(board.Black, board.NewCoord(board.Rank7, board.FileE), board.NewCoord(board.Rank5, board.FileE))
	assert.False(t, ok)
	assert.Equal(t, board.White, b.Turn())
}

func TestMoveNotSuicideWhenNotInCheck(t *testing.T) {
	b := board.NewBoard(board.Check)
	// White king at A1, black queen at H2: neither rank, file, nor diagonal is shared (|Δrank|=1,
	// |Δfile|=7), so White is not currently in check and A1-B1 is an ordinary legal king move.
	// The Check preset sets up a position where a check can be delivered next move, not one
	// where White is already in check.
	ok := b.TryApplyHuman(board.White, board.NewCoord(board.Rank1, board.FileA), board.NewCoord(board.Rank1, board.FileB))
	assert.True(t, ok)
}

func TestEnPassantCapture(t *testing.T) {
	b := board.NewBoard(board.Normal)
	require.True(t, b.TryApplyHuman(board.White, board.NewCoord(board.Rank2, board.FileE), board.NewCoord(board.Rank4, board.FileE)))
	require.True(t, b.TryApplyHuman(board.Black, board.NewCoord(board.Rank7, board.FileA), board.NewCoord(board.Rank6, board.FileA)))
	require.True(t, b.TryApplyHuman(board.White, board.NewCoord(board.Rank4, board.FileE), board.NewCoord(board.Rank5, board.FileE)))
	require.True(t, b.TryApplyHuman(board.Black, board.NewCoord(board.Rank7, board.FileD), board.NewCoord(board.Rank5, board.FileD)))

	ok := b.TryApplyHuman(board.White, board.NewCoord(board.Rank5, board.FileE), board.NewCoord(board.Rank6, board.FileD))
	require.True(t, ok)

	captured, ok := b.Get(board.NewCoord(board.Rank5, board.FileD))
	require.True(t, ok)
	assert.True(t, captured.Piece.IsEmpty())

	last, ok := b.LastMove()
	require.True(t, ok)
	assert.True(t, last.EnPassantMove)
}

func TestPawnPromotionOnCapture(t *testing.T) {
	b := board.NewBoard(board.Normal)
	moves := []struct {
		player   board.Color
		from, to board.Coord
	}{
		{board.White, board.NewCoord(board.Rank2, board.FileA), board.NewCoord(board.Rank4, board.FileA)},
		{board.Black, board.NewCoord(board.Rank7, board.FileB), board.NewCoord(board.Rank5, board.FileB)},
		{board.White, board.NewCoord(board.Rank4, board.FileA), board.NewCoord(board.Rank5, board.FileB)},
		{board.Black, board.NewCoord(board.Rank7, board.FileA), board.NewCoord(board.Rank6, board.FileA)},
		{board.White, board.NewCoord(board.Rank5, board.FileB), board.NewCoord(board.Rank6, board.FileB)},
		{board.Black, board.NewCoord(board.Rank6, board.FileA), board.NewCoord(board.Rank5, board.FileA)},
		{board.White, board.NewCoord(board.Rank6, board.FileB), board.NewCoord(board.Rank7, board.FileC)},
		{board.Black, board.NewCoord(board.Rank7, board.FileG), board.NewCoord(board.Rank6, board.FileG)},
		{board.White, board.NewCoord(board.Rank7, board.FileC), board.NewCoord(board.Rank8, board.FileB)},
	}
	for _, m := range moves {
		require.True(t, b.TryApplyHuman(m.player, m.from, m.to), "move %v", m)
	}

	sq, ok := b.Get(board.NewCoord(board.Rank8, board.FileB))
	require.True(t, ok)
	assert.Equal(t, board.Queen, sq.Piece.Kind)
	assert.Equal(t, board.White, sq.Piece.Color)
}

func TestCastlingKingside(t *testing.T) {
	b := board.NewBoard(board.Castling)

	ok := b.TryApplyHuman(board.White, board.NewCoord(board.Rank1, board.FileE), board.NewCoord(board.Rank1, board.FileG))
	require.True(t, ok)

	king, ok := b.Get(board.NewCoord(board.Rank1, board.FileG))
	require.True(t, ok)
	assert.Equal(t, board.King, king.Piece.Kind)

	rook, ok := b.Get(board.NewCoord(board.Rank1, board.FileF))
	require.True(t, ok)
	assert.Equal(t, board.Rook, rook.Piece.Kind)
	assert.False(t, rook.Piece.CanCastle)

	last, ok := b.LastMove()
	require.True(t, ok)
	assert.True(t, last.CastlingMove)
}

func TestCastlingRejectedWhenBlocked(t *testing.T) {
	b := board.NewBoard(board.FailCastling)
	ok := b.TryApplyHuman(board.White, board.NewCoord(board.Rank1, board.FileE), board.NewCoord(board.Rank1, board.FileG))
	assert.False(t, ok)
}

func TestUndoRestoresCapture(t *testing.T) {
	b := board.NewBoard(board.Normal)
	require.True(t, b.TryApplyHuman(board.White, board.NewCoord(board.Rank2, board.FileE), board.NewCoord(board.Rank4, board.FileE)))
	require.True(t, b.TryApplyHuman(board.Black, board.NewCoord(board.Rank7, board.FileD), board.NewCoord(board.Rank5, board.FileD)))
	require.True(t, b.TryApplyHuman(board.White, board.NewCoord(board.Rank4, board.FileE), board.NewCoord(board.Rank5, board.FileD)))

	ok := b.UndoMove()
	require.True(t, ok)

	e4, _ := b.Get(board.NewCoord(board.Rank4, board.FileE))
	assert.Equal(t, board.Pawn, e4.Piece.Kind)
	assert.Equal(t, board.White, e4.Piece.Color)

	d5, _ := b.Get(board.NewCoord(board.Rank5, board.FileD))
	assert.Equal(t, board.Pawn, d5.Piece.Kind)
	assert.Equal(t, board.Black, d5.Piece.Color)

	assert.Equal(t, board.White, b.Turn())
}

func TestUndoCastlingRestoresBothPieces(t *testing.T) {
	b := board.NewBoard(board.Castling)
	require.True(t, b.TryApplyHuman(board.White, board.NewCoord(board.Rank1, board.FileE), board.NewCoord(board.Rank1, board.FileG)))

	require.True(t, b.UndoMove())

	king, _ := b.Get(board.NewCoord(board.Rank1, board.FileE))
	assert.Equal(t, board.King, king.Piece.Kind)
	assert.True(t, king.Piece.CanCastle)

	rook, _ := b.Get(board.NewCoord(board.Rank1, board.FileH))
	assert.Equal(t, board.Rook, rook.Piece.Kind)
	assert.True(t, rook.Piece.CanCastle)

	gSq, _ := b.Get(board.NewCoord(board.Rank1, board.FileG))
	assert.True(t, gSq.Piece.IsEmpty())
	fSq, _ := b.Get(board.NewCoord(board.Rank1, board.FileF))
	assert.True(t, fSq.Piece.IsEmpty())
}

func TestIsInCheck(t *testing.T) {
	b := board.NewBoard(board.Check)
	// Neither side is in check: White's king at A1 shares no rank/file/diagonal with Black's
	// queen at H2, and Black has no attacker on its own king at all.
	assert.False(t, b.IsInCheck(board.White))
	assert.False(t, b.IsInCheck(board.Black))
}

func TestDoubleUndo(t *testing.T) {
	b := board.NewBoard(board.Normal)
	require.True(t, b.TryApplyHuman(board.White, board.NewCoord(board.Rank2, board.FileE), board.NewCoord(board.Rank4, board.FileE)))
	require.True(t, b.TryApplyHuman(board.Black, board.NewCoord(board.Rank7, board.FileE), board.NewCoord(board.Rank5, board.FileE)))

	assert.True(t, b.DoubleUndo(true, false))
	assert.Equal(t, 0, len(b.History()))
}
