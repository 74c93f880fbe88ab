package eval

import "github.com/herohde/chessgo/pkg/board"

// pieceValue is the material value of each piece kind, in the evaluator's own unit scale (not
// pawns). The King's value is nominal; it is never actually traded, but every occupied square
// contributes its piece's value to the running total regardless of kind.
var pieceValue = map[board.Kind]float64{
	board.Pawn:   10.0,
	board.Knight: 32.0,
	board.Bishop: 33.0,
	board.Rook:   50.0,
	board.Queen:  90.0,
	board.King:   2000.0,
}

// mobilityTable[phase][kind] maps a piece's pseudo-legal move count directly to a bonus. Queen
// mobility always uses the mid-game table, even in the end game -- indexing end-game tables by
// mobility count was never replicated for queens in the original scheme.
var mobilityTable = map[bool]map[board.Kind][]float64{
	false: { // mid game
		board.Knight: {-1.5, -0.5, -0.1, 0.2, 0.5, 0.7, 0.9, 1.1, 1.3},
		board.Bishop: {-2.5, -1.1, -0.6, -0.1, 0.3, 0.6, 0.9, 1.2, 1.4, 1.7, 1.9, 2.1, 2.3, 2.5},
		board.Rook:   {-1.0, -0.4, -0.2, 0.0, 0.2, 0.3, 0.4, 0.5, 0.6, 0.8, 0.8, 0.9, 1.0, 1.1, 1.2},
		board.Queen: {
			-1.0, -0.6, -0.5, -0.4, -0.2, -0.2, -0.1, 0.0, 0.1, 0.2, 0.2, 0.3, 0.3, 0.4, 0.4, 0.5, 0.6,
			0.6, 0.6, 0.7, 0.7, 0.8, 0.8, 0.9, 0.9, 1.0, 1.0, 1.0,
		},
	},
	true: { // end game
		board.Knight: {-3.0, -1.0, -0.2, 0.4, 1.0, 1.4, 1.8, 2.2, 2.6},
		board.Bishop: {-5.0, -2.2, -1.1, -0.2, 0.6, 1.2, 1.8, 2.4, 2.9, 3.4, 3.8, 4.2, 4.6, 5.0},
		board.Rook:   {-5.0, -2.2, -1.1, -0.2, 0.6, 1.2, 1.8, 2.4, 2.9, 3.4, 3.8, 4.2, 4.6, 5.0, 5.4},
		board.Queen: {
			-5.0, -3.0, -2.2, -1.6, -1.0, -0.6, -0.2, 0.2, 0.6, 1.0, 1.3, 1.6, 1.9, 2.2, 2.4, 2.7, 3.0,
			3.2, 3.4, 3.7, 3.9, 4.1, 4.3, 4.5, 4.7, 5.0, 5.1, 5.3,
		},
	},
}

// positionTable[color][kind] is an 8x8 table indexed [rank-1][8-file]: rows run from Rank1 to
// Rank8, and within a row, decreasing file (so index 0 is FileH, index 7 is FileA). Black's
// tables are White's mirrored top-to-bottom, as in the source material they were transcribed
// from; every Black table is an exact mirror of its White counterpart, but both are listed out
// in full rather than computed.
var positionTable = map[board.Color]map[board.Kind][8][8]float64{
	board.White: {
		board.Pawn: {
			{0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0},
			{0.5, 1.0, 1.0, -2.0, -2.0, 1.0, 1.0, 0.5},
			{0.5, -0.5, -1.0, 0.0, 0.0, -1.0, -0.5, 0.5},
			{0.0, 0.0, 0.0, 2.0, 2.0, 0.0, 0.0, 0.0},
			{0.5, 0.5, 1.0, 2.5, 2.5, 1.0, 0.5, 0.5},
			{1.0, 1.0, 2.0, 3.0, 3.0, 2.0, 1.0, 1.0},
			{5.0, 5.0, 5.0, 5.0, 5.0, 5.0, 5.0, 5.0},
			{0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0},
		},
		board.Knight: {
			{-5.0, -4.0, -3.0, -3.0, -3.0, -3.0, -4.0, -5.0},
			{-4.0, -2.0, 0.0, 0.5, 0.5, 0.0, -2.0, -4.0},
			{-3.0, 0.5, 1.0, 1.5, 1.5, 1.0, 0.5, -3.0},
			{-3.0, 0.0, 1.5, 2.0, 2.0, 1.5, 0.0, -3.0},
			{-3.0, 0.5, 1.5, 2.0, 2.0, 1.5, 0.5, -3.0},
			{-3.0, 0.0, 1.0, 1.5, 1.5, 1.0, 0.0, -3.0},
			{-4.0, -2.0, 0.0, 0.0, 0.0, 0.0, -2.0, -4.0},
			{-5.0, -4.0, -3.0, -3.0, -3.0, -3.0, -4.0, -5.0},
		},
		board.Bishop: {
			{-2.0, -1.0, -1.0, -1.0, -1.0, -1.0, -1.0, -2.0},
			{-1.0, 0.5, 0.0, 0.0, 0.0, 0.0, 0.5, -1.0},
			{-1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, -1.0},
			{-1.0, 0.0, 1.0, 1.0, 1.0, 1.0, 0.0, -1.0},
			{-1.0, 0.5, 0.5, 1.0, 1.0, 0.5, 0.5, -1.0},
			{-1.0, 0.0, 0.5, 1.0, 1.0, 0.5, 0.0, -1.0},
			{-1.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, -1.0},
			{-2.0, -1.0, -1.0, -1.0, -1.0, -1.0, -1.0, -2.0},
		},
		board.Rook: {
			{0.0, 0.0, 0.0, 0.5, 0.5, 0.0, 0.0, 0.0},
			{-0.5, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, -0.5},
			{-0.5, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, -0.5},
			{-0.5, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, -0.5},
			{-0.5, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, -0.5},
			{-0.5, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, -0.5},
			{0.5, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 0.5},
			{0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0},
		},
		board.Queen: {
			{-2.0, -1.0, -1.0, -0.5, -0.5, -1.0, -1.0, -2.0},
			{-1.0, 0.0, 0.5, 0.0, 0.0, 0.0, 0.0, -1.0},
			{-1.0, 0.5, 0.5, 0.5, 0.5, 0.5, 0.0, -1.0},
			{-0.5, 0.0, 0.5, 0.5, 0.5, 0.5, 0.0, -0.5},
			{-0.5, 0.0, 0.5, 0.5, 0.5, 0.5, 0.0, -0.5},
			{-1.0, 0.0, 0.5, 0.5, 0.5, 0.5, 0.0, -1.0},
			{-1.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, -1.0},
			{-2.0, -1.0, -1.0, -0.5, -0.5, -1.0, -1.0, -2.0},
		},
		board.King: {
			{2.0, 3.0, 1.0, 0.0, 0.0, 1.0, 3.0, 2.0},
			{2.0, 2.0, 0.0, 0.0, 0.0, 0.0, 2.0, 2.0},
			{-1.0, -2.0, -2.0, -2.0, -2.0, -2.0, -2.0, -1.0},
			{-2.0, -3.0, -3.0, -4.0, -4.0, -3.0, -3.0, -2.0},
			{-3.0, -4.0, -4.0, -5.0, -5.0, -4.0, -4.0, -3.0},
			{-3.0, -4.0, -4.0, -5.0, -5.0, -4.0, -4.0, -3.0},
			{-3.0, -4.0, -4.0, -5.0, -5.0, -4.0, -4.0, -3.0},
			{-3.0, -4.0, -4.0, -5.0, -5.0, -4.0, -4.0, -3.0},
		},
	},
	board.Black: {
		board.Pawn: {
			{0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0},
			{5.0, 5.0, 5.0, 5.0, 5.0, 5.0, 5.0, 5.0},
			{1.0, 1.0, 2.0, 3.0, 3.0, 2.0, 1.0, 1.0},
			{0.5, 0.5, 1.0, 2.5, 2.5, 1.0, 0.5, 0.5},
			{0.0, 0.0, 0.0, 2.0, 2.0, 0.0, 0.0, 0.0},
			{0.5, -0.5, -1.0, 0.0, 0.0, -1.0, -0.5, 0.5},
			{0.5, 1.0, 1.0, -2.0, -2.0, 1.0, 1.0, 0.5},
			{0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0},
		},
		board.Knight: {
			{-5.0, -4.0, -3.0, -3.0, -3.0, -3.0, -4.0, -5.0},
			{-4.0, -2.0, 0.0, 0.0, 0.0, 0.0, -2.0, -4.0},
			{-3.0, 0.0, 1.0, 1.5, 1.5, 1.0, 0.0, -3.0},
			{-3.0, 0.5, 1.5, 2.0, 2.0, 1.5, 0.5, -3.0},
			{-3.0, 0.0, 1.5, 2.0, 2.0, 1.5, 0.0, -3.0},
			{-3.0, 0.5, 1.0, 1.5, 1.5, 1.0, 0.5, -3.0},
			{-4.0, -2.0, 0.0, 0.5, 0.5, 0.0, -2.0, -4.0},
			{-5.0, -4.0, -3.0, -3.0, -3.0, -3.0, -4.0, -5.0},
		},
		board.Bishop: {
			{-2.0, -1.0, -1.0, -1.0, -1.0, -1.0, -1.0, -2.0},
			{-1.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, -1.0},
			{-1.0, 0.0, 0.5, 1.0, 1.0, 0.5, 0.0, -1.0},
			{-1.0, 0.5, 0.5, 1.0, 1.0, 0.5, 0.5, -1.0},
			{-1.0, 0.0, 1.0, 1.0, 1.0, 1.0, 0.0, -1.0},
			{-1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, -1.0},
			{-1.0, 0.5, 0.0, 0.0, 0.0, 0.0, 0.5, -1.0},
			{-2.0, -1.0, -1.0, -1.0, -1.0, -1.0, -1.0, -2.0},
		},
		board.Rook: {
			{0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0},
			{0.5, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 0.5},
			{-0.5, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, -0.5},
			{-0.5, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, -0.5},
			{-0.5, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, -0.5},
			{-0.5, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, -0.5},
			{-0.5, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, -0.5},
			{0.0, 0.0, 0.0, 0.5, 0.5, 0.0, 0.0, 0.0},
		},
		board.Queen: {
			{-2.0, -1.0, -1.0, -0.5, -0.5, -1.0, -1.0, -2.0},
			{-1.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, -1.0},
			{-1.0, 0.0, 0.5, 0.5, 0.5, 0.5, 0.0, -1.0},
			{-0.5, 0.0, 0.5, 0.5, 0.5, 0.5, 0.0, -0.5},
			{-0.5, 0.0, 0.5, 0.5, 0.5, 0.5, 0.0, -0.5},
			{-1.0, 0.5, 0.5, 0.5, 0.5, 0.5, 0.0, -1.0},
			{-1.0, 0.0, 0.5, 0.0, 0.0, 0.0, 0.0, -1.0},
			{-2.0, -1.0, -1.0, -0.5, -0.5, -1.0, -1.0, -2.0},
		},
		board.King: {
			{-3.0, -4.0, -4.0, -5.0, -5.0, -4.0, -4.0, -3.0},
			{-3.0, -4.0, -4.0, -5.0, -5.0, -4.0, -4.0, -3.0},
			{-3.0, -4.0, -4.0, -5.0, -5.0, -4.0, -4.0, -3.0},
			{-3.0, -4.0, -4.0, -5.0, -5.0, -4.0, -4.0, -3.0},
			{-2.0, -3.0, -3.0, -4.0, -4.0, -3.0, -3.0, -2.0},
			{-1.0, -2.0, -2.0, -2.0, -2.0, -2.0, -2.0, -1.0},
			{2.0, 2.0, 0.0, 0.0, 0.0, 0.0, 2.0, 2.0},
			{2.0, 3.0, 1.0, 0.0, 0.0, 1.0, 3.0, 2.0},
		},
	},
}
