package board

import (
	"github.com/seekerror/stdlib/pkg/lang"
)

// UndoMove reverses the most recently applied move. Because the move record snapshots the
// moved piece's pre-move value (including its OnInitialSquare/CanCastle flags), restoring it is
// a single assignment rather than a field-by-field flag replay.
//
// If the popped record is a castling move, the rook's half -- pushed just below it -- is popped
// and reversed too, so one call undoes the whole castle.
func (b *Board) UndoMove() bool {
	if len(b.history) == 0 {
		return false
	}
	m := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]

	b.grid[m.From].Piece = m.MovedPiece
	if killed, ok := m.KilledPiece.V(); ok {
		if m.EnPassantMove {
			b.grid[enPassantCapturedSquare(m)].Piece = killed
			b.grid[m.To].Piece = NoPiece
		} else {
			b.grid[m.To].Piece = killed
		}
	} else {
		b.grid[m.To].Piece = NoPiece
	}

	b.turn = b.turn.Opponent()

	if m.MovedPiece.Kind == King {
		b.setKingPos(m.MovedPiece.Color, m.From)
	}

	if m.CastlingMove && len(b.history) > 0 {
		rm := b.history[len(b.history)-1]
		b.history = b.history[:len(b.history)-1]
		b.grid[rm.From].Piece = rm.MovedPiece
		b.grid[rm.To].Piece = NoPiece
	}

	if len(b.history) > 0 {
		b.enPassant = b.history[len(b.history)-1].EnablesEnPassant
	} else {
		b.enPassant = lang.Optional[Coord]{}
	}
	return true
}

// DoubleUndo undoes one ply if both sides are human, or two plies (the computer's reply and the
// human's move that provoked it) if either side is not human. Mirrors the "undo past the
// computer's move" convenience a human-vs-computer game needs.
func (b *Board) DoubleUndo(whiteIsHuman, blackIsHuman bool) bool {
	if whiteIsHuman && blackIsHuman {
		return b.UndoMove()
	}
	first := b.UndoMove()
	second := b.UndoMove()
	return first || second
}
