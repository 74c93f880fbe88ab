package board

import (
	"fmt"

	"github.com/seekerror/stdlib/pkg/lang"
)

// Move is a value object describing a performed move and everything needed to reverse it.
// Two records are appended to history for a castling move: the rook's first, then the king's
// (the king's record is the one with CastlingMove set) -- see Board.UndoMove.
type Move struct {
	Player Color
	From   Coord
	To     Coord

	// MovedPiece is a snapshot of the piece as it was before the move, used to restore flags
	// on undo.
	MovedPiece Piece

	// KilledPiece is the captured piece, if any.
	KilledPiece lang.Optional[Piece]

	// CastlingMove is true on the king's move record of a castling pair; the rook's record
	// immediately precedes it in history.
	CastlingMove bool

	// ChangedInitialPosition is true when this move was the first move of a king, rook, or
	// pawn, so undo must restore the corresponding "fresh" flag.
	ChangedInitialPosition bool

	// EnablesEnPassant is the en-passant target square this move armed on the board, if any.
	EnablesEnPassant lang.Optional[Coord]

	// EnPassantMove is true if this move was itself an en-passant capture.
	EnPassantMove bool
}

func (m Move) String() string {
	return fmt.Sprintf("%v%v-%v", m.MovedPiece, m.From, m.To)
}
