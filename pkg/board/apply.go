package board

import (
	"github.com/seekerror/stdlib/pkg/lang"
)

// TryApplyHuman wraps the (from, to) coordinates as a move record and defers to TestAndApply.
func (b *Board) TryApplyHuman(player Color, from, to Coord) bool {
	fromSq, ok := b.Get(from)
	if !ok {
		return false
	}
	m := Move{Player: player, From: from, To: to, MovedPiece: fromSq.Piece}
	return b.TestAndApply(m, player)
}

// TestAndApply validates the move shape (and, for castling, the transactional check below)
// before committing via apply. Every precondition failure is a short-circuit: no board state
// is touched.
func (b *Board) TestAndApply(m Move, player Color) bool {
	if b.turn != player {
		return false
	}
	fromSq, ok := b.Get(m.From)
	if !ok || fromSq.Piece.IsEmpty() {
		return false
	}
	if fromSq.Piece.Color != player {
		return false
	}
	m.MovedPiece = fromSq.Piece

	if !b.IsValid(m.MovedPiece, m.From, m.To) {
		return false
	}

	if isCastlingAttempt(m.MovedPiece, m.From, m.To) {
		if !b.canCastleThroughCheck(m.MovedPiece, m.From, m.To) {
			return false
		}
	}

	return b.apply(m)
}

func isCastlingAttempt(piece Piece, from, to Coord) bool {
	return piece.Kind == King && from.Rank == to.Rank && abs(int(from.File)-int(to.File)) == 2
}

// canCastleThroughCheck is the castling transactional check: the king may not be in check on
// its home square, nor may it pass through an attacked square. It probes each square the king
// passes through with a synthesized one-step king move, applying and undoing through the same
// self-check machinery as a real move -- one square for a short (kingside) castle, two squares
// in sequence for a long (queenside) castle.
func (b *Board) canCastleThroughCheck(piece Piece, from, to Coord) bool {
	if b.IsInCheck(piece.Color) {
		return false
	}

	dir := sign(int(to.File) - int(from.File))
	steps := 1
	if dir < 0 {
		steps = 2
	}

	turn := b.turn
	cur := from
	applied := 0
	for i := 0; i < steps; i++ {
		next := cur.Offset(0, dir)
		probe := Move{Player: piece.Color, From: cur, To: next, MovedPiece: b.grid[cur].Piece}
		if !b.apply(probe) {
			break
		}
		applied++
		cur = next
	}
	for i := 0; i < applied; i++ {
		b.UndoMove()
	}
	b.turn = turn
	return applied == steps
}

// apply performs the move unconditionally and tests the result for self-check, rolling back
// and returning false if the mover's own king is left attacked. On success the move (and, for
// castling, the preceding rook move) is committed to history and the turn has advanced.
func (b *Board) apply(m Move) bool {
	// (1) Capture detection.
	b.detectCapture(&m)

	// Compute the remaining move-record fields from the pre-move board state.
	castling := isCastlingAttempt(m.MovedPiece, m.From, m.To) && m.MovedPiece.CanCastle
	var rookMove Move
	if castling {
		rookMove = b.buildRookCastlingMove(m)
		m.CastlingMove = true
	}
	switch m.MovedPiece.Kind {
	case Pawn:
		if m.MovedPiece.OnInitialSquare {
			m.ChangedInitialPosition = true
			if abs(int(m.To.Rank)-int(m.From.Rank)) == 2 {
				dir := sign(int(m.To.Rank) - int(m.From.Rank))
				m.EnablesEnPassant = lang.Some(NewCoord(Rank(int(m.From.Rank)+dir), m.From.File))
			}
		}
	case Rook, King:
		if m.MovedPiece.CanCastle {
			m.ChangedInitialPosition = true
		}
	}

	// (2) Castling side-effects: king-position cache, rook's move.
	if m.MovedPiece.Kind == King {
		b.setKingPos(m.MovedPiece.Color, m.To)
	}
	if castling {
		b.history = append(b.history, rookMove)
		rookPiece := b.grid[rookMove.From].Piece
		rookPiece.CanCastle = false
		b.grid[rookMove.To].Piece = rookPiece
		b.grid[rookMove.From].Piece = NoPiece
	}

	// (3) History append of the main move record.
	b.history = append(b.history, m)

	// (4) En-passant capture execution.
	if m.EnPassantMove {
		b.grid[enPassantCapturedSquare(m)].Piece = NoPiece
	}

	// (5) Normal placement.
	b.grid[m.To].Piece = m.MovedPiece
	b.grid[m.From].Piece = NoPiece
	b.enPassant = lang.Optional[Coord]{}

	// (6) Special side-effects for this move's piece.
	sq := b.grid[m.To]
	switch sq.Piece.Kind {
	case Pawn:
		sq.Piece.OnInitialSquare = false
		if ep, ok := m.EnablesEnPassant.V(); ok {
			b.enPassant = lang.Some(ep)
		}
		if (sq.Piece.Color == White && m.To.Rank == Rank8) || (sq.Piece.Color == Black && m.To.Rank == Rank1) {
			sq.Piece = NewPiece(Queen, sq.Piece.Color)
		}
	case Rook, King:
		sq.Piece.CanCastle = false
	}

	// (7) Self-check test.
	mover := m.Player
	b.turn = mover.Opponent()
	if b.IsInCheck(mover) {
		b.UndoMove()
		return false
	}
	return true
}

func (b *Board) detectCapture(m *Move) {
	toSq := b.grid[m.To]
	if !toSq.Piece.IsEmpty() {
		m.KilledPiece = lang.Some(toSq.Piece)
		return
	}
	if m.MovedPiece.Kind == Pawn && m.From.File != m.To.File {
		behind := enPassantCapturedSquare(*m)
		if sq, ok := b.Get(behind); ok && !sq.Piece.IsEmpty() {
			m.EnPassantMove = true
			m.KilledPiece = lang.Some(sq.Piece)
		}
	}
}

// enPassantCapturedSquare is the square behind the destination, in the direction the pawn
// came from: the square of the pawn that just advanced two squares.
func enPassantCapturedSquare(m Move) Coord {
	dir := 1
	if m.MovedPiece.Color == Black {
		dir = -1
	}
	return NewCoord(Rank(int(m.To.Rank)-dir), m.To.File)
}

func (b *Board) buildRookCastlingMove(m Move) Move {
	short := m.From.File < m.To.File
	var from, to Coord
	if short {
		from = NewCoord(m.From.Rank, m.From.File+3)
		to = NewCoord(m.From.Rank, m.From.File+1)
	} else {
		from = NewCoord(m.From.Rank, m.From.File-4)
		to = NewCoord(m.From.Rank, m.From.File-1)
	}
	return Move{Player: m.Player, From: from, To: to, MovedPiece: b.grid[from].Piece}
}

// IsInCheck reports whether c's king is targeted by any pseudo-legal move of the opponent.
func (b *Board) IsInCheck(c Color) bool {
	king := b.kingPos(c)
	for _, m := range b.AllMoves(c.Opponent()) {
		if m.To == king {
			return true
		}
	}
	return false
}
