package board

// IsValid is the pure move-shape predicate: given a piece, its source square and a proposed
// target, is this a legal pseudo-move under piece-shape rules? It never mutates the board and
// never considers whether the move leaves the mover's own king in check -- that is the move
// service's job (TestAndApply).
func (b *Board) IsValid(piece Piece, from, to Coord) bool {
	if !to.IsValid() {
		return false
	}
	switch piece.Kind {
	case King:
		return b.isValidKingMove(piece, from, to)
	case Queen:
		return b.isValidSlidingMove(piece, from, to, true, true)
	case Rook:
		return b.isValidSlidingMove(piece, from, to, true, false)
	case Bishop:
		return b.isValidSlidingMove(piece, from, to, false, true)
	case Knight:
		return b.isValidKnightMove(piece, from, to)
	case Pawn:
		return b.isValidPawnMove(piece, from, to)
	default:
		return false
	}
}

func (b *Board) isValidKingMove(piece Piece, from, to Coord) bool {
	toSq, ok := b.Get(to)
	if !ok {
		return false
	}
	if !toSq.Piece.IsEmpty() && toSq.Piece.Color == piece.Color {
		return false
	}

	dr := int(from.Rank) - int(to.Rank)
	df := int(from.File) - int(to.File)
	switch {
	case abs(dr)+abs(df) == 1:
		return true
	case abs(dr)+abs(df) == 2 && dr != 0 && df != 0:
		return true
	case dr == 0 && df == -2:
		// short (kingside) castle: king moves toward FileH.
		return piece.CanCastle && b.shortCastleShapeOK(piece, from)
	case dr == 0 && df == 2:
		// long (queenside) castle: king moves toward FileA.
		return piece.CanCastle && b.longCastleShapeOK(piece, from)
	default:
		return false
	}
}

func (b *Board) shortCastleShapeOK(piece Piece, from Coord) bool {
	f1, ok1 := b.Get(from.Offset(0, 1))
	f2, ok2 := b.Get(from.Offset(0, 2))
	rookSq, ok3 := b.Get(from.Offset(0, 3))
	if !ok1 || !ok2 || !ok3 {
		return false
	}
	if !f1.Piece.IsEmpty() || !f2.Piece.IsEmpty() {
		return false
	}
	return rookSq.Piece.Kind == Rook && rookSq.Piece.Color == piece.Color && rookSq.Piece.CanCastle
}

func (b *Board) longCastleShapeOK(piece Piece, from Coord) bool {
	f1, ok1 := b.Get(from.Offset(0, -1))
	f2, ok2 := b.Get(from.Offset(0, -2))
	f3, ok3 := b.Get(from.Offset(0, -3))
	rookSq, ok4 := b.Get(from.Offset(0, -4))
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return false
	}
	if !f1.Piece.IsEmpty() || !f2.Piece.IsEmpty() || !f3.Piece.IsEmpty() {
		return false
	}
	return rookSq.Piece.Kind == Rook && rookSq.Piece.Color == piece.Color && rookSq.Piece.CanCastle
}

func (b *Board) isValidKnightMove(piece Piece, from, to Coord) bool {
	toSq, ok := b.Get(to)
	if !ok {
		return false
	}
	if !toSq.Piece.IsEmpty() && toSq.Piece.Color == piece.Color {
		return false
	}
	dr := abs(int(from.Rank) - int(to.Rank))
	df := abs(int(from.File) - int(to.File))
	return dr*df == 2
}

func (b *Board) isValidPawnMove(piece Piece, from, to Coord) bool {
	toSq, ok := b.Get(to)
	if !ok {
		return false
	}
	if !toSq.Piece.IsEmpty() && toSq.Piece.Color == piece.Color {
		return false
	}

	dir := 1
	if piece.Color == Black {
		dir = -1
	}
	rankChange := (int(to.Rank) - int(from.Rank)) * dir
	fileChange := int(to.File) - int(from.File)

	switch {
	case rankChange == 2 && fileChange == 0:
		if !piece.OnInitialSquare || !toSq.Piece.IsEmpty() {
			return false
		}
		mid, ok := b.Get(from.Offset(dir, 0))
		return ok && mid.Piece.IsEmpty()
	case rankChange == 1 && abs(fileChange) == 1:
		if !toSq.Piece.IsEmpty() {
			return toSq.Piece.Color != piece.Color
		}
		target, has := b.enPassant.V()
		return has && target == to
	case rankChange == 1 && fileChange == 0:
		return toSq.Piece.IsEmpty()
	default:
		return false
	}
}

// isValidSlidingMove handles Queen (orth && diag), Rook (orth only), Bishop (diag only).
func (b *Board) isValidSlidingMove(piece Piece, from, to Coord, orth, diag bool) bool {
	toSq, ok := b.Get(to)
	if !ok {
		return false
	}
	dr := int(to.Rank) - int(from.Rank)
	df := int(to.File) - int(from.File)

	isOrth := (dr == 0) != (df == 0)
	isDiag := dr != 0 && abs(dr) == abs(df)

	switch {
	case orth && isOrth:
	case diag && isDiag:
	default:
		return false
	}

	if !toSq.Piece.IsEmpty() && toSq.Piece.Color == piece.Color {
		return false
	}
	return b.slidingPathClear(from, to)
}

// slidingPathClear walks backward from to toward from, one square at a time; every
// intermediate square must be empty. Captures may not leap: occupancy of the destination
// itself is checked by the caller.
func (b *Board) slidingPathClear(from, to Coord) bool {
	dr := sign(int(to.Rank) - int(from.Rank))
	df := sign(int(to.File) - int(from.File))

	cur := to.Offset(-dr, -df)
	for cur != from {
		sq, ok := b.Get(cur)
		if !ok || !sq.Piece.IsEmpty() {
			return false
		}
		cur = cur.Offset(-dr, -df)
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
