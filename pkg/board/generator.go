package board

// kingOffsets and knightOffsets are enumerated in a fixed order so that search's tie-breaking
// ("first move to achieve the best value wins") is reproducible.
var kingOffsets = [][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	{0, -2}, {0, 2},
}

var knightOffsets = [][2]int{
	{2, 1}, {2, -1}, {1, -2}, {1, 2},
	{-1, -2}, {-1, 2}, {-2, -1}, {-2, 1},
}

// AllMoves enumerates every pseudo-legal move of the given side to move, by walking the board
// in increasing (rank, file) order and delegating to the per-kind enumerator for each square
// holding a piece of that color.
func (b *Board) AllMoves(c Color) []Move {
	var moves []Move
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			coord := NewCoord(r, f)
			sq := b.grid[coord]
			if sq.Piece.IsEmpty() || sq.Piece.Color != c {
				continue
			}
			moves = append(moves, b.allValidMovesOfSquare(coord, sq.Piece, c)...)
		}
	}
	return moves
}

// AllValidMovesOfSquare enumerates the pseudo-legal moves of the piece on c, for that piece's
// own color; it does not check whether that color is the board's side to move. Used by the
// façade to highlight a square's available moves and by the evaluator to count mobility.
func (b *Board) AllValidMovesOfSquare(c Coord) []Move {
	sq, ok := b.Get(c)
	if !ok || sq.Piece.IsEmpty() {
		return nil
	}
	return b.allValidMovesOfSquare(c, sq.Piece, sq.Piece.Color)
}

func (b *Board) allValidMovesOfSquare(from Coord, piece Piece, player Color) []Move {
	switch piece.Kind {
	case Pawn:
		return b.pawnMoves(from, piece, player)
	case Knight:
		return b.offsetMoves(from, piece, player, knightOffsets)
	case Bishop:
		return b.diagonalMoves(from, piece, player)
	case Rook:
		return append(b.verticalMoves(from, piece, player), b.horizontalMoves(from, piece, player)...)
	case Queen:
		moves := b.diagonalMoves(from, piece, player)
		moves = append(moves, b.verticalMoves(from, piece, player)...)
		moves = append(moves, b.horizontalMoves(from, piece, player)...)
		return moves
	case King:
		return b.offsetMoves(from, piece, player, kingOffsets)
	default:
		return nil
	}
}

func (b *Board) offsetMoves(from Coord, piece Piece, player Color, offsets [][2]int) []Move {
	var moves []Move
	for _, o := range offsets {
		to := from.Offset(o[0], o[1])
		if to.IsValid() && b.IsValid(piece, from, to) {
			moves = append(moves, b.newMove(player, from, to))
		}
	}
	return moves
}

func (b *Board) pawnMoves(from Coord, piece Piece, player Color) []Move {
	dir := 1
	if piece.Color == Black {
		dir = -1
	}
	candidates := [][2]int{{dir, 0}, {2 * dir, 0}, {dir, 1}, {dir, -1}}
	return b.offsetMoves(from, piece, player, candidates)
}

// ray walks a single direction from from, stopping at the first candidate the validator
// rejects. Off-board lookups and friendly-piece occupancy are both validator rejections, so
// this also naturally terminates rays at the board edge.
func (b *Board) ray(from Coord, piece Piece, player Color, dRank, dFile int) []Move {
	var moves []Move
	for i := 1; ; i++ {
		to := from.Offset(dRank*i, dFile*i)
		if !to.IsValid() || !b.IsValid(piece, from, to) {
			break
		}
		moves = append(moves, b.newMove(player, from, to))
	}
	return moves
}

func (b *Board) horizontalMoves(from Coord, piece Piece, player Color) []Move {
	moves := b.ray(from, piece, player, 0, 1)
	return append(moves, b.ray(from, piece, player, 0, -1)...)
}

func (b *Board) verticalMoves(from Coord, piece Piece, player Color) []Move {
	moves := b.ray(from, piece, player, 1, 0)
	return append(moves, b.ray(from, piece, player, -1, 0)...)
}

func (b *Board) diagonalMoves(from Coord, piece Piece, player Color) []Move {
	var moves []Move
	moves = append(moves, b.ray(from, piece, player, 1, 1)...)
	moves = append(moves, b.ray(from, piece, player, -1, 1)...)
	moves = append(moves, b.ray(from, piece, player, 1, -1)...)
	moves = append(moves, b.ray(from, piece, player, -1, -1)...)
	return moves
}

func (b *Board) newMove(player Color, from, to Coord) Move {
	sq := b.grid[from]
	return Move{Player: player, From: from, To: to, MovedPiece: sq.Piece}
}
