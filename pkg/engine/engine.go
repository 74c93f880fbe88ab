// Package engine ties the board rules engine and the search package together into the
// player-facing game façade: starting a game, applying human and computer moves, undo, and
// reporting game status.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/herohde/chessgo/pkg/board"
	"github.com/herohde/chessgo/pkg/eval"
	"github.com/herohde/chessgo/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// PlayerKind distinguishes a human-controlled side from a computer-controlled one. It governs
// whether Undo takes back one ply or two (the computer's reply along with the human move that
// provoked it).
type PlayerKind int

const (
	Human PlayerKind = iota
	Computer
)

// Options are game creation options.
type Options struct {
	Preset    board.Preset
	White     PlayerKind
	Black     PlayerKind
	Depth     int
	Evaluator eval.Evaluator

	// Seed is unused by the evaluator or search, both of which are fully deterministic. Kept
	// for parity with the teacher's WithZobrist option, for a future noise or book hook.
	Seed int64
}

func (o Options) String() string {
	return fmt.Sprintf("{preset=%v, white=%v, black=%v, depth=%v}", o.Preset, o.White, o.Black, o.Depth)
}

// Option is a game creation option.
type Option func(*Options)

// WithPreset sets the starting position. Defaults to board.Normal.
func WithPreset(p board.Preset) Option {
	return func(o *Options) { o.Preset = p }
}

// WithPlayers sets which side, if any, is computer-controlled. Defaults to both human.
func WithPlayers(white, black PlayerKind) Option {
	return func(o *Options) { o.White, o.Black = white, black }
}

// WithDepth sets the search depth for computer moves. Defaults to 3.
func WithDepth(depth int) Option {
	return func(o *Options) { o.Depth = depth }
}

// WithEvaluator overrides the static evaluator used by computer moves. Defaults to eval.Static.
func WithEvaluator(ev eval.Evaluator) Option {
	return func(o *Options) { o.Evaluator = ev }
}

// WithSeed is unused by search or evaluation today; reserved for a future noise or book hook.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// Game is the player-facing façade over a single in-progress game.
type Game struct {
	opts Options

	b *board.Board

	// status is the last value GameStatus computed, cached for introspection only. GameStatus
	// always recomputes it fresh; nothing else in Game trusts this field being up to date.
	status board.Status

	mu sync.Mutex
}

// NewGame starts a new game under the given options.
func NewGame(ctx context.Context, opts ...Option) *Game {
	o := Options{
		Preset: board.Normal,
		White:  Human,
		Black:  Human,
		Depth:  3,
	}
	for _, fn := range opts {
		fn(&o)
	}
	if o.Evaluator == nil {
		o.Evaluator = eval.Static{}
	}

	g := &Game{opts: o, b: board.NewBoard(o.Preset), status: board.Active}
	logw.Infof(ctx, "New game %v: %v", version, o)
	return g
}

// CurrentPlayer returns the side to move.
func (g *Game) CurrentPlayer() board.Color {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.b.Turn()
}

// GetSquare returns the piece at c.
func (g *Game) GetSquare(c board.Coord) (board.Piece, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	sq, ok := g.b.Get(c)
	if !ok {
		return board.NoPiece, false
	}
	return sq.Piece, true
}

// AllValidMovesOfSquare returns the pseudo-legal moves available from c, for move highlighting.
func (g *Game) AllValidMovesOfSquare(c board.Coord) []board.Move {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.b.AllValidMovesOfSquare(c)
}

// LastMove returns the most recently applied move, if any.
func (g *Game) LastMove() (board.Move, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.b.LastMove()
}

// GameStatus decides ACTIVE/CHECKMATE/STALEMATE by attempting every pseudo-legal move of the
// side to move through the board's transactional apply/undo; if any attempt succeeds, the
// position is ACTIVE. Otherwise the side to move is either checkmated (in check) or stalemated
// (not in check). The result is cached on Game for introspection, but every call recomputes it
// fresh -- the board is left unchanged.
func (g *Game) GameStatus() board.Status {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.status = g.computeStatus()
	return g.status
}

func (g *Game) computeStatus() board.Status {
	turn := g.b.Turn()
	for _, m := range g.b.AllMoves(turn) {
		if g.b.TestAndApply(m, turn) {
			g.b.UndoMove()
			return board.Active
		}
	}
	if g.b.IsInCheck(turn) {
		return board.Checkmate
	}
	return board.Stalemate
}

// TryHumanMove attempts to apply a human move for the side to move. It takes no player argument:
// the move is always made for the current player, so there is no wrong-turn failure. It fails
// if the move is illegal, or if the current player has no legal move at all.
func (g *Game) TryHumanMove(ctx context.Context, from, to board.Coord) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	player := g.b.Turn()
	if !g.b.TryApplyHuman(player, from, to) {
		return false
	}
	logw.Infof(ctx, "Human move %v: %v -> %v", player, from, to)
	return true
}

// ComputerMove searches for and applies the best move for the side to move.
func (g *Game) ComputerMove(ctx context.Context) (board.Move, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	result, ok := search.BestMove(ctx, g.b, g.opts.Depth, g.opts.Evaluator)
	if !ok {
		return board.Move{}, false
	}

	player := g.b.Turn()
	if !g.b.TryApplyHuman(player, result.Move.From, result.Move.To) {
		return board.Move{}, false
	}
	logw.Infof(ctx, "Computer move %v: %v", player, result)
	return result.Move, true
}

// Undo takes back the last move: one ply if both sides are human, two (the computer's reply
// and the human move that provoked it) otherwise.
func (g *Game) Undo(ctx context.Context) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	ok := g.b.DoubleUndo(g.opts.White == Human, g.opts.Black == Human)
	if ok {
		logw.Infof(ctx, "Undo: %v", g.b)
	}
	return ok
}
