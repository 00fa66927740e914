// Package game implements the game state machine: move validation and
// application, undo, history, terminal state detection and read-only
// snapshots for display. A Game is not safe for concurrent use; callers
// serialize access to it.
package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// RepetitionLimit is the number of occurrences of a position that draws the game.
const RepetitionLimit = 3

// Notation selects how transcript lines render moves.
type Notation int

const (
	SAN        Notation = iota // "Nf3", "exd6", "O-O", "e8=Q+"
	Coordinate                 // "g1f3", "e7e8q"
)

// String returns the string representation of a notation style.
func (n Notation) String() string {
	if n == Coordinate {
		return "coordinate"
	}
	return "san"
}

// HistoryEntry records one applied move with everything needed to reverse it.
type HistoryEntry struct {
	Move       chess.Move
	Piece      chess.Piece // The piece that moved, before any promotion
	Undo       chess.Undo
	SAN        string
	PriorState State
}

// Captured returns the piece removed by the move, if any.
func (h HistoryEntry) Captured() (chess.Piece, bool) {
	return h.Undo.Captured, h.Undo.HasCaptured
}

// Line returns the transcript line for the entry, e.g. "1. e4" or "1... e5".
func (h HistoryEntry) Line(style Notation) string {
	text := h.SAN
	if style == Coordinate {
		text = h.Move.String()
	}
	if h.Piece.Colour == chess.White {
		return fmt.Sprintf("%d. %s", h.Undo.MoveNumber, text)
	}
	return fmt.Sprintf("%d... %s", h.Undo.MoveNumber, text)
}

// MoveResult describes a move that Play accepted.
type MoveResult struct {
	Move        chess.Move
	Piece       chess.Piece
	Captured    chess.Piece
	HasCaptured bool
	SAN         string
	Line        string // Transcript line in the game's notation style
	State       State  // State after the move
}

// Game owns a position and its history. The zero value is not usable; create
// games with New.
type Game struct {
	id       uuid.UUID
	startFEN string
	notation Notation

	pos     *chess.Position
	history []HistoryEntry
	state   State

	// legal caches the legal moves of the side to move.
	legal []chess.Move
	reps  *hashing.RepetitionTable
}

// gameConfig collects option values before the game is built.
type gameConfig struct {
	fen      string
	id       uuid.UUID
	hasID    bool
	notation Notation
}

// Option configures a Game.
type Option func(*gameConfig)

// WithFEN starts the game from a FEN position instead of the standard start.
func WithFEN(fen string) Option {
	return func(cfg *gameConfig) {
		cfg.fen = fen
	}
}

// WithID sets the game identifier. A random one is generated otherwise.
func WithID(id uuid.UUID) Option {
	return func(cfg *gameConfig) {
		cfg.id = id
		cfg.hasID = true
	}
}

// WithNotation sets the notation style used for transcript lines.
func WithNotation(style Notation) Option {
	return func(cfg *gameConfig) {
		cfg.notation = style
	}
}

// New creates a game. It fails with ErrInvalidFEN if the starting FEN does
// not parse or leaves the side that just moved in check.
func New(opts ...Option) (*Game, error) {
	cfg := &gameConfig{
		fen:      engine.InitialFEN,
		notation: SAN,
	}
	for _, f := range opts {
		f(cfg)
	}

	pos, err := engine.NewPositionFromFEN(cfg.fen)
	if err != nil {
		return nil, err
	}
	if engine.IsInCheck(&pos.Board, pos.ToMove.Opposite()) {
		return nil, &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    cfg.fen,
			Expected: "side not to move out of check",
			Got:      pos.ToMove.Opposite().String() + " in check",
		}
	}

	id := cfg.id
	if !cfg.hasID {
		id = uuid.New()
	}

	g := &Game{
		id:       id,
		startFEN: engine.PositionToFEN(pos),
		notation: cfg.notation,
		pos:      pos,
		reps:     hashing.NewRepetitionTable(),
	}
	g.reps.Push(hashing.Key(pos))
	g.refresh()
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// StartFEN returns the FEN of the position the game started from.
func (g *Game) StartFEN() string {
	return g.startFEN
}

// FEN returns the FEN of the current position.
func (g *Game) FEN() string {
	return engine.PositionToFEN(g.pos)
}

// Notation returns the transcript notation style.
func (g *Game) Notation() Notation {
	return g.notation
}

// Position returns a copy of the current position.
func (g *Game) Position() *chess.Position {
	return g.pos.Copy()
}

// SideToMove returns the colour whose turn it is.
func (g *Game) SideToMove() chess.Colour {
	return g.pos.ToMove
}

// State returns the state after the most recent move.
func (g *Game) State() State {
	return g.state
}

// Ply returns the number of moves played.
func (g *Game) Ply() int {
	return len(g.history)
}

// LegalMoves returns the legal moves of the side to move. It is empty once
// the game is over.
func (g *Game) LegalMoves() []chess.Move {
	if g.state.IsOver() {
		return []chess.Move{}
	}
	return append([]chess.Move(nil), g.legal...)
}

// LegalMovesFrom returns the legal moves of the piece on sq, for a display
// to highlight destinations.
func (g *Game) LegalMovesFrom(sq chess.Square) []chess.Move {
	var moves []chess.Move
	if g.state.IsOver() {
		return moves
	}
	for _, m := range g.legal {
		if m.From == sq {
			moves = append(moves, m)
		}
	}
	return moves
}

// History returns a copy of the applied moves, oldest first.
func (g *Game) History() []HistoryEntry {
	return append([]HistoryEntry(nil), g.history...)
}

// Transcript returns one line per applied move in the game's notation style.
func (g *Game) Transcript() []string {
	lines := make([]string, len(g.history))
	for i, h := range g.history {
		lines[i] = h.Line(g.notation)
	}
	return lines
}

// PlayText parses coordinate notation and plays the move.
func (g *Game) PlayText(text string) (MoveResult, error) {
	req, err := engine.ParseMoveRequest(text)
	if err != nil {
		return MoveResult{}, g.moveError(err, text)
	}
	return g.Play(req)
}

// Play validates a move request against the legal move set and applies it.
// On error the game is unchanged.
func (g *Game) Play(req engine.MoveRequest) (MoveResult, error) {
	move, err := g.resolve(req)
	if err != nil {
		return MoveResult{}, g.moveError(err, req.String())
	}
	return g.apply(move), nil
}

// resolve maps a request onto exactly one legal move.
func (g *Game) resolve(req engine.MoveRequest) (chess.Move, error) {
	if g.state.IsOver() {
		return chess.Move{}, errors.ErrGameAlreadyOver
	}

	piece, ok := g.pos.Board.Get(req.From)
	if !ok {
		return chess.Move{}, errors.ErrNoPieceAtOrigin
	}
	if piece.Colour != g.pos.ToMove {
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "%s to move", g.pos.ToMove)
	}

	var candidates []chess.Move
	for _, m := range g.legal {
		if req.Matches(m) {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		return chess.Move{}, errors.ErrIllegalMove
	}

	if !candidates[0].IsPromotion() {
		if req.Promotion != chess.NoKind {
			return chess.Move{}, errors.Wrap(errors.ErrIllegalMove, "promotion piece given for a non-promotion")
		}
		return candidates[0], nil
	}

	if req.Promotion == chess.NoKind {
		return chess.Move{}, errors.ErrAmbiguousPromotion
	}
	for _, m := range candidates {
		if m.PromoteTo == req.Promotion {
			return m, nil
		}
	}
	return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "cannot promote to %s", req.Promotion)
}

// apply makes a resolved legal move and re-evaluates the game state.
func (g *Game) apply(move chess.Move) MoveResult {
	piece, _ := g.pos.Board.Get(move.From)
	san := engine.SAN(g.pos, move)

	undo := engine.MakeMove(g.pos, move)
	entry := HistoryEntry{
		Move:       move,
		Piece:      piece,
		Undo:       undo,
		SAN:        san,
		PriorState: g.state,
	}
	g.history = append(g.history, entry)
	g.reps.Push(hashing.Key(g.pos))
	g.refresh()

	return MoveResult{
		Move:        move,
		Piece:       piece,
		Captured:    undo.Captured,
		HasCaptured: undo.HasCaptured,
		SAN:         san,
		Line:        entry.Line(g.notation),
		State:       g.state,
	}
}

// Undo reverses the most recent move. It is allowed after the game has
// ended and restores the state that preceded the move.
func (g *Game) Undo() (HistoryEntry, error) {
	if len(g.history) == 0 {
		return HistoryEntry{}, errors.ErrNothingToUndo
	}

	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	engine.UnmakeMove(g.pos, last.Move, last.Undo)
	g.reps.Pop()

	g.legal = engine.LegalMoves(g.pos)
	g.state = last.PriorState
	return last, nil
}

// refresh recomputes the legal move cache and the game state for the side to move.
func (g *Game) refresh() {
	g.legal = engine.LegalMoves(g.pos)
	g.state = g.evaluate()
}

// evaluate applies the terminal rules in priority order: checkmate,
// stalemate, insufficient material, fifty moves, repetition, then check.
func (g *Game) evaluate() State {
	inCheck := engine.IsInCheck(&g.pos.Board, g.pos.ToMove)

	switch {
	case len(g.legal) == 0 && inCheck:
		return Mate(g.pos.ToMove.Opposite())
	case len(g.legal) == 0:
		return State{Status: Stalemate}
	case engine.HasInsufficientMaterial(&g.pos.Board):
		return State{Status: DrawByInsufficientMaterial}
	case engine.IsFiftyMoveDraw(g.pos):
		return State{Status: DrawByFiftyMove}
	case g.repetitions() >= RepetitionLimit:
		return State{Status: DrawByRepetition}
	case inCheck:
		return State{Status: Check}
	default:
		return State{Status: Ongoing}
	}
}

// repetitions returns how often the current position has occurred.
func (g *Game) repetitions() int {
	key, ok := g.reps.Last()
	if !ok {
		return 0
	}
	return g.reps.Count(key)
}

func (g *Game) moveError(err error, text string) error {
	return &errors.MoveError{
		Err:      err,
		Ply:      len(g.history) + 1,
		Colour:   g.pos.ToMove.String(),
		MoveText: text,
	}
}
