package engine

import "github.com/zzuummaa/chess-algorithm/internal/board"

// Difficulty selects a fixed search depth. There is no time budget:
// depth is the only knob, since the engine has no time management.
type Difficulty int

const (
	Easy   Difficulty = iota // 2 plies
	Medium                   // 4 plies
	Hard                     // 6 plies
)

// DifficultySettings maps a difficulty to its search depth.
var DifficultySettings = map[Difficulty]int{
	Easy:   2,
	Medium: 4,
	Hard:   6,
}

// Engine wraps a search algorithm choice and depth behind a single
// entry point for drivers that don't want to know about MinMax vs.
// AlphaBeta. Depth is a plain ply count, not tied to Difficulty; a
// driver that only knows about difficulty levels can set Depth from
// DifficultySettings, but a driver with its own notion of depth (a
// -depth flag, say) can set it directly.
type Engine struct {
	Depth        int
	UseAlphaBeta bool
}

// NewEngine returns an Engine at the given difficulty's depth,
// defaulting to the pruned alpha-beta search.
func NewEngine(d Difficulty) *Engine {
	return &Engine{Depth: DifficultySettings[d], UseAlphaBeta: true}
}

// BestMove searches ctl's position at the engine's configured depth
// and returns the chosen move. Ok is false when the side to move has
// no pseudo-legal moves.
func (e *Engine) BestMove(ctl *board.Controller) (board.Move, bool) {
	var result Result
	if e.UseAlphaBeta {
		result = AlphaBeta(ctl, e.Depth, -Infinity, Infinity)
	} else {
		result = MinMax(ctl, e.Depth)
	}
	return result.Move, result.Ok
}
