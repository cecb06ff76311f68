// Package engine implements the chess AI search engine.
package engine

import "github.com/zzuummaa/chess-algorithm/internal/board"

// MaterialFn scores a figure by its raw piece weight, ignoring where it
// stands. It is the material half of Evaluate's position score.
func MaterialFn(p board.Point, f board.Figure) int32 {
	return f.Weight()
}

// SimplePositionalFn scores a figure by its color and its square:
// (color byte - 64) + 8*y + (8 - x). The first term is 0 for white
// (color byte 64) and +64 for black (color byte 128); the rest grows
// with y and shrinks with x for both colors alike. MoveList.SortBy also
// uses it to rank candidate moves before AlphaBeta searches them.
func SimplePositionalFn(p board.Point, f board.Figure) int32 {
	return int32(f.Color()) - 64 + 8*int32(p.Y) + (8 - int32(p.X))
}

// evalFn combines material and positional scoring for a single figure.
func evalFn(p board.Point, f board.Figure) int32 {
	return MaterialFn(p, f) + SimplePositionalFn(p, f)
}

// Evaluate returns the static evaluation of ctl's position from the
// side-to-move's perspective: the sum of the friend side's figures
// minus the sum of the enemy side's, each scored by evalFn. A king
// capture that has already happened shows up here as an asymmetric
// WeightKing term, which is how the search recognizes a won position
// without any explicit check detection.
func Evaluate(ctl *board.Controller) int32 {
	var score int32
	ctl.Friend.Iter(func(p board.Point) {
		score += evalFn(p, ctl.Board.At(p))
	})
	ctl.Enemy.Iter(func(p board.Point) {
		score -= evalFn(p, ctl.Board.At(p))
	})
	return score
}
