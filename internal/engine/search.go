package engine

import "github.com/zzuummaa/chess-algorithm/internal/board"

// Infinity is the search's initial score bound, equal to the king's
// material weight. It is not a strict bound: a position in which one
// side has lost its king evaluates beyond it once the remaining
// material and positional terms are added.
const Infinity = int32(board.WeightInfinity)

// Result is the outcome of a fixed-depth search: the side-to-move's
// score and, when at least one move existed, the move that achieves
// it. Ok is false when depth is zero or less, or when the side to move
// had no pseudo-legal moves at the root.
type Result struct {
	Score int32
	Move  board.Move
	Ok    bool
}

// MinMax performs an unpruned negamax search to depth plies, evaluating
// leaves with Evaluate and incrementing ctl.PositionCounter once per
// leaf visited. It walks ctl.FriendMoves() in generation order with no
// move ordering.
func MinMax(ctl *board.Controller, depth int) Result {
	if depth <= 0 {
		ctl.PositionCounter++
		return Result{Score: Evaluate(ctl)}
	}

	list := ctl.FriendMoves()
	if list.Len() == 0 {
		return Result{Score: -Infinity}
	}

	bestScore := -Infinity
	bestMove := list.At(0)
	for _, m := range list.Moves() {
		fromInfo, toInfo := ctl.MakeMove(m)
		ctl.PassMoveToEnemy()
		child := MinMax(ctl, depth-1)
		ctl.PassMoveToEnemy()
		ctl.UnmakeMove(m, fromInfo, toInfo)

		score := -child.Score
		if score > bestScore {
			bestScore = score
			bestMove = m
		}
	}
	return Result{Score: bestScore, Move: bestMove, Ok: true}
}

// AlphaBeta performs a principal-variation search to depth plies:
// moves are sorted by SimplePositionalFn before being tried, and every
// move, the first included, is probed with a null window before a full
// re-search, which only happens when the probe score lies strictly
// between alpha and beta. Given the same starting position it agrees
// with MinMax on score. A re-searched move is counted twice, so at
// shallow depth it can visit more positions than MinMax (from the
// starting position at depth 1: 21 against 20).
func AlphaBeta(ctl *board.Controller, depth int, alpha, beta int32) Result {
	if depth <= 0 {
		ctl.PositionCounter++
		return Result{Score: Evaluate(ctl)}
	}

	list := ctl.FriendMoves()
	if list.Len() == 0 {
		return Result{Score: -Infinity}
	}
	list.SortBy(ctl.Board, SimplePositionalFn)

	bestScore := -Infinity
	bestMove := list.At(0)
	for _, m := range list.Moves() {
		fromInfo, toInfo := ctl.MakeMove(m)
		ctl.PassMoveToEnemy()

		score := -AlphaBeta(ctl, depth-1, -(alpha+1), -alpha).Score
		if alpha < score && score < beta {
			score = -AlphaBeta(ctl, depth-1, -beta, -alpha).Score
		}

		ctl.PassMoveToEnemy()
		ctl.UnmakeMove(m, fromInfo, toInfo)

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha >= beta {
			break
		}
	}
	return Result{Score: bestScore, Move: bestMove, Ok: true}
}
