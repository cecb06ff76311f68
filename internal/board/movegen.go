package board

// kingOffsets and knightOffsets are the fixed single-step candidate
// moves for non-sliding pieces.
var kingOffsets = [8]Point{
	{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: -1},
	{X: 0, Y: -1}, {X: -1, Y: -1}, {X: -1, Y: 0}, {X: -1, Y: 1},
}

var knightOffsets = [8]Point{
	{X: 1, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: -1}, {X: 1, Y: -2},
	{X: -1, Y: -2}, {X: -2, Y: -1}, {X: -2, Y: 1}, {X: -1, Y: 2},
}

// rookDirections and bishopDirections are the sliding directions for
// rays; Queen is their union.
var rookDirections = [4]Point{
	{X: 0, Y: 1}, {X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: -1},
}

var bishopDirections = [4]Point{
	{X: 1, Y: 1}, {X: -1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: -1},
}

// MoveGenerator produces pseudo-legal moves for one side, reading the
// board and the side's FigureIndex. It never filters moves that leave
// the mover's own king attacked; the search treats king capture as the
// terminal condition instead.
type MoveGenerator struct {
	Board   *Board
	Figures *FigureIndex
}

// NewMoveGenerator builds a generator over the given board and figure
// index. The two must belong to the same side and the same position.
func NewMoveGenerator(b *Board, figures *FigureIndex) *MoveGenerator {
	return &MoveGenerator{Board: b, Figures: figures}
}

// Fill clears list and appends every pseudo-legal move for every piece
// currently in the generator's FigureIndex.
func (g *MoveGenerator) Fill(list *MoveList) {
	list.Clear()
	g.Figures.Iter(func(p Point) {
		g.FillForFigure(p, list)
	})
}

// FillForFigure appends the pseudo-legal moves for the single piece at
// p, without clearing list first. Used both by Fill and directly by
// callers that want the legal moves from one square (e.g. a console
// driver listing moves for a selected piece).
func (g *MoveGenerator) FillForFigure(p Point, list *MoveList) {
	f := g.Board.At(p)
	switch f.Rank() {
	case RankKing:
		g.stepMoves(p, kingOffsets[:], list)
	case RankQueen:
		g.slideMoves(p, rookDirections[:], list)
		g.slideMoves(p, bishopDirections[:], list)
	case RankRook:
		g.slideMoves(p, rookDirections[:], list)
	case RankBishop:
		g.slideMoves(p, bishopDirections[:], list)
	case RankKnight:
		g.stepMoves(p, knightOffsets[:], list)
	case RankPawn:
		g.pawnMoves(p, f, list)
	case RankNone:
		panic("board: no figure at " + p.String())
	case RankOut:
		panic("board: out of board at " + p.String())
	}
}

// destination reads one step away from p and reports the point
// together with whether it lies on the board at all. Off-board reads
// cost one memory load instead of a coordinate comparison, since the
// guard band already carries RankOut.
func (g *MoveGenerator) destination(p Point, dx, dy int8) (Point, bool) {
	to := p.Add(Point{X: dx, Y: dy})
	return to, g.Board.At(to).Rank() != RankOut
}

func (g *MoveGenerator) stepMoves(p Point, offsets []Point, list *MoveList) {
	color := g.Board.At(p).Color()
	for _, d := range offsets {
		to, onBoard := g.destination(p, d.X, d.Y)
		if !onBoard {
			continue
		}
		if g.Board.At(to).Color() == color {
			continue
		}
		list.Push(Move{From: p, To: to, Type: MoveSimple})
	}
}

func (g *MoveGenerator) slideMoves(p Point, directions []Point, list *MoveList) {
	color := g.Board.At(p).Color()
	enemy := color.Invert()
	for _, d := range directions {
		cur := p
		for {
			to, onBoard := g.destination(cur, d.X, d.Y)
			if !onBoard {
				break
			}
			toColor := g.Board.At(to).Color()
			if toColor == color {
				break
			}
			list.Push(Move{From: p, To: to, Type: MoveSimple})
			if toColor == enemy {
				break
			}
			cur = to
		}
	}
}

func (g *MoveGenerator) pawnMoves(p Point, f Figure, list *MoveList) {
	var dir int8
	var enemy Color
	var startRank, lastRank int8
	switch f.Color() {
	case ColorWhite:
		dir, enemy, startRank, lastRank = 1, ColorBlack, 1, 7
	case ColorBlack:
		dir, enemy, startRank, lastRank = -1, ColorWhite, 6, 0
	default:
		panic("board: pawn with no color at " + p.String())
	}

	for _, dx := range [2]int8{1, -1} {
		capture := p.Add(Point{X: dx, Y: dir})
		if g.Board.At(capture).Color() == enemy {
			list.Push(Move{From: p, To: capture, Type: MoveSimple})
		}
	}

	push := p.Add(Point{X: 0, Y: dir})
	if g.Board.At(push).Rank() == RankNone {
		if push.Y == lastRank {
			list.Push(Move{From: p, To: push, Type: MoveTransform})
		} else {
			list.Push(Move{From: p, To: push, Type: MoveSimple})
		}

		if p.Y == startRank {
			doublePush := p.Add(Point{X: 0, Y: dir * 2})
			if g.Board.At(doublePush).Rank() == RankNone {
				list.Push(Move{From: p, To: doublePush, Type: MoveSimple})
			}
		}
	}
}
