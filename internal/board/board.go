package board

import "strings"

// boardDim is the full padded width/height of the board array.
// boardOffset translates logical coordinates -4..11 into array indices
// 0..15, so the playable 8x8 region sits at offset (+4, +4).
const (
	boardDim    = 16
	boardOffset = 4
)

// DebugAssertions gates the out-of-range coordinate panic in Cell and
// CellMut. It defaults to true; a release build that wants the source
// engine's "undefined behavior" semantics for violated bounds can flip
// it off before constructing a Board.
var DebugAssertions = true

// Board is a 16x16 padded grid of Figures. The inner 8x8 region is the
// playable area; the surrounding 4-deep border permanently holds
// RankOut figures, so the move generator can read one, two or three
// squares past the edge of the board without any bounds check: an
// off-board read simply yields RankOut and the candidate move is
// rejected.
type Board struct {
	cells [boardDim][boardDim]Figure
}

// Empty returns a board with the playable region cleared to
// EmptyFigure and the guard band filled with OutFigure.
func Empty() *Board {
	b := &Board{}
	for x := 0; x < boardDim; x++ {
		for y := 0; y < boardDim; y++ {
			b.cells[x][y] = OutFigure
		}
	}
	for x := int8(0); x < 8; x++ {
		for y := int8(0); y < 8; y++ {
			*b.CellMut(x, y) = EmptyFigure
		}
	}
	return b
}

// Default returns a board set up with the standard chess starting
// position. Bishops and kings are stamped with the reserved flag bit;
// the search never reads it.
func Default() *Board {
	b := Empty()

	for x := int8(0); x < 8; x++ {
		*b.CellMut(x, 1) = NewFigure(RankPawn, ColorWhite, false)
		*b.CellMut(x, 6) = NewFigure(RankPawn, ColorBlack, false)
	}

	*b.CellMut(0, 0) = NewFigure(RankRook, ColorWhite, false)
	*b.CellMut(7, 0) = NewFigure(RankRook, ColorWhite, false)
	*b.CellMut(0, 7) = NewFigure(RankRook, ColorBlack, false)
	*b.CellMut(7, 7) = NewFigure(RankRook, ColorBlack, false)

	*b.CellMut(1, 0) = NewFigure(RankKnight, ColorWhite, false)
	*b.CellMut(6, 0) = NewFigure(RankKnight, ColorWhite, false)
	*b.CellMut(1, 7) = NewFigure(RankKnight, ColorBlack, false)
	*b.CellMut(6, 7) = NewFigure(RankKnight, ColorBlack, false)

	*b.CellMut(2, 0) = NewFigure(RankBishop, ColorWhite, true)
	*b.CellMut(5, 0) = NewFigure(RankBishop, ColorWhite, true)
	*b.CellMut(2, 7) = NewFigure(RankBishop, ColorBlack, true)
	*b.CellMut(5, 7) = NewFigure(RankBishop, ColorBlack, true)

	*b.CellMut(4, 0) = NewFigure(RankQueen, ColorWhite, false)
	*b.CellMut(4, 7) = NewFigure(RankQueen, ColorBlack, false)

	*b.CellMut(3, 0) = NewFigure(RankKing, ColorWhite, true)
	*b.CellMut(3, 7) = NewFigure(RankKing, ColorBlack, true)

	return b
}

func checkBounds(x, y int8) {
	if !DebugAssertions {
		return
	}
	if x < -boardOffset || x >= boardDim-boardOffset || y < -boardOffset || y >= boardDim-boardOffset {
		panic("board: coordinate out of range")
	}
}

// CellMut returns a mutable reference to the figure at logical (x, y),
// x,y in [-4, 12). Panics in debug mode on out-of-range coordinates.
func (b *Board) CellMut(x, y int8) *Figure {
	checkBounds(x, y)
	return &b.cells[x+boardOffset][y+boardOffset]
}

// Cell returns the figure at logical (x, y). Same bounds as CellMut.
func (b *Board) Cell(x, y int8) Figure {
	checkBounds(x, y)
	return b.cells[x+boardOffset][y+boardOffset]
}

// PointMut returns a mutable reference to the figure at p.
func (b *Board) PointMut(p Point) *Figure {
	return b.CellMut(p.X, p.Y)
}

// At returns the figure at p.
func (b *Board) At(p Point) Figure {
	return b.Cell(p.X, p.Y)
}

// Swap exchanges the figures at two playable points.
func (b *Board) Swap(p1, p2 Point) {
	a := b.PointMut(p1)
	c := b.PointMut(p2)
	*a, *c = *c, *a
}

// Equal reports whether two boards hold identical figures in every
// cell, guard band included.
func (b *Board) Equal(o *Board) bool {
	return b.cells == o.cells
}

// CellIter calls fn for every point of the playable 8x8 region in
// x-major, y-minor order.
func (b *Board) CellIter(fn func(p Point, f Figure)) {
	for x := int8(0); x < 8; x++ {
		for y := int8(0); y < 8; y++ {
			fn(Point{X: x, Y: y}, b.Cell(x, y))
		}
	}
}

// String renders the board as an 8x8 grid, rank 8 first, with a file
// header.
func (b *Board) String() string {
	var sb strings.Builder
	for y := int8(7); y >= 0; y-- {
		sb.WriteByte('1' + byte(y))
		sb.WriteByte(' ')
		for x := int8(7); x >= 0; x-- {
			sb.WriteString(b.Cell(x, y).String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for x := int8(0); x < 8; x++ {
		sb.WriteByte(byte(x) + 'A')
		sb.WriteString("  ")
	}
	return sb.String()
}
