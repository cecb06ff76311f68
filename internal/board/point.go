// Package board implements the guard-banded chess board, the per-color
// figure index, pseudo-legal move generation and the make/unmake
// controller that mutates both in lockstep.
package board

import "fmt"

// Point is a signed (x, y) coordinate: x is the file, y the rank, and
// rank 0 is the first rank. Files are written from the H side: file 0
// is 'H' and file 7 is 'A' in textual form (see String and
// ParsePoint). Values outside 0..7 are valid Points; they only
// become "off-board" when looked up through a Board.
type Point struct {
	X, Y int8
}

// NewPoint builds a Point from raw coordinates.
func NewPoint(x, y int8) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// String renders the point in algebraic form. The file axis is
// inverted on purpose: file 0 prints as 'H'.
func (p Point) String() string {
	return fmt.Sprintf("%c%c", 'H'-byte(p.X), '1'+byte(p.Y))
}

// ParsePoint parses a two-character string of the form [A-H][1-8],
// case-insensitive. File maps via H-ch=x, rank via ch-'1'=y.
func ParsePoint(s string) (Point, error) {
	if len(s) != 2 {
		return Point{}, fmt.Errorf("board: invalid point %q: want 2 characters", s)
	}
	file := s[0]
	if file >= 'a' && file <= 'h' {
		file -= 'a' - 'A'
	}
	if file < 'A' || file > 'H' {
		return Point{}, fmt.Errorf("board: invalid point %q: file out of range", s)
	}
	rank := s[1]
	if rank < '1' || rank > '8' {
		return Point{}, fmt.Errorf("board: invalid point %q: rank out of range", s)
	}
	return Point{X: int8('H' - file), Y: int8(rank - '1')}, nil
}
