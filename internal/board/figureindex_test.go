package board

import "testing"

func TestFigureIndexCountMatchesBoard(t *testing.T) {
	b := Default()
	white := NewFigureIndex(b, ColorWhite)
	black := NewFigureIndex(b, ColorBlack)

	wantWhite, wantBlack := 0, 0
	b.CellIter(func(p Point, f Figure) {
		switch f.Color() {
		case ColorWhite:
			wantWhite++
		case ColorBlack:
			wantBlack++
		}
	})

	if got := white.Count(); got != wantWhite {
		t.Errorf("white count = %d, want %d", got, wantWhite)
	}
	if got := black.Count(); got != wantBlack {
		t.Errorf("black count = %d, want %d", got, wantBlack)
	}
}

func TestFigureIndexMembershipBothWays(t *testing.T) {
	b := Default()
	white := NewFigureIndex(b, ColorWhite)

	seen := map[Point]bool{}
	white.Iter(func(p Point) { seen[p] = true })

	b.CellIter(func(p Point, f Figure) {
		if f.Color() == ColorWhite && !seen[p] {
			t.Errorf("white cell %v not present in index", p)
		}
	})
	for p := range seen {
		if b.At(p).Color() != ColorWhite {
			t.Errorf("index point %v is not a white cell on the board", p)
		}
	}
}

func TestFillOrdersByWeightDescending(t *testing.T) {
	b := Default()
	white := NewFigureIndex(b, ColorWhite)

	prev := int32(1 << 30)
	white.Iter(func(p Point) {
		w := b.At(p).Weight()
		if w > prev {
			t.Errorf("weights not descending: %d appeared after %d", w, prev)
		}
		prev = w
	})
}

func TestCursorRemoveRestoreHead(t *testing.T) {
	b := Empty()
	*b.CellMut(0, 0) = NewFigure(RankPawn, ColorWhite, false)
	*b.CellMut(1, 1) = NewFigure(RankKnight, ColorWhite, false)
	idx := NewFigureIndex(b, ColorWhite)

	// Knight sorts first (heavier); remove it (the head) and restore.
	before := collectPoints(idx)
	c := idx.Remove(NewPoint(1, 1))
	if !c.Valid() {
		t.Fatal("expected to find a node at (1,1)")
	}
	if got := collectPoints(idx); len(got) != 1 {
		t.Fatalf("expected 1 remaining point after remove, got %v", got)
	}
	c.Restore()
	after := collectPoints(idx)
	if !samePoints(before, after) {
		t.Errorf("restore did not reproduce original order: before=%v after=%v", before, after)
	}
}

func TestCursorRemoveRestoreMiddle(t *testing.T) {
	b := Empty()
	*b.CellMut(0, 0) = NewFigure(RankQueen, ColorWhite, false)
	*b.CellMut(1, 1) = NewFigure(RankRook, ColorWhite, false)
	*b.CellMut(2, 2) = NewFigure(RankBishop, ColorWhite, false)
	idx := NewFigureIndex(b, ColorWhite)

	before := collectPoints(idx)
	c := idx.Remove(NewPoint(1, 1))
	if !c.Valid() {
		t.Fatal("expected to find a node at (1,1)")
	}
	c.Restore()
	after := collectPoints(idx)
	if !samePoints(before, after) {
		t.Errorf("restore did not reproduce original order: before=%v after=%v", before, after)
	}
}

func TestSetPointRewritesInPlace(t *testing.T) {
	b := Empty()
	*b.CellMut(0, 0) = NewFigure(RankPawn, ColorWhite, false)
	idx := NewFigureIndex(b, ColorWhite)

	c, ok := idx.Find(NewPoint(0, 0))
	if !ok {
		t.Fatal("expected a node at (0,0)")
	}
	c.SetPoint(NewPoint(0, 1))
	if got := collectPoints(idx); len(got) != 1 || got[0] != (Point{0, 1}) {
		t.Errorf("SetPoint did not take effect: %v", got)
	}
}

func collectPoints(idx *FigureIndex) []Point {
	var pts []Point
	idx.Iter(func(p Point) { pts = append(pts, p) })
	return pts
}

func samePoints(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
