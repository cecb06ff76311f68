package board

import (
	"sort"
	"testing"
)

func destinations(list *MoveList) []Point {
	var pts []Point
	for _, m := range list.Moves() {
		pts = append(pts, m.To)
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
	return pts
}

func TestRookMobilityFromClearSquare(t *testing.T) {
	b := Empty()
	*b.CellMut(1, 1) = NewFigure(RankRook, ColorWhite, false)
	idx := NewFigureIndex(b, ColorWhite)
	list := &MoveList{}
	NewMoveGenerator(b, idx).FillForFigure(NewPoint(1, 1), list)

	if list.Len() != 14 {
		t.Fatalf("expected 14 rook moves, got %d: %s", list.Len(), list.String())
	}

	var want []Point
	for y := int8(0); y < 8; y++ {
		if y != 1 {
			want = append(want, NewPoint(1, y))
		}
	}
	for x := int8(0); x < 8; x++ {
		if x != 1 {
			want = append(want, NewPoint(x, 1))
		}
	}
	sort.Slice(want, func(i, j int) bool {
		if want[i].X != want[j].X {
			return want[i].X < want[j].X
		}
		return want[i].Y < want[j].Y
	})

	got := destinations(list)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("destination %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestKingInCornerMobility(t *testing.T) {
	b := Empty()
	*b.CellMut(0, 0) = NewFigure(RankKing, ColorWhite, false)
	idx := NewFigureIndex(b, ColorWhite)
	list := &MoveList{}
	NewMoveGenerator(b, idx).FillForFigure(NewPoint(0, 0), list)

	want := []Point{{0, 1}, {1, 0}, {1, 1}}
	sort.Slice(want, func(i, j int) bool {
		if want[i].X != want[j].X {
			return want[i].X < want[j].X
		}
		return want[i].Y < want[j].Y
	})
	got := destinations(list)
	if len(got) != 3 {
		t.Fatalf("expected 3 king moves, got %d: %s", list.Len(), list.String())
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("destination %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestPawnBlockedByEnemy(t *testing.T) {
	b := Empty()
	*b.CellMut(1, 1) = NewFigure(RankPawn, ColorWhite, false)
	*b.CellMut(1, 2) = NewFigure(RankPawn, ColorBlack, false)
	idx := NewFigureIndex(b, ColorWhite)
	list := &MoveList{}
	NewMoveGenerator(b, idx).FillForFigure(NewPoint(1, 1), list)
	if list.Len() != 0 {
		t.Fatalf("expected 0 moves for blocked pawn, got %d: %s", list.Len(), list.String())
	}

	*b.CellMut(1, 2) = EmptyFigure
	*b.CellMut(1, 3) = NewFigure(RankPawn, ColorBlack, false)
	list.Clear()
	NewMoveGenerator(b, idx).FillForFigure(NewPoint(1, 1), list)
	if list.Len() != 1 {
		t.Fatalf("expected 1 move, got %d: %s", list.Len(), list.String())
	}
	m := list.At(0)
	if m.From != (Point{1, 1}) || m.To != (Point{1, 2}) {
		t.Errorf("unexpected move %v", m)
	}
}

func TestPawnDoublePushRequiresBothSquaresEmpty(t *testing.T) {
	b := Empty()
	*b.CellMut(1, 1) = NewFigure(RankPawn, ColorWhite, false)
	idx := NewFigureIndex(b, ColorWhite)
	list := &MoveList{}
	NewMoveGenerator(b, idx).FillForFigure(NewPoint(1, 1), list)

	var sawDouble bool
	for _, m := range list.Moves() {
		if m.To == (Point{1, 3}) {
			sawDouble = true
		}
	}
	if !sawDouble {
		t.Fatal("expected double push to be available from the starting rank")
	}

	// Pawn no longer on the starting rank: no double push, even with
	// both squares empty.
	b2 := Empty()
	*b2.CellMut(1, 2) = NewFigure(RankPawn, ColorWhite, false)
	idx2 := NewFigureIndex(b2, ColorWhite)
	list2 := &MoveList{}
	NewMoveGenerator(b2, idx2).FillForFigure(NewPoint(1, 2), list2)
	for _, m := range list2.Moves() {
		if m.To == (Point{1, 4}) {
			t.Errorf("pawn off its starting rank should not double-push")
		}
	}
}

func TestPawnPromotionIsTransform(t *testing.T) {
	b := Empty()
	*b.CellMut(1, 6) = NewFigure(RankPawn, ColorWhite, false)
	idx := NewFigureIndex(b, ColorWhite)
	list := &MoveList{}
	NewMoveGenerator(b, idx).FillForFigure(NewPoint(1, 6), list)

	var found bool
	for _, m := range list.Moves() {
		if m.To == (Point{1, 7}) {
			found = true
			if m.Type != MoveTransform {
				t.Errorf("expected TRANSFORM move, got %v", m.Type)
			}
		}
	}
	if !found {
		t.Fatal("expected a push to the last rank")
	}
}

func TestGeneratedMovesNeverTargetSameColor(t *testing.T) {
	b := Default()
	idx := NewFigureIndex(b, ColorWhite)
	list := &MoveList{}
	NewMoveGenerator(b, idx).Fill(list)

	for _, m := range list.Moves() {
		if b.At(m.To).Color() == ColorWhite {
			t.Errorf("move %v targets a friendly-occupied square", m)
		}
	}
}
