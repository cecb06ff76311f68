package board

// figureArenaSize is the maximum number of pieces a single color can
// ever have on the board.
const figureArenaSize = 16

// node is one slot of a FigureIndex's arena. Unused slots are simply
// never linked into the chain; next is deliberately left untouched by
// Remove so Restore can relink through it.
type node struct {
	point Point
	next  *node
}

// FigureIndex is a per-color ordered sequence of the points currently
// occupied by that color's pieces: an intrusive singly-linked list
// over a fixed 16-node arena. Node addresses are stable for the
// lifetime of the FigureIndex, which is what lets a Cursor remove and
// restore a node in O(1) with no reallocation.
type FigureIndex struct {
	arena [figureArenaSize]node
	head  *node
}

// NewFigureIndex builds an index from the current board state for the
// given color.
func NewFigureIndex(b *Board, color Color) *FigureIndex {
	idx := &FigureIndex{}
	idx.Fill(b, color)
	return idx
}

// Fill rescans the board and rebuilds the index from scratch: every
// cell of the target color is collected, sorted in descending order of
// piece weight, and linked contiguously through the arena. Unused
// arena slots are left unlinked.
func (idx *FigureIndex) Fill(b *Board, color Color) {
	var points [figureArenaSize]Point
	count := 0
	b.CellIter(func(p Point, f Figure) {
		if f.Color() == color {
			points[count] = p
			count++
		}
	})

	// Insertion sort descending by weight: count never exceeds 16, so
	// this is a deliberate non-allocating choice, not an asymptotic one.
	for i := 1; i < count; i++ {
		p := points[i]
		w := b.At(p).Weight()
		j := i - 1
		for j >= 0 && b.At(points[j]).Weight() < w {
			points[j+1] = points[j]
			j--
		}
		points[j+1] = p
	}

	if count == 0 {
		idx.head = nil
		return
	}
	for i := 0; i < count; i++ {
		idx.arena[i].point = points[i]
	}
	for i := 0; i < count-1; i++ {
		idx.arena[i].next = &idx.arena[i+1]
	}
	idx.arena[count-1].next = nil
	idx.head = &idx.arena[0]
}

// Iter calls fn for every point currently linked into the index, in
// current chain order.
func (idx *FigureIndex) Iter(fn func(p Point)) {
	for n := idx.head; n != nil; n = n.next {
		fn(n.point)
	}
}

// Count returns the number of points currently linked into the index.
func (idx *FigureIndex) Count() int {
	n := 0
	idx.Iter(func(Point) { n++ })
	return n
}

// Cursor is the (head-slot, previous-node, current-node) triple
// sufficient to read or rewrite a node's point, or to unlink/restore
// it in O(1). The zero Cursor is "null": Remove and Restore on it are
// no-ops, representing a square that held no figure.
type Cursor struct {
	idx  *FigureIndex
	prev *node
	cur  *node
}

// Valid reports whether the cursor refers to a real node.
func (c Cursor) Valid() bool { return c.cur != nil }

// Point returns the current node's point. Panics if the cursor is
// null; callers must check Valid first.
func (c Cursor) Point() Point { return c.cur.point }

// SetPoint overwrites the current node's point in place.
func (c Cursor) SetPoint(p Point) { c.cur.point = p }

// Remove unlinks the current node from the chain. The node's next
// field is left intact so Restore can reuse it.
func (c Cursor) Remove() {
	if c.cur == nil {
		return
	}
	if c.prev == nil {
		c.idx.head = c.cur.next
	} else {
		c.prev.next = c.cur.next
	}
}

// Restore re-links the current node: if prev is null, the node
// becomes the new head; otherwise it is linked back after prev. This
// is the exact inverse of Remove and is idempotent against a balanced
// Remove.
func (c Cursor) Restore() {
	if c.cur == nil {
		return
	}
	if c.prev == nil {
		c.idx.head = c.cur
	} else {
		c.prev.next = c.cur
	}
}

// CursorIter calls fn for every node currently linked into the index,
// yielding a Cursor that captures this index, the previous node
// address and the current node address at the moment of the call.
func (idx *FigureIndex) CursorIter(fn func(c Cursor)) {
	var prev *node
	for cur := idx.head; cur != nil; {
		next := cur.next
		fn(Cursor{idx: idx, prev: prev, cur: cur})
		prev = cur
		cur = next
	}
}

// Find returns a Cursor over the node whose point equals p, and true
// if such a node exists. The returned Cursor is null (zero cur) if no
// node matches.
func (idx *FigureIndex) Find(p Point) (Cursor, bool) {
	var prev *node
	for cur := idx.head; cur != nil; cur = cur.next {
		if cur.point == p {
			return Cursor{idx: idx, prev: prev, cur: cur}, true
		}
		prev = cur
	}
	return Cursor{}, false
}

// Remove finds the node at p, unlinks it, and returns the cursor
// needed to restore it later. The returned cursor is null if no node
// was found at p.
func (idx *FigureIndex) Remove(p Point) Cursor {
	c, ok := idx.Find(p)
	if !ok {
		return Cursor{}
	}
	c.Remove()
	return c
}
