package board

import (
	"fmt"
	"sort"
	"strings"
)

// MoveType distinguishes the three move shapes the core's make/unmake
// protocol understands.
type MoveType uint8

const (
	// MoveSimple covers captures and non-capturing steps.
	MoveSimple MoveType = iota
	// MoveSwap is reserved for castling-like exchanges. No generator
	// in this engine emits it; see DESIGN.md's Open Questions.
	MoveSwap
	// MoveTransform marks pawn promotion, always to a queen.
	MoveTransform
)

func (t MoveType) String() string {
	switch t {
	case MoveSimple:
		return "SIMPLE"
	case MoveSwap:
		return "SWAP"
	case MoveTransform:
		return "TRANSFORM"
	default:
		return "UNKNOWN"
	}
}

// Move is a single half-move: an origin point, a destination point,
// and the shape of the move.
type Move struct {
	From, To Point
	Type     MoveType
}

// String renders a move in four-character textual form, e.g. "A2A4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove parses four characters [a-h][1-8][a-h][1-8],
// case-insensitive. Promotion is never encoded textually; it is
// always to a queen and is inferred by the generator when the move is
// validated.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, fmt.Errorf("board: invalid move %q: want 4 characters", s)
	}
	from, err := ParsePoint(s[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParsePoint(s[2:4])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to, Type: MoveSimple}, nil
}

// moveListCapacity exceeds the largest legal move count reachable in
// any single position; a generator emitting more is a programming
// error, not a condition callers need to handle.
const moveListCapacity = 150

// MoveList is a fixed-capacity buffer of moves plus a length field.
// The zero MoveList is ready to use.
type MoveList struct {
	buf [moveListCapacity]Move
	len int
}

// Push appends a move to the list. Panics if the list is already at
// capacity: that can only happen if a generator is broken.
func (l *MoveList) Push(m Move) {
	if l.len >= moveListCapacity {
		panic("board: move list overflow")
	}
	l.buf[l.len] = m
	l.len++
}

// Len returns the number of moves currently in the list.
func (l *MoveList) Len() int { return l.len }

// Clear resets the list to empty without touching the backing array.
func (l *MoveList) Clear() { l.len = 0 }

// Moves returns the populated prefix of the list as a read-only
// slice.
func (l *MoveList) Moves() []Move { return l.buf[:l.len] }

// At returns the i-th move.
func (l *MoveList) At(i int) Move { return l.buf[i] }

// PositionalFunc scores a figure sitting at a point, from its own
// color's perspective. MoveList.SortBy and the Evaluator share this
// shape.
type PositionalFunc func(p Point, f Figure) int32

// SortBy orders the list descending by positional improvement plus
// capture value: positionalFn(to, mover) - positionalFn(from, mover) +
// weight(board[to]). The sort is stable, so moves that tie keep their
// generation order.
func (l *MoveList) SortBy(b *Board, positionalFn PositionalFunc) {
	moves := l.buf[:l.len]
	key := func(m Move) int32 {
		mover := b.At(m.From)
		return positionalFn(m.To, mover) - positionalFn(m.From, mover) + b.At(m.To).Weight()
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return key(moves[i]) > key(moves[j])
	})
}

// String renders the list for debugging.
func (l *MoveList) String() string {
	var sb strings.Builder
	for i, m := range l.Moves() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(m.String())
	}
	return sb.String()
}
