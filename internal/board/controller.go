package board

// Position owns a board and both color's figure indexes. It is the
// long-lived state a search walks; Controller borrows from it for one
// side's turn.
type Position struct {
	Board *Board
	White *FigureIndex
	Black *FigureIndex
}

// NewPosition builds a Position from a board snapshot, indexing both
// colors.
func NewPosition(b *Board) *Position {
	return &Position{
		Board: b,
		White: NewFigureIndex(b, ColorWhite),
		Black: NewFigureIndex(b, ColorBlack),
	}
}

// Controller returns a Controller with color to move as the friend
// side.
func (pos *Position) Controller(toMove Color) *Controller {
	c := &Controller{Board: pos.Board}
	if toMove == ColorWhite {
		c.Friend, c.Enemy = pos.White, pos.Black
		c.FriendColor, c.EnemyColor = ColorWhite, ColorBlack
	} else {
		c.Friend, c.Enemy = pos.Black, pos.White
		c.FriendColor, c.EnemyColor = ColorBlack, ColorWhite
	}
	return c
}

// Controller owns the board and both color's figure indexes for the
// duration of a search. It rotates the Friend/Enemy references rather
// than threading a color parameter through every recursive call.
type Controller struct {
	Board           *Board
	Friend          *FigureIndex
	Enemy           *FigureIndex
	FriendColor     Color
	EnemyColor      Color
	PositionCounter int64
}

// PointInfo captures everything needed to undo a half-move's effect on
// one square: the figure that was there, the point itself, and a
// cursor into whichever index (if any) owned a node at that square. A
// zero-value Cursor means the square was empty (or the figure there
// does not belong to either tracked index, which cannot happen for
// legal pseudo-moves).
type PointInfo struct {
	Figure Figure
	Point  Point
	Cursor Cursor
}

// FriendMoves returns a filled MoveList for the side to move.
func (c *Controller) FriendMoves() *MoveList {
	list := &MoveList{}
	NewMoveGenerator(c.Board, c.Friend).Fill(list)
	return list
}

// PointMoves returns the moves available to the friend piece sitting
// at p. Used both internally by IsValidMove and externally by a
// driver that wants to list legal moves from a single square.
func (c *Controller) PointMoves(p Point) *MoveList {
	list := &MoveList{}
	NewMoveGenerator(c.Board, c.Friend).FillForFigure(p, list)
	return list
}

// IsValidMove reports whether m.From lies on the board, holds a friend
// piece, and m.To is reachable from m.From under the pseudo-legal
// generator. The move's Type is ignored: textual move notation never
// encodes promotion, so the caller is expected to resolve the proper
// typed Move (via ResolveMove) before calling MakeMove.
func (c *Controller) IsValidMove(m Move) bool {
	_, ok := c.ResolveMove(m.From, m.To)
	return ok
}

// ResolveMove looks up the generated move from -> to for the side to
// move, returning it (with its correct Type, e.g. MoveTransform for a
// promoting push) and true if it is pseudo-legal.
func (c *Controller) ResolveMove(from, to Point) (Move, bool) {
	f := c.Board.At(from)
	if f.Rank() == RankOut || f.Rank() == RankNone {
		return Move{}, false
	}
	if f.Color() != c.FriendColor {
		return Move{}, false
	}
	for _, m := range c.PointMoves(from).Moves() {
		if m.To == to {
			return m, true
		}
	}
	return Move{}, false
}

// MakeMove mutates the board and both indexes in place for move m,
// returning the (from, to) PointInfo pair needed to reverse it with
// UnmakeMove. SIMPLE repoints the friend cursor to To, removing any
// enemy cursor captured there; SWAP exchanges both cursors' points and
// swaps the board cells; TRANSFORM repoints the friend cursor to To
// and replaces the board's From/To cells with an empty square and a
// queen of the mover's color.
func (c *Controller) MakeMove(m Move) (fromInfo, toInfo PointInfo) {
	fromFigure := c.Board.At(m.From)
	toFigure := c.Board.At(m.To)
	fromCursor, _ := c.Friend.Find(m.From)
	fromInfo = PointInfo{Figure: fromFigure, Point: m.From, Cursor: fromCursor}

	switch m.Type {
	case MoveTransform:
		toInfo = PointInfo{Figure: toFigure, Point: m.To}
		fromCursor.SetPoint(m.To)
		*c.Board.PointMut(m.From) = EmptyFigure
		*c.Board.PointMut(m.To) = NewFigure(RankQueen, c.FriendColor, false)

	case MoveSwap:
		toCursor, _ := c.Friend.Find(m.To)
		toInfo = PointInfo{Figure: toFigure, Point: m.To, Cursor: toCursor}
		fromCursor.SetPoint(m.To)
		toCursor.SetPoint(m.From)
		c.Board.Swap(m.From, m.To)

	default: // MoveSimple
		var toCursor Cursor
		if toFigure.Color() == c.EnemyColor {
			toCursor = c.Enemy.Remove(m.To)
		}
		toInfo = PointInfo{Figure: toFigure, Point: m.To, Cursor: toCursor}
		fromCursor.SetPoint(m.To)
		*c.Board.PointMut(m.To) = fromFigure
		*c.Board.PointMut(m.From) = EmptyFigure
	}

	return fromInfo, toInfo
}

// UnmakeMove reverses the effect of MakeMove(m), given the PointInfo
// pair it returned. After a balanced (make, unmake) pair the board and
// both indexes are byte-equal to their pre-make state.
func (c *Controller) UnmakeMove(m Move, fromInfo, toInfo PointInfo) {
	switch m.Type {
	case MoveTransform:
		fromInfo.Cursor.SetPoint(m.From)
		*c.Board.PointMut(m.From) = fromInfo.Figure
		*c.Board.PointMut(m.To) = toInfo.Figure

	case MoveSwap:
		fromInfo.Cursor.SetPoint(m.From)
		toInfo.Cursor.SetPoint(m.To)
		c.Board.Swap(m.From, m.To)

	default: // MoveSimple
		toInfo.Cursor.Restore()
		fromInfo.Cursor.SetPoint(m.From)
		*c.Board.PointMut(m.To) = toInfo.Figure
		*c.Board.PointMut(m.From) = fromInfo.Figure
	}
}

// PassMoveToEnemy swaps the friend/enemy index references and color
// fields, with no board change. This keeps the search's recursion
// signature free of an explicit color parameter.
func (c *Controller) PassMoveToEnemy() {
	c.Friend, c.Enemy = c.Enemy, c.Friend
	c.FriendColor, c.EnemyColor = c.EnemyColor, c.FriendColor
}

// IsKingAlive reports whether the friend index still contains a
// friend-colored king. The engine has no check/checkmate detection;
// this is the terminal condition the console driver relies on. The
// search does not call it: a captured king shows up there only through
// the evaluation.
func (c *Controller) IsKingAlive() bool {
	alive := false
	c.Friend.Iter(func(p Point) {
		f := c.Board.At(p)
		if f.Rank() == RankKing && f.Color() == c.FriendColor {
			alive = true
		}
	})
	return alive
}
