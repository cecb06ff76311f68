// Package console implements an interactive game loop: a Console
// holding the position and one MoveSource per side, where a human side
// reads its input line by line through a bufio.Scanner over stdin and
// an engine side searches for its move. The loop speaks no network
// protocol. It reads plain four-character moves and plays both sides
// against each other or against a human, one ply per line.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/zzuummaa/chess-algorithm/internal/board"
	"github.com/zzuummaa/chess-algorithm/internal/engine"
)

// MoveSource supplies the next move for the side to move. A human
// driver reads one from stdin; an engine driver searches for one.
type MoveSource interface {
	NextMove(ctl *board.Controller) (board.Move, error)
}

// Console drives a game to completion: it prompts each side in turn
// for a move, applies it, prints the board, and stops when a king is
// gone or a move source runs out of input.
type Console struct {
	Out     io.Writer
	Pos     *board.Position
	White   MoveSource
	Black   MoveSource
	OnMove  func(color board.Color, m board.Move)
}

// NewConsole builds a Console over a fresh starting position.
func NewConsole(out io.Writer, white, black MoveSource) *Console {
	return &Console{
		Out:   out,
		Pos:   board.NewPosition(board.Default()),
		White: white,
		Black: black,
	}
}

// Run plays the game ply by ply until one side's king is gone or a
// move source returns an error (including io.EOF, a human driver
// closing stdin).
func (c *Console) Run() error {
	color := board.ColorWhite
	for {
		ctl := c.Pos.Controller(color)
		if !ctl.IsKingAlive() {
			fmt.Fprintln(c.Out, "game over: the side to move has no king")
			return nil
		}

		source := c.White
		if color == board.ColorBlack {
			source = c.Black
		}

		m, err := source.NextMove(ctl)
		if err != nil {
			return err
		}

		resolved, ok := ctl.ResolveMove(m.From, m.To)
		if !ok {
			fmt.Fprintf(c.Out, "illegal move %s, try again\n", m)
			continue
		}
		ctl.MakeMove(resolved)
		if c.OnMove != nil {
			c.OnMove(color, resolved)
		}

		fmt.Fprintln(c.Out, c.Pos.Board.String())

		nextCtl := c.Pos.Controller(color.Invert())
		if !nextCtl.IsKingAlive() {
			fmt.Fprintf(c.Out, "%s wins: %s's king is gone\n", colorName(color), colorName(color.Invert()))
			return nil
		}

		color = color.Invert()
	}
}

func colorName(c board.Color) string {
	if c == board.ColorWhite {
		return "white"
	}
	return "black"
}

// HumanMoveSource reads four-character moves from a scanner, reprompting
// on parse failure or an invalid move (invalidity is only discovered
// back in Console.Run, which reprompts by calling NextMove again).
type HumanMoveSource struct {
	Out     io.Writer
	Scanner *bufio.Scanner
	Prompt  string
}

// NewHumanMoveSource builds a HumanMoveSource reading from r.
func NewHumanMoveSource(out io.Writer, r io.Reader, prompt string) *HumanMoveSource {
	return &HumanMoveSource{Out: out, Scanner: bufio.NewScanner(r), Prompt: prompt}
}

// NextMove prompts for and parses one line as a four-character move,
// reprompting on a blank line or a parse error. Returns io.EOF once
// the input is exhausted.
func (h *HumanMoveSource) NextMove(ctl *board.Controller) (board.Move, error) {
	for {
		fmt.Fprint(h.Out, h.Prompt)
		if !h.Scanner.Scan() {
			if err := h.Scanner.Err(); err != nil {
				return board.Move{}, err
			}
			return board.Move{}, io.EOF
		}
		line := strings.TrimSpace(h.Scanner.Text())
		if line == "" {
			continue
		}
		m, err := board.ParseMove(line)
		if err != nil {
			fmt.Fprintf(h.Out, "%v\n", err)
			continue
		}
		return m, nil
	}
}

// EngineMoveSource searches for a move with a configured engine.
type EngineMoveSource struct {
	Engine *engine.Engine
}

// NewEngineMoveSource wraps an engine as a MoveSource.
func NewEngineMoveSource(e *engine.Engine) *EngineMoveSource {
	return &EngineMoveSource{Engine: e}
}

// NextMove searches ctl's position and returns the engine's choice.
// Returns io.EOF if the engine finds no move (no pseudo-legal moves
// remain), mirroring a human driver running out of input.
func (e *EngineMoveSource) NextMove(ctl *board.Controller) (board.Move, error) {
	m, ok := e.Engine.BestMove(ctl)
	if !ok {
		return board.Move{}, io.EOF
	}
	return m, nil
}
