// Command chessconsole runs an interactive console game against the
// search engine, optionally recording the game to a badger database
// for later replay.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/zzuummaa/chess-algorithm/internal/board"
	"github.com/zzuummaa/chess-algorithm/internal/console"
	"github.com/zzuummaa/chess-algorithm/internal/engine"
	"github.com/zzuummaa/chess-algorithm/internal/store"
)

var (
	depth     = flag.Int("depth", 4, "search depth in plies")
	alphaBeta = flag.Bool("alpha-beta", true, "use alpha-beta PVS search instead of plain min-max")
	dbPath    = flag.String("db", "", "badger database path to record the game under (empty disables recording)")
	humanSide = flag.String("human", "white", "side the human plays: white, black, or none")
)

func main() {
	flag.Parse()

	eng := engine.NewEngine(engine.Medium)
	eng.Depth = *depth
	eng.UseAlphaBeta = *alphaBeta

	var white, black consoleMoveSource
	engineSource := console.NewEngineMoveSource(eng)
	humanSource := console.NewHumanMoveSource(os.Stdout, os.Stdin, "move (e.g. a2a4): ")

	switch *humanSide {
	case "white":
		white, black = humanSource, engineSource
	case "black":
		white, black = engineSource, humanSource
	case "none":
		white, black = engineSource, engineSource
	default:
		log.Fatalf("unknown -human value %q: want white, black, or none", *humanSide)
	}

	c := console.NewConsole(os.Stdout, white, black)

	var rec *recorder
	if *dbPath != "" {
		s, err := store.Open(*dbPath)
		if err != nil {
			log.Fatalf("opening database: %v", err)
		}
		defer s.Close()

		rec = &recorder{store: s, gameID: time.Now().UnixNano()}
		if err := s.CreateGame(rec.gameID, time.Now()); err != nil {
			log.Fatalf("recording game start: %v", err)
		}
		c.OnMove = rec.record
	}

	if err := c.Run(); err != nil {
		log.Printf("game ended: %v", err)
	}
}

// consoleMoveSource is an alias so both branches of the switch above
// satisfy console.MoveSource without an explicit interface assertion.
type consoleMoveSource = console.MoveSource

type recorder struct {
	store  *store.Store
	gameID int64
	number int
}

func (r *recorder) record(color board.Color, m board.Move) {
	if err := r.store.RecordMove(r.gameID, r.number, m); err != nil {
		log.Printf("recording move %d: %v", r.number, err)
	}
	r.number++
}
