// Package store persists games and their move sequences in an
// embedded key-value store: a game key holds its start time, and a
// run of move keys under that game's prefix holds its move sequence
// in order. A game's moves cascade-delete by deleting every key under
// its prefix.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/zzuummaa/chess-algorithm/internal/board"
)

// Store wraps a badger database holding game and move records.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) a badger database at path.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// gameRecord is the JSON payload stored at a game's key.
type gameRecord struct {
	StartTime time.Time `json:"start_time"`
}

// moveRecord is the JSON payload stored at each of a game's move keys.
type moveRecord struct {
	From board.Point    `json:"p_from"`
	To   board.Point    `json:"p_to"`
	Type board.MoveType `json:"type"`
}

func gameKey(gameID int64) []byte {
	return []byte(fmt.Sprintf("game:%d", gameID))
}

func movePrefix(gameID int64) []byte {
	return []byte(fmt.Sprintf("move:%d:", gameID))
}

func moveKey(gameID int64, number int) []byte {
	return []byte(fmt.Sprintf("move:%d:%08d", gameID, number))
}

// CreateGame records a new game's start time under gameID.
func (s *Store) CreateGame(gameID int64, start time.Time) error {
	data, err := json.Marshal(gameRecord{StartTime: start})
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(gameID), data)
	})
}

// RecordMove appends a move to gameID's move sequence at the given
// (zero-based) move number.
func (s *Store) RecordMove(gameID int64, number int, m board.Move) error {
	data, err := json.Marshal(moveRecord{From: m.From, To: m.To, Type: m.Type})
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(moveKey(gameID, number), data)
	})
}

// Moves returns gameID's recorded moves in move_number order.
func (s *Store) Moves(gameID int64) ([]board.Move, error) {
	var moves []board.Move
	prefix := movePrefix(gameID)

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				var rec moveRecord
				if err := json.Unmarshal(val, &rec); err != nil {
					return err
				}
				moves = append(moves, board.Move{From: rec.From, To: rec.To, Type: rec.Type})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return moves, err
}

// DeleteGame removes a game's record and every move recorded under it,
// implementing the schema's ON DELETE CASCADE.
func (s *Store) DeleteGame(gameID int64) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(gameKey(gameID)); err != nil && err != badger.ErrKeyNotFound {
			return err
		}

		it := txn.NewIterator(badger.DefaultIteratorOptions)
		prefix := movePrefix(gameID)
		var keys [][]byte
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().KeyCopy(nil)
			keys = append(keys, key)
		}
		it.Close()

		for _, k := range keys {
			if err := txn.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}

// Replay rebuilds the position reached after gameID's recorded moves,
// applying them in move_number order with alternating colors starting
// from White, validating each move against the position it is applied
// to before making it.
func (s *Store) Replay(gameID int64) (*board.Position, error) {
	moves, err := s.Moves(gameID)
	if err != nil {
		return nil, err
	}

	pos := board.NewPosition(board.Default())
	color := board.ColorWhite
	for i, m := range moves {
		ctl := pos.Controller(color)
		resolved, ok := ctl.ResolveMove(m.From, m.To)
		if !ok {
			return nil, fmt.Errorf("store: replay game %d: move %d (%v) is not valid", gameID, i, m)
		}
		ctl.MakeMove(resolved)
		color = color.Invert()
	}
	return pos, nil
}
