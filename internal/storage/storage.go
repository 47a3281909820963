package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/duncpro/simple-chess-computer/internal/board"
)

const snapshotPrefix = "snapshot/"

// Snapshot is the serialized form of a position: the piece arrangement, the
// white occupancy, and the side to move. The redundant views (type
// bitboards, rotated boards, empty channel) are rebuilt on load rather than
// stored, so a snapshot can never encode mutually inconsistent views.
type Snapshot struct {
	Squares [64]uint8 `json:"squares"`
	White   uint64    `json:"white"`
	Side    uint8     `json:"side"`
	SavedAt time.Time `json:"saved_at"`
}

// Take captures the current arrangement of a position.
func Take(p *board.Position) *Snapshot {
	s := &Snapshot{
		White:   uint64(p.Occupied(board.White)),
		Side:    uint8(p.SideToMove()),
		SavedAt: time.Now(),
	}
	for sq := board.A1; sq <= board.H8; sq++ {
		s.Squares[sq] = uint8(p.PieceTypeAt(sq))
	}
	return s
}

// Position reconstructs a position from the snapshot. The result has a
// fresh, empty history.
func (s *Snapshot) Position() (*board.Position, error) {
	var types [64]board.PieceType
	for sq := range s.Squares {
		types[sq] = board.PieceType(s.Squares[sq])
	}
	return board.NewCustomPosition(types, board.Bitboard(s.White), board.Color(s.Side))
}

// Store wraps BadgerDB for snapshot persistence.
type Store struct {
	db *badger.DB
}

// Open opens the store in the platform data directory.
func Open() (*Store, error) {
	dbDir, err := DatabaseDir()
	if err != nil {
		return nil, err
	}
	return OpenAt(dbDir)
}

// OpenAt opens the store in the given directory.
func OpenAt(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save stores the current arrangement of a position under the given name,
// overwriting any previous snapshot with that name.
func (s *Store) Save(name string, p *board.Position) error {
	data, err := json.Marshal(Take(p))
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(snapshotKey(name), data)
	})
}

// Load reconstructs the named snapshot as a fresh position.
func (s *Store) Load(name string) (*board.Position, error) {
	var snap Snapshot

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(snapshotKey(name))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("no snapshot named %q", name)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snap)
		})
	})
	if err != nil {
		return nil, err
	}

	return snap.Position()
}

// Delete removes the named snapshot. Deleting a missing snapshot is not an
// error.
func (s *Store) Delete(name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(snapshotKey(name))
	})
}

// List returns the names of all stored snapshots.
func (s *Store) List() ([]string, error) {
	var names []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(snapshotPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			names = append(names, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})

	return names, err
}

func snapshotKey(name string) []byte {
	return []byte(snapshotPrefix + name)
}
