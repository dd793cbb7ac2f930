package vocab

import (
	"database/sql"
	"fmt"
	"sort"

	_ "modernc.org/sqlite"
)

// Store is a SQLite-backed accumulator for class counts, useful when a
// corpus is processed incrementally (multiple files, multiple passes) and
// holding the whole vocabulary in memory isn't necessary until training
// actually starts.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if necessary) a counts database at path.
// Passing ":memory:" is fine for short-lived driver runs.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("vocab: open store: %w", err)
	}
	const schema = `CREATE TABLE IF NOT EXISTS class_counts (
		id    INTEGER PRIMARY KEY,
		count INTEGER NOT NULL DEFAULT 0
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("vocab: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Increment adds delta to class id's running count, inserting a new row
// if id has not been seen before.
func (s *Store) Increment(id int64, delta int64) error {
	const q = `INSERT INTO class_counts (id, count) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET count = count + excluded.count`
	if _, err := s.db.Exec(q, id, delta); err != nil {
		return fmt.Errorf("vocab: increment class %d: %w", id, err)
	}
	return nil
}

// Counts materializes every row into a dense Counts slice sorted
// descending by frequency, compacting class ids to [0, n) in that sorted
// order. It is the bridge between incremental accumulation and
// engine.SetTargetCounts.
func (s *Store) Counts() (Counts, error) {
	rows, err := s.db.Query(`SELECT count FROM class_counts WHERE count > 0`)
	if err != nil {
		return nil, fmt.Errorf("vocab: query counts: %w", err)
	}
	defer rows.Close()

	var out Counts
	for rows.Next() {
		var c int64
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("vocab: scan count: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("vocab: iterate counts: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrCountsEmpty
	}
	sort.Slice(out, func(i, j int) bool { return out[i] > out[j] })
	return out, nil
}
