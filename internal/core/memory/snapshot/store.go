// Package snapshot stores known-good captures of actor records, keyed by
// simulation build and handle, together with the attribute values the
// simulation reported at capture time. Layout files are checked against them.
package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"
	_ "modernc.org/sqlite"

	"github.com/zeusync/actorproxy/internal/core/memory"
)

var ErrNotFound = errors.New("snapshot not found")

// Snapshot is one captured actor record.
type Snapshot struct {
	Version    string
	Handle     int32
	CapturedAt time.Time
	Record     []byte
	// Expected holds the values the simulation reported for layout fields
	// through its stable interface when the record was captured.
	Expected map[string]any
}

// Reader serves the captured bytes as a memory.Reader.
func (s Snapshot) Reader() *memory.Record {
	return memory.NewRecord(append([]byte(nil), s.Record...))
}

// Verify checks a layout against this capture.
func (s Snapshot) Verify(l *memory.Layout) []memory.Mismatch {
	rec := s.Reader()
	return memory.Verify(l, rec, rec.BaseAddress(s.Handle), s.typedExpectations(l))
}

// typedExpectations converts JSON-decoded numbers back into the Go types
// memory.Verify compares against.
func (s Snapshot) typedExpectations(l *memory.Layout) map[string]any {
	out := make(map[string]any, len(s.Expected))
	for name, v := range s.Expected {
		f, ok := l.Field(name)
		if !ok {
			out[name] = v
			continue
		}
		switch f.Encoding {
		case memory.EncodingInt32:
			if n, ok := toFloat(v); ok {
				out[name] = int32(n)
				continue
			}
		case memory.EncodingFloat32:
			if n, ok := toFloat(v); ok {
				out[name] = float32(n)
				continue
			}
		}
		out[name] = v
	}
	return out
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// Store persists snapshots in SQLite with zstd-compressed record blobs.
type Store struct {
	db  *sql.DB
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// Open opens or creates the store at path. ":memory:" keeps everything in process.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty snapshot db path")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err = initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		_ = enc.Close()
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, enc: enc, dec: dec}, nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		"PRAGMA busy_timeout=5000;",
		`CREATE TABLE IF NOT EXISTS snapshots (
			version TEXT NOT NULL,
			handle INTEGER NOT NULL,
			captured_at INTEGER NOT NULL,
			record BLOB NOT NULL,
			record_size INTEGER NOT NULL,
			expected TEXT NOT NULL,
			PRIMARY KEY (version, handle)
		);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Close() error {
	s.dec.Close()
	_ = s.enc.Close()
	return s.db.Close()
}

// Save inserts or replaces the snapshot for (version, handle).
func (s *Store) Save(ctx context.Context, snap Snapshot) error {
	expected, err := json.Marshal(snap.Expected)
	if err != nil {
		return fmt.Errorf("encode expectations: %w", err)
	}
	blob := s.enc.EncodeAll(snap.Record, nil)
	captured := snap.CapturedAt
	if captured.IsZero() {
		captured = time.Now()
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots(version, handle, captured_at, record, record_size, expected)
		 VALUES(?, ?, ?, ?, ?, ?)
		 ON CONFLICT(version, handle) DO UPDATE SET
		   captured_at=excluded.captured_at,
		   record=excluded.record,
		   record_size=excluded.record_size,
		   expected=excluded.expected`,
		snap.Version, snap.Handle, captured.UnixNano(), blob, len(snap.Record), string(expected))
	if err != nil {
		return fmt.Errorf("save snapshot %s/%d: %w", snap.Version, snap.Handle, err)
	}
	return nil
}

// Load returns the snapshot for (version, handle) or ErrNotFound.
func (s *Store) Load(ctx context.Context, version string, handle int32) (Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT captured_at, record, record_size, expected FROM snapshots WHERE version = ? AND handle = ?`,
		version, handle)
	snap, err := s.scan(row, version, handle)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, fmt.Errorf("%w: %s/%d", ErrNotFound, version, handle)
	}
	return snap, err
}

// List returns every snapshot recorded for a build, ordered by handle.
func (s *Store) List(ctx context.Context, version string) ([]Snapshot, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT handle, captured_at, record, record_size, expected FROM snapshots WHERE version = ? ORDER BY handle`,
		version)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var handle int32
		var captured int64
		var blob []byte
		var size int
		var expected string
		if err = rows.Scan(&handle, &captured, &blob, &size, &expected); err != nil {
			return nil, err
		}
		snap, err := s.decode(version, handle, captured, blob, size, expected)
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

// Versions lists the builds with at least one snapshot.
func (s *Store) Versions(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT version FROM snapshots ORDER BY version`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var v string
		if err = rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *Store) scan(row *sql.Row, version string, handle int32) (Snapshot, error) {
	var captured int64
	var blob []byte
	var size int
	var expected string
	if err := row.Scan(&captured, &blob, &size, &expected); err != nil {
		return Snapshot{}, err
	}
	return s.decode(version, handle, captured, blob, size, expected)
}

func (s *Store) decode(version string, handle int32, captured int64, blob []byte, size int, expected string) (Snapshot, error) {
	record, err := s.dec.DecodeAll(blob, make([]byte, 0, size))
	if err != nil {
		return Snapshot{}, fmt.Errorf("decompress snapshot %s/%d: %w", version, handle, err)
	}
	snap := Snapshot{
		Version:    version,
		Handle:     handle,
		CapturedAt: time.Unix(0, captured),
		Record:     record,
	}
	if err = json.Unmarshal([]byte(expected), &snap.Expected); err != nil {
		return Snapshot{}, fmt.Errorf("decode expectations %s/%d: %w", version, handle, err)
	}
	return snap, nil
}
