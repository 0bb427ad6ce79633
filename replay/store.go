// Package replay is a native boundary backed by recorded SDK responses in a
// SQLite database.
//
// Each row of the responses table answers one boundary operation, either for
// an exact argument list or, with args "*", for any arguments. A row holds
// either a JSON payload or a failure message. Every call is appended to the
// calls table so tests and the CLI can inspect what the facade asked for.
package replay

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// AnyArgs matches every argument list of an operation.
const AnyArgs = "*"

// ErrNoFixture is returned when no row answers a call.
var ErrNoFixture = errors.New("replay: no fixture")

const schema = `
CREATE TABLE IF NOT EXISTS responses (
	op      TEXT NOT NULL,
	args    TEXT NOT NULL,
	payload TEXT,
	failure TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (op, args)
);
CREATE TABLE IF NOT EXISTS calls (
	id    INTEGER PRIMARY KEY AUTOINCREMENT,
	op    TEXT NOT NULL,
	args  TEXT NOT NULL,
	at_ms INTEGER NOT NULL
);
`

// Store holds fixtures.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the fixture database at path. Use ":memory:" for a
// private in-memory store.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", strings.ReplaceAll(path, " ", "%20"))
	if path == ":memory:" {
		dsn = "file::memory:"
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("replay: opening sqlite database failed: %w", err)
	}
	// one connection keeps an in-memory database alive and serializes writers
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("replay: connecting to sqlite database failed: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("replay: creating schema failed: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Fixture is one recorded response as found in a fixtures file. Args is a
// JSON array; when omitted the fixture answers any arguments. Exactly one of
// Result and Error is used; Error wins when both are set.
type Fixture struct {
	Op     string          `json:"op"`
	Args   json.RawMessage `json:"args,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// Put stores f, replacing any fixture with the same op and args.
func (s *Store) Put(ctx context.Context, f Fixture) error {
	if err := putFixture(ctx, s.db, f); err != nil {
		return fmt.Errorf("replay: fixture %s: %w", f.Op, err)
	}
	return nil
}

// Import reads a JSON array of fixtures from r and stores them in one
// transaction. It returns the number of fixtures stored.
func (s *Store) Import(ctx context.Context, r io.Reader) (int, error) {
	var fixtures []Fixture
	if err := json.NewDecoder(r).Decode(&fixtures); err != nil {
		return 0, fmt.Errorf("replay: parsing fixtures failed: %w", err)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("replay: starting import failed: %w", err)
	}
	defer tx.Rollback()

	for i, f := range fixtures {
		if err := putFixture(ctx, tx, f); err != nil {
			return 0, fmt.Errorf("replay: fixture %d (%s): %w", i, f.Op, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("replay: committing import failed: %w", err)
	}
	return len(fixtures), nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func putFixture(ctx context.Context, db execer, f Fixture) error {
	if strings.TrimSpace(f.Op) == "" {
		return errors.New("op is required")
	}
	key := AnyArgs
	if len(f.Args) > 0 {
		var err error
		if key, err = canonicalArgs(f.Args); err != nil {
			return err
		}
	}
	var payload sql.NullString
	if f.Error == "" && len(f.Result) > 0 {
		if !json.Valid(f.Result) {
			return errors.New("result is not valid JSON")
		}
		payload = sql.NullString{String: string(f.Result), Valid: true}
	}
	_, err := db.ExecContext(ctx,
		`INSERT OR REPLACE INTO responses (op, args, payload, failure) VALUES (?, ?, ?, ?)`,
		f.Op, key, payload, f.Error)
	return err
}

// Call is one recorded boundary call.
type Call struct {
	Op   string
	Args string
	At   time.Time
}

// Calls returns the recorded calls, oldest first.
func (s *Store) Calls(ctx context.Context) ([]Call, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT op, args, at_ms FROM calls ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("replay: listing calls failed: %w", err)
	}
	defer rows.Close()

	var out []Call
	for rows.Next() {
		var (
			c  Call
			ms int64
		)
		if err := rows.Scan(&c.Op, &c.Args, &ms); err != nil {
			return nil, fmt.Errorf("replay: scanning call failed: %w", err)
		}
		c.At = time.UnixMilli(ms).UTC()
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("replay: iterating calls failed: %w", err)
	}
	return out, nil
}

// answer records the call and decodes the matching fixture into T. An
// exact argument match wins over a wildcard row.
func answer[T any](ctx context.Context, s *Store, op string, args ...any) (T, error) {
	var zero T
	if args == nil {
		args = []any{}
	}
	raw, err := json.Marshal(args)
	if err != nil {
		return zero, fmt.Errorf("replay: encoding %s args failed: %w", op, err)
	}
	key, err := canonicalArgs(raw)
	if err != nil {
		return zero, err
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO calls (op, args, at_ms) VALUES (?, ?, ?)`,
		op, key, s.now().UnixMilli()); err != nil {
		return zero, fmt.Errorf("replay: recording %s failed: %w", op, err)
	}

	var (
		payload sql.NullString
		failure string
	)
	err = s.db.QueryRowContext(ctx,
		`SELECT payload, failure FROM responses
		 WHERE op = ? AND (args = ? OR args = ?)
		 ORDER BY args = ? LIMIT 1`,
		op, key, AnyArgs, AnyArgs).Scan(&payload, &failure)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, fmt.Errorf("%w for %s%s", ErrNoFixture, op, key)
	}
	if err != nil {
		return zero, fmt.Errorf("replay: reading fixture for %s failed: %w", op, err)
	}
	if failure != "" {
		return zero, errors.New(failure)
	}
	if !payload.Valid {
		return zero, nil
	}
	var out T
	if err := json.Unmarshal([]byte(payload.String), &out); err != nil {
		return zero, fmt.Errorf("replay: decoding fixture for %s failed: %w", op, err)
	}
	return out, nil
}

// canonicalArgs re-encodes a JSON array so that equal arguments compare
// equal as text.
func canonicalArgs(raw json.RawMessage) (string, error) {
	var v []any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", fmt.Errorf("args must be a JSON array: %w", err)
	}
	if v == nil {
		v = []any{}
	}
	out, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
