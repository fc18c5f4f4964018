package database

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// ErrPickNotFound is returned when no pick has the requested id.
var ErrPickNotFound = errors.New("pick not found")

// timeLayout has a fixed width so that stored times sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type DB struct {
	conn *sql.DB
	now  func() time.Time
}

// New opens the history database in DATEPICK_DIR (default: $HOME/.datepick).
func New() (*DB, error) {
	dir := getDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create datepick directory: %w", err)
	}
	return Open(filepath.Join(dir, "datepick.db"))
}

// Open opens the history database at path, creating the schema on first use.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{conn: conn, now: time.Now}

	if err := db.runMigrations(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func (db *DB) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

func (db *DB) runMigrations() error {
	if _, err := db.conn.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

func getDir() string {
	if dir := os.Getenv("DATEPICK_DIR"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".datepick")
}

// Pick methods
func (db *DB) SavePick(kind, value, locale string) (Pick, error) {
	p := Pick{
		ID:        uuid.NewString(),
		Kind:      kind,
		Value:     value,
		Locale:    locale,
		CreatedAt: db.now().UTC(),
	}

	_, err := db.conn.Exec(`
		INSERT INTO picks (id, kind, value, locale, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.Kind, p.Value, p.Locale, p.CreatedAt.Format(timeLayout))
	if err != nil {
		return Pick{}, fmt.Errorf("failed to save pick: %w", err)
	}

	return p, nil
}

// GetPicks returns the most recent picks first. A limit of 0 returns all.
func (db *DB) GetPicks(limit int) ([]Pick, error) {
	query := `
		SELECT id, kind, value, locale, created_at
		FROM picks
		ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query picks: %w", err)
	}
	defer rows.Close()

	var picks []Pick
	for rows.Next() {
		p, err := scanPick(rows)
		if err != nil {
			return nil, err
		}
		picks = append(picks, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read picks: %w", err)
	}
	return picks, nil
}

func (db *DB) GetPick(id string) (Pick, error) {
	row := db.conn.QueryRow(`
		SELECT id, kind, value, locale, created_at
		FROM picks
		WHERE id = ?`, id)
	p, err := scanPick(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Pick{}, fmt.Errorf("%w: %s", ErrPickNotFound, id)
	}
	return p, err
}

func (db *DB) DeletePick(id string) error {
	res, err := db.conn.Exec("DELETE FROM picks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete pick: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrPickNotFound, id)
	}
	return nil
}

// ClearPicks removes every pick and reports how many were deleted.
func (db *DB) ClearPicks() (int64, error) {
	res, err := db.conn.Exec("DELETE FROM picks")
	if err != nil {
		return 0, fmt.Errorf("failed to clear picks: %w", err)
	}
	return res.RowsAffected()
}

// PickCountsByMonth counts picks per month of creation, oldest first.
func (db *DB) PickCountsByMonth() ([]MonthCount, error) {
	rows, err := db.conn.Query(`
		SELECT substr(created_at, 1, 7) AS month, COUNT(*)
		FROM picks
		GROUP BY month
		ORDER BY month`)
	if err != nil {
		return nil, fmt.Errorf("failed to count picks: %w", err)
	}
	defer rows.Close()

	var counts []MonthCount
	for rows.Next() {
		var c MonthCount
		if err := rows.Scan(&c.Month, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to read pick count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPick(s scanner) (Pick, error) {
	var p Pick
	var created string
	if err := s.Scan(&p.ID, &p.Kind, &p.Value, &p.Locale, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Pick{}, err
		}
		return Pick{}, fmt.Errorf("failed to read pick: %w", err)
	}
	t, err := time.Parse(timeLayout, created)
	if err != nil {
		return Pick{}, fmt.Errorf("failed to parse pick time %q: %w", created, err)
	}
	p.CreatedAt = t
	return p, nil
}

// Data types
type Pick struct {
	ID        string
	Kind      string
	Value     string
	Locale    string
	CreatedAt time.Time
}

type MonthCount struct {
	Month string // YYYY-MM
	Count int
}
