package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/dreamlog/pkg/dreamlog/internalerr"
	"github.com/cognicore/dreamlog/pkg/dreamlog/store"
)

// DefaultListLimit bounds ListReports when no limit is given.
const DefaultListLimit = 20

// Fixed-width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS reports (
	id TEXT PRIMARY KEY,
	strategy TEXT NOT NULL,
	source TEXT,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS report_entries (
	report_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	key TEXT NOT NULL,
	display TEXT NOT NULL,
	score REAL NOT NULL,
	PRIMARY KEY(report_id, position),
	FOREIGN KEY(report_id) REFERENCES reports(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS day_scores (
	date TEXT PRIMARY KEY,
	dreams REAL NOT NULL,
	d REAL NOT NULL,
	ld REAL NOT NULL,
	score REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_reports_created ON reports(created_at);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// SaveReport stores a report and its entries, replacing any report with the same ID.
func (s *sqliteStore) SaveReport(ctx context.Context, r store.Report) (string, error) {
	r = store.Prepare(r)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM reports WHERE id = ?`, r.ID); err != nil {
		return "", err
	}
	if _, err := tx.ExecContext(ctx, `
INSERT INTO reports (id, strategy, source, created_at)
VALUES (?, ?, ?, ?);
`, r.ID, r.Strategy, r.Source, r.CreatedAt.UTC().Format(timeLayout)); err != nil {
		return "", fmt.Errorf("insert report: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO report_entries (report_id, position, key, display, score)
VALUES (?, ?, ?, ?, ?);
`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for i, e := range r.Entries {
		if _, err := stmt.ExecContext(ctx, r.ID, i, e.Key, e.Display, e.Score); err != nil {
			return "", fmt.Errorf("insert entry %q: %w", e.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return r.ID, nil
}

func (s *sqliteStore) GetReport(ctx context.Context, id string) (store.Report, error) {
	var r store.Report
	var created string
	err := s.db.QueryRowContext(ctx, `
SELECT id, strategy, source, created_at FROM reports WHERE id = ?;
`, id).Scan(&r.ID, &r.Strategy, &r.Source, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Report{}, fmt.Errorf("report %s: %w", id, internalerr.ErrNotFound)
	}
	if err != nil {
		return store.Report{}, err
	}
	if r.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return store.Report{}, fmt.Errorf("report %s: bad created_at: %w", id, err)
	}
	if r.Entries, err = s.entries(ctx, id); err != nil {
		return store.Report{}, err
	}
	return r, nil
}

func (s *sqliteStore) entries(ctx context.Context, id string) ([]store.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT key, display, score FROM report_entries
WHERE report_id = ?
ORDER BY position;
`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Entry
	for rows.Next() {
		var e store.Entry
		if err := rows.Scan(&e.Key, &e.Display, &e.Score); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ListReports returns the newest reports first, entries included.
func (s *sqliteStore) ListReports(ctx context.Context, limit int) ([]store.Report, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT id FROM reports
ORDER BY created_at DESC, id DESC
LIMIT ?;
`, limit)
	if err != nil {
		return nil, err
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	reports := make([]store.Report, 0, len(ids))
	for _, id := range ids {
		r, err := s.GetReport(ctx, id)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}

func (s *sqliteStore) UpsertDayScore(ctx context.Context, d store.DayScore) error {
	if d.Date.IsZero() {
		return fmt.Errorf("day score without date: %w", internalerr.ErrInvalidInput)
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO day_scores (date, dreams, d, ld, score)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(date) DO UPDATE SET
	dreams=excluded.dreams,
	d=excluded.d,
	ld=excluded.ld,
	score=excluded.score;
`, store.DateKey(d.Date), d.Dreams, d.D, d.LD, d.Score)
	return err
}

// DayScores returns every stored day in date order.
func (s *sqliteStore) DayScores(ctx context.Context) ([]store.DayScore, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT date, dreams, d, ld, score FROM day_scores ORDER BY date;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.DayScore
	for rows.Next() {
		var d store.DayScore
		var date string
		if err := rows.Scan(&date, &d.Dreams, &d.D, &d.LD, &d.Score); err != nil {
			return nil, err
		}
		if d.Date, err = time.Parse("2006-01-02", date); err != nil {
			return nil, fmt.Errorf("day %q: %w", date, err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
